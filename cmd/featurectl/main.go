// Command featurectl inspects the feature catalog and the activation store.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/featuregate/internal/catalog"
	"github.com/goodnatureofminers/featuregate/internal/feature"
)

type options struct {
	CatalogFile string `long:"catalog-file" env:"FEATURECTL_CATALOG_FILE" description:"TOML file with extra catalog features"`
	JSON        bool   `long:"json" description:"print JSON instead of tables"`
}

// app carries what every command needs. Commands are go-flags Commanders and
// cannot receive it as an argument.
type app struct {
	ctx    context.Context
	opts   options
	logger *zap.Logger
	out    io.Writer
}

func (a *app) catalog() (*feature.Catalog, error) {
	return catalog.Open(a.opts.CatalogFile)
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	a := &app{ctx: ctx, logger: logger, out: os.Stdout}
	parser := newParser(a)
	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("featurectl failed", zap.Error(err))
	}
}

func newParser(a *app) *flags.Parser {
	parser := flags.NewParser(&a.opts, flags.Default)
	mustAddCommand(parser, "catalog", "List catalog features", &catalogCommand{app: a})
	mustAddCommand(parser, "identity", "Print the catalog identity digest", &identityCommand{app: a})
	mustAddCommand(parser, "status", "Replay stored activations and print the feature set", &statusCommand{app: a})
	mustAddCommand(parser, "check-peers", "Compare the catalog identity with peers", &checkPeersCommand{app: a})
	return parser
}

func mustAddCommand(parser *flags.Parser, name, description string, data any) {
	if _, err := parser.AddCommand(name, description, description, data); err != nil {
		panic("featurectl: add command " + name + ": " + err.Error())
	}
}
