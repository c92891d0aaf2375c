package main

import (
	"errors"
	"fmt"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/goodnatureofminers/featuregate/internal/metrics"
	"github.com/goodnatureofminers/featuregate/internal/service/compat"
)

var errIncompatiblePeers = errors.New("some peers are not compatible")

type checkPeersCommand struct {
	app *app

	Peers   []string      `long:"peer" env:"FEATURECTL_PEERS" env-delim:"," description:"peer REST base URL, repeatable" required:"true"`
	Workers int           `long:"workers" description:"concurrent peer requests" default:"4"`
	RPS     int           `long:"rps" description:"max peer requests per second" default:"20"`
	Timeout time.Duration `long:"timeout" description:"per peer request timeout" default:"5s"`
}

func (c *checkPeersCommand) Execute([]string) error {
	features, err := c.app.catalog()
	if err != nil {
		return err
	}

	fetcher := compat.NewHTTPFetcher(&http.Client{Timeout: c.Timeout})
	checker, err := compat.NewPeerChecker(fetcher, features.Identity(), metrics.NewPeerChecker(), c.app.logger, c.Workers, c.RPS)
	if err != nil {
		return err
	}
	statuses, err := checker.Check(c.app.ctx, c.Peers)
	if err != nil {
		return err
	}

	if c.app.opts.JSON {
		err = c.app.printJSON(statuses)
	} else {
		err = printPeerStatuses(c.app, statuses)
	}
	if err != nil {
		return err
	}
	if !compat.AllCompatible(statuses) {
		return errIncompatiblePeers
	}
	return nil
}

func printPeerStatuses(a *app, statuses []compat.PeerStatus) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PEER\tSTATUS\tCATALOG\tSLOT\tERROR")
	for _, s := range statuses {
		catalog := "-"
		if s.Status != compat.StatusUnreachable {
			catalog = s.Identity.Catalog.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", s.Peer, s.Status, catalog, s.Identity.Slot, s.Error)
	}
	return w.Flush()
}
