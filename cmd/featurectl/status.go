package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/goodnatureofminers/featuregate/internal/catalog"
	"github.com/goodnatureofminers/featuregate/internal/epoch"
	"github.com/goodnatureofminers/featuregate/internal/feature"
	"github.com/goodnatureofminers/featuregate/internal/metrics"
	"github.com/goodnatureofminers/featuregate/internal/model"
	"github.com/goodnatureofminers/featuregate/internal/repository/clickhouse"
	"github.com/goodnatureofminers/featuregate/internal/service/replay"
	"github.com/goodnatureofminers/featuregate/pkg/safe"
)

type statusCommand struct {
	app *app

	ClickhouseDSN string `long:"clickhouse-dsn" env:"FEATURECTL_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Network       string `long:"network" env:"FEATURECTL_NETWORK" description:"network name" default:"mainnet"`
	Slot          int64  `long:"slot" description:"replay activations up to this slot, -1 for all" default:"-1"`
	SlotsPerEpoch int64  `long:"slots-per-epoch" env:"FEATURECTL_SLOTS_PER_EPOCH" description:"slots per normal epoch" default:"432000"`
	NoWarmup      bool   `long:"no-warmup" env:"FEATURECTL_NO_WARMUP" description:"disable epoch warmup"`
}

type statusFeature struct {
	ID          feature.ID `json:"id"`
	Description string     `json:"description"`
	Slot        *uint64    `json:"slot,omitempty"`
}

type statusView struct {
	Network            model.Network   `json:"network"`
	Catalog            feature.Digest  `json:"catalog"`
	Active             feature.Digest  `json:"active"`
	Head               uint64          `json:"head"`
	StoredHead         *uint64         `json:"stored_head"`
	Applied            int             `json:"applied"`
	Unknown            int             `json:"unknown"`
	FullInflation      []feature.ID    `json:"full_inflation"`
	WarmupCooldownRate *uint64         `json:"warmup_cooldown_rate_epoch"`
	ActiveFeatures     []statusFeature `json:"active_features"`
	InactiveFeatures   []statusFeature `json:"inactive_features"`
}

func (c *statusCommand) Execute([]string) error {
	features, err := c.app.catalog()
	if err != nil {
		return err
	}
	upTo, err := c.upTo()
	if err != nil {
		return err
	}
	schedule, err := c.schedule()
	if err != nil {
		return err
	}

	network := model.Network(c.Network)
	repo, err := clickhouse.NewRepository(c.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	replayer, err := replay.NewReplayer(repo, features, network, metrics.NewReplay(network), c.app.logger)
	if err != nil {
		return err
	}
	set, res, err := replayer.Build(c.app.ctx, upTo)
	if err != nil {
		return err
	}

	view := newStatusView(network, set, res, schedule)
	stored, ok, err := repo.MaxActivationSlot(c.app.ctx, network)
	if err != nil {
		return err
	}
	if ok {
		view.StoredHead = &stored
	}
	if c.app.opts.JSON {
		return c.app.printJSON(view)
	}
	return printStatus(c.app, view)
}

func (c *statusCommand) upTo() (uint64, error) {
	if c.Slot == -1 {
		return math.MaxUint64, nil
	}
	slot, err := safe.Uint64(c.Slot)
	if err != nil {
		return 0, fmt.Errorf("slot: %w", err)
	}
	return slot, nil
}

func (c *statusCommand) schedule() (epoch.Schedule, error) {
	slotsPerEpoch, err := safe.Uint64(c.SlotsPerEpoch)
	if err != nil {
		return epoch.Schedule{}, fmt.Errorf("slots per epoch: %w", err)
	}
	schedule, err := epoch.New(slotsPerEpoch, slotsPerEpoch, !c.NoWarmup)
	if err != nil {
		return epoch.Schedule{}, fmt.Errorf("init epoch schedule: %w", err)
	}
	return schedule, nil
}

func newStatusView(network model.Network, set *feature.Set, res replay.Result, schedule feature.EpochSchedule) statusView {
	c := set.Catalog()
	view := statusView{
		Network:       network,
		Catalog:       c.Identity(),
		Active:        set.Identity(),
		Head:          res.Head,
		Applied:       res.Applied,
		Unknown:       res.Unknown,
		FullInflation: feature.SortedIDs(catalog.FullInflationFeaturesEnabled(set)),
	}
	if e, ok := catalog.NewWarmupCooldownRateEpoch(set, schedule); ok {
		view.WarmupCooldownRate = &e
	}
	for _, id := range set.ActiveIDs() {
		slot, _ := set.ActivatedSlot(id)
		description, _ := c.Description(id)
		view.ActiveFeatures = append(view.ActiveFeatures, statusFeature{ID: id, Description: description, Slot: &slot})
	}
	for _, id := range set.Inactive() {
		description, _ := c.Description(id)
		view.InactiveFeatures = append(view.InactiveFeatures, statusFeature{ID: id, Description: description})
	}
	return view
}

func printStatus(a *app, view statusView) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "network\t%s\n", view.Network)
	fmt.Fprintf(w, "catalog identity\t%s\n", view.Catalog)
	fmt.Fprintf(w, "active identity\t%s\n", view.Active)
	fmt.Fprintf(w, "head slot\t%d\n", view.Head)
	if view.StoredHead != nil {
		fmt.Fprintf(w, "stored head slot\t%d\n", *view.StoredHead)
	}
	fmt.Fprintf(w, "activations\t%d applied, %d unknown\n", view.Applied, view.Unknown)
	fmt.Fprintf(w, "full inflation\t%d outcome(s)\n", len(view.FullInflation))
	if view.WarmupCooldownRate != nil {
		fmt.Fprintf(w, "warmup cooldown rate epoch\t%d\n", *view.WarmupCooldownRate)
	} else {
		fmt.Fprintln(w, "warmup cooldown rate epoch\t-")
	}
	fmt.Fprintf(w, "features\t%d active, %d inactive\n", len(view.ActiveFeatures), len(view.InactiveFeatures))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "SLOT\tID\tDESCRIPTION")
	for _, f := range view.ActiveFeatures {
		fmt.Fprintf(w, "%d\t%s\t%s\n", *f.Slot, f.ID, f.Description)
	}
	return w.Flush()
}
