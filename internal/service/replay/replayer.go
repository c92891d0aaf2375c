// Package replay rebuilds feature sets from stored activations and keeps a live
// set up to date for concurrent readers.
package replay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/featuregate/internal/feature"
	"github.com/goodnatureofminers/featuregate/internal/model"
)

// Result summarizes one replay pass.
type Result struct {
	// Seen counts every loaded activation, Applied those known to the catalog
	// and Unknown those that were skipped.
	Seen    int
	Applied int
	Unknown int
	// Head is the highest slot among the loaded activations. It is only
	// meaningful when Seen > 0.
	Head uint64
}

// Replayer applies stored activations of one network to feature sets.
type Replayer struct {
	repo    ActivationRepository
	catalog *feature.Catalog
	network model.Network
	metrics Metrics
	logger  *zap.Logger
}

// NewReplayer builds a Replayer.
func NewReplayer(
	repo ActivationRepository,
	catalog *feature.Catalog,
	network model.Network,
	metrics Metrics,
	logger *zap.Logger,
) (*Replayer, error) {
	if repo == nil {
		return nil, errors.New("activation repository is required")
	}
	if catalog == nil {
		return nil, errors.New("feature catalog is required")
	}
	if network == "" {
		return nil, errors.New("network is required")
	}
	if metrics == nil {
		return nil, errors.New("replay metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Replayer{
		repo:    repo,
		catalog: catalog,
		network: network,
		metrics: metrics,
		logger:  logger.With(zap.String("network", string(network))),
	}, nil
}

// Build returns a new feature set holding every activation up to and including slot.
func (r *Replayer) Build(ctx context.Context, slot uint64) (*feature.Set, Result, error) {
	set := feature.NewSet(r.catalog)
	res, err := r.Apply(ctx, set, 0, slot)
	if err != nil {
		return nil, res, err
	}
	return set, res, nil
}

// Apply loads the activations with fromSlot <= slot <= toSlot and applies them
// to set in slot order. set is left untouched when loading fails.
func (r *Replayer) Apply(ctx context.Context, set *feature.Set, fromSlot, toSlot uint64) (res Result, err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveReplay(err, res.Applied, res.Unknown, started)
	}()

	activations, err := r.repo.Activations(ctx, r.network, fromSlot, toSlot)
	if err != nil {
		return Result{}, fmt.Errorf("load activations %d..%d: %w", fromSlot, toSlot, err)
	}

	for _, a := range activations {
		res.Seen++
		res.Head = max(res.Head, a.Slot)
		if !r.catalog.Contains(a.FeatureID) {
			res.Unknown++
			r.logger.Warn("skipping activation of unknown feature",
				zap.Stringer("feature", a.FeatureID),
				zap.Uint64("slot", a.Slot),
			)
			continue
		}
		set.Activate(a.FeatureID, a.Slot)
		res.Applied++
	}

	r.logger.Debug("activations replayed",
		zap.Uint64("from", fromSlot),
		zap.Uint64("to", toSlot),
		zap.Int("applied", res.Applied),
		zap.Int("unknown", res.Unknown),
	)
	return res, nil
}
