// Package recorder accepts activation events from chain observers and writes
// them to the activation store in batches.
package recorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/featuregate/internal/feature"
	"github.com/goodnatureofminers/featuregate/internal/model"
	"github.com/goodnatureofminers/featuregate/pkg/batcher"
)

// ErrMissingNetwork is returned for events that do not name a network.
var ErrMissingNetwork = errors.New("activation network is required")

// Recorder queues activation events and flushes them to the store.
//
// Failed batches are retried. While too many events wait for a retry, Record
// blocks until its context ends. Events still unstored at shutdown are
// counted as dropped.
//
// Events for features outside the local catalog are stored as well: a newer
// build may know them. They are counted separately and skipped on replay.
type Recorder struct {
	repo    ActivationWriter
	catalog *feature.Catalog
	metrics Metrics
	logger  *zap.Logger
	batcher *batcher.Batcher[model.Activation]
	flushed chan struct{}
}

// NewRecorder builds a Recorder. Call Start before Record.
func NewRecorder(
	repo ActivationWriter,
	catalog *feature.Catalog,
	metrics Metrics,
	logger *zap.Logger,
	cfg batcher.Config,
) (*Recorder, error) {
	if repo == nil {
		return nil, errors.New("activation writer is required")
	}
	if catalog == nil {
		return nil, errors.New("feature catalog is required")
	}
	if metrics == nil {
		return nil, errors.New("recorder metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Recorder{
		repo:    repo,
		catalog: catalog,
		metrics: metrics,
		logger:  logger.Named("recorder"),
		flushed: make(chan struct{}, 1),
	}
	r.batcher = batcher.New(r.logger, r.flush, cfg)
	r.batcher.OnDrop(r.metrics.ObserveDropped)
	return r, nil
}

// Start runs the background flush loop until ctx is canceled or Stop is called.
func (r *Recorder) Start(ctx context.Context) {
	r.batcher.Start(ctx)
}

// Stop flushes queued events and waits for the flush loop to exit.
func (r *Recorder) Stop() {
	r.batcher.Stop()
}

// Flushed delivers a value after a batch has been stored. Values are coalesced
// while nobody is receiving.
func (r *Recorder) Flushed() <-chan struct{} {
	return r.flushed
}

// Record validates and queues activation events. Either all events are
// queued or, on a validation error, none are.
func (r *Recorder) Record(ctx context.Context, activations ...model.Activation) error {
	for i, a := range activations {
		if a.Network == "" {
			return fmt.Errorf("activation %d: %w", i, ErrMissingNetwork)
		}
	}

	for _, a := range activations {
		known := r.catalog.Contains(a.FeatureID)
		r.metrics.ObserveReceived(a.Network, known)
		if !known {
			r.logger.Info("recording activation of unknown feature",
				zap.String("network", string(a.Network)),
				zap.Stringer("feature", a.FeatureID),
				zap.Uint64("slot", a.Slot),
			)
		}
	}

	if err := r.batcher.Add(ctx, activations...); err != nil {
		return fmt.Errorf("queue activations: %w", err)
	}
	return nil
}

func (r *Recorder) flush(ctx context.Context, activations []model.Activation) error {
	started := time.Now()
	err := r.repo.InsertActivations(ctx, activations)
	r.metrics.ObserveFlush(err, len(activations), started)
	if err != nil {
		return fmt.Errorf("insert %d activations: %w", len(activations), err)
	}

	select {
	case r.flushed <- struct{}{}:
	default:
	}
	return nil
}
