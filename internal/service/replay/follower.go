package replay

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/featuregate/internal/clock"
	"github.com/goodnatureofminers/featuregate/internal/feature"
)

const defaultPollInterval = 5 * time.Second

// Snapshot is a published copy of the live feature set. Readers must treat Set
// as read-only and call Fork to obtain a set they may mutate.
type Snapshot struct {
	Set       *feature.Set
	Head      uint64
	UpdatedAt time.Time
}

// Fork returns an independent copy of the snapshot's set.
func (s Snapshot) Fork() *feature.Set {
	return s.Set.Clone()
}

// Follower owns the live feature set of a network. It is the only writer of
// that set and publishes a fresh copy after every change, so readers never
// observe a set under mutation.
//
// Each poll re-reads the head slot, since activations sharing a slot may be
// stored in separate batches. Activations stored later for slots below the head
// are picked up only by a fresh replay.
type Follower struct {
	logger       *zap.Logger
	replayer     *Replayer
	metrics      Metrics
	readiness    Readiness
	wait         func(context.Context, time.Duration, <-chan struct{}) error
	pollInterval time.Duration
	signal       <-chan struct{}

	live     *feature.Set
	next     uint64
	head     uint64
	ready    bool
	snapshot atomic.Pointer[Snapshot]
}

// NewFollower builds a Follower starting from an empty feature set. A value on
// signal triggers an immediate poll. readiness and signal may be nil.
func NewFollower(replayer *Replayer, pollInterval time.Duration, readiness Readiness, signal <-chan struct{}) (*Follower, error) {
	if replayer == nil {
		return nil, errors.New("replayer is required")
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Follower{
		logger:       replayer.logger.Named("follower"),
		replayer:     replayer,
		metrics:      replayer.metrics,
		readiness:    readiness,
		wait:         clock.WaitForSignal,
		pollInterval: pollInterval,
		signal:       signal,
		live:         feature.NewSet(replayer.catalog),
	}, nil
}

// Run polls for new activations until the context is canceled.
func (f *Follower) Run(ctx context.Context) error {
	defer f.setReady(false)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := f.poll(ctx); err != nil {
			f.logger.Warn("poll failed, backing off", zap.Error(err), zap.Duration("sleep", f.pollInterval))
		}
		if err := f.wait(ctx, f.pollInterval, f.signal); err != nil {
			return err
		}
	}
}

// Snapshot returns the latest published feature set. The boolean is false until
// the first replay completed.
func (f *Follower) Snapshot() (Snapshot, bool) {
	s := f.snapshot.Load()
	if s == nil {
		return Snapshot{}, false
	}
	return *s, true
}

func (f *Follower) poll(ctx context.Context) error {
	res, err := f.replayer.Apply(ctx, f.live, f.next, math.MaxUint64)
	if err != nil {
		return err
	}

	if res.Seen > 0 {
		f.head = res.Head
		f.next = res.Head
	}

	published := f.snapshot.Load()
	if published == nil || published.Head != f.head || !published.Set.Equal(f.live) {
		f.publish()
		f.logger.Info("feature set updated",
			zap.Int("applied", res.Applied),
			zap.Int("active", f.live.Len()),
			zap.Uint64("head", f.head),
			zap.Stringer("identity", f.live.Identity()),
		)
	}

	if !f.ready {
		f.setReady(true)
	}
	return nil
}

func (f *Follower) publish() {
	f.snapshot.Store(&Snapshot{
		Set:       f.live.Clone(),
		Head:      f.head,
		UpdatedAt: time.Now(),
	})
	f.metrics.ObserveFeatureSet(f.live.Len(), f.head)
}

func (f *Follower) setReady(ready bool) {
	f.ready = ready
	if f.readiness != nil {
		f.readiness.SetReady(ready)
	}
}
