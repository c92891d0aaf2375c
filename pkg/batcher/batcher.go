// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

const (
	defaultFlushSize     = 100
	defaultFlushInterval = time.Second
	defaultRPS           = 10

	maxRetryBackoff = 30 * time.Second
	finalAttempts   = 3
	finalPause      = 200 * time.Millisecond
)

// Config tunes when batches are flushed. Zero values fall back to defaults.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	// RPS caps how many flushes run per second.
	RPS int
	// MaxPending bounds the items held back by failed flushes. While it is
	// reached the batcher stops accepting items and Add blocks.
	MaxPending int
}

// FlushFunc writes one batch. The slice is reused after the call returns.
type FlushFunc[T any] func(context.Context, []T) error

// Batcher buffers items and flushes them either by size or interval.
//
// A failed batch is kept and retried with exponential backoff. Items are only
// dropped after the final attempts on shutdown fail, and OnDrop reports them.
type Batcher[T any] struct {
	flush         FlushFunc[T]
	onFlush       func(size int, err error)
	onDrop        func(size int)
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	maxPending    int
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flush FlushFunc[T], cfg Config) *Batcher[T] {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = defaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if cfg.RPS <= 0 {
		cfg.RPS = defaultRPS
	}
	if cfg.MaxPending <= 0 {
		cfg.MaxPending = cfg.FlushSize * 10
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Batcher[T]{
		logger:        logger,
		flush:         flush,
		itemsCh:       make(chan T, cfg.FlushSize*2),
		flushSize:     cfg.FlushSize,
		flushInterval: cfg.FlushInterval,
		maxPending:    max(cfg.MaxPending, cfg.FlushSize),
		rl:            ratelimit.New(cfg.RPS),
		stop:          make(chan struct{}),
	}
}

// OnFlush registers a hook called after every flush attempt. It must be set
// before Start.
func (b *Batcher[T]) OnFlush(fn func(size int, err error)) {
	b.onFlush = fn
}

// OnDrop registers a hook called with the number of items given up on
// shutdown. It must be set before Start.
func (b *Batcher[T]) OnDrop(fn func(size int)) {
	b.onDrop = fn
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes the buffered items and waits for the loop to exit. It is safe
// to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues items for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, items ...T) error {
	for _, item := range items {
		select {
		case <-b.stop:
			return ErrStopped
		default:
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.stop:
			return ErrStopped
		case b.itemsCh <- item:
		}
	}
	return nil
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	var (
		buf     = make([]T, 0, b.flushSize)
		backoff time.Duration
		retryAt time.Time
	)

	// flush writes buf in batches of flushSize. A failed batch stays at the
	// head of buf until retryAt.
	flush := func(ctx context.Context) error {
		for len(buf) > 0 {
			n := min(len(buf), b.flushSize)
			b.rl.Take()
			err := b.flush(ctx, buf[:n])
			if b.onFlush != nil {
				b.onFlush(n, err)
			}
			if err != nil {
				backoff = min(max(2*backoff, b.flushInterval), maxRetryBackoff)
				retryAt = time.Now().Add(backoff)
				b.logger.Error("batch not flushed",
					zap.Error(err),
					zap.Int("size", n),
					zap.Int("pending", len(buf)),
					zap.Duration("retry_in", backoff),
				)
				return err
			}
			b.logger.Debug("batch flushed", zap.Int("size", n))
			buf = buf[:copy(buf, buf[n:])]
			backoff, retryAt = 0, time.Time{}
		}
		return nil
	}

	ready := func() bool {
		return !time.Now().Before(retryAt)
	}

	// drain moves everything already queued into buf.
	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
			default:
				return
			}
		}
	}

	// finish stores what is left, giving up after finalAttempts failures.
	finish := func(ctx context.Context) {
		drain()
		for attempt := 1; ; attempt++ {
			err := flush(ctx)
			if err == nil {
				return
			}
			if attempt == finalAttempts {
				b.logger.Error("dropping unflushed items", zap.Error(err), zap.Int("size", len(buf)))
				if b.onDrop != nil {
					b.onDrop(len(buf))
				}
				buf = buf[:0]
				return
			}
			time.Sleep(min(b.flushInterval, finalPause))
		}
	}

	for {
		in := b.itemsCh
		if len(buf) >= b.maxPending {
			in = nil
		}

		select {
		case <-ctx.Done():
			finish(context.WithoutCancel(ctx))
			return

		case <-b.stop:
			finish(ctx)
			return

		case item := <-in:
			buf = append(buf, item)
			if len(buf) >= b.flushSize && ready() {
				_ = flush(ctx)
			}

		case <-ticker.C:
			if ready() {
				_ = flush(ctx)
			}
		}
	}
}
