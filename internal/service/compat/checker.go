// Package compat checks whether peers were built with the same feature catalog.
package compat

import (
	"context"
	"errors"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/featuregate/internal/feature"
	"github.com/goodnatureofminers/featuregate/internal/model"
	"github.com/goodnatureofminers/featuregate/pkg/workerpool"
)

// Status is the outcome of checking one peer.
type Status string

const (
	StatusCompatible  Status = "compatible"
	StatusMismatch    Status = "mismatch"
	StatusUnreachable Status = "unreachable"
)

const (
	defaultWorkers = 4
	defaultRPS     = 20
)

// PeerStatus reports one peer. Identity is zero when the peer was unreachable.
type PeerStatus struct {
	Peer     string         `json:"peer"`
	Status   Status         `json:"status"`
	Identity model.Identity `json:"identity"`
	Error    string         `json:"error,omitempty"`
}

// PeerChecker compares the catalog identity of peers against the local one.
type PeerChecker struct {
	fetcher IdentityFetcher
	local   feature.Digest
	metrics Metrics
	logger  *zap.Logger
	workers int
	rl      ratelimit.Limiter
}

// NewPeerChecker builds a PeerChecker. Non-positive workers or rps fall back to
// defaults.
func NewPeerChecker(
	fetcher IdentityFetcher,
	local feature.Digest,
	metrics Metrics,
	logger *zap.Logger,
	workers, rps int,
) (*PeerChecker, error) {
	if fetcher == nil {
		return nil, errors.New("identity fetcher is required")
	}
	if metrics == nil {
		return nil, errors.New("peer checker metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	if rps <= 0 {
		rps = defaultRPS
	}
	return &PeerChecker{
		fetcher: fetcher,
		local:   local,
		metrics: metrics,
		logger:  logger.Named("peer_checker"),
		workers: workers,
		rl:      ratelimit.New(rps),
	}, nil
}

// Check queries every peer and returns their statuses in input order. Peers
// that cannot be reached are reported, not returned as an error; the error is
// non-nil only when ctx ends first.
func (c *PeerChecker) Check(ctx context.Context, peers []string) ([]PeerStatus, error) {
	return workerpool.Map(ctx, c.workers, peers, func(ctx context.Context, peer string) (PeerStatus, error) {
		c.rl.Take()
		if err := ctx.Err(); err != nil {
			return PeerStatus{}, err
		}
		return c.check(ctx, peer), nil
	})
}

func (c *PeerChecker) check(ctx context.Context, peer string) PeerStatus {
	started := time.Now()
	result := PeerStatus{Peer: peer}

	identity, err := c.fetcher.FetchIdentity(ctx, peer)
	switch {
	case err != nil:
		result.Status = StatusUnreachable
		result.Error = err.Error()
		c.logger.Warn("peer unreachable", zap.String("peer", peer), zap.Error(err))
	case identity.Catalog != c.local:
		result.Status = StatusMismatch
		result.Identity = identity
		c.logger.Warn("peer catalog mismatch",
			zap.String("peer", peer),
			zap.Stringer("local", c.local),
			zap.Stringer("remote", identity.Catalog),
		)
	default:
		result.Status = StatusCompatible
		result.Identity = identity
	}

	c.metrics.ObserveCheck(string(result.Status), started)
	return result
}

// AllCompatible reports whether every status is StatusCompatible.
func AllCompatible(statuses []PeerStatus) bool {
	for _, s := range statuses {
		if s.Status != StatusCompatible {
			return false
		}
	}
	return true
}
