package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	peerChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "peer_checker",
		Name:      "checks_total",
		Help:      "Count of peer compatibility checks by outcome.",
	}, []string{"outcome"})

	peerCheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "peer_checker",
		Name:      "check_duration_seconds",
		Help:      "Duration of a single peer compatibility check.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
)

// PeerChecker tracks metrics for peer compatibility checks.
type PeerChecker struct{}

// NewPeerChecker creates a PeerChecker metrics collector.
func NewPeerChecker() *PeerChecker {
	return &PeerChecker{}
}

// ObserveCheck records the outcome of checking one peer.
func (m PeerChecker) ObserveCheck(outcome string, started time.Time) {
	peerChecksTotal.WithLabelValues(outcome).Inc()
	peerCheckDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}
