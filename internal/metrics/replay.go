package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/featuregate/internal/model"
)

var (
	replayTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "replay",
		Name:      "runs_total",
		Help:      "Count of activation replay runs.",
	}, []string{"network", "status"})

	replayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "replay",
		Name:      "run_duration_seconds",
		Help:      "Duration of activation replay runs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	replayAppliedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "replay",
		Name:      "applied_activations_total",
		Help:      "Count of activations applied to a feature set.",
	}, []string{"network"})

	replayUnknownTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "replay",
		Name:      "unknown_activations_total",
		Help:      "Count of activations referencing features missing from the catalog.",
	}, []string{"network"})

	activeFeatures = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "feature_set",
		Name:      "active_features",
		Help:      "Number of active features in the live feature set.",
	}, []string{"network"})

	headSlot = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "feature_set",
		Name:      "head_slot",
		Help:      "Highest activation slot applied to the live feature set.",
	}, []string{"network"})
)

// Replay tracks metrics for rebuilding and following feature sets.
type Replay struct {
	network model.Network
}

// NewReplay creates a Replay metrics collector.
func NewReplay(network model.Network) *Replay {
	if network == "" {
		network = "unknown"
	}
	return &Replay{network: network}
}

// ObserveReplay records one replay run.
func (m Replay) ObserveReplay(err error, applied, unknown int, started time.Time) {
	net := string(m.network)
	replayTotal.WithLabelValues(net, status(err)).Inc()
	replayDuration.WithLabelValues(net, status(err)).Observe(time.Since(started).Seconds())
	if applied > 0 {
		replayAppliedTotal.WithLabelValues(net).Add(float64(applied))
	}
	if unknown > 0 {
		replayUnknownTotal.WithLabelValues(net).Add(float64(unknown))
	}
}

// ObserveFeatureSet records the size and head slot of the live feature set.
func (m Replay) ObserveFeatureSet(active int, head uint64) {
	activeFeatures.WithLabelValues(string(m.network)).Set(float64(active))
	headSlot.WithLabelValues(string(m.network)).Set(float64(head))
}
