package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/featuregate/internal/model"
)

var (
	recorderReceivedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "recorder",
		Name:      "received_activations_total",
		Help:      "Count of activation events received.",
	}, []string{"network", "catalog"})

	recorderFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "recorder",
		Name:      "flush_total",
		Help:      "Count of activation batch flushes.",
	}, []string{"status"})

	recorderFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "recorder",
		Name:      "flush_duration_seconds",
		Help:      "Duration of activation batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	recorderDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "recorder",
		Name:      "dropped_activations_total",
		Help:      "Count of activations given up after failed flushes on shutdown.",
	})

	recorderFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "recorder",
		Name:      "flush_size",
		Help:      "Number of activations per flushed batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})
)

// Recorder tracks metrics for the activation recorder.
type Recorder struct{}

// NewRecorder creates a Recorder metrics collector.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// ObserveReceived counts one received activation. known reports whether the
// feature is part of the local catalog.
func (m Recorder) ObserveReceived(network model.Network, known bool) {
	catalog := "known"
	if !known {
		catalog = "unknown"
	}
	recorderReceivedTotal.WithLabelValues(networkLabel(network), catalog).Inc()
}

// ObserveFlush records one batch written to the store.
func (m Recorder) ObserveFlush(err error, size int, started time.Time) {
	recorderFlushTotal.WithLabelValues(status(err)).Inc()
	recorderFlushDuration.WithLabelValues(status(err)).Observe(time.Since(started).Seconds())
	recorderFlushSize.Observe(float64(size))
}

// ObserveDropped counts activations that were never stored.
func (m Recorder) ObserveDropped(size int) {
	recorderDroppedTotal.Add(float64(size))
}
