// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "resume",
		Name:      "analyses_total",
		Help:      "Resume submissions by role and result kind.",
	}, []string{"role", "kind"})

	ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "resume",
		Name:      "extraction_duration_seconds",
		Help:      "Time spent extracting text from uploaded PDFs.",
		Buckets:   prometheus.DefBuckets,
	})

	GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "resume",
		Name:      "generation_duration_seconds",
		Help:      "Latency of text generation calls by role.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"role"})

	UploadsSwept = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "resume",
		Name:      "uploads_swept_total",
		Help:      "Uploaded files removed by the retention sweeper.",
	})
)

// ObserveAnalysis counts one finished submission. Unknown roles are folded
// into a single label value to keep cardinality bounded.
func ObserveAnalysis(role, kind string) {
	switch role {
	case "candidate", "hr":
	default:
		role = "unknown"
	}
	AnalysesTotal.WithLabelValues(role, kind).Inc()
}

func Since(h prometheus.Observer, start time.Time) {
	h.Observe(time.Since(start).Seconds())
}
