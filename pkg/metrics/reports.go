package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ReportMetrics records timing and outcome counters for report computations.
type ReportMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewReportMetrics registers the report metrics on the provided registerer.
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	if reg == nil {
		return &ReportMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_duration_seconds",
		Help:    "Duration of seller report computations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_success",
		Help: "Successful seller report computations.",
	}, []string{"kind"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_failure",
		Help: "Failed seller report computations.",
	}, []string{"kind"})
	reg.MustRegister(duration, success, failure)
	return &ReportMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named report kind.
func (m *ReportMetrics) ObserveDuration(kind string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(kind)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named report kind.
func (m *ReportMetrics) IncSuccess(kind string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncFailure increments the failure counter for the named report kind.
func (m *ReportMetrics) IncFailure(kind string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(kind)).Inc()
}

func normalizeLabel(kind string) string {
	if kind == "" {
		return "unknown"
	}
	return kind
}
