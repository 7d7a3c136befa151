package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ReportMetrics records how admin views and store reads behave.
type ReportMetrics struct {
	duration     *prometheus.HistogramVec
	failure      *prometheus.CounterVec
	storeFailure *prometheus.CounterVec
	deleted      *prometheus.CounterVec
}

// NewReportMetrics registers the report metrics on the provided registerer.
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	if reg == nil {
		return &ReportMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "admin_report_duration_seconds",
		Help:    "Duration of admin report builds in seconds, store reads included.",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_report_failure",
		Help: "Admin report builds that returned an error.",
	}, []string{"report"})
	storeFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_store_read_failure",
		Help: "Failed collection reads against the marketplace store.",
	}, []string{"collection"})
	deleted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_deleted_records",
		Help: "Records removed by admin delete operations.",
	}, []string{"collection"})
	reg.MustRegister(duration, failure, storeFailure, deleted)
	return &ReportMetrics{
		duration:     duration,
		failure:      failure,
		storeFailure: storeFailure,
		deleted:      deleted,
	}
}

// ObserveDuration records the build duration for the named report.
func (m *ReportMetrics) ObserveDuration(report string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(report)).Observe(duration.Seconds())
}

// IncFailure increments the failure counter for the named report.
func (m *ReportMetrics) IncFailure(report string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(report)).Inc()
}

// IncStoreFailure increments the read failure counter for a collection.
func (m *ReportMetrics) IncStoreFailure(collection string) {
	if m == nil || m.storeFailure == nil {
		return
	}
	m.storeFailure.WithLabelValues(normalizeLabel(collection)).Inc()
}

// AddDeleted adds n removed records for a collection.
func (m *ReportMetrics) AddDeleted(collection string, n int64) {
	if m == nil || m.deleted == nil || n <= 0 {
		return
	}
	m.deleted.WithLabelValues(normalizeLabel(collection)).Add(float64(n))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

// Failures exposes the report failure counter.
func (m *ReportMetrics) Failures() *prometheus.CounterVec {
	return m.failure
}

// StoreFailures exposes the store read failure counter.
func (m *ReportMetrics) StoreFailures() *prometheus.CounterVec {
	return m.storeFailure
}

// Deleted exposes the deleted records counter.
func (m *ReportMetrics) Deleted() *prometheus.CounterVec {
	return m.deleted
}
