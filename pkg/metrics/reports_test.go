package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestReportMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewReportMetrics(reg)
	metrics.ObserveDuration("overview", 250*time.Millisecond)
	metrics.IncFailure("overview")
	metrics.IncStoreFailure("orders")
	metrics.AddDeleted("products", 3)
	metrics.AddDeleted("products", 0)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "admin_report_failure", "report", "overview"); err != nil {
		t.Fatalf("fetch failure: %v", err)
	} else if got != 1 {
		t.Fatalf("expected failure=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "admin_store_read_failure", "collection", "orders"); err != nil {
		t.Fatalf("fetch store failure: %v", err)
	} else if got != 1 {
		t.Fatalf("expected store failure=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "admin_deleted_records", "collection", "products"); err != nil {
		t.Fatalf("fetch deleted: %v", err)
	} else if got != 3 {
		t.Fatalf("expected deleted=3, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "admin_report_duration_seconds", "report", "overview"); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestReportMetricsNilSafe(t *testing.T) {
	var metrics *ReportMetrics
	metrics.ObserveDuration("overview", time.Second)
	metrics.IncFailure("overview")
	metrics.IncStoreFailure("orders")
	metrics.AddDeleted("orders", 1)

	unregistered := NewReportMetrics(nil)
	unregistered.IncFailure("")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
