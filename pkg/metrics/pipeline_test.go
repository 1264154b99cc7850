package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestPipelineMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPipelineMetrics(reg)
	metrics.ObserveStage("logs", StageFilter, 250*time.Millisecond)
	metrics.IncExport("logs", "csv")
	metrics.IncExport("logs", "csv")
	metrics.IncExportFailure("orders", "pdf")
	metrics.IncCacheHit("logs")
	metrics.IncCacheMiss("logs")
	metrics.IncCacheMiss("logs")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "analytics_exports_total", map[string]string{"dataset": "logs", "format": "csv"}); err != nil {
		t.Fatalf("fetch exports: %v", err)
	} else if got != 2 {
		t.Fatalf("expected exports=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "analytics_export_failures_total", map[string]string{"dataset": "orders", "format": "pdf"}); err != nil {
		t.Fatalf("fetch failures: %v", err)
	} else if got != 1 {
		t.Fatalf("expected failures=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "analytics_export_cache_total", map[string]string{"dataset": "logs", "result": "miss"}); err != nil {
		t.Fatalf("fetch cache miss: %v", err)
	} else if got != 2 {
		t.Fatalf("expected miss=2, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "analytics_stage_duration_seconds", map[string]string{"dataset": "logs", "stage": StageFilter}); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got != 0.25 {
		t.Fatalf("expected duration sum 0.25, got %f", got)
	}
}

func TestPipelineMetricsTimer(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPipelineMetrics(reg)
	metrics.Time("", StageRender)()

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	mf := findMetricFamily(mfs, "analytics_stage_duration_seconds")
	if mf == nil {
		t.Fatalf("histogram not registered")
	}
	if _, err := fetchHistogramSum(mfs, "analytics_stage_duration_seconds", map[string]string{"dataset": "unknown", "stage": StageRender}); err != nil {
		t.Fatalf("empty dataset label should normalise: %v", err)
	}
}

func TestNilPipelineMetricsIsNoop(t *testing.T) {
	var metrics *PipelineMetrics
	metrics.ObserveStage("logs", StageLoad, time.Second)
	metrics.IncExport("logs", "csv")
	metrics.IncExportFailure("logs", "csv")
	metrics.IncCacheHit("logs")
	metrics.Time("logs", StageLoad)()

	unregistered := NewPipelineMetrics(nil)
	unregistered.IncCacheMiss("logs")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing labels %v", name, labels)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing labels %v", name, labels)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	matched := 0
	for _, pair := range pairs {
		if v, ok := want[pair.GetName()]; ok {
			if v != pair.GetValue() {
				return false
			}
			matched++
		}
	}
	return matched == len(want)
}
