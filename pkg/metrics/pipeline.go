package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Pipeline stages observed by PipelineMetrics.
const (
	StageLoad      = "load"
	StageFilter    = "filter"
	StagePaginate  = "paginate"
	StageAggregate = "aggregate"
	StageRender    = "render"
)

// PipelineMetrics records stage timings, exports and export cache effectiveness.
// A nil *PipelineMetrics is valid and records nothing.
type PipelineMetrics struct {
	duration *prometheus.HistogramVec
	exports  *prometheus.CounterVec
	failures *prometheus.CounterVec
	cache    *prometheus.CounterVec
}

// NewPipelineMetrics registers the pipeline metrics on the provided registerer.
func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	if reg == nil {
		return &PipelineMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analytics_stage_duration_seconds",
		Help:    "Duration of analytics pipeline stages in seconds.",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"dataset", "stage"})
	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analytics_exports_total",
		Help: "Exports rendered or served from cache.",
	}, []string{"dataset", "format"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analytics_export_failures_total",
		Help: "Exports that could not be rendered.",
	}, []string{"dataset", "format"})
	cache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analytics_export_cache_total",
		Help: "Export cache lookups by result.",
	}, []string{"dataset", "result"})
	reg.MustRegister(duration, exports, failures, cache)
	return &PipelineMetrics{
		duration: duration,
		exports:  exports,
		failures: failures,
		cache:    cache,
	}
}

// ObserveStage records how long one stage took for dataset.
func (m *PipelineMetrics) ObserveStage(dataset, stage string, d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(dataset), normalizeLabel(stage)).Observe(d.Seconds())
}

// Time starts a stage timer; call the returned func when the stage ends.
func (m *PipelineMetrics) Time(dataset, stage string) func() {
	start := time.Now()
	return func() { m.ObserveStage(dataset, stage, time.Since(start)) }
}

// IncExport counts a delivered export.
func (m *PipelineMetrics) IncExport(dataset, format string) {
	if m == nil || m.exports == nil {
		return
	}
	m.exports.WithLabelValues(normalizeLabel(dataset), normalizeLabel(format)).Inc()
}

// IncExportFailure counts an export that failed to render.
func (m *PipelineMetrics) IncExportFailure(dataset, format string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(dataset), normalizeLabel(format)).Inc()
}

// IncCacheHit counts an export served from cache.
func (m *PipelineMetrics) IncCacheHit(dataset string) {
	m.incCache(dataset, "hit")
}

// IncCacheMiss counts an export that had to be rendered.
func (m *PipelineMetrics) IncCacheMiss(dataset string) {
	m.incCache(dataset, "miss")
}

func (m *PipelineMetrics) incCache(dataset, result string) {
	if m == nil || m.cache == nil {
		return
	}
	m.cache.WithLabelValues(normalizeLabel(dataset), result).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
