package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder on a private Prometheus registry.
type PrometheusRecorder struct {
	registry *prom.Registry

	stageDuration *prom.HistogramVec
	buildDuration prom.Histogram
	buildOutcome  *prom.CounterVec
	pagesRendered prom.Counter
	pagesCached   prom.Counter
	reloads       prom.Counter
}

// NewPrometheusRecorder constructs and registers the patternbook metrics. A
// nil registry gets a fresh private one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{registry: reg}
	pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "patternbook",
		Name:      "stage_duration_seconds",
		Help:      "Duration of individual build stages",
		Buckets:   prom.DefBuckets,
	}, []string{"stage"})
	pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "patternbook",
		Name:      "build_duration_seconds",
		Help:      "Total site build duration",
		Buckets:   prom.DefBuckets,
	})
	pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "patternbook",
		Name:      "build_outcome_total",
		Help:      "Build results by outcome",
	}, []string{"outcome"})
	pr.pagesRendered = prom.NewCounter(prom.CounterOpts{
		Namespace: "patternbook",
		Name:      "pages_rendered_total",
		Help:      "Lecture pages rendered from markdown",
	})
	pr.pagesCached = prom.NewCounter(prom.CounterOpts{
		Namespace: "patternbook",
		Name:      "pages_from_cache_total",
		Help:      "Lecture pages served from the render cache",
	})
	pr.reloads = prom.NewCounter(prom.CounterOpts{
		Namespace: "patternbook",
		Name:      "livereload_broadcasts_total",
		Help:      "Live-reload events broadcast to preview clients",
	})

	reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.buildOutcome,
		pr.pagesRendered, pr.pagesCached, pr.reloads)
	return pr
}

// Registry exposes the backing registry for the /metrics handler.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.registry }

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome Outcome) {
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddPagesRendered(n int) {
	p.pagesRendered.Add(float64(n))
}

func (p *PrometheusRecorder) AddPagesFromCache(n int) {
	p.pagesCached.Add(float64(n))
}

func (p *PrometheusRecorder) IncReloadBroadcast() {
	p.reloads.Inc()
}
