package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	cacheLookups    *prom.CounterVec
	rebuildDuration *prom.HistogramVec
	compileDuration *prom.HistogramVec
	cachedCountries *prom.GaugeVec
	cachedPrograms  *prom.GaugeVec
}

// NewPrometheusRecorder constructs and registers catalog metrics on reg
// (a private registry is used when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		cacheLookups: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "contentcatalog",
			Name:      "cache_lookups_total",
			Help:      "Catalog cache lookups by outcome",
		}, []string{"category", "outcome"}),
		rebuildDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "contentcatalog",
			Name:      "rebuild_duration_seconds",
			Help:      "Duration of full catalog cache rebuilds",
			Buckets:   prom.DefBuckets,
		}, []string{"category"}),
		compileDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "contentcatalog",
			Name:      "compile_duration_seconds",
			Help:      "Duration of per-document section compilation",
			Buckets:   prom.DefBuckets,
		}, []string{"category", "result"}),
		cachedCountries: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "contentcatalog",
			Name:      "cached_countries",
			Help:      "Country records held in the current cache generation",
		}, []string{"category"}),
		cachedPrograms: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "contentcatalog",
			Name:      "cached_programs",
			Help:      "Program records held in the current cache generation",
		}, []string{"category"}),
	}
	reg.MustRegister(pr.cacheLookups, pr.rebuildDuration, pr.compileDuration, pr.cachedCountries, pr.cachedPrograms)
	return pr
}

func (pr *PrometheusRecorder) IncCacheLookup(category string, outcome CacheOutcome) {
	pr.cacheLookups.WithLabelValues(category, string(outcome)).Inc()
}

func (pr *PrometheusRecorder) ObserveRebuildDuration(category string, d time.Duration) {
	pr.rebuildDuration.WithLabelValues(category).Observe(d.Seconds())
}

func (pr *PrometheusRecorder) ObserveCompileDuration(category string, d time.Duration, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	pr.compileDuration.WithLabelValues(category, result).Observe(d.Seconds())
}

func (pr *PrometheusRecorder) SetCachedCountries(category string, n int) {
	pr.cachedCountries.WithLabelValues(category).Set(float64(n))
}

func (pr *PrometheusRecorder) SetCachedPrograms(category string, n int) {
	pr.cachedPrograms.WithLabelValues(category).Set(float64(n))
}
