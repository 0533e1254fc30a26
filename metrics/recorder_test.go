package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorder_SatisfiesInterface(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncCacheLookup("skilled", CacheHit)
	r.ObserveRebuildDuration("skilled", time.Second)
	r.ObserveCompileDuration("skilled", time.Second, true)
	r.SetCachedCountries("skilled", 3)
	r.SetCachedPrograms("skilled", 9)
}

func TestPrometheusRecorder_CountsLookups(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncCacheLookup("corporate", CacheHit)
	pr.IncCacheLookup("corporate", CacheHit)
	pr.IncCacheLookup("corporate", CacheMiss)

	hits := testutil.ToFloat64(pr.cacheLookups.WithLabelValues("corporate", "hit"))
	misses := testutil.ToFloat64(pr.cacheLookups.WithLabelValues("corporate", "miss"))
	assert.Equal(t, 2.0, hits)
	assert.Equal(t, 1.0, misses)
}

func TestPrometheusRecorder_Gauges(t *testing.T) {
	pr := NewPrometheusRecorder(nil)

	pr.SetCachedCountries("skilled", 7)
	pr.SetCachedPrograms("skilled", 21)

	require.Equal(t, 7.0, testutil.ToFloat64(pr.cachedCountries.WithLabelValues("skilled")))
	require.Equal(t, 21.0, testutil.ToFloat64(pr.cachedPrograms.WithLabelValues("skilled")))
}
