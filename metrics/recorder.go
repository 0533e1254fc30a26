package metrics

import "time"

// CacheOutcome enumerates cache lookup results for counters.
type CacheOutcome string

const (
	CacheHit     CacheOutcome = "hit"
	CacheMiss    CacheOutcome = "miss"
	CacheRebuild CacheOutcome = "rebuild"
)

// Recorder defines observability hooks for catalog operations. Implementations
// may forward to Prometheus, OpenTelemetry, etc. The NoopRecorder allows
// optional injection.
type Recorder interface {
	IncCacheLookup(category string, outcome CacheOutcome)
	ObserveRebuildDuration(category string, d time.Duration)
	ObserveCompileDuration(category string, d time.Duration, success bool)
	SetCachedCountries(category string, n int)
	SetCachedPrograms(category string, n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncCacheLookup(string, CacheOutcome)                {}
func (NoopRecorder) ObserveRebuildDuration(string, time.Duration)       {}
func (NoopRecorder) ObserveCompileDuration(string, time.Duration, bool) {}
func (NoopRecorder) SetCachedCountries(string, int)                     {}
func (NoopRecorder) SetCachedPrograms(string, int)                      {}
