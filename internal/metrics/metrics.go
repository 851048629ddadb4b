package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	fetches          int
	errors           int
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about source fetches and
// aggregation cycles. It is intentionally simple so it can be swapped for a
// real backend later; when otel instruments are attached it forwards to them.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sourceStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordSourceFetch increments counters for one source fetch and stores the
// last observed latency.
func (r *Recorder) RecordSourceFetch(league string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[league]
	if !ok {
		stats = &sourceStats{}
		r.stats[league] = stats
	}
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceFetch(league, duration, err)
	}
}

// SourceFetches returns the total fetch attempts recorded for a source.
func (r *Recorder) SourceFetches(league string) int {
	return r.Snapshot(league).Fetches
}

// SourceErrors returns the total failed fetches recorded for a source.
func (r *Recorder) SourceErrors(league string) int {
	return r.Snapshot(league).Errors
}

// LastFetchLatency returns the last recorded latency for a source fetch.
func (r *Recorder) LastFetchLatency(league string) time.Duration {
	return r.Snapshot(league).LastFetchLatency
}

// Snapshot is a copy of the current stats for one source.
type Snapshot struct {
	Fetches          int
	Errors           int
	LastFetchLatency time.Duration
}

func (r *Recorder) Snapshot(league string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(league)
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordAggregation tracks one merge/sort cycle and the resulting schedule size.
func (r *Recorder) RecordAggregation(duration time.Duration, games int, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordAggregation(duration, games, err)
}

// RecordUpload tracks one storage publish attempt.
func (r *Recorder) RecordUpload(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordUpload(duration, err)
}

func (r *Recorder) snapshot(league string) sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[league]; ok && stats != nil {
		return *stats
	}
	return sourceStats{}
}
