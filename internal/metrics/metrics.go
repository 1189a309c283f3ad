package metrics

import (
	"sync"
	"time"
)

// Store operation names.
const (
	OpLoad = "load"
	OpSave = "save"
)

type storeStats struct {
	loads       int
	saves       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about store operations
// and forwards everything to otel instruments when they are configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*storeStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*storeStats),
		otel:  otel,
	}
}

// RecordStoreOperation counts a load or save against a resource and keeps its latency.
func (r *Recorder) RecordStoreOperation(op, resource string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[resource]
	if !ok {
		stats = &storeStats{}
		r.stats[resource] = stats
	}
	switch op {
	case OpLoad:
		stats.loads++
	case OpSave:
		stats.saves++
	}
	if err != nil {
		stats.errors++
	}
	stats.lastLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStoreOperation(op, resource, duration, err)
	}
}

// Snapshot is a copy of the counters for one resource.
type Snapshot struct {
	Loads       int
	Saves       int
	Errors      int
	LastLatency time.Duration
}

// Snapshot returns a copy of the current stats for the resource.
func (r *Recorder) Snapshot(resource string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[resource]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Loads:       stats.loads,
		Saves:       stats.saves,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
