// Package otprof collects wall-clock timing samples for the demo CLIs,
// aggregating repeated measurements under the same label instead of
// recording one row per call — otdemo tracks a handful of labels once each,
// while otsweep re-tracks the same "setup"/"response" labels across every
// point in its parameter grid and relies on the aggregate count/min/max to
// summarize the whole sweep in one line per label.
package otprof

import (
	"sync"
	"time"
)

// Entry is the aggregated timing statistics for one label.
type Entry struct {
	Label string
	Count int
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Mean returns Total/Count, or zero if the label was never tracked.
func (e Entry) Mean() time.Duration {
	if e.Count == 0 {
		return 0
	}
	return e.Total / time.Duration(e.Count)
}

var (
	mu    sync.Mutex
	order []string
	stats = make(map[string]*Entry)
)

// Track folds the duration since start into the running statistics for
// name, creating the label on first use.
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	defer mu.Unlock()
	e, ok := stats[name]
	if !ok {
		e = &Entry{Label: name, Min: elapsed, Max: elapsed}
		stats[name] = e
		order = append(order, name)
	}
	e.Count++
	e.Total += elapsed
	if elapsed < e.Min {
		e.Min = elapsed
	}
	if elapsed > e.Max {
		e.Max = elapsed
	}
}

// SnapshotAndReset returns the accumulated entries in first-tracked order
// and clears all state.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, 0, len(order))
	for _, label := range order {
		out = append(out, *stats[label])
	}
	order = nil
	stats = make(map[string]*Entry)
	return out
}
