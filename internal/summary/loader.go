package summary

import (
	"github.com/malonaz/spendchat/internal/types"
)

// Loader tracks the dashboard summary across overlapping loads.
// Only the most recently started load may touch the state; results of superseded
// loads, or loads that resolve after Close, are dropped.
type Loader struct {
	summary    *types.DashboardSummary
	loading    bool
	generation uint64
	closed     bool
}

// Begin starts a new load and returns its generation.
func (l *Loader) Begin() uint64 {
	l.generation++
	l.loading = true
	return l.generation
}

// Resolve applies the outcome of the load with the given generation.
// On failure the previous summary is kept. Returns false if the result was discarded.
func (l *Loader) Resolve(generation uint64, summary *types.DashboardSummary, err error) bool {
	if l.closed || generation != l.generation {
		return false
	}
	if err == nil && summary != nil {
		l.summary = summary
	}
	l.loading = false
	return true
}

// Close tears the loader down. Outstanding loads are discarded when they resolve.
func (l *Loader) Close() {
	l.closed = true
}

// Summary returns the current summary, nil until the first successful load.
func (l *Loader) Summary() *types.DashboardSummary {
	return l.summary
}

// Loading returns true while the latest load is outstanding.
func (l *Loader) Loading() bool {
	return l.loading
}

// Generation returns the generation of the latest load.
func (l *Loader) Generation() uint64 {
	return l.generation
}
