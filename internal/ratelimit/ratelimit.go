// Package ratelimit enforces a rolling hourly request budget per external
// source. Every outbound attempt passes through a single shared Limiter so
// concurrent fetches overlap their network waits without increasing the
// effective request rate.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// WindowLength is the rolling budget window. GitHub resets its quota hourly.
const WindowLength = time.Hour

// DefaultGitHubLimit keeps a 500-request safety buffer below GitHub's
// documented 5000/hour authenticated cap so the hard cap is never hit,
// even under clock skew.
const DefaultGitHubLimit = 4500

// window tracks consumed budget for one source.
type window struct {
	calls int
	start time.Time
	limit int
}

// Limiter hands out call slots per source, suspending callers when the
// hourly budget is exhausted. Safe for concurrent use; the counter update
// is serialized, the waiting is not.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window

	// now is swappable for tests.
	now func() time.Time
}

// New creates a Limiter with the given per-source budgets. Sources absent
// from limits are not rate limited.
func New(limits map[string]int) *Limiter {
	l := &Limiter{
		windows: make(map[string]*window, len(limits)),
		now:     time.Now,
	}
	for source, limit := range limits {
		l.windows[source] = &window{limit: limit}
	}
	return l
}

// Acquire blocks until a call slot for source is available, then consumes
// it. It returns early with the context error if ctx is canceled while
// waiting. Unknown sources are admitted without accounting.
func (l *Limiter) Acquire(ctx context.Context, source string) error {
	for {
		wait, ok := l.tryAcquire(source)
		if ok {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// tryAcquire consumes a slot if one is available. When the budget is
// exhausted it returns the remaining window duration to wait before
// retrying.
func (l *Limiter) tryAcquire(source string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, tracked := l.windows[source]
	if !tracked {
		return 0, true
	}

	now := l.now()
	if w.start.IsZero() {
		w.start = now
	}

	// Reset the window once an hour has elapsed.
	if now.Sub(w.start) >= WindowLength {
		w.calls = 0
		w.start = now
	}

	if w.calls >= w.limit {
		wait := WindowLength - now.Sub(w.start)
		if wait > 0 {
			return wait, false
		}
		w.calls = 0
		w.start = now
	}

	w.calls++
	return 0, true
}

// Remaining reports how many slots are left for source in the current
// window. Unknown sources report -1 (unlimited).
func (l *Limiter) Remaining(source string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, tracked := l.windows[source]
	if !tracked {
		return -1
	}
	if l.now().Sub(w.start) >= WindowLength {
		return w.limit
	}
	remaining := w.limit - w.calls
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
