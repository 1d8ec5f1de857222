// Package ratelimit enforces the per-identifier submission cap using a
// sliding window over the store's persisted history. There is no in-process
// counter, so any number of concurrent workers see the same window.
package ratelimit

import (
	"context"
	"time"

	"github.com/jorguzz-fer/aquinaotem/internal/store"
)

// Limiter decides whether a new submission from an identifier is permitted.
// The count is recomputed from the store on every call; the read and the
// subsequent insert are not atomic, so two same-window requests may both
// pass the check. Accepted: the cap is a soft abuse deterrent.
type Limiter struct {
	store  store.Store
	max    int
	window time.Duration
	now    func() time.Time
}

// New builds a limiter permitting at most max submissions per window.
func New(st store.Store, max int, window time.Duration) *Limiter {
	return &Limiter{store: st, max: max, window: window, now: time.Now}
}

// SetClock overrides the time source, for tests.
func (l *Limiter) SetClock(now func() time.Time) {
	l.now = now
}

// Allow reports whether ipHash may submit now. The window is [now-window, now]
// with an inclusive lower bound: a submission aged exactly one window still
// counts against the cap.
func (l *Limiter) Allow(ctx context.Context, ipHash string) (bool, error) {
	since := l.now().UTC().Add(-l.window)

	count, err := l.store.CountRecentSubmissions(ctx, ipHash, since)
	if err != nil {
		return false, err
	}

	return count < int64(l.max), nil
}
