package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LimiterConfig configures the per-user sliding-window rate limiter.
// Burst is the window queue capacity and must be >= Limit for the limiter
// to be able to reject; config validation enforces that at startup.
type LimiterConfig struct {
	Limit  int
	Window time.Duration
	Burst  int

	// MaxUsers caps how many identities hold a live window at once.
	MaxUsers int

	// Now overrides the clock in tests.
	Now func() time.Time
}

type requestWindow struct {
	stamps []time.Time
}

// Limiter counts requests per user over a sliding window. Idle windows age
// out of the LRU on their own; evicted sessions drop theirs via Forget.
type Limiter struct {
	mu      sync.Mutex
	windows *expirable.LRU[string, *requestWindow]
	limit   int
	window  time.Duration
	burst   int
	now     func() time.Time
}

// NewLimiter creates a rate limiter.
func NewLimiter(cfg LimiterConfig) *Limiter {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	maxUsers := cfg.MaxUsers
	if maxUsers <= 0 {
		maxUsers = 1000
	}
	return &Limiter{
		windows: expirable.NewLRU[string, *requestWindow](maxUsers, nil, cfg.Window),
		limit:   cfg.Limit,
		window:  cfg.Window,
		burst:   cfg.Burst,
		now:     now,
	}
}

// Allow checks and records one request for userID. It returns false, and
// records nothing, when the user already has Limit requests inside the
// window. It never fails; the caller turns false into a user-visible
// "too many requests" reply.
func (l *Limiter) Allow(userID string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows.Get(userID)
	if !ok {
		w = &requestWindow{}
	}
	// Re-add on every request: Add renews the entry's expiry, so an active
	// user's window only ages out of the LRU after a full window of
	// silence, when all its timestamps are stale anyway.
	l.windows.Add(userID, w)

	// Drop timestamps that fell out of the window.
	cutoff := now.Add(-l.window)
	kept := w.stamps[:0]
	for _, t := range w.stamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	w.stamps = kept

	if len(w.stamps) >= l.limit {
		return false
	}

	w.stamps = append(w.stamps, now)
	if len(w.stamps) > l.burst {
		w.stamps = w.stamps[len(w.stamps)-l.burst:]
	}
	return true
}

// Forget drops all rate-limit state for userID.
func (l *Limiter) Forget(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.windows.Remove(userID)
}
