package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a fixed-window request counter keyed by caller-supplied strings
// (typically "operation:clientIP"). It is intentionally in-process and
// non-persistent: counters reset on restart and are not shared across
// instances. It dampens abuse; it is not a correctness guarantee.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	count   int
	resetAt time.Time
}

type Result struct {
	OK        bool
	Remaining int
	ResetAt   time.Time
}

func New() *Limiter {
	return &Limiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow records one request against key and reports whether it fits within
// limit requests per interval.
func (l *Limiter) Allow(key string, limit int, interval time.Duration) Result {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || !b.resetAt.After(now) {
		resetAt := now.Add(interval)
		l.buckets[key] = &bucket{count: 1, resetAt: resetAt}
		return Result{OK: true, Remaining: limit - 1, ResetAt: resetAt}
	}

	if b.count >= limit {
		return Result{OK: false, Remaining: 0, ResetAt: b.resetAt}
	}

	b.count++
	return Result{OK: true, Remaining: max(0, limit-b.count), ResetAt: b.resetAt}
}

// Purge drops expired buckets. The handler middleware calls this lazily so an
// idle deployment does not hold dead keys forever.
func (l *Limiter) Purge() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if !b.resetAt.After(now) {
			delete(l.buckets, key)
		}
	}
}
