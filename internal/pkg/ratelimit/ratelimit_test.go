//go:build unit

package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(start time.Time) (*Limiter, *time.Time) {
	current := start
	l := New()
	l.now = func() time.Time { return current }
	return l, &current
}

func TestLimiter_Allow(t *testing.T) {
	start := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)

	t.Run("counts within a window", func(t *testing.T) {
		l, _ := newTestLimiter(start)

		for i := range 3 {
			result := l.Allow("spin:1.2.3.4", 3, time.Minute)
			assert.True(t, result.OK, "request %d should pass", i+1)
			assert.Equal(t, 3-i-1, result.Remaining)
		}

		result := l.Allow("spin:1.2.3.4", 3, time.Minute)
		assert.False(t, result.OK)
		assert.Equal(t, 0, result.Remaining)
		assert.Equal(t, start.Add(time.Minute), result.ResetAt)
	})

	t.Run("window resets after the interval", func(t *testing.T) {
		l, current := newTestLimiter(start)

		for range 3 {
			l.Allow("spin:1.2.3.4", 3, time.Minute)
		}
		assert.False(t, l.Allow("spin:1.2.3.4", 3, time.Minute).OK)

		*current = start.Add(time.Minute)
		result := l.Allow("spin:1.2.3.4", 3, time.Minute)
		assert.True(t, result.OK)
		assert.Equal(t, 2, result.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		l, _ := newTestLimiter(start)

		for range 3 {
			l.Allow("spin:1.2.3.4", 3, time.Minute)
		}
		assert.False(t, l.Allow("spin:1.2.3.4", 3, time.Minute).OK)
		assert.True(t, l.Allow("spin:5.6.7.8", 3, time.Minute).OK)
		assert.True(t, l.Allow("share:1.2.3.4", 3, time.Minute).OK)
	})
}

func TestLimiter_Purge(t *testing.T) {
	start := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)
	l, current := newTestLimiter(start)

	l.Allow("a", 5, time.Minute)
	l.Allow("b", 5, 2*time.Minute)
	assert.Len(t, l.buckets, 2)

	*current = start.Add(90 * time.Second)
	l.Purge()
	assert.Len(t, l.buckets, 1)

	*current = start.Add(3 * time.Minute)
	l.Purge()
	assert.Empty(t, l.buckets)
}
