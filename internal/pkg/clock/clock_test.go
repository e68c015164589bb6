//go:build unit

package clock_test

import (
	"testing"
	"time"

	"spinwheel/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWallClock(t *testing.T) {
	t.Run("valid timezone", func(t *testing.T) {
		c, err := clock.NewWallClock("Asia/Ho_Chi_Minh")
		require.NoError(t, err)
		require.NotNil(t, c)

		start := c.StartOfToday()
		assert.Equal(t, 0, start.Hour())
		assert.Equal(t, 0, start.Minute())
		assert.Equal(t, 0, start.Second())
	})

	t.Run("invalid timezone", func(t *testing.T) {
		c, err := clock.NewWallClock("Not/AZone")
		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestStartOfDay(t *testing.T) {
	hcm, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "midday local time",
			input:    time.Date(2025, 7, 15, 13, 45, 30, 0, hcm),
			expected: time.Date(2025, 7, 15, 0, 0, 0, 0, hcm),
		},
		{
			name:     "exactly midnight stays put",
			input:    time.Date(2025, 7, 15, 0, 0, 0, 0, hcm),
			expected: time.Date(2025, 7, 15, 0, 0, 0, 0, hcm),
		},
		{
			// 23:30 UTC on the 14th is already 06:30 on the 15th in UTC+7.
			name:     "UTC instant past the local day boundary",
			input:    time.Date(2025, 7, 14, 23, 30, 0, 0, time.UTC),
			expected: time.Date(2025, 7, 15, 0, 0, 0, 0, hcm),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := clock.StartOfDay(tc.input, hcm)
			assert.True(t, tc.expected.Equal(actual), "expected %v, got %v", tc.expected, actual)
		})
	}
}

func TestMockClock(t *testing.T) {
	hcm, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	base := time.Date(2025, 7, 15, 23, 50, 0, 0, hcm)
	mc := clock.NewMockClock(base)

	assert.Equal(t, base, mc.Now())
	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, hcm), mc.StartOfToday())

	// Crossing midnight moves the day boundary
	mc.Add(20 * time.Minute)
	assert.Equal(t, time.Date(2025, 7, 16, 0, 0, 0, 0, hcm), mc.StartOfToday())

	mc.Set(base.AddDate(0, 0, 7))
	assert.Equal(t, time.Date(2025, 7, 22, 0, 0, 0, 0, hcm), mc.StartOfToday())
}
