package clock

import "time"

// Clock provides the request time and the promotion's calendar-day boundary.
// All daily counters use the half-open window [StartOfToday, StartOfToday+24h).
type Clock interface {
	Now() time.Time
	StartOfToday() time.Time
}

type WallClock struct {
	loc *time.Location
}

func NewWallClock(tz string) (*WallClock, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	return &WallClock{loc: loc}, nil
}

func (c *WallClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *WallClock) StartOfToday() time.Time {
	return StartOfDay(c.Now(), c.loc)
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

type MockClock struct {
	currentTime time.Time
	loc         *time.Location
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t, loc: t.Location()}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) StartOfToday() time.Time {
	return StartOfDay(c.currentTime, c.loc)
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
