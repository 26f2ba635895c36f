package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekWindowMondayStart(t *testing.T) {
	// Wednesday 2025-04-16
	now := time.Date(2025, 4, 16, 14, 30, 0, 0, time.UTC)

	start, end := WeekWindow(now, time.Monday)

	assert.Equal(t, time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), end)
}

func TestWeekWindowSundayStart(t *testing.T) {
	now := time.Date(2025, 4, 16, 14, 30, 0, 0, time.UTC)

	start, end := WeekWindow(now, time.Sunday)

	assert.Equal(t, time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC), end)
}

func TestWeekWindowOnWeekStartDay(t *testing.T) {
	// A Monday maps to itself as the window start
	now := time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC)

	start, end := WeekWindow(now, time.Monday)

	assert.Equal(t, now, start)
	assert.Equal(t, now.AddDate(0, 0, 6), end)
}

func TestWeekWindowSundayWithMondayStart(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday
	now := time.Date(2025, 4, 20, 23, 59, 0, 0, time.UTC)

	start, end := WeekWindow(now, time.Monday)

	assert.Equal(t, time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), end)
}

func TestWeekWindowSpansSevenDays(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	start, end := WeekWindow(now, time.Monday)

	assert.Equal(t, 6*24*time.Hour, end.Sub(start))
	assert.False(t, now.Before(start))
	assert.False(t, now.After(end.AddDate(0, 0, 1)))
}

func TestParseDurationFallsBack(t *testing.T) {
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Hour))
}
