package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// WeekWindow returns the inclusive [start, end] date range of the calendar
// week containing now, for the given week-start day. Both bounds are
// midnight-truncated dates in now's location; end is the last day of the
// week, so a query must treat it inclusively.
func WeekWindow(now time.Time, weekStart time.Weekday) (start, end time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Days elapsed since the most recent week-start day
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7

	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}
