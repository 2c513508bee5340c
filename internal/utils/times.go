package utils

import (
	"time"

	"habit-tracker/internal/habits"
)

// Clock returns the current instant. Services take one so tests can pin "now".
type Clock func() time.Time

// LoadLocation resolves name, falling back to UTC.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Today returns the calendar day of now in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	return habits.DateOf(now.In(loc))
}

// DaysAgo formats the date n days before day.
func DaysAgo(day time.Time, n int) string {
	return day.AddDate(0, 0, -n).Format(habits.DateLayout)
}

// StartOfYear returns January 1st of day's year.
func StartOfYear(day time.Time) string {
	return time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC).Format(habits.DateLayout)
}

// ParseDate parses a yyyy-MM-dd date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(habits.DateLayout, s)
}
