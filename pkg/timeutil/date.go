package timeutil

import (
	"fmt"
	"time"
)

const (
	layoutISO     = "2006-01-02"
	layoutDisplay = "Monday, January 2, 2006"
	layoutClock   = "3:04 PM"
)

// DateKey canonicalizes a moment to its calendar-day identifier in local
// time. Two times on the same local day always produce the same key; this is
// the single day-boundary policy for the whole store.
func DateKey(t time.Time) string {
	return t.Local().Format(layoutISO)
}

// ParseDateKey converts a YYYY-MM-DD key back to midnight local time.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(layoutISO, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: parse date key %q: %w", key, err)
	}
	return t, nil
}

// DisplayDate renders a moment as a human-readable day, e.g.
// "Friday, March 15, 2024".
func DisplayDate(t time.Time) string {
	return t.Local().Format(layoutDisplay)
}

// Clock renders the time-of-day portion, e.g. "11:59 PM".
func Clock(t time.Time) string {
	return t.Local().Format(layoutClock)
}

// SameDay reports whether both moments fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	return al.Year() == bl.Year() && al.Month() == bl.Month() && al.Day() == bl.Day()
}
