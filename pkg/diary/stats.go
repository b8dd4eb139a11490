package diary

import (
	"sort"
	"time"

	"deardiary.dev/diary/pkg/mood"
	"deardiary.dev/diary/pkg/timeutil"
)

// MoodCounts tallies how often each mood was recorded. The second return is
// the number of entries with any mood at all.
func (c Collection) MoodCounts() (map[mood.Mood]int, int) {
	counts := map[mood.Mood]int{
		mood.Sad: 0, mood.Low: 0, mood.Neutral: 0, mood.Good: 0, mood.Great: 0,
	}
	total := 0
	for _, e := range c {
		if e.Mood.Valid() {
			counts[e.Mood]++
			total++
		}
	}
	return counts, total
}

// Streak counts consecutive days with entries, walking backwards from today.
func (c Collection) Streak(today time.Time) int {
	streak := 0
	day := today
	for {
		if _, ok := c[timeutil.DateKey(day)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// EntriesInMonth counts entries whose day falls in the same local month as t.
func (c Collection) EntriesInMonth(t time.Time) int {
	n := 0
	for key := range c {
		day, err := timeutil.ParseDateKey(key)
		if err != nil {
			continue
		}
		if day.Year() == t.Local().Year() && day.Month() == t.Local().Month() {
			n++
		}
	}
	return n
}

// EntriesSince counts entries on or after the calendar day of t.
func (c Collection) EntriesSince(t time.Time) int {
	cutoff := timeutil.DateKey(t)
	n := 0
	for key := range c {
		if key >= cutoff {
			n++
		}
	}
	return n
}

// Recent returns up to n entries, most recent day first.
func (c Collection) Recent(n int) []Match {
	out := make([]Match, 0, len(c))
	for key, e := range c {
		out = append(out, Match{Date: key, Entry: e})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
