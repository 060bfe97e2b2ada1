package domain

import (
	"strings"
	"time"
)

// DayOf truncates a timestamp to calendar-day granularity (00:00:00 UTC).
// All day comparisons in the picker go through this normalization.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay returns true if both timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ParseDay parses a calendar-day string in YYYY-MM-DD form.
// The external API may return either a bare date or a full timestamp with a
// time component; the time component is stripped before parsing.
func ParseDay(s string) (time.Time, error) {
	s = StripTimeComponent(s)
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return DayOf(t), nil
}

// FormatDay formats a timestamp as a YYYY-MM-DD calendar-day string.
func FormatDay(t time.Time) string {
	return t.Format(DateFormat)
}

// StripTimeComponent reduces an ISO timestamp to its date part.
// "2024-06-10T14:00:00Z" -> "2024-06-10"; bare dates pass through unchanged.
func StripTimeComponent(s string) string {
	if idx := strings.IndexByte(s, 'T'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// InclusiveDayCount returns the number of calendar days covered by the
// closed range [start, end], so a same-day range counts as 1.
func InclusiveDayCount(start, end time.Time) int {
	s := DayOf(start)
	e := DayOf(end)
	if e.Before(s) {
		s, e = e, s
	}
	return int(e.Sub(s).Hours()/24) + 1
}
