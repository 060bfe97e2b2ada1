package domain

import "time"

// DaysInMonth returns the number of calendar days in the given month/year,
// accounting for leap years. Day 0 of the following month normalizes to the
// last day of the requested one.
func DaysInMonth(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset returns the number of leading blank cells needed so the
// month grid starts on Monday. Go's native numbering (Sunday=0) is remapped
// so Monday is position 0 and Sunday is position 6.
func FirstWeekdayOffset(month time.Month, year int) int {
	weekday := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	if weekday == time.Sunday {
		return 6
	}
	return int(weekday) - 1
}

// CalendarCursor points at the month currently shown in the picker.
// Its lifecycle is independent from the date-range selection: navigating
// months never resets or mutates an in-progress selection.
type CalendarCursor struct {
	Month time.Month
	Year  int
}

// CursorFor returns the cursor for the month containing the given day.
func CursorFor(t time.Time) CalendarCursor {
	return CalendarCursor{Month: t.Month(), Year: t.Year()}
}

// Next returns the cursor advanced by one month, wrapping December into
// January of the following year.
func (c CalendarCursor) Next() CalendarCursor {
	if c.Month == time.December {
		return CalendarCursor{Month: time.January, Year: c.Year + 1}
	}
	return CalendarCursor{Month: c.Month + 1, Year: c.Year}
}

// Prev returns the cursor moved back by one month, wrapping January into
// December of the previous year.
func (c CalendarCursor) Prev() CalendarCursor {
	if c.Month == time.January {
		return CalendarCursor{Month: time.December, Year: c.Year - 1}
	}
	return CalendarCursor{Month: c.Month - 1, Year: c.Year}
}

// DayAt returns the normalized day for the given day-of-month under this cursor.
func (c CalendarCursor) DayAt(day int) time.Time {
	return time.Date(c.Year, c.Month, day, 0, 0, 0, 0, time.UTC)
}

// Contains returns true if the given day falls inside the cursor's month.
func (c CalendarCursor) Contains(t time.Time) bool {
	return t.Year() == c.Year && t.Month() == c.Month
}
