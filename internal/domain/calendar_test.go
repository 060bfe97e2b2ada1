package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		year  int
		want  int
	}{
		{"january has 31 days", time.January, 2024, 31},
		{"april has 30 days", time.April, 2024, 30},
		{"february in a leap year", time.February, 2024, 29},
		{"february in a regular year", time.February, 2023, 28},
		{"february in a century non-leap year", time.February, 1900, 28},
		{"february in a 400-divisible leap year", time.February, 2000, 29},
		{"december has 31 days", time.December, 2025, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.month, tt.year))
		})
	}
}

func TestFirstWeekdayOffset(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		year  int
		want  int
	}{
		// 2024-07-01 is a Monday
		{"month starting on monday has no offset", time.July, 2024, 0},
		// 2024-06-01 is a Saturday
		{"month starting on saturday", time.June, 2024, 5},
		// 2024-09-01 is a Sunday: native 0 remaps to position 6
		{"month starting on sunday remaps to last cell", time.September, 2024, 6},
		// 2024-10-01 is a Tuesday
		{"month starting on tuesday", time.October, 2024, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstWeekdayOffset(tt.month, tt.year))
		})
	}
}

func TestCalendarCursorNavigation(t *testing.T) {
	t.Run("next wraps december into january of following year", func(t *testing.T) {
		cursor := CalendarCursor{Month: time.December, Year: 2024}
		next := cursor.Next()

		assert.Equal(t, time.January, next.Month)
		assert.Equal(t, 2025, next.Year)
	})

	t.Run("prev wraps january into december of previous year", func(t *testing.T) {
		cursor := CalendarCursor{Month: time.January, Year: 2025}
		prev := cursor.Prev()

		assert.Equal(t, time.December, prev.Month)
		assert.Equal(t, 2024, prev.Year)
	})

	t.Run("next within a year advances one month", func(t *testing.T) {
		cursor := CalendarCursor{Month: time.June, Year: 2024}
		assert.Equal(t, CalendarCursor{Month: time.July, Year: 2024}, cursor.Next())
	})

	t.Run("prev then next returns to the original cursor", func(t *testing.T) {
		cursor := CalendarCursor{Month: time.June, Year: 2024}
		assert.Equal(t, cursor, cursor.Prev().Next())
	})
}

func TestCursorFor(t *testing.T) {
	cursor := CursorFor(time.Date(2024, time.June, 15, 13, 45, 0, 0, time.UTC))

	assert.Equal(t, time.June, cursor.Month)
	assert.Equal(t, 2024, cursor.Year)
	assert.True(t, cursor.Contains(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, cursor.Contains(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)))
}
