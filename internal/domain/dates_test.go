package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	t.Run("parses a bare date", func(t *testing.T) {
		d, err := ParseDay("2024-06-10")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("strips a time component before parsing", func(t *testing.T) {
		d, err := ParseDay("2024-06-10T14:30:00Z")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseDay("10.06.2024")
		assert.Error(t, err)
	})
}

func TestStripTimeComponent(t *testing.T) {
	assert.Equal(t, "2024-06-10", StripTimeComponent("2024-06-10T00:00:00Z"))
	assert.Equal(t, "2024-06-10", StripTimeComponent("2024-06-10"))
}

func TestInclusiveDayCount(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"same-day range counts as one", day(5), day(5), 1},
		{"three-day range", day(10), day(12), 3},
		{"reversed endpoints still count forward", day(12), day(10), 3},
		{"time components are ignored", day(10).Add(23 * time.Hour), day(12), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InclusiveDayCount(tt.start, tt.end))
		})
	}
}
