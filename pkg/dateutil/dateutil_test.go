package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDMY(t *testing.T) {
	parsed, err := ParseDMY("29/08/2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.August, parsed.Month())
	assert.Equal(t, 29, parsed.Day())

	_, err = ParseDMY("2025-08-29")
	assert.Error(t, err)

	_, err = ParseDMY("32/01/2025")
	assert.Error(t, err)
}

func TestFormatDMY(t *testing.T) {
	assert.Equal(t, "01/08/2025", FormatDMY(date(2025, time.August, 1)))
	assert.Equal(t, "09/01/2026", FormatDMY(date(2026, time.January, 9)))
}

func TestLoanYear(t *testing.T) {
	start := date(2025, time.August, 29)

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"first payment day", date(2025, time.August, 29), 1},
		{"later in first year", date(2025, time.September, 12), 1},
		{"day before first anniversary", date(2026, time.August, 28), 1},
		{"first anniversary", date(2026, time.August, 29), 2},
		{"after first anniversary", date(2026, time.September, 11), 2},
		{"deep into the loan", date(2030, time.January, 3), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LoanYear(start, tt.at))
		})
	}
}

func TestNextSunday(t *testing.T) {
	// 01/08/2025 is a Friday, 03/08/2025 a Sunday.
	assert.Equal(t, date(2025, time.August, 3), NextSunday(date(2025, time.August, 1)))
	// A Sunday advances a full week, not zero days.
	assert.Equal(t, date(2025, time.August, 10), NextSunday(date(2025, time.August, 3)))
	assert.Equal(t, time.Sunday, NextSunday(date(2025, time.August, 6)).Weekday())
}

func TestMoveOutDate(t *testing.T) {
	tests := []struct {
		name       string
		settlement time.Time
		want       time.Time
	}{
		{"friday settlement", date(2025, time.August, 1), date(2025, time.August, 9)},
		{"wednesday settlement", date(2025, time.August, 6), date(2025, time.August, 16)},
		{"sunday settlement skips a week", date(2025, time.August, 3), date(2025, time.August, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveOutDate(tt.settlement)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.Saturday, got.Weekday())
		})
	}
}

func TestSettlementWindowEnd(t *testing.T) {
	assert.Equal(t, date(2025, time.October, 1), SettlementWindowEnd(date(2025, time.August, 1)))
	assert.Equal(t, date(2026, time.January, 15), SettlementWindowEnd(date(2025, time.November, 15)))
	assert.Equal(t, date(2026, time.February, 15), SettlementWindowEnd(date(2025, time.December, 15)))
}

func TestMonthBoundaries(t *testing.T) {
	assert.Equal(t, date(2025, time.August, 1), MonthStart(date(2025, time.August, 19)))
	assert.Equal(t, date(2025, time.September, 1), NextMonthStart(date(2025, time.August, 1)))
	assert.Equal(t, date(2026, time.January, 1), NextMonthStart(date(2025, time.December, 25)))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, time.August, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.August, 1, 22, 30, 0, 0, time.UTC)
	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(morning, date(2025, time.August, 2)))
}

func TestDayKey(t *testing.T) {
	noon := time.Date(2025, time.August, 1, 12, 34, 56, 0, time.UTC)
	assert.Equal(t, date(2025, time.August, 1), DayKey(noon))
}
