package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf_UsesLocation(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 2024-03-14 20:00 UTC is already 2024-03-15 in Jakarta (UTC+7)
	instant := time.Date(2024, 3, 14, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), DateOf(instant, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), DateOf(instant, jakarta))
}

func TestISOWeekday(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2024-03-11", 1}, // Monday
		{"2024-03-15", 5}, // Friday
		{"2024-03-16", 6},
		{"2024-03-17", 7}, // Sunday
	}
	for _, c := range cases {
		d, err := ParseDate(c.date)
		require.NoError(t, err)
		assert.Equal(t, c.want, ISOWeekday(d), c.date)
	}
}

func TestISOWeekBounds(t *testing.T) {
	d, _ := ParseDate("2024-03-17")
	monday, sunday := ISOWeekBounds(d)
	assert.Equal(t, "2024-03-11", FormatDate(monday))
	assert.Equal(t, "2024-03-17", FormatDate(sunday))

	d, _ = ParseDate("2024-03-11")
	monday, sunday = ISOWeekBounds(d)
	assert.Equal(t, "2024-03-11", FormatDate(monday))
	assert.Equal(t, "2024-03-17", FormatDate(sunday))
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(time.Date(2024, 2, 17, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-02-01", FormatDate(first))
	assert.Equal(t, "2024-02-29", FormatDate(last))

	_, last = MonthBounds(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2023-12-31", FormatDate(last))
}

func TestDatesBetween(t *testing.T) {
	start, _ := ParseDate("2024-02-27")
	end, _ := ParseDate("2024-03-02")
	dates := DatesBetween(start, end)
	require.Len(t, dates, 5)
	assert.Equal(t, "2024-02-29", FormatDate(dates[2]))

	assert.Empty(t, DatesBetween(end, start))
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("08:30")
	require.NoError(t, err)
	assert.Equal(t, 510, m)

	m, err = ParseClock("22:00:00")
	require.NoError(t, err)
	assert.Equal(t, 1320, m)

	_, err = ParseClock("8.30")
	assert.Error(t, err)
}

func TestMonthDay(t *testing.T) {
	d, _ := ParseDate("2025-03-15")
	assert.Equal(t, "03-15", MonthDay(d))
}
