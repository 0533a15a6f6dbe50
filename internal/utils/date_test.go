package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartCurrentDay(t *testing.T) {
	date := time.Date(2026, time.March, 5, 14, 30, 45, 123000000, time.UTC)

	start := StartCurrentDay(date)

	require.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, date.Location(), start.Location())
}

func TestEndCurrentDay(t *testing.T) {
	date := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)

	end := EndCurrentDay(date)

	require.Equal(t, time.Date(2026, time.March, 5, 23, 59, 59, 999000000, time.UTC), end)
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, time.March, 5, 8, 0, 0, 0, time.UTC)
	night := time.Date(2026, time.March, 5, 23, 59, 59, 0, time.UTC)
	nextMidnight := time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC)

	require.True(t, SameDay(morning, night))
	require.False(t, SameDay(night, nextMidnight))

	// Совпадение дня и месяца при разных годах - не один день
	otherYear := time.Date(2025, time.March, 5, 8, 0, 0, 0, time.UTC)
	require.False(t, SameDay(morning, otherYear))
}

func TestStartOfWeek(t *testing.T) {
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	// Понедельник - сам себе начало недели
	require.Equal(t, monday, StartOfWeek(monday))
	require.Equal(t, monday, StartOfWeek(monday.Add(10*time.Hour)))

	// Любой день недели сворачивается к ее понедельнику
	for offset := 0; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset).Add(13 * time.Hour)
		require.Equal(t, monday, StartOfWeek(day), "offset %d", offset)
	}

	// Воскресенье относится к уходящей неделе, а не к следующей
	sunday := time.Date(2026, time.March, 8, 20, 0, 0, 0, time.UTC)
	require.Equal(t, monday, StartOfWeek(sunday))
}

func TestWeekDates(t *testing.T) {
	thursday := time.Date(2026, time.March, 5, 16, 45, 0, 0, time.UTC)

	dates := WeekDates(thursday)

	require.Len(t, dates, 7)
	require.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), dates[0])
	require.Equal(t, time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC), dates[6])

	for i := 1; i < len(dates); i++ {
		require.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i])
	}
}

func TestParseDate(t *testing.T) {
	rfc, err := ParseDate("2026-03-05T10:30:00Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC), rfc)

	noZone, err := ParseDate("2026-03-05T10:30:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.March, 5, 10, 30, 0, 0, time.Local), noZone)

	dateOnly, err := ParseDate("2026-03-05")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.Local), dateOnly)

	_, err = ParseDate("not-a-date")
	require.Error(t, err)
}
