package json_types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClockTime(t *testing.T) {
	ct := NewClockTime(9, 30)

	require.Equal(t, 9, ct.Hour())
	require.Equal(t, 30, ct.Minute())
	require.Equal(t, "09:30", ct.String())
	require.False(t, ct.IsMidnight())
}

func TestParseClockTime(t *testing.T) {
	ct, err := ParseClockTime("17:00")
	require.NoError(t, err)
	require.Equal(t, NewClockTime(17, 0), ct)

	// Полночь - граничное значение для маркера выходного дня
	midnight, err := ParseClockTime("00:00")
	require.NoError(t, err)
	require.True(t, midnight.IsMidnight())

	_, err = ParseClockTime("25:00")
	require.Error(t, err)
}
