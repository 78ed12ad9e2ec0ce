package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateLte(t *testing.T) {
	day := NewDate(2024, 6, 3)

	require.True(t, DateLte(day, day.AddDate(0, 0, 1)))
	require.False(t, DateLte(day.AddDate(0, 0, 1), day))

	// intraday timestamps on the same day compare equal either way
	later := day.Add(15 * time.Hour)
	require.True(t, DateLte(later, day))
	require.True(t, DateLte(day, later))
}

func TestSameDay(t *testing.T) {
	day := NewDate(2024, 6, 3)
	require.True(t, SameDay(day, day.Add(23*time.Hour)))
	require.False(t, SameDay(day, day.AddDate(0, 0, 1)))
}
