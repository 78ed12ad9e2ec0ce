package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestYieldCurveRate(t *testing.T) {
	curve := YieldCurve{
		Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Rates: map[int]float64{
			12:  0.05,
			24:  0.046,
			120: 0.044,
		},
	}

	t.Run("exact tenor", func(t *testing.T) {
		rate, ok := curve.Rate(24)
		require.True(t, ok)
		require.Equal(t, 0.046, rate)
	})

	t.Run("interpolates between tenors", func(t *testing.T) {
		rate, ok := curve.Rate(18)
		require.True(t, ok)
		require.InDelta(t, 0.048, rate, 1e-12)
	})

	t.Run("outside the published range", func(t *testing.T) {
		_, ok := curve.Rate(6)
		require.False(t, ok)
		_, ok = curve.Rate(360)
		require.False(t, ok)
	})
}
