package signal

import (
	"basketdesk/internal/domain"
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testAsOf = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

// genPrices builds n consecutive daily prices ending at testAsOf. Each series
// gets its own wiggle period so returns are non-constant and only partially
// correlated across the universe.
func genPrices(symbol string, n int, drift, wiggle float64, period int) []domain.AssetPrice {
	out := make([]domain.AssetPrice, 0, n)
	price := 100.0
	for i := 0; i < n; i++ {
		date := testAsOf.AddDate(0, 0, -(n - 1 - i))
		factor := 1 + drift
		if i%period == 0 {
			factor += wiggle
		} else {
			factor -= wiggle
		}
		price *= factor
		out = append(out, domain.AssetPrice{Symbol: symbol, Date: date, Price: price})
	}
	return out
}

func genMacro(n int, value float64) []domain.MacroObservation {
	out := make([]domain.MacroObservation, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.MacroObservation{
			SeriesID: "UNRATE",
			Date:     testAsOf.AddDate(0, -(n - 1 - i), 0),
			Value:    value,
		})
	}
	return out
}

func testInstrument(id string) domain.Instrument {
	return domain.Instrument{
		InstrumentID: id,
		Ticker:       id,
		AssetClass:   domain.AssetClass_Equity,
		Region:       "US",
		Currency:     "USD",
		Eligible:     true,
	}
}

func TestNewEngine(t *testing.T) {
	t.Run("weights must sum to 1", func(t *testing.T) {
		_, err := NewEngine(FactorWeights{
			domain.Factor_Momentum: 0.5,
		})
		require.Error(t, err)
	})

	t.Run("no factors", func(t *testing.T) {
		_, err := NewEngine(FactorWeights{})
		require.Error(t, err)
	})

	t.Run("defaults are valid", func(t *testing.T) {
		_, err := NewEngine(DefaultFactorWeights())
		require.NoError(t, err)
	})
}

func TestCompute(t *testing.T) {
	engine, err := NewEngine(DefaultFactorWeights())
	require.NoError(t, err)

	fullHistory := 300

	input := ComputeInput{
		AsOf: testAsOf,
		Instruments: []domain.Instrument{
			testInstrument("A"),
			testInstrument("B"),
			testInstrument("C"),
		},
		Prices: map[string][]domain.AssetPrice{
			"A": genPrices("A", fullHistory, 0.001, 0.002, 2),
			"B": genPrices("B", fullHistory, -0.0005, 0.003, 3),
			"C": genPrices("C", fullHistory, 0.0002, 0.001, 5),
		},
		Macro: genMacro(24, 4.0),
	}

	t.Run("every instrument is scored with full attribution", func(t *testing.T) {
		scores, err := engine.Compute(context.Background(), input)
		require.NoError(t, err)
		require.Len(t, scores, 3)

		// output sorted by instrument id
		require.Equal(t, "A", scores[0].InstrumentID)
		require.Equal(t, "B", scores[1].InstrumentID)
		require.Equal(t, "C", scores[2].InstrumentID)

		for _, score := range scores {
			require.Len(t, score.Factors, 3)
			composite := 0.0
			weightSum := 0.0
			for _, fr := range score.Factors {
				require.False(t, fr.Unavailable)
				composite += fr.Contribution
				weightSum += fr.Weight
			}
			require.InDelta(t, 1.0, weightSum, 1e-9)
			require.InDelta(t, composite, score.Composite, 1e-9)
		}
	})

	t.Run("z-scores are centered across the universe", func(t *testing.T) {
		scores, err := engine.Compute(context.Background(), input)
		require.NoError(t, err)

		sum := 0.0
		for _, score := range scores {
			sum += score.Factors[domain.Factor_Momentum].ZScore
		}
		require.InDelta(t, 0.0, sum, 1e-9)
	})

	t.Run("thin history degrades factors without dropping the instrument", func(t *testing.T) {
		degraded := input
		degraded.Instruments = append([]domain.Instrument{}, input.Instruments...)
		degraded.Instruments = append(degraded.Instruments, testInstrument("D"))
		degraded.Prices = map[string][]domain.AssetPrice{
			"A": input.Prices["A"],
			"B": input.Prices["B"],
			"C": input.Prices["C"],
			// enough for dispersion (63 returns) but not momentum (253
			// points) or the 200 day trend
			"D": genPrices("D", 100, 0.0008, 0.002, 4),
		}

		scores, err := engine.Compute(context.Background(), degraded)
		require.NoError(t, err)
		require.Len(t, scores, 4)

		d := scores[3]
		require.Equal(t, "D", d.InstrumentID)
		require.True(t, d.Factors[domain.Factor_Momentum].Unavailable)
		require.True(t, d.Factors[domain.Factor_MacroAlignment].Unavailable)

		dispersion := d.Factors[domain.Factor_Dispersion]
		require.False(t, dispersion.Unavailable)
		// the only available factor carries the whole composite
		require.InDelta(t, 1.0, dispersion.Weight, 1e-9)
		require.InDelta(t, dispersion.Contribution, d.Composite, 1e-9)
	})

	t.Run("no prices at all leaves composite zero", func(t *testing.T) {
		missing := input
		missing.Instruments = append([]domain.Instrument{}, input.Instruments...)
		missing.Instruments = append(missing.Instruments, testInstrument("E"))

		scores, err := engine.Compute(context.Background(), missing)
		require.NoError(t, err)

		e := scores[3]
		require.Equal(t, "E", e.InstrumentID)
		require.Equal(t, 0.0, e.Composite)
		for _, fr := range e.Factors {
			require.True(t, fr.Unavailable)
			require.NotEmpty(t, fr.Reason)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := engine.Compute(ctx, input)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("identical input yields identical output", func(t *testing.T) {
		first, err := engine.Compute(context.Background(), input)
		require.NoError(t, err)
		second, err := engine.Compute(context.Background(), input)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

func TestMomentumRaw(t *testing.T) {
	t.Run("positive drift scores positive", func(t *testing.T) {
		value, err := momentumRaw(genPrices("X", 300, 0.001, 0.002, 2))
		require.NoError(t, err)
		require.Greater(t, value, 0.0)
		require.False(t, math.IsNaN(value))
	})

	t.Run("too little history is unavailable", func(t *testing.T) {
		_, err := momentumRaw(genPrices("X", 200, 0.001, 0.002, 2))
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})
}

func TestMacroAlignmentRaw(t *testing.T) {
	prices := genPrices("X", 300, 0.001, 0.002, 2)

	t.Run("no macro observations is unavailable", func(t *testing.T) {
		_, err := macroAlignmentRaw(prices, nil)
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})

	t.Run("risk-off regime flips the sign", func(t *testing.T) {
		riskOn, err := macroAlignmentRaw(prices, genMacro(12, 4.0))
		require.NoError(t, err)

		// rising unemployment: latest above trailing mean
		rising := genMacro(12, 4.0)
		rising[len(rising)-1].Value = 6.0
		riskOff, err := macroAlignmentRaw(prices, rising)
		require.NoError(t, err)

		require.InDelta(t, -riskOn, riskOff, 1e-12)
	})
}
