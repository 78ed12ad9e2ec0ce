package calculator

import (
	"basketdesk/internal/domain"
	"basketdesk/internal/util"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func flatSeries(ticker string, days int, dailyReturn float64) []domain.AssetPrice {
	out := make([]domain.AssetPrice, 0, days)
	price := 100.0
	for i := 0; i < days; i++ {
		out = append(out, domain.AssetPrice{
			Symbol: ticker,
			Date:   util.NewDate(2024, 1, 1).AddDate(0, 0, i),
			Price:  price,
		})
		price *= 1 + dailyReturn
	}
	return out
}

func TestCalculateBasketMetrics(t *testing.T) {
	start := util.NewDate(2024, 1, 1)
	end := util.NewDate(2024, 12, 31)

	t.Run("constant growth has zero drawdown and known return", func(t *testing.T) {
		weights := map[string]decimal.Decimal{
			"SPY": decimal.RequireFromString("0.6"),
			"AGG": decimal.RequireFromString("0.4"),
		}
		prices := map[string][]domain.AssetPrice{
			"SPY": flatSeries("SPY", 253, 0.001),
			"AGG": flatSeries("AGG", 253, 0.001),
		}

		result, err := CalculateBasketMetrics(weights, prices, start, end)
		require.NoError(t, err)

		require.Equal(t, 253, result.TradingDays)
		require.Equal(t, 0.0, result.MaxDrawdown)
		// 252 daily returns of 0.1% annualize to (1.001)^252 - 1
		require.InDelta(t, math.Pow(1.001, 252)-1, result.AnnualizedReturn, 1e-9)
	})

	t.Run("only overlapping dates are used", func(t *testing.T) {
		weights := map[string]decimal.Decimal{
			"SPY": decimal.RequireFromString("0.5"),
			"AGG": decimal.RequireFromString("0.5"),
		}
		prices := map[string][]domain.AssetPrice{
			"SPY": flatSeries("SPY", 100, 0.001),
			"AGG": flatSeries("AGG", 60, 0.002),
		}

		result, err := CalculateBasketMetrics(weights, prices, start, end)
		require.NoError(t, err)
		require.Equal(t, 60, result.TradingDays)
	})

	t.Run("missing ticker history degrades", func(t *testing.T) {
		weights := map[string]decimal.Decimal{
			"SPY": decimal.RequireFromString("0.5"),
			"GLD": decimal.RequireFromString("0.5"),
		}
		prices := map[string][]domain.AssetPrice{
			"SPY": flatSeries("SPY", 100, 0.001),
		}

		_, err := CalculateBasketMetrics(weights, prices, start, end)
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})

	t.Run("drawdown reflects the worst peak to trough", func(t *testing.T) {
		series := flatSeries("SPY", 10, 0)
		// drop 20% on day 5 and stay there
		for i := 5; i < 10; i++ {
			series[i].Price *= 0.8
		}
		weights := map[string]decimal.Decimal{"SPY": decimal.NewFromInt(1)}
		prices := map[string][]domain.AssetPrice{"SPY": series}

		result, err := CalculateBasketMetrics(weights, prices, start, end)
		require.NoError(t, err)
		require.InDelta(t, 0.2, result.MaxDrawdown, 1e-9)
	})
}
