package signal

import (
	"basketdesk/internal/domain"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

const (
	momentumLookback     = 252
	momentumSkip         = 21
	dispersionLookback   = 63
	trendFastWindow      = 50
	trendSlowWindow      = 200
	macroRegimeLookback  = 12
	tradingDaysPerYear   = 252
	minStandardizableObs = 2
)

func dailyReturns(prices []domain.AssetPrice) []float64 {
	if len(prices) < 2 {
		return nil
	}
	out := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1].Price
		if prev == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, prices[i].Price/prev-1)
	}
	return out
}

// momentumRaw is the 12-month-minus-1-month return scaled by annualized
// realized volatility, so high-churn instruments do not dominate purely on
// noise.
func momentumRaw(prices []domain.AssetPrice) (float64, error) {
	if len(prices) < momentumLookback+1 {
		return 0, fmt.Errorf("%d price points, need %d: %w", len(prices), momentumLookback+1, domain.ErrDataUnavailable)
	}

	last := len(prices) - 1
	p0 := prices[last-momentumLookback].Price
	pSkip := prices[last-momentumSkip].Price
	pNow := prices[last].Price
	if p0 == 0 || pSkip == 0 {
		return 0, fmt.Errorf("zero price in lookback window: %w", domain.ErrDataUnavailable)
	}

	ret12 := pNow/p0 - 1
	ret1 := pNow/pSkip - 1
	momentum := ret12 - ret1

	returns := dailyReturns(prices[last-momentumLookback:])
	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate stdev: %w", domain.ErrDataUnavailable)
	}
	vol := stdev * math.Sqrt(tradingDaysPerYear)
	if vol == 0 {
		return 0, fmt.Errorf("zero realized volatility: %w", domain.ErrDataUnavailable)
	}

	return momentum / vol, nil
}

// dispersionRaw scores how much an instrument diversifies the eligible
// universe: one minus its trailing correlation to the equal-weight universe
// return series. Both series are aligned by date before correlating.
func dispersionRaw(prices []domain.AssetPrice, universeReturnsByDate map[string]float64) (float64, error) {
	returnsByDate := map[string]float64{}
	returns := dailyReturns(prices)
	for i, r := range returns {
		returnsByDate[prices[i+1].Date.Format("2006-01-02")] = r
	}

	dates := []string{}
	for i := len(prices) - 1; i > 0 && len(dates) < dispersionLookback; i-- {
		date := prices[i].Date.Format("2006-01-02")
		if _, ok := universeReturnsByDate[date]; ok {
			dates = append(dates, date)
		}
	}
	if len(dates) < dispersionLookback {
		return 0, fmt.Errorf("%d overlapping return observations, need %d: %w", len(dates), dispersionLookback, domain.ErrDataUnavailable)
	}

	own := make([]float64, 0, len(dates))
	universe := make([]float64, 0, len(dates))
	for _, date := range dates {
		own = append(own, returnsByDate[date])
		universe = append(universe, universeReturnsByDate[date])
	}

	correlation, err := stats.Correlation(own, universe)
	if err != nil || math.IsNaN(correlation) {
		return 0, fmt.Errorf("failed to calculate correlation: %w", domain.ErrDataUnavailable)
	}

	return 1 - correlation, nil
}

// macroAlignmentRaw measures sign agreement between the instrument's moving
// average trend (50d vs 200d) and the macro regime. The regime is risk-on
// when the latest macro observation sits at or below its trailing mean.
func macroAlignmentRaw(prices []domain.AssetPrice, macro []domain.MacroObservation) (float64, error) {
	if len(macro) == 0 {
		return 0, fmt.Errorf("no macro observations: %w", domain.ErrDataUnavailable)
	}
	if len(prices) < trendSlowWindow {
		return 0, fmt.Errorf("%d price points, need %d for trend: %w", len(prices), trendSlowWindow, domain.ErrDataUnavailable)
	}

	fast := movingAverage(prices, trendFastWindow)
	slow := movingAverage(prices, trendSlowWindow)
	if slow == 0 {
		return 0, fmt.Errorf("zero slow moving average: %w", domain.ErrDataUnavailable)
	}
	trendStrength := fast/slow - 1

	lookback := macroRegimeLookback
	if len(macro) < lookback {
		lookback = len(macro)
	}
	trailing := macro[len(macro)-lookback:]
	sum := 0.0
	for _, obs := range trailing {
		sum += obs.Value
	}
	mean := sum / float64(len(trailing))

	// risk-on regimes reward positive trend, risk-off regimes reward
	// defensive (negative trend) instruments
	regime := 1.0
	if macro[len(macro)-1].Value > mean {
		regime = -1.0
	}

	return regime * trendStrength, nil
}

func movingAverage(prices []domain.AssetPrice, window int) float64 {
	sum := 0.0
	for _, p := range prices[len(prices)-window:] {
		sum += p.Price
	}
	return sum / float64(window)
}

// universeReturnsByDate builds the equal-weight daily return of the whole
// eligible universe, keyed by date, for the dispersion factor.
func universeReturnsByDate(prices map[string][]domain.AssetPrice) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, series := range prices {
		returns := dailyReturns(series)
		for i, r := range returns {
			date := series[i+1].Date.Format("2006-01-02")
			sums[date] += r
			counts[date]++
		}
	}

	out := map[string]float64{}
	for date, sum := range sums {
		out[date] = sum / float64(counts[date])
	}
	return out
}
