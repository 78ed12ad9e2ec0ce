package calculator

import (
	"basketdesk/internal/domain"
	"basketdesk/internal/util"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const tradingDaysPerYear = 252

type PerformanceResult struct {
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	TradingDays      int       `json:"tradingDays"`
	AnnualizedReturn float64   `json:"annualizedReturn"`
	AnnualizedStdev  float64   `json:"annualizedStdev"`
	SharpeRatio      float64   `json:"sharpeRatio"`
	MaxDrawdown      float64   `json:"maxDrawdown"`
}

// CalculateBasketMetrics computes trailing performance for a fixed holdings
// set over the stored adjusted close history. The basket is treated as
// rebalanced back to its committed weights every day, so the daily basket
// return is the weight-blended daily return of its tickers. Only dates where
// every ticker has a price are used; a ticker with no overlap at all fails
// the calculation rather than silently shrinking the basket.
func CalculateBasketMetrics(weights map[string]decimal.Decimal, prices map[string][]domain.AssetPrice, start, end time.Time) (*PerformanceResult, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("cannot calculate metrics for an empty holdings set")
	}

	pricesByDate := map[string]map[string]float64{}
	for ticker := range weights {
		series, ok := prices[ticker]
		if !ok || len(series) == 0 {
			return nil, fmt.Errorf("no price history for %s: %w", ticker, domain.ErrDataUnavailable)
		}
		byDate := map[string]float64{}
		for _, p := range series {
			if p.Date.Before(start) || !util.DateLte(p.Date, end) {
				continue
			}
			byDate[p.Date.Format(time.DateOnly)] = p.Price
		}
		pricesByDate[ticker] = byDate
	}

	dates := commonDates(pricesByDate)
	if len(dates) < 2 {
		return nil, fmt.Errorf("need at least 2 overlapping trading days, got %d: %w", len(dates), domain.ErrDataUnavailable)
	}

	returns := make([]float64, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		dayReturn := 0.0
		for ticker, weight := range weights {
			prev := pricesByDate[ticker][dates[i-1]]
			cur := pricesByDate[ticker][dates[i]]
			dayReturn += weight.InexactFloat64() * (cur/prev - 1)
		}
		returns = append(returns, dayReturn)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, err
	}
	annualizedStdev := stdev * math.Sqrt(tradingDaysPerYear)

	cumulative := 1.0
	peak := 1.0
	maxDrawdown := 0.0
	for _, r := range returns {
		cumulative *= 1 + r
		if cumulative > peak {
			peak = cumulative
		}
		if drawdown := 1 - cumulative/peak; drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	numYears := float64(len(returns)) / tradingDaysPerYear
	annualizedReturn := math.Pow(cumulative, 1/numYears) - 1

	sharpeRatio := 0.0
	if annualizedStdev > 0 {
		sharpeRatio = annualizedReturn / annualizedStdev
	}

	firstDate, _ := time.Parse(time.DateOnly, dates[0])
	lastDate, _ := time.Parse(time.DateOnly, dates[len(dates)-1])

	return &PerformanceResult{
		StartDate:        firstDate,
		EndDate:          lastDate,
		TradingDays:      len(dates),
		AnnualizedReturn: annualizedReturn,
		AnnualizedStdev:  annualizedStdev,
		SharpeRatio:      sharpeRatio,
		MaxDrawdown:      maxDrawdown,
	}, nil
}

func commonDates(pricesByDate map[string]map[string]float64) []string {
	counts := map[string]int{}
	for _, byDate := range pricesByDate {
		for date := range byDate {
			counts[date]++
		}
	}

	dates := []string{}
	for date, count := range counts {
		if count == len(pricesByDate) {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}
