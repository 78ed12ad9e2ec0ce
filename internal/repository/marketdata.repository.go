package repository

import (
	"basketdesk/internal/domain"
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// MarketDataRepository is the external price provider boundary. Any provider
// failure or empty series surfaces as domain.ErrDataUnavailable - callers
// degrade the affected instrument, they never treat it as fatal.
type MarketDataRepository interface {
	GetPriceSeries(ticker string, start, end time.Time) ([]domain.AssetPrice, error)
}

type yahooRepositoryHandler struct{}

func NewYahooRepository() MarketDataRepository {
	return yahooRepositoryHandler{}
}

func (h yahooRepositoryHandler) GetPriceSeries(ticker string, start, end time.Time) ([]domain.AssetPrice, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   ticker,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	out := []domain.AssetPrice{}
	for iter.Next() {
		ts := time.Unix(int64(iter.Bar().Timestamp), 0).UTC()
		out = append(out, domain.AssetPrice{
			Symbol: ticker,
			Date:   time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
			Price:  iter.Bar().AdjClose.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", ticker, domain.ErrDataUnavailable)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty price series for %s: %w", ticker, domain.ErrDataUnavailable)
	}

	return out, nil
}
