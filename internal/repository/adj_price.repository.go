package repository

import (
	"basketdesk/internal/db/models/postgres/public/model"
	"basketdesk/internal/db/models/postgres/public/table"
	"basketdesk/internal/domain"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type PriceCache map[string]map[time.Time]float64

// AdjustedPriceRepository is the local price store. It is a cache of provider
// data, never the source of truth - rows are refreshed wholesale by price
// syncs and reads fall back three days to cover weekends and holidays.
type AdjustedPriceRepository interface {
	Add([]model.AdjustedPrice) error
	Get(symbol string, date time.Time) (float64, error)
	List(symbol string, start, end time.Time) ([]domain.AssetPrice, error)
	LatestDate(symbol string) (*time.Time, error)
}

func NewAdjustedPriceRepository(db *sql.DB) AdjustedPriceRepository {
	return &adjustedPriceRepositoryHandler{
		Db:        db,
		Cache:     make(PriceCache),
		ReadMutex: &sync.RWMutex{},
	}
}

type adjustedPriceRepositoryHandler struct {
	Db        *sql.DB
	Cache     PriceCache
	ReadMutex *sync.RWMutex
}

func (h *adjustedPriceRepositoryHandler) getFromCache(symbol string, date time.Time) *float64 {
	h.ReadMutex.RLock()
	defer h.ReadMutex.RUnlock()
	if _, ok := h.Cache[symbol]; ok {
		if price, ok := h.Cache[symbol][date]; ok {
			return &price
		}
	}
	return nil
}

func (h *adjustedPriceRepositoryHandler) addToCache(symbol string, date time.Time, price float64) {
	h.ReadMutex.Lock()
	defer h.ReadMutex.Unlock()
	if _, ok := h.Cache[symbol]; !ok {
		h.Cache[symbol] = map[time.Time]float64{}
	}
	h.Cache[symbol][date] = price
}

func (h *adjustedPriceRepositoryHandler) Add(adjPrices []model.AdjustedPrice) error {
	if len(adjPrices) == 0 {
		return nil
	}

	query := table.AdjustedPrice.
		INSERT(table.AdjustedPrice.AllColumns).
		MODELS(adjPrices).
		ON_CONFLICT(
			table.AdjustedPrice.Symbol, table.AdjustedPrice.Date,
		).DO_UPDATE(
		postgres.SET(
			table.AdjustedPrice.Price.SET(table.AdjustedPrice.EXCLUDED.Price),
		),
	)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add adjusted prices to db: %w", err)
	}

	return nil
}

func (h *adjustedPriceRepositoryHandler) Get(symbol string, date time.Time) (float64, error) {
	if pc := h.getFromCache(symbol, date); pc != nil {
		return *pc, nil
	}

	minDate := postgres.DateT(date.AddDate(0, 0, -3))
	maxDate := postgres.DateT(date)
	// use range so we can do t-3 for weekends or holidays
	query := table.AdjustedPrice.
		SELECT(table.AdjustedPrice.AllColumns).
		WHERE(
			postgres.AND(
				table.AdjustedPrice.Symbol.EQ(postgres.String(symbol)),
				table.AdjustedPrice.Date.BETWEEN(minDate, maxDate),
			),
		).
		ORDER_BY(table.AdjustedPrice.Date.DESC()).
		LIMIT(1)

	result := model.AdjustedPrice{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return 0, fmt.Errorf("no price for %s on %s: %w", symbol, date.Format(time.DateOnly), domain.ErrDataUnavailable)
	} else if err != nil {
		return 0, fmt.Errorf("failed to query price for %s on %v: %w", symbol, date, err)
	}

	h.addToCache(symbol, date, result.Price)
	return result.Price, nil
}

func (h *adjustedPriceRepositoryHandler) List(symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	query := table.AdjustedPrice.
		SELECT(table.AdjustedPrice.AllColumns).
		WHERE(
			postgres.AND(
				table.AdjustedPrice.Symbol.EQ(postgres.String(symbol)),
				table.AdjustedPrice.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.AdjustedPrice.Date.ASC())

	result := []model.AdjustedPrice{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	out := []domain.AssetPrice{}
	for _, p := range result {
		out = append(out, domain.AssetPrice{
			Symbol: p.Symbol,
			Date:   p.Date,
			Price:  p.Price,
		})
	}

	return out, nil
}

func (h *adjustedPriceRepositoryHandler) LatestDate(symbol string) (*time.Time, error) {
	query := table.AdjustedPrice.
		SELECT(table.AdjustedPrice.Date).
		WHERE(table.AdjustedPrice.Symbol.EQ(postgres.String(symbol))).
		ORDER_BY(table.AdjustedPrice.Date.DESC()).
		LIMIT(1)

	type AdjustedPrice struct {
		Date time.Time
	}

	out := AdjustedPrice{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get latest price date for %s: %w", symbol, err)
	}

	return &out.Date, nil
}
