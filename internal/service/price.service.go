package service

import (
	"basketdesk/internal/db/models/postgres/public/model"
	"basketdesk/internal/domain"
	"basketdesk/internal/logger"
	"basketdesk/internal/repository"
	"basketdesk/internal/util"
	fred_client "basketdesk/pkg/fred"
	treasury_client "basketdesk/pkg/treasury"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// price history starts here when an instrument has never been synced
var defaultHistoryStart = util.NewDate(2015, 1, 1)

// DefaultMacroSeries are the regime series synced out of the box. UNRATE
// drives the macro alignment factor; the rest are kept for data health and
// ad-hoc inspection.
var DefaultMacroSeries = []string{"UNRATE", "DGS10", "CPIAUCSL", "FEDFUNDS", "USREC"}

// RegimeSeriesID is the macro series the signal engine reads.
const RegimeSeriesID = "UNRATE"

type PriceService interface {
	SyncSnapshotPrices(ctx context.Context, snapshotID uuid.UUID) (*SyncResult, error)
	SyncMacro(ctx context.Context, seriesIDs []string) (*SyncResult, error)
	DataHealth(ctx context.Context, snapshotID uuid.UUID) ([]domain.DataHealth, error)
	YieldCurve(ctx context.Context, date time.Time) (*domain.YieldCurve, error)
}

// SyncResult reports what a sync actually did. Skipped carries the symbols or
// series whose provider data was unavailable; they degrade, they never fail
// the sync.
type SyncResult struct {
	Synced  int
	Skipped []string
}

type priceServiceHandler struct {
	UniverseRepository   repository.UniverseRepository
	AdjPriceRepository   repository.AdjustedPriceRepository
	MacroRepository      repository.MacroRepository
	MarketDataRepository repository.MarketDataRepository
	FredApiKey           string
}

func NewPriceService(
	universeRepository repository.UniverseRepository,
	adjPriceRepository repository.AdjustedPriceRepository,
	macroRepository repository.MacroRepository,
	marketDataRepository repository.MarketDataRepository,
	fredApiKey string,
) PriceService {
	return priceServiceHandler{
		UniverseRepository:   universeRepository,
		AdjPriceRepository:   adjPriceRepository,
		MacroRepository:      macroRepository,
		MarketDataRepository: marketDataRepository,
		FredApiKey:           fredApiKey,
	}
}

// SyncSnapshotPrices pulls adjusted close history for every instrument in the
// snapshot, resuming from the latest stored date per symbol. An instrument
// whose provider data is unavailable is logged and skipped.
func (h priceServiceHandler) SyncSnapshotPrices(ctx context.Context, snapshotID uuid.UUID) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	snapshot, err := h.UniverseRepository.GetSnapshot(snapshotID)
	if err != nil {
		return nil, err
	}

	end := time.Now().UTC()
	result := &SyncResult{Skipped: []string{}}

	for _, instrument := range snapshot.EligibleInstruments() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		start := defaultHistoryStart
		latest, err := h.AdjPriceRepository.LatestDate(instrument.Ticker)
		if err != nil {
			return nil, err
		}
		if latest != nil {
			start = latest.AddDate(0, 0, 1)
		}
		if !start.Before(end) {
			continue
		}

		prices, err := h.MarketDataRepository.GetPriceSeries(instrument.Ticker, start, end)
		if errors.Is(err, domain.ErrDataUnavailable) {
			log.Warnf("skipping price sync for %s: %v", instrument.Ticker, err)
			result.Skipped = append(result.Skipped, instrument.Ticker)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("failed to sync prices for %s: %w", instrument.Ticker, err)
		}

		models := make([]model.AdjustedPrice, 0, len(prices))
		for _, p := range prices {
			models = append(models, model.AdjustedPrice{
				Symbol: p.Symbol,
				Date:   p.Date,
				Price:  p.Price,
			})
		}
		err = h.AdjPriceRepository.Add(models)
		if err != nil {
			return nil, err
		}
		result.Synced++
	}

	return result, nil
}

// SyncMacro pulls the given FRED series into the macro store. A series that
// cannot be fetched is skipped, matching the price sync behavior.
func (h priceServiceHandler) SyncMacro(ctx context.Context, seriesIDs []string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	if len(seriesIDs) == 0 {
		seriesIDs = DefaultMacroSeries
	}

	end := time.Now().UTC()
	result := &SyncResult{Skipped: []string{}}

	for _, seriesID := range seriesIDs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		observations, err := fred_client.GetSeries(h.FredApiKey, seriesID, defaultHistoryStart, end)
		if errors.Is(err, domain.ErrDataUnavailable) {
			log.Warnf("skipping macro sync for %s: %v", seriesID, err)
			result.Skipped = append(result.Skipped, seriesID)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("failed to sync macro series %s: %w", seriesID, err)
		}

		models := make([]model.MacroObservation, 0, len(observations))
		for _, obs := range observations {
			models = append(models, model.MacroObservation{
				SeriesID: obs.SeriesID,
				Date:     obs.Date,
				Value:    obs.Value,
			})
		}
		err = h.MacroRepository.Add(models)
		if err != nil {
			return nil, err
		}
		result.Synced++
	}

	return result, nil
}

// YieldCurve returns the treasury curve published for the given date. It is
// fetched live; rates context for the desk, not an input to the signal run.
func (h priceServiceHandler) YieldCurve(ctx context.Context, date time.Time) (*domain.YieldCurve, error) {
	return treasury_client.GetYieldCurve(date)
}

// DataHealth summarizes stored history per instrument so the desk can see
// which signals will degrade before running them.
func (h priceServiceHandler) DataHealth(ctx context.Context, snapshotID uuid.UUID) ([]domain.DataHealth, error) {
	snapshot, err := h.UniverseRepository.GetSnapshot(snapshotID)
	if err != nil {
		return nil, err
	}

	out := []domain.DataHealth{}
	for _, instrument := range snapshot.EligibleInstruments() {
		latest, err := h.AdjPriceRepository.LatestDate(instrument.Ticker)
		if err != nil {
			return nil, err
		}
		health := domain.DataHealth{Ticker: instrument.Ticker}
		if latest != nil {
			prices, err := h.AdjPriceRepository.List(instrument.Ticker, defaultHistoryStart, *latest)
			if err != nil {
				return nil, err
			}
			health.HistoryDays = len(prices)
			health.LastDate = latest
		}
		out = append(out, health)
	}

	return out, nil
}
