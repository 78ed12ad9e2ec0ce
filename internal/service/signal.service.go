package service

import (
	"basketdesk/internal"
	"basketdesk/internal/domain"
	"basketdesk/internal/repository"
	"basketdesk/internal/signal"
	"context"
	"time"

	"github.com/google/uuid"
)

type SignalService interface {
	ComputeScores(ctx context.Context, snapshotID uuid.UUID, asOf time.Time) ([]domain.SignalScore, error)
}

type signalServiceHandler struct {
	UniverseRepository repository.UniverseRepository
	AdjPriceRepository repository.AdjustedPriceRepository
	MacroRepository    repository.MacroRepository
	Engine             *signal.Engine
}

func NewSignalService(
	universeRepository repository.UniverseRepository,
	adjPriceRepository repository.AdjustedPriceRepository,
	macroRepository repository.MacroRepository,
	engine *signal.Engine,
) SignalService {
	return signalServiceHandler{
		UniverseRepository: universeRepository,
		AdjPriceRepository: adjPriceRepository,
		MacroRepository:    macroRepository,
		Engine:             engine,
	}
}

// ComputeScores loads every input up front - one consistent read of prices
// and macro data - then hands the whole batch to the engine. Instruments with
// thin or missing history still come back scored; their affected factors are
// just marked unavailable.
func (h signalServiceHandler) ComputeScores(ctx context.Context, snapshotID uuid.UUID, asOf time.Time) ([]domain.SignalScore, error) {
	profile := internal.GetPerformanceProfile(ctx)

	snapshot, err := h.UniverseRepository.GetSnapshot(snapshotID)
	if err != nil {
		return nil, err
	}

	instruments := snapshot.EligibleInstruments()

	// two calendar years comfortably covers the longest lookback window
	historyStart := asOf.AddDate(-2, 0, 0)

	prices := map[string][]domain.AssetPrice{}
	for _, instrument := range instruments {
		series, err := h.AdjPriceRepository.List(instrument.Ticker, historyStart, asOf)
		if err != nil {
			return nil, err
		}
		if len(series) > 0 {
			prices[instrument.InstrumentID] = series
		}
	}

	macro, err := h.MacroRepository.List(RegimeSeriesID, historyStart, asOf)
	if err != nil {
		return nil, err
	}
	profile.Add("loaded signal inputs")
	defer profile.Add("computed scores")

	return h.Engine.Compute(ctx, signal.ComputeInput{
		AsOf:        asOf,
		Instruments: instruments,
		Prices:      prices,
		Macro:       macro,
	})
}
