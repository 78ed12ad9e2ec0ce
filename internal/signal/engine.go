package signal

import (
	"basketdesk/internal/domain"
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

type FactorWeights map[domain.FactorName]float64

// DefaultFactorWeights is the desk's standard factor mix.
func DefaultFactorWeights() FactorWeights {
	return FactorWeights{
		domain.Factor_Momentum:       0.5,
		domain.Factor_Dispersion:     0.3,
		domain.Factor_MacroAlignment: 0.2,
	}
}

// Engine turns raw, possibly-partial series into one explainable composite
// score per instrument. A factor that cannot be computed for an instrument is
// marked unavailable and excluded from that instrument's combination only -
// the remaining factor weights renormalize, the instrument is never dropped.
type Engine struct {
	weights FactorWeights
	// stable iteration order for deterministic output
	factorOrder []domain.FactorName
}

func NewEngine(weights FactorWeights) (*Engine, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("cannot build signal engine with 0 factors")
	}
	sum := 0.0
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("factor weights must be non-negative")
		}
		sum += w
	}
	if math.Abs(sum-1) > 1e-9 {
		return nil, fmt.Errorf("factor weights must sum to 1, got %f", sum)
	}

	order := []domain.FactorName{}
	for name := range weights {
		order = append(order, name)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	return &Engine{weights: weights, factorOrder: order}, nil
}

type ComputeInput struct {
	AsOf        time.Time
	Instruments []domain.Instrument
	// price series keyed by instrument id; an absent or short series marks
	// the price-driven factors unavailable for that instrument
	Prices map[string][]domain.AssetPrice
	Macro  []domain.MacroObservation
}

type rawResult struct {
	value       float64
	unavailable bool
	reason      string
}

// Compute scores every instrument in the input as of the given date. The
// context is checked between per-factor units of work so a caller can cancel
// a long run; partial results are simply discarded.
func (e Engine) Compute(ctx context.Context, in ComputeInput) ([]domain.SignalScore, error) {
	raws := map[domain.FactorName]map[string]rawResult{}
	universeReturns := universeReturnsByDate(in.Prices)

	for _, factor := range e.factorOrder {
		raws[factor] = map[string]rawResult{}
		for _, instrument := range in.Instruments {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			value, err := e.computeRaw(factor, instrument, in, universeReturns)
			if err != nil {
				raws[factor][instrument.InstrumentID] = rawResult{unavailable: true, reason: err.Error()}
				continue
			}
			raws[factor][instrument.InstrumentID] = rawResult{value: value}
		}
	}

	zscores := map[domain.FactorName]map[string]float64{}
	for _, factor := range e.factorOrder {
		standardized, err := standardize(raws[factor])
		if err != nil {
			// too few observations to standardize - the whole factor is
			// unavailable at this date
			for instrumentID, raw := range raws[factor] {
				if !raw.unavailable {
					raws[factor][instrumentID] = rawResult{
						value:       raw.value,
						unavailable: true,
						reason:      err.Error(),
					}
				}
			}
			standardized = map[string]float64{}
		}
		zscores[factor] = standardized
	}

	out := []domain.SignalScore{}
	for _, instrument := range in.Instruments {
		out = append(out, e.combine(instrument, in.AsOf, raws, zscores))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].InstrumentID < out[j].InstrumentID
	})

	return out, nil
}

func (e Engine) computeRaw(factor domain.FactorName, instrument domain.Instrument, in ComputeInput, universeReturns map[string]float64) (float64, error) {
	prices, ok := in.Prices[instrument.InstrumentID]
	if !ok || len(prices) == 0 {
		return 0, fmt.Errorf("no price series for %s: %w", instrument.InstrumentID, domain.ErrDataUnavailable)
	}

	switch factor {
	case domain.Factor_Momentum:
		return momentumRaw(prices)
	case domain.Factor_Dispersion:
		return dispersionRaw(prices, universeReturns)
	case domain.Factor_MacroAlignment:
		return macroAlignmentRaw(prices, in.Macro)
	}

	return 0, fmt.Errorf("unknown factor %s: %w", factor, domain.ErrDataUnavailable)
}

// standardize converts raw factor values to cross-sectional z-scores within
// the universe, so factors on different scales are comparable before
// combination.
func standardize(raws map[string]rawResult) (map[string]float64, error) {
	dataset := []float64{}
	for _, raw := range raws {
		if !raw.unavailable {
			dataset = append(dataset, raw.value)
		}
	}
	if len(dataset) < minStandardizableObs {
		return nil, fmt.Errorf("cannot standardize %d value(s)", len(dataset))
	}

	mean, err := stats.Mean(dataset)
	if err != nil {
		return nil, err
	}
	stdev, err := stats.StandardDeviationSample(dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev: %w", err)
	}
	if stdev == 0 {
		return nil, fmt.Errorf("0 stdev")
	}

	out := map[string]float64{}
	for instrumentID, raw := range raws {
		if !raw.unavailable {
			out[instrumentID] = (raw.value - mean) / stdev
		}
	}

	return out, nil
}

// combine produces the composite: a weighted sum of available z-scores, with
// the configured weights renormalized over the available factor subset.
func (e Engine) combine(
	instrument domain.Instrument,
	asOf time.Time,
	raws map[domain.FactorName]map[string]rawResult,
	zscores map[domain.FactorName]map[string]float64,
) domain.SignalScore {
	score := domain.SignalScore{
		InstrumentID: instrument.InstrumentID,
		Ticker:       instrument.Ticker,
		AsOf:         asOf,
		Factors:      map[domain.FactorName]*domain.FactorResult{},
	}

	availableWeight := 0.0
	for _, factor := range e.factorOrder {
		raw := raws[factor][instrument.InstrumentID]
		if raw.unavailable {
			score.Factors[factor] = &domain.FactorResult{
				Unavailable: true,
				Reason:      raw.reason,
			}
			continue
		}
		availableWeight += e.weights[factor]
		score.Factors[factor] = &domain.FactorResult{
			Raw:    raw.value,
			ZScore: zscores[factor][instrument.InstrumentID],
		}
	}

	if availableWeight == 0 {
		return score
	}

	composite := 0.0
	for _, factor := range e.factorOrder {
		fr := score.Factors[factor]
		if fr.Unavailable {
			continue
		}
		fr.Weight = e.weights[factor] / availableWeight
		fr.Contribution = fr.Weight * fr.ZScore
		composite += fr.Contribution
	}
	score.Composite = composite

	return score
}
