package domain

import (
	"time"
)

type FactorName string

const (
	Factor_Momentum       FactorName = "momentum"
	Factor_Dispersion     FactorName = "dispersion"
	Factor_MacroAlignment FactorName = "macroAlignment"
)

// FactorResult is the per-factor slice of a composite score. When a factor
// could not be computed for an instrument it is marked unavailable and
// excluded from the weighted combination for that instrument only.
type FactorResult struct {
	Raw          float64 `json:"raw"`
	ZScore       float64 `json:"zScore"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
	Unavailable  bool    `json:"unavailable"`
	Reason       string  `json:"reason,omitempty"`
}

// SignalScore is one instrument's composite score as of a date, with full
// per-factor attribution so downstream rationale can cite the driver.
type SignalScore struct {
	InstrumentID string                       `json:"instrumentId"`
	Ticker       string                       `json:"ticker"`
	AsOf         time.Time                    `json:"asOf"`
	Composite    float64                      `json:"composite"`
	Factors      map[FactorName]*FactorResult `json:"factors"`
}

// DominantFactor returns the available factor with the largest absolute
// contribution to the composite.
func (s SignalScore) DominantFactor() (FactorName, *FactorResult) {
	var bestName FactorName
	var best *FactorResult
	for name, fr := range s.Factors {
		if fr.Unavailable {
			continue
		}
		if best == nil || abs(fr.Contribution) > abs(best.Contribution) ||
			(abs(fr.Contribution) == abs(best.Contribution) && name < bestName) {
			bestName = name
			best = fr
		}
	}
	return bestName, best
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

type MacroObservation struct {
	SeriesID string
	Date     time.Time
	Value    float64
}

// DataHealth summarizes how usable an instrument's price history is for
// signal computation.
type DataHealth struct {
	Ticker      string     `json:"ticker"`
	HistoryDays int        `json:"historyDays"`
	LastDate    *time.Time `json:"lastDate,omitempty"`
}
