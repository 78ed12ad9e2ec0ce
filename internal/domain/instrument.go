package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AssetClass string

const (
	AssetClass_Equity       AssetClass = "Equity"
	AssetClass_Rates        AssetClass = "Rates"
	AssetClass_Credit       AssetClass = "Credit"
	AssetClass_Commodities  AssetClass = "Commodities"
	AssetClass_FX           AssetClass = "FX"
	AssetClass_Alternatives AssetClass = "Alternatives"
)

var assetClasses = []AssetClass{
	AssetClass_Equity,
	AssetClass_Rates,
	AssetClass_Credit,
	AssetClass_Commodities,
	AssetClass_FX,
	AssetClass_Alternatives,
}

func NewAssetClass(s string) (*AssetClass, error) {
	for _, ac := range assetClasses {
		if string(ac) == s {
			return &ac, nil
		}
	}
	return nil, fmt.Errorf("unknown asset class %q", s)
}

type Instrument struct {
	InstrumentID string
	Ticker       string
	Name         string
	AssetClass   AssetClass
	Region       string
	Currency     string
	Eligible     bool
	Isin         *string
	// weight bounds are fractions of the basket; nil means
	// unconstrained (0 and 1 respectively)
	MinWeight *decimal.Decimal
	MaxWeight *decimal.Decimal
	Notes     *string
}

// MinWeightOrDefault returns the lower weight bound, 0 if unset.
func (i Instrument) MinWeightOrDefault() decimal.Decimal {
	if i.MinWeight == nil {
		return decimal.Zero
	}
	return *i.MinWeight
}

// MaxWeightOrDefault returns the upper weight bound, 1 if unset.
func (i Instrument) MaxWeightOrDefault() decimal.Decimal {
	if i.MaxWeight == nil {
		return decimal.NewFromInt(1)
	}
	return *i.MaxWeight
}

// UniverseSnapshot is an immutable catalog of instruments. Once created it is
// never edited; a new import supersedes it with a fresh snapshot id.
type UniverseSnapshot struct {
	SnapshotID  uuid.UUID
	Source      string
	Note        *string
	CreatedAt   time.Time
	Instruments map[string]Instrument
}

func (s UniverseSnapshot) Get(instrumentID string) (*Instrument, bool) {
	instrument, ok := s.Instruments[instrumentID]
	if !ok {
		return nil, false
	}
	return &instrument, true
}

// EligibleInstruments returns eligible instruments sorted by instrument id so
// downstream consumers iterate in a stable order.
func (s UniverseSnapshot) EligibleInstruments() []Instrument {
	out := []Instrument{}
	for _, instrument := range s.Instruments {
		if instrument.Eligible {
			out = append(out, instrument)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].InstrumentID < out[j].InstrumentID
	})
	return out
}
