package domain

import (
	"github.com/shopspring/decimal"
)

// ConstraintSet is the desk-owned rule set a basket's holdings must satisfy.
// Caps are optional; a nil/absent cap means the rule is not enforced.
type ConstraintSet struct {
	// total weight must land within WeightTarget +/- WeightTolerance
	WeightTarget    decimal.Decimal
	WeightTolerance decimal.Decimal

	// aggregate caps, keyed by asset class / region
	ClassCaps  map[AssetClass]decimal.Decimal
	RegionCaps map[string]decimal.Decimal

	MaxHoldings      *int32
	MinHoldingWeight *decimal.Decimal
}

// DefaultConstraints mirrors the desk defaults: fully invested, a tenth of a
// percent of slack, no caps.
func DefaultConstraints() ConstraintSet {
	return ConstraintSet{
		WeightTarget:    decimal.NewFromInt(1),
		WeightTolerance: decimal.NewFromFloat(0.001),
		ClassCaps:       map[AssetClass]decimal.Decimal{},
		RegionCaps:      map[string]decimal.Decimal{},
	}
}

type ViolationRule string

const (
	ViolationRule_UnknownInstrument ViolationRule = "unknown_instrument"
	ViolationRule_Ineligible        ViolationRule = "ineligible"
	ViolationRule_Duplicate         ViolationRule = "duplicate_instrument"
	ViolationRule_WeightBounds      ViolationRule = "weight_bounds"
	ViolationRule_TotalWeight       ViolationRule = "total_weight"
	ViolationRule_ClassCap          ViolationRule = "asset_class_cap"
	ViolationRule_RegionCap         ViolationRule = "region_cap"
	ViolationRule_MaxHoldings       ViolationRule = "max_holdings"
	ViolationRule_MinHoldingWeight  ViolationRule = "min_holding_weight"
)

type Violation struct {
	Rule   ViolationRule `json:"rule"`
	Detail string        `json:"detail"`
}

// ValidationResult carries every violation found, never just the first.
type ValidationResult struct {
	IsValid    bool        `json:"isValid"`
	Violations []Violation `json:"violations"`
}
