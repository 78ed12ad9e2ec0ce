package constraint

import (
	"basketdesk/internal/domain"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Validate checks a proposed holdings set against the snapshot and the
// basket's rule set. It is a pure function: no side effects, deterministic
// given identical inputs. Every failed rule is accumulated - the caller
// always sees the complete violation list, never just the first.
//
// Rules run in a fixed order: instrument existence/eligibility, duplicates,
// per-instrument weight bounds, total weight, asset class caps, region caps,
// holding count, minimum holding weight.
func Validate(snapshot domain.UniverseSnapshot, holdings []domain.Holding, constraints domain.ConstraintSet) domain.ValidationResult {
	violations := []domain.Violation{}

	sorted := make([]domain.Holding, len(holdings))
	copy(sorted, holdings)
	domain.SortHoldings(sorted)

	// existence + eligibility
	for _, h := range sorted {
		instrument, ok := snapshot.Get(h.InstrumentID)
		if !ok {
			violations = append(violations, domain.Violation{
				Rule:   domain.ViolationRule_UnknownInstrument,
				Detail: fmt.Sprintf("%s does not exist in snapshot %s", h.InstrumentID, snapshot.SnapshotID),
			})
			continue
		}
		if !instrument.Eligible {
			violations = append(violations, domain.Violation{
				Rule:   domain.ViolationRule_Ineligible,
				Detail: fmt.Sprintf("%s is not eligible", h.InstrumentID),
			})
		}
	}

	// duplicates
	seen := map[string]int{}
	for _, h := range sorted {
		seen[h.InstrumentID]++
	}
	duplicated := []string{}
	for instrumentID, count := range seen {
		if count > 1 {
			duplicated = append(duplicated, instrumentID)
		}
	}
	sort.Strings(duplicated)
	for _, instrumentID := range duplicated {
		violations = append(violations, domain.Violation{
			Rule:   domain.ViolationRule_Duplicate,
			Detail: fmt.Sprintf("%s appears %d times", instrumentID, seen[instrumentID]),
		})
	}

	// per-instrument weight bounds
	for _, h := range sorted {
		instrument, ok := snapshot.Get(h.InstrumentID)
		if !ok {
			continue
		}
		min := instrument.MinWeightOrDefault()
		max := instrument.MaxWeightOrDefault()
		if h.Weight.LessThan(min) {
			violations = append(violations, domain.Violation{
				Rule:   domain.ViolationRule_WeightBounds,
				Detail: fmt.Sprintf("%s weight %s is below min_weight %s", h.InstrumentID, h.Weight, min),
			})
		}
		if h.Weight.GreaterThan(max) {
			violations = append(violations, domain.Violation{
				Rule:   domain.ViolationRule_WeightBounds,
				Detail: fmt.Sprintf("%s weight %s exceeds max_weight %s", h.InstrumentID, h.Weight, max),
			})
		}
	}

	// total weight within target +/- tolerance
	total := domain.TotalWeight(sorted)
	if total.Sub(constraints.WeightTarget).Abs().GreaterThan(constraints.WeightTolerance) {
		violations = append(violations, domain.Violation{
			Rule:   domain.ViolationRule_TotalWeight,
			Detail: fmt.Sprintf("total weight %s is outside %s +/- %s", total, constraints.WeightTarget, constraints.WeightTolerance),
		})
	}

	// asset class caps
	violations = append(violations, capViolations(
		domain.ViolationRule_ClassCap,
		aggregateByClass(snapshot, sorted),
		classCapsAsStrings(constraints.ClassCaps),
	)...)

	// region caps
	violations = append(violations, capViolations(
		domain.ViolationRule_RegionCap,
		aggregateByRegion(snapshot, sorted),
		constraints.RegionCaps,
	)...)

	// holding count
	if constraints.MaxHoldings != nil && int32(len(sorted)) > *constraints.MaxHoldings {
		violations = append(violations, domain.Violation{
			Rule:   domain.ViolationRule_MaxHoldings,
			Detail: fmt.Sprintf("%d holdings exceeds max of %d", len(sorted), *constraints.MaxHoldings),
		})
	}

	// weight floor
	if constraints.MinHoldingWeight != nil {
		for _, h := range sorted {
			if h.Weight.LessThan(*constraints.MinHoldingWeight) {
				violations = append(violations, domain.Violation{
					Rule:   domain.ViolationRule_MinHoldingWeight,
					Detail: fmt.Sprintf("%s weight %s is below the %s floor", h.InstrumentID, h.Weight, constraints.MinHoldingWeight),
				})
			}
		}
	}

	return domain.ValidationResult{
		IsValid:    len(violations) == 0,
		Violations: violations,
	}
}

func aggregateByClass(snapshot domain.UniverseSnapshot, holdings []domain.Holding) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for _, h := range holdings {
		instrument, ok := snapshot.Get(h.InstrumentID)
		if !ok {
			continue
		}
		key := string(instrument.AssetClass)
		out[key] = out[key].Add(h.Weight)
	}
	return out
}

func aggregateByRegion(snapshot domain.UniverseSnapshot, holdings []domain.Holding) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for _, h := range holdings {
		instrument, ok := snapshot.Get(h.InstrumentID)
		if !ok {
			continue
		}
		out[instrument.Region] = out[instrument.Region].Add(h.Weight)
	}
	return out
}

func classCapsAsStrings(caps map[domain.AssetClass]decimal.Decimal) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for class, cap := range caps {
		out[string(class)] = cap
	}
	return out
}

func capViolations(rule domain.ViolationRule, aggregates map[string]decimal.Decimal, caps map[string]decimal.Decimal) []domain.Violation {
	keys := []string{}
	for key := range aggregates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	violations := []domain.Violation{}
	for _, key := range keys {
		cap, ok := caps[key]
		if !ok {
			continue
		}
		if aggregates[key].GreaterThan(cap) {
			violations = append(violations, domain.Violation{
				Rule:   rule,
				Detail: fmt.Sprintf("%s aggregate weight %s exceeds cap %s", key, aggregates[key], cap),
			})
		}
	}
	return violations
}
