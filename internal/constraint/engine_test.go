package constraint

import (
	"basketdesk/internal/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func int32Ptr(i int32) *int32 {
	return &i
}

func newTestSnapshot() domain.UniverseSnapshot {
	return domain.UniverseSnapshot{
		SnapshotID: uuid.New(),
		Instruments: map[string]domain.Instrument{
			"A": {
				InstrumentID: "A",
				Ticker:       "AAA",
				AssetClass:   domain.AssetClass_Equity,
				Region:       "US",
				Currency:     "USD",
				Eligible:     true,
				MaxWeight:    decPtr("0.3"),
			},
			"B": {
				InstrumentID: "B",
				Ticker:       "BBB",
				AssetClass:   domain.AssetClass_Rates,
				Region:       "US",
				Currency:     "USD",
				Eligible:     false,
			},
			"C": {
				InstrumentID: "C",
				Ticker:       "CCC",
				AssetClass:   domain.AssetClass_Equity,
				Region:       "EU",
				Currency:     "EUR",
				Eligible:     true,
			},
			"D": {
				InstrumentID: "D",
				Ticker:       "DDD",
				AssetClass:   domain.AssetClass_Commodities,
				Region:       "Global",
				Currency:     "USD",
				Eligible:     true,
				MinWeight:    decPtr("0.05"),
			},
		},
	}
}

func violationRules(result domain.ValidationResult) []domain.ViolationRule {
	rules := []domain.ViolationRule{}
	for _, v := range result.Violations {
		rules = append(rules, v.Rule)
	}
	return rules
}

func TestValidate(t *testing.T) {
	snapshot := newTestSnapshot()

	t.Run("valid basket passes", func(t *testing.T) {
		result := Validate(snapshot, []domain.Holding{
			{InstrumentID: "A", Weight: dec("0.3")},
			{InstrumentID: "C", Weight: dec("0.6")},
			{InstrumentID: "D", Weight: dec("0.1")},
		}, domain.DefaultConstraints())

		require.True(t, result.IsValid)
		require.Empty(t, result.Violations)
	})

	t.Run("all failures reported together", func(t *testing.T) {
		// A breaks its max_weight AND B is ineligible - both must show up
		result := Validate(snapshot, []domain.Holding{
			{InstrumentID: "A", Weight: dec("0.5")},
			{InstrumentID: "B", Weight: dec("0.5")},
		}, domain.DefaultConstraints())

		require.False(t, result.IsValid)
		require.Equal(t, []domain.ViolationRule{
			domain.ViolationRule_Ineligible,
			domain.ViolationRule_WeightBounds,
		}, violationRules(result))
	})

	t.Run("unknown instrument", func(t *testing.T) {
		result := Validate(snapshot, []domain.Holding{
			{InstrumentID: "ZZZ", Weight: dec("1")},
		}, domain.DefaultConstraints())

		require.False(t, result.IsValid)
		require.Contains(t, violationRules(result), domain.ViolationRule_UnknownInstrument)
	})

	t.Run("duplicates reported once per instrument", func(t *testing.T) {
		result := Validate(snapshot, []domain.Holding{
			{InstrumentID: "A", Weight: dec("0.25")},
			{InstrumentID: "A", Weight: dec("0.25")},
			{InstrumentID: "C", Weight: dec("0.5")},
		}, domain.DefaultConstraints())

		count := 0
		for _, v := range result.Violations {
			if v.Rule == domain.ViolationRule_Duplicate {
				count++
			}
		}
		require.Equal(t, 1, count)
	})

	t.Run("total weight outside tolerance", func(t *testing.T) {
		result := Validate(snapshot, []domain.Holding{
			{InstrumentID: "C", Weight: dec("0.995")},
		}, domain.DefaultConstraints())

		require.False(t, result.IsValid)
		require.Contains(t, violationRules(result), domain.ViolationRule_TotalWeight)
	})

	t.Run("total weight exactly at tolerance passes", func(t *testing.T) {
		result := Validate(snapshot, []domain.Holding{
			{InstrumentID: "C", Weight: dec("0.999")},
		}, domain.DefaultConstraints())

		require.NotContains(t, violationRules(result), domain.ViolationRule_TotalWeight)
	})

	t.Run("asset class cap", func(t *testing.T) {
		constraints := domain.DefaultConstraints()
		constraints.ClassCaps[domain.AssetClass_Equity] = dec("0.5")

		result := Validate(snapshot, []domain.Holding{
			{InstrumentID: "A", Weight: dec("0.3")},
			{InstrumentID: "C", Weight: dec("0.6")},
			{InstrumentID: "D", Weight: dec("0.1")},
		}, constraints)

		require.False(t, result.IsValid)
		require.Contains(t, violationRules(result), domain.ViolationRule_ClassCap)
	})

	t.Run("region cap", func(t *testing.T) {
		constraints := domain.DefaultConstraints()
		constraints.RegionCaps["EU"] = dec("0.5")

		result := Validate(snapshot, []domain.Holding{
			{InstrumentID: "A", Weight: dec("0.3")},
			{InstrumentID: "C", Weight: dec("0.6")},
			{InstrumentID: "D", Weight: dec("0.1")},
		}, constraints)

		require.False(t, result.IsValid)
		require.Contains(t, violationRules(result), domain.ViolationRule_RegionCap)
	})

	t.Run("max holdings", func(t *testing.T) {
		constraints := domain.DefaultConstraints()
		constraints.MaxHoldings = int32Ptr(2)

		result := Validate(snapshot, []domain.Holding{
			{InstrumentID: "A", Weight: dec("0.3")},
			{InstrumentID: "C", Weight: dec("0.6")},
			{InstrumentID: "D", Weight: dec("0.1")},
		}, constraints)

		require.Contains(t, violationRules(result), domain.ViolationRule_MaxHoldings)
	})

	t.Run("min holding weight floor", func(t *testing.T) {
		constraints := domain.DefaultConstraints()
		constraints.MinHoldingWeight = decPtr("0.05")

		result := Validate(snapshot, []domain.Holding{
			{InstrumentID: "A", Weight: dec("0.02")},
			{InstrumentID: "C", Weight: dec("0.98")},
		}, constraints)

		require.Contains(t, violationRules(result), domain.ViolationRule_MinHoldingWeight)
	})

	t.Run("instrument min weight bound", func(t *testing.T) {
		result := Validate(snapshot, []domain.Holding{
			{InstrumentID: "C", Weight: dec("0.98")},
			{InstrumentID: "D", Weight: dec("0.02")},
		}, domain.DefaultConstraints())

		require.Contains(t, violationRules(result), domain.ViolationRule_WeightBounds)
	})

	t.Run("deterministic violation order", func(t *testing.T) {
		holdings := []domain.Holding{
			{InstrumentID: "B", Weight: dec("0.5")},
			{InstrumentID: "A", Weight: dec("0.5")},
		}
		first := Validate(snapshot, holdings, domain.DefaultConstraints())
		second := Validate(snapshot, holdings, domain.DefaultConstraints())
		require.Equal(t, first, second)
	})
}
