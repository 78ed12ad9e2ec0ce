package suggestion

import (
	"basketdesk/internal/domain"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func score(instrumentID string, composite float64) domain.SignalScore {
	return domain.SignalScore{
		InstrumentID: instrumentID,
		Ticker:       instrumentID,
		AsOf:         time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Composite:    composite,
		Factors: map[domain.FactorName]*domain.FactorResult{
			domain.Factor_Momentum: {
				ZScore:       composite,
				Weight:       1,
				Contribution: composite,
			},
		},
	}
}

func newProposeInput() ProposeInput {
	snapshotID := uuid.New()
	basketID := uuid.New()

	instruments := map[string]domain.Instrument{}
	for _, id := range []string{"W", "X", "Y", "Z"} {
		instruments[id] = domain.Instrument{
			InstrumentID: id,
			Ticker:       id,
			AssetClass:   domain.AssetClass_Equity,
			Region:       "US",
			Currency:     "USD",
			Eligible:     true,
		}
	}

	return ProposeInput{
		Basket: domain.Basket{
			BasketID:   basketID,
			SnapshotID: snapshotID,
			Name:       "test",
		},
		BaseVersion: domain.BasketVersion{
			BasketID:      basketID,
			VersionNumber: 3,
			Holdings: []domain.Holding{
				{InstrumentID: "W", Weight: dec("0.5")},
				{InstrumentID: "X", Weight: dec("0.5")},
			},
		},
		Snapshot: domain.UniverseSnapshot{
			SnapshotID:  snapshotID,
			Instruments: instruments,
		},
		Constraints: domain.DefaultConstraints(),
		Scores: []domain.SignalScore{
			score("W", 0.2),
			score("X", -0.1),
			score("Y", 1.5),
			score("Z", 0.3),
		},
	}
}

func TestPropose(t *testing.T) {
	engine := NewEngine()

	t.Run("high scoring unheld instrument is proposed as an add", func(t *testing.T) {
		suggestion, err := engine.Propose(newProposeInput())
		require.NoError(t, err)
		require.Equal(t, int32(3), suggestion.BaseVersion)

		var add *domain.SuggestedAction
		for i, action := range suggestion.Actions {
			if action.Type == domain.SuggestedAction_Add && action.InstrumentID == "Y" {
				add = &suggestion.Actions[i]
			}
		}
		require.NotNil(t, add)
		require.True(t, add.ProposedWeight.Equal(dec("0.02")))
		require.Greater(t, add.ExpectedCompositeDelta, 0.0)
		require.Contains(t, add.Rationale, "momentum")
	})

	t.Run("every proposal validates as a complete set", func(t *testing.T) {
		in := newProposeInput()
		suggestion, err := engine.Propose(in)
		require.NoError(t, err)

		for _, action := range suggestion.Actions {
			holdings := Materialize(in.BaseVersion.Holdings, []domain.SuggestedAction{action}, in.Constraints.WeightTarget)
			total := domain.TotalWeight(holdings)
			require.True(
				t,
				total.Sub(in.Constraints.WeightTarget).Abs().LessThanOrEqual(in.Constraints.WeightTolerance),
				"action %s %s leaves total %s", action.Type, action.InstrumentID, total,
			)
		}
	})

	t.Run("low scoring holding is proposed for removal", func(t *testing.T) {
		in := newProposeInput()
		in.Scores = []domain.SignalScore{
			score("W", 0.2),
			score("X", -0.9),
			score("Y", 1.5),
		}

		suggestion, err := engine.Propose(in)
		require.NoError(t, err)

		found := false
		for _, action := range suggestion.Actions {
			if action.Type == domain.SuggestedAction_Remove {
				require.Equal(t, "X", action.InstrumentID)
				require.True(t, action.ProposedWeight.IsZero())
				found = true
			}
		}
		require.True(t, found)
	})

	t.Run("holding above the removal threshold stays", func(t *testing.T) {
		suggestion, err := engine.Propose(newProposeInput())
		require.NoError(t, err)

		for _, action := range suggestion.Actions {
			require.NotEqual(t, domain.SuggestedAction_Remove, action.Type)
		}
	})

	t.Run("reweight transfers toward the higher score", func(t *testing.T) {
		suggestion, err := engine.Propose(newProposeInput())
		require.NoError(t, err)

		var up, down *domain.SuggestedAction
		for i, action := range suggestion.Actions {
			if action.Type == domain.SuggestedAction_Reweight {
				if action.Delta.IsPositive() {
					up = &suggestion.Actions[i]
				} else {
					down = &suggestion.Actions[i]
				}
			}
		}
		require.NotNil(t, up)
		require.NotNil(t, down)
		// W scores 0.2, X scores -0.1
		require.Equal(t, "W", up.InstrumentID)
		require.Equal(t, "X", down.InstrumentID)
		require.True(t, up.ProposedWeight.Equal(dec("0.51")))
		require.True(t, down.ProposedWeight.Equal(dec("0.49")))
	})

	t.Run("infeasible adds are dropped", func(t *testing.T) {
		in := newProposeInput()
		two := int32(2)
		in.Constraints.MaxHoldings = &two

		suggestion, err := engine.Propose(in)
		require.NoError(t, err)

		for _, action := range suggestion.Actions {
			require.NotEqual(t, domain.SuggestedAction_Add, action.Type)
		}
	})

	t.Run("output is stable across runs", func(t *testing.T) {
		first, err := engine.Propose(newProposeInput())
		require.NoError(t, err)
		second, err := engine.Propose(newProposeInput())
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(first.Actions, second.Actions))
	})
}

func TestMaterialize(t *testing.T) {
	base := []domain.Holding{
		{InstrumentID: "W", Weight: dec("0.5")},
		{InstrumentID: "X", Weight: dec("0.5")},
	}
	target := decimal.NewFromInt(1)

	t.Run("add pins the new weight and rescales the rest", func(t *testing.T) {
		out := Materialize(base, []domain.SuggestedAction{{
			Type:           domain.SuggestedAction_Add,
			InstrumentID:   "Y",
			Delta:          dec("0.02"),
			ProposedWeight: dec("0.02"),
		}}, target)

		require.Len(t, out, 3)
		require.True(t, domain.TotalWeight(out).Equal(target))
		for _, h := range out {
			if h.InstrumentID == "Y" {
				require.True(t, h.Weight.Equal(dec("0.02")))
			} else {
				require.True(t, h.Weight.Equal(dec("0.49")))
			}
		}
	})

	t.Run("remove rescales the remainder to target", func(t *testing.T) {
		out := Materialize(base, []domain.SuggestedAction{{
			Type:         domain.SuggestedAction_Remove,
			InstrumentID: "X",
			Delta:        dec("-0.5"),
		}}, target)

		require.Len(t, out, 1)
		require.Equal(t, "W", out[0].InstrumentID)
		require.True(t, out[0].Weight.Equal(target))
	})

	t.Run("paired reweight leaves untouched holdings alone", func(t *testing.T) {
		withThird := append([]domain.Holding{}, base...)
		withThird = append(withThird, domain.Holding{InstrumentID: "Z", Weight: dec("0.2")})
		// rebalance W/X down to make room: W 0.4, X 0.4, Z 0.2
		withThird[0].Weight = dec("0.4")
		withThird[1].Weight = dec("0.4")

		out := Materialize(withThird, []domain.SuggestedAction{
			{Type: domain.SuggestedAction_Reweight, InstrumentID: "W", Delta: dec("0.01"), ProposedWeight: dec("0.41")},
			{Type: domain.SuggestedAction_Reweight, InstrumentID: "X", Delta: dec("-0.01"), ProposedWeight: dec("0.39")},
		}, target)

		weights := map[string]decimal.Decimal{}
		for _, h := range out {
			weights[h.InstrumentID] = h.Weight
		}
		require.True(t, weights["W"].Equal(dec("0.41")))
		require.True(t, weights["X"].Equal(dec("0.39")))
		require.True(t, weights["Z"].Equal(dec("0.2")))
	})
}
