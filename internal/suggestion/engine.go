package suggestion

import (
	"basketdesk/internal/constraint"
	"basketdesk/internal/domain"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

const (
	defaultAddIncrement    = "0.02"
	defaultReweightStep    = "0.01"
	defaultRemoveThreshold = -0.25
	defaultMaxProposals    = 5
)

// Engine generates ranked, constraint-feasible basket edits. It is purely
// advisory: it never writes anything, and a proposal only takes effect when
// the caller commits the materialized holdings through the basket service.
type Engine struct {
	addIncrement    decimal.Decimal
	reweightStep    decimal.Decimal
	removeThreshold float64
	maxProposals    int
}

func NewEngine() Engine {
	return Engine{
		addIncrement:    decimal.RequireFromString(defaultAddIncrement),
		reweightStep:    decimal.RequireFromString(defaultReweightStep),
		removeThreshold: defaultRemoveThreshold,
		maxProposals:    defaultMaxProposals,
	}
}

type ProposeInput struct {
	Basket      domain.Basket
	BaseVersion domain.BasketVersion
	Snapshot    domain.UniverseSnapshot
	Constraints domain.ConstraintSet
	Scores      []domain.SignalScore
}

// candidate groups the actions of one proposal so paired edits (a reweight
// transfer, for example) are ranked and emitted together.
type candidate struct {
	actions       []domain.SuggestedAction
	expectedDelta float64
	// primary instrument id, used for deterministic tie-breaking
	instrumentID string
}

// Propose evaluates greedy add, remove and reweight candidates against the
// base version. Every candidate is materialized into a complete holdings set
// and run through full constraint validation; infeasible or non-improving
// candidates are dropped. Output order is by expected composite improvement
// descending, ties broken by instrument id, so identical inputs always yield
// identical suggestions.
func (e Engine) Propose(in ProposeInput) (*domain.Suggestion, error) {
	scores := map[string]domain.SignalScore{}
	for _, s := range in.Scores {
		scores[s.InstrumentID] = s
	}

	current := compositeOf(in.BaseVersion.Holdings, scores)

	candidates := []candidate{}
	candidates = append(candidates, e.addCandidates(in, scores, current)...)
	candidates = append(candidates, e.removeCandidates(in, scores, current)...)
	candidates = append(candidates, e.reweightCandidates(in, scores, current)...)

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].expectedDelta != candidates[j].expectedDelta {
			return candidates[i].expectedDelta > candidates[j].expectedDelta
		}
		return candidates[i].instrumentID < candidates[j].instrumentID
	})
	if len(candidates) > e.maxProposals {
		candidates = candidates[:e.maxProposals]
	}

	actions := []domain.SuggestedAction{}
	for _, c := range candidates {
		actions = append(actions, c.actions...)
	}

	return &domain.Suggestion{
		BasketID:         in.Basket.BasketID,
		BaseVersion:      in.BaseVersion.VersionNumber,
		CurrentComposite: current,
		Actions:          actions,
	}, nil
}

// Materialize applies a proposal's actions to the base holdings and returns
// the complete resulting set: adds insert at the proposed weight, removes
// delete, reweights overwrite, and every untouched holding is proportionally
// rescaled so the total lands on the constraint target. The engine validates
// candidates through this same function, so an applied proposal reproduces
// exactly the set that was scored.
func Materialize(base []domain.Holding, actions []domain.SuggestedAction, target decimal.Decimal) []domain.Holding {
	removed := map[string]bool{}
	set := map[string]decimal.Decimal{}
	for _, action := range actions {
		switch action.Type {
		case domain.SuggestedAction_Remove:
			removed[action.InstrumentID] = true
		case domain.SuggestedAction_Add, domain.SuggestedAction_Reweight:
			set[action.InstrumentID] = action.ProposedWeight
		}
	}

	out := []domain.Holding{}
	for _, h := range base {
		if removed[h.InstrumentID] {
			continue
		}
		if weight, ok := set[h.InstrumentID]; ok {
			out = append(out, domain.Holding{InstrumentID: h.InstrumentID, Weight: weight})
			delete(set, h.InstrumentID)
			continue
		}
		out = append(out, h)
	}
	added := []string{}
	for instrumentID := range set {
		added = append(added, instrumentID)
	}
	sort.Strings(added)
	for _, instrumentID := range added {
		out = append(out, domain.Holding{InstrumentID: instrumentID, Weight: set[instrumentID]})
	}

	pinned := map[string]bool{}
	for _, action := range actions {
		if action.Type != domain.SuggestedAction_Remove {
			pinned[action.InstrumentID] = true
		}
	}
	out = domain.ScaleHoldings(out, target, pinned)
	domain.SortHoldings(out)

	return out
}

func (e Engine) addCandidates(in ProposeInput, scores map[string]domain.SignalScore, current float64) []candidate {
	held := map[string]bool{}
	for _, h := range in.BaseVersion.Holdings {
		held[h.InstrumentID] = true
	}

	out := []candidate{}
	for _, instrument := range in.Snapshot.EligibleInstruments() {
		if held[instrument.InstrumentID] {
			continue
		}
		score, ok := scores[instrument.InstrumentID]
		if !ok {
			continue
		}

		weight := e.addIncrement
		if min := instrument.MinWeightOrDefault(); weight.LessThan(min) {
			weight = min
		}
		action := domain.SuggestedAction{
			Type:           domain.SuggestedAction_Add,
			InstrumentID:   instrument.InstrumentID,
			Delta:          weight,
			ProposedWeight: weight,
			Rationale:      fmt.Sprintf("add %s: %s", instrument.Ticker, describeScore(score)),
		}

		if c, ok := e.evaluate(in, scores, current, action.InstrumentID, []domain.SuggestedAction{action}); ok {
			out = append(out, c)
		}
	}
	return out
}

func (e Engine) removeCandidates(in ProposeInput, scores map[string]domain.SignalScore, current float64) []candidate {
	out := []candidate{}
	for _, h := range sortedHoldings(in.BaseVersion.Holdings) {
		score, ok := scores[h.InstrumentID]
		if !ok || score.Composite >= e.removeThreshold {
			continue
		}

		action := domain.SuggestedAction{
			Type:           domain.SuggestedAction_Remove,
			InstrumentID:   h.InstrumentID,
			Delta:          h.Weight.Neg(),
			ProposedWeight: decimal.Zero,
			Rationale:      fmt.Sprintf("remove %s: %s", tickerOf(in.Snapshot, h.InstrumentID), describeScore(score)),
		}

		if c, ok := e.evaluate(in, scores, current, action.InstrumentID, []domain.SuggestedAction{action}); ok {
			out = append(out, c)
		}
	}
	return out
}

// reweightCandidates proposes weight transfers from the lowest-scored held
// instruments toward the highest-scored ones, one fixed step at a time, so
// the basket total never moves.
func (e Engine) reweightCandidates(in ProposeInput, scores map[string]domain.SignalScore, current float64) []candidate {
	held := []domain.Holding{}
	for _, h := range sortedHoldings(in.BaseVersion.Holdings) {
		if _, ok := scores[h.InstrumentID]; ok {
			held = append(held, h)
		}
	}
	if len(held) < 2 {
		return nil
	}

	byScore := make([]domain.Holding, len(held))
	copy(byScore, held)
	sort.SliceStable(byScore, func(i, j int) bool {
		si := scores[byScore[i].InstrumentID].Composite
		sj := scores[byScore[j].InstrumentID].Composite
		if si != sj {
			return si > sj
		}
		return byScore[i].InstrumentID < byScore[j].InstrumentID
	})

	out := []candidate{}
	for i := 0; i < len(byScore)/2; i++ {
		up := byScore[i]
		down := byScore[len(byScore)-1-i]

		actions := []domain.SuggestedAction{
			{
				Type:           domain.SuggestedAction_Reweight,
				InstrumentID:   up.InstrumentID,
				Delta:          e.reweightStep,
				ProposedWeight: up.Weight.Add(e.reweightStep),
				Rationale: fmt.Sprintf("shift %s from %s to %s: %s",
					e.reweightStep, tickerOf(in.Snapshot, down.InstrumentID), tickerOf(in.Snapshot, up.InstrumentID),
					describeScore(scores[up.InstrumentID])),
			},
			{
				Type:           domain.SuggestedAction_Reweight,
				InstrumentID:   down.InstrumentID,
				Delta:          e.reweightStep.Neg(),
				ProposedWeight: down.Weight.Sub(e.reweightStep),
				Rationale: fmt.Sprintf("fund %s increase: %s",
					tickerOf(in.Snapshot, up.InstrumentID), describeScore(scores[down.InstrumentID])),
			},
		}

		if c, ok := e.evaluate(in, scores, current, up.InstrumentID, actions); ok {
			out = append(out, c)
		}
	}
	return out
}

// evaluate materializes one candidate, rejects it unless the full resulting
// set passes validation and improves the composite, and attaches the expected
// improvement to its actions.
func (e Engine) evaluate(in ProposeInput, scores map[string]domain.SignalScore, current float64, instrumentID string, actions []domain.SuggestedAction) (candidate, bool) {
	holdings := Materialize(in.BaseVersion.Holdings, actions, in.Constraints.WeightTarget)
	result := constraint.Validate(in.Snapshot, holdings, in.Constraints)
	if !result.IsValid {
		return candidate{}, false
	}

	expected := compositeOf(holdings, scores) - current
	if expected <= 0 {
		return candidate{}, false
	}

	for i := range actions {
		actions[i].ExpectedCompositeDelta = expected
	}

	return candidate{
		actions:       actions,
		expectedDelta: expected,
		instrumentID:  instrumentID,
	}, true
}

// compositeOf is the basket-level score: the weight-weighted mean composite
// of the held instruments. Holdings without a score contribute zero.
func compositeOf(holdings []domain.Holding, scores map[string]domain.SignalScore) float64 {
	totalWeight := 0.0
	weighted := 0.0
	for _, h := range holdings {
		w := h.Weight.InexactFloat64()
		totalWeight += w
		if score, ok := scores[h.InstrumentID]; ok {
			weighted += w * score.Composite
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return weighted / totalWeight
}

func describeScore(score domain.SignalScore) string {
	name, fr := score.DominantFactor()
	if fr == nil {
		return fmt.Sprintf("composite %.2f", score.Composite)
	}
	return fmt.Sprintf("composite %.2f driven by %s (z-score %.2f, contribution %.2f)",
		score.Composite, name, fr.ZScore, fr.Contribution)
}

func tickerOf(snapshot domain.UniverseSnapshot, instrumentID string) string {
	if instrument, ok := snapshot.Get(instrumentID); ok {
		return instrument.Ticker
	}
	return instrumentID
}

func sortedHoldings(holdings []domain.Holding) []domain.Holding {
	out := make([]domain.Holding, len(holdings))
	copy(out, holdings)
	domain.SortHoldings(out)
	return out
}
