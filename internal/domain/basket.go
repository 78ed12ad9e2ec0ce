package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Basket is a named, weighted instrument list. It is bound to exactly one
// universe snapshot at creation and keeps that binding for life; every version
// resolves its holdings against that snapshot.
type Basket struct {
	BasketID    uuid.UUID
	SnapshotID  uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
}

type Holding struct {
	InstrumentID string
	Weight       decimal.Decimal
}

// BasketVersion is one entry in a basket's append-only history. Versions are
// numbered 1..N with no gaps and are never edited or deleted.
type BasketVersion struct {
	BasketID      uuid.UUID
	VersionNumber int32
	Note          *string
	CreatedAt     time.Time
	Holdings      []Holding
}

// SortHoldings orders holdings by instrument id so exports and validation
// output are deterministic.
func SortHoldings(holdings []Holding) {
	sort.Slice(holdings, func(i, j int) bool {
		return holdings[i].InstrumentID < holdings[j].InstrumentID
	})
}

func TotalWeight(holdings []Holding) decimal.Decimal {
	sum := decimal.Zero
	for _, h := range holdings {
		sum = sum.Add(h.Weight)
	}
	return sum
}

// ScaleHoldings proportionally rescales the given holdings so they sum to
// target. Holdings whose instrument id appears in pinned keep their weight;
// only the unpinned remainder is scaled. If the unpinned weights sum to zero
// the input is returned unchanged.
func ScaleHoldings(holdings []Holding, target decimal.Decimal, pinned map[string]bool) []Holding {
	unpinnedTotal := decimal.Zero
	pinnedTotal := decimal.Zero
	for _, h := range holdings {
		if pinned[h.InstrumentID] {
			pinnedTotal = pinnedTotal.Add(h.Weight)
		} else {
			unpinnedTotal = unpinnedTotal.Add(h.Weight)
		}
	}

	out := make([]Holding, len(holdings))
	copy(out, holdings)
	if unpinnedTotal.IsZero() {
		return out
	}

	factor := target.Sub(pinnedTotal).Div(unpinnedTotal)
	for i, h := range out {
		if pinned[h.InstrumentID] {
			continue
		}
		out[i].Weight = h.Weight.Mul(factor)
	}
	return out
}

type WeightDelta struct {
	InstrumentID string          `json:"instrumentId"`
	OldWeight    decimal.Decimal `json:"oldWeight"`
	NewWeight    decimal.Decimal `json:"newWeight"`
	Delta        decimal.Decimal `json:"delta"`
}

// VersionDiff describes how one basket version differs from another. The
// composite delta is only populated when signal scores were available at
// comparison time.
type VersionDiff struct {
	BasketID       uuid.UUID     `json:"basketId"`
	FromVersion    int32         `json:"fromVersion"`
	ToVersion      int32         `json:"toVersion"`
	Added          []Holding     `json:"added"`
	Removed        []Holding     `json:"removed"`
	WeightDeltas   []WeightDelta `json:"weightDeltas"`
	CompositeDelta *float64      `json:"compositeDelta,omitempty"`
}
