package domain

import (
	"sort"
)

// BasketSummary is a quick concentration read on one version's holdings.
type BasketSummary struct {
	HoldingCount int     `json:"holdingCount"`
	Hhi          float64 `json:"hhi"`
	Top5Weight   float64 `json:"top5Weight"`
}

// SummarizeHoldings computes the Herfindahl-Hirschman index and top-5 weight
// concentration of a holdings set.
func SummarizeHoldings(holdings []Holding) BasketSummary {
	weights := make([]float64, 0, len(holdings))
	hhi := 0.0
	for _, h := range holdings {
		w := h.Weight.InexactFloat64()
		weights = append(weights, w)
		hhi += w * w
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(weights)))
	top5 := 0.0
	for i, w := range weights {
		if i >= 5 {
			break
		}
		top5 += w
	}

	return BasketSummary{
		HoldingCount: len(holdings),
		Hhi:          hhi,
		Top5Weight:   top5,
	}
}
