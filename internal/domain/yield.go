package domain

import (
	"sort"
	"time"
)

// YieldCurve is one day's treasury curve, keyed by tenor in months.
type YieldCurve struct {
	Date  time.Time       `json:"date"`
	Rates map[int]float64 `json:"rates"`
}

// Rate returns the yield for the given tenor, interpolating linearly between
// the surrounding published tenors when there is no exact match.
func (y YieldCurve) Rate(months int) (float64, bool) {
	if rate, ok := y.Rates[months]; ok {
		return rate, true
	}

	tenors := make([]int, 0, len(y.Rates))
	for tenor := range y.Rates {
		tenors = append(tenors, tenor)
	}
	sort.Ints(tenors)
	if len(tenors) == 0 || months < tenors[0] || months > tenors[len(tenors)-1] {
		return 0, false
	}

	for i := 1; i < len(tenors); i++ {
		if months < tenors[i] {
			lo, hi := tenors[i-1], tenors[i]
			frac := float64(months-lo) / float64(hi-lo)
			return y.Rates[lo] + frac*(y.Rates[hi]-y.Rates[lo]), true
		}
	}
	return 0, false
}
