package deal

import "github.com/flipscout/flipscout/internal/listing"

// ARVEstimate holds the three after-repair-value scenarios for a subject
// property, keyed to expected renovation quality.
type ARVEstimate struct {
	Conservative float64 `json:"conservative"` // 5% below comps
	Moderate     float64 `json:"moderate"`     // at comps average
	Aggressive   float64 `json:"aggressive"`   // 5% above comps
}

const (
	conservativeFactor = 0.95
	aggressiveFactor   = 1.05
)

// CompsAverage returns the mean price-per-sqft across comparable sales.
// The second return is false when no usable comp exists; callers must guard
// before estimating.
func CompsAverage(comps []listing.ComparableSale) (float64, bool) {
	var total float64
	var n int
	for _, c := range comps {
		ppsf := c.PricePerSqft
		if ppsf == 0 && c.Sqft > 0 {
			ppsf = c.SalePrice / c.Sqft
		}
		if ppsf <= 0 {
			continue
		}
		total += ppsf
		n++
	}

	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

// EstimateARV scales the comps mean price-per-sqft by the subject's area
// into three scenario estimates.
func EstimateARV(avgPricePerSqft, sqft float64) ARVEstimate {
	base := avgPricePerSqft * sqft
	return ARVEstimate{
		Conservative: base * conservativeFactor,
		Moderate:     base,
		Aggressive:   base * aggressiveFactor,
	}
}
