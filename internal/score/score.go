// Package score rates flip potential with a fixed heuristic rubric.
package score

import (
	"sort"
	"strings"

	"github.com/flipscout/flipscout/internal/listing"
	"github.com/flipscout/flipscout/internal/market"
)

// Rubric thresholds and deltas. Kept as named constants so the rubric is
// tunable without touching control flow.
const (
	BaseScore = 5
	MinScore  = 1
	MaxScore  = 10

	// Price at or below this fraction of the market median earns +2.
	medianDiscount = 0.80
	// Price-per-sqft at or below this fraction of the market mean earns +2.
	ppsfDiscount = 0.75
	// Listings sitting longer than this many days earn +1.
	staleDOMDays = 60
	// Distress keyword bonus is capped at this many points.
	keywordCap = 2
	// Prices above this lose a point (harder to flip).
	luxuryCutoff = 1_500_000
	// Homes built after this year lose a point (less renovation upside).
	recentBuildYear = 2000
)

// distressKeywords are matched case-insensitively as substrings of remarks.
var distressKeywords = []string{
	"fixer",
	"tlc",
	"as-is",
	"as is",
	"handyman special",
	"estate sale",
	"needs work",
	"needs repair",
	"investor special",
	"cash only",
	"motivated seller",
	"bring offers",
}

// Score computes the anomaly score for one listing against its market
// statistics, clamped to [MinScore, MaxScore].
//
// When stats is nil the base score is returned unmodified, skipping even the
// statistics-independent adjustments (days-on-market, keywords). That bypass
// is a quirk of the original rubric, preserved deliberately.
func Score(l *listing.Listing, stats *market.Stats) float64 {
	score := float64(BaseScore)

	if stats == nil {
		return score
	}

	if l.Price <= stats.MedianPrice*medianDiscount {
		score += 2
	}

	if l.PricePerSqft <= stats.AvgPricePerSqft*ppsfDiscount {
		score += 2
	}

	if l.DaysOnMarket > staleDOMDays {
		score++
	}

	if l.Remarks != nil {
		remarks := strings.ToLower(*l.Remarks)
		found := 0
		for _, kw := range distressKeywords {
			if strings.Contains(remarks, kw) {
				found++
			}
		}
		score += float64(min(found, keywordCap))
	}

	if l.Price > luxuryCutoff {
		score--
	}

	if l.YearBuilt > recentBuildYear {
		score--
	}

	return clamp(score, MinScore, MaxScore)
}

// EnrichAll scores every listing in place. Market statistics are computed
// once per zip code for the whole batch, so all listings sharing a zip see
// the same snapshot.
func EnrichAll(listings []*listing.Listing) {
	snapshot := market.ComputeAll(listings)
	for _, l := range listings {
		s := Score(l, snapshot[l.ZipCode])
		l.AnomalyScore = &s
	}
}

// HighPotential returns the listings scoring at or above minScore, sorted by
// score descending. Unscored listings count as 0.
func HighPotential(listings []*listing.Listing, minScore float64) []*listing.Listing {
	var out []*listing.Listing
	for _, l := range listings {
		if scoreOrZero(l) >= minScore {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return scoreOrZero(out[i]) > scoreOrZero(out[j])
	})
	return out
}

func scoreOrZero(l *listing.Listing) float64 {
	if l.AnomalyScore == nil {
		return 0
	}
	return *l.AnomalyScore
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
