// Package market computes summary statistics per zip-code bucket.
package market

import (
	"sort"

	"github.com/flipscout/flipscout/internal/listing"
)

// Stats summarizes the listings sharing one zip code. Derived and ephemeral:
// recomputed in full whenever the listing set changes, never persisted.
type Stats struct {
	ZipCode         string  `json:"zip_code"`
	AvgPricePerSqft float64 `json:"avg_price_per_sqft"`
	MedianPrice     float64 `json:"median_price"`
	Count           int     `json:"count"`
}

// Compute aggregates the listings whose zip code equals the bucket.
// Returns nil when no listings match.
func Compute(listings []*listing.Listing, zipCode string) *Stats {
	var members []*listing.Listing
	for _, l := range listings {
		if l.ZipCode == zipCode {
			members = append(members, l)
		}
	}

	if len(members) == 0 {
		return nil
	}

	// Mean of each member's stored price-per-sqft, not aggregate price/area.
	var totalPPSF float64
	prices := make([]float64, len(members))
	for i, l := range members {
		totalPPSF += l.PricePerSqft
		prices[i] = l.Price
	}

	sort.Float64s(prices)

	return &Stats{
		ZipCode:         zipCode,
		AvgPricePerSqft: totalPPSF / float64(len(members)),
		MedianPrice:     median(prices),
		Count:           len(members),
	}
}

// ComputeAll builds one stats snapshot per zip code present in the set, so
// every listing sharing a zip sees the same snapshot.
func ComputeAll(listings []*listing.Listing) map[string]*Stats {
	snapshot := make(map[string]*Stats)
	for _, l := range listings {
		if _, ok := snapshot[l.ZipCode]; ok {
			continue
		}
		snapshot[l.ZipCode] = Compute(listings, l.ZipCode)
	}
	return snapshot
}

// median of an ascending-sorted slice: middle element for odd counts, mean
// of the two middle elements for even counts.
func median(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
