package score

import (
	"testing"

	"github.com/flipscout/flipscout/internal/listing"
	"github.com/flipscout/flipscout/internal/market"
)

func strPtr(s string) *string { return &s }

// neutralStats is a market where none of the comparative rules fire for a
// listing priced 1,000,000 at 500/sqft.
func neutralStats() *market.Stats {
	return &market.Stats{
		ZipCode:         "33139",
		MedianPrice:     1_000_000,
		AvgPricePerSqft: 500,
		Count:           10,
	}
}

func neutralListing() *listing.Listing {
	return &listing.Listing{
		ZipCode:      "33139",
		Price:        1_000_000,
		Sqft:         2000,
		PricePerSqft: 500,
		YearBuilt:    1985,
		DaysOnMarket: 30,
	}
}

func TestScoreWithoutStats(t *testing.T) {
	// Absent stats bypass the whole rubric, including the
	// statistics-independent adjustments.
	l := neutralListing()
	l.DaysOnMarket = 120
	l.Remarks = strPtr("fixer, needs work, cash only")

	if got := Score(l, nil); got != 5 {
		t.Errorf("Score(no stats) = %v, want 5", got)
	}
}

func TestScoreRules(t *testing.T) {
	tests := []struct {
		name  string
		tweak func(*listing.Listing)
		want  float64
	}{
		{"neutral", func(l *listing.Listing) {}, 5},
		{"cheap vs median", func(l *listing.Listing) {
			l.Price = 800_000 // exactly 80% of median
		}, 7},
		{"cheap per sqft", func(l *listing.Listing) {
			l.PricePerSqft = 375 // exactly 75% of mean
		}, 7},
		{"stale", func(l *listing.Listing) {
			l.DaysOnMarket = 61
		}, 6},
		{"dom boundary not stale", func(l *listing.Listing) {
			l.DaysOnMarket = 60
		}, 5},
		{"one keyword", func(l *listing.Listing) {
			l.Remarks = strPtr("Handyman special in prime location")
		}, 6},
		{"keywords capped at two", func(l *listing.Listing) {
			l.Remarks = strPtr("Fixer needs TLC, sold as-is, cash only!")
		}, 7},
		{"luxury penalty", func(l *listing.Listing) {
			l.Price = 1_600_000
		}, 4},
		{"recent build penalty", func(l *listing.Listing) {
			l.YearBuilt = 2005
		}, 4},
		{"clamped high", func(l *listing.Listing) {
			l.Price = 700_000
			l.PricePerSqft = 350
			l.DaysOnMarket = 90
			l.Remarks = strPtr("estate sale, bring offers")
		}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := neutralListing()
			tt.tweak(l)
			if got := Score(l, neutralStats()); got != tt.want {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreDistinctKeywordBonus(t *testing.T) {
	// "fixer" and "TLC" are two distinct keywords: exactly +2, not +4.
	l := neutralListing()
	l.Remarks = strPtr("Fixer upper, needs TLC")

	if got := Score(l, neutralStats()); got != 7 {
		t.Errorf("Score = %v, want 7", got)
	}
}

func TestScoreIdempotent(t *testing.T) {
	l := neutralListing()
	l.Remarks = strPtr("motivated seller")
	stats := neutralStats()

	first := Score(l, stats)
	for i := 0; i < 3; i++ {
		if got := Score(l, stats); got != first {
			t.Fatalf("Score changed on rerun: %v != %v", got, first)
		}
	}
}

func TestEnrichAll(t *testing.T) {
	listings := []*listing.Listing{
		{ZipCode: "33139", Price: 400, Sqft: 1, PricePerSqft: 400, YearBuilt: 1980},
		{ZipCode: "33139", Price: 1000, Sqft: 1, PricePerSqft: 1000, YearBuilt: 1980},
		{ZipCode: "33139", Price: 1600, Sqft: 1, PricePerSqft: 1600, YearBuilt: 1980},
		{ZipCode: "", Price: 500, Sqft: 1, PricePerSqft: 500, YearBuilt: 1980},
	}

	EnrichAll(listings)

	for i, l := range listings {
		if l.AnomalyScore == nil {
			t.Fatalf("listing %d unscored", i)
		}
		if *l.AnomalyScore < MinScore || *l.AnomalyScore > MaxScore {
			t.Errorf("listing %d score %v out of bounds", i, *l.AnomalyScore)
		}
	}

	// Median 1000, mean $/sqft 1000: the cheap listing earns +2 and +2.
	if *listings[0].AnomalyScore != 9 {
		t.Errorf("cheap listing score = %v, want 9", *listings[0].AnomalyScore)
	}
	if *listings[1].AnomalyScore != 5 {
		t.Errorf("median listing score = %v, want 5", *listings[1].AnomalyScore)
	}
}

func TestHighPotential(t *testing.T) {
	s7, s9, s3 := 7.0, 9.0, 3.0
	listings := []*listing.Listing{
		{ID: "a", AnomalyScore: &s7},
		{ID: "b", AnomalyScore: &s3},
		{ID: "c", AnomalyScore: &s9},
		{ID: "d"}, // unscored counts as 0
	}

	high := HighPotential(listings, 7)

	if len(high) != 2 {
		t.Fatalf("high = %d listings, want 2", len(high))
	}
	if high[0].ID != "c" || high[1].ID != "a" {
		t.Errorf("order = %s, %s; want c, a", high[0].ID, high[1].ID)
	}
}
