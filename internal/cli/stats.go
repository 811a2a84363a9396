package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flipscout/flipscout/internal/listing"
	"github.com/flipscout/flipscout/internal/market"
	"github.com/flipscout/flipscout/internal/score"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [zip]",
		Short: "Show corpus summary or one market bucket",
		Long:  "Without arguments, show a summary of all stored listings and a per-zip market table. With a zip code, show just that market bucket.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zip := ""
			if len(args) == 1 {
				zip = args[0]
			}
			return runStats(zip)
		},
	}
}

// summary is the corpus-wide report.
type summary struct {
	Listings      int                      `json:"listings"`
	AveragePrice  float64                  `json:"average_price"`
	AverageScore  float64                  `json:"average_score"`
	HighPotential int                      `json:"high_potential"`
	Markets       map[string]*market.Stats `json:"markets"`
	LastUpdated   string                   `json:"last_updated,omitempty"`
}

func runStats(zip string) error {
	repo, database, err := newListingRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	listings, err := repo.List(listing.ListOptions{})
	if err != nil {
		return err
	}

	if zip != "" {
		stats := market.Compute(listings, zip)
		if stats == nil {
			return fmt.Errorf("no listings in zip %s", zip)
		}
		if isJSON() {
			return printJSON(stats)
		}
		printMarketStats(stats)
		return nil
	}

	s := buildSummary(listings)
	if t, ok, err := repo.LastUpdated(); err == nil && ok {
		s.LastUpdated = t.Format("2006-01-02 15:04")
	}

	if isJSON() {
		return printJSON(s)
	}

	return printSummary(s)
}

func buildSummary(listings []*listing.Listing) summary {
	s := summary{
		Listings:      len(listings),
		HighPotential: len(score.HighPotential(listings, 7)),
		Markets:       market.ComputeAll(listings),
	}

	// Averages are guarded: an empty corpus reports zeros, not NaN.
	if len(listings) == 0 {
		return s
	}

	var totalPrice, totalScore float64
	var scored int
	for _, l := range listings {
		totalPrice += l.Price
		if l.AnomalyScore != nil {
			totalScore += *l.AnomalyScore
			scored++
		}
	}
	s.AveragePrice = totalPrice / float64(len(listings))
	if scored > 0 {
		s.AverageScore = totalScore / float64(scored)
	}

	return s
}

func printSummary(s summary) error {
	fmt.Printf("Listings:       %d\n", s.Listings)
	if s.Listings == 0 {
		return nil
	}
	fmt.Printf("Average price:  $%s\n", formatPrice(s.AveragePrice))
	fmt.Printf("Average score:  %.1f\n", s.AverageScore)
	fmt.Printf("High potential: %d (score ≥ 7)\n", s.HighPotential)
	if s.LastUpdated != "" {
		fmt.Printf("Last updated:   %s\n", s.LastUpdated)
	}

	zips := make([]string, 0, len(s.Markets))
	for zip := range s.Markets {
		zips = append(zips, zip)
	}
	sort.Strings(zips)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "\nZIP\tLISTINGS\tMEDIAN PRICE\tAVG $/SQFT"); err != nil {
		return fmt.Errorf("writing stats header: %w", err)
	}
	for _, zip := range zips {
		m := s.Markets[zip]
		if m == nil {
			continue
		}
		label := zip
		if label == "" {
			label = "(none)"
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\t$%s\t$%.2f\n",
			label, m.Count, formatPrice(m.MedianPrice), m.AvgPricePerSqft); err != nil {
			return fmt.Errorf("writing stats row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing stats table: %w", err)
	}

	return nil
}
