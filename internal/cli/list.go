package cli

import (
	"github.com/spf13/cobra"

	"github.com/flipscout/flipscout/internal/listing"
)

func newListCmd() *cobra.Command {
	var (
		minPrice float64
		maxPrice float64
		minScore float64
		minROI   float64
		zip      string
		minBeds  float64
		maxDOM   int
		sortBy   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored listings",
		Long:  "List stored listings, optionally filtered and sorted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := listing.ListOptions{ZipCode: zip, SortBy: sortBy}
			if cmd.Flags().Changed("min-price") {
				opts.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				opts.MaxPrice = &maxPrice
			}
			if cmd.Flags().Changed("min-score") {
				opts.MinScore = &minScore
			}
			if cmd.Flags().Changed("min-roi") {
				opts.MinROI = &minROI
			}
			if cmd.Flags().Changed("min-beds") {
				opts.MinBeds = &minBeds
			}
			if cmd.Flags().Changed("max-dom") {
				opts.MaxDaysOnMarket = &maxDOM
			}
			return runList(opts)
		},
	}

	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "minimum anomaly score (1-10)")
	cmd.Flags().Float64Var(&minROI, "min-roi", 0, "minimum estimated ROI percent")
	cmd.Flags().StringVar(&zip, "zip", "", "restrict to one zip code")
	cmd.Flags().Float64Var(&minBeds, "min-beds", 0, "minimum bedroom count")
	cmd.Flags().IntVar(&maxDOM, "max-dom", 0, "maximum days on market")
	cmd.Flags().StringVar(&sortBy, "sort", "anomaly_score", "sort key (price|price_per_sqft|anomaly_score|estimated_roi|days_on_market)")

	return cmd
}

func runList(opts listing.ListOptions) error {
	repo, database, err := newListingRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	listings, err := repo.List(opts)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(listings)
	}

	return printListingTable(listings)
}
