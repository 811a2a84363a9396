package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flipscout/flipscout/internal/deal"
	"github.com/flipscout/flipscout/internal/listing"
)

func newARVCmd() *cobra.Command {
	var (
		comps []string
		sqft  float64
	)

	cmd := &cobra.Command{
		Use:   "arv",
		Short: "Estimate ARV from comparable sales",
		Long:  "Estimate the subject property's after-repair value from comparable sales. Each --comp is SALE_PRICE:SQFT, repeatable.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runARV(comps, sqft)
		},
	}

	cmd.Flags().StringArrayVar(&comps, "comp", nil, "comparable sale as SALE_PRICE:SQFT (repeatable)")
	cmd.Flags().Float64Var(&sqft, "sqft", 0, "subject property square footage")

	return cmd
}

func runARV(rawComps []string, sqft float64) error {
	if sqft <= 0 {
		return fmt.Errorf("--sqft must be positive")
	}

	comps, err := parseComps(rawComps)
	if err != nil {
		return err
	}

	avg, ok := deal.CompsAverage(comps)
	if !ok {
		return fmt.Errorf("at least one comparable sale is required (--comp SALE_PRICE:SQFT)")
	}

	estimate := deal.EstimateARV(avg, sqft)

	if isJSON() {
		return printJSON(estimate)
	}

	fmt.Printf("Comps average:  $%.2f/sqft over %d sales\n\n", avg, len(comps))
	fmt.Printf("Conservative:   $%s\n", formatPrice(estimate.Conservative))
	fmt.Printf("Moderate:       $%s\n", formatPrice(estimate.Moderate))
	fmt.Printf("Aggressive:     $%s\n", formatPrice(estimate.Aggressive))
	return nil
}

// parseComps converts SALE_PRICE:SQFT arguments into comparable sales.
func parseComps(raw []string) ([]listing.ComparableSale, error) {
	comps := make([]listing.ComparableSale, 0, len(raw))
	for _, r := range raw {
		parts := strings.SplitN(r, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid comp %q: expected SALE_PRICE:SQFT", r)
		}

		price, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid comp price %q: %w", parts[0], err)
		}
		sqft, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid comp sqft %q: %w", parts[1], err)
		}

		comps = append(comps, listing.ComparableSale{SalePrice: price, Sqft: sqft})
	}
	return comps, nil
}
