package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/flipscout/flipscout/internal/deal"
	"github.com/flipscout/flipscout/internal/listing"
	"github.com/flipscout/flipscout/internal/market"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printListingTable prints listings as a formatted table.
func printListingTable(listings []*listing.Listing) error {
	if len(listings) == 0 {
		fmt.Println("No listings found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tADDRESS\tZIP\tPRICE\t$/SQFT\tBED\tBATH\tDOM\tSCORE\tROI"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-------\t---\t-----\t------\t---\t----\t---\t-----\t---"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, l := range listings {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t$%s\t%.2f\t%g\t%g\t%d\t%s\t%s\n",
			l.ID, truncate(l.Address, 36), l.ZipCode, formatPrice(l.Price),
			l.PricePerSqft, l.Beds, l.Baths, l.DaysOnMarket,
			formatOptional(l.AnomalyScore, "%.1f"),
			formatOptional(l.EstimatedROI, "%.1f%%"),
		); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d listings\n", len(listings))
	return nil
}

// printListingDetail prints a single listing in text format.
func printListingDetail(l *listing.Listing) {
	fmt.Printf("Listing %s\n", l.ID)
	fmt.Printf("  Address:  %s\n", l.Address)
	if l.City != "" || l.State != "" || l.ZipCode != "" {
		fmt.Printf("  Location: %s, %s %s\n", l.City, l.State, l.ZipCode)
	}
	fmt.Printf("  Price:    $%s\n", formatPrice(l.Price))
	fmt.Printf("  Beds:     %g\n", l.Beds)
	fmt.Printf("  Baths:    %g\n", l.Baths)
	fmt.Printf("  Sqft:     %g ($%.2f/sqft)\n", l.Sqft, l.PricePerSqft)
	if l.YearBuilt > 0 {
		fmt.Printf("  Built:    %d\n", l.YearBuilt)
	}
	fmt.Printf("  DOM:      %d\n", l.DaysOnMarket)
	fmt.Printf("  Type:     %s\n", l.PropertyType)
	if l.MLSNumber != nil && *l.MLSNumber != "" {
		fmt.Printf("  MLS:      %s\n", *l.MLSNumber)
	}
	if l.ListingAgent != nil && *l.ListingAgent != "" {
		fmt.Printf("  Agent:    %s\n", *l.ListingAgent)
	}
	if l.AnomalyScore != nil {
		fmt.Printf("  Score:    %.1f / 10\n", *l.AnomalyScore)
	}
	if l.EstimatedProfit != nil {
		fmt.Printf("  Est. profit: $%s\n", formatPrice(*l.EstimatedProfit))
	}
	if l.EstimatedROI != nil {
		fmt.Printf("  Est. ROI:    %.1f%%\n", *l.EstimatedROI)
	}
	if l.Remarks != nil && *l.Remarks != "" {
		fmt.Printf("  Remarks:  %s\n", *l.Remarks)
	}
}

// printDealAnalysis prints a deal breakdown in text format.
func printDealAnalysis(a deal.Analysis) {
	fmt.Println("Deal Analysis")
	fmt.Printf("  Purchase price:    $%s\n", formatPrice(a.PurchasePrice))
	fmt.Printf("  Renovation budget: $%s\n", formatPrice(a.RenovationBudget))
	fmt.Printf("  Estimated ARV:     $%s\n", formatPrice(a.EstimatedARV))
	fmt.Printf("  Holding period:    %d months\n", a.HoldingPeriodMonths)
	fmt.Printf("  Financing:         %.1f%% down at %.1f%%\n", a.DownPaymentPercent, a.InterestRate)
	fmt.Println()
	fmt.Printf("  Down payment:      $%s\n", formatPrice(a.DownPayment))
	fmt.Printf("  Loan amount:       $%s\n", formatPrice(a.LoanAmount))
	fmt.Printf("  Acquisition costs: $%s\n", formatPrice(a.AcquisitionCosts))
	fmt.Printf("  Monthly holding:   $%s\n", formatPrice(a.MonthlyHoldingCosts))
	fmt.Printf("  Total holding:     $%s\n", formatPrice(a.TotalHoldingCosts))
	fmt.Printf("  Total investment:  $%s\n", formatPrice(a.TotalInvestment))
	fmt.Printf("  Selling costs:     $%s\n", formatPrice(a.SellingCosts))
	fmt.Println()
	fmt.Printf("  Gross profit:      $%s\n", formatPrice(a.GrossProfit))
	fmt.Printf("  Net profit:        $%s\n", formatPrice(a.NetProfit))
	fmt.Printf("  Cash invested:     $%s\n", formatPrice(a.TotalCashInvested))
	fmt.Printf("  ROI:               %.1f%%\n", a.ROI)
}

// printMarketStats prints one market bucket in text format.
func printMarketStats(s *market.Stats) {
	fmt.Printf("Market %s\n", s.ZipCode)
	fmt.Printf("  Listings:       %d\n", s.Count)
	fmt.Printf("  Median price:   $%s\n", formatPrice(s.MedianPrice))
	fmt.Printf("  Avg $/sqft:     $%.2f\n", s.AvgPricePerSqft)
}

// formatPrice formats a dollar amount with thousands separators. Cents are
// dropped; negative amounts keep their sign.
func formatPrice(amount float64) string {
	neg := amount < 0
	s := fmt.Sprintf("%d", int64(math.Round(math.Abs(amount))))

	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}

	if neg {
		return "-" + s
	}
	return s
}

// formatOptional renders a pointer field, or "N/A" when unset.
func formatOptional(v *float64, format string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf(format, *v)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
