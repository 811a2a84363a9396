package listing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// exportHeader is the fixed report column order.
var exportHeader = []string{
	"Address", "City", "State", "Zip Code", "Price", "Beds", "Baths", "Sqft",
	"Price/Sqft", "Year Built", "Days on Market", "Property Type",
	"Anomaly Score", "Est. Profit", "Est. ROI %",
}

// ExportCSV writes the report CSV for a listing set. Cells containing a
// comma, quote, or newline come out quoted with internal quotes doubled
// (encoding/csv's RFC-4180 behavior).
func ExportCSV(w io.Writer, listings []*Listing) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("writing export header: %w", err)
	}

	for _, l := range listings {
		row := []string{
			l.Address,
			l.City,
			l.State,
			l.ZipCode,
			formatNumber(l.Price),
			formatNumber(l.Beds),
			formatNumber(l.Baths),
			formatNumber(l.Sqft),
			fmt.Sprintf("%.2f", l.PricePerSqft),
			strconv.Itoa(l.YearBuilt),
			strconv.Itoa(l.DaysOnMarket),
			l.PropertyType,
			formatOptional(l.AnomalyScore, "%.1f"),
			formatOptional(l.EstimatedProfit, "$%.0f"),
			formatOptional(l.EstimatedROI, "%.1f%%"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing export row for %s: %w", l.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing export: %w", err)
	}
	return nil
}

// formatNumber renders a float without trailing zeros (875000, 2.5).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatOptional renders a pointer field, or "N/A" when unset.
func formatOptional(v *float64, format string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf(format, *v)
}
