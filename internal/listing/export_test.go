package listing

import (
	"bytes"
	"strings"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }

func TestExportCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, nil); err != nil {
		t.Fatalf("export: %v", err)
	}

	want := "Address,City,State,Zip Code,Price,Beds,Baths,Sqft,Price/Sqft,Year Built,Days on Market,Property Type,Anomaly Score,Est. Profit,Est. ROI %\n"
	if buf.String() != want {
		t.Errorf("header = %q, want %q", buf.String(), want)
	}
}

func TestExportCSVRow(t *testing.T) {
	l := &Listing{
		ID:           "prop-1-0",
		Address:      "1234 Ocean Dr",
		City:         "Miami Beach",
		State:        "FL",
		ZipCode:      "33139",
		Price:        875000,
		Beds:         3,
		Baths:        2.5,
		Sqft:         1800,
		YearBuilt:    1985,
		DaysOnMarket: 45,
		PropertyType: "Single Family",
		PricePerSqft: 875000.0 / 1800.0,
		AnomalyScore: floatPtr(7),
		EstimatedROI: floatPtr(6.301),
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, []*Listing{l}); err != nil {
		t.Fatalf("export: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}

	want := "1234 Ocean Dr,Miami Beach,FL,33139,875000,3,2.5,1800,486.11,1985,45,Single Family,7.0,N/A,6.3%"
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestExportCSVQuoting(t *testing.T) {
	l := &Listing{
		Address:      `Unit "B", 12 Main St`,
		Price:        500000,
		Sqft:         1000,
		PricePerSqft: 500,
		PropertyType: "Condo",
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, []*Listing{l}); err != nil {
		t.Fatalf("export: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if !strings.HasPrefix(lines[1], `"Unit ""B"", 12 Main St",`) {
		t.Errorf("row = %q, want quoted address with doubled quotes", lines[1])
	}
	if !strings.Contains(lines[1], "N/A,N/A,N/A") {
		t.Errorf("row = %q, want N/A for all unset optionals", lines[1])
	}
}
