package ingest

import "strings"

// SampleCSV returns a small demo MLS export for trying out the tool.
func SampleCSV() string {
	rows := [][]string{
		{
			"Address", "City", "State", "Zip", "List Price", "Beds", "Baths",
			"SqFt", "Year Built", "DOM", "Property Type", "Public Remarks", "MLS#",
		},
		{
			"1234 Ocean Dr", "Miami Beach", "FL", "33139", "$875,000", "3", "2",
			"1,800", "1985", "45", "Single Family",
			"Fixer upper with great potential! Needs TLC but in prime location.",
			"A11234567",
		},
		{
			"5678 Collins Ave", "Miami Beach", "FL", "33139", "$1,200,000", "4", "3",
			"2,400", "1995", "12", "Single Family",
			"Beautiful waterfront property, recently renovated.",
			"A11234568",
		},
		{
			"910 Meridian Ave", "Miami Beach", "FL", "33139", "$640,000", "2", "1",
			"1,100", "1978", "88", "Condo",
			"Estate sale, sold as-is. Cash only, bring offers!",
			"A11234569",
		},
		{
			"22 Palm Ct", "Coral Gables", "FL", "33134", "$990,000", "3", "2",
			"2,050", "2004", "30", "Single Family",
			"Move-in ready with updated kitchen.",
			"A11234570",
		},
	}

	var b strings.Builder
	for i, r := range rows {
		for j, cell := range r {
			if j > 0 {
				b.WriteByte(',')
			}
			if i == 0 {
				b.WriteString(cell)
				continue
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}

	return b.String()
}
