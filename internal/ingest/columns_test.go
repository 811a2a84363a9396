package ingest

import "testing"

func TestResolveColumns(t *testing.T) {
	headers := []string{"  Street Address ", "CITY", "St", "Zip Code", "List Price", "Bedrooms", "Total Baths", "Sq Ft", "Yr Built", "CDOM", "Prop Type", "Public Remarks", "List Agent", "MLS#"}

	resolved := ResolveColumns(headers)

	tests := []struct {
		field Field
		want  string
	}{
		{FieldAddress, "  Street Address "},
		{FieldCity, "CITY"},
		{FieldState, "St"},
		{FieldZipCode, "Zip Code"},
		{FieldPrice, "List Price"},
		{FieldBeds, "Bedrooms"},
		{FieldBaths, "Total Baths"},
		{FieldSqft, "Sq Ft"},
		{FieldYearBuilt, "Yr Built"},
		{FieldDaysOnMarket, "CDOM"},
		{FieldPropertyType, "Prop Type"},
		{FieldRemarks, "Public Remarks"},
		{FieldListingAgent, "List Agent"},
		{FieldMLSNumber, "MLS#"},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			got, ok := resolved[tt.field]
			if !ok {
				t.Fatalf("field %s unmapped", tt.field)
			}
			if got != tt.want {
				t.Errorf("resolved[%s] = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestResolveColumnsAliasPriority(t *testing.T) {
	// "price" outranks "list price" regardless of header order.
	resolved := ResolveColumns([]string{"List Price", "Price"})

	if got := resolved[FieldPrice]; got != "Price" {
		t.Errorf("resolved[price] = %q, want %q", got, "Price")
	}
}

func TestResolveColumnsNoPunctuationNormalization(t *testing.T) {
	// "MLS #" is not an alias; punctuation must match literally.
	resolved := ResolveColumns([]string{"Address", "Price", "Sqft", "MLS #"})

	if got, ok := resolved[FieldMLSNumber]; ok {
		t.Errorf("mlsNumber mapped to %q, want unmapped", got)
	}
}

func TestMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    []Field
	}{
		{"all present", []string{"Address", "Price", "Sqft"}, nil},
		{"no price", []string{"Address", "Sqft"}, []Field{FieldPrice}},
		{"none", []string{"Remarks"}, []Field{FieldAddress, FieldPrice, FieldSqft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingRequired(ResolveColumns(tt.headers))
			if len(got) != len(tt.want) {
				t.Fatalf("missing = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("missing[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}
