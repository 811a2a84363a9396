package cli

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"zero", 0, "0"},
		{"small", 999, "999"},
		{"thousands", 250000, "250,000"},
		{"millions", 1000000, "1,000,000"},
		{"rounds cents", 875000.49, "875,000"},
		{"negative", -58800, "-58,800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatPrice(tt.amount)
			if result != tt.expected {
				t.Errorf("formatPrice(%v) = %q, want %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestFormatOptional(t *testing.T) {
	score := 7.25

	if got := formatOptional(nil, "%.1f"); got != "N/A" {
		t.Errorf("formatOptional(nil) = %q, want N/A", got)
	}
	if got := formatOptional(&score, "%.1f"); got != "7.2" {
		t.Errorf("formatOptional(7.25) = %q, want 7.2", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"long", "hello world!", 8, "hello..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncate(tt.input, tt.max)
			if result != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, result, tt.expected)
			}
		})
	}
}

func TestParseComps(t *testing.T) {
	comps, err := parseComps([]string{"400000:1000", "612500.5:1225"})
	if err != nil {
		t.Fatalf("parseComps: %v", err)
	}
	if len(comps) != 2 {
		t.Fatalf("comps = %d, want 2", len(comps))
	}
	if comps[0].SalePrice != 400000 || comps[0].Sqft != 1000 {
		t.Errorf("comp[0] = %+v", comps[0])
	}

	for _, bad := range []string{"400000", "abc:1000", "400000:xyz"} {
		if _, err := parseComps([]string{bad}); err == nil {
			t.Errorf("parseComps(%q) succeeded, want error", bad)
		}
	}
}
