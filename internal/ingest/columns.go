// Package ingest turns raw MLS CSV exports into canonical listings.
package ingest

import "strings"

// Field names a canonical listing column.
type Field string

const (
	FieldAddress      Field = "address"
	FieldCity         Field = "city"
	FieldState        Field = "state"
	FieldZipCode      Field = "zipCode"
	FieldPrice        Field = "price"
	FieldBeds         Field = "beds"
	FieldBaths        Field = "baths"
	FieldSqft         Field = "sqft"
	FieldYearBuilt    Field = "yearBuilt"
	FieldDaysOnMarket Field = "daysOnMarket"
	FieldPropertyType Field = "propertyType"
	FieldRemarks      Field = "remarks"
	FieldListingAgent Field = "listingAgent"
	FieldMLSNumber    Field = "mlsNumber"
)

// columnAliases maps each canonical field to its accepted header names,
// in priority order. Matching is case- and whitespace-insensitive only;
// punctuation must match literally ("mls#" does not cover "mls #").
var columnAliases = map[Field][]string{
	FieldAddress:      {"address", "street address", "property address", "full address", "street"},
	FieldCity:         {"city", "municipality"},
	FieldState:        {"state", "st"},
	FieldZipCode:      {"zip", "zipcode", "zip code", "postal code"},
	FieldPrice:        {"price", "list price", "listing price", "current price", "asking price"},
	FieldBeds:         {"beds", "bedrooms", "bed", "br", "#beds"},
	FieldBaths:        {"baths", "bathrooms", "bath", "ba", "#baths", "total baths"},
	FieldSqft:         {"sqft", "square feet", "sq ft", "living area", "gross living area", "gla"},
	FieldYearBuilt:    {"year built", "yearbuilt", "yr built", "year_built"},
	FieldDaysOnMarket: {"dom", "days on market", "days_on_market", "daysonmarket", "cdom", "cumulative dom"},
	FieldPropertyType: {"property type", "type", "property_type", "prop type"},
	FieldRemarks:      {"remarks", "public remarks", "description", "property description", "comments"},
	FieldListingAgent: {"listing agent", "agent", "agent name", "list agent"},
	FieldMLSNumber:    {"mls#", "mls number", "mls", "listing number", "listing#"},
}

// requiredFields must all resolve to a header or the whole file is rejected.
var requiredFields = []Field{FieldAddress, FieldPrice, FieldSqft}

// ResolveColumns maps each canonical field to the literal header string that
// matched one of its aliases. Fields with no matching header are absent from
// the returned map. The first alias that matches any header wins; no fuzzy
// or partial matching.
func ResolveColumns(headers []string) map[Field]string {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}

	resolved := make(map[Field]string, len(columnAliases))
	for field, aliases := range columnAliases {
		for _, alias := range aliases {
			if i := indexOf(lowered, strings.ToLower(alias)); i >= 0 {
				resolved[field] = headers[i]
				break
			}
		}
	}

	return resolved
}

// MissingRequired returns the required fields absent from a resolution,
// in a stable order.
func MissingRequired(resolved map[Field]string) []Field {
	var missing []Field
	for _, f := range requiredFields {
		if _, ok := resolved[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

func indexOf(haystack []string, needle string) int {
	for i, s := range haystack {
		if s == needle {
			return i
		}
	}
	return -1
}
