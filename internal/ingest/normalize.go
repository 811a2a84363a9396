package ingest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/flipscout/flipscout/internal/listing"
)

// errInvalidRow marks rows missing usable required data after coercion.
var errInvalidRow = errors.New("invalid or missing required data")

// parseNumber coerces a raw cell into a number. Currency symbols, thousands
// separators, and whitespace are stripped before parsing. Unparseable or
// empty values coerce to 0; callers validate fields where 0 is not allowed.
func parseNumber(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if r == '$' || r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if cleaned == "" {
		return 0
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseString trims a raw cell, mapping absent values to "".
func parseString(raw string) string {
	return strings.TrimSpace(raw)
}

// row is one data row keyed by the literal header strings.
type row map[string]string

// cell returns the raw value for a canonical field, and whether the field
// resolved to a header at all.
func (r row) cell(resolved map[Field]string, f Field) (string, bool) {
	header, ok := resolved[f]
	if !ok {
		return "", false
	}
	return r[header], true
}

// str coerces a string field. The fallback applies only when the field has
// no mapped header; a mapped-but-empty cell stays empty.
func (r row) str(resolved map[Field]string, f Field, fallback string) string {
	raw, ok := r.cell(resolved, f)
	if !ok {
		return fallback
	}
	return parseString(raw)
}

func (r row) num(resolved map[Field]string, f Field) float64 {
	raw, ok := r.cell(resolved, f)
	if !ok {
		return 0
	}
	return parseNumber(raw)
}

// optStr returns a trimmed string pointer, or nil when the field has no
// mapped header. A mapped-but-empty cell yields a pointer to "".
func (r row) optStr(resolved map[Field]string, f Field) *string {
	raw, ok := r.cell(resolved, f)
	if !ok {
		return nil
	}
	s := parseString(raw)
	return &s
}

// normalizeRow builds a canonical listing from one raw row. A row is
// rejected when, after coercion, address is empty or price or sqft is not
// positive; every other field degrades to its default silently.
func normalizeRow(r row, resolved map[Field]string, batch time.Time, index int) (*listing.Listing, error) {
	address := r.str(resolved, FieldAddress, "")
	price := r.num(resolved, FieldPrice)
	sqft := r.num(resolved, FieldSqft)

	if address == "" || price <= 0 || sqft <= 0 {
		return nil, errInvalidRow
	}

	l := &listing.Listing{
		ID:           fmt.Sprintf("prop-%d-%d", batch.UnixMilli(), index),
		Address:      address,
		City:         r.str(resolved, FieldCity, ""),
		State:        r.str(resolved, FieldState, "FL"),
		ZipCode:      r.str(resolved, FieldZipCode, ""),
		Price:        price,
		Beds:         r.num(resolved, FieldBeds),
		Baths:        r.num(resolved, FieldBaths),
		Sqft:         sqft,
		YearBuilt:    int(r.num(resolved, FieldYearBuilt)),
		DaysOnMarket: int(r.num(resolved, FieldDaysOnMarket)),
		PropertyType: r.str(resolved, FieldPropertyType, "Single Family"),
		Remarks:      r.optStr(resolved, FieldRemarks),
		ListingAgent: r.optStr(resolved, FieldListingAgent),
		MLSNumber:    r.optStr(resolved, FieldMLSNumber),
		PricePerSqft: price / sqft,
	}

	return l, nil
}
