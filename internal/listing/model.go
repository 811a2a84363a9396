// Package listing provides the canonical listing record and its data access.
package listing

// Listing is one normalized real-estate record derived from a CSV row.
// Optional fields are pointers so "not yet computed" stays distinguishable
// from "computed as zero".
type Listing struct {
	ID           string  `json:"id"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zip_code"`
	Price        float64 `json:"price"`
	Beds         float64 `json:"beds"`
	Baths        float64 `json:"baths"`
	Sqft         float64 `json:"sqft"`
	YearBuilt    int     `json:"year_built"`
	DaysOnMarket int     `json:"days_on_market"`
	PropertyType string  `json:"property_type"`
	Remarks      *string `json:"remarks,omitempty"`
	ListingAgent *string `json:"listing_agent,omitempty"`
	MLSNumber    *string `json:"mls_number,omitempty"`

	// PricePerSqft is computed once at ingestion and never recomputed.
	PricePerSqft float64 `json:"price_per_sqft"`

	AnomalyScore    *float64 `json:"anomaly_score,omitempty"`
	EstimatedProfit *float64 `json:"estimated_profit,omitempty"`
	EstimatedROI    *float64 `json:"estimated_roi,omitempty"`
}

// ComparableSale is a recently sold property used to infer subject value.
type ComparableSale struct {
	Address      string  `json:"address"`
	SalePrice    float64 `json:"sale_price"`
	Sqft         float64 `json:"sqft"`
	Beds         float64 `json:"beds"`
	Baths        float64 `json:"baths"`
	SaleDate     *string `json:"sale_date,omitempty"`
	PricePerSqft float64 `json:"price_per_sqft"`
}
