package listing

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Repository persists scored listings in SQLite.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a listing repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const insertSQL = `INSERT INTO listings
	(id, batch_id, address, city, state, zip_code, price, beds, baths, sqft,
	 year_built, days_on_market, property_type, remarks, listing_agent,
	 mls_number, price_per_sqft, anomaly_score, estimated_profit, estimated_roi)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectColumns = `id, address, city, state, zip_code, price, beds, baths, sqft,
	year_built, days_on_market, property_type, remarks, listing_agent,
	mls_number, price_per_sqft, anomaly_score, estimated_profit, estimated_roi`

// InsertBatch stores one ingestion batch atomically and stamps the
// last-updated marker.
func (r *Repository) InsertBatch(batchID string, listings []*Listing) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning batch insert: %w", err)
	}

	for _, l := range listings {
		_, err := tx.Exec(insertSQL,
			l.ID, batchID, l.Address, l.City, l.State, l.ZipCode,
			l.Price, l.Beds, l.Baths, l.Sqft,
			l.YearBuilt, l.DaysOnMarket, l.PropertyType,
			l.Remarks, l.ListingAgent, l.MLSNumber,
			l.PricePerSqft, l.AnomalyScore, l.EstimatedProfit, l.EstimatedROI,
		)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return fmt.Errorf("inserting listing %s: %w (also failed to roll back: %v)", l.ID, err, rbErr)
			}
			return fmt.Errorf("inserting listing %s: %w", l.ID, err)
		}
	}

	stamp := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(
		`INSERT INTO meta (key, value) VALUES ('last_updated', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, stamp,
	); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("stamping last_updated: %w (also failed to roll back: %v)", err, rbErr)
		}
		return fmt.Errorf("stamping last_updated: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch insert: %w", err)
	}

	return nil
}

// ListOptions controls filtering and ordering for List.
type ListOptions struct {
	MinPrice        *float64
	MaxPrice        *float64
	MinScore        *float64
	MinROI          *float64
	ZipCode         string // empty = all
	MinBeds         *float64
	MaxDaysOnMarket *int
	SortBy          string // price | price_per_sqft | anomaly_score | estimated_roi | days_on_market
}

// sortColumns maps List sort keys to ORDER BY clauses. Optional columns
// sort unset values as zero, matching in-memory behavior.
var sortColumns = map[string]string{
	"price":          "price DESC",
	"price_per_sqft": "price_per_sqft DESC",
	"anomaly_score":  "COALESCE(anomaly_score, 0) DESC",
	"estimated_roi":  "COALESCE(estimated_roi, 0) DESC",
	"days_on_market": "days_on_market DESC",
}

// List returns stored listings, optionally filtered and sorted.
// The default order is anomaly score descending.
func (r *Repository) List(opts ListOptions) ([]*Listing, error) {
	query := fmt.Sprintf("SELECT %s FROM listings", selectColumns)
	var args []interface{}
	var conditions []string

	if opts.MinPrice != nil {
		conditions = append(conditions, "price >= ?")
		args = append(args, *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		conditions = append(conditions, "price <= ?")
		args = append(args, *opts.MaxPrice)
	}
	if opts.MinScore != nil {
		conditions = append(conditions, "COALESCE(anomaly_score, 0) >= ?")
		args = append(args, *opts.MinScore)
	}
	if opts.MinROI != nil {
		conditions = append(conditions, "COALESCE(estimated_roi, 0) >= ?")
		args = append(args, *opts.MinROI)
	}
	if opts.ZipCode != "" {
		conditions = append(conditions, "zip_code = ?")
		args = append(args, opts.ZipCode)
	}
	if opts.MinBeds != nil {
		conditions = append(conditions, "beds >= ?")
		args = append(args, *opts.MinBeds)
	}
	if opts.MaxDaysOnMarket != nil {
		conditions = append(conditions, "days_on_market <= ?")
		args = append(args, *opts.MaxDaysOnMarket)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	order, ok := sortColumns[opts.SortBy]
	if !ok {
		order = sortColumns["anomaly_score"]
	}
	query += " ORDER BY " + order + ", created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing listings: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var listings []*Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, nil
}

// GetByID returns a listing by its ID.
func (r *Repository) GetByID(id string) (*Listing, error) {
	query := fmt.Sprintf("SELECT %s FROM listings WHERE id = ?", selectColumns)
	row := r.db.QueryRow(query, id)

	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("listing %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying listing %s: %w", id, err)
	}

	return l, nil
}

// UpdateEstimates sets the deal-analysis profit and ROI on a listing.
func (r *Repository) UpdateEstimates(id string, profit, roi float64) error {
	result, err := r.db.Exec(
		"UPDATE listings SET estimated_profit = ?, estimated_roi = ? WHERE id = ?",
		profit, roi, id,
	)
	if err != nil {
		return fmt.Errorf("updating estimates: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("listing %s not found", id)
	}

	return nil
}

// Clear removes all stored listings and the last-updated marker.
func (r *Repository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM listings"); err != nil {
		return fmt.Errorf("clearing listings: %w", err)
	}
	if _, err := r.db.Exec("DELETE FROM meta WHERE key = 'last_updated'"); err != nil {
		return fmt.Errorf("clearing last_updated: %w", err)
	}
	return nil
}

// LastUpdated returns when the store last changed, or false when no batch
// has been ingested.
func (r *Repository) LastUpdated() (time.Time, bool, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM meta WHERE key = 'last_updated'").Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("querying last_updated: %w", err)
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parsing last_updated %q: %w", value, err)
	}

	return t, true, nil
}

// scanListing scans a listing from a database row.
func scanListing(row interface{ Scan(...interface{}) error }) (*Listing, error) {
	var l Listing
	var remarks, agent, mls sql.NullString
	var score, profit, roi sql.NullFloat64

	err := row.Scan(
		&l.ID, &l.Address, &l.City, &l.State, &l.ZipCode,
		&l.Price, &l.Beds, &l.Baths, &l.Sqft,
		&l.YearBuilt, &l.DaysOnMarket, &l.PropertyType,
		&remarks, &agent, &mls,
		&l.PricePerSqft, &score, &profit, &roi,
	)
	if err != nil {
		return nil, err
	}

	if remarks.Valid {
		l.Remarks = &remarks.String
	}
	if agent.Valid {
		l.ListingAgent = &agent.String
	}
	if mls.Valid {
		l.MLSNumber = &mls.String
	}
	if score.Valid {
		l.AnomalyScore = &score.Float64
	}
	if profit.Valid {
		l.EstimatedProfit = &profit.Float64
	}
	if roi.Valid {
		l.EstimatedROI = &roi.Float64
	}

	return &l, nil
}
