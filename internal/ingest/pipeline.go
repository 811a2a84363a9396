package ingest

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/flipscout/flipscout/internal/listing"
)

// Result is the atomic outcome of one ingestion batch. Failures of any kind
// are reported through Errors; the pipeline never returns a Go error.
type Result struct {
	Listings []*listing.Listing `json:"listings"`
	Errors   []string           `json:"errors"`
}

// Parse ingests one whole CSV export: header resolution, required-column
// validation, per-row normalization, and error aggregation. Row errors are
// numbered 1-based counting the header row.
func Parse(csvText string) Result {
	return parseAt(csvText, time.Now())
}

func parseAt(csvText string, batch time.Time) Result {
	var res Result

	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1 // ragged rows: missing cells are treated as absent

	records, err := reader.ReadAll()
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("CSV parse error: %v", err))
		return res
	}
	if len(records) == 0 {
		res.Errors = append(res.Errors, "CSV parse error: file contains no data")
		return res
	}

	headers := records[0]
	resolved := ResolveColumns(headers)

	if missing := MissingRequired(resolved); len(missing) > 0 {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"Missing required columns: %s. Available columns: %s",
			joinFields(missing), strings.Join(headers, ", ")))
		return res
	}

	for i, record := range records[1:] {
		l, err := processRow(headers, record, resolved, batch, i)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %v", i+2, err))
			slog.Debug("dropped row", "row", i+2, "reason", err)
			continue
		}
		res.Listings = append(res.Listings, l)
	}

	slog.Info("ingested batch",
		"accepted", len(res.Listings), "errors", len(res.Errors))

	return res
}

// processRow normalizes one record, converting any panic while handling a
// malformed cell into a per-row error so the batch keeps going.
func processRow(headers, record []string, resolved map[Field]string, batch time.Time, index int) (l *listing.Listing, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	r := make(row, len(headers))
	for j, h := range headers {
		if j < len(record) {
			r[h] = record[j]
		}
	}

	return normalizeRow(r, resolved, batch, index)
}

func joinFields(fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
