package interchange

import (
	"basketdesk/internal/domain"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

type basketCsvRow struct {
	InstrumentID string `csv:"instrument_id"`
	Weight       string `csv:"weight"`
	Ticker       string `csv:"ticker"`
	Name         string `csv:"name"`
	AssetClass   string `csv:"asset_class"`
	Region       string `csv:"region"`
}

// ParseBasketCsv reads a holdings file. Only instrument_id and weight are
// read back; the descriptive columns the exporter echoes are ignored so an
// exported file re-imports unmodified. All violations are collected into one
// domain.SchemaError.
func ParseBasketCsv(r io.Reader) ([]domain.Holding, error) {
	rows := []basketCsvRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, domain.SchemaError{Violations: []domain.SchemaViolation{
			{Detail: fmt.Sprintf("failed to read csv: %v", err)},
		}}
	}
	if len(rows) == 0 {
		return nil, domain.SchemaError{Violations: []domain.SchemaViolation{
			{Detail: "file contains no holding rows"},
		}}
	}

	violations := []domain.SchemaViolation{}
	out := []domain.Holding{}

	for i, row := range rows {
		rowNum := i + 1
		instrumentID := strings.TrimSpace(row.InstrumentID)
		if instrumentID == "" {
			violations = append(violations, domain.SchemaViolation{
				Row: rowNum, Column: "instrument_id", Detail: "instrument_id is required",
			})
			continue
		}

		weight, err := decimal.NewFromString(strings.TrimSpace(row.Weight))
		if err != nil {
			violations = append(violations, domain.SchemaViolation{
				Row: rowNum, Column: "weight", Detail: fmt.Sprintf("%q is not a number", row.Weight),
			})
			continue
		}

		out = append(out, domain.Holding{
			InstrumentID: instrumentID,
			Weight:       weight,
		})
	}

	if len(violations) > 0 {
		return nil, domain.SchemaError{Violations: violations}
	}

	return out, nil
}

// WriteBasketCsv exports a version's holdings in instrument id order, echoing
// descriptive columns from the snapshot so the file is readable on its own.
// Weights are written as decimal strings, so export and re-import round-trips
// exactly.
func WriteBasketCsv(w io.Writer, snapshot domain.UniverseSnapshot, holdings []domain.Holding) error {
	sorted := make([]domain.Holding, len(holdings))
	copy(sorted, holdings)
	domain.SortHoldings(sorted)

	rows := make([]basketCsvRow, 0, len(sorted))
	for _, h := range sorted {
		row := basketCsvRow{
			InstrumentID: h.InstrumentID,
			Weight:       h.Weight.String(),
		}
		if instrument, ok := snapshot.Get(h.InstrumentID); ok {
			row.Ticker = instrument.Ticker
			row.Name = instrument.Name
			row.AssetClass = string(instrument.AssetClass)
			row.Region = instrument.Region
		}
		rows = append(rows, row)
	}

	return gocsv.Marshal(&rows, w)
}
