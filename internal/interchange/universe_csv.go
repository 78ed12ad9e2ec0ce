package interchange

import (
	"basketdesk/internal/domain"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// universeCsvRow keeps every column as a string so a malformed cell becomes a
// reported violation instead of a parse abort. Rows are converted and checked
// one by one; every problem in the file is collected before anything is
// returned.
type universeCsvRow struct {
	InstrumentID string `csv:"instrument_id"`
	Ticker       string `csv:"ticker"`
	Name         string `csv:"name"`
	AssetClass   string `csv:"asset_class"`
	Region       string `csv:"region"`
	Currency     string `csv:"currency"`
	Eligible     string `csv:"eligible"`
	Isin         string `csv:"isin"`
	MinWeight    string `csv:"min_weight"`
	MaxWeight    string `csv:"max_weight"`
	Notes        string `csv:"notes"`
}

// ParseUniverseCsv reads a universe definition. On any schema problem it
// returns a domain.SchemaError carrying every violation found; on success the
// instruments are returned in file order.
func ParseUniverseCsv(r io.Reader) ([]domain.Instrument, error) {
	rows := []universeCsvRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, domain.SchemaError{Violations: []domain.SchemaViolation{
			{Detail: fmt.Sprintf("failed to read csv: %v", err)},
		}}
	}
	if len(rows) == 0 {
		return nil, domain.SchemaError{Violations: []domain.SchemaViolation{
			{Detail: "file contains no instrument rows"},
		}}
	}

	violations := []domain.SchemaViolation{}
	seen := map[string]int{}
	out := []domain.Instrument{}

	for i, row := range rows {
		// data rows are 1-indexed after the header
		rowNum := i + 1
		instrument, rowViolations := parseUniverseRow(rowNum, row)
		if len(rowViolations) > 0 {
			violations = append(violations, rowViolations...)
			continue
		}

		if firstRow, ok := seen[instrument.InstrumentID]; ok {
			violations = append(violations, domain.SchemaViolation{
				Row:    rowNum,
				Column: "instrument_id",
				Detail: fmt.Sprintf("%s already defined on row %d", instrument.InstrumentID, firstRow),
			})
			continue
		}
		seen[instrument.InstrumentID] = rowNum

		out = append(out, *instrument)
	}

	if len(violations) > 0 {
		return nil, domain.SchemaError{Violations: violations}
	}

	return out, nil
}

func parseUniverseRow(rowNum int, row universeCsvRow) (*domain.Instrument, []domain.SchemaViolation) {
	violations := []domain.SchemaViolation{}

	required := []struct {
		column string
		value  string
	}{
		{"instrument_id", row.InstrumentID},
		{"ticker", row.Ticker},
		{"name", row.Name},
		{"asset_class", row.AssetClass},
		{"region", row.Region},
		{"currency", row.Currency},
		{"eligible", row.Eligible},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			violations = append(violations, domain.SchemaViolation{
				Row:    rowNum,
				Column: field.column,
				Detail: fmt.Sprintf("%s is required", field.column),
			})
		}
	}

	instrument := domain.Instrument{
		InstrumentID: strings.TrimSpace(row.InstrumentID),
		Ticker:       strings.TrimSpace(row.Ticker),
		Name:         strings.TrimSpace(row.Name),
		Region:       strings.TrimSpace(row.Region),
		Currency:     strings.TrimSpace(row.Currency),
	}

	if row.AssetClass != "" {
		assetClass, err := domain.NewAssetClass(strings.TrimSpace(row.AssetClass))
		if err != nil {
			violations = append(violations, domain.SchemaViolation{
				Row: rowNum, Column: "asset_class", Detail: err.Error(),
			})
		} else {
			instrument.AssetClass = *assetClass
		}
	}

	if row.Eligible != "" {
		switch strings.ToLower(strings.TrimSpace(row.Eligible)) {
		case "true", "1", "yes":
			instrument.Eligible = true
		case "false", "0", "no":
			instrument.Eligible = false
		default:
			violations = append(violations, domain.SchemaViolation{
				Row: rowNum, Column: "eligible", Detail: fmt.Sprintf("%q is not a boolean", row.Eligible),
			})
		}
	}

	if isin := strings.TrimSpace(row.Isin); isin != "" {
		instrument.Isin = &isin
	}
	if notes := strings.TrimSpace(row.Notes); notes != "" {
		instrument.Notes = &notes
	}

	instrument.MinWeight = parseOptionalWeight(rowNum, "min_weight", row.MinWeight, &violations)
	instrument.MaxWeight = parseOptionalWeight(rowNum, "max_weight", row.MaxWeight, &violations)
	if instrument.MinWeight != nil && instrument.MaxWeight != nil &&
		instrument.MinWeight.GreaterThan(*instrument.MaxWeight) {
		violations = append(violations, domain.SchemaViolation{
			Row:    rowNum,
			Column: "min_weight",
			Detail: fmt.Sprintf("min_weight %s exceeds max_weight %s", instrument.MinWeight, instrument.MaxWeight),
		})
	}

	if len(violations) > 0 {
		return nil, violations
	}

	return &instrument, nil
}

func parseOptionalWeight(rowNum int, column, value string, violations *[]domain.SchemaViolation) *decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	weight, err := decimal.NewFromString(value)
	if err != nil {
		*violations = append(*violations, domain.SchemaViolation{
			Row: rowNum, Column: column, Detail: fmt.Sprintf("%q is not a number", value),
		})
		return nil
	}
	if weight.IsNegative() || weight.GreaterThan(decimal.NewFromInt(1)) {
		*violations = append(*violations, domain.SchemaViolation{
			Row: rowNum, Column: column, Detail: fmt.Sprintf("%s must be between 0 and 1", weight),
		})
		return nil
	}
	return &weight
}
