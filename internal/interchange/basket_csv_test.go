package interchange

import (
	"basketdesk/internal/domain"
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestBasketCsvRoundTrip(t *testing.T) {
	snapshot := domain.UniverseSnapshot{
		SnapshotID: uuid.New(),
		Instruments: map[string]domain.Instrument{
			"US-EQ-SPY": {
				InstrumentID: "US-EQ-SPY",
				Ticker:       "SPY",
				Name:         "SPDR S&P 500",
				AssetClass:   domain.AssetClass_Equity,
				Region:       "US",
				Currency:     "USD",
				Eligible:     true,
			},
			"US-RATES-AGG": {
				InstrumentID: "US-RATES-AGG",
				Ticker:       "AGG",
				Name:         "iShares Core Agg",
				AssetClass:   domain.AssetClass_Rates,
				Region:       "US",
				Currency:     "USD",
				Eligible:     true,
			},
		},
	}
	holdings := []domain.Holding{
		{InstrumentID: "US-RATES-AGG", Weight: decimal.RequireFromString("0.399")},
		{InstrumentID: "US-EQ-SPY", Weight: decimal.RequireFromString("0.601")},
	}

	buf := &bytes.Buffer{}
	err := WriteBasketCsv(buf, snapshot, holdings)
	require.NoError(t, err)

	// export order is by instrument id
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[1], "US-EQ-SPY")
	require.Contains(t, lines[2], "US-RATES-AGG")

	parsed, err := ParseBasketCsv(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	// weights survive as exact decimal strings
	require.Equal(t, "US-EQ-SPY", parsed[0].InstrumentID)
	require.Equal(t, "0.601", parsed[0].Weight.String())
	require.Equal(t, "0.399", parsed[1].Weight.String())
}

func TestParseBasketCsv(t *testing.T) {
	t.Run("collects every violation", func(t *testing.T) {
		csv := strings.Join([]string{
			"instrument_id,weight",
			",0.5",
			"US-EQ-SPY,not-a-number",
		}, "\n")

		_, err := ParseBasketCsv(strings.NewReader(csv))
		schemaErr, ok := err.(domain.SchemaError)
		require.True(t, ok)
		require.Len(t, schemaErr.Violations, 2)
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		_, err := ParseBasketCsv(strings.NewReader("instrument_id,weight\n"))
		require.Error(t, err)
	})
}
