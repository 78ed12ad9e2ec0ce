package interchange

import (
	"basketdesk/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUniverseCsv(t *testing.T) {
	t.Run("valid file parses in order", func(t *testing.T) {
		csv := strings.Join([]string{
			"instrument_id,ticker,name,asset_class,region,currency,eligible,isin,min_weight,max_weight,notes",
			"US-EQ-SPY,SPY,SPDR S&P 500,Equity,US,USD,true,US78462F1030,,0.8,broad equity",
			"US-RATES-AGG,AGG,iShares Core Agg,Rates,US,USD,true,,,,",
			"GLB-COMM-GLD,GLD,SPDR Gold Shares,Commodities,Global,USD,false,,0.01,0.2,",
		}, "\n")

		instruments, err := ParseUniverseCsv(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, instruments, 3)

		spy := instruments[0]
		require.Equal(t, "US-EQ-SPY", spy.InstrumentID)
		require.Equal(t, domain.AssetClass_Equity, spy.AssetClass)
		require.True(t, spy.Eligible)
		require.Nil(t, spy.MinWeight)
		require.NotNil(t, spy.MaxWeight)
		require.Equal(t, "0.8", spy.MaxWeight.String())
		require.NotNil(t, spy.Isin)

		gld := instruments[2]
		require.False(t, gld.Eligible)
		require.Equal(t, "0.01", gld.MinWeight.String())
	})

	t.Run("all violations are collected in one error", func(t *testing.T) {
		csv := strings.Join([]string{
			"instrument_id,ticker,name,asset_class,region,currency,eligible,isin,min_weight,max_weight,notes",
			",SPY,SPDR S&P 500,Equity,US,USD,true,,,,",
			"US-RATES-AGG,AGG,iShares Core Agg,Bonds,US,USD,true,,,,",
			"GLB-COMM-GLD,GLD,SPDR Gold Shares,Commodities,Global,USD,maybe,,,,",
			"US-EQ-DUP,DUP,Dup One,Equity,US,USD,true,,,,",
			"US-EQ-DUP,DUP,Dup Two,Equity,US,USD,true,,,,",
		}, "\n")

		_, err := ParseUniverseCsv(strings.NewReader(csv))
		require.Error(t, err)

		schemaErr, ok := err.(domain.SchemaError)
		require.True(t, ok)
		require.Len(t, schemaErr.Violations, 4)

		columns := []string{}
		for _, v := range schemaErr.Violations {
			columns = append(columns, v.Column)
		}
		require.Equal(t, []string{"instrument_id", "asset_class", "eligible", "instrument_id"}, columns)
	})

	t.Run("weights outside 0..1 are rejected", func(t *testing.T) {
		csv := strings.Join([]string{
			"instrument_id,ticker,name,asset_class,region,currency,eligible,isin,min_weight,max_weight,notes",
			"US-EQ-SPY,SPY,SPDR S&P 500,Equity,US,USD,true,,,1.5,",
		}, "\n")

		_, err := ParseUniverseCsv(strings.NewReader(csv))
		schemaErr, ok := err.(domain.SchemaError)
		require.True(t, ok)
		require.Len(t, schemaErr.Violations, 1)
		require.Equal(t, "max_weight", schemaErr.Violations[0].Column)
	})

	t.Run("min above max is rejected", func(t *testing.T) {
		csv := strings.Join([]string{
			"instrument_id,ticker,name,asset_class,region,currency,eligible,isin,min_weight,max_weight,notes",
			"US-EQ-SPY,SPY,SPDR S&P 500,Equity,US,USD,true,,0.5,0.2,",
		}, "\n")

		_, err := ParseUniverseCsv(strings.NewReader(csv))
		schemaErr, ok := err.(domain.SchemaError)
		require.True(t, ok)
		require.Len(t, schemaErr.Violations, 1)
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		csv := "instrument_id,ticker,name,asset_class,region,currency,eligible,isin,min_weight,max_weight,notes\n"
		_, err := ParseUniverseCsv(strings.NewReader(csv))
		require.Error(t, err)
	})
}
