package integration_tests

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"basketdesk/internal"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const sampleUniverseCsv = `instrument_id,ticker,name,asset_class,region,currency,eligible,isin,min_weight,max_weight,notes
US-EQ-SPY,SPY,SPDR S&P 500,Equity,US,USD,true,US78462F1030,,0.8,
US-RATES-AGG,AGG,iShares Core Agg,Rates,US,USD,true,,,,
GLB-COMM-GLD,GLD,SPDR Gold Shares,Commodities,Global,USD,true,,,0.2,
US-EQ-LEGACY,LGC,Delisted Holding,Equity,US,USD,false,,,,kept for audit trail
`

type snapshotJson struct {
	SnapshotID      string `json:"snapshotId"`
	Source          string `json:"source"`
	InstrumentCount int    `json:"instrumentCount"`
}

type basketJson struct {
	BasketID   string `json:"basketId"`
	SnapshotID string `json:"snapshotId"`
	Name       string `json:"name"`
}

type holdingJson struct {
	InstrumentID string          `json:"instrumentId"`
	Weight       decimal.Decimal `json:"weight"`
}

type versionJson struct {
	BasketID      string        `json:"basketId"`
	VersionNumber int32         `json:"versionNumber"`
	Holdings      []holdingJson `json:"holdings"`
}

type errorJson struct {
	Error         string `json:"error"`
	LatestVersion *int32 `json:"latestVersion"`
	Violations    []struct {
		Rule   string `json:"rule"`
		Detail string `json:"detail"`
	} `json:"violations"`
}

func Test_basketFlow(t *testing.T) {
	db, err := internal.NewTestDb()
	require.NoError(t, err)

	cleanup := func() {
		require.NoError(t, cleanupBaskets(db))
		require.NoError(t, cleanupUniverse(db))
		require.NoError(t, cleanupMarketData(db))
		require.NoError(t, cleanupAuditLog(db))
	}
	cleanup()
	defer cleanup()

	startTime := time.Now()

	// import a universe snapshot
	snapshot := snapshotJson{}
	status, err := hitCsvEndpoint("universes", sampleUniverseCsv, "source=integration-test", &snapshot)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 4, snapshot.InstrumentCount)
	require.NotEmpty(t, snapshot.SnapshotID)

	// create a basket bound to it
	basket := basketJson{}
	status, err = hitEndpoint("baskets", http.MethodPost, map[string]interface{}{
		"snapshotId": snapshot.SnapshotID,
		"name":       "integration basket",
	}, &basket)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, snapshot.SnapshotID, basket.SnapshotID)

	// first commit
	v1 := versionJson{}
	status, err = hitEndpoint("baskets/"+basket.BasketID+"/commit", http.MethodPost, map[string]interface{}{
		"baseVersion": 0,
		"holdings": []map[string]interface{}{
			{"instrumentId": "US-EQ-SPY", "weight": "0.6"},
			{"instrumentId": "US-RATES-AGG", "weight": "0.4"},
		},
	}, &v1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, int32(1), v1.VersionNumber)

	// a second writer still holding version 0 must be rejected, not merged
	stale := errorJson{}
	status, err = hitEndpoint("baskets/"+basket.BasketID+"/commit", http.MethodPost, map[string]interface{}{
		"baseVersion": 0,
		"holdings": []map[string]interface{}{
			{"instrumentId": "GLB-COMM-GLD", "weight": "1.0"},
		},
	}, &stale)
	require.NoError(t, err)
	require.Equal(t, http.StatusConflict, status)
	require.NotNil(t, stale.LatestVersion)
	require.Equal(t, int32(1), *stale.LatestVersion)

	// a commit violating constraints reports every violation and persists
	// nothing: ineligible instrument AND total weight off target
	rejected := errorJson{}
	status, err = hitEndpoint("baskets/"+basket.BasketID+"/commit", http.MethodPost, map[string]interface{}{
		"baseVersion": 1,
		"holdings": []map[string]interface{}{
			{"instrumentId": "US-EQ-LEGACY", "weight": "0.5"},
		},
	}, &rejected)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, status)
	require.Len(t, rejected.Violations, 2)

	// second valid commit rotates GLD in
	v2 := versionJson{}
	status, err = hitEndpoint("baskets/"+basket.BasketID+"/commit", http.MethodPost, map[string]interface{}{
		"baseVersion": 1,
		"holdings": []map[string]interface{}{
			{"instrumentId": "US-EQ-SPY", "weight": "0.5"},
			{"instrumentId": "US-RATES-AGG", "weight": "0.35"},
			{"instrumentId": "GLB-COMM-GLD", "weight": "0.15"},
		},
	}, &v2)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, int32(2), v2.VersionNumber)

	// both versions remain readable; the store is append-only
	got := versionJson{}
	status, err = hitEndpoint("baskets/"+basket.BasketID+"/versions/1", http.MethodGet, nil, &got)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, got.Holdings, 2)
	require.Equal(t, "US-EQ-SPY", got.Holdings[0].InstrumentID)
	require.True(t, got.Holdings[0].Weight.Equal(decimal.RequireFromString("0.6")))

	// diff the two versions
	diff := struct {
		Added []struct {
			InstrumentID string `json:"instrumentId"`
		} `json:"added"`
		Removed []struct {
			InstrumentID string `json:"instrumentId"`
		} `json:"removed"`
		WeightDeltas []struct {
			InstrumentID string `json:"instrumentId"`
		} `json:"weightDeltas"`
	}{}
	status, err = hitEndpoint("baskets/"+basket.BasketID+"/compare?from=1&to=2", http.MethodGet, nil, &diff)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, diff.Added, 1)
	require.Equal(t, "GLB-COMM-GLD", diff.Added[0].InstrumentID)
	require.Empty(t, diff.Removed)
	require.Len(t, diff.WeightDeltas, 2)

	elapsed := time.Since(startTime).Milliseconds()
	require.Less(t, elapsed, int64(5000))
}

func Test_csvRoundTrip(t *testing.T) {
	db, err := internal.NewTestDb()
	require.NoError(t, err)

	cleanup := func() {
		require.NoError(t, cleanupBaskets(db))
		require.NoError(t, cleanupUniverse(db))
		require.NoError(t, cleanupAuditLog(db))
	}
	cleanup()
	defer cleanup()

	snapshot := snapshotJson{}
	status, err := hitCsvEndpoint("universes", sampleUniverseCsv, "source=integration-test", &snapshot)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)

	basket := basketJson{}
	status, err = hitEndpoint("baskets", http.MethodPost, map[string]interface{}{
		"snapshotId": snapshot.SnapshotID,
		"name":       "csv basket",
	}, &basket)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)

	holdingsCsv := `instrument_id,weight
US-EQ-SPY,0.7
US-RATES-AGG,0.3
`
	v1 := versionJson{}
	status, err = hitCsvEndpoint("baskets/"+basket.BasketID+"/import", holdingsCsv, "baseVersion=0", &v1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, int32(1), v1.VersionNumber)

	// export must echo the exact committed weights
	req, err := http.NewRequest(http.MethodGet, baseUrl+"/baskets/"+basket.BasketID+"/versions/1/export", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	exported := new(strings.Builder)
	_, err = io.Copy(exported, resp.Body)
	require.NoError(t, err)
	require.Contains(t, exported.String(), "US-EQ-SPY")
	require.Contains(t, exported.String(), "0.7")
}
