package fred_client

import (
	"basketdesk/internal/domain"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// lazy, in-memory cache for API requests
var cache map[string][]byte = map[string][]byte{}

type observationsResponse struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

func getBytes(apiKey, seriesID string, start, end time.Time) ([]byte, error) {
	cacheKey := fmt.Sprintf("%s/%s/%s", seriesID, start.Format(time.DateOnly), end.Format(time.DateOnly))
	if out, ok := cache[cacheKey]; ok {
		return out, nil
	}

	client := http.DefaultClient
	params := url.Values{}
	params.Set("series_id", seriesID)
	params.Set("api_key", apiKey)
	params.Set("file_type", "json")
	params.Set("observation_start", start.Format(time.DateOnly))
	params.Set("observation_end", end.Format(time.DateOnly))
	u := fmt.Sprintf("https://api.stlouisfed.org/fred/series/observations?%s", params.Encode())

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	response, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	cache[cacheKey] = responseBytes

	return responseBytes, nil
}

// GetSeries fetches observations for one FRED series. Missing values
// (FRED encodes them as ".") are skipped; any transport or API failure is
// reported as domain.ErrDataUnavailable so callers degrade instead of
// aborting.
func GetSeries(apiKey, seriesID string, start, end time.Time) ([]domain.MacroObservation, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("no FRED api key configured: %w", domain.ErrDataUnavailable)
	}

	responseBytes, err := getBytes(apiKey, seriesID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fred request for %s failed: %w", seriesID, domain.ErrDataUnavailable)
	}

	responseJson := observationsResponse{}
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fred response for %s: %w", seriesID, err)
	}

	out := []domain.MacroObservation{}
	for _, obs := range responseJson.Observations {
		if obs.Value == "." {
			continue
		}
		value, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			continue
		}
		date, err := time.Parse(time.DateOnly, obs.Date)
		if err != nil {
			continue
		}
		out = append(out, domain.MacroObservation{
			SeriesID: seriesID,
			Date:     date,
			Value:    value,
		})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("empty series %s: %w", seriesID, domain.ErrDataUnavailable)
	}

	return out, nil
}
