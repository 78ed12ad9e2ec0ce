package treasury_client

import (
	"basketdesk/internal/domain"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var tenorKeys = []string{
	"yield_1m",
	"yield_2m",
	"yield_3m",
	"yield_4m",
	"yield_6m",
	"yield_1y",
	"yield_2y",
	"yield_3y",
	"yield_5y",
	"yield_7y",
	"yield_10y",
	"yield_20y",
	"yield_30y",
}

func tenorMonthsFromApi(in string) (int, error) {
	cleanedStr := strings.Replace(in, "yield_", "", 1)
	unit := string(cleanedStr[len(cleanedStr)-1])
	cleanedStr = cleanedStr[:len(cleanedStr)-1]
	months, err := strconv.Atoi(cleanedStr)
	if err != nil {
		return 0, err
	}

	if unit == "y" {
		months *= 12
	}

	return months, nil
}

// lazy, in-memory cache for API requests
var cache map[string][]byte = map[string][]byte{}

func getBytes(date time.Time) ([]byte, error) {
	tStr := date.Format(time.DateOnly)

	if out, ok := cache[tStr]; ok {
		return out, nil
	}

	url := fmt.Sprintf("https://www.ustreasuryyieldcurve.com/api/v1/yield_curve_snapshot?date=%s&offset=0", tStr)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	cache[tStr] = responseBytes

	return responseBytes, nil
}

// GetYieldCurve fetches the treasury curve published for the given date. Days
// with no publication (weekends, holidays) walk back up to a month before
// giving up.
func GetYieldCurve(date time.Time) (*domain.YieldCurve, error) {
	for attempt := 0; attempt < 31; attempt++ {
		curve, err := getYieldCurveOnDay(date.AddDate(0, 0, -attempt))
		if err != nil {
			return nil, err
		}
		if curve != nil {
			return curve, nil
		}
	}
	return nil, fmt.Errorf("no published curve within a month of %s: %w", date.Format(time.DateOnly), domain.ErrDataUnavailable)
}

func getYieldCurveOnDay(date time.Time) (*domain.YieldCurve, error) {
	responseBytes, err := getBytes(date)
	if err != nil {
		return nil, err
	}

	responseBody := []map[string]interface{}{}
	err = json.Unmarshal(responseBytes, &responseBody)
	if err != nil {
		return nil, err
	}

	rates := map[int]float64{}
	for _, entry := range responseBody {
		for k, v := range entry {
			for _, field := range tenorKeys {
				if k == field && v != nil {
					months, err := tenorMonthsFromApi(k)
					if err != nil {
						return nil, err
					}
					rates[months] = v.(float64) / 100
				}
			}
		}
	}
	if len(rates) == 0 {
		return nil, nil
	}

	return &domain.YieldCurve{
		Date:  date,
		Rates: rates,
	}, nil
}
