package integration_tests

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"basketdesk/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	_ "github.com/lib/pq"
)

// these tests expect the api to be running on localhost:3009 against the
// test database (DESK_ENV=test)
const baseUrl = "http://localhost:3009"

func cleanupBaskets(db *sql.DB) error {
	if _, err := table.BasketHolding.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.BasketVersion.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.BasketConstraint.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.Basket.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	return nil
}

func cleanupUniverse(db *sql.DB) error {
	if _, err := table.Instrument.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.UniverseSnapshot.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	return nil
}

func cleanupMarketData(db *sql.DB) error {
	if _, err := table.AdjustedPrice.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.MacroObservation.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	return nil
}

func cleanupAuditLog(db *sql.DB) error {
	_, err := table.AuditLog.DELETE().WHERE(postgres.Bool(true)).Exec(db)
	return err
}

// hitEndpoint sends a request and unmarshals the response into target. The
// returned status code lets callers assert rejection paths without treating
// them as transport failures.
func hitEndpoint(route string, method string, payload interface{}, target interface{}) (int, error) {
	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequest(method, baseUrl+"/"+route, body)
	if err != nil {
		return 0, err
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	if target != nil {
		err = json.Unmarshal(responseBody, target)
		if err != nil {
			return resp.StatusCode, fmt.Errorf("failed to unmarshal response %s: %w", string(responseBody), err)
		}
	}

	return resp.StatusCode, nil
}

func hitCsvEndpoint(route string, csv string, query string, target interface{}) (int, error) {
	req, err := http.NewRequest(http.MethodPost, baseUrl+"/"+route+"?"+query, bytes.NewReader([]byte(csv)))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "text/csv")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if target != nil {
		err = json.Unmarshal(responseBody, target)
		if err != nil {
			return resp.StatusCode, fmt.Errorf("failed to unmarshal response %s: %w", string(responseBody), err)
		}
	}

	return resp.StatusCode, nil
}
