package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/LizaButReallyEliza/Formula1-project/cliparse"
	"github.com/LizaButReallyEliza/Formula1-project/db"
)

// TestDBURLEnv names the variable that points the tests at a postgres
// database instead of a throwaway sqlite file.
const TestDBURLEnv = "TEST_DATABASE_URL"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	driver, dsn := db.DriverSQLite, filepath.Join(t.TempDir(), "test.db")
	if url := os.Getenv(TestDBURLEnv); url != "" {
		driver, dsn = db.DriverPostgres, url
	}

	conn, err := db.Open(ctx, driver, dsn, 4)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if driver == db.DriverPostgres {
		_, err = conn.ExecContext(ctx, `
			DROP TABLE IF EXISTS results CASCADE;
			DROP TABLE IF EXISTS stables CASCADE;
			DROP TABLE IF EXISTS stages CASCADE;
		`)
		if err != nil {
			t.Fatalf("Failed to clean database: %v", err)
		}
	}

	if err := db.CreateSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  "test.db",
		DatabaseType: cliparse.DatabaseSQLite,
		DeletePolicy: cliparse.DeleteRestrict,
		MaxConns:     4,
	}
}

// CreateTestStage inserts a stage and returns its ID
func CreateTestStage(t *testing.T, conn *sqlx.DB, name, country string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRowx(conn.Rebind(`
		INSERT INTO stages (name, country, date, lap_length, attendance)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`), name, country, "2024-05-01", 5.0, 30000).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test stage: %v", err)
	}

	return id
}

// CreateTestStable inserts a stable and returns its ID
func CreateTestStable(t *testing.T, conn *sqlx.DB, name, country string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRowx(conn.Rebind(`
		INSERT INTO stables (name, country)
		VALUES (?, ?)
		RETURNING id
	`), name, country).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test stable: %v", err)
	}

	return id
}

// CreateTestResult inserts a result for a driver and returns its ID.
// The references are not checked, so dangling results can be set up.
func CreateTestResult(t *testing.T, conn *sqlx.DB, stageID, stableID int64, driver string, raceTime float64, laps int64) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRowx(conn.Rebind(`
		INSERT INTO results (stage_id, stable_id, driver_name, race_time, laps)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`), stageID, stableID, driver, raceTime, laps).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test result: %v", err)
	}

	return id
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sqlx.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
