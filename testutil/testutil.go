// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/exercise-tracker/cliparse"
	"github.com/danielhkuo/exercise-tracker/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. No external database server is needed.
func SetupTestDB(t *testing.T) *db.DB {
	t.Helper()

	d, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Every pooled connection would get its own empty :memory:
	// database; a single connection keeps all queries on one.
	d.SetMaxOpenConns(1)

	if err := db.CreateSchema(d); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return d
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  ":memory:",
		DatabaseType: db.TypeSQLite,
	}
}

// CreateTestUser inserts a user and returns its assigned id
func CreateTestUser(t *testing.T, d *db.DB, username string) int64 {
	t.Helper()

	res, err := d.Exec(`INSERT INTO users (username) VALUES (?)`, username)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test user id: %v", err)
	}
	return id
}

// CreateTestExercise inserts an exercise row and returns its id.
// date must already be the stored RFC 3339 form.
func CreateTestExercise(t *testing.T, d *db.DB, userID int64, description string, duration int64, date string) int64 {
	t.Helper()

	res, err := d.Exec(`
		INSERT INTO exercises (userId, description, duration, date)
		VALUES (?, ?, ?, ?)
	`, userID, description, duration, date)
	if err != nil {
		t.Fatalf("Failed to create test exercise: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test exercise id: %v", err)
	}
	return id
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
