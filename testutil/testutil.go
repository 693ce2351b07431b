package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/pollbox/pollbox/db"
	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/store"
)

// SetupTestDB opens a fresh in-memory sqlite database with the schema
// applied. Closed automatically when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewTestStore returns a loaded poll store backed by in-memory sqlite.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	st := store.New(db.NewKV(SetupTestDB(t)))
	if err := st.Load(); err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}
	return st
}

// CreateTestPoll builds a multiple-choice poll, inserts it into the
// store, and returns the stored record.
func CreateTestPoll(t *testing.T, st *store.Store, question string, options ...string) models.Poll {
	t.Helper()

	p, err := models.NewPoll(question, models.TypeMultipleChoice, options, nil)
	if err != nil {
		t.Fatalf("Failed to build test poll: %v", err)
	}
	if err := st.Add(p); err != nil {
		t.Fatalf("Failed to store test poll: %v", err)
	}
	return p
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
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
