// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/danielhkuo/starter-vote/models"
	"github.com/danielhkuo/starter-vote/store"
)

// SetupTestStore returns a counter store that is closed when the test ends.
// TEST_STORE_TYPE and TEST_STORE_URL select a real backend; the default is memory.
// Counters are never cleared: tests that expect zero counts need a fresh
// instance behind TEST_STORE_URL.
func SetupTestStore(t *testing.T) store.CounterStore {
	t.Helper()

	storeType := os.Getenv("TEST_STORE_TYPE")
	if storeType == "" {
		storeType = store.TypeMemory
	}

	s, err := store.Open(context.Background(), storeType, os.Getenv("TEST_STORE_URL"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

// SeedVotes increments the starter's counter n times
func SeedVotes(t *testing.T, s store.CounterStore, starter models.Starter, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		if _, err := s.Incr(context.Background(), store.Key(starter)); err != nil {
			t.Fatalf("Failed to seed vote for %s: %v", starter, err)
		}
	}
}

// ReadCounter returns the raw counter for a starter (0 when absent)
func ReadCounter(t *testing.T, s store.CounterStore, starter models.Starter) int64 {
	t.Helper()

	v, _, err := s.Get(context.Background(), store.Key(starter))
	if err != nil {
		t.Fatalf("Failed to read counter for %s: %v", starter, err)
	}
	return v
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
