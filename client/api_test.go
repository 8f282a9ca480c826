// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/starter-vote/models"
)

func TestHTTPAPI_GetTallies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/vote", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"browt":3,"pombon":1,"gecqua":0}`))
	}))
	defer srv.Close()

	api := NewHTTPAPI(srv.URL+"/", time.Second)
	tally, err := api.GetTallies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Tally{Browt: 3, Pombon: 1}, tally)
}

func TestHTTPAPI_SubmitVote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.VoteRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gecqua", req.Starter)

		w.Write([]byte(`{"starter":"gecqua","votes":7}`))
	}))
	defer srv.Close()

	resp, err := NewHTTPAPI(srv.URL, time.Second).SubmitVote(context.Background(), models.StarterGecqua)
	require.NoError(t, err)
	assert.Equal(t, models.VoteResponse{Starter: models.StarterGecqua, Votes: 7}, resp)
}

func TestHTTPAPI_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		invalid    bool
		wantStatus int
	}{
		{"invalid starter", http.StatusBadRequest, `{"error":"Invalid starter"}`, true, 0},
		{"bad json", http.StatusBadRequest, `{"error":"Invalid JSON"}`, false, http.StatusBadRequest},
		{"store down", http.StatusInternalServerError, `{"error":"Failed to record vote"}`, false, http.StatusInternalServerError},
		{"proxy error page", http.StatusBadGateway, `<html>bad gateway</html>`, false, http.StatusBadGateway},
		{"garbage 200", http.StatusOK, `not json`, false, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewHTTPAPI(srv.URL, time.Second).SubmitVote(context.Background(), models.StarterBrowt)
			require.Error(t, err)

			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidStarter)
				return
			}

			var te *TransportError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.wantStatus, te.StatusCode)
			assert.NotErrorIs(t, err, ErrInvalidStarter)
		})
	}
}

func TestHTTPAPI_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPAPI(url, time.Second).GetTallies(context.Background())

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.StatusCode)
}

func TestHTTPAPI_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	_, err := NewHTTPAPI(srv.URL, 50*time.Millisecond).SubmitVote(context.Background(), models.StarterBrowt)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewHTTPAPI_DefaultTimeout(t *testing.T) {
	api := NewHTTPAPI("http://localhost:3318", 0)
	assert.Equal(t, DefaultTimeout, api.http.Timeout)
	assert.Equal(t, "http://localhost:3318/api/vote", api.endpoint)
}
