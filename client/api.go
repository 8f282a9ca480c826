// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/starter-vote/models"
)

// DefaultTimeout bounds every gateway request made by HTTPAPI.
const DefaultTimeout = 10 * time.Second

var ErrInvalidStarter = errors.New("invalid starter")

// TransportError is any failure to reach the gateway or to get a usable
// answer from it: network errors, timeouts, 5xx and undecodable bodies.
type TransportError struct {
	Op         string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// API is the gateway as seen by the voting client.
type API interface {
	GetTallies(ctx context.Context) (models.Tally, error)
	SubmitVote(ctx context.Context, starter models.Starter) (models.VoteResponse, error)
}

// HTTPAPI talks to the gateway's /api/vote endpoint.
type HTTPAPI struct {
	endpoint string
	http     *http.Client
}

// NewHTTPAPI returns a client for the gateway at baseURL (e.g. http://localhost:3318).
// A timeout of 0 selects DefaultTimeout.
func NewHTTPAPI(baseURL string, timeout time.Duration) *HTTPAPI {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPAPI{
		endpoint: strings.TrimRight(baseURL, "/") + "/api/vote",
		http:     &http.Client{Timeout: timeout},
	}
}

func (a *HTTPAPI) GetTallies(ctx context.Context) (models.Tally, error) {
	const op = "get tallies"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.endpoint, nil)
	if err != nil {
		return models.Tally{}, &TransportError{Op: op, Err: err}
	}

	var tally models.Tally
	if err := a.do(op, req, &tally); err != nil {
		return models.Tally{}, err
	}
	return tally, nil
}

func (a *HTTPAPI) SubmitVote(ctx context.Context, starter models.Starter) (models.VoteResponse, error) {
	const op = "submit vote"

	body, err := json.Marshal(models.VoteRequest{Starter: string(starter)})
	if err != nil {
		return models.VoteResponse{}, &TransportError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return models.VoteResponse{}, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	var resp models.VoteResponse
	if err := a.do(op, req, &resp); err != nil {
		return models.VoteResponse{}, err
	}
	return resp, nil
}

// do sends req and decodes a 200 body into out
func (a *HTTPAPI) do(op string, req *http.Request, out interface{}) error {
	resp, err := a.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp models.ErrorResponse
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(data, &errResp) != nil || errResp.Error == "" {
			errResp.Error = http.StatusText(resp.StatusCode)
		}
		if resp.StatusCode == http.StatusBadRequest && errResp.Error == "Invalid starter" {
			return ErrInvalidStarter
		}
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(errResp.Error)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
