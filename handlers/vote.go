// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/starter-vote/gateway"
	"github.com/danielhkuo/starter-vote/middleware"
	"github.com/danielhkuo/starter-vote/models"
)

// healthTimeout bounds the store ping done by GET /health
const healthTimeout = 2 * time.Second

// VoteService is the gateway surface the handlers depend on.
type VoteService interface {
	GetTallies(ctx context.Context) (models.Tally, error)
	SubmitVote(ctx context.Context, starter string) (models.VoteResponse, error)
	Ping(ctx context.Context) error
}

type VoteHandler struct {
	svc VoteService
}

func NewVoteHandler(svc VoteService) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// GetVotes handles GET /api/vote
func (h *VoteHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	tally, err := h.svc.GetTallies(r.Context())
	if err != nil {
		slog.Error("failed to read tallies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tally)
}

// CastVote handles POST /api/vote
// Every accepted request adds exactly one vote; there is no deduplication.
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resp, err := h.svc.SubmitVote(r.Context(), req.Starter)
	if errors.Is(err, gateway.ErrInvalidStarter) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid starter")
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "starter", req.Starter)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded",
		"starter", resp.Starter,
		"votes", resp.Votes,
		"client_ip", middleware.GetClientIP(r),
	)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Health handles GET /health
// Reports 503 when the counter store cannot be reached.
func (h *VoteHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.svc.Ping(ctx); err != nil {
		slog.Warn("health check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("store unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
