// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/starter-vote/handlers"
	"github.com/danielhkuo/starter-vote/middleware"
)

func NewRouter(svc handlers.VoteService) *http.ServeMux {
	mux := http.NewServeMux()

	voteHandler := handlers.NewVoteHandler(svc)

	// Health check (pings the counter store)
	mux.HandleFunc("GET /health", voteHandler.Health)

	// Vote operations (public)
	mux.HandleFunc("GET /api/vote", middleware.WithLogging(voteHandler.GetVotes))
	mux.HandleFunc("POST /api/vote", middleware.WithLogging(voteHandler.CastVote))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("starter-vote API v1"))
	})

	return mux
}
