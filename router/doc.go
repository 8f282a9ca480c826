// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(gateway.New(s))

# Endpoints

	GET  /health   - Store reachability
	GET  /api/vote - Current tallies
	POST /api/vote - Cast one vote
	GET  /         - API banner

Vote routes are wrapped with middleware.WithLogging. Wrap the returned mux
with middleware.CORS when the page is served from another origin.
*/
package router
