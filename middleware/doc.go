// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/vote", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request ID comes from X-Request-ID when the
caller sends one and is a fresh UUID otherwise; it is echoed in the
response headers.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Reflects the request origin and allows GET, POST and OPTIONS.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, tally)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid starter")

ErrorResponse writes {"error": "..."}.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP before falling back to RemoteAddr.
*/
package middleware
