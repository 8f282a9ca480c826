// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Starter Vote API server.

Starter Vote lets visitors pick one of three starters (browt, pombon,
gecqua) and watch the live tally. The server is a thin gateway over a
key-value counter store; the voting client lives in package client and
the command-line client in cmd/starter-vote.

# Starting the Server

With the in-memory store (counts are lost on restart):

	go run .

With Redis, as in production:

	STORE_TYPE=redis STORE_URL=redis://localhost:6379/0 go run .

Or with flags:

	go run . -p 3318 -s sqlite -d votes.db

# Configuration

  - PORT (-p): Server port (default: 3318)
  - STORE_TYPE (-s): memory, redis, postgres, sqlite or bolt (default: memory)
  - STORE_URL (-d): Backend URL or file path (required unless memory)

A .env file in the working directory is loaded first if present.

# Architecture

  - gateway: GetTallies / SubmitVote over a counter store
  - store: CounterStore interface and backends
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - cliparse: Configuration parsing
  - client: Polling vote client and terminal renderer

See package documentation for each component.
*/
package main
