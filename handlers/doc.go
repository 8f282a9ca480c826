// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the vote API.

# Handler Types

VoteHandler wraps a VoteService (normally *gateway.Gateway):

	voteHandler := handlers.NewVoteHandler(gateway.New(s))

# Endpoints

	GET  /api/vote → GetVotes  ({"browt":n,"pombon":n,"gecqua":n})
	POST /api/vote → CastVote  ({"starter":"..."} → {"starter":"...","votes":n})
	GET  /health   → Health

# Errors

  - 400 {"error":"Invalid JSON"}: body could not be decoded
  - 400 {"error":"Invalid starter"}: starter is not browt, pombon or gecqua
  - 500 {"error":"..."}: the counter store failed

Invalid starters never reach the store.
*/
package handlers
