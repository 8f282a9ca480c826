// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared by the
gateway and the voting client.

# Starters

Exactly three starters can receive votes:

	StarterBrowt  = "browt"
	StarterPombon = "pombon"
	StarterGecqua = "gecqua"

IsValidStarter performs the exact, case-sensitive membership check used
by the gateway before any counter is touched.

# Wire Types

  - Tally: {"browt": n, "pombon": n, "gecqua": n}
  - VoteRequest: {"starter": "..."}
  - VoteResponse: {"starter": "...", "votes": n}
  - ErrorResponse: {"error": "..."}
*/
package models
