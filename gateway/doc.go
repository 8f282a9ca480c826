// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gateway implements the two vote operations on top of a counter store.

	g := gateway.New(s)
	tally, err := g.GetTallies(ctx)
	resp, err := g.SubmitVote(ctx, "browt")

SubmitVote returns ErrInvalidStarter for anything other than an exact
starter id. Any other error comes from the store and should be treated
as a transport failure.
*/
package gateway
