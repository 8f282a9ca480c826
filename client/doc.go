// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is the voting client: it polls the gateway, keeps this
client's one-vote marker, and derives everything a renderer needs.

	api := client.NewHTTPAPI("http://localhost:3318", 0)
	v := client.NewView(api, client.NewFileStorage(dir),
		client.WithOnChange(func(s client.State) { client.Render(os.Stdout, s) }))
	go v.Run(ctx)
	err := v.Vote(ctx, models.StarterGecqua)

# State

View.State returns a snapshot. Until the first fetch settles only
Loading is meaningful and Cards is nil. Afterwards each card carries its
vote count, a rounded percentage, and a button state; every card is
disabled once this client has voted or while a vote is being submitted.

# Errors

Vote returns ErrAlreadyVoted or ErrVoteInFlight without sending anything.
HTTPAPI reports a rejected starter as ErrInvalidStarter and every other
failure as a *TransportError. The View treats both the same way: it logs
them, leaves the marker unset, and lets the user try again.
*/
package client
