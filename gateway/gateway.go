// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/starter-vote/models"
	"github.com/danielhkuo/starter-vote/store"
)

var ErrInvalidStarter = errors.New("invalid starter")

// Gateway translates vote operations to counter store calls.
// It keeps no state between calls.
type Gateway struct {
	store store.CounterStore
}

func New(s store.CounterStore) *Gateway {
	return &Gateway{store: s}
}

// GetTallies reads all three counters in parallel. Missing counters are 0.
func (g *Gateway) GetTallies(ctx context.Context) (models.Tally, error) {
	counts := make([]int64, len(models.Starters))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, s := range models.Starters {
		eg.Go(func() error {
			v, _, err := g.store.Get(egCtx, store.Key(s))
			if err != nil {
				return err
			}
			counts[i] = v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return models.Tally{}, fmt.Errorf("read tallies: %w", err)
	}

	var t models.Tally
	for i, s := range models.Starters {
		t.Set(s, counts[i])
	}
	return t, nil
}

// SubmitVote adds one vote for starter and returns its new total.
// Unknown starters return ErrInvalidStarter without touching the store.
// Every call counts; there is no deduplication.
func (g *Gateway) SubmitVote(ctx context.Context, starter string) (models.VoteResponse, error) {
	if !models.IsValidStarter(starter) {
		return models.VoteResponse{}, ErrInvalidStarter
	}

	s := models.Starter(starter)
	n, err := g.store.Incr(ctx, store.Key(s))
	if err != nil {
		return models.VoteResponse{}, fmt.Errorf("record vote for %s: %w", s, err)
	}

	return models.VoteResponse{Starter: s, Votes: n}, nil
}

// Ping reports whether the backing store is reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.store.Ping(ctx)
}
