// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/starter-vote/models"
)

// DefaultPollInterval is how often Run re-fetches tallies.
const DefaultPollInterval = 10 * time.Second

var (
	ErrAlreadyVoted = errors.New("already voted")
	ErrVoteInFlight = errors.New("vote already in flight")
)

// Card is the rendered state of one starter.
type Card struct {
	Info     StarterInfo
	Votes    int64
	Percent  int
	Button   ButtonState
	Disabled bool
}

// State is a snapshot of everything a renderer needs. Derived fields are
// computed fresh from the tally on every call to View.State.
type State struct {
	Loading    bool
	Submitting bool
	Voted      models.Starter // empty until this client has voted
	Tally      models.Tally
	Total      int64
	Leader     Leader
	Cards      []Card // nil while loading
}

// Theme is the page-level theme attribute for the current leader.
func (s State) Theme() string {
	return string(s.Leader)
}

// View holds the client-side vote state: the latest tally, this client's
// vote marker, and the loading and submitting flags.
//
// All methods are safe for concurrent use. The poll loop and a vote may
// both refresh the tally; the last response wins.
type View struct {
	api      API
	storage  Storage
	interval time.Duration
	logger   *slog.Logger
	onChange func(State)

	mu         sync.Mutex
	tally      models.Tally
	voted      models.Starter
	loading    bool
	submitting bool
}

type Option func(*View)

// WithPollInterval overrides DefaultPollInterval.
func WithPollInterval(d time.Duration) Option {
	return func(v *View) {
		if d > 0 {
			v.interval = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithOnChange registers fn to receive a fresh State after every change.
// fn may be called from several goroutines at once.
func WithOnChange(fn func(State)) Option {
	return func(v *View) {
		v.onChange = fn
	}
}

func NewView(api API, storage Storage, opts ...Option) *View {
	v := &View{
		api:      api,
		storage:  storage,
		interval: DefaultPollInterval,
		logger:   slog.Default(),
		loading:  true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run restores the vote marker, fetches tallies immediately and then on
// every poll interval until ctx is done. Poll failures are logged and the
// last good tally is kept.
func (v *View) Run(ctx context.Context) error {
	v.RestoreMarker()

	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	v.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			v.Refresh(ctx)
		}
	}
}

// RestoreMarker loads a previously persisted vote. Values that are not a
// valid starter are ignored.
func (v *View) RestoreMarker() {
	saved, ok, err := v.storage.GetItem(MarkerKey)
	if err != nil {
		v.logger.Warn("failed to read vote marker", "error", err)
		return
	}
	if !ok || !models.IsValidStarter(saved) {
		return
	}

	v.mu.Lock()
	v.voted = models.Starter(saved)
	v.mu.Unlock()

	v.notify()
}

// Refresh fetches the current tallies. On failure the previous tally is
// kept. Loading ends once the first fetch settles, successful or not.
func (v *View) Refresh(ctx context.Context) error {
	tally, err := v.api.GetTallies(ctx)
	if err != nil && ctx.Err() == nil {
		v.logger.Error("failed to fetch votes", "error", err)
	}

	v.mu.Lock()
	if err == nil {
		v.tally = tally
	}
	v.loading = false
	v.mu.Unlock()

	v.notify()
	return err
}

// Vote casts this client's single vote. It returns ErrAlreadyVoted or
// ErrVoteInFlight without contacting the gateway when a vote was already
// recorded or is still being submitted. On success the marker is persisted
// and the tally re-fetched; on failure the client may try again.
func (v *View) Vote(ctx context.Context, starter models.Starter) error {
	v.mu.Lock()
	if v.voted != "" {
		v.mu.Unlock()
		return ErrAlreadyVoted
	}
	if v.submitting {
		v.mu.Unlock()
		return ErrVoteInFlight
	}
	v.submitting = true
	v.mu.Unlock()
	v.notify()

	defer func() {
		v.mu.Lock()
		v.submitting = false
		v.mu.Unlock()
		v.notify()
	}()

	resp, err := v.api.SubmitVote(ctx, starter)
	if err != nil {
		v.logger.Error("failed to vote", "starter", starter, "error", err)
		return err
	}
	v.logger.Info("vote recorded", "starter", resp.Starter, "votes", resp.Votes)

	v.mu.Lock()
	v.voted = starter
	v.mu.Unlock()

	if err := v.storage.SetItem(MarkerKey, string(starter)); err != nil {
		v.logger.Warn("failed to persist vote marker", "error", err)
	}
	v.notify()

	v.Refresh(ctx)
	return nil
}

// State returns a snapshot with all derived fields computed.
func (v *View) State() State {
	v.mu.Lock()
	tally, voted, loading, submitting := v.tally, v.voted, v.loading, v.submitting
	v.mu.Unlock()

	s := State{
		Loading:    loading,
		Submitting: submitting,
		Voted:      voted,
		Tally:      tally,
		Total:      tally.Total(),
		Leader:     ComputeLeader(tally),
	}
	if loading {
		return s
	}

	disabled := voted != "" || submitting
	for _, info := range starterInfos {
		n := tally.Count(info.ID)
		s.Cards = append(s.Cards, Card{
			Info:     info,
			Votes:    n,
			Percent:  Percentage(n, s.Total),
			Button:   buttonState(info.ID, voted),
			Disabled: disabled,
		})
	}
	return s
}

func (v *View) notify() {
	if v.onChange != nil {
		v.onChange(v.State())
	}
}
