// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/starter-vote/models"
)

// fakeAPI is an in-memory gateway that records calls.
type fakeAPI struct {
	mu      sync.Mutex
	tally   models.Tally
	getErr  error
	voteErr error
	gets    int
	posts   int

	// When set, SubmitVote signals entered and waits for release.
	entered chan struct{}
	release chan struct{}
}

func (f *fakeAPI) GetTallies(ctx context.Context) (models.Tally, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.getErr != nil {
		return models.Tally{}, f.getErr
	}
	return f.tally, nil
}

func (f *fakeAPI) SubmitVote(ctx context.Context, starter models.Starter) (models.VoteResponse, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts++
	if f.voteErr != nil {
		return models.VoteResponse{}, f.voteErr
	}
	if !models.IsValidStarter(string(starter)) {
		return models.VoteResponse{}, ErrInvalidStarter
	}
	f.tally.Set(starter, f.tally.Count(starter)+1)
	return models.VoteResponse{Starter: starter, Votes: f.tally.Count(starter)}, nil
}

func (f *fakeAPI) counts() (gets, posts int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets, f.posts
}

func (f *fakeAPI) setGetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getErr = err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestView(api API, storage Storage, opts ...Option) *View {
	return NewView(api, storage, append([]Option{WithLogger(quietLogger())}, opts...)...)
}

func TestView_LoadingUntilFirstFetch(t *testing.T) {
	api := &fakeAPI{tally: models.Tally{Browt: 1}}
	v := newTestView(api, NewMemoryStorage())

	s := v.State()
	assert.True(t, s.Loading)
	assert.Nil(t, s.Cards, "no cards before the first fetch")

	require.NoError(t, v.Refresh(context.Background()))

	s = v.State()
	assert.False(t, s.Loading)
	assert.Len(t, s.Cards, 3)
	assert.EqualValues(t, 1, s.Total)
}

func TestView_FailedFirstFetchEndsLoading(t *testing.T) {
	api := &fakeAPI{getErr: errors.New("offline")}
	v := newTestView(api, NewMemoryStorage())

	assert.Error(t, v.Refresh(context.Background()))

	s := v.State()
	assert.False(t, s.Loading)
	assert.Equal(t, models.Tally{}, s.Tally)
}

func TestView_FailedPollKeepsStaleTally(t *testing.T) {
	api := &fakeAPI{tally: models.Tally{Browt: 2, Gecqua: 1}}
	v := newTestView(api, NewMemoryStorage())
	ctx := context.Background()

	require.NoError(t, v.Refresh(ctx))

	api.setGetErr(errors.New("timeout"))
	assert.Error(t, v.Refresh(ctx))

	assert.Equal(t, models.Tally{Browt: 2, Gecqua: 1}, v.State().Tally)
}

func TestView_RestoreMarker(t *testing.T) {
	tests := []struct {
		name  string
		saved string
		want  models.Starter
	}{
		{"valid marker", "pombon", models.StarterPombon},
		{"invalid marker ignored", "pikachu", ""},
		{"wrong case ignored", "Pombon", ""},
		{"empty ignored", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := NewMemoryStorage()
			require.NoError(t, storage.SetItem(MarkerKey, tt.saved))

			v := newTestView(&fakeAPI{}, storage)
			v.RestoreMarker()

			assert.Equal(t, tt.want, v.State().Voted)
		})
	}
}

func TestView_RestoreMarkerWithoutNetwork(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.SetItem(MarkerKey, "gecqua"))
	api := &fakeAPI{}
	v := newTestView(api, storage)

	v.RestoreMarker()

	gets, posts := api.counts()
	assert.Zero(t, gets)
	assert.Zero(t, posts)
	assert.Equal(t, models.StarterGecqua, v.State().Voted)
}

func TestView_VoteSuccess(t *testing.T) {
	api := &fakeAPI{}
	storage := NewMemoryStorage()
	v := newTestView(api, storage)
	ctx := context.Background()
	require.NoError(t, v.Refresh(ctx))

	require.NoError(t, v.Vote(ctx, models.StarterPombon))

	s := v.State()
	assert.Equal(t, models.StarterPombon, s.Voted)
	assert.False(t, s.Submitting)
	assert.Equal(t, models.Tally{Pombon: 1}, s.Tally, "tally re-fetched after vote")

	saved, ok, err := storage.GetItem(MarkerKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pombon", saved)

	gets, posts := api.counts()
	assert.Equal(t, 2, gets)
	assert.Equal(t, 1, posts)
}

func TestView_SecondVoteIsNoOp(t *testing.T) {
	api := &fakeAPI{}
	v := newTestView(api, NewMemoryStorage())
	ctx := context.Background()

	require.NoError(t, v.Vote(ctx, models.StarterPombon))

	for _, s := range models.Starters {
		assert.ErrorIs(t, v.Vote(ctx, s), ErrAlreadyVoted)
	}

	_, posts := api.counts()
	assert.Equal(t, 1, posts, "no POST after the client has voted")
}

func TestView_RestoredMarkerBlocksVote(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.SetItem(MarkerKey, "browt"))
	api := &fakeAPI{}
	v := newTestView(api, storage)
	v.RestoreMarker()

	assert.ErrorIs(t, v.Vote(context.Background(), models.StarterGecqua), ErrAlreadyVoted)

	_, posts := api.counts()
	assert.Zero(t, posts)
}

func TestView_VoteFailureAllowsRetry(t *testing.T) {
	api := &fakeAPI{voteErr: &TransportError{Op: "submit vote", Err: errors.New("connection reset")}}
	storage := NewMemoryStorage()
	v := newTestView(api, storage)
	ctx := context.Background()
	require.NoError(t, v.Refresh(ctx))

	err := v.Vote(ctx, models.StarterBrowt)
	var te *TransportError
	assert.ErrorAs(t, err, &te)

	s := v.State()
	assert.Empty(t, s.Voted)
	assert.False(t, s.Submitting, "submitting cleared on the error path")
	_, ok, _ := storage.GetItem(MarkerKey)
	assert.False(t, ok, "marker not persisted on failure")
	for _, c := range s.Cards {
		assert.False(t, c.Disabled)
	}

	// Retry succeeds once the gateway is back
	api.mu.Lock()
	api.voteErr = nil
	api.mu.Unlock()

	require.NoError(t, v.Vote(ctx, models.StarterBrowt))
	assert.Equal(t, models.StarterBrowt, v.State().Voted)
}

func TestView_InvalidStarterRejected(t *testing.T) {
	api := &fakeAPI{}
	v := newTestView(api, NewMemoryStorage())

	err := v.Vote(context.Background(), "pikachu")
	assert.ErrorIs(t, err, ErrInvalidStarter)
	assert.Empty(t, v.State().Voted)
}

func TestView_VoteInFlightGuard(t *testing.T) {
	api := &fakeAPI{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	v := newTestView(api, NewMemoryStorage())
	ctx := context.Background()
	require.NoError(t, v.Refresh(ctx))

	done := make(chan error, 1)
	go func() {
		done <- v.Vote(ctx, models.StarterGecqua)
	}()

	<-api.entered

	s := v.State()
	assert.True(t, s.Submitting)
	for _, c := range s.Cards {
		assert.True(t, c.Disabled, "controls disabled while submitting")
		assert.Equal(t, ButtonAvailable, c.Button)
	}

	// Rapid repeated triggers are dropped
	assert.ErrorIs(t, v.Vote(ctx, models.StarterGecqua), ErrVoteInFlight)
	assert.ErrorIs(t, v.Vote(ctx, models.StarterBrowt), ErrVoteInFlight)

	close(api.release)
	require.NoError(t, <-done)

	_, posts := api.counts()
	assert.Equal(t, 1, posts)
	assert.False(t, v.State().Submitting)
}

func TestView_CardsAfterVote(t *testing.T) {
	api := &fakeAPI{tally: models.Tally{Browt: 2, Pombon: 1, Gecqua: 0}}
	v := newTestView(api, NewMemoryStorage())
	ctx := context.Background()

	require.NoError(t, v.Vote(ctx, models.StarterPombon))

	s := v.State()
	require.Len(t, s.Cards, 3)
	assert.Equal(t, Leader("tie"), s.Leader)
	assert.Equal(t, "tie", s.Theme())

	byID := map[models.Starter]Card{}
	for _, c := range s.Cards {
		byID[c.Info.ID] = c
		assert.True(t, c.Disabled)
	}
	assert.Equal(t, ButtonVoted, byID[models.StarterBrowt].Button)
	assert.Equal(t, ButtonMine, byID[models.StarterPombon].Button)
	assert.Equal(t, ButtonVoted, byID[models.StarterGecqua].Button)
	assert.Equal(t, 50, byID[models.StarterBrowt].Percent)
	assert.Equal(t, 50, byID[models.StarterPombon].Percent)
	assert.Equal(t, 0, byID[models.StarterGecqua].Percent)
}

func TestView_OnChange(t *testing.T) {
	api := &fakeAPI{}
	var mu sync.Mutex
	var states []State
	v := newTestView(api, NewMemoryStorage(), WithOnChange(func(s State) {
		mu.Lock()
		states = append(states, s)
		mu.Unlock()
	}))

	require.NoError(t, v.Vote(context.Background(), models.StarterBrowt))

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, states)

	sawSubmitting := false
	for _, s := range states {
		if s.Submitting {
			sawSubmitting = true
		}
	}
	assert.True(t, sawSubmitting)
	last := states[len(states)-1]
	assert.False(t, last.Submitting)
	assert.Equal(t, models.StarterBrowt, last.Voted)
}

func TestView_RunPollsUntilCanceled(t *testing.T) {
	api := &fakeAPI{tally: models.Tally{Gecqua: 4}}
	v := newTestView(api, NewMemoryStorage(), WithPollInterval(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- v.Run(ctx) }()

	assert.Eventually(t, func() bool {
		gets, _ := api.counts()
		return gets >= 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	// No more polling after teardown
	gets, _ := api.counts()
	time.Sleep(50 * time.Millisecond)
	after, _ := api.counts()
	assert.Equal(t, gets, after)

	assert.Equal(t, models.Tally{Gecqua: 4}, v.State().Tally)
	assert.Equal(t, Leader("gecqua"), v.State().Leader)
}

func TestView_RunSurvivesPollFailures(t *testing.T) {
	api := &fakeAPI{getErr: errors.New("502")}
	v := newTestView(api, NewMemoryStorage(), WithPollInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go v.Run(ctx)

	assert.Eventually(t, func() bool {
		gets, _ := api.counts()
		return gets >= 2
	}, 2*time.Second, 5*time.Millisecond)

	api.setGetErr(nil)
	api.mu.Lock()
	api.tally = models.Tally{Browt: 1}
	api.mu.Unlock()

	assert.Eventually(t, func() bool {
		return v.State().Tally.Browt == 1
	}, 2*time.Second, 5*time.Millisecond)
}
