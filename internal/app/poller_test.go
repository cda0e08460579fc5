package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/state"
)

type countingSource struct {
	calls atomic.Int32
}

func (s *countingSource) FetchMovies(context.Context) ([]catalog.Movie, error) {
	s.calls.Add(1)
	return []catalog.Movie{{ID: "1", Title: "Heat"}}, nil
}

func TestStartAutoRefresh_Disabled(t *testing.T) {
	fetcher := NewFetcher(&countingSource{}, state.NewStore(), zerolog.Nop())

	require.False(t, StartAutoRefresh(context.Background(), fetcher, 0))
	require.False(t, StartAutoRefresh(context.Background(), fetcher, -time.Second))
	require.False(t, StartAutoRefresh(context.Background(), nil, time.Second))
}

func TestStartAutoRefresh_FetchesUntilCancelled(t *testing.T) {
	source := &countingSource{}
	store := state.NewStore()
	fetcher := NewFetcher(source, store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, StartAutoRefresh(ctx, fetcher, 5*time.Millisecond))

	require.Eventually(t, func() bool { return source.calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	// Allow an in-flight tick to drain, then confirm the loop stopped.
	time.Sleep(20 * time.Millisecond)
	stopped := source.calls.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, stopped, source.calls.Load())

	snap := store.Snapshot()
	require.Equal(t, state.PhaseContent, snap.Phase())
	require.Len(t, snap.Movies, 1)
}
