package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/state"
)

const fetchKey = "movies"

// Fetcher runs the fetch cycle against a Source and records the outcome in a
// Store. Overlapping calls share one in-flight request.
type Fetcher struct {
	source catalog.Source
	store  *state.Store
	logger zerolog.Logger
	group  singleflight.Group
}

// NewFetcher wires a Source to a Store.
func NewFetcher(source catalog.Source, store *state.Store, logger zerolog.Logger) *Fetcher {
	return &Fetcher{source: source, store: store, logger: logger}
}

// Fetch sets the loading flag, requests the listing, and stores either the
// movies or the failure. The error is returned for callers that want it; it is
// already recorded in the store either way.
func (f *Fetcher) Fetch(ctx context.Context) error {
	_, err, shared := f.group.Do(fetchKey, func() (any, error) {
		return nil, f.fetch(ctx)
	})
	if shared {
		f.logger.Debug().Msg("refresh joined in-flight fetch")
	}
	return err
}

func (f *Fetcher) fetch(ctx context.Context) error {
	started := time.Now()
	f.store.BeginFetch()
	f.logger.Debug().Msg("fetching movies")

	movies, err := f.source.FetchMovies(ctx)
	f.store.FinishFetch(movies, err)

	elapsed := time.Since(started)
	if err != nil {
		event := f.logger.Warn().Err(err).Dur("elapsed", elapsed)
		var statusErr *catalog.StatusError
		if errors.As(err, &statusErr) {
			event = event.Int("status", statusErr.StatusCode)
		}
		event.Msg("movie fetch failed")
		return err
	}
	f.logger.Info().Int("movies", len(movies)).Dur("elapsed", elapsed).Msg("movies fetched")
	return nil
}
