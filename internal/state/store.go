package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/marquee/internal/catalog"
)

// Phase is the body the view renders. Exactly one is active at a time.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseContent
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	default:
		return "content"
	}
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Loading     bool
	Err         error
	Movies      []catalog.Movie
	Search      string
	LastFetched time.Time
	Fetches     int    // completed fetch attempts, successful or not
	Version     uint64 // bumped on every mutation
}

// Phase derives the render state: loading wins over error, error over content.
func (s Snapshot) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.Err != nil:
		return PhaseError
	default:
		return PhaseContent
	}
}

// Visible returns the movies matching the current search text.
func (s Snapshot) Visible() []catalog.Movie {
	return catalog.Filter(s.Movies, s.Search)
}

// ErrorMessage returns the failure text, or "" when there is none.
func (s Snapshot) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

type observer struct {
	id int
	fn func(Snapshot)
}

// Store coordinates concurrent updates to the snapshot and notifies
// subscribers after each change.
type Store struct {
	mu        sync.RWMutex
	snapshot  Snapshot
	observers []observer
	nextID    int
}

// NewStore returns a store in the loading state, since the first fetch starts
// as soon as the view mounts.
func NewStore() *Store {
	return &Store{snapshot: Snapshot{Loading: true}}
}

// Subscribe registers fn to receive a snapshot after every mutation. Calls
// happen outside the lock, on the goroutine that made the change.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// BeginFetch marks a fetch as in progress.
func (s *Store) BeginFetch() {
	s.mutate(func(snap *Snapshot) {
		snap.Loading = true
	})
}

// FinishFetch records a fetch outcome. Success replaces the collection
// wholesale and clears any error; failure keeps the previous collection and
// records err. Loading is cleared last in both cases.
func (s *Store) FinishFetch(movies []catalog.Movie, err error) {
	s.mutate(func(snap *Snapshot) {
		if err != nil {
			snap.Err = err
		} else {
			snap.Movies = cloneMovies(movies)
			snap.Err = nil
		}
		snap.LastFetched = time.Now()
		snap.Fetches++
		snap.Loading = false
	})
}

// SetSearch replaces the search text.
func (s *Store) SetSearch(term string) {
	s.mutate(func(snap *Snapshot) {
		snap.Search = term
	})
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

func (s *Store) mutate(fn func(*Snapshot)) {
	s.mu.Lock()
	fn(&s.snapshot)
	s.snapshot.Version++
	snap := s.copyLocked()
	observers := make([]observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, o := range observers {
		o.fn(snap)
	}
}

func (s *Store) copyLocked() Snapshot {
	snap := s.snapshot
	snap.Movies = cloneMovies(s.snapshot.Movies)
	if s.snapshot.Err != nil {
		snap.Err = fmt.Errorf("%w", s.snapshot.Err)
	}
	return snap
}

func cloneMovies(movies []catalog.Movie) []catalog.Movie {
	if len(movies) == 0 {
		return nil
	}
	dup := make([]catalog.Movie, len(movies))
	copy(dup, movies)
	return dup
}
