// Package state holds the view state shared by the fetcher and the UI.
//
// # Overview
//
// A single Store owns four pieces of state: the loading flag, the last fetch
// error, the movie collection, and the search text. Every mutation bumps a
// version counter and notifies subscribers with a fresh Snapshot.
//
//	Fetcher goroutine                UI (Bubble Tea)
//	┌──────────────────┐            ┌────────────────────┐
//	│ BeginFetch()     │            │ SetSearch(text)    │
//	│ FetchMovies()    │            │                    │
//	│ FinishFetch(...) │──notify───→│ snapshotMsg        │
//	└──────────────────┘            │ Phase() / Visible()│
//	                                └────────────────────┘
//
// # Render phase
//
// Snapshot.Phase derives the body to draw. Loading wins regardless of other
// state, then Error, then Content. NewStore starts in Loading because the
// first fetch begins as soon as the view mounts.
//
// # Update semantics
//
//	store.FinishFetch(movies, nil)
//	→ Movies replaced wholesale, Err cleared
//	store.FinishFetch(nil, err)
//	→ Movies kept, Err recorded (the view shows only the error)
//	both: LastFetched = now, Fetches++, Loading = false (last)
//
// The search text is only ever changed by SetSearch; fetches never reset it.
//
// # Concurrency
//
// The Store uses a sync.RWMutex. Observers run outside the lock on the
// mutating goroutine, so they may read the store but must not block on the
// UI event loop. When two fetches overlap, whichever finishes last wins;
// consumers use Snapshot.Version to drop notifications that arrive out of
// order.
package state
