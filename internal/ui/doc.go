// Package ui provides the Bubble Tea terminal interface for marquee.
//
// # Layout
//
//	┌────────────────────────────────────────────────────────────┐
//	│ Movie Database  Movies: 3/10  updated 2 minutes ago  Nightfox│ header
//	│ ⌕ Search movies...                                         │ search
//	│ ╭──────────────╮ ╭──────────────╮ ╭──────────────╮         │
//	│ │ The Godfather│ │ ...          │ │ ...          │         │ body
//	│ │ ★ 9.2/10     │ │              │ │              │         │
//	│ ╰──────────────╯ ╰──────────────╯ ╰──────────────╯         │
//	│ [ Refresh Movies ]  ctrl+r/f5 refresh • f1 help ...        │ footer
//	└────────────────────────────────────────────────────────────┘
//
// The body shows exactly one of three states, chosen by state.Snapshot.Phase:
// a spinner while loading, the failure message on error, or the card grid.
// An empty filtered list renders NoResultsMessage in place of the grid.
//
// # Data Flow
//
// The model never fetches on its own goroutine. Refresh runs the injected
// RefreshFunc as a tea.Cmd; the fetcher writes to the shared state.Store, and
// Run subscribes the program to the store so every change arrives as a
// snapshotMsg. Snapshots carry a version, and older ones are dropped.
//
// The search box always has focus. Each edit goes to Store.SetSearch and the
// resulting snapshot is applied immediately.
//
// # Keys
//
//   - ctrl+r, f5, or clicking the button: refresh
//   - up/down, pgup/pgdown, mouse wheel: scroll the grid
//   - f1: help, f2: activity log, ctrl+t: cycle theme
//   - esc: clear the search, or quit when it is already empty
//   - ctrl+c: quit
//
// # Grid
//
// Cards flow into 1, 2 or 3 columns depending on terminal width. The IMDb
// link is emitted as an OSC 8 hyperlink so supporting terminals make it
// clickable.
package ui
