// Package app is the composition root for marquee.
//
// # Overview
//
// Run wires configuration, logging, the catalog client, the shared
// state.Store, and the Bubble Tea UI together, then blocks until the user
// quits or the context is cancelled. List is the non-interactive variant used
// by the `marquee list` command and when stdout is not a terminal.
//
// # Components
//
//   - app.go: Run, List, and the table writer for list mode
//   - fetcher.go: Fetcher, the single fetch cycle shared by mount, refresh and auto refresh
//   - poller.go: optional background auto refresh
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()          config.toml + flag overrides
//	       ├─────> logging.NewFile()      zerolog JSON log
//	       ├─────> catalog.NewClient()    HTTP source
//	       ├─────> state.NewStore()       shared snapshot
//	       ├─────> StartAutoRefresh()     only when refresh_interval > 0
//	       └─────> ui.Run()               blocks
//
// # Fetch Cycle
//
// Fetcher.Fetch marks the store as loading, requests the listing, and records
// either the movies or the failure. Calls that overlap an in-flight request
// join it through singleflight, so a second refresh never issues a second
// request and never races the first one's result.
//
// # Error Handling
//
// Configuration and client construction errors are fatal and returned from
// Run. Fetch failures are recoverable: they land in the store, where the UI
// renders the error state, and are logged at warn level.
package app
