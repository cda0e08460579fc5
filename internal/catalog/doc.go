// Package catalog fetches and filters the remote movie listing.
//
// # Overview
//
// The listing is a single JSON array served by a fixed HTTP endpoint. Each
// element is a loosely typed record:
//
//	{"id": 1, "movie": "The Matrix", "rating": 8.7,
//	 "image": "https://...", "imdb_url": "https://www.imdb.com/title/..."}
//
// Only records whose "movie" field is a JSON string are kept. Everything else
// is tolerated: ids are opaque, images and links may be missing, and ratings
// are displayed verbatim (or as "N/A" when absent or falsy).
//
// # Files
//
//   - client.go: HTTP client, options, and the generic fetch failure
//   - types.go: Movie and the validity filter applied while decoding
//   - filter.go: case-insensitive title search
//
// # Errors
//
// A non-2xx response yields a *StatusError that matches ErrFetchFailed and
// reads "Failed to fetch movies". Transport and decode failures are wrapped
// with the step that failed ("execute request: ...", "decode response: ...").
// Callers surface err.Error() directly; there is no per-status handling.
package catalog
