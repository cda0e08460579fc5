// Package logtail reads the tail of marquee's own log file for display.
//
// # Reading
//
// Read keeps a sliding window of at most 2*maxLines lines while scanning, so
// memory stays bounded for large files, then returns the last maxLines in
// chronological order. Missing files are not an error: a fresh install has
// nothing logged yet.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//
// # Formatting
//
// The log file holds zerolog JSON lines. ParseEntry decodes one line and
// Entry.Format renders it compactly:
//
//	{"level":"warn","status":500,"time":"...","message":"movie fetch failed"}
//	→ 10:11:12 WARN movie fetch failed status=500
//
// Lines that are not JSON objects are passed through untouched.
package logtail
