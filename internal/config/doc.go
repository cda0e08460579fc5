// Package config loads marquee's TOML configuration.
//
// # Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. Missing or blank fields keep their defaults
//
// # Fields
//
//	endpoint = "https://dummyapi.online/api/movies"
//	request_timeout = "10s"    # per-request HTTP timeout
//	refresh_interval = "0s"    # auto refresh cadence, 0 disables it
//	log_file = "~/.local/state/marquee/marquee.log"
//	log_level = "info"         # debug | info | warn | error
//
// Durations use Go syntax (time.ParseDuration). Negative durations and
// malformed TOML are errors; every error mentions "parse config".
//
// # Path Expansion
//
// ExpandPath turns "~/x" into "$HOME/x" and relative paths into absolute
// ones. The prefs package reuses it for the preferences file.
package config
