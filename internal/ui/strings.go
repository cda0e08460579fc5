package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncate shortens a string to the given cell width, adding an ellipsis if
// needed. Wide runes count as two cells.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if ansi.StringWidth(value) <= limit {
		return value
	}
	if limit <= 1 {
		return ansi.Truncate(value, limit, "")
	}
	return ansi.Truncate(value, limit, "…")
}

// truncateMiddle shortens a string by removing characters from the middle,
// preserving both ends. URLs and paths keep their last segment readable.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}

	ellipsis := []rune("…")
	keep := limit - len(ellipsis)
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + string(ellipsis) + string(runes[len(runes)-suffix:])
}
