package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() = %v, want 3 themes", names)
	}
	for _, name := range names {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("Solarized").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(unknown) = %q, want Nightfox", got)
	}
}

func TestStyles_ThemeColors(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		styles := theme.Styles()

		checks := []struct {
			what string
			got  lipgloss.TerminalColor
			want string
		}{
			{"card background", styles.Card.GetBackground(), theme.SurfaceAlt},
			{"card border", styles.Card.GetBorderTopForeground(), theme.Border},
			{"matched card background", styles.CardMatch.GetBackground(), theme.SurfaceAlt},
			{"matched card border", styles.CardMatch.GetBorderTopForeground(), theme.BorderFocus},
			{"search background", styles.Search.GetBackground(), theme.FocusBg},
			{"divider", styles.Divider.GetForeground(), theme.BorderMuted},
			{"card text background", theme.CardStyles().Text.GetBackground(), theme.SurfaceAlt},
		}
		for _, c := range checks {
			if c.got != lipgloss.Color(c.want) {
				t.Errorf("%s: %s = %v, want %s", name, c.what, c.got, c.want)
			}
		}
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"unknown", "Nightfox"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Errorf("NextTheme(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		value string
		limit int
		want  string
	}{
		{"  Heat  ", 10, "Heat"},
		{"The Godfather", 0, "The Godfather"},
		{"The Godfather", 13, "The Godfather"},
		{"The Godfather", 8, "The God…"},
		{"The Godfather", 1, "T"},
	}
	for _, tt := range tests {
		if got := truncate(tt.value, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.value, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		value string
		limit int
		want  string
	}{
		{"short.jpg", 20, "short.jpg"},
		{"abcdefghij", 7, "abc…hij"},
		{"abcdefghij", 3, "abc"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := truncateMiddle(tt.value, tt.limit); got != tt.want {
			t.Errorf("truncateMiddle(%q, %d) = %q, want %q", tt.value, tt.limit, got, tt.want)
		}
	}
}
