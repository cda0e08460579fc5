package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// renderHeader renders the title bar: title, counts, freshness and theme.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render(appTitle, styles.Title)}

	total := len(m.snapshot.Movies)
	visible := len(m.snapshot.Visible())
	counts := fmt.Sprintf("%d/%d", visible, total)
	parts = append(parts,
		bg.Render("Movies:", styles.MutedText)+bg.Space()+bg.Render(counts, styles.Text))

	if m.loading() {
		parts = append(parts, bg.Render("● Loading", styles.WarningText))
	} else if m.snapshot.Err != nil {
		parts = append(parts, bg.Render("● Error", styles.DangerText))
	}

	parts = append(parts, bg.Render(m.fetchedLabel(), styles.MutedText))

	left := bg.Join(parts, "  ")
	right := bg.Render(m.theme.Name, styles.FaintText)

	// Inner width excludes the header's horizontal padding.
	inner := m.width - 2
	gap := inner - ansi.StringWidth(left) - ansi.StringWidth(right)
	content := left
	if gap >= 2 {
		content = left + bg.Spaces(gap) + right
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Padding(0, 1).
		Width(m.width).
		MaxHeight(1).
		Render(content)
}

// fetchedLabel describes when the collection was last fetched.
func (m Model) fetchedLabel() string {
	if m.snapshot.LastFetched.IsZero() {
		return "not fetched yet"
	}
	return "updated " + humanize.RelTime(m.snapshot.LastFetched, m.now(), "ago", "from now")
}

// renderSearch renders the always-visible search box.
func (m Model) renderSearch() string {
	return m.theme.Styles().Search.
		Width(m.width).
		MaxHeight(1).
		Render(m.search.View())
}

// renderFooter renders the refresh control followed by key hints. The
// control starts at column 1 so mouse hits can be computed from its width.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	button := m.theme.Styles().Button.Render(refreshLabel)
	hints := m.help.ShortHelpView(m.keys.ShortHelp())

	content := button + bg.Spaces(2) + hints
	if m.endpoint != "" {
		room := m.width - 2 - ansi.StringWidth(content) - 2
		if room >= 12 {
			endpoint := truncateMiddle(m.endpoint, room)
			gap := m.width - 2 - ansi.StringWidth(content) - ansi.StringWidth(endpoint)
			content += bg.Spaces(gap) + bg.Render(endpoint, styles.FaintText)
		}
	}

	return styles.Footer.
		Width(m.width).
		MaxHeight(1).
		Render(content)
}

// inRefreshButton reports whether the cell (x, y) lies on the refresh control.
func (m Model) inRefreshButton(x, y int) bool {
	if m.height <= 0 || y != m.height-1 {
		return false
	}
	start := 1 // footer left padding
	return x >= start && x < start+ansi.StringWidth(refreshLabel)
}
