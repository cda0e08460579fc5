package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/state"
)

// Grid breakpoints in terminal cells.
const (
	gridTwoColumnWidth   = 70
	gridThreeColumnWidth = 110
	gridGap              = 1
	cardChrome           = 4 // border and horizontal padding
)

// gridColumns returns how many cards fit side by side at width.
func gridColumns(width int) int {
	switch {
	case width < gridTwoColumnWidth:
		return 1
	case width < gridThreeColumnWidth:
		return 2
	default:
		return 3
	}
}

// renderBody renders exactly one of the loading, error and content states.
func (m Model) renderBody() string {
	styles := m.theme.Styles()
	height := m.bodyHeight()

	switch m.phase() {
	case state.PhaseLoading:
		return m.placeBody(m.spinner.View() + " " + styles.MutedText.Render("Loading movies"))

	case state.PhaseError:
		msg := styles.DangerText.Render(m.snapshot.ErrorMessage())
		hint := styles.FaintText.Render("Press ctrl+r or click Refresh Movies to try again")
		return m.placeBody(lipgloss.JoinVertical(lipgloss.Center, msg, "", hint))
	}

	if len(m.snapshot.Visible()) == 0 {
		return m.placeBody(styles.MutedText.Render(NoResultsMessage))
	}
	return lipgloss.NewStyle().Width(m.width).Height(height).Render(m.grid.View())
}

func (m Model) placeBody(content string) string {
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, content)
}

// layoutGrid sizes the grid viewport and re-renders its cards. resetScroll
// returns to the top, which suits a new search but not a background refresh.
func (m *Model) layoutGrid(resetScroll bool) {
	if !m.ready {
		return
	}
	m.grid.Width = m.width
	m.grid.Height = m.bodyHeight()
	m.grid.SetContent(renderGrid(m.snapshot.Visible(), m.width, m.theme.CardStyles(), m.snapshot.Search != ""))
	if resetScroll {
		m.grid.GotoTop()
	}
}

// renderGrid lays movies out in rows of equally sized cards. Matches of an
// active search get the focus border.
func renderGrid(movies []catalog.Movie, width int, styles Styles, searching bool) string {
	if len(movies) == 0 {
		return ""
	}
	cols := gridColumns(width)
	cardWidth := (width - gridGap*(cols-1)) / cols
	if cardWidth < cardChrome+8 {
		cardWidth = cardChrome + 8
	}

	gap := strings.Repeat(" ", gridGap)
	rows := make([]string, 0, (len(movies)+cols-1)/cols)
	for start := 0; start < len(movies); start += cols {
		end := min(start+cols, len(movies))
		cells := make([]string, 0, 2*cols-1)
		for i, movie := range movies[start:end] {
			if i > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, renderCard(movie, cardWidth, styles, searching))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// renderCard renders one movie: title, rating, poster and IMDb link.
func renderCard(movie catalog.Movie, width int, styles Styles, match bool) string {
	inner := width - cardChrome

	title := styles.Title.Render(truncate(movie.Title, inner))
	rating := styles.WarningText.Render("★") + " " + styles.Text.Render(movie.RatingLabel()+"/10")

	poster := styles.MutedText.Render("▣ (no poster)")
	if movie.Image != "" {
		poster = styles.FaintText.Render("▣ " + truncateMiddle(movie.Image, inner-2))
	}

	link := styles.FaintText.Render("no IMDb link")
	if movie.IMDbURL != "" {
		link = hyperlink(movie.IMDbURL, styles.AccentText.Underline(true).Render("View on IMDb"))
	}

	card := styles.Card
	if match {
		card = styles.CardMatch
	}
	return card.
		Width(width - 2). // Width excludes the border
		Render(lipgloss.JoinVertical(lipgloss.Left, title, rating, poster, link))
}

// hyperlink wraps text in an OSC 8 link. Terminals without support show the
// text alone.
func hyperlink(url, text string) string {
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}
