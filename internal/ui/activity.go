package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/logtail"
)

const activityLineLimit = 200

// activityState holds the activity overlay: the tail of marquee's own log.
type activityState struct {
	view    viewport.Model
	entries []logtail.Entry
	err     error
	loaded  bool
}

type activityMsg struct {
	lines []string
	err   error
}

func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return activityMsg{}
		}
		lines, err := logtail.Read(path, activityLineLimit)
		return activityMsg{lines: lines, err: err}
	}
}

func (m *Model) handleActivity(msg activityMsg) {
	m.activity.loaded = true
	m.activity.err = msg.err
	m.activity.entries = m.activity.entries[:0]
	for _, line := range msg.lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m.activity.entries = append(m.activity.entries, logtail.ParseEntry(line))
	}
	m.layoutActivity()
	m.activity.view.GotoBottom()
}

func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape, m.keys.Activity):
		m.showActivity = false
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		// Reload the log rather than the movies while the overlay is open.
		return m, loadActivityCmd(m.logPath)
	}
	var cmd tea.Cmd
	m.activity.view, cmd = m.activity.view.Update(msg)
	return m, cmd
}

// layoutActivity sizes the overlay viewport and renders its lines.
func (m *Model) layoutActivity() {
	width := max(m.activityWidth()-6, 10) // border and padding
	height := max(m.height-10, 3)
	if m.activity.view.Width == 0 {
		m.activity.view = viewport.New(width, height)
		m.activity.view.MouseWheelEnabled = true
	}
	m.activity.view.Width = width
	m.activity.view.Height = height
	m.activity.view.SetContent(m.renderActivityLines(width))
}

func (m Model) activityWidth() int {
	return max(min(m.width-4, 120), 20)
}

func (m Model) renderActivityLines(width int) string {
	styles := m.theme.Styles()
	switch {
	case !m.activity.loaded:
		return styles.MutedText.Render("Reading log…")
	case m.activity.err != nil:
		return styles.DangerText.Render("Unable to read log: " + m.activity.err.Error())
	case len(m.activity.entries) == 0:
		return styles.MutedText.Render("No activity yet.")
	}

	lines := make([]string, 0, len(m.activity.entries))
	for _, entry := range m.activity.entries {
		text := truncate(entry.Format(), width)
		lines = append(lines, levelStyle(entry.Level, styles).Render(text))
	}
	return strings.Join(lines, "\n")
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch strings.ToLower(level) {
	case "warn":
		return styles.WarningText
	case "error", "fatal", "panic":
		return styles.DangerText
	case "debug", "trace":
		return styles.InfoText
	default:
		return styles.Text
	}
}

// renderActivity renders the activity overlay.
func (m Model) renderActivity() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Activity"))
	if m.logPath != "" {
		b.WriteString("  ")
		b.WriteString(styles.FaintText.Render(truncateMiddle(m.logPath, m.activityWidth()-20)))
	}
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", m.activity.view.Width)))
	b.WriteString("\n")
	b.WriteString(m.activity.view.View())
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("esc/f2: Close  •  ctrl+r: Reload  •  up/down: Scroll"))

	return m.renderModal(b.String(), m.activityWidth())
}
