package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

// NoResultsMessage is shown in place of the grid when nothing matches.
const NoResultsMessage = "No movies found. Try a different search term."

const (
	appTitle          = "Movie Database"
	searchPlaceholder = "Search movies..."
	refreshLabel      = "[ Refresh Movies ]"
	clockInterval     = 30 * time.Second

	// Rows taken by the header, search line and footer.
	chromeHeight = 3
)

// RefreshFunc runs one fetch cycle. Its outcome lands in the store; the
// returned error is informational.
type RefreshFunc func(context.Context) error

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Refresh   RefreshFunc
	Endpoint  string
	LogPath   string
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	refresh   RefreshFunc
	endpoint  string
	logPath   string
	prefsPath string
	now       func() time.Time

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	// Data state
	snapshot       state.Snapshot
	refreshPending bool // a refresh started here has not reported back yet

	// Widgets
	search  textinput.Model
	spinner spinner.Model
	grid    viewport.Model

	// Overlays
	showHelp     bool
	showActivity bool
	activity     activityState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = state.NewStore()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.Prompt = "⌕ "
	ti.CharLimit = 100
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	grid := viewport.New(0, 0)
	grid.MouseWheelEnabled = true

	m := Model{
		ctx:       ctx,
		store:     store,
		refresh:   opts.Refresh,
		endpoint:  opts.Endpoint,
		logPath:   opts.LogPath,
		prefsPath: prefsPath,
		now:       time.Now,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		snapshot:  store.Snapshot(),
		search:    ti,
		spinner:   sp,
		grid:      grid,
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model. The first fetch starts on mount.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		clockCmd(),
		m.refreshCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.Width = max(m.width-6, 10)
		m.layoutGrid(false)
		m.layoutActivity()
		return m, nil

	case snapshotMsg:
		cmd := m.applySnapshot(state.Snapshot(msg), false)
		return m, cmd

	case refreshDoneMsg:
		// The store holds the outcome; pick it up even if the observer's
		// notification is still in flight.
		m.refreshPending = false
		cmd := m.applySnapshot(m.store.Snapshot(), true)
		return m, cmd

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clockMsg:
		// Re-render so the relative fetch time stays current.
		return m, clockCmd()

	case activityMsg:
		m.handleActivity(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showActivity {
		return m.renderActivity()
	}
	return m.renderMain()
}

// handleKey processes keyboard input. The search box keeps focus, so any
// key that is not a binding is forwarded to it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.showActivity {
		return m.handleActivityKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		if m.search.Value() == "" {
			return m, tea.Quit
		}
		m.search.SetValue("")
		return m, m.syncSearch()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Activity):
		m.showActivity = true
		m.layoutActivity()
		return m, loadActivityCmd(m.logPath)

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.triggerRefresh()

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		return m, cmd
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		cmd = tea.Batch(cmd, m.syncSearch())
	}
	return m, cmd
}

// handleMouse routes clicks on the refresh control and wheel scrolling.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}
	if m.showActivity {
		var cmd tea.Cmd
		m.activity.view, cmd = m.activity.view.Update(msg)
		return m, cmd
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if m.inRefreshButton(msg.X, msg.Y) {
			return m.triggerRefresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

// triggerRefresh re-enters the loading state and starts a fetch. A fetch
// already in flight is joined rather than duplicated.
func (m Model) triggerRefresh() (tea.Model, tea.Cmd) {
	if m.refresh == nil {
		return m, nil
	}
	wasLoading := m.loading()
	m.refreshPending = true
	cmds := []tea.Cmd{m.refreshCmd()}
	if !wasLoading {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

// syncSearch pushes the search text into the store and applies the result
// right away so filtering never waits on a notification round trip. The
// store copy is the newest state, so it replaces the shown one wholesale.
func (m *Model) syncSearch() tea.Cmd {
	wasLoading := m.loading()
	m.store.SetSearch(m.search.Value())
	m.snapshot = m.store.Snapshot()
	m.layoutGrid(true)
	if m.loading() && !wasLoading {
		return m.spinner.Tick
	}
	return nil
}

// loading reports whether the view shows the loading state: the store has a
// fetch in progress, or a refresh requested here has not finished yet.
func (m Model) loading() bool {
	return m.snapshot.Loading || m.refreshPending
}

// phase is the body state to render.
func (m Model) phase() state.Phase {
	if m.loading() {
		return state.PhaseLoading
	}
	return m.snapshot.Phase()
}

// applySnapshot installs snap unless a newer one is already shown.
// Notifications are delivered asynchronously and can arrive out of order.
func (m *Model) applySnapshot(snap state.Snapshot, allowSame bool) tea.Cmd {
	if snap.Version < m.snapshot.Version || (!allowSame && snap.Version == m.snapshot.Version) {
		return nil
	}
	wasLoading := m.loading()
	searchChanged := snap.Search != m.snapshot.Search
	m.snapshot = snap
	m.layoutGrid(searchChanged)

	if m.loading() && !wasLoading {
		return m.spinner.Tick
	}
	return nil
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	m.layoutGrid(false)
	if m.prefsPath != "" {
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
	}
}

// applyTheme restyles the widgets that carry their own styles.
func (m *Model) applyTheme() {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.search.Cursor.Style = styles.AccentText
	m.spinner.Style = styles.AccentText
	m.help.Styles.ShortKey = styles.MutedText
	m.help.Styles.ShortDesc = styles.FaintText
	m.help.Styles.ShortSeparator = styles.FaintText
}

func (m Model) refreshCmd() tea.Cmd {
	if m.refresh == nil {
		return nil
	}
	ctx, refresh := m.ctx, m.refresh
	return func() tea.Msg {
		return refreshDoneMsg{err: refresh(ctx)}
	}
}

func (m Model) bodyHeight() int {
	return max(m.height-chromeHeight, 1)
}

// Messages

type snapshotMsg state.Snapshot

type refreshDoneMsg struct {
	err error
}

type clockMsg time.Time

// Commands

func clockCmd() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled. Store changes are forwarded to the program as they
// happen.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	// Send blocks until the event loop receives, and observers run on the
	// goroutine that mutated the store, which may be Update itself.
	unsubscribe := opts.Store.Subscribe(func(s state.Snapshot) {
		go p.Send(snapshotMsg(s))
	})
	defer unsubscribe()

	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderSearch(),
		m.renderBody(),
		m.renderFooter(),
	)
}
