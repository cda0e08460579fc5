package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/ui"
)

// Options configure the marquee application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/marquee/prefs.toml
	Endpoint   string // overrides the configured endpoint when set
	LogLevel   string // overrides the configured level when set
	Version    string
}

// Run boots the marquee TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closer, err := logging.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := newClient(cfg, opts.Version)
	if err != nil {
		return fmt.Errorf("init movie client: %w", err)
	}

	store := state.NewStore()
	fetcher := NewFetcher(client, store, logger)

	logger.Info().
		Str("config", config.Path(opts.ConfigPath)).
		Str("endpoint", client.Endpoint()).
		Dur("refresh_interval", cfg.RefreshInterval).
		Msg("marquee starting")

	if StartAutoRefresh(ctx, fetcher, cfg.RefreshInterval) {
		logger.Debug().Msg("auto refresh enabled")
	}

	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Refresh:   fetcher.Fetch,
		Endpoint:  client.Endpoint(),
		LogPath:   cfg.LogFile,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
	if err != nil {
		logger.Error().Err(err).Msg("ui exited with error")
		return err
	}
	logger.Info().Msg("marquee stopped")
	return nil
}

// List fetches once, filters by term, and writes a plain table to out. It is
// the non-interactive counterpart of Run.
func List(ctx context.Context, opts Options, term string, out, errOut io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := logging.NewConsole(errOut, cfg.LogLevel, false)

	client, err := newClient(cfg, opts.Version)
	if err != nil {
		return fmt.Errorf("init movie client: %w", err)
	}

	store := state.NewStore()
	store.SetSearch(term)
	if err := NewFetcher(client, store, logger).Fetch(ctx); err != nil {
		return err
	}
	return WriteList(out, store.Snapshot())
}

// WriteList renders the visible movies of snap as a table, or the no-results
// message when nothing matches.
func WriteList(w io.Writer, snap state.Snapshot) error {
	visible := snap.Visible()
	if len(visible) == 0 {
		_, err := fmt.Fprintln(w, ui.NoResultsMessage)
		return err
	}

	rows := make([][]string, 0, len(visible))
	for _, m := range visible {
		rows = append(rows, []string{m.Title, "★ " + m.RatingLabel() + "/10", m.IMDbURL})
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderHeader(false).
		Headers("TITLE", "RATING", "IMDB").
		Rows(rows...)

	_, err := fmt.Fprintln(w, strings.TrimRight(t.Render(), "\n"))
	return err
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if endpoint := strings.TrimSpace(opts.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	return cfg, nil
}

func newClient(cfg config.Config, version string) (*catalog.Client, error) {
	opts := []catalog.Option{catalog.WithTimeout(cfg.RequestTimeout)}
	if version = strings.TrimSpace(version); version != "" {
		opts = append(opts, catalog.WithUserAgent("marquee/"+version))
	}
	return catalog.NewClient(cfg.Endpoint, opts...)
}
