package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout, isTerminal(os.Stdout)).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd builds the command tree. interactive selects the TUI for the
// bare command; otherwise it prints the list like `marquee list`.
func newRootCmd(out io.Writer, interactive bool) *cobra.Command {
	opts := app.Options{Version: version}

	root := &cobra.Command{
		Use:   "marquee",
		Short: "Browse and search a movie listing in the terminal",
		Long: `marquee fetches a movie listing from an HTTP endpoint and shows it as a
searchable card grid. Type to filter by title, ctrl+r to refresh.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !interactive {
				return app.List(cmd.Context(), opts, "", cmd.OutOrStdout(), cmd.ErrOrStderr())
			}
			return app.Run(cmd.Context(), opts)
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/marquee/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/marquee/prefs.toml)")
	flags.StringVar(&opts.Endpoint, "endpoint", "", "movie listing URL (overrides config)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	root.AddCommand(&cobra.Command{
		Use:   "list [term]",
		Short: "Print the movies whose title contains term",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) > 0 {
				term = args[0]
			}
			return app.List(cmd.Context(), opts, term, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	})

	return root
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
