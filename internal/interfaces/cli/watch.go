package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	configdomain "tram.dev/cli/internal/core/domain/config"
	configinfra "tram.dev/cli/internal/infrastructure/config"
)

// NewWatchCommand creates the watch command: resolve once, then keep
// the resolved configuration hot-reloaded as the config files change.
func NewWatchCommand() *cobra.Command {
	var (
		interactive bool
		debounce    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch configuration files and hot-reload on change",
		Long: `Watch monitors the active configuration files and re-resolves the
configuration whenever they change. A broken edit does not interrupt
the session: the previous configuration stays active and the error is
reported.

Example:
  tram watch
  tram watch --config ./tram.toml --debounce 500ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, interactive, debounce)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Show a live view instead of log lines")
	cmd.Flags().DurationVar(&debounce, "debounce", configinfra.DefaultDebounce, "Quiet window before a change triggers a reload")
	return cmd
}

func runWatch(cmd *cobra.Command, interactive bool, debounce time.Duration) error {
	resolver := configinfra.NewResolver()

	overrides, err := overrideLayer(cmd)
	if err != nil {
		return err
	}

	// The initial load is strict: a broken configuration stops the
	// session from starting. Only later edits soft-fail.
	var explicit []string
	var res configdomain.Resolution
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		explicit = []string{path}
		res, err = resolver.LoadFromFile(path)
	} else {
		res, err = resolver.LoadFromCandidatePaths()
	}
	if err != nil {
		return err
	}
	res = res.Apply(overrides)

	dispatcher := configinfra.NewDispatcher(res)
	watcher := configinfra.NewWatcher(resolver, dispatcher, configinfra.WatcherOptions{
		Paths:     explicit,
		Debounce:  debounce,
		Overrides: overrides,
	})

	if interactive {
		return runWatchView(cmd, dispatcher, watcher, res)
	}

	logger := &watchLogHandler{out: cmd.OutOrStdout(), color: res.Record.Color}
	dispatcher.Register(logger)

	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	logger.printStart(res)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	<-sigCh

	fmt.Fprintln(cmd.OutOrStdout(), "\nStopping watch...")
	return nil
}

// watchLogHandler is the line-mode change handler: one line per reload
// outcome, in the style of the rest of the CLI output.
type watchLogHandler struct {
	out   io.Writer
	color bool
}

func (h *watchLogHandler) styles() (ok, bad, dim lipgloss.Style) {
	ok, bad, dim = lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()
	if h.color {
		ok = ok.Foreground(lipgloss.Color("46"))
		bad = bad.Foreground(lipgloss.Color("196"))
		dim = dim.Foreground(lipgloss.Color("240"))
	}
	return ok, bad, dim
}

func (h *watchLogHandler) printStart(res configdomain.Resolution) {
	_, _, dim := h.styles()
	target := "candidate paths in " + mustGetwd()
	if res.Path != "" {
		target = res.Path
	}
	fmt.Fprintf(h.out, "Watching %s %s\n", target, dim.Render("(ctrl+c to stop)"))
}

func (h *watchLogHandler) OnReloadSuccess(rec configdomain.Record) {
	ok, _, dim := h.styles()
	fmt.Fprintf(h.out, "%s log level=%s, output format=%s, color=%t%s\n",
		ok.Render("Configuration reloaded:"),
		rec.LogLevel, rec.OutputFormat, rec.Color,
		workspaceSuffix(rec, dim))
}

func (h *watchLogHandler) OnReloadFailure(err error) {
	_, bad, dim := h.styles()
	fmt.Fprintf(h.out, "%s %v\n%s\n",
		bad.Render("Configuration reload failed:"), err,
		dim.Render("  keeping previous configuration"))
}

func workspaceSuffix(rec configdomain.Record, dim lipgloss.Style) string {
	if rec.WorkspaceRoot == "" {
		return ""
	}
	return dim.Render(", workspace root=" + rec.WorkspaceRoot)
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
