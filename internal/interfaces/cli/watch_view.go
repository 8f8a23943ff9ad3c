package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	configdomain "tram.dev/cli/internal/core/domain/config"
	configinfra "tram.dev/cli/internal/infrastructure/config"
)

// runWatchView runs the interactive watch view: a live rendering of the
// current snapshot that updates as reloads land.
func runWatchView(cmd *cobra.Command, dispatcher *configinfra.Dispatcher, watcher *configinfra.Watcher, initial configdomain.Resolution) error {
	p := tea.NewProgram(newWatchModel(initial), tea.WithOutput(cmd.OutOrStdout()))

	dispatcher.Register(&teaWatchHandler{program: p})
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	_, err := p.Run()
	return err
}

// teaWatchHandler forwards reload outcomes into the Bubble Tea program.
type teaWatchHandler struct {
	program *tea.Program
}

func (h *teaWatchHandler) OnReloadSuccess(rec configdomain.Record) {
	h.program.Send(reloadOKMsg{record: rec, at: time.Now()})
}

func (h *teaWatchHandler) OnReloadFailure(err error) {
	h.program.Send(reloadErrMsg{err: err, at: time.Now()})
}

type reloadOKMsg struct {
	record configdomain.Record
	at     time.Time
}

type reloadErrMsg struct {
	err error
	at  time.Time
}

// watchModel is the Bubble Tea model for the interactive watch view.
type watchModel struct {
	record     configdomain.Record
	source     string
	reloads    int
	failures   int
	lastChange time.Time
	lastErr    error
}

func newWatchModel(initial configdomain.Resolution) watchModel {
	source := initial.Path
	if source == "" {
		source = "(no config file; defaults and environment)"
	}
	return watchModel{
		record:     initial.Record,
		source:     source,
		lastChange: time.Now(),
	}
}

// Init implements the Bubble Tea init method.
func (m watchModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method.
func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case reloadOKMsg:
		m.record = msg.record
		m.reloads++
		m.lastChange = msg.at
		m.lastErr = nil
		return m, nil

	case reloadErrMsg:
		m.failures++
		m.lastChange = msg.at
		m.lastErr = msg.err
		return m, nil
	}

	return m, nil
}

// View implements the Bubble Tea view method.
func (m watchModel) View() string {
	title := lipgloss.NewStyle()
	key := lipgloss.NewStyle()
	dim := lipgloss.NewStyle()
	bad := lipgloss.NewStyle()
	if m.record.Color {
		title = title.Bold(true).Foreground(lipgloss.Color("86"))
		key = key.Bold(true)
		dim = dim.Foreground(lipgloss.Color("240"))
		bad = bad.Foreground(lipgloss.Color("196"))
	}

	header := title.Render("tram watch") + dim.Render(fmt.Sprintf("  %s", m.source))

	body := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s  %s", key.Render(fmt.Sprintf("%-14s", configdomain.FieldLogLevel)), m.record.LogLevel),
		fmt.Sprintf("%s  %s", key.Render(fmt.Sprintf("%-14s", configdomain.FieldOutputFormat)), m.record.OutputFormat),
		fmt.Sprintf("%s  %t", key.Render(fmt.Sprintf("%-14s", configdomain.FieldColor)), m.record.Color),
		fmt.Sprintf("%s  %s", key.Render(fmt.Sprintf("%-14s", configdomain.FieldWorkspaceRoot)), orNotSet(m.record.WorkspaceRoot, dim)),
	)

	status := dim.Render(fmt.Sprintf("reloads: %d | failures: %d | last change: %s",
		m.reloads, m.failures, m.lastChange.Format("15:04:05")))

	lines := []string{header, "", body, "", status}
	if m.lastErr != nil {
		lines = append(lines,
			bad.Render(fmt.Sprintf("last reload failed: %v", m.lastErr)),
			dim.Render("keeping previous configuration"))
	}
	lines = append(lines, "", dim.Render("Press q to quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func orNotSet(s string, dim lipgloss.Style) string {
	if s == "" {
		return dim.Render("(not set)")
	}
	return s
}
