package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	configdomain "tram.dev/cli/internal/core/domain/config"
)

// renderResolution renders a resolved configuration in the record's own
// output format. Table output is styled with lipgloss unless colors are
// disabled; json and yaml output is plain, suitable for piping.
func renderResolution(res configdomain.Resolution, showOrigin bool) (string, error) {
	switch res.Record.OutputFormat {
	case configdomain.OutputFormatJSON:
		return renderJSON(res, showOrigin)
	case configdomain.OutputFormatYAML:
		return renderYAML(res, showOrigin)
	default:
		return renderTable(res, showOrigin), nil
	}
}

func renderJSON(res configdomain.Resolution, showOrigin bool) (string, error) {
	var v any = res.Record
	if showOrigin {
		v = withOrigin(res)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render config as json: %w", err)
	}
	return string(data), nil
}

func renderYAML(res configdomain.Resolution, showOrigin bool) (string, error) {
	var v any = res.Record
	if showOrigin {
		v = withOrigin(res)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("render config as yaml: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// originView pairs each value with its source for --origin output.
type originView struct {
	Record configdomain.Record           `json:"record" yaml:"record"`
	Origin map[string]configdomain.Source `json:"origin" yaml:"origin"`
}

func withOrigin(res configdomain.Resolution) originView {
	origin := make(map[string]configdomain.Source, len(res.Provenance))
	for field, source := range res.Provenance {
		origin[string(field)] = source
	}
	return originView{Record: res.Record, Origin: origin}
}

func renderTable(res configdomain.Resolution, showOrigin bool) string {
	keyStyle := lipgloss.NewStyle()
	valStyle := lipgloss.NewStyle()
	dimStyle := lipgloss.NewStyle()
	if res.Record.Color {
		keyStyle = keyStyle.Bold(true).Foreground(lipgloss.Color("86"))
		valStyle = valStyle.Foreground(lipgloss.Color("252"))
		dimStyle = dimStyle.Foreground(lipgloss.Color("240"))
	}

	values := map[configdomain.Field]string{
		configdomain.FieldLogLevel:      string(res.Record.LogLevel),
		configdomain.FieldOutputFormat:  string(res.Record.OutputFormat),
		configdomain.FieldColor:         fmt.Sprintf("%t", res.Record.Color),
		configdomain.FieldWorkspaceRoot: res.Record.WorkspaceRoot,
	}

	var rows []string
	for _, field := range configdomain.Fields() {
		val := values[field]
		if val == "" {
			val = dimStyle.Render("(not set)")
		} else {
			val = valStyle.Render(val)
		}

		row := fmt.Sprintf("%s  %s", keyStyle.Render(fmt.Sprintf("%-14s", field)), val)
		if showOrigin {
			row += "  " + dimStyle.Render(fmt.Sprintf("(from %s)", res.Provenance[field]))
		}
		rows = append(rows, row)
	}

	if res.Path != "" {
		rows = append(rows, "", dimStyle.Render("loaded from "+res.Path))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
