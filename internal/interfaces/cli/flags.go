package cli

import (
	"github.com/spf13/cobra"

	configdomain "tram.dev/cli/internal/core/domain/config"
)

// overrideLayer builds the CLI-override layer from the flags the user
// actually set. Flags left at their defaults contribute nothing, so the
// lower layers keep their say.
func overrideLayer(cmd *cobra.Command) (configdomain.Layer, error) {
	layer := configdomain.Layer{Source: configdomain.SourceFlag, Origin: "flags"}
	flags := cmd.Flags()

	if flags.Changed("log-level") {
		v, err := flags.GetString("log-level")
		if err != nil {
			return configdomain.Layer{}, err
		}
		level, err := configdomain.ParseLogLevel(v)
		if err != nil {
			return configdomain.Layer{}, err
		}
		layer.LogLevel = &level
	}

	if flags.Changed("format") {
		v, err := flags.GetString("format")
		if err != nil {
			return configdomain.Layer{}, err
		}
		format, err := configdomain.ParseOutputFormat(v)
		if err != nil {
			return configdomain.Layer{}, err
		}
		layer.OutputFormat = &format
	}

	if flags.Changed("no-color") {
		noColor, err := flags.GetBool("no-color")
		if err != nil {
			return configdomain.Layer{}, err
		}
		color := !noColor
		layer.Color = &color
	}

	if flags.Changed("workspace-root") {
		v, err := flags.GetString("workspace-root")
		if err != nil {
			return configdomain.Layer{}, err
		}
		layer.WorkspaceRoot = &v
	}

	return layer, nil
}
