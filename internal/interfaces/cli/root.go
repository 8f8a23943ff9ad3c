package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// NewRootCommand builds the base tram command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tram",
		Short: "Tram - configuration-driven CLI tooling",
		Long: `Tram resolves application configuration from defaults, config files
(JSON, YAML, or TOML), TRAM_* environment variables, and command-line
flags, merged in that order of precedence.

It can also watch the active configuration files and hot-reload the
resolved configuration as they change.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nPlatform: %s/%s\n",
		BuildTime, runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("format", "", "Output format (json, yaml, table)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: search tram.json, tram.yaml, ...)")
	rootCmd.PersistentFlags().String("workspace-root", "", "Workspace root directory")

	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewWatchCommand())

	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
