package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
		Long: `Inspect the configuration tram resolves from defaults, config files,
TRAM_* environment variables, and command-line flags.`,
	}

	configCmd.AddCommand(NewConfigShowCommand())
	configCmd.AddCommand(NewConfigPathCommand())

	return configCmd
}

// NewConfigShowCommand creates the show subcommand.
func NewConfigShowCommand() *cobra.Command {
	var showOrigin bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := resolveFromCommand(cmd)
			if err != nil {
				return err
			}

			out, err := renderResolution(res, showOrigin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showOrigin, "origin", false, "Show where each value came from")
	return cmd
}

// NewConfigPathCommand creates the path subcommand.
func NewConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show which configuration file was loaded",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := resolveFromCommand(cmd)
			if err != nil {
				return err
			}

			if res.Path == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No configuration file loaded (defaults and environment only)")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file: %s\n", res.Path)
			return nil
		},
	}
}
