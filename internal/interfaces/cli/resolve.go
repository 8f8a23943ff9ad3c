package cli

import (
	"github.com/spf13/cobra"

	configdomain "tram.dev/cli/internal/core/domain/config"
	configinfra "tram.dev/cli/internal/infrastructure/config"
)

// resolveFromCommand runs the full resolution for one command
// invocation: the candidate search (or the file named by --config),
// the environment, and finally the flag overrides on top. Any failure
// aborts the command; a partially-loaded configuration is never used.
func resolveFromCommand(cmd *cobra.Command) (configdomain.Resolution, error) {
	resolver := configinfra.NewResolver()

	var res configdomain.Resolution
	var err error
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		res, err = resolver.LoadFromFile(path)
	} else {
		res, err = resolver.LoadFromCandidatePaths()
	}
	if err != nil {
		return configdomain.Resolution{}, err
	}

	overrides, err := overrideLayer(cmd)
	if err != nil {
		return configdomain.Resolution{}, err
	}

	return res.Apply(overrides), nil
}
