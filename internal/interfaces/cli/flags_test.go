package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configdomain "tram.dev/cli/internal/core/domain/config"
)

func parseRootFlags(t *testing.T, args ...string) *configdomain.Layer {
	t.Helper()
	cmd := NewRootCommand()
	require.NoError(t, cmd.ParseFlags(args))

	layer, err := overrideLayer(cmd)
	require.NoError(t, err)
	return &layer
}

func TestOverrideLayer_UnsetFlagsContributeNothing(t *testing.T) {
	layer := parseRootFlags(t)

	assert.True(t, layer.IsEmpty(), "defaults must not masquerade as explicit overrides")
	assert.Equal(t, configdomain.SourceFlag, layer.Source)
}

func TestOverrideLayer_CapturesChangedFlags(t *testing.T) {
	layer := parseRootFlags(t,
		"--log-level", "error",
		"--format", "yaml",
		"--no-color",
		"--workspace-root", "/work",
	)

	require.NotNil(t, layer.LogLevel)
	assert.Equal(t, configdomain.LogLevelError, *layer.LogLevel)
	require.NotNil(t, layer.OutputFormat)
	assert.Equal(t, configdomain.OutputFormatYAML, *layer.OutputFormat)
	require.NotNil(t, layer.Color)
	assert.False(t, *layer.Color, "--no-color inverts into the color field")
	require.NotNil(t, layer.WorkspaceRoot)
	assert.Equal(t, "/work", *layer.WorkspaceRoot)
}

func TestOverrideLayer_ValidatesEnumFlags(t *testing.T) {
	cmd := NewRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--log-level", "loud"}))

	_, err := overrideLayer(cmd)

	var verr *configdomain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, configdomain.FieldLogLevel, verr.Field)
}
