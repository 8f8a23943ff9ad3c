package configinfra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configdomain "tram.dev/cli/internal/core/domain/config"
)

// clearTramEnv blanks every TRAM_* binding so a test sees only what it
// sets itself.
func clearTramEnv(t *testing.T) {
	t.Helper()
	for _, field := range configdomain.Fields() {
		t.Setenv(field.EnvVar(), "")
	}
}

func TestFileLayer_MapsCamelCaseFields(t *testing.T) {
	raw := map[string]any{
		"logLevel":      "warn",
		"outputFormat":  "json",
		"color":         false,
		"workspaceRoot": "/work",
	}

	layer, err := FileLayer(raw, "tram.json")
	require.NoError(t, err)

	assert.Equal(t, configdomain.SourceFile, layer.Source)
	assert.Equal(t, "tram.json", layer.Origin)
	require.NotNil(t, layer.LogLevel)
	assert.Equal(t, configdomain.LogLevelWarn, *layer.LogLevel)
	require.NotNil(t, layer.OutputFormat)
	assert.Equal(t, configdomain.OutputFormatJSON, *layer.OutputFormat)
	require.NotNil(t, layer.Color)
	assert.False(t, *layer.Color)
	require.NotNil(t, layer.WorkspaceRoot)
	assert.Equal(t, "/work", *layer.WorkspaceRoot)
}

func TestFileLayer_PartialMappingLeavesFieldsUnset(t *testing.T) {
	layer, err := FileLayer(map[string]any{"logLevel": "debug"}, "tram.yaml")
	require.NoError(t, err)

	assert.NotNil(t, layer.LogLevel)
	assert.Nil(t, layer.OutputFormat)
	assert.Nil(t, layer.Color)
	assert.Nil(t, layer.WorkspaceRoot)
}

func TestFileLayer_RejectsUnknownField(t *testing.T) {
	raw := map[string]any{
		"logLevel":   "info",
		"bogusField": true,
	}

	_, err := FileLayer(raw, "tram.json")

	var ufe *configdomain.UnknownFieldError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, "bogusField", ufe.Field)
	assert.Equal(t, "tram.json", ufe.Path)
}

func TestFileLayer_RejectsWrongCasing(t *testing.T) {
	// The schema accepts exactly camelCase; snake_case is an unknown
	// field, not an alias.
	_, err := FileLayer(map[string]any{"log_level": "info"}, "tram.toml")

	var ufe *configdomain.UnknownFieldError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, "log_level", ufe.Field)
}

func TestFileLayer_EnumValidation(t *testing.T) {
	_, err := FileLayer(map[string]any{"outputFormat": "xml"}, "tram.json")

	var verr *configdomain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, configdomain.FieldOutputFormat, verr.Field)
	assert.Equal(t, "xml", verr.Value)
	assert.Equal(t, []string{"json", "yaml", "table"}, verr.Allowed)
}

func TestFileLayer_ColorMustBeBoolean(t *testing.T) {
	tests := []struct {
		name string
		val  any
		got  string
	}{
		{"String", "true", "string"},
		{"Number", float64(1), "number"},
		{"Sequence", []any{true}, "sequence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FileLayer(map[string]any{"color": tt.val}, "tram.json")

			var terr *configdomain.TypeError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, configdomain.FieldColor, terr.Field)
			assert.Equal(t, "bool", terr.Expected)
			assert.Equal(t, tt.got, terr.Got)
		})
	}
}

func TestFileLayer_ScalarFieldsRejectStructuredValues(t *testing.T) {
	_, err := FileLayer(map[string]any{"logLevel": map[string]any{"value": "info"}}, "tram.yaml")

	var terr *configdomain.TypeError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "string", terr.Expected)
	assert.Equal(t, "mapping", terr.Got)
}

func TestEnvLayer_ReadsTramVariables(t *testing.T) {
	clearTramEnv(t)
	t.Setenv("TRAM_LOG_LEVEL", "error")
	t.Setenv("TRAM_OUTPUT_FORMAT", "yaml")
	t.Setenv("TRAM_COLOR", "false")
	t.Setenv("TRAM_WORKSPACE_ROOT", "/srv/project")

	layer, err := EnvLayer()
	require.NoError(t, err)

	assert.Equal(t, configdomain.SourceEnv, layer.Source)
	require.NotNil(t, layer.LogLevel)
	assert.Equal(t, configdomain.LogLevelError, *layer.LogLevel)
	require.NotNil(t, layer.OutputFormat)
	assert.Equal(t, configdomain.OutputFormatYAML, *layer.OutputFormat)
	require.NotNil(t, layer.Color)
	assert.False(t, *layer.Color)
	require.NotNil(t, layer.WorkspaceRoot)
	assert.Equal(t, "/srv/project", *layer.WorkspaceRoot)
	assert.Contains(t, layer.Origin, "TRAM_LOG_LEVEL")
}

func TestEnvLayer_EmptyVariableContributesNothing(t *testing.T) {
	clearTramEnv(t)

	layer, err := EnvLayer()
	require.NoError(t, err)

	assert.True(t, layer.IsEmpty())
}

func TestEnvLayer_ColorAcceptsCaseInsensitiveBooleans(t *testing.T) {
	tests := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"False", false},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			clearTramEnv(t)
			t.Setenv("TRAM_COLOR", tt.val)

			layer, err := EnvLayer()
			require.NoError(t, err)
			require.NotNil(t, layer.Color)
			assert.Equal(t, tt.expected, *layer.Color)
		})
	}
}

func TestEnvLayer_ColorRejectsNonBooleanTokens(t *testing.T) {
	clearTramEnv(t)
	t.Setenv("TRAM_COLOR", "yes")

	_, err := EnvLayer()

	var terr *configdomain.TypeError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, configdomain.FieldColor, terr.Field)
	assert.Equal(t, "bool", terr.Expected)
}

func TestEnvLayer_ValidatesEnumeratedValues(t *testing.T) {
	clearTramEnv(t)
	t.Setenv("TRAM_LOG_LEVEL", "chatty")

	_, err := EnvLayer()

	var verr *configdomain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, configdomain.FieldLogLevel, verr.Field)
}
