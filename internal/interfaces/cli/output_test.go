package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	configdomain "tram.dev/cli/internal/core/domain/config"
)

func sampleResolution(format configdomain.OutputFormat) configdomain.Resolution {
	level := configdomain.LogLevelWarn
	root := "/work"
	rec, prov := configdomain.Merge(configdomain.Layer{
		Source:        configdomain.SourceFile,
		Origin:        "tram.yaml",
		LogLevel:      &level,
		OutputFormat:  &format,
		WorkspaceRoot: &root,
	})
	return configdomain.Resolution{Record: rec, Provenance: prov, Path: "tram.yaml"}
}

func TestRenderResolution_JSONRoundTrips(t *testing.T) {
	out, err := renderResolution(sampleResolution(configdomain.OutputFormatJSON), false)
	require.NoError(t, err)

	var rec configdomain.Record
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, configdomain.LogLevelWarn, rec.LogLevel)
	assert.Equal(t, "/work", rec.WorkspaceRoot)
}

func TestRenderResolution_YAMLRoundTrips(t *testing.T) {
	out, err := renderResolution(sampleResolution(configdomain.OutputFormatYAML), false)
	require.NoError(t, err)

	var rec configdomain.Record
	require.NoError(t, yaml.Unmarshal([]byte(out), &rec))
	assert.Equal(t, configdomain.LogLevelWarn, rec.LogLevel)
}

func TestRenderResolution_TableListsEveryField(t *testing.T) {
	out, err := renderResolution(sampleResolution(configdomain.OutputFormatTable), false)
	require.NoError(t, err)

	for _, field := range configdomain.Fields() {
		assert.Contains(t, out, string(field))
	}
	assert.Contains(t, out, "warn")
	assert.Contains(t, out, "loaded from tram.yaml")
}

func TestRenderResolution_OriginAnnotations(t *testing.T) {
	out, err := renderResolution(sampleResolution(configdomain.OutputFormatTable), true)
	require.NoError(t, err)

	assert.Contains(t, out, "(from file)")
	assert.Contains(t, out, "(from default)")
}

func TestRenderResolution_JSONWithOriginIncludesProvenance(t *testing.T) {
	out, err := renderResolution(sampleResolution(configdomain.OutputFormatJSON), true)
	require.NoError(t, err)

	var view struct {
		Record configdomain.Record          `json:"record"`
		Origin map[string]configdomain.Source `json:"origin"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, configdomain.SourceFile, view.Origin["logLevel"])
	assert.Equal(t, configdomain.SourceDefault, view.Origin["color"])
}
