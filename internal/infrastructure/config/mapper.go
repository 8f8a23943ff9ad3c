package configinfra

import (
	"fmt"
	"os"
	"sort"
	"strings"

	configdomain "tram.dev/cli/internal/core/domain/config"
)

// FileLayer maps a decoded generic mapping into a partial layer. The
// schema is strict: keys must use the documented camelCase names, and
// anything else is an UnknownFieldError. Enumerated fields are parsed
// case-insensitively; the color field must be a real boolean in
// structured formats, not a string.
func FileLayer(raw map[string]any, path string) (configdomain.Layer, error) {
	layer := configdomain.Layer{Source: configdomain.SourceFile, Origin: path}

	// Sorted so the first error is deterministic regardless of map order.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		val := raw[key]
		switch configdomain.Field(key) {
		case configdomain.FieldLogLevel:
			s, ok := val.(string)
			if !ok {
				return configdomain.Layer{}, &configdomain.TypeError{Field: configdomain.FieldLogLevel, Expected: "string", Got: typeName(val)}
			}
			level, err := configdomain.ParseLogLevel(s)
			if err != nil {
				return configdomain.Layer{}, err
			}
			layer.LogLevel = &level

		case configdomain.FieldOutputFormat:
			s, ok := val.(string)
			if !ok {
				return configdomain.Layer{}, &configdomain.TypeError{Field: configdomain.FieldOutputFormat, Expected: "string", Got: typeName(val)}
			}
			format, err := configdomain.ParseOutputFormat(s)
			if err != nil {
				return configdomain.Layer{}, err
			}
			layer.OutputFormat = &format

		case configdomain.FieldColor:
			b, ok := val.(bool)
			if !ok {
				return configdomain.Layer{}, &configdomain.TypeError{Field: configdomain.FieldColor, Expected: "bool", Got: typeName(val)}
			}
			layer.Color = &b

		case configdomain.FieldWorkspaceRoot:
			s, ok := val.(string)
			if !ok {
				return configdomain.Layer{}, &configdomain.TypeError{Field: configdomain.FieldWorkspaceRoot, Expected: "string", Got: typeName(val)}
			}
			layer.WorkspaceRoot = &s

		default:
			return configdomain.Layer{}, &configdomain.UnknownFieldError{Field: key, Path: path}
		}
	}

	return layer, nil
}

// EnvLayer builds a partial layer from the TRAM_* environment
// variables. A variable that is unset or empty contributes nothing.
// Enumerated values are validated here; TRAM_COLOR accepts only
// "true" or "false", case-insensitively.
func EnvLayer() (configdomain.Layer, error) {
	layer := configdomain.Layer{Source: configdomain.SourceEnv}
	var origins []string

	if v := os.Getenv(configdomain.FieldLogLevel.EnvVar()); v != "" {
		level, err := configdomain.ParseLogLevel(v)
		if err != nil {
			return configdomain.Layer{}, err
		}
		layer.LogLevel = &level
		origins = append(origins, configdomain.FieldLogLevel.EnvVar())
	}

	if v := os.Getenv(configdomain.FieldOutputFormat.EnvVar()); v != "" {
		format, err := configdomain.ParseOutputFormat(v)
		if err != nil {
			return configdomain.Layer{}, err
		}
		layer.OutputFormat = &format
		origins = append(origins, configdomain.FieldOutputFormat.EnvVar())
	}

	if v := os.Getenv(configdomain.FieldColor.EnvVar()); v != "" {
		var b bool
		switch strings.ToLower(v) {
		case "true":
			b = true
		case "false":
			b = false
		default:
			return configdomain.Layer{}, &configdomain.TypeError{Field: configdomain.FieldColor, Expected: "bool", Got: fmt.Sprintf("%q", v)}
		}
		layer.Color = &b
		origins = append(origins, configdomain.FieldColor.EnvVar())
	}

	if v := os.Getenv(configdomain.FieldWorkspaceRoot.EnvVar()); v != "" {
		root := v
		layer.WorkspaceRoot = &root
		origins = append(origins, configdomain.FieldWorkspaceRoot.EnvVar())
	}

	layer.Origin = strings.Join(origins, ",")
	return layer, nil
}

// typeName describes a decoded value's type in format-neutral terms for
// error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case int, int64, uint64, float32, float64:
		return "number"
	case []any:
		return "sequence"
	case map[string]any, map[any]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
