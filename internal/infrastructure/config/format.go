package configinfra

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	configdomain "tram.dev/cli/internal/core/domain/config"
)

// Format is the wire format of a configuration file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath maps a file extension to its format: .json, .yaml/.yml,
// or .toml. Any other extension is an UnsupportedFormatError.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", &configdomain.UnsupportedFormatError{Path: path, Extension: ext}
}

// SniffFormat guesses the format from content alone, for inputs that
// carry no usable extension. JSON documents start with an object or
// array; a line-leading bare "key =" assignment suggests TOML; anything
// else is treated as YAML, which is the most permissive of the three.
func SniffFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if eq, colon := bytes.IndexByte(line, '='), bytes.IndexByte(line, ':'); eq >= 0 && (colon < 0 || eq < colon) {
			return FormatTOML
		}
		break
	}
	return FormatYAML
}

// Decode parses data in the given format into a generic string-keyed
// mapping. Keys keep whatever casing the source uses; no schema checks
// happen here. An empty format sniffs the content first. Malformed
// input yields a DecodeError; path is carried only for diagnostics.
func Decode(data []byte, format Format, path string) (map[string]any, error) {
	if format == "" {
		format = SniffFormat(data)
	}

	raw := make(map[string]any)
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &configdomain.DecodeError{
				Format:   string(format),
				Path:     path,
				Position: jsonPosition(err),
				Err:      err,
			}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &configdomain.DecodeError{Format: string(format), Path: path, Err: err}
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, &configdomain.DecodeError{
				Format:   string(format),
				Path:     path,
				Position: tomlPosition(err),
				Err:      err,
			}
		}
	default:
		return nil, &configdomain.UnsupportedFormatError{Path: path, Extension: "." + string(format)}
	}

	return raw, nil
}

func jsonPosition(err error) string {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return fmt.Sprintf("offset %d", syn.Offset)
	}
	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) {
		return fmt.Sprintf("offset %d", typ.Offset)
	}
	return ""
}

func tomlPosition(err error) string {
	var parse toml.ParseError
	if errors.As(err, &parse) {
		return fmt.Sprintf("line %d", parse.Position.Line)
	}
	return ""
}
