package configdomain

import "strings"

// Field identifies one configuration setting.
type Field string

const (
	FieldLogLevel      Field = "logLevel"
	FieldOutputFormat  Field = "outputFormat"
	FieldColor         Field = "color"
	FieldWorkspaceRoot Field = "workspaceRoot"
)

// Fields lists every setting in declaration order.
func Fields() []Field {
	return []Field{FieldLogLevel, FieldOutputFormat, FieldColor, FieldWorkspaceRoot}
}

// EnvVar returns the environment variable bound to the field
// (TRAM_ prefix plus the uppercase snake-case field name).
func (f Field) EnvVar() string {
	switch f {
	case FieldLogLevel:
		return "TRAM_LOG_LEVEL"
	case FieldOutputFormat:
		return "TRAM_OUTPUT_FORMAT"
	case FieldColor:
		return "TRAM_COLOR"
	case FieldWorkspaceRoot:
		return "TRAM_WORKSPACE_ROOT"
	}
	return ""
}

// LogLevel is the application log verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogLevels returns the allowed log level values.
func LogLevels() []string {
	return []string{string(LogLevelDebug), string(LogLevelInfo), string(LogLevelWarn), string(LogLevelError)}
}

// ParseLogLevel parses a log level case-insensitively.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	}
	return "", &ValidationError{Field: FieldLogLevel, Value: s, Allowed: LogLevels()}
}

// OutputFormat is the rendering format for command output.
type OutputFormat string

const (
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
	OutputFormatTable OutputFormat = "table"
)

// OutputFormats returns the allowed output format values.
func OutputFormats() []string {
	return []string{string(OutputFormatJSON), string(OutputFormatYAML), string(OutputFormatTable)}
}

// ParseOutputFormat parses an output format case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "json":
		return OutputFormatJSON, nil
	case "yaml":
		return OutputFormatYAML, nil
	case "table":
		return OutputFormatTable, nil
	}
	return "", &ValidationError{Field: FieldOutputFormat, Value: s, Allowed: OutputFormats()}
}

// Record is one fully-resolved configuration. Every field is populated
// after resolution; a Record is never mutated once constructed, reloads
// produce a fresh one.
type Record struct {
	LogLevel      LogLevel     `json:"logLevel" yaml:"logLevel"`
	OutputFormat  OutputFormat `json:"outputFormat" yaml:"outputFormat"`
	Color         bool         `json:"color" yaml:"color"`
	WorkspaceRoot string       `json:"workspaceRoot,omitempty" yaml:"workspaceRoot,omitempty"`
}

// DefaultRecord returns the built-in defaults: info-level logging,
// table output, colors on, no workspace root.
func DefaultRecord() Record {
	return Record{
		LogLevel:     LogLevelInfo,
		OutputFormat: OutputFormatTable,
		Color:        true,
	}
}
