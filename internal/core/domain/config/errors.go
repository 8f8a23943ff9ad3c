package configdomain

import (
	"fmt"
	"strings"
)

// DecodeError reports malformed configuration file content. Decoding
// failures abort the load; a broken file is never skipped silently.
type DecodeError struct {
	Format   string // "json", "yaml", or "toml"
	Path     string // file the content came from, if known
	Position string // line/offset information from the underlying decoder, if any
	Err      error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("decode ")
	b.WriteString(e.Format)
	if e.Path != "" {
		fmt.Fprintf(&b, " config %s", e.Path)
	}
	if e.Position != "" {
		fmt.Fprintf(&b, " at %s", e.Position)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnsupportedFormatError reports a config path whose extension maps to
// no known format.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return fmt.Sprintf("unsupported config format: %s has no file extension", e.Path)
	}
	return fmt.Sprintf("unsupported config format %q for %s (expected .json, .yaml, .yml, or .toml)", e.Extension, e.Path)
}

// UnknownFieldError reports a field present in a config file that the
// schema does not declare. The schema is strict: unknown keys are
// rejected, not ignored.
type UnknownFieldError struct {
	Field string
	Path  string
}

func (e *UnknownFieldError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("unknown config field %q in %s", e.Field, e.Path)
	}
	return fmt.Sprintf("unknown config field %q", e.Field)
}

// ValidationError reports an enumerated field whose value is not in the
// allowed set.
type ValidationError struct {
	Field   Field
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: must be one of %s",
		e.Value, e.Field, strings.Join(e.Allowed, ", "))
}

// TypeError reports a field whose value has the wrong scalar type, such
// as a non-boolean token for a boolean field.
type TypeError struct {
	Field    Field
	Expected string
	Got      string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid type for %s: expected %s, got %s", e.Field, e.Expected, e.Got)
}

// IOError reports a config file that exists but could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read config %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// WatchSetupError reports a failure to establish the filesystem watch
// subscription. It is fatal to Watcher.Start.
type WatchSetupError struct {
	Path string
	Err  error
}

func (e *WatchSetupError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("watch %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("set up config watch: %v", e.Err)
}

func (e *WatchSetupError) Unwrap() error { return e.Err }
