package configdomain

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceDefault indicates the value is a built-in default.
	SourceDefault Source = "default"

	// SourceFile indicates the value came from a configuration file.
	SourceFile Source = "file"

	// SourceEnv indicates the value came from a TRAM_* environment variable.
	SourceEnv Source = "env"

	// SourceFlag indicates the value was set via command-line flag.
	SourceFlag Source = "flag"
)

// Layer is one partial set of field assignments from a single source.
// A nil field pointer means the layer does not mention that field and
// contributes nothing to it during merging.
type Layer struct {
	Source Source
	// Origin names the concrete input for diagnostics: a file path for
	// SourceFile, the variable names for SourceEnv, "flags" for SourceFlag.
	Origin string

	LogLevel      *LogLevel
	OutputFormat  *OutputFormat
	Color         *bool
	WorkspaceRoot *string
}

// IsEmpty reports whether the layer assigns no fields at all.
func (l Layer) IsEmpty() bool {
	return l.LogLevel == nil && l.OutputFormat == nil && l.Color == nil && l.WorkspaceRoot == nil
}

// Provenance records, for each field, the source that supplied the
// resolved value.
type Provenance map[Field]Source

// Merge folds an ordered sequence of partial layers (lowest precedence
// first) into one fully-resolved Record, starting from the built-in
// defaults. For each field the value from the highest-precedence layer
// that assigns it wins. The fold is pure: the same layer sequence always
// yields the same record and provenance.
func Merge(layers ...Layer) (Record, Provenance) {
	rec := DefaultRecord()
	prov := Provenance{
		FieldLogLevel:      SourceDefault,
		FieldOutputFormat:  SourceDefault,
		FieldColor:         SourceDefault,
		FieldWorkspaceRoot: SourceDefault,
	}

	for _, layer := range layers {
		rec, prov = Overlay(rec, prov, layer)
	}

	return rec, prov
}

// Overlay applies one partial layer on top of an already-resolved record,
// returning the new record and provenance. The inputs are not modified.
func Overlay(rec Record, prov Provenance, layer Layer) (Record, Provenance) {
	next := make(Provenance, len(prov))
	for f, s := range prov {
		next[f] = s
	}

	if layer.LogLevel != nil {
		rec.LogLevel = *layer.LogLevel
		next[FieldLogLevel] = layer.Source
	}
	if layer.OutputFormat != nil {
		rec.OutputFormat = *layer.OutputFormat
		next[FieldOutputFormat] = layer.Source
	}
	if layer.Color != nil {
		rec.Color = *layer.Color
		next[FieldColor] = layer.Source
	}
	if layer.WorkspaceRoot != nil {
		rec.WorkspaceRoot = *layer.WorkspaceRoot
		next[FieldWorkspaceRoot] = layer.Source
	}

	return rec, next
}
