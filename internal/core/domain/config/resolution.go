package configdomain

// Resolution is the product of one resolver pass: the merged record,
// where each value came from, and which candidate file (if any) was
// loaded.
type Resolution struct {
	Record     Record
	Provenance Provenance

	// Path is the configuration file that supplied the file layer, or
	// empty when resolution ran without one.
	Path string
}

// Apply returns a copy of the resolution with one more layer folded on
// top. Used to apply CLI overrides, which sit above every resolver
// layer.
func (r Resolution) Apply(layer Layer) Resolution {
	rec, prov := Overlay(r.Record, r.Provenance, layer)
	return Resolution{Record: rec, Provenance: prov, Path: r.Path}
}
