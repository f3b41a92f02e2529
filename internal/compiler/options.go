package compiler

// CompilerOptions is the canonical, fully-merged compiler configuration.
// It is map-backed because settings permit arbitrary passthrough keys and
// because precedence between resolution phases is a per-key merge. Each
// phase produces a fresh value via Clone/Merge; no phase mutates its input.
type CompilerOptions map[string]any

// Clone returns a shallow copy. Values are never aggregates in practice
// (strings, bools, numbers, string slices owned by the producer).
func (o CompilerOptions) Clone() CompilerOptions {
	out := make(CompilerOptions, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Merge returns a new option set where keys present in other win over keys
// in o. Keys absent from other keep o's value.
func (o CompilerOptions) Merge(other CompilerOptions) CompilerOptions {
	out := o.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Bool reports the value of a boolean option, false when absent or not a
// bool.
func (o CompilerOptions) Bool(key string) bool {
	v, ok := o[key].(bool)
	return ok && v
}

// String returns the value of a string option, "" when absent or not a
// string.
func (o CompilerOptions) String(key string) string {
	v, _ := o[key].(string)
	return v
}

func (o CompilerOptions) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// ParsedConfig is the fully resolved content of a project-configuration
// file: merged options, the matched input file names, and the raw parsed
// JSON for later reference by the build handle.
type ParsedConfig struct {
	Options   CompilerOptions
	FileNames []string
	Raw       map[string]any
}
