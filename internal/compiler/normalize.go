package compiler

// NormalizeOutput forces the output-affecting options this layer never
// leaves user-controllable: source maps are always external and enabled,
// inline variants are always off, the source-map root is always unset, and
// output-path validation is suppressed. Downstream stream consumers rely on
// these holding regardless of what settings or the project file requested.
// This step cannot fail and emits no diagnostics.
func NormalizeOutput(o CompilerOptions) {
	o["sourceMap"] = true
	delete(o, "inlineSourceMap")
	delete(o, "inlineSources")
	delete(o, "sourceRoot")
	o["suppressOutputPathCheck"] = true
}
