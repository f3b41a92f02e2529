// Package compiler abstracts the TypeScript compiler implementation bound to
// a resolved configuration. The resolution pipeline needs only a narrow
// slice of a compiler: converting raw settings into options, resolving
// project-file content against a baseline, and decoding diagnostics for
// rendering. Impl captures that slice; the bundled default implementation
// lives in internal/compiler/native.
package compiler
