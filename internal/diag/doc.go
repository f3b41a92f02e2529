// Package diag defines the diagnostic model shared by all resolution phases.
//
// Diagnostic is the central record: a severity, a compact numeric code, the
// phase that produced it, a human oriented message, and an optional file
// position plus secondary notes. Producers emit diagnostics through a
// Reporter so that emission stays decoupled from storage and rendering;
// BagReporter aggregates into a Bag, which supports sorting and merging.
//
// Deprecation models the structured three-part notices this layer emits for
// retired settings keys and retired calling conventions: a one-line summary,
// a one-line remediation action, and a longer explanation. Deprecations are
// always non-fatal and are rendered as warning diagnostics.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt.
package diag
