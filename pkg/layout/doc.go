// Package layout obtains per-vertex positions from external layout engines.
//
// The geometry pipeline treats layout as a collaborator: positions arrive
// from outside, and this package is the adapter that fetches them. The main
// provider is Graphviz (via goccy/go-graphviz), which covers hierarchical
// (dot), spring (neato/fdp), circular (circo) and radial (twopi) layouts.
// [Circular] and [Grid] are closed-form fallbacks that need no engine and
// are deterministic, which also makes them the layouts of choice in tests.
package layout
