// Package graph provides the topology model consumed by the geometry and
// rendering layers.
//
// A [Graph] is a read-only snapshot during a render pass: build it up front
// with [Graph.AddVertex] and [Graph.AddEdge], then hand it to the geometry
// pipeline. Vertices are dense integer IDs from 1 to N, stable for the
// lifetime of the graph. Edges keep their insertion order, and every layer
// that produces per-edge data (attribute resolution, path trimming) aligns
// positionally with [Graph.Edges].
//
// Graphs are either directed or undirected, chosen at construction. Self
// loops and parallel edges are allowed; they matter for rendering even when
// most graph algorithms reject them.
//
// The package also defines the JSON interchange format (graph.json and
// layout.json) used by the CLI. See [ReadGraphFile] and [WriteLayoutFile].
package graph
