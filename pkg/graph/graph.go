package graph

import (
	"errors"
	"slices"
)

var (
	// ErrVertexRange is returned by [Graph.AddEdge] when an endpoint is not a
	// valid vertex ID (IDs run from 1 to VertexCount).
	ErrVertexRange = errors.New("graph: vertex ID out of range")

	// ErrVertexCount is returned by [New] when the vertex count is negative.
	ErrVertexCount = errors.New("graph: vertex count must not be negative")
)

// VertexID identifies a vertex. IDs are dense integers from 1 to
// [Graph.VertexCount] and remain stable for the lifetime of the graph.
type VertexID int

// EdgeKey is an ordered endpoint pair. For directed graphs the order is the
// edge direction; for undirected graphs it records the orientation the edge
// was added (or keyed) with, which is still meaningful to callers that built
// sparse per-edge mappings in a particular orientation.
type EdgeKey struct {
	From VertexID
	To   VertexID
}

// Reversed returns the key with its endpoints swapped.
func (e EdgeKey) Reversed() EdgeKey { return EdgeKey{From: e.To, To: e.From} }

// Graph is an in-memory directed or undirected multigraph. The zero value is
// not usable - use [New]. Graph is not safe for concurrent mutation; once
// built it may be read from any number of goroutines.
type Graph struct {
	directed bool
	n        int
	edges    []EdgeKey
	out      map[VertexID][]VertexID
	in       map[VertexID][]VertexID
}

// New creates a graph with n vertices (IDs 1..n) and no edges.
// Returns ErrVertexCount if n is negative.
func New(n int, directed bool) (*Graph, error) {
	if n < 0 {
		return nil, ErrVertexCount
	}
	return &Graph{
		directed: directed,
		n:        n,
		out:      make(map[VertexID][]VertexID),
		in:       make(map[VertexID][]VertexID),
	}, nil
}

// MustNew is [New] for static graphs whose size is known to be valid.
// It panics if New fails.
func MustNew(n int, directed bool) *Graph {
	g, err := New(n, directed)
	if err != nil {
		panic(err)
	}
	return g
}

// Directed reports whether edges have a direction.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddVertex appends a new vertex and returns its ID.
func (g *Graph) AddVertex() VertexID {
	g.n++
	return VertexID(g.n)
}

// AddEdge adds an edge from u to v. For undirected graphs the (u, v)
// orientation is preserved in [Graph.Edges] but adjacency is symmetric.
// Self loops and parallel edges are allowed.
// Returns ErrVertexRange if either endpoint is not a valid vertex.
func (g *Graph) AddEdge(u, v VertexID) error {
	if !g.valid(u) || !g.valid(v) {
		return ErrVertexRange
	}
	g.edges = append(g.edges, EdgeKey{From: u, To: v})
	g.out[u] = append(g.out[u], v)
	g.in[v] = append(g.in[v], u)
	if !g.directed && u != v {
		g.out[v] = append(g.out[v], u)
		g.in[u] = append(g.in[u], v)
	}
	return nil
}

// Edges returns a copy of all edges in insertion order. Per-edge arrays
// produced elsewhere (attribute resolution, trimmed endpoints) line up
// positionally with this slice.
func (g *Graph) Edges() []EdgeKey { return slices.Clone(g.edges) }

// HasEdge reports whether an edge u->v exists. For undirected graphs the
// orientation is ignored, so HasEdge(u, v) == HasEdge(v, u).
func (g *Graph) HasEdge(u, v VertexID) bool {
	return slices.Contains(g.out[u], v)
}

// OutNeighbors returns the targets of edges leaving v, one entry per edge
// (parallel edges repeat). For undirected graphs this is the full neighbor
// set. The returned slice is a read-only view; do not modify it.
func (g *Graph) OutNeighbors(v VertexID) []VertexID { return g.out[v] }

// InNeighbors returns the sources of edges entering v, one entry per edge.
// For undirected graphs this equals OutNeighbors. The returned slice is a
// read-only view; do not modify it.
func (g *Graph) InNeighbors(v VertexID) []VertexID { return g.in[v] }

// Degree returns the number of edge endpoints incident to v
// (in plus out for directed graphs, with self loops counted once per side).
func (g *Graph) Degree(v VertexID) int { return len(g.out[v]) + len(g.in[v]) }

func (g *Graph) valid(v VertexID) bool { return v >= 1 && int(v) <= g.n }
