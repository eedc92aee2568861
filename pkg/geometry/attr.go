package geometry

import (
	"errors"

	"github.com/matzehuels/graphink/pkg/graph"
)

var (
	// ErrLengthMismatch is returned when a dense attribute's length does not
	// match the element count it is resolved against. This is a programmer
	// error: dense inputs must already be index-aligned with the topology.
	ErrLengthMismatch = errors.New("geometry: dense attribute length does not match element count")

	// ErrElementKind is returned when a vertex-keyed attribute is resolved
	// against edges or vice versa.
	ErrElementKind = errors.New("geometry: attribute keyed by the wrong element kind")
)

type attrKind int

const (
	attrAbsent attrKind = iota
	attrUniform
	attrDense
	attrByVertex
	attrByEdge
)

// Attr is a per-element attribute specification: a single value applied to
// every element, a dense slice index-aligned with the topology, or a sparse
// mapping from vertex IDs or edge keys. The zero value is "absent" and
// resolves to the caller's fallback everywhere.
//
// Attr values are plain data; resolving one never modifies it.
type Attr[T any] struct {
	kind     attrKind
	single   T
	dense    []T
	byVertex map[graph.VertexID]T
	byEdge   map[graph.EdgeKey]T
	def      T
	hasDef   bool
}

// Uniform returns an attribute that applies v to every element. Because the
// value is typed, a single point-like value (e.g. a [Point]) is always one
// value, never an array of scalars.
func Uniform[T any](v T) Attr[T] {
	return Attr[T]{kind: attrUniform, single: v}
}

// Dense returns an attribute backed by an index-aligned slice. The caller is
// responsible for ordering; resolution returns the slice as-is after a
// length check.
func Dense[T any](values []T) Attr[T] {
	return Attr[T]{kind: attrDense, dense: values}
}

// ByVertex returns a sparse attribute keyed by vertex ID.
// Vertices absent from the mapping resolve to the attribute default
// (see [Attr.WithDefault]) or, failing that, the caller's fallback.
func ByVertex[T any](m map[graph.VertexID]T) Attr[T] {
	return Attr[T]{kind: attrByVertex, byVertex: m}
}

// ByEdge returns a sparse attribute keyed by edge. For undirected graphs the
// mapping may be populated in either orientation: resolution tries the
// edge's natural key first and its reversal second.
func ByEdge[T any](m map[graph.EdgeKey]T) Attr[T] {
	return Attr[T]{kind: attrByEdge, byEdge: m}
}

// WithDefault attaches a default for keys absent from a sparse mapping.
// An attached default takes precedence over the fallback passed at
// resolution time, mirroring containers that carry their own default.
func (a Attr[T]) WithDefault(v T) Attr[T] {
	a.def = v
	a.hasDef = true
	return a
}

// IsUniform reports whether the attribute is a single broadcast value (or
// absent, which broadcasts the fallback). Callers that want to skip
// per-element work can branch on this.
func (a Attr[T]) IsUniform() bool { return a.kind == attrUniform || a.kind == attrAbsent }

// ResolveVertex resolves a into a dense slice with one entry per vertex,
// in vertex-ID order. Missing sparse keys never error; they fall back to the
// attribute default or the given fallback.
func ResolveVertex[T any](a Attr[T], g *graph.Graph, fallback T) ([]T, error) {
	n := g.VertexCount()
	switch a.kind {
	case attrAbsent:
		return broadcast(fallback, n), nil
	case attrUniform:
		return broadcast(a.single, n), nil
	case attrDense:
		if len(a.dense) != n {
			return nil, ErrLengthMismatch
		}
		return a.dense, nil
	case attrByVertex:
		out := make([]T, n)
		for i := range out {
			if v, ok := a.byVertex[graph.VertexID(i+1)]; ok {
				out[i] = v
			} else {
				out[i] = a.missing(fallback)
			}
		}
		return out, nil
	default:
		return nil, ErrElementKind
	}
}

// ResolveEdge resolves a into a dense slice with one entry per edge, aligned
// with the graph's own edge enumeration order ([graph.Graph.Edges]). For
// undirected graphs a sparse mapping is consulted under the edge's natural
// key and then its reversed key, so callers may have keyed either
// orientation; directed graphs never try the reversal.
func ResolveEdge[T any](a Attr[T], g *graph.Graph, fallback T) ([]T, error) {
	edges := g.Edges()
	switch a.kind {
	case attrAbsent:
		return broadcast(fallback, len(edges)), nil
	case attrUniform:
		return broadcast(a.single, len(edges)), nil
	case attrDense:
		if len(a.dense) != len(edges) {
			return nil, ErrLengthMismatch
		}
		return a.dense, nil
	case attrByEdge:
		out := make([]T, len(edges))
		for i, e := range edges {
			if v, ok := a.byEdge[e]; ok {
				out[i] = v
			} else if v, ok := a.byEdge[e.Reversed()]; !g.Directed() && ok {
				out[i] = v
			} else {
				out[i] = a.missing(fallback)
			}
		}
		return out, nil
	default:
		return nil, ErrElementKind
	}
}

// missing picks the value for a key absent from a sparse mapping: the
// mapping's own default wins over the caller's fallback.
func (a Attr[T]) missing(fallback T) T {
	if a.hasDef {
		return a.def
	}
	return fallback
}

func broadcast[T any](v T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}
