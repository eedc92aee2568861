package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Interchange Types
// =============================================================================

// Document is the JSON shape of a graph (graph.json).
type Document struct {
	Directed bool     `json:"directed" bson:"directed"`
	Vertices int      `json:"vertices" bson:"vertices"`
	Edges    []Link   `json:"edges,omitempty" bson:"edges,omitempty"`
	Labels   []string `json:"labels,omitempty" bson:"labels,omitempty"`
}

// Link is one edge in a [Document]. Endpoints are 1-based vertex IDs.
type Link struct {
	From int `json:"from" bson:"from"`
	To   int `json:"to" bson:"to"`
}

// Position is a 2D data-space coordinate in a [Layout].
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Layout is the JSON shape of a computed layout (layout.json): the graph it
// was computed for plus one position per vertex, in vertex-ID order.
type Layout struct {
	Engine    string     `json:"engine,omitempty" bson:"engine,omitempty"`
	Graph     Document   `json:"graph" bson:"graph"`
	Positions []Position `json:"positions" bson:"positions"`
}

// =============================================================================
// Graph Serialization API
// =============================================================================

// FromGraph converts a Graph to its interchange form.
// Edges appear in the graph's insertion order.
func FromGraph(g *Graph) Document {
	doc := Document{
		Directed: g.Directed(),
		Vertices: g.VertexCount(),
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Link{From: int(e.From), To: int(e.To)})
	}
	return doc
}

// ToGraph builds a Graph from its interchange form.
// Returns validation errors for negative vertex counts or edges that
// reference vertices outside 1..Vertices.
func ToGraph(doc Document) (*Graph, error) {
	g, err := New(doc.Vertices, doc.Directed)
	if err != nil {
		return nil, err
	}
	for i, l := range doc.Edges {
		if err := g.AddEdge(VertexID(l.From), VertexID(l.To)); err != nil {
			return nil, fmt.Errorf("edge %d (%d->%d): %w", i, l.From, l.To, err)
		}
	}
	return g, nil
}

// MarshalGraph converts a Graph to JSON bytes.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, FromGraph(g)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes a Graph as JSON to an io.Writer.
func WriteGraph(g *Graph, w io.Writer) error {
	return writeJSON(w, FromGraph(g))
}

// WriteGraphFile writes a Graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// ReadGraph decodes a JSON graph from an io.Reader.
func ReadGraph(r io.Reader) (*Graph, *Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}
	g, err := ToGraph(doc)
	if err != nil {
		return nil, nil, err
	}
	return g, &doc, nil
}

// ReadGraphFile reads a JSON file and returns the decoded Graph along with
// the raw document (which may carry labels the Graph itself does not model).
func ReadGraphFile(path string) (*Graph, *Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout converts a Layout to JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalLayout decodes a Layout from JSON bytes.
// Returns an error if the position count does not cover the vertex count.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("decode: %w", err)
	}
	if len(l.Positions) < l.Graph.Vertices {
		return Layout{}, fmt.Errorf("layout has %d positions for %d vertices", len(l.Positions), l.Graph.Vertices)
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeJSON(f, l)
}

// ReadLayoutFile reads a layout.json file.
// Returns an error if the position count does not cover the vertex count.
func ReadLayoutFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var l Layout
	if err := json.NewDecoder(f).Decode(&l); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(l.Positions) < l.Graph.Vertices {
		return nil, fmt.Errorf("layout has %d positions for %d vertices", len(l.Positions), l.Graph.Vertices)
	}
	return &l, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
