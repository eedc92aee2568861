package layout

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphink/pkg/geometry"
	"github.com/matzehuels/graphink/pkg/graph"
)

// Engine names a Graphviz layout algorithm.
type Engine string

const (
	EngineDot   Engine = "dot"   // hierarchical, good for DAGs
	EngineNeato Engine = "neato" // spring model
	EngineFDP   Engine = "fdp"   // force-directed spring model
	EngineCirco Engine = "circo" // circular
	EngineTwopi Engine = "twopi" // radial
)

// Engines lists the supported engine names in display order.
func Engines() []Engine {
	return []Engine{EngineDot, EngineNeato, EngineFDP, EngineCirco, EngineTwopi}
}

// ErrUnknownEngine is returned by [ParseEngine] for names Graphviz does not
// provide.
var ErrUnknownEngine = errors.New("layout: unknown engine")

// ParseEngine validates an engine name from user input.
func ParseEngine(name string) (Engine, error) {
	for _, e := range Engines() {
		if string(e) == name {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Graphviz computes positions for g using the given engine. The graph is
// serialized to DOT, laid out by Graphviz, and the positions are read back
// from its plain-text output. Returned points are in Graphviz data space
// (y growing upward), one per vertex in vertex-ID order.
func Graphviz(ctx context.Context, g *graph.Graph, engine Engine) ([]geometry.Point, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(engine))

	parsed, err := graphviz.ParseBytes([]byte(ToDOT(g)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.Format("plain"), &buf); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return parsePlain(buf.Bytes(), g.VertexCount())
}

// ToDOT converts a graph to Graphviz DOT. Vertices are named by their
// numeric IDs; output is stable for identical graphs.
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer
	op := "--"
	if g.Directed() {
		buf.WriteString("digraph G {\n")
		op = "->"
	} else {
		buf.WriteString("graph G {\n")
	}

	for v := 1; v <= g.VertexCount(); v++ {
		fmt.Fprintf(&buf, "  %d;\n", v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d %s %d;\n", e.From, op, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// parsePlain extracts node positions from Graphviz "plain" output, which is
// line oriented: "node NAME X Y WIDTH HEIGHT ..." with a closing "stop".
func parsePlain(data []byte, n int) ([]geometry.Point, error) {
	positions := make([]geometry.Point, n)
	seen := make([]bool, n)

	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] != "node" {
			continue
		}
		id, err := strconv.Atoi(strings.Trim(fields[1], `"`))
		if err != nil || id < 1 || id > n {
			return nil, fmt.Errorf("layout: unexpected node %q in engine output", fields[1])
		}
		x, errX := strconv.ParseFloat(fields[2], 64)
		y, errY := strconv.ParseFloat(fields[3], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("layout: bad position for node %d: %q", id, line)
		}
		positions[id-1] = geometry.Point{X: x, Y: y}
		seen[id-1] = true
	}

	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("layout: engine output missing node %d", i+1)
		}
	}
	return positions, nil
}
