package render

import (
	"fmt"

	"github.com/matzehuels/graphink/pkg/geometry"
	"github.com/matzehuels/graphink/pkg/graph"
)

// arrowGlyph is the arrowhead drawn at the destination end of directed
// edges. Its footprint participates in endpoint clearance so edges stop at
// the arrow tip, not under the marker.
var arrowGlyph = geometry.GlyphMarker('➤')

// Options configures scene assembly. Zero-valued attribute specs fall back
// to the theme everywhere.
type Options struct {
	Width  float64
	Height float64
	Theme  Theme
	Curved bool // route edges as beziers instead of straight lines

	Labels []string // per-vertex label text, optional

	NodeMarker geometry.Attr[geometry.Marker]
	NodeSize   geometry.Attr[float64]
	NodeColor  geometry.Attr[string]
	EdgeColor  geometry.Attr[string]
	EdgeWidth  geometry.Attr[float64]
}

// Node is one drawable vertex, in pixel space.
type Node struct {
	Center geometry.Point
	Marker geometry.Marker
	Size   float64
	Color  string
	Label  string
	Align  geometry.Alignment
}

// Edge is one drawable edge: its trimmed pixel-space path plus stroke data.
type Edge struct {
	Path  geometry.Path
	Color string
	Width float64
	Arrow bool
}

// Scene is the drawable form of a graph: everything the SVG sink needs and
// nothing it has to compute. Scenes are plain data.
type Scene struct {
	Width  float64
	Height float64
	Theme  Theme
	Nodes  []Node
	Edges  []Edge
}

// Assemble builds a scene from topology and data-space positions. It runs
// the full geometry pass: attribute resolution, marker clearances, endpoint
// trimming and label alignment. positions must hold one point per vertex in
// vertex-ID order.
func Assemble(g *graph.Graph, positions []geometry.Point, opts Options) (*Scene, error) {
	n := g.VertexCount()
	if len(positions) < n {
		return nil, geometry.ErrPositionCount
	}
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}

	theme := opts.Theme
	if theme == (Theme{}) {
		theme = DefaultTheme()
	}
	if n == 0 {
		return &Scene{Width: opts.Width, Height: opts.Height, Theme: theme}, nil
	}
	markers, err := geometry.ResolveVertex(opts.NodeMarker, g, theme.Marker())
	if err != nil {
		return nil, fmt.Errorf("resolve node markers: %w", err)
	}
	sizes, err := geometry.ResolveVertex(opts.NodeSize, g, theme.MarkerSize)
	if err != nil {
		return nil, fmt.Errorf("resolve node sizes: %w", err)
	}
	nodeColors, err := geometry.ResolveVertex(opts.NodeColor, g, theme.NodeFill)
	if err != nil {
		return nil, fmt.Errorf("resolve node colors: %w", err)
	}
	edgeColors, err := geometry.ResolveEdge(opts.EdgeColor, g, theme.EdgeColor)
	if err != nil {
		return nil, fmt.Errorf("resolve edge colors: %w", err)
	}
	edgeWidths, err := geometry.ResolveEdge(opts.EdgeWidth, g, theme.EdgeWidth)
	if err != nil {
		return nil, fmt.Errorf("resolve edge widths: %w", err)
	}

	aligns, err := geometry.ComputeAlignments(g, positions)
	if err != nil {
		return nil, err
	}

	toPixel, diag := fitTransform(positions[:n], opts.Width, opts.Height, theme.Margin)

	scene := &Scene{Width: opts.Width, Height: opts.Height, Theme: theme}

	scene.Nodes = make([]Node, n)
	for i := range scene.Nodes {
		scene.Nodes[i] = Node{
			Center: toPixel(positions[i]),
			Marker: markers[i],
			Size:   sizes[i],
			Color:  nodeColors[i],
			Label:  labelAt(opts.Labels, i),
			Align:  aligns[i],
		}
	}

	edges := g.Edges()
	scene.Edges = make([]Edge, len(edges))
	for i, e := range edges {
		src, dst := positions[e.From-1], positions[e.To-1]
		path := routeEdge(src, dst, opts.Curved, diag)

		srcTrim := geometry.Clearance(markers[e.From-1], sizes[e.From-1], arrowGlyph, 0)
		dstPartner, dstPartnerSize := arrowGlyph, 0.0
		if g.Directed() {
			dstPartnerSize = theme.ArrowSize
		}
		dstTrim := geometry.Clearance(markers[e.To-1], sizes[e.To-1], dstPartner, dstPartnerSize)

		start := geometry.SlideToward(path, path.Start(), srcTrim, toPixel)
		end := geometry.SlideToward(path, path.End(), dstTrim, toPixel)
		path = path.WithEndpoints(start, end)

		scene.Edges[i] = Edge{
			Path:  transformPath(path, toPixel),
			Color: edgeColors[i],
			Width: edgeWidths[i],
			Arrow: g.Directed(),
		}
	}

	return scene, nil
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}

// fitTransform maps the positions' bounding box into the frame, inset by
// margin on every side, flipping y so data-space "up" is screen "up". The
// two axes scale independently; the geometry layer's pixel math compensates.
// Also returns the data-space bounding-box diagonal for loop sizing.
func fitTransform(positions []geometry.Point, width, height, margin float64) (geometry.Transform, float64) {
	minX, minY := positions[0].X, positions[0].Y
	maxX, maxY := minX, minY
	for _, p := range positions[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	spanX, spanY := maxX-minX, maxY-minY
	diag := geometry.Point{X: spanX, Y: spanY}.Length()

	sx := 1.0
	if spanX > 0 {
		sx = (width - 2*margin) / spanX
	}
	sy := 1.0
	if spanY > 0 {
		sy = (height - 2*margin) / spanY
	}

	// Center degenerate axes instead of pinning them to the margin.
	offX := margin + (width-2*margin-spanX*sx)/2
	offY := margin + (height-2*margin-spanY*sy)/2

	t := func(p geometry.Point) geometry.Point {
		return geometry.Point{
			X: offX + (p.X-minX)*sx,
			Y: height - (offY + (p.Y-minY)*sy),
		}
	}
	return t, diag
}

// transformPath maps a data-space path to pixel space. The transform is
// affine, so beziers map control point by control point.
func transformPath(p geometry.Path, t geometry.Transform) geometry.Path {
	segs := p.Segments()
	out := make([]geometry.Segment, len(segs))
	for i, s := range segs {
		switch seg := s.(type) {
		case geometry.Line:
			out[i] = geometry.Line{P0: t(seg.P0), P1: t(seg.P1)}
		case geometry.Cubic:
			out[i] = geometry.Cubic{P0: t(seg.P0), P1: t(seg.P1), P2: t(seg.P2), P3: t(seg.P3)}
		default:
			out[i] = s
		}
	}
	return geometry.NewPath(out...)
}
