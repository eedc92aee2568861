package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/graphink/pkg/geometry"
)

// labelPad is the pixel gap between a marker boundary and its label anchor.
const labelPad = 3

// RenderSVG serializes a scene to SVG text. Edges are drawn first so
// markers sit on top of trimmed endpoints; labels last.
func RenderSVG(s *Scene) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", s.Theme.Background)

	arrowIDs := renderArrowDefs(&buf, s)
	for _, e := range s.Edges {
		renderEdge(&buf, e, arrowIDs)
	}
	for _, n := range s.Nodes {
		renderNode(&buf, s, n)
	}
	for _, n := range s.Nodes {
		renderLabel(&buf, s, n)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderArrowDefs emits one arrowhead marker per distinct edge color and
// returns the color-to-marker-ID table for the edge pass.
func renderArrowDefs(buf *bytes.Buffer, s *Scene) map[string]string {
	arrowIDs := make(map[string]string)
	var defs bytes.Buffer
	for _, e := range s.Edges {
		if !e.Arrow || arrowIDs[e.Color] != "" {
			continue
		}
		id := fmt.Sprintf("arrow-%d", len(arrowIDs))
		arrowIDs[e.Color] = id
		size := s.Theme.ArrowSize
		fmt.Fprintf(&defs,
			`    <marker id=%q markerWidth="%.1f" markerHeight="%.1f" refX="%.2f" refY="%.2f" orient="auto" markerUnits="userSpaceOnUse">`+"\n",
			id, size, size, size, size/2)
		fmt.Fprintf(&defs, `      <path d="M0,0 L%.1f,%.2f L0,%.1f z" fill="%s"/>`+"\n", size, size/2, size, e.Color)
		defs.WriteString("    </marker>\n")
	}
	if defs.Len() == 0 {
		return arrowIDs
	}

	buf.WriteString("  <defs>\n")
	buf.Write(defs.Bytes())
	buf.WriteString("  </defs>\n")
	return arrowIDs
}

func renderEdge(buf *bytes.Buffer, e Edge, arrowIDs map[string]string) {
	if e.Path.Empty() {
		return
	}
	marker := ""
	if e.Arrow && arrowIDs[e.Color] != "" {
		marker = fmt.Sprintf(` marker-end="url(#%s)"`, arrowIDs[e.Color])
	}
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%.2f"%s/>`+"\n",
		pathData(e.Path), e.Color, e.Width, marker)
}

// pathData converts a path to an SVG path description.
func pathData(p geometry.Path) string {
	var buf bytes.Buffer
	start := p.Start()
	fmt.Fprintf(&buf, "M%.2f,%.2f", start.X, start.Y)
	for _, seg := range p.Segments() {
		switch s := seg.(type) {
		case geometry.Line:
			fmt.Fprintf(&buf, " L%.2f,%.2f", s.P1.X, s.P1.Y)
		case geometry.Cubic:
			fmt.Fprintf(&buf, " C%.2f,%.2f %.2f,%.2f %.2f,%.2f",
				s.P1.X, s.P1.Y, s.P2.X, s.P2.Y, s.P3.X, s.P3.Y)
		}
	}
	return buf.String()
}

func renderNode(buf *bytes.Buffer, s *Scene, n Node) {
	c, r := n.Center, n.Size/2
	stroke := s.Theme.NodeStroke

	if n.Marker.Glyph != 0 {
		fmt.Fprintf(buf,
			`  <text x="%.2f" y="%.2f" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			c.X, c.Y, n.Size, n.Color, html.EscapeString(string(n.Marker.Glyph)))
		return
	}

	switch n.Marker.Shape {
	case geometry.ShapeRect:
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s"/>`+"\n",
			c.X-r, c.Y-r, n.Size, n.Size, n.Color, stroke)
	case geometry.ShapeDiamond:
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" transform="rotate(45 %.2f %.2f)" fill="%s" stroke="%s"/>`+"\n",
			c.X-r, c.Y-r, n.Size, n.Size, c.X, c.Y, n.Color, stroke)
	case geometry.ShapeUTriangle:
		fmt.Fprintf(buf, `  <polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s" stroke="%s"/>`+"\n",
			c.X, c.Y-r, c.X-r, c.Y+r, c.X+r, c.Y+r, n.Color, stroke)
	case geometry.ShapeDTriangle:
		fmt.Fprintf(buf, `  <polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s" stroke="%s"/>`+"\n",
			c.X, c.Y+r, c.X-r, c.Y-r, c.X+r, c.Y-r, n.Color, stroke)
	default:
		// Circle stands in for the remaining shapes; their clearance math
		// is exact either way, the silhouette just simplifies.
		fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s"/>`+"\n",
			c.X, c.Y, r, n.Color, stroke)
	}
}

func renderLabel(buf *bytes.Buffer, s *Scene, n Node) {
	if n.Label == "" {
		return
	}

	pad := n.Size/2 + labelPad
	x, y := n.Center.X, n.Center.Y
	anchor, baseline := "middle", "central"

	switch n.Align.H {
	case geometry.HLeft:
		x += pad
		anchor = "start"
	case geometry.HRight:
		x -= pad
		anchor = "end"
	}
	switch n.Align.V {
	case geometry.VBottom: // label bottom at anchor: text extends upward
		y -= pad
		baseline = "auto"
	case geometry.VTop: // label top at anchor: text extends downward
		y += pad
		baseline = "hanging"
	}

	fmt.Fprintf(buf,
		`  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="%s" dominant-baseline="%s">%s</text>`+"\n",
		x, y, s.Theme.FontFamily, s.Theme.FontSize, s.Theme.LabelColor, anchor, baseline, html.EscapeString(n.Label))
}
