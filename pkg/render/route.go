package render

import "github.com/matzehuels/graphink/pkg/geometry"

const (
	// curveBow is the perpendicular offset of a curved edge's control
	// points, as a fraction of the edge length.
	curveBow = 0.2
	// loopExtent is the reach of a self loop, as a fraction of the layout's
	// bounding-box diagonal.
	loopExtent = 0.075
)

// routeEdge produces the data-space path for one edge. Straight edges are
// single line segments; curved edges bow out perpendicular to the chord;
// self loops become a small bezier loop above the vertex. diag is the
// layout bounding-box diagonal, used to size loops.
func routeEdge(a, b geometry.Point, curved bool, diag float64) geometry.Path {
	if a == b {
		return routeLoop(a, diag)
	}
	if !curved {
		return geometry.StraightPath(a, b)
	}
	d := b.Sub(a)
	n := geometry.Point{X: -d.Y, Y: d.X}.Normalize().Mul(d.Length() * curveBow)
	c1 := a.Add(d.Mul(1.0 / 3)).Add(n)
	c2 := a.Add(d.Mul(2.0 / 3)).Add(n)
	return geometry.NewPath(geometry.Cubic{P0: a, P1: c1, P2: c2, P3: b})
}

func routeLoop(p geometry.Point, diag float64) geometry.Path {
	r := diag * loopExtent
	if r == 0 {
		r = 1 // single-vertex layouts have no extent to derive from
	}
	c1 := p.Add(geometry.Point{X: r, Y: 2 * r})
	c2 := p.Add(geometry.Point{X: -r, Y: 2 * r})
	return geometry.NewPath(geometry.Cubic{P0: p, P1: c1, P2: c2, P3: p})
}
