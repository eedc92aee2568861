package geometry

// Segment is one piece of an edge path. Parametric positions run from 0
// (segment start) to 1 (segment end).
type Segment interface {
	// Eval returns the point at parametric position t.
	Eval(t float64) Point
	// Tangent returns the (unnormalized) derivative at parametric position t.
	Tangent(t float64) Point
}

// Line is a straight segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// Eval returns the point at parametric position t.
func (l Line) Eval(t float64) Point {
	return Point{l.P0.X + t*(l.P1.X-l.P0.X), l.P0.Y + t*(l.P1.Y-l.P0.Y)}
}

// Tangent returns the segment direction; it is constant along a line.
func (l Line) Tangent(float64) Point { return l.P1.Sub(l.P0) }

// Cubic is a cubic bezier segment with control points P0..P3.
// P0 is the start, P3 the end.
type Cubic struct {
	P0, P1, P2, P3 Point
}

// Eval returns the point at parametric position t.
func (c Cubic) Eval(t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	return Point{
		X: mt2*mt*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t2*t*c.P3.X,
		Y: mt2*mt*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// Tangent returns the derivative at parametric position t. The derivative of
// a cubic is the quadratic with control points 3(P1-P0), 3(P2-P1), 3(P3-P2).
func (c Cubic) Tangent(t float64) Point {
	d0 := c.P1.Sub(c.P0).Mul(3)
	d1 := c.P2.Sub(c.P1).Mul(3)
	d2 := c.P3.Sub(c.P2).Mul(3)
	mt := 1 - t
	return Point{
		X: mt*mt*d0.X + 2*mt*t*d1.X + t*t*d2.X,
		Y: mt*mt*d0.Y + 2*mt*t*d1.Y + t*t*d2.Y,
	}
}

// Path is an ordered sequence of segments forming one edge's geometry.
// Segments are assumed contiguous: each segment starts where the previous
// one ends. An empty path is valid and has no extent.
type Path struct {
	segments []Segment
}

// NewPath builds a path from segments in drawing order.
func NewPath(segments ...Segment) Path { return Path{segments: segments} }

// StraightPath returns a single-segment path from a to b.
func StraightPath(a, b Point) Path { return NewPath(Line{P0: a, P1: b}) }

// Empty reports whether the path has no segments.
func (p Path) Empty() bool { return len(p.segments) == 0 }

// Segments returns the path's segments in drawing order.
// The returned slice is a read-only view; do not modify it.
func (p Path) Segments() []Segment { return p.segments }

// Start returns the path's first point. Empty paths return the zero point.
func (p Path) Start() Point {
	if p.Empty() {
		return Point{}
	}
	return p.segments[0].Eval(0)
}

// End returns the path's last point. Empty paths return the zero point.
func (p Path) End() Point {
	if p.Empty() {
		return Point{}
	}
	return p.segments[len(p.segments)-1].Eval(1)
}

// TangentAtEnd returns the derivative at one of the path's two endpoints:
// t = 0 evaluates the first segment at its start, t = 1 the last segment at
// its end. Degenerate (zero-length) tangents fall back to the chord from
// start to end, which still points the right way for collapsed control
// points.
func (p Path) TangentAtEnd(t float64) Point {
	if p.Empty() {
		return Point{}
	}
	var d Point
	if t < 0.5 {
		d = p.segments[0].Tangent(0)
	} else {
		d = p.segments[len(p.segments)-1].Tangent(1)
	}
	if d.Length() == 0 {
		d = p.End().Sub(p.Start())
	}
	return d
}

// WithEndpoints returns a copy of the path whose start and end points are
// replaced. Interior control points and interior segments are untouched, so
// the local tangent directions are preserved. Used after endpoint trimming.
func (p Path) WithEndpoints(start, end Point) Path {
	if p.Empty() {
		return p
	}
	segs := make([]Segment, len(p.segments))
	copy(segs, p.segments)
	segs[0] = replacePoint(segs[0], start, true)
	segs[len(segs)-1] = replacePoint(segs[len(segs)-1], end, false)
	return Path{segments: segs}
}

func replacePoint(s Segment, pt Point, atStart bool) Segment {
	switch seg := s.(type) {
	case Line:
		if atStart {
			seg.P0 = pt
		} else {
			seg.P1 = pt
		}
		return seg
	case Cubic:
		if atStart {
			seg.P0 = pt
		} else {
			seg.P3 = pt
		}
		return seg
	default:
		return s
	}
}
