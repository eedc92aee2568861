package geometry

import "math"

// Point is a 2D coordinate or displacement. It doubles as a vector type;
// operations never distinguish the two.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Length returns the Euclidean norm of p.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }

// Normalize returns p scaled to unit length.
// The zero vector is returned unchanged.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return Point{p.X / l, p.Y / l}
}

// Angle returns the bearing of p in radians, normalized to [0, 2π).
func (p Point) Angle() float64 {
	a := math.Atan2(p.Y, p.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Transform maps a data-space point to pixel space. Transforms are treated
// as affine but need not be uniform: per-axis scale factors may differ, e.g.
// when axes correct for aspect ratio or zoom.
type Transform func(Point) Point
