package geometry

import "math"

// Shape names a built-in marker shape. The set is closed: adding a shape
// means extending the enum, the name table, and the radius table together,
// all checked at compile time.
type Shape int

const (
	// ShapeDefault is the generic filled marker (plain circle/rectangle/
	// arrow primitives). Its footprint matches the nominal size attribute.
	ShapeDefault Shape = iota
	ShapeCircle
	ShapeRect
	ShapeDiamond
	ShapeVLine
	ShapeHLine
	ShapeUTriangle
	ShapeDTriangle
	ShapeLTriangle
	ShapeRTriangle
	ShapeStar4
	ShapeStar5
	ShapeStar6
	ShapeStar8
	ShapeCross
	ShapeXCross
	ShapePentagon
	ShapeHexagon
	ShapeOctagon
)

var shapeNames = map[Shape]string{
	ShapeDefault:   "default",
	ShapeCircle:    "circle",
	ShapeRect:      "rect",
	ShapeDiamond:   "diamond",
	ShapeVLine:     "vline",
	ShapeHLine:     "hline",
	ShapeUTriangle: "utriangle",
	ShapeDTriangle: "dtriangle",
	ShapeLTriangle: "ltriangle",
	ShapeRTriangle: "rtriangle",
	ShapeStar4:     "star4",
	ShapeStar5:     "star5",
	ShapeStar6:     "star6",
	ShapeStar8:     "star8",
	ShapeCross:     "cross",
	ShapeXCross:    "xcross",
	ShapePentagon:  "pentagon",
	ShapeHexagon:   "hexagon",
	ShapeOctagon:   "octagon",
}

// String returns the shape's lowercase name, or "default" for unknown values.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "default"
}

// ShapeFromName returns the shape for a lowercase name as used in theme
// files. The second result reports whether the name was recognized.
func ShapeFromName(name string) (Shape, bool) {
	for s, n := range shapeNames {
		if n == name {
			return s, true
		}
	}
	return ShapeDefault, false
}

// Marker describes how a vertex is drawn: a built-in shape or a single
// character glyph. It carries no size; size is a separate attribute.
// A nonzero Glyph takes precedence over Shape.
type Marker struct {
	Shape Shape
	Glyph rune
}

// GlyphMarker returns a marker drawn as a single character.
func GlyphMarker(r rune) Marker { return Marker{Glyph: r} }

// ShapeMarker returns a marker drawn as a built-in shape.
func ShapeMarker(s Shape) Marker { return Marker{Shape: s} }

// Empirical marker footprint constants. The per-shape radii were measured
// against the shapes' rendered footprints; markerScale is the global scale
// the renderer applies to all named shapes.
const (
	markerScale = 0.75

	glyphExtentArrow   = 0.675 // '➤'
	glyphExtentGeneric = 0.705

	radiusCircle   = 0.47
	radiusTriangle = 0.485
	radiusStar     = 0.6
	radiusPolygon  = 0.5
)

// radiusRect is the circumscribing-circle radius of the inscribed square
// used for rect, diamond, vline and hline.
var radiusRect = math.Sqrt(2 * math.Pow(0.95*math.Sqrt(math.Pi)/2/2, 2))

// HalfExtent returns the marker's effective half-extent as a fraction of the
// nominal size attribute: 1.0 means the marker's bounding circle radius
// equals half the size. Unknown descriptors fall back to 1.0 rather than
// erroring.
func HalfExtent(m Marker) float64 {
	if m.Glyph != 0 {
		if m.Glyph == '➤' {
			return glyphExtentArrow
		}
		return glyphExtentGeneric
	}

	var r float64
	switch m.Shape {
	case ShapeDefault:
		return 1.0
	case ShapeCircle:
		r = radiusCircle
	case ShapeRect, ShapeDiamond, ShapeVLine, ShapeHLine:
		r = radiusRect
	case ShapeUTriangle, ShapeDTriangle, ShapeLTriangle, ShapeRTriangle:
		r = radiusTriangle
	case ShapeStar4, ShapeStar5, ShapeStar6, ShapeStar8:
		r = radiusStar
	case ShapeCross, ShapeXCross, ShapePentagon, ShapeHexagon, ShapeOctagon:
		r = radiusPolygon
	default:
		return 1.0
	}
	// Doubled so the factor is diameter-equivalent, like the glyph values.
	return 2 * markerScale * r
}

// Clearance returns the pixel distance between the centers and the touching
// boundaries of two markers: the amount an edge must be trimmed from each
// node center so it touches, but does not overlap, both endpoint markers.
// Sizes are the elements' nominal size attributes in pixels.
//
// Clearance is symmetric in its two marker/size pairs. It assumes both
// markers are circularly symmetric; strongly anisotropic markers are not
// corrected for the angle of approach.
func Clearance(m1 Marker, size1 float64, m2 Marker, size2 float64) float64 {
	return HalfExtent(m1)*size1/2 + HalfExtent(m2)*size2/2
}
