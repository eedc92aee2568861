package geometry

// SlideToward returns the path endpoint nearest to ref, slid along the
// path's local tangent so that the visual gap between the returned point and
// ref is exactly pixels, regardless of axis scaling or zoom.
//
// toPixel is the data-to-pixel transform of the rendering surface. Because
// such transforms are generally scaled differently per axis (aspect-ratio
// correcting axes, for instance), the tangent is first mapped to pixel space
// by applying toPixel and subtracting the image of the origin, which strips
// the translation and isolates the linear part. The normalized pixel-space
// direction is then converted back into a data-space displacement through
// the inverse of the per-axis scale factors.
//
// A pixels value of 0 returns ref unchanged. Sliding from the path's start
// moves into the path; sliding from its end moves back along it.
func SlideToward(p Path, ref Point, pixels float64, toPixel Transform) Point {
	if p.Empty() || pixels == 0 {
		return ref
	}

	atEnd := ref.Distance(p.End()) <= ref.Distance(p.Start())
	t := 0.0
	if atEnd {
		t = 1.0
	}
	tangent := p.TangentAtEnd(t)
	if tangent.Length() == 0 {
		return ref
	}

	origin := toPixel(Point{})
	dir := toPixel(tangent).Sub(origin).Normalize()

	// Per-axis scale factors of the linear part.
	scale := toPixel(Point{X: 1, Y: 1}).Sub(origin)
	inv := Point{X: 1 / scale.X, Y: 1 / scale.Y}

	step := Point{X: pixels * dir.X * inv.X, Y: pixels * dir.Y * inv.Y}
	if atEnd {
		return ref.Sub(step)
	}
	return ref.Add(step)
}
