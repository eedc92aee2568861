package layout

import (
	"math"

	"github.com/matzehuels/graphink/pkg/geometry"
)

// Circular places n vertices evenly on the unit circle, starting at angle 0
// and proceeding counterclockwise. A single vertex sits at the origin.
func Circular(n int) []geometry.Point {
	if n == 1 {
		return []geometry.Point{{}}
	}
	positions := make([]geometry.Point, n)
	for i := range positions {
		a := 2 * math.Pi * float64(i) / float64(n)
		positions[i] = geometry.Point{X: math.Cos(a), Y: math.Sin(a)}
	}
	return positions
}

// Grid places n vertices on a unit-spaced grid with the given number of
// columns (at least 1), row by row, y growing upward.
func Grid(n, cols int) []geometry.Point {
	if cols < 1 {
		cols = 1
	}
	positions := make([]geometry.Point, n)
	for i := range positions {
		positions[i] = geometry.Point{
			X: float64(i % cols),
			Y: -float64(i / cols),
		}
	}
	return positions
}
