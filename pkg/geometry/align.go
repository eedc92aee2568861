package geometry

import (
	"errors"
	"math"
	"sort"

	"github.com/matzehuels/graphink/pkg/graph"
)

// ErrPositionCount is returned when the position slice does not cover every
// vertex. This is a programmer error: positions come from the layout step
// and must be complete before geometry runs.
var ErrPositionCount = errors.New("geometry: fewer positions than vertices")

// HAlign anchors a label box horizontally at its placement point.
type HAlign int

const (
	HLeft HAlign = iota
	HCenter
	HRight
)

// String returns "left", "center" or "right".
func (h HAlign) String() string {
	switch h {
	case HLeft:
		return "left"
	case HRight:
		return "right"
	default:
		return "center"
	}
}

// VAlign anchors a label box vertically at its placement point.
type VAlign int

const (
	VTop VAlign = iota
	VCenter
	VBottom
)

// String returns "top", "center" or "bottom".
func (v VAlign) String() string {
	switch v {
	case VTop:
		return "top"
	case VBottom:
		return "bottom"
	default:
		return "center"
	}
}

// Alignment names which corner, edge midpoint or center of a label box
// coincides with the anchor point; the label extends away from it. The
// aligner only ever emits the 8 non-center-center combinations.
type Alignment struct {
	H HAlign
	V VAlign
}

// defaultAlignment is used for vertices with no usable bearings.
var defaultAlignment = Alignment{H: HRight, V: VBottom}

// sectorAlignments maps the 8 placement directions, in counterclockwise
// order starting at East, to the alignment whose anchor corner sits on the
// opposite side of the label. Placing toward East anchors the label's left
// edge at the vertex so the text extends eastward, and so on around.
var sectorAlignments = [8]Alignment{
	{H: HLeft, V: VCenter},   // E
	{H: HLeft, V: VBottom},   // NE
	{H: HCenter, V: VBottom}, // N
	{H: HRight, V: VBottom},  // NW
	{H: HRight, V: VCenter},  // W
	{H: HRight, V: VTop},     // SW
	{H: HCenter, V: VTop},    // S
	{H: HLeft, V: VTop},      // SE
}

// ComputeAlignments chooses a label anchor for every vertex so the label
// sits in the widest angular gap between the vertex's incident edges.
//
// For each vertex the bearings toward all in- and out-neighbors are
// collected (a neighbor connected both ways contributes one bearing per
// direction), sorted, and the widest cyclic gap located; the gap's midpoint
// is mapped to one of 8 anchor directions. Self loops yield a degenerate
// zero-length bearing and are skipped. Vertices with no usable bearings get
// the default (right, bottom) alignment. Ties on gap width keep the first
// gap in sorted order, so the result is deterministic.
//
// positions must hold at least one entry per vertex, in vertex-ID order;
// otherwise ErrPositionCount is returned.
func ComputeAlignments(g *graph.Graph, positions []Point) ([]Alignment, error) {
	n := g.VertexCount()
	if len(positions) < n {
		return nil, ErrPositionCount
	}

	out := make([]Alignment, n)
	angles := make([]float64, 0, 8)
	for i := range out {
		v := graph.VertexID(i + 1)
		angles = angles[:0]
		angles = appendBearings(angles, positions[i], g.InNeighbors(v), positions)
		angles = appendBearings(angles, positions[i], g.OutNeighbors(v), positions)
		out[i] = alignInWidestGap(angles)
	}
	return out, nil
}

func appendBearings(angles []float64, at Point, neighbors []graph.VertexID, positions []Point) []float64 {
	for _, u := range neighbors {
		d := positions[u-1].Sub(at)
		if d.X == 0 && d.Y == 0 {
			continue // self loop or coincident vertex: no direction
		}
		angles = append(angles, d.Angle())
	}
	return angles
}

// alignInWidestGap sorts the bearings and returns the alignment for the
// midpoint of the widest cyclic gap between consecutive bearings.
func alignInWidestGap(angles []float64) Alignment {
	if len(angles) == 0 {
		return defaultAlignment
	}
	sort.Float64s(angles)

	bestGap := -1.0
	bestMid := 0.0
	for i, a := range angles {
		next := angles[(i+1)%len(angles)]
		if i == len(angles)-1 {
			next = angles[0] + 2*math.Pi
		}
		if gap := next - a; gap > bestGap {
			bestGap = gap
			bestMid = a + gap/2
		}
	}
	return alignmentForDirection(bestMid)
}

// alignmentForDirection maps an angle to one of 8 alignments via equal
// 45°-wide sectors centered on the cardinal and ordinal directions; East
// spans [-π/8, π/8).
func alignmentForDirection(angle float64) Alignment {
	sector := int(math.Floor(angle/(math.Pi/4) + 0.5))
	return sectorAlignments[((sector%8)+8)%8]
}
