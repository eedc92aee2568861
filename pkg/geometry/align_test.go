package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/matzehuels/graphink/pkg/graph"
)

func TestComputeAlignmentsTwoNodeChain(t *testing.T) {
	g := graph.MustNew(2, true)
	g.AddEdge(1, 2)
	positions := []Point{{0, 0}, {1, 0}}

	got, err := ComputeAlignments(g, positions)
	if err != nil {
		t.Fatalf("ComputeAlignments: %v", err)
	}

	// Node 1's only bearing points East; the 2π gap's midpoint is West,
	// so the label anchors its right edge at the node.
	if want := (Alignment{H: HRight, V: VCenter}); got[0] != want {
		t.Errorf("node 1 alignment = %v, want %v", got[0], want)
	}
	// Node 2 mirrors: bearing West, label extends East.
	if want := (Alignment{H: HLeft, V: VCenter}); got[1] != want {
		t.Errorf("node 2 alignment = %v, want %v", got[1], want)
	}
}

func TestComputeAlignmentsIsolatedVertex(t *testing.T) {
	g := graph.MustNew(3, false)
	g.AddEdge(1, 2)
	positions := []Point{{0, 0}, {1, 0}, {5, 5}}

	got, err := ComputeAlignments(g, positions)
	if err != nil {
		t.Fatalf("ComputeAlignments: %v", err)
	}
	if got[2] != defaultAlignment {
		t.Errorf("isolated vertex alignment = %v, want %v", got[2], defaultAlignment)
	}
}

func TestComputeAlignmentsSelfLoopOnly(t *testing.T) {
	g := graph.MustNew(1, true)
	g.AddEdge(1, 1)

	got, err := ComputeAlignments(g, []Point{{2, 3}})
	if err != nil {
		t.Fatalf("ComputeAlignments: %v", err)
	}
	// A self loop has no direction; the vertex counts as isolated.
	if got[0] != defaultAlignment {
		t.Errorf("self-loop alignment = %v, want %v", got[0], defaultAlignment)
	}
}

func TestComputeAlignmentsStarTieBreak(t *testing.T) {
	// Center with leaves at 0°, 120° and 240°: all gaps are 120° wide, so
	// the first gap in sorted order wins and its midpoint is 60° (NE).
	g := graph.MustNew(4, true)
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(1, 4)

	positions := []Point{
		{0, 0},
		{1, 0},
		{math.Cos(2 * math.Pi / 3), math.Sin(2 * math.Pi / 3)},
		{math.Cos(4 * math.Pi / 3), math.Sin(4 * math.Pi / 3)},
	}

	got, err := ComputeAlignments(g, positions)
	if err != nil {
		t.Fatalf("ComputeAlignments: %v", err)
	}
	if want := (Alignment{H: HLeft, V: VBottom}); got[0] != want {
		t.Errorf("center alignment = %v, want %v (NE)", got[0], want)
	}
}

func TestComputeAlignmentsNeverCenterCenter(t *testing.T) {
	g := graph.MustNew(6, false)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 1)
	g.AddEdge(2, 5)
	g.AddEdge(5, 5)

	positions := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {3, 1}, {-1, -1}}

	got, err := ComputeAlignments(g, positions)
	if err != nil {
		t.Fatalf("ComputeAlignments: %v", err)
	}
	for i, a := range got {
		if a.H == HCenter && a.V == VCenter {
			t.Errorf("vertex %d got center-center alignment", i+1)
		}
	}
}

func TestComputeAlignmentsDeterministic(t *testing.T) {
	g := graph.MustNew(5, true)
	g.AddEdge(1, 2)
	g.AddEdge(3, 1)
	g.AddEdge(1, 4)
	g.AddEdge(5, 1)
	g.AddEdge(2, 3)

	positions := []Point{{0, 0}, {1, 0.2}, {-0.4, 1}, {-1, -0.7}, {0.3, -1}}

	first, err := ComputeAlignments(g, positions)
	if err != nil {
		t.Fatalf("ComputeAlignments: %v", err)
	}
	second, err := ComputeAlignments(g, positions)
	if err != nil {
		t.Fatalf("ComputeAlignments: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("vertex %d: %v != %v across identical runs", i+1, first[i], second[i])
		}
	}
}

func TestComputeAlignmentsPositionCount(t *testing.T) {
	g := graph.MustNew(3, true)

	_, err := ComputeAlignments(g, []Point{{0, 0}})
	if !errors.Is(err, ErrPositionCount) {
		t.Errorf("err = %v, want ErrPositionCount", err)
	}
}

func TestAlignmentForDirectionSectors(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Alignment
	}{
		{"East", 0, Alignment{H: HLeft, V: VCenter}},
		{"NorthEast", math.Pi / 4, Alignment{H: HLeft, V: VBottom}},
		{"North", math.Pi / 2, Alignment{H: HCenter, V: VBottom}},
		{"NorthWest", 3 * math.Pi / 4, Alignment{H: HRight, V: VBottom}},
		{"West", math.Pi, Alignment{H: HRight, V: VCenter}},
		{"SouthWest", 5 * math.Pi / 4, Alignment{H: HRight, V: VTop}},
		{"South", 3 * math.Pi / 2, Alignment{H: HCenter, V: VTop}},
		{"SouthEast", 7 * math.Pi / 4, Alignment{H: HLeft, V: VTop}},
		{"EastSectorLowEdge", -math.Pi / 8, Alignment{H: HLeft, V: VCenter}},
		{"WrapAround", 2*math.Pi - 0.01, Alignment{H: HLeft, V: VCenter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := alignmentForDirection(tt.angle); got != tt.want {
				t.Errorf("alignmentForDirection(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}
