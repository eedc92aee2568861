package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/graphink/pkg/graph"
)

func TestToDOT(t *testing.T) {
	tests := []struct {
		name  string
		build func() *graph.Graph
		want  string
	}{
		{
			name: "Directed",
			build: func() *graph.Graph {
				g := graph.MustNew(2, true)
				g.AddEdge(1, 2)
				return g
			},
			want: "digraph G {\n  1;\n  2;\n  1 -> 2;\n}\n",
		},
		{
			name: "Undirected",
			build: func() *graph.Graph {
				g := graph.MustNew(2, false)
				g.AddEdge(2, 1)
				return g
			},
			want: "graph G {\n  1;\n  2;\n  2 -- 1;\n}\n",
		},
		{
			name:  "NoEdges",
			build: func() *graph.Graph { return graph.MustNew(1, true) },
			want:  "digraph G {\n  1;\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToDOT(tt.build()); got != tt.want {
				t.Errorf("ToDOT = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToDOTStable(t *testing.T) {
	g := graph.MustNew(4, true)
	g.AddEdge(4, 2)
	g.AddEdge(1, 3)

	first := ToDOT(g)
	for i := 0; i < 5; i++ {
		if got := ToDOT(g); got != first {
			t.Fatal("ToDOT output should be identical across calls")
		}
	}
}

func TestParsePlain(t *testing.T) {
	out := strings.Join([]string{
		"graph 1 2.25 3.5",
		"node 1 0.375 2.875 0.75 0.5 1 solid ellipse black lightgrey",
		`node "2" 1.875 0.25 0.75 0.5 2 solid ellipse black lightgrey`,
		"edge 1 2 4 0.375 2.6 0.4 1.9 1.2 1.0 1.875 0.45 solid black",
		"stop",
	}, "\n")

	got, err := parsePlain([]byte(out), 2)
	if err != nil {
		t.Fatalf("parsePlain: %v", err)
	}
	if got[0].X != 0.375 || got[0].Y != 2.875 {
		t.Errorf("node 1 = %v", got[0])
	}
	if got[1].X != 1.875 || got[1].Y != 0.25 {
		t.Errorf("node 2 = %v", got[1])
	}
}

func TestParsePlainErrors(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"MissingNode", "graph 1 1 1\nnode 1 0 0 1 1\nstop"},
		{"UnknownNode", "node 7 0 0 1 1\nstop"},
		{"BadCoordinate", "node 1 zero 0 1 1\nnode 2 0 0 1 1\nstop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parsePlain([]byte(tt.out), 2); err == nil {
				t.Error("parsePlain should fail")
			}
		})
	}
}

func TestParseEngine(t *testing.T) {
	if e, err := ParseEngine("neato"); err != nil || e != EngineNeato {
		t.Errorf("ParseEngine(neato) = %v, %v", e, err)
	}
	if _, err := ParseEngine("sugiyama"); err == nil {
		t.Error("ParseEngine should reject unknown engines")
	}
}

func TestCircular(t *testing.T) {
	got := Circular(4)
	if len(got) != 4 {
		t.Fatalf("len = %d", len(got))
	}
	for i, p := range got {
		if r := p.Length(); math.Abs(r-1) > 1e-12 {
			t.Errorf("vertex %d radius = %v, want 1", i+1, r)
		}
	}
	// First vertex at angle 0, second a quarter turn counterclockwise.
	if math.Abs(got[0].X-1) > 1e-12 || math.Abs(got[0].Y) > 1e-12 {
		t.Errorf("vertex 1 = %v, want (1,0)", got[0])
	}
	if math.Abs(got[1].X) > 1e-12 || math.Abs(got[1].Y-1) > 1e-12 {
		t.Errorf("vertex 2 = %v, want (0,1)", got[1])
	}

	if single := Circular(1); single[0].Length() != 0 {
		t.Errorf("single vertex = %v, want origin", single[0])
	}
}

func TestGrid(t *testing.T) {
	got := Grid(5, 2)
	want := [][2]float64{{0, 0}, {1, 0}, {0, -1}, {1, -1}, {0, -2}}
	for i, w := range want {
		if got[i].X != w[0] || got[i].Y != w[1] {
			t.Errorf("vertex %d = %v, want %v", i+1, got[i], w)
		}
	}

	// Degenerate column count clamps to 1.
	if got := Grid(2, 0); got[1].Y != -1 {
		t.Errorf("cols=0 should clamp: %v", got)
	}
}
