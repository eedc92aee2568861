package geometry

import (
	"errors"
	"testing"

	"github.com/matzehuels/graphink/pkg/graph"
)

func TestResolveVertex(t *testing.T) {
	g := graph.MustNew(3, true)

	tests := []struct {
		name     string
		attr     Attr[float64]
		fallback float64
		want     []float64
	}{
		{
			name:     "Absent",
			attr:     Attr[float64]{},
			fallback: 7,
			want:     []float64{7, 7, 7},
		},
		{
			name:     "Uniform",
			attr:     Uniform(2.5),
			fallback: 7,
			want:     []float64{2.5, 2.5, 2.5},
		},
		{
			name:     "Dense",
			attr:     Dense([]float64{1, 2, 3}),
			fallback: 7,
			want:     []float64{1, 2, 3},
		},
		{
			name:     "SparseWithFallback",
			attr:     ByVertex(map[graph.VertexID]float64{1: 10, 3: 30}),
			fallback: 7,
			want:     []float64{10, 7, 30},
		},
		{
			name:     "SparseDefaultBeatsFallback",
			attr:     ByVertex(map[graph.VertexID]float64{2: 20}).WithDefault(99),
			fallback: 7,
			want:     []float64{99, 20, 99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveVertex(tt.attr, g, tt.fallback)
			if err != nil {
				t.Fatalf("ResolveVertex: %v", err)
			}
			if len(got) != g.VertexCount() {
				t.Fatalf("len = %d, want %d", len(got), g.VertexCount())
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolveVertexDenseIsIdentity(t *testing.T) {
	g := graph.MustNew(2, false)
	in := []float64{4, 5}

	got, err := ResolveVertex(Dense(in), g, 0)
	if err != nil {
		t.Fatalf("ResolveVertex: %v", err)
	}
	if &got[0] != &in[0] {
		t.Error("dense input should be returned as-is, not copied")
	}
}

func TestResolveVertexLengthMismatch(t *testing.T) {
	g := graph.MustNew(3, true)

	_, err := ResolveVertex(Dense([]float64{1, 2}), g, 0)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestResolveVertexWrongKind(t *testing.T) {
	g := graph.MustNew(2, true)

	_, err := ResolveVertex(ByEdge(map[graph.EdgeKey]string{}), g, "")
	if !errors.Is(err, ErrElementKind) {
		t.Errorf("err = %v, want ErrElementKind", err)
	}
}

func TestResolveEdgeUndirectedReversedKey(t *testing.T) {
	g := graph.MustNew(3, false)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 1)

	// Keys populated in mixed orientations, as a user might.
	attr := ByEdge(map[graph.EdgeKey]string{
		{From: 1, To: 2}: "natural",
		{From: 3, To: 2}: "reversed",
	})

	got, err := ResolveEdge(attr, g, "missing")
	if err != nil {
		t.Fatalf("ResolveEdge: %v", err)
	}
	want := []string{"natural", "reversed", "missing"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolveEdgeDirectedNoReversal(t *testing.T) {
	g := graph.MustNew(2, true)
	g.AddEdge(1, 2)

	attr := ByEdge(map[graph.EdgeKey]string{
		{From: 2, To: 1}: "wrong way",
	})

	got, err := ResolveEdge(attr, g, "fallback")
	if err != nil {
		t.Fatalf("ResolveEdge: %v", err)
	}
	if got[0] != "fallback" {
		t.Errorf("directed resolution used the reversed key: got %q", got[0])
	}
}

func TestResolveEdgeOrderMatchesEnumeration(t *testing.T) {
	g := graph.MustNew(4, true)
	g.AddEdge(2, 1)
	g.AddEdge(4, 3)
	g.AddEdge(1, 4)

	m := make(map[graph.EdgeKey]int)
	for i, e := range g.Edges() {
		m[e] = i
	}

	got, err := ResolveEdge(ByEdge(m), g, -1)
	if err != nil {
		t.Fatalf("ResolveEdge: %v", err)
	}
	for i, v := range got {
		if v != i {
			t.Errorf("got[%d] = %d, want %d (order must match Edges())", i, v, i)
		}
	}
}

func TestIsUniform(t *testing.T) {
	if !Uniform(1.0).IsUniform() {
		t.Error("Uniform should report IsUniform")
	}
	if !(Attr[float64]{}).IsUniform() {
		t.Error("absent attr should report IsUniform")
	}
	if Dense([]float64{1}).IsUniform() {
		t.Error("dense attr should not report IsUniform")
	}
}
