package graph

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	if _, err := New(-1, true); !errors.Is(err, ErrVertexCount) {
		t.Errorf("New(-1) err = %v, want ErrVertexCount", err)
	}

	g, err := New(3, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.VertexCount() != 3 || g.EdgeCount() != 0 {
		t.Errorf("counts = %d/%d, want 3/0", g.VertexCount(), g.EdgeCount())
	}
}

func TestAddEdgeRange(t *testing.T) {
	g := MustNew(2, true)

	tests := []struct {
		name string
		u, v VertexID
		ok   bool
	}{
		{"Valid", 1, 2, true},
		{"SelfLoop", 2, 2, true},
		{"ZeroSource", 0, 1, false},
		{"TargetTooLarge", 1, 3, false},
		{"NegativeTarget", 1, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.AddEdge(tt.u, tt.v)
			if tt.ok && err != nil {
				t.Errorf("AddEdge(%d,%d) = %v, want nil", tt.u, tt.v, err)
			}
			if !tt.ok && !errors.Is(err, ErrVertexRange) {
				t.Errorf("AddEdge(%d,%d) = %v, want ErrVertexRange", tt.u, tt.v, err)
			}
		})
	}
}

func TestEdgesInsertionOrder(t *testing.T) {
	g := MustNew(3, true)
	g.AddEdge(3, 1)
	g.AddEdge(1, 2)
	g.AddEdge(3, 1) // parallel edge

	want := []EdgeKey{{3, 1}, {1, 2}, {3, 1}}
	got := g.Edges()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("edge %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHasEdgeDirected(t *testing.T) {
	g := MustNew(2, true)
	g.AddEdge(1, 2)

	if !g.HasEdge(1, 2) {
		t.Error("HasEdge(1,2) should be true")
	}
	if g.HasEdge(2, 1) {
		t.Error("HasEdge(2,1) should be false for a directed graph")
	}
}

func TestHasEdgeUndirected(t *testing.T) {
	g := MustNew(2, false)
	g.AddEdge(1, 2)

	if !g.HasEdge(1, 2) || !g.HasEdge(2, 1) {
		t.Error("undirected HasEdge must ignore orientation")
	}
}

func TestNeighbors(t *testing.T) {
	g := MustNew(3, true)
	g.AddEdge(1, 2)
	g.AddEdge(3, 1)
	g.AddEdge(1, 1)

	if got := g.OutNeighbors(1); len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Errorf("OutNeighbors(1) = %v, want [2 1]", got)
	}
	if got := g.InNeighbors(1); len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Errorf("InNeighbors(1) = %v, want [3 1]", got)
	}
	if got := g.Degree(2); got != 1 {
		t.Errorf("Degree(2) = %d, want 1", got)
	}
}

func TestNeighborsUndirectedSymmetric(t *testing.T) {
	g := MustNew(2, false)
	g.AddEdge(1, 2)

	if got := g.OutNeighbors(2); len(got) != 1 || got[0] != 1 {
		t.Errorf("OutNeighbors(2) = %v, want [1]", got)
	}
	if got := g.InNeighbors(1); len(got) != 1 || got[0] != 2 {
		t.Errorf("InNeighbors(1) = %v, want [2]", got)
	}
}

func TestAddVertex(t *testing.T) {
	g := MustNew(1, true)
	id := g.AddVertex()
	if id != 2 || g.VertexCount() != 2 {
		t.Errorf("AddVertex = %d (count %d), want 2 (count 2)", id, g.VertexCount())
	}
	if err := g.AddEdge(1, id); err != nil {
		t.Errorf("AddEdge to new vertex: %v", err)
	}
}

func TestEdgeKeyReversed(t *testing.T) {
	e := EdgeKey{From: 1, To: 2}
	if e.Reversed() != (EdgeKey{From: 2, To: 1}) {
		t.Errorf("Reversed = %v", e.Reversed())
	}
}
