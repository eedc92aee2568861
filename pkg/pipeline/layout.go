package pipeline

import (
	"context"

	"github.com/matzehuels/graphink/pkg/geometry"
	"github.com/matzehuels/graphink/pkg/graph"
	"github.com/matzehuels/graphink/pkg/layout"
)

// GenerateLayout computes positions for every vertex and packages them in
// interchange form, ready for serialization or rendering. This is the
// unified entry point for all engines.
func GenerateLayout(ctx context.Context, g *graph.Graph, opts Options) (graph.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return graph.Layout{}, err
	}

	layouter := opts.Layouter
	if layouter == nil {
		layouter = computePositions(opts)
	}

	points, err := layouter(ctx, g, opts.Engine)
	if err != nil {
		return graph.Layout{}, err
	}

	lay := graph.Layout{
		Engine:    opts.Engine,
		Graph:     graph.FromGraph(g),
		Positions: make([]graph.Position, len(points)),
	}
	for i, p := range points {
		lay.Positions[i] = graph.Position{X: p.X, Y: p.Y}
	}
	return lay, nil
}

// computePositions builds the default Layouter: static providers run
// in-process, everything else goes through Graphviz.
func computePositions(opts Options) Layouter {
	return func(ctx context.Context, g *graph.Graph, engine string) ([]geometry.Point, error) {
		switch engine {
		case EngineCircular:
			return layout.Circular(g.VertexCount()), nil
		case EngineGrid:
			return layout.Grid(g.VertexCount(), opts.Columns), nil
		default:
			e, err := layout.ParseEngine(engine)
			if err != nil {
				return nil, err
			}
			return layout.Graphviz(ctx, g, e)
		}
	}
}
