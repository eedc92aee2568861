package pipeline

import (
	"fmt"

	"github.com/matzehuels/graphink/pkg/geometry"
	"github.com/matzehuels/graphink/pkg/graph"
	"github.com/matzehuels/graphink/pkg/render"
)

// RenderFromLayout generates the requested output formats from a computed
// layout. The layout document is self-contained, so this stage never needs
// the original input file.
func RenderFromLayout(lay graph.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatSVG:
			data, err = renderSVG(lay, opts)
		case FormatJSON:
			data, err = graph.MarshalLayout(lay)
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderSVG(lay graph.Layout, opts Options) ([]byte, error) {
	g, err := graph.ToGraph(lay.Graph)
	if err != nil {
		return nil, err
	}

	theme, err := render.LoadTheme(opts.ThemePath)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	positions := make([]geometry.Point, len(lay.Positions))
	for i, p := range lay.Positions {
		positions[i] = geometry.Point{X: p.X, Y: p.Y}
	}

	scene, err := render.Assemble(g, positions, render.Options{
		Width:  opts.Width,
		Height: opts.Height,
		Theme:  theme,
		Curved: opts.Curved,
		Labels: lay.Graph.Labels,
	})
	if err != nil {
		return nil, err
	}
	return render.RenderSVG(scene), nil
}
