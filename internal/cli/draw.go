package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphink/pkg/graph"
	"github.com/matzehuels/graphink/pkg/pipeline"
)

// drawCommand creates the draw command, which renders a precomputed
// layout.json without recomputing positions.
func (c *CLI) drawCommand() *cobra.Command {
	var output string
	opts := pipeline.Options{}
	opts.SetRenderDefaults()

	cmd := &cobra.Command{
		Use:   "draw [layout.json]",
		Short: "Render a precomputed layout to SVG",
		Long: `Render a precomputed layout to SVG.

The draw command takes a layout.json file (produced by 'layout' or
'render -f json') and draws it. The layout document is self-contained, so
the original graph file is not needed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDraw(cmd, args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.svg)")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "canvas height in pixels")
	cmd.Flags().BoolVar(&opts.Curved, "curved", false, "route edges as curves instead of straight lines")
	cmd.Flags().StringVar(&opts.ThemePath, "theme", "", "TOML theme file (default: built-in theme)")

	return cmd
}

func (c *CLI) runDraw(cmd *cobra.Command, input string, opts pipeline.Options, output string) error {
	logger := loggerFromContext(cmd.Context())

	lay, err := graph.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	logger.Debug("loaded layout",
		"engine", lay.Engine,
		"vertices", lay.Graph.Vertices,
		"positions", len(lay.Positions))

	prog := newProgress(c.Logger)
	opts.Formats = []string{pipeline.FormatSVG}

	artifacts, err := pipeline.RenderFromLayout(*lay, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	path := outputPath(output, input, "svg")
	if err := os.WriteFile(path, artifacts[pipeline.FormatSVG], 0644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}

	prog.done("Rendered " + path)
	printSuccess("Draw complete")
	printFile(path)

	return nil
}
