package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphink/pkg/pipeline"
)

// renderCommand creates the render command, which runs the complete
// load → layout → render pipeline.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Lay out and render a graph to SVG",
		Long: `Lay out and render a graph to SVG.

The render command reads a graph.json file (use "-" for stdin), computes
vertex positions with the selected engine, and draws the result. Layouts and
artifacts are cached locally, keyed by content, so re-rendering an unchanged
graph is instant.

Formats:
  svg   the rendered diagram
  json  the computed layout, reusable via 'graphink draw'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			opts.Formats = parseFormats(formatsStr)
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute the layout even if cached")

	cmd.Flags().StringVarP(&opts.Engine, "engine", "e", opts.Engine, "layout engine: dot, neato, fdp, circo, twopi, circular, grid")
	cmd.Flags().IntVar(&opts.Columns, "columns", 0, "column count for the grid engine")

	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "canvas height in pixels")
	cmd.Flags().BoolVar(&opts.Curved, "curved", false, "route edges as curves instead of straight lines")
	cmd.Flags().StringVar(&opts.ThemePath, "theme", "", "TOML theme file (default: built-in theme)")

	return cmd
}

// runRender executes the pipeline and writes each artifact to disk.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering with %s...", opts.Engine))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	for _, format := range opts.Formats {
		data := result.Artifacts[format]

		// Reading from stdin with no explicit output writes to stdout.
		if opts.Input == "-" && output == "" {
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
			continue
		}

		path := output
		if path == "" || len(opts.Formats) > 1 {
			path = outputPath("", opts.Input, format)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}

	printSuccess("Render complete")
	printStats(result.Stats.VertexCount, result.Stats.EdgeCount, result.CacheInfo.LayoutHit)

	return nil
}

// enginesCommand lists the available layout engines.
func (c *CLI) enginesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List available layout engines",
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptions := map[string]string{
				"dot":      "hierarchical, best for directed graphs",
				"neato":    "spring model, general undirected graphs",
				"fdp":      "force-directed, larger undirected graphs",
				"circo":    "circular, cyclic structures",
				"twopi":    "radial, tree-like graphs",
				"circular": "evenly spaced on a circle, deterministic",
				"grid":     "row-major grid, deterministic",
			}
			for _, name := range pipeline.Engines() {
				printKeyValue(name, descriptions[name])
			}
			return nil
		},
	}
}
