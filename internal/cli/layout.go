package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphink/pkg/graph"
	"github.com/matzehuels/graphink/pkg/pipeline"
)

// layoutCommand creates the layout command for computing vertex positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute vertex positions for a graph",
		Long: `Compute vertex positions for a graph.

The layout command takes a graph.json file and computes positions with the
selected engine. The output is a layout.json file (same format as
'render -f json') that can be drawn to SVG using the 'draw' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute the layout even if cached")

	cmd.Flags().StringVarP(&opts.Engine, "engine", "e", opts.Engine, "layout engine: dot, neato, fdp, circo, twopi, circular, grid")
	cmd.Flags().IntVar(&opts.Columns, "columns", 0, "column count for the grid engine")

	return cmd
}

// runLayout loads the graph, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	g, doc, err := pipeline.Load(opts)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", opts.Input, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.Engine))
	spinner.Start()

	lay, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	lay.Graph.Labels = doc.Labels

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(opts.Input, filepath.Ext(opts.Input))
		outputPath = base + ".layout.json"
	}

	if err := graph.WriteLayoutFile(lay, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(g.VertexCount(), g.EdgeCount(), cacheHit)
	printNewline()
	printNextStep("Render", "graphink draw "+outputPath)

	return nil
}
