// Package pipeline provides the core rendering pipeline for Graphink.
//
// This package implements the complete load → layout → render pipeline so
// the CLI and library callers share one code path. By centralizing this
// logic, we ensure consistent caching behavior across all entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Decode and validate the input graph document
//  2. Layout: Compute 2D positions for every vertex
//  3. Render: Generate output in various formats (SVG, layout JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "graph.json",
//	    Engine:  "dot",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Layout with an existing graph
//	lay, err := runner.ComputeLayout(ctx, g, opts)
//
//	// Render with an existing layout
//	artifacts, err := runner.Render(ctx, lay, opts)
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphink/pkg/cache"
	"github.com/matzehuels/graphink/pkg/geometry"
	"github.com/matzehuels/graphink/pkg/graph"
	"github.com/matzehuels/graphink/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultEngine is the default layout engine.
	DefaultEngine = string(layout.EngineDot)

	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0
)

// Static engine names, alongside the Graphviz engines from pkg/layout.
const (
	EngineCircular = "circular"
	EngineGrid     = "grid"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Layouter computes vertex positions for a graph. The pipeline dispatches to
// ComputePositions by default; tests inject deterministic implementations.
type Layouter func(ctx context.Context, g *graph.Graph, engine string) ([]geometry.Point, error)

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization so runs can be replayed.
type Options struct {
	// Load options
	Input string `json:"input,omitempty"` // path to a graph.json file

	// Layout options
	Engine  string `json:"engine,omitempty"`
	Columns int    `json:"columns,omitempty"` // grid engine only
	Refresh bool   `json:"refresh,omitempty"` // bypass the layout cache

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Width     float64  `json:"width,omitempty"`
	Height    float64  `json:"height,omitempty"`
	Curved    bool     `json:"curved,omitempty"`
	ThemePath string   `json:"theme,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger `json:"-"`
	Layouter Layouter    `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the loaded graph.
	Graph *graph.Graph

	// Labels are the per-vertex labels from the input document, if any.
	Labels []string

	// GraphHash is the content hash of the graph.
	GraphHash string

	// Layout holds the computed positions in interchange form.
	Layout graph.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount int
	EdgeCount   int
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEngine checks that an engine name is valid, covering both the
// Graphviz engines and the static providers.
func ValidateEngine(engine string) error {
	if engine == EngineCircular || engine == EngineGrid {
		return nil
	}
	_, err := layout.ParseEngine(engine)
	return err
}

// Engines lists every supported engine name, Graphviz first.
func Engines() []string {
	names := make([]string, 0, 7)
	for _, e := range layout.Engines() {
		names = append(names, string(e))
	}
	return append(names, EngineCircular, EngineGrid)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return ValidateEngine(o.Engine)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Engine: o.Engine,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format, themeHash string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:    format,
		Width:     o.Width,
		Height:    o.Height,
		Curved:    o.Curved,
		ThemeHash: themeHash,
	}
}
