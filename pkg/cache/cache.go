// Package cache provides content-addressed caching for layout and render
// results.
//
// Layouts are expensive to compute (graphviz runs a full solver) while being
// fully determined by the graph topology and the engine. Rendered artifacts
// are likewise determined by the layout plus styling options. Both stages
// therefore cache on content hashes of their inputs.
//
// Two backends are provided: FileCache for CLI usage and RedisCache for
// shared deployments. NullCache disables caching entirely.
package cache

import (
	"context"
	"time"
)

// TTLs per cache tier. Layouts depend only on topology and engine, so they
// keep longer than rendered artifacts, which also encode theme data.
const (
	TTLLayout   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss.
// Errors are reserved for backend failures, never for missing keys.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey identifies a computed layout: graph content hash plus the
	// options that affect positions.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies a rendered artifact: layout content hash plus
	// the options that affect pixels.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the layout-affecting options hashed into layout keys.
type LayoutKeyOpts struct {
	Engine string
}

// ArtifactKeyOpts are the render-affecting options hashed into artifact keys.
type ArtifactKeyOpts struct {
	Format    string
	Width     float64
	Height    float64
	Curved    bool
	ThemeHash string
}

// DefaultKeyer generates keys in the form "tier:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
