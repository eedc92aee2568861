package render

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphink/pkg/geometry"
)

// Theme holds the visual defaults for a scene. Any field can be overridden
// per element through attribute specs; the theme supplies the fallbacks.
type Theme struct {
	Background  string  `toml:"background"`
	NodeFill    string  `toml:"node_fill"`
	NodeStroke  string  `toml:"node_stroke"`
	EdgeColor   string  `toml:"edge_color"`
	EdgeWidth   float64 `toml:"edge_width"`
	LabelColor  string  `toml:"label_color"`
	FontFamily  string  `toml:"font_family"`
	FontSize    float64 `toml:"font_size"`
	MarkerShape string  `toml:"marker_shape"`
	MarkerSize  float64 `toml:"marker_size"`
	ArrowSize   float64 `toml:"arrow_size"`
	Margin      float64 `toml:"margin"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Background:  "white",
		NodeFill:    "#2f6f8f",
		NodeStroke:  "#1d4558",
		EdgeColor:   "#555555",
		EdgeWidth:   1.5,
		LabelColor:  "#222222",
		FontFamily:  "Helvetica, Arial, sans-serif",
		FontSize:    12,
		MarkerShape: "circle",
		MarkerSize:  14,
		ArrowSize:   9,
		Margin:      40,
	}
}

// LoadTheme reads a TOML theme file and overlays it on the defaults, so a
// file only needs the fields it changes. An empty path returns the defaults.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read theme %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return t, nil
}

// Marker resolves the theme's marker shape name.
// Unknown names fall back to a circle rather than erroring, matching the
// engine's tolerance for unknown descriptors.
func (t Theme) Marker() geometry.Marker {
	if s, ok := geometry.ShapeFromName(t.MarkerShape); ok {
		return geometry.ShapeMarker(s)
	}
	return geometry.ShapeMarker(geometry.ShapeCircle)
}
