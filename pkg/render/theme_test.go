package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/graphink/pkg/geometry"
)

func TestLoadThemeDefaults(t *testing.T) {
	got, err := LoadTheme("")
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if got != DefaultTheme() {
		t.Errorf("empty path should return defaults: %+v", got)
	}
}

func TestLoadThemeOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	file := `
edge_color = "#ff0000"
marker_shape = "star5"
marker_size = 20.0
`
	if err := os.WriteFile(path, []byte(file), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if got.EdgeColor != "#ff0000" || got.MarkerShape != "star5" || got.MarkerSize != 20 {
		t.Errorf("overrides not applied: %+v", got)
	}
	// Untouched fields keep their defaults.
	if got.Background != DefaultTheme().Background {
		t.Errorf("background = %q, want default", got.Background)
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	if _, err := LoadTheme("/nonexistent/theme.toml"); err == nil {
		t.Error("LoadTheme should report missing files")
	}
}

func TestThemeMarker(t *testing.T) {
	th := DefaultTheme()
	th.MarkerShape = "diamond"
	if got := th.Marker(); got.Shape != geometry.ShapeDiamond {
		t.Errorf("Marker = %v, want diamond", got)
	}

	th.MarkerShape = "blob"
	if got := th.Marker(); got.Shape != geometry.ShapeCircle {
		t.Errorf("unknown shape should fall back to circle, got %v", got)
	}
}
