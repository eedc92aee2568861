package cli

import (
	"io"
	"reflect"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,json", []string{"svg", "json"}},
		{"json", []string{"json"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output string
		input  string
		format string
		want   string
	}{
		{"", "graph.json", "svg", "graph.svg"},
		{"", "dir/graph.json", "svg", "dir/graph.svg"},
		{"", "graph", "svg", "graph.svg"},
		{"out.svg", "graph.json", "svg", "out.svg"},
		{"", "graph.layout.json", "svg", "graph.layout.svg"},
	}

	for _, tt := range tests {
		got := outputPath(tt.output, tt.input, tt.format)
		if got != tt.want {
			t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tt.output, tt.input, tt.format, got, tt.want)
		}
	}
}

func TestRootCommandStructure(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"render":     false,
		"layout":     false,
		"draw":       false,
		"engines":    false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}
