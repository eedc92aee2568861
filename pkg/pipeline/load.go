package pipeline

import (
	"fmt"
	"os"

	"github.com/matzehuels/graphink/pkg/graph"
)

// Load reads and validates the input graph document. The input path "-"
// reads from stdin. Returns the graph plus the raw document, which may
// carry labels the graph itself does not model.
func Load(opts Options) (*graph.Graph, *graph.Document, error) {
	if opts.Input == "" {
		return nil, nil, fmt.Errorf("input is required")
	}

	var (
		g   *graph.Graph
		doc *graph.Document
		err error
	)
	if opts.Input == "-" {
		g, doc, err = graph.ReadGraph(os.Stdin)
	} else {
		g, doc, err = graph.ReadGraphFile(opts.Input)
	}
	if err != nil {
		return nil, nil, err
	}

	if doc.Labels != nil && len(doc.Labels) != g.VertexCount() {
		return nil, nil, fmt.Errorf("document has %d labels for %d vertices", len(doc.Labels), g.VertexCount())
	}
	return g, doc, nil
}
