// Package render is the thin glue between the geometry engine and an SVG
// surface. It assembles a drawable scene from topology, positions and a
// theme: attributes are resolved to dense arrays, edge paths are routed and
// trimmed to marker boundaries, and label anchors are chosen per vertex.
// The resulting [Scene] is plain data; [RenderSVG] serializes it to SVG
// text. Rasterization, picking and interactivity are out of scope.
package render
