// Package pkg provides the core libraries for Graphink graph rendering.
//
// # Overview
//
// Graphink turns graph descriptions into node-link SVG diagrams. The pkg
// directory is organized into five main areas:
//
//  1. [geometry] - Pure placement math (attributes, markers, paths, labels)
//  2. [graph] - Topology plus serialization types for graphs and layouts
//  3. [layout] - Position providers (Graphviz engines, static layouts)
//  4. [render] - Scene assembly and the SVG sink
//  5. [pipeline] - Orchestration (load → layout → render) with caching
//
// # Architecture
//
// The typical data flow through Graphink:
//
//	graph.json
//	     ↓
//	graph (decode, validate)
//	     ↓
//	layout (Graphviz or static provider → positions)
//	     ↓
//	render (attribute resolution, edge trimming, label alignment)
//	     ↓
//	SVG / layout.json
//
// The pipeline package ties the stages together and caches layout and render
// results by content hash, using the cache package's file or Redis backends.
// The observability package offers optional hooks into the stages, and
// buildinfo carries ldflags-injected version data.
package pkg
