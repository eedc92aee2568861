// Package geometry computes per-element visual geometry for graph rendering:
// it normalizes heterogeneous attribute inputs into dense arrays aligned with
// the topology, converts abstract marker descriptors into pixel clearances,
// trims edge paths so they meet marker boundaries exactly, and picks label
// anchor directions that keep labels clear of incident edges.
//
// Everything in this package is a pure function over immutable inputs. There
// is no shared state and no blocking; callers may fan work out across
// vertices or edges freely. The only errors returned are programmer errors
// (a dense attribute whose length disagrees with the element count, or a
// position slice shorter than the vertex count); malformed or partial input
// otherwise falls back to caller-supplied defaults.
//
// The four pieces compose in one direction: attribute resolution supplies
// marker choices and sizes, [Clearance] turns those into pixel distances, and
// [SlideToward] applies the distances to edge paths. [ComputeAlignments] is
// independent of all three and consumes only topology and positions.
package geometry
