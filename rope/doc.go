// Package rope provides an immutable rope for efficient text storage
// and coordinate conversion.
//
// The rope is a balanced tree whose leaves hold bounded text chunks and
// whose nodes carry aggregated metrics (bytes, Unicode scalars, UTF-16
// code units, newlines). Those summaries make slicing, editing, and
// conversions between byte offsets, line/column points, and UTF-16
// offsets O(log n).
//
// Operations return new ropes; originals are never modified. That gives
// copy-on-write snapshots and safe concurrent read access.
//
// Beyond storage, the package provides the editing-oriented coordinate
// primitives the rest of the module is built on: character-boundary
// clipping with a left/right bias, word-range expansion, and per-line
// slicing where a line keeps its trailing '\r' but not its '\n'.
package rope
