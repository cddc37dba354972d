// Package buffer provides the mutable text buffer and its coordinate
// model.
//
// A Buffer wraps an immutable rope behind a mutex and stamps every
// modification with a monotonically increasing revision. Snapshots
// share the rope structurally, so handing one to a background worker
// costs nothing and is safe against later edits.
//
// Three position types coexist, each canonical for its audience:
//
//   - rope.Point: 0-based line and byte column, internal bookkeeping.
//   - Position: 0-based line and UTF-16 character, the wire convention
//     used by language providers.
//   - LineColumn: 1-based line and Unicode scalar column, the human
//     display convention.
//
// Conversions between them are explicit. Content is stored verbatim:
// the buffer never rewrites line endings, so a "\r\n" read from disk
// survives round trips byte for byte.
package buffer
