// Package marker provides the diagnostic overlay for a buffer.
//
// Markers carry line/column coordinates in the convention diagnostic
// tools emit, a row index paired with a 1-based scalar column, and
// resolve to byte ranges lazily against a buffer snapshot. A resolved range is
// stamped with the snapshot revision and recomputed automatically when
// the buffer has moved on, so callers never present stale geometry.
//
// Set holds the current markers behind an interval tree, answering
// range and point queries for the presentation layer. Severity maps to
// presentation styling through a pure function; no style state lives
// on the markers themselves.
//
// The diagnostics half ingests LSP textDocument/publishDiagnostics
// payloads, translating their UTF-16 positions into marker coordinates.
package marker
