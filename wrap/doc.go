// Package wrap maintains soft-wrap layout for a text buffer.
//
// A Wrapper keeps one LineItem per hard line, each holding the byte
// ranges of its soft-wrapped segments. Edits update only the touched
// rows: the changed row range is recomputed and spliced into place,
// so the cost of an edit is proportional to the lines it changed, not
// to the buffer size.
//
// Measurement is injected through the Shaper interface. MonoShaper is
// the bundled monospace implementation, measuring grapheme clusters
// with go-runewidth so wide CJK characters and emoji count correctly.
//
// Layout answers the two geometry questions the presentation layer
// asks: where does a byte offset land on screen, and which byte offset
// is closest to a screen position.
package wrap
