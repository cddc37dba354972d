package buffer

import (
	"unicode/utf8"

	"github.com/dshills/textcore/rope"
)

// Snapshot is an immutable view of a buffer at a specific revision.
// It shares the rope structurally with the buffer, so a snapshot is
// cheap to take and safe to read from any goroutine while the buffer
// keeps changing.
type Snapshot struct {
	rope     rope.Rope
	revision Revision
}

// NewSnapshot builds a snapshot directly from text. Mostly useful in
// tests and for one-shot conversions.
func NewSnapshot(text string, revision Revision) *Snapshot {
	return &Snapshot{rope: rope.FromString(text), revision: revision}
}

// Revision returns the buffer revision this snapshot was taken at.
func (s *Snapshot) Revision() Revision {
	return s.revision
}

// Rope returns the underlying immutable rope.
func (s *Snapshot) Rope() rope.Rope {
	return s.rope
}

// Text returns the full snapshot content.
func (s *Snapshot) Text() string {
	return s.rope.String()
}

// TextRange returns text in the byte range [start, end), clamped.
func (s *Snapshot) TextRange(start, end int) string {
	return s.rope.Slice(start, end)
}

// Len returns the total byte length.
func (s *Snapshot) Len() int {
	return s.rope.Len()
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return s.rope.LineCount()
}

// Line returns the text of a 0-based row.
func (s *Snapshot) Line(row int) string {
	return s.rope.Line(row)
}

// LineStart returns the byte offset of the start of a row.
func (s *Snapshot) LineStart(row int) int {
	return s.rope.LineStart(row)
}

// RuneAt returns the rune starting at the given byte offset.
func (s *Snapshot) RuneAt(offset int) (rune, int) {
	if offset < 0 || offset >= s.rope.Len() {
		return utf8.RuneError, 0
	}
	text := s.rope.Slice(offset, min(offset+utf8.UTFMax, s.rope.Len()))
	return utf8.DecodeRuneInString(text)
}

// ClipOffset adjusts offset to the nearest character boundary in the
// direction of bias.
func (s *Snapshot) ClipOffset(offset int, bias rope.Bias) int {
	return s.rope.ClipOffset(offset, bias)
}

// WordRange returns the byte range of the word containing offset.
func (s *Snapshot) WordRange(offset int) (start, end int, ok bool) {
	return s.rope.WordRange(offset)
}

// WordAt returns the word containing offset, or "".
func (s *Snapshot) WordAt(offset int) string {
	return s.rope.WordAt(offset)
}

// OffsetToPoint converts a byte offset to a 0-based byte-column point.
func (s *Snapshot) OffsetToPoint(offset int) rope.Point {
	return s.rope.OffsetToPoint(offset)
}

// PointToOffset converts a 0-based byte-column point to a byte offset.
func (s *Snapshot) PointToOffset(p rope.Point) int {
	return s.rope.PointToOffset(p)
}

// OffsetToPosition converts a byte offset to a UTF-16 position.
func (s *Snapshot) OffsetToPosition(offset int) Position {
	return offsetToPosition(s.rope, offset)
}

// PositionToOffset converts a UTF-16 position to a byte offset.
func (s *Snapshot) PositionToOffset(pos Position) int {
	return positionToOffset(s.rope, pos)
}

// OffsetToLineColumn converts a byte offset to a 1-based scalar pair.
func (s *Snapshot) OffsetToLineColumn(offset int) LineColumn {
	return offsetToLineColumn(s.rope, offset)
}

// LineColumnToOffset converts a 1-based scalar pair to a byte offset.
func (s *Snapshot) LineColumnToOffset(lc LineColumn) int {
	return lineColumnToOffset(s.rope, lc)
}
