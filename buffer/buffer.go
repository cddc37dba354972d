package buffer

import (
	"errors"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dshills/textcore/rope"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrEditsOverlap     = errors.New("edits overlap or are not in reverse order")
)

// LineEnding is the line ending style detected in a buffer.
type LineEnding uint8

const (
	LineEndingLF LineEnding = iota
	LineEndingCRLF
	LineEndingMixed
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingMixed:
		return "mixed"
	default:
		return "\\n"
	}
}

// Buffer is the authoritative mutable text sequence. It wraps a rope
// and stamps each modification with a new revision. All methods are
// safe for concurrent use.
//
// Content is stored verbatim. The buffer never normalizes line
// endings; "\r\n" written in is "\r\n" read back.
type Buffer struct {
	mu       sync.RWMutex
	rope     rope.Rope
	revision Revision
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{rope: rope.New(), revision: 1}
}

// FromString creates a buffer with initial content.
func FromString(s string) *Buffer {
	return &Buffer{rope: rope.FromString(s), revision: 1}
}

// FromReader creates a buffer from an io.Reader.
func FromReader(r io.Reader) (*Buffer, error) {
	rp, err := rope.FromReader(r)
	if err != nil {
		return nil, err
	}
	return &Buffer{rope: rp, revision: 1}, nil
}

// Revision returns the current revision.
func (b *Buffer) Revision() Revision {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// Snapshot returns an immutable view of the current content. The
// snapshot shares the rope structurally; taking one is O(1).
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return &Snapshot{rope: b.rope, revision: b.revision}
}

// Read operations

// Text returns the full buffer content. For large buffers prefer
// TextRange or per-line access.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.String()
}

// TextRange returns text in the byte range [start, end), clamped.
func (b *Buffer) TextRange(start, end int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.Slice(start, end)
}

// Len returns the total byte length.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.Len()
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.LineCount()
}

// Line returns the text of a 0-based row, without the trailing '\n'
// but with any '\r'. Out-of-bounds rows yield "".
func (b *Buffer) Line(row int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.Line(row)
}

// DetectLineEnding reports the dominant line ending style, or
// LineEndingMixed if both styles appear.
func (b *Buffer) DetectLineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()

	sawLF, sawCRLF := false, false
	for row := 0; row < b.rope.LineCount()-1; row++ {
		if strings.HasSuffix(b.rope.Line(row), "\r") {
			sawCRLF = true
		} else {
			sawLF = true
		}
	}
	switch {
	case sawLF && sawCRLF:
		return LineEndingMixed
	case sawCRLF:
		return LineEndingCRLF
	default:
		return LineEndingLF
	}
}

// RuneAt returns the rune starting at the given byte offset. Returns
// utf8.RuneError and size 0 if offset is out of range.
func (b *Buffer) RuneAt(offset int) (rune, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if offset < 0 || offset >= b.rope.Len() {
		return utf8.RuneError, 0
	}
	s := b.rope.Slice(offset, min(offset+utf8.UTFMax, b.rope.Len()))
	return utf8.DecodeRuneInString(s)
}

// ClipOffset adjusts offset to the nearest character boundary in the
// direction of bias.
func (b *Buffer) ClipOffset(offset int, bias rope.Bias) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.ClipOffset(offset, bias)
}

// WordRange returns the byte range of the word containing offset.
func (b *Buffer) WordRange(offset int) (start, end int, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.WordRange(offset)
}

// Write operations

// Insert inserts text at the given offset. Returns the offset just
// past the inserted text.
func (b *Buffer) Insert(offset int, text string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > b.rope.Len() {
		return 0, ErrOffsetOutOfRange
	}
	b.rope = b.rope.Insert(offset, text)
	b.revision++
	return offset + len(text), nil
}

// Delete removes the byte range [start, end).
func (b *Buffer) Delete(start, end int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > b.rope.Len() {
		return ErrRangeInvalid
	}
	b.rope = b.rope.Delete(start, end)
	b.revision++
	return nil
}

// Replace replaces [start, end) with text. Returns the offset just
// past the replacement.
func (b *Buffer) Replace(start, end int, text string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > b.rope.Len() {
		return 0, ErrRangeInvalid
	}
	b.rope = b.rope.Replace(start, end, text)
	b.revision++
	return start + len(text), nil
}

// ApplyEdit applies a single edit and reports what changed.
func (b *Buffer) ApplyEdit(edit Edit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.applyEditLocked(edit)
}

// ApplyEdits applies a batch of edits. Edits must be sorted by start
// offset in descending order and must not overlap, so that earlier
// edits in the slice do not invalidate the offsets of later ones.
// On error the buffer is left unchanged.
func (b *Buffer) ApplyEdits(edits []Edit) ([]EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, edit := range edits {
		if edit.Range.Start < 0 || edit.Range.Start > edit.Range.End || edit.Range.End > b.rope.Len() {
			return nil, ErrRangeInvalid
		}
		if i > 0 && edit.Range.End > edits[i-1].Range.Start {
			return nil, ErrEditsOverlap
		}
	}

	results := make([]EditResult, 0, len(edits))
	for _, edit := range edits {
		res, err := b.applyEditLocked(edit)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (b *Buffer) applyEditLocked(edit Edit) (EditResult, error) {
	r := edit.Range
	if r.Start < 0 || r.Start > r.End || r.End > b.rope.Len() {
		return EditResult{}, ErrRangeInvalid
	}

	oldText := b.rope.Slice(r.Start, r.End)
	b.rope = b.rope.Replace(r.Start, r.End, edit.NewText)
	b.revision++

	return EditResult{
		OldRange: r,
		NewRange: Range{Start: r.Start, End: r.Start + len(edit.NewText)},
		OldText:  oldText,
		Delta:    len(edit.NewText) - r.Len(),
	}, nil
}

// Coordinate conversion

// OffsetToPoint converts a byte offset to a 0-based byte-column point.
func (b *Buffer) OffsetToPoint(offset int) rope.Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.OffsetToPoint(offset)
}

// PointToOffset converts a 0-based byte-column point to a byte offset.
func (b *Buffer) PointToOffset(p rope.Point) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.PointToOffset(p)
}

// OffsetToPosition converts a byte offset to a provider-facing
// UTF-16 position.
func (b *Buffer) OffsetToPosition(offset int) Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return offsetToPosition(b.rope, offset)
}

// PositionToOffset converts a provider-facing UTF-16 position to a
// byte offset. Out-of-range positions clamp to the nearest valid
// location.
func (b *Buffer) PositionToOffset(pos Position) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return positionToOffset(b.rope, pos)
}

// OffsetToLineColumn converts a byte offset to a human-facing 1-based
// scalar-column pair.
func (b *Buffer) OffsetToLineColumn(offset int) LineColumn {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return offsetToLineColumn(b.rope, offset)
}

// LineColumnToOffset converts a human-facing 1-based pair to a byte
// offset, clamping out-of-range values.
func (b *Buffer) LineColumnToOffset(lc LineColumn) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return lineColumnToOffset(b.rope, lc)
}

// Conversion helpers shared between Buffer and Snapshot. All operate
// on an immutable rope, so they need no locking of their own.

func offsetToPosition(r rope.Rope, offset int) Position {
	offset = r.ClipOffset(offset, rope.BiasLeft)
	p := r.OffsetToPoint(offset)
	lineStart := r.LineStart(p.Line)
	return Position{
		Line:      p.Line,
		Character: r.OffsetToUTF16(offset) - r.OffsetToUTF16(lineStart),
	}
}

func positionToOffset(r rope.Rope, pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= r.LineCount() {
		return r.Len()
	}
	line := r.Line(pos.Line)
	lineStart := r.LineStart(pos.Line)

	units := 0
	for i, ch := range line {
		if units >= pos.Character {
			return lineStart + i
		}
		w := 1
		if ch > 0xFFFF {
			w = 2
		}
		// A character landing between the two units of a surrogate
		// pair snaps to the start of the containing character.
		if units+w > pos.Character {
			return lineStart + i
		}
		units += w
	}
	return lineStart + len(line)
}

func offsetToLineColumn(r rope.Rope, offset int) LineColumn {
	offset = r.ClipOffset(offset, rope.BiasLeft)
	p := r.OffsetToPoint(offset)
	lineStart := r.LineStart(p.Line)
	return LineColumn{
		Line:   p.Line + 1,
		Column: utf8.RuneCountInString(r.Slice(lineStart, offset)) + 1,
	}
}

func lineColumnToOffset(r rope.Rope, lc LineColumn) int {
	row := lc.Line - 1
	if row < 0 {
		return 0
	}
	if row >= r.LineCount() {
		return r.Len()
	}
	line := r.Line(row)
	lineStart := r.LineStart(row)

	col := 1
	for i := range line {
		if col >= lc.Column {
			return lineStart + i
		}
		col++
	}
	return lineStart + len(line)
}
