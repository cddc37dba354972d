package rope

import (
	"io"
	"iter"
	"strings"
)

// Rope is an immutable rope for efficient text storage. Operations
// return new Rope values; the original is never modified, which makes
// snapshots cheap and concurrent reads safe.
type Rope struct {
	root *node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeaf(nil)}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	chunks := chunksOf(s)
	leaves := make([]*node, 0, (len(chunks)+maxLeafChunks-1)/maxLeafChunks)
	for i := 0; i < len(chunks); i += maxLeafChunks {
		end := min(i+maxLeafChunks, len(chunks))
		leaves = append(leaves, newLeaf(chunks[i:end]))
	}
	return Rope{root: group(leaves)}
}

// FromReader creates a rope from an io.Reader.
func FromReader(r io.Reader) (Rope, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Rope{}, err
	}
	return FromString(string(data)), nil
}

// Len returns the total byte length.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.sum.Bytes
}

// CharCount returns the number of Unicode scalar values.
func (r Rope) CharCount() int {
	if r.root == nil {
		return 0
	}
	return r.root.sum.Chars
}

// UTF16Count returns the length in UTF-16 code units.
func (r Rope) UTF16Count() int {
	if r.root == nil {
		return 0
	}
	return r.root.sum.UTF16
}

// LineCount returns the number of lines. An empty rope has one line;
// a trailing newline starts a final empty line.
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.sum.Newlines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// String returns the full text. Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.Len())
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the byte range [start, end). Out-of-bounds
// ranges are clamped.
func (r Rope) Slice(start, end int) string {
	if r.root == nil {
		return ""
	}
	start = max(start, 0)
	end = min(end, r.Len())
	if start >= end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(end - start)
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// ByteAt returns the byte at offset. Returns 0, false out of range.
func (r Rope) ByteAt(offset int) (byte, bool) {
	if r.root == nil || offset < 0 || offset >= r.Len() {
		return 0, false
	}
	return r.root.byteAt(offset), true
}

// Insert inserts text at the given byte offset, which is clamped to a
// valid position. Returns a new rope.
func (r Rope) Insert(offset int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.Len() == 0 {
		return FromString(text)
	}
	offset = clamp(offset, 0, r.Len())
	if offset == 0 {
		return FromString(text).Concat(r)
	}
	if offset == r.Len() {
		return r.Concat(FromString(text))
	}
	left, right := r.Split(offset)
	return left.Concat(FromString(text)).Concat(right)
}

// Delete removes the byte range [start, end). Returns a new rope.
func (r Rope) Delete(start, end int) Rope {
	start = clamp(start, 0, r.Len())
	end = clamp(end, 0, r.Len())
	if start >= end {
		return r
	}
	if start == 0 && end == r.Len() {
		return New()
	}
	left, rest := r.Split(start)
	_, right := rest.Split(end - start)
	return left.Concat(right)
}

// Replace replaces [start, end) with text. Returns a new rope.
func (r Rope) Replace(start, end int, text string) Rope {
	if start >= end {
		return r.Insert(start, text)
	}
	if len(text) == 0 {
		return r.Delete(start, end)
	}
	return r.Delete(start, end).Insert(start, text)
}

// Split splits the rope at offset into [0, offset) and [offset, end).
func (r Rope) Split(offset int) (Rope, Rope) {
	if r.root == nil || offset <= 0 {
		return New(), r
	}
	if offset >= r.Len() {
		return r, New()
	}
	left, right := r.root.cut(offset)
	return Rope{root: left}, Rope{root: right}
}

// Concat concatenates two ropes.
func (r Rope) Concat(other Rope) Rope {
	if r.root == nil || r.Len() == 0 {
		return other
	}
	if other.root == nil || other.Len() == 0 {
		return r
	}
	return Rope{root: join(r.root, other.root)}
}

// Summary returns the aggregated metrics for the whole rope.
func (r Rope) Summary() Summary {
	if r.root == nil {
		return Summary{}
	}
	return r.root.sum
}

// LineStart returns the byte offset of the start of the given 0-based
// row. Rows past the end yield Len().
func (r Rope) LineStart(row int) int {
	if r.root == nil || row <= 0 {
		return 0
	}
	if row > r.root.sum.Newlines {
		return r.Len()
	}
	return r.root.offsetAfterNewline(row)
}

// LineEnd returns the byte offset of the end of the given row, before
// the trailing '\n' but after any '\r'.
func (r Rope) LineEnd(row int) int {
	if r.root == nil {
		return 0
	}
	if row >= r.root.sum.Newlines {
		return r.Len()
	}
	return r.root.offsetAfterNewline(row+1) - 1
}

// Line returns the text of the given row, including a trailing '\r'
// if present but not the '\n'. Out-of-bounds rows yield "".
func (r Rope) Line(row int) string {
	if row < 0 || row >= r.LineCount() {
		return ""
	}
	return r.Slice(r.LineStart(row), r.LineEnd(row))
}

// Lines returns an iterator over the rope's rows and their text, in
// order, following the Line conventions.
func (r Rope) Lines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for row := 0; row < r.LineCount(); row++ {
			if !yield(row, r.Line(row)) {
				return
			}
		}
	}
}

// LineLen returns the byte length of the given row, excluding the
// trailing '\n'.
func (r Rope) LineLen(row int) int {
	if row < 0 || row >= r.LineCount() {
		return 0
	}
	return r.LineEnd(row) - r.LineStart(row)
}

// OffsetToPoint converts a byte offset to a 0-based line/column pair.
// The column is in bytes. Out-of-bounds offsets are clamped.
func (r Rope) OffsetToPoint(offset int) Point {
	if r.root == nil {
		return Point{}
	}
	offset = clamp(offset, 0, r.Len())
	line := r.root.newlinesBefore(offset)
	return Point{Line: line, Column: offset - r.LineStart(line)}
}

// PointToOffset converts a line/column pair to a byte offset. Columns
// past the end of the line land on the line end.
func (r Rope) PointToOffset(p Point) int {
	if r.root == nil {
		return 0
	}
	if p.Line < 0 {
		return 0
	}
	if p.Line >= r.LineCount() {
		return r.Len()
	}
	start := r.LineStart(p.Line)
	end := r.LineEnd(p.Line)
	if p.Column < 0 {
		return start
	}
	return min(start+p.Column, end)
}

// OffsetToUTF16 converts a byte offset to a UTF-16 code unit offset.
// The offset must be a character boundary; out-of-bounds offsets are
// clamped.
func (r Rope) OffsetToUTF16(offset int) int {
	if r.root == nil {
		return 0
	}
	return r.root.utf16Before(clamp(offset, 0, r.Len()))
}

// UTF16ToOffset converts a UTF-16 code unit offset to a byte offset.
// A target inside a surrogate pair lands on the containing character's
// start, so round trips from valid byte offsets are lossless.
func (r Rope) UTF16ToOffset(target int) int {
	if r.root == nil {
		return 0
	}
	return r.root.offsetForUTF16(target)
}

// Equal reports whether two ropes hold the same text.
func (r Rope) Equal(other Rope) bool {
	if r.Summary() != other.Summary() {
		return false
	}
	return r.String() == other.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
