package rope

import "unicode/utf8"

// Bias controls which direction ClipOffset rounds when an offset falls
// inside a multi-byte character.
type Bias int

const (
	// BiasLeft rounds down to the start of the containing character.
	BiasLeft Bias = iota

	// BiasRight rounds up past the containing character.
	BiasRight
)

// IsCharBoundary reports whether offset is a valid character boundary.
// 0 and Len() are always boundaries; out-of-bounds offsets are not.
func (r Rope) IsCharBoundary(offset int) bool {
	if offset == 0 || offset == r.Len() {
		return true
	}
	b, ok := r.ByteAt(offset)
	if !ok {
		return false
	}
	return isBoundaryByte(b)
}

// ClipOffset adjusts offset to the nearest character boundary in the
// direction of bias. Out-of-bounds offsets clamp to [0, Len()]; this
// never fails.
func (r Rope) ClipOffset(offset int, bias Bias) int {
	offset = clamp(offset, 0, r.Len())
	if bias == BiasLeft {
		for offset > 0 && !r.IsCharBoundary(offset) {
			offset--
		}
		return offset
	}
	for offset < r.Len() && !r.IsCharBoundary(offset) {
		offset++
	}
	return offset
}

// CharAt returns the character starting at the given byte offset.
// The offset is clipped left to a boundary first. Returns false at or
// past the end of the rope.
func (r Rope) CharAt(offset int) (rune, bool) {
	if offset < 0 || offset >= r.Len() {
		return 0, false
	}
	offset = r.ClipOffset(offset, BiasLeft)
	s := r.Slice(offset, min(offset+utf8.UTFMax, r.Len()))
	ch, _ := utf8.DecodeRuneInString(s)
	return ch, true
}
