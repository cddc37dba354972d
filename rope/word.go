package rope

import (
	"unicode"
	"unicode/utf8"
)

// isWordChar reports whether r belongs to a word: letters, digits,
// and underscore.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// WordRange returns the byte range of the word containing offset,
// expanding left and right while characters are word characters. The
// offset is clipped left first, so an offset inside a multi-byte
// character starts from that character. Returns false when neither
// side touches a word character.
func (r Rope) WordRange(offset int) (start, end int, ok bool) {
	offset = r.ClipOffset(offset, BiasLeft)

	// Words never cross hard line breaks, so expansion stays within
	// the line containing the offset.
	row := r.OffsetToPoint(offset).Line
	lineStart := r.LineStart(row)
	line := r.Line(row)

	local := min(offset-lineStart, len(line))
	lo, hi := local, local

	for lo > 0 {
		ch, size := utf8.DecodeLastRuneInString(line[:lo])
		if !isWordChar(ch) {
			break
		}
		lo -= size
	}
	for hi < len(line) {
		ch, size := utf8.DecodeRuneInString(line[hi:])
		if !isWordChar(ch) {
			break
		}
		hi += size
	}

	if lo == hi {
		return 0, 0, false
	}
	return lineStart + lo, lineStart + hi, true
}

// WordAt returns the word containing offset, or "" if there is none.
func (r Rope) WordAt(offset int) string {
	start, end, ok := r.WordRange(offset)
	if !ok {
		return ""
	}
	return r.Slice(start, end)
}
