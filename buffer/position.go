package buffer

import "fmt"

// Position is a 0-based line and character pair where the character is
// measured in UTF-16 code units. This is the convention language
// providers speak; it never appears in human-facing output.
type Position struct {
	Line      int // 0-indexed line number
	Character int // 0-indexed column in UTF-16 code units
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d utf16)", p.Line, p.Character)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Character != other.Character {
		if p.Character < other.Character {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// LineColumn is a 1-based line and column pair where the column counts
// Unicode scalar values. This is the convention shown to people, for
// example in a status bar or a diagnostic message.
type LineColumn struct {
	Line   int // 1-indexed line number
	Column int // 1-indexed column in Unicode scalars
}

// String returns a human-readable representation, e.g. "3:14".
func (lc LineColumn) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Column)
}

// Compare returns -1 if lc < other, 0 if lc == other, 1 if lc > other.
func (lc LineColumn) Compare(other LineColumn) int {
	if lc.Line != other.Line {
		if lc.Line < other.Line {
			return -1
		}
		return 1
	}
	if lc.Column != other.Column {
		if lc.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the byte length of the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range covers no bytes.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Contains reports whether offset falls inside the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps reports whether two ranges share any bytes.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Revision identifies a buffer state. Every modification produces a
// new, strictly larger revision.
type Revision uint64
