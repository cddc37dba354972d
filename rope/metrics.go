package rope

import "unicode/utf8"

// Summary holds aggregated metrics for a span of text.
// Summaries form a monoid under Add, which is what lets the tree
// answer offset conversions in O(log n).
type Summary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Chars is the Unicode scalar value count.
	Chars int

	// UTF16 is the UTF-16 code unit count (surrogate pairs count as 2).
	UTF16 int

	// Newlines is the number of '\n' characters.
	Newlines int
}

// Add combines two summaries.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes:    s.Bytes + other.Bytes,
		Chars:    s.Chars + other.Chars,
		UTF16:    s.UTF16 + other.UTF16,
		Newlines: s.Newlines + other.Newlines,
	}
}

// IsZero returns true if the summary describes empty text.
func (s Summary) IsZero() bool {
	return s.Bytes == 0
}

// Summarize computes the metrics for a string.
func Summarize(s string) Summary {
	var sum Summary
	sum.Bytes = len(s)

	for _, r := range s {
		sum.Chars++
		if r >= 0x10000 {
			sum.UTF16 += 2
		} else {
			sum.UTF16++
		}
		if r == '\n' {
			sum.Newlines++
		}
	}

	return sum
}

// Point is a 0-based line/column position.
// Column is measured in bytes from the start of the line.
type Point struct {
	Line   int
	Column int
}

// Compare returns -1 if p < other, 0 if equal, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Column != other.Column {
		if p.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// utf16Len returns the UTF-16 code unit length of r.
func utf16Len(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}

// utf16Count counts UTF-16 code units in s.
func utf16Count(s string) int {
	var n int
	for _, r := range s {
		n += utf16Len(r)
	}
	return n
}

// runeLenAt returns the byte length of the rune starting at s[i].
func runeLenAt(s string, i int) int {
	_, size := utf8.DecodeRuneInString(s[i:])
	return size
}
