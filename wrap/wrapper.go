package wrap

import (
	"strings"

	"github.com/dshills/textcore/buffer"
	"github.com/dshills/textcore/rope"
)

// LineItem is the wrap state of one hard line. Text excludes the
// trailing '\n'. Wrapped holds the soft segments as local byte ranges;
// they are contiguous, cover 0..len(Text), and there is always at
// least one, even for an empty line. A LineItem is replaced wholesale
// on update, never mutated.
type LineItem struct {
	Text    string
	Wrapped []buffer.Range
}

// Len returns the byte length of the line.
func (li LineItem) Len() int {
	return len(li.Text)
}

// SegmentCount returns the number of soft segments, including the
// first.
func (li LineItem) SegmentCount() int {
	return len(li.Wrapped)
}

// Segment returns the text of the nth soft segment.
func (li LineItem) Segment(n int) string {
	r := li.Wrapped[n]
	return li.Text[r.Start:r.End]
}

// Height returns the pixel height of this line at the given line
// height.
func (li LineItem) Height(lineHeight int) int {
	return li.SegmentCount() * lineHeight
}

// LongestRow tracks the row with the most bytes, for horizontal
// scroll sizing.
type LongestRow struct {
	Row int // 0-based row index
	Len int // byte length of that row
}

// Wrapper maintains soft-wrap layout for a rope. Zero wrap width
// disables wrapping; every line is then a single segment.
//
// Wrapper is not safe for concurrent use; the owning editor serializes
// access on its main sequence.
type Wrapper struct {
	text      rope.Rope
	shaper    Shaper
	wrapWidth int
	softLines int
	longest   LongestRow
	lines     []LineItem
}

// NewWrapper creates a wrapper over empty text.
func NewWrapper(shaper Shaper, wrapWidth int) *Wrapper {
	w := &Wrapper{
		text:      rope.New(),
		shaper:    shaper,
		wrapWidth: wrapWidth,
	}
	w.UpdateAll(w.text)
	return w
}

// SoftLineCount returns the total number of soft lines, counting each
// hard line's segments.
func (w *Wrapper) SoftLineCount() int {
	return w.softLines
}

// LineCount returns the number of hard lines.
func (w *Wrapper) LineCount() int {
	return len(w.lines)
}

// Line returns the wrap state of a 0-based row.
func (w *Wrapper) Line(row int) (LineItem, bool) {
	if row < 0 || row >= len(w.lines) {
		return LineItem{}, false
	}
	return w.lines[row], true
}

// LongestRow returns the row with the most bytes.
func (w *Wrapper) LongestRow() LongestRow {
	return w.longest
}

// WrapWidth returns the current wrap width. Zero means no wrapping.
func (w *Wrapper) WrapWidth() int {
	return w.wrapWidth
}

// SetWrapWidth changes the wrap width and rewraps everything. A no-op
// if the width is unchanged.
func (w *Wrapper) SetWrapWidth(width int) {
	if width == w.wrapWidth {
		return
	}
	w.wrapWidth = width
	w.UpdateAll(w.text)
}

// SetShaper changes the measurement service and rewraps everything.
func (w *Wrapper) SetShaper(shaper Shaper) {
	if shaper == w.shaper {
		return
	}
	w.shaper = shaper
	w.UpdateAll(w.text)
}

// Update applies an edit incrementally. newText is the rope after the
// edit, oldRange is the replaced byte range in the previous text, and
// newLen is the byte length of the replacement. Only the rows touching
// the edit are rewrapped and spliced into place.
func (w *Wrapper) Update(newText rope.Rope, oldRange buffer.Range, newLen int) {
	// Rows to drop, in the previous text.
	startRow := min(w.text.OffsetToPoint(oldRange.Start).Line, max(len(w.lines)-1, 0))
	endRow := min(w.text.OffsetToPoint(oldRange.End).Line, max(len(w.lines)-1, 0))

	if w.longest.Row >= startRow && w.longest.Row <= endRow {
		w.longest = LongestRow{}
	}
	longest := w.longest

	// Rows to wrap, in the new text, widened to whole lines.
	newStartRow := newText.OffsetToPoint(oldRange.Start).Line
	newStartOffset := newText.LineStart(newStartRow)
	newEndRow := newText.OffsetToPoint(oldRange.Start + newLen).Line
	newEndOffset := newText.LineEnd(newEndRow)

	changed := strings.Split(newText.Slice(newStartOffset, newEndOffset), "\n")
	newLines := make([]LineItem, 0, len(changed))
	for ix, line := range changed {
		if len(line) > longest.Len {
			longest = LongestRow{Row: newStartRow + ix, Len: len(line)}
		}
		newLines = append(newLines, w.wrapOne(line))
	}

	if len(w.lines) == 0 {
		w.lines = newLines
	} else {
		w.lines = append(w.lines[:startRow], append(newLines, w.lines[endRow+1:]...)...)
	}

	w.text = newText
	w.softLines = 0
	for _, li := range w.lines {
		w.softLines += li.SegmentCount()
	}
	w.longest = longest
}

// UpdateAll rewraps the entire text.
func (w *Wrapper) UpdateAll(text rope.Rope) {
	w.Update(text, buffer.Range{Start: 0, End: w.text.Len()}, text.Len())
}

// wrapOne builds the LineItem for a single hard line.
func (w *Wrapper) wrapOne(line string) LineItem {
	var wrapped []buffer.Range
	prev := 0

	if w.wrapWidth > 0 {
		for _, bp := range w.shaper.WrapLine(line, w.wrapWidth) {
			wrapped = append(wrapped, buffer.Range{Start: prev, End: bp})
			prev = bp
		}
	}
	if prev < len(line) || prev == 0 {
		wrapped = append(wrapped, buffer.Range{Start: prev, End: len(line)})
	}

	return LineItem{Text: line, Wrapped: wrapped}
}
