package editor

import "github.com/dshills/textcore/buffer"

// Selection is the editor's selected byte range. Start <= End always;
// Reversed records that the caret sits at the start, as after
// selecting leftward.
type Selection struct {
	Start    int
	End      int
	Reversed bool
}

// Caret returns the moving end of the selection.
func (s Selection) Caret() int {
	if s.Reversed {
		return s.Start
	}
	return s.End
}

// Anchor returns the fixed end of the selection.
func (s Selection) Anchor() int {
	if s.Reversed {
		return s.End
	}
	return s.Start
}

// Range returns the selection as a byte range.
func (s Selection) Range() buffer.Range {
	return buffer.Range{Start: s.Start, End: s.End}
}

// IsCaret returns true when nothing is selected.
func (s Selection) IsCaret() bool {
	return s.Start == s.End
}

// collapsed returns a caret selection at offset.
func collapsed(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// adjustOffset maps a byte offset across an applied edit. Offsets
// before the edit stay put, offsets after it shift by the length
// delta, and offsets inside the replaced range clamp to the end of
// the new text.
func adjustOffset(offset int, res buffer.EditResult) int {
	switch {
	case offset <= res.OldRange.Start:
		return offset
	case offset >= res.OldRange.End:
		return offset + res.Delta
	default:
		return res.NewRange.End
	}
}

// adjustSelection maps a selection across an applied edit.
func adjustSelection(sel Selection, res buffer.EditResult) Selection {
	start := adjustOffset(sel.Start, res)
	end := adjustOffset(sel.End, res)
	if start > end {
		start, end = end, start
	}
	sel.Start, sel.End = start, end
	if sel.IsCaret() {
		sel.Reversed = false
	}
	return sel
}
