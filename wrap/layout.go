package wrap

// Point is a pixel position relative to the top-left corner of a line
// layout.
type Point struct {
	X int
	Y int
}

// Layout answers geometry questions about one wrapped line. It binds
// a LineItem to the shaper that produced it; both are immutable, so a
// Layout is a pure value.
type Layout struct {
	item   LineItem
	shaper Shaper
}

// Layout returns the geometry view of a 0-based row.
func (w *Wrapper) Layout(row int) (Layout, bool) {
	item, ok := w.Line(row)
	if !ok {
		return Layout{}, false
	}
	return Layout{item: item, shaper: w.shaper}, true
}

// Item returns the underlying LineItem.
func (l Layout) Item() LineItem {
	return l.item
}

// Width returns the widest soft segment.
func (l Layout) Width() int {
	widest := 0
	for n := range l.item.Wrapped {
		if w := l.shaper.Advance(l.item.Segment(n)); w > widest {
			widest = w
		}
	}
	return widest
}

// PositionForIndex returns the (x, y) position of a local byte offset
// within this line. The position is relative to the line's top-left
// corner. Returns false if the offset is outside the line.
func (l Layout) PositionForIndex(offset, lineHeight int) (Point, bool) {
	y := 0
	for _, seg := range l.item.Wrapped {
		// The segment end is addressable too: the caret can sit just
		// past the last character.
		if offset >= seg.Start && offset <= seg.End {
			x := l.shaper.Advance(l.item.Text[seg.Start:offset])
			return Point{X: x, Y: y}, true
		}
		y += lineHeight
	}
	return Point{}, false
}

// ClosestIndexForPosition returns the local byte offset closest to the
// given position. Returns false if the position is above or below the
// line.
func (l Layout) ClosestIndexForPosition(pos Point, lineHeight int) (int, bool) {
	if pos.Y < 0 {
		return 0, false
	}
	top := 0
	for _, seg := range l.item.Wrapped {
		bottom := top + lineHeight
		if pos.Y >= top && pos.Y < bottom {
			ix := l.shaper.IndexFor(l.item.Text[seg.Start:seg.End], pos.X)
			return seg.Start + ix, true
		}
		top = bottom
	}
	return 0, false
}
