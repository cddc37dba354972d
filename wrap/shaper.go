package wrap

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Shaper measures text and finds soft-wrap break points. Implementations
// must be pure: the same inputs always give the same answers.
type Shaper interface {
	// WrapLine returns the byte indices where line breaks when laid
	// out at the given width. Indices are strictly increasing, never 0
	// and never len(line). An empty result means the line fits.
	WrapLine(line string, width int) []int

	// Advance returns the layout width of s.
	Advance(s string) int

	// IndexFor returns the byte index in s whose position is closest
	// to x. Positions past the end return len(s).
	IndexFor(s string, x int) int
}

// MonoShaper is a monospace Shaper. Widths are measured in terminal
// cells: grapheme clusters via uniseg, cell counts via go-runewidth,
// so CJK characters and emoji occupy two cells.
type MonoShaper struct {
	// TabWidth is the cell width of a '\t'. Zero means 4.
	TabWidth int
}

// NewMonoShaper returns a MonoShaper with the given tab width.
func NewMonoShaper(tabWidth int) MonoShaper {
	return MonoShaper{TabWidth: tabWidth}
}

func (m MonoShaper) tabWidth() int {
	if m.TabWidth <= 0 {
		return 4
	}
	return m.TabWidth
}

func (m MonoShaper) clusterWidth(cluster string) int {
	if cluster == "\t" {
		return m.tabWidth()
	}
	return runewidth.StringWidth(cluster)
}

// Advance returns the total cell width of s.
func (m MonoShaper) Advance(s string) int {
	total := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		total += m.clusterWidth(g.Str())
	}
	return total
}

// WrapLine breaks line greedily at the given cell width, preferring
// word boundaries. A word longer than the width is broken mid-word.
func (m MonoShaper) WrapLine(line string, width int) []int {
	if width <= 0 || line == "" {
		return nil
	}

	var breaks []int
	segStart := 0
	segWidth := 0
	wordStart := -1 // start of the current word, -1 inside whitespace

	g := uniseg.NewGraphemes(line)
	for g.Next() {
		cluster := g.Str()
		start, end := g.Positions()
		cw := m.clusterWidth(cluster)

		space := cluster == " " || cluster == "\t"
		if space {
			wordStart = -1
		} else if wordStart < 0 {
			wordStart = start
		}

		if segWidth+cw > width && start > segStart {
			bp := start
			if !space && wordStart > segStart {
				bp = wordStart
			}
			breaks = append(breaks, bp)
			segStart = bp
			segWidth = m.Advance(line[bp:end])
			continue
		}
		segWidth += cw
	}
	return breaks
}

// IndexFor returns the byte index in s closest to cell position x.
func (m MonoShaper) IndexFor(s string, x int) int {
	if x <= 0 {
		return 0
	}
	acc := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		start, _ := g.Positions()
		cw := m.clusterWidth(g.Str())
		// Snap to this cluster's start while x is at or before its
		// midpoint.
		if x <= acc+cw/2 {
			return start
		}
		acc += cw
	}
	return len(s)
}
