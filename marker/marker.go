package marker

import (
	"fmt"

	"github.com/dshills/textcore/buffer"
)

// Marker is one diagnostic annotation. Start and End follow the
// convention diagnostic tools emit: Line is the row index, Column is
// 1-based and counts Unicode scalars. The byte range is computed
// lazily against a snapshot and cached per revision.
type Marker struct {
	Severity Severity
	Start    buffer.LineColumn
	End      buffer.LineColumn
	Message  string
	Source   string
	Code     string

	resolved      buffer.Range
	resolvedAt    buffer.Revision
	resolvedValid bool
}

// New creates a marker spanning [start, end).
func New(sev Severity, start, end buffer.LineColumn, message string) *Marker {
	return &Marker{Severity: sev, Start: start, End: end, Message: message}
}

// String returns a compact description, e.g. "error 1:1-1:5: msg".
func (m *Marker) String() string {
	return fmt.Sprintf("%s %s-%s: %s", m.Severity, m.Start, m.End, m.Message)
}

// Resolve returns the marker's byte range in the given snapshot. The
// result is cached with the snapshot revision; a marker resolved
// against an older revision recomputes automatically, so callers never
// see coordinates from a buffer that has moved on.
func (m *Marker) Resolve(snap *buffer.Snapshot) buffer.Range {
	if m.resolvedValid && m.resolvedAt == snap.Revision() {
		return m.resolved
	}

	start := resolveCoord(snap, m.Start)
	end := resolveCoord(snap, m.End)
	if end < start {
		start, end = end, start
	}

	m.resolved = buffer.Range{Start: start, End: end}
	m.resolvedAt = snap.Revision()
	m.resolvedValid = true
	return m.resolved
}

// resolveCoord maps a marker coordinate to a byte offset. The line is
// used as the row index and the 1-based column counts Unicode scalars;
// out-of-range values clamp to the line or buffer end.
func resolveCoord(snap *buffer.Snapshot, lc buffer.LineColumn) int {
	if lc.Line < 0 {
		return 0
	}
	if lc.Line >= snap.LineCount() {
		return snap.Len()
	}
	line := snap.Line(lc.Line)
	start := snap.LineStart(lc.Line)

	col := 1
	for i := range line {
		if col >= lc.Column {
			return start + i
		}
		col++
	}
	return start + len(line)
}

// Style returns the presentation style for this marker's severity.
func (m *Marker) Style() Style {
	return StyleFor(m.Severity)
}
