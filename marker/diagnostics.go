package marker

import (
	"errors"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/dshills/textcore/buffer"
)

// ErrInvalidPayload is returned for diagnostics JSON that does not
// carry the publishDiagnostics shape.
var ErrInvalidPayload = errors.New("invalid publishDiagnostics payload")

// Diagnostic is one entry from a textDocument/publishDiagnostics
// notification. Positions use the wire convention: 0-based lines and
// UTF-16 characters.
type Diagnostic struct {
	Start    buffer.Position
	End      buffer.Position
	Severity Severity
	Message  string
	Source   string
	Code     string
}

// ParsePublishDiagnostics extracts the document URI and diagnostics
// from a publishDiagnostics payload. The payload may be the params
// object itself or a full JSON-RPC notification wrapping it.
func ParsePublishDiagnostics(data []byte) (string, []Diagnostic, error) {
	if !gjson.ValidBytes(data) {
		return "", nil, ErrInvalidPayload
	}

	params := gjson.ParseBytes(data)
	if wrapped := params.Get("params"); wrapped.Exists() {
		params = wrapped
	}

	uri := params.Get("uri")
	list := params.Get("diagnostics")
	if !uri.Exists() || !list.IsArray() {
		return "", nil, ErrInvalidPayload
	}

	var diags []Diagnostic
	list.ForEach(func(_, item gjson.Result) bool {
		d := Diagnostic{
			Start: buffer.Position{
				Line:      int(item.Get("range.start.line").Int()),
				Character: int(item.Get("range.start.character").Int()),
			},
			End: buffer.Position{
				Line:      int(item.Get("range.end.line").Int()),
				Character: int(item.Get("range.end.character").Int()),
			},
			Severity: SeverityHint,
			Message:  item.Get("message").String(),
			Source:   item.Get("source").String(),
			Code:     item.Get("code").String(),
		}
		if sev := item.Get("severity"); sev.Exists() {
			if n := Severity(sev.Int()); n >= SeverityError && n <= SeverityHint {
				d.Severity = n
			}
		}
		diags = append(diags, d)
		return true
	})

	return uri.String(), diags, nil
}

// FromDiagnostics converts wire diagnostics into markers, translating
// UTF-16 positions into marker coordinates against snap.
func FromDiagnostics(snap *buffer.Snapshot, diags []Diagnostic) []*Marker {
	markers := make([]*Marker, 0, len(diags))
	for _, d := range diags {
		m := &Marker{
			Severity: d.Severity,
			Start:    coordAt(snap, snap.PositionToOffset(d.Start)),
			End:      coordAt(snap, snap.PositionToOffset(d.End)),
			Message:  d.Message,
			Source:   d.Source,
			Code:     d.Code,
		}
		markers = append(markers, m)
	}
	return markers
}

// coordAt converts a byte offset into the marker coordinate
// convention: row index plus 1-based scalar column.
func coordAt(snap *buffer.Snapshot, offset int) buffer.LineColumn {
	p := snap.OffsetToPoint(offset)
	col := utf8.RuneCountInString(snap.TextRange(snap.LineStart(p.Line), offset)) + 1
	return buffer.LineColumn{Line: p.Line, Column: col}
}
