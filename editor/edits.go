package editor

import (
	"sort"

	"github.com/dshills/textcore/buffer"
	"github.com/dshills/textcore/event"
	"github.com/dshills/textcore/provider"
)

// ApplyTextEdits applies provider edits to the buffer. The wire
// coordinates are translated against the buffer as it is now; if the
// buffer changed since the provider computed them, the edits land
// where the coordinates say today. Edits are applied bottom-up so
// earlier ones do not shift later ones.
func (e *Editor) ApplyTextEdits(edits []provider.TextEdit) error {
	if len(edits) == 0 {
		return nil
	}

	resolved := make([]buffer.Edit, 0, len(edits))
	for _, te := range edits {
		start := e.buf.PositionToOffset(te.Start)
		end := e.buf.PositionToOffset(te.End)
		if end < start {
			start, end = end, start
		}
		resolved = append(resolved, buffer.Edit{
			Range:   buffer.Range{Start: start, End: end},
			NewText: te.NewText,
		})
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].Range.Start > resolved[j].Range.Start
	})

	for _, edit := range resolved {
		res, err := e.applyEdit(edit)
		if err != nil {
			return err
		}
		e.sel = adjustSelection(e.sel, res)
		e.publish(event.TopicEditApplied, res)
	}
	e.publish(event.TopicSelectionMoved, e.sel)
	return nil
}
