package editor

import (
	"context"

	"github.com/google/uuid"

	"github.com/dshills/textcore/buffer"
	"github.com/dshills/textcore/event"
	"github.com/dshills/textcore/provider"
)

// post queues fn to run on the owning goroutine. Safe to call from
// any goroutine.
func (e *Editor) post(fn func()) {
	e.postMu.Lock()
	e.posted = append(e.posted, fn)
	e.postMu.Unlock()
}

// Flush runs queued closures from background work. The owning
// goroutine calls this from its loop; provider results only take
// effect here, which keeps every state change on the main sequence.
func (e *Editor) Flush() {
	for {
		e.postMu.Lock()
		if len(e.posted) == 0 {
			e.postMu.Unlock()
			return
		}
		fn := e.posted[0]
		e.posted = e.posted[1:]
		e.postMu.Unlock()
		fn()
	}
}

func (e *Editor) stateFor(kind PopoverKind) *asyncState {
	switch kind {
	case PopoverCompletion:
		return &e.completion.asyncState
	case PopoverHover:
		return &e.hover.asyncState
	case PopoverDefinition:
		return &e.definition.asyncState
	default:
		return &e.codeAction.asyncState
	}
}

// begin starts a new query for kind: the previous in-flight query is
// canceled, a fresh request identity is minted, and the popover moves
// to Pending.
func (e *Editor) begin(kind PopoverKind) (uuid.UUID, context.Context) {
	st := e.stateFor(kind)
	if st.cancel != nil {
		st.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	st.requestID = uuid.New()
	st.cancel = cancel
	e.setPhase(kind, PhasePending)
	return st.requestID, ctx
}

// current reports whether id still identifies kind's outstanding
// query. Stale results check this at apply time and drop silently.
func (e *Editor) current(kind PopoverKind, id uuid.UUID) bool {
	return e.stateFor(kind).requestID == id
}

func (e *Editor) setPhase(kind PopoverKind, phase Phase) {
	st := e.stateFor(kind)
	if st.phase == phase {
		return
	}
	st.phase = phase
	e.publish(event.TopicPopoverChanged, PopoverChange{Kind: kind, Phase: phase})
}

// hidePopover forces a popover to Hidden, canceling any outstanding
// query and clearing its results.
func (e *Editor) hidePopover(kind PopoverKind) {
	st := e.stateFor(kind)
	if st.cancel != nil {
		st.cancel()
		st.cancel = nil
	}
	st.requestID = uuid.Nil
	switch kind {
	case PopoverCompletion:
		e.completion.items = nil
		e.completion.received = nil
	case PopoverHover:
		e.hover.info = nil
		e.hover.gate = buffer.Range{}
	case PopoverDefinition:
		e.definition.links = nil
	case PopoverCodeAction:
		e.codeAction.actions = nil
	}
	e.setPhase(kind, PhaseHidden)
}

// Completion.

// RequestCompletions dispatches a completion query at the caret. A
// query already in flight is replaced, not queued.
func (e *Editor) RequestCompletions(cc provider.CompletionContext) {
	p, ok := e.registry.Completion()
	if !ok {
		return
	}

	caret := e.sel.Caret()
	if start, _, ok := e.buf.WordRange(caret); ok && start < caret {
		e.completion.queryStart = start
	} else {
		e.completion.queryStart = caret
	}

	id, ctx := e.begin(PopoverCompletion)
	snap := e.buf.Snapshot()

	go func() {
		list, err := p.Completions(ctx, snap, caret, cc)
		e.post(func() {
			if !e.current(PopoverCompletion, id) {
				return
			}
			e.stateFor(PopoverCompletion).cancel = nil
			if err != nil {
				logger.Warn("completion query failed", "error", err)
				e.hidePopover(PopoverCompletion)
				return
			}
			if len(list.Items) == 0 {
				e.hidePopover(PopoverCompletion)
				return
			}
			e.completion.received = list.Items
			e.refreshCompletionFilter()
		})
	}()
}

// refreshCompletionFilter refilters the received items against the
// live query text and shows or hides the popover accordingly.
func (e *Editor) refreshCompletionFilter() {
	if e.completion.received == nil {
		return
	}
	query := e.completionQuery()
	items := provider.FilterCompletions(e.completion.received, query)
	items = provider.SortCompletions(items, query)
	if max := e.opts.MaxCompletionResults; len(items) > max {
		items = items[:max]
	}
	e.completion.items = items
	if len(items) == 0 {
		e.hidePopover(PopoverCompletion)
		return
	}
	e.setPhase(PopoverCompletion, PhaseShown)
}

// completionQuery returns the text between the query start and the
// caret, read from the current buffer.
func (e *Editor) completionQuery() string {
	caret := e.sel.Caret()
	if e.completion.queryStart >= caret {
		return ""
	}
	return e.buf.TextRange(e.completion.queryStart, caret)
}

// AcceptCompletion applies a completion item and hides the popover.
func (e *Editor) AcceptCompletion(item provider.CompletionItem) error {
	defer e.hidePopover(PopoverCompletion)

	if item.TextEdit != nil {
		return e.ApplyTextEdits([]provider.TextEdit{*item.TextEdit})
	}
	rng := buffer.Range{Start: e.completion.queryStart, End: e.sel.Caret()}
	return e.ReplaceRange(rng, item.Insert())
}

// Hover.

// RequestHover dispatches a hover query for the symbol at offset. A
// shown or pending hover for the same symbol absorbs the request, so
// pointer jitter within one symbol does not churn queries.
func (e *Editor) RequestHover(offset int) {
	p, ok := e.registry.Hover()
	if !ok {
		return
	}

	if e.hover.phase == PhaseShown && e.hover.info != nil && e.hover.info.Range.Contains(offset) {
		return
	}
	if e.hover.phase == PhasePending && e.hover.gate.Contains(offset) {
		return
	}

	gate := buffer.Range{Start: offset, End: offset + 1}
	if start, end, ok := e.buf.WordRange(offset); ok {
		gate = buffer.Range{Start: start, End: end}
	}
	e.hover.gate = gate

	id, ctx := e.begin(PopoverHover)
	snap := e.buf.Snapshot()

	go func() {
		info, err := p.Hover(ctx, snap, offset)
		e.post(func() {
			if !e.current(PopoverHover, id) {
				return
			}
			e.stateFor(PopoverHover).cancel = nil
			if err != nil {
				logger.Warn("hover query failed", "error", err)
				e.hidePopover(PopoverHover)
				return
			}
			if info == nil || info.Contents == "" {
				e.hidePopover(PopoverHover)
				return
			}
			e.hover.info = info
			e.setPhase(PopoverHover, PhaseShown)
		})
	}()
}

// Definition.

// RequestDefinition dispatches a definition query at offset.
func (e *Editor) RequestDefinition(offset int) {
	p, ok := e.registry.Definition()
	if !ok {
		return
	}

	id, ctx := e.begin(PopoverDefinition)
	snap := e.buf.Snapshot()

	go func() {
		links, err := p.Definitions(ctx, snap, offset)
		e.post(func() {
			if !e.current(PopoverDefinition, id) {
				return
			}
			e.stateFor(PopoverDefinition).cancel = nil
			if err != nil {
				logger.Warn("definition query failed", "error", err)
				e.hidePopover(PopoverDefinition)
				return
			}
			if len(links) == 0 {
				e.hidePopover(PopoverDefinition)
				return
			}
			e.definition.links = links
			e.setPhase(PopoverDefinition, PhaseShown)
		})
	}()
}

// ApplyDefinition navigates to a definition target: selection moves
// for targets in this document, the open-URL callback handles the
// rest.
func (e *Editor) ApplyDefinition(link provider.LocationLink) {
	defer e.hidePopover(PopoverDefinition)

	if link.TargetURI == "" || link.TargetURI == e.uri {
		start := e.buf.PositionToOffset(link.TargetStart)
		end := e.buf.PositionToOffset(link.TargetEnd)
		e.SetSelection(start, end, false)
		return
	}
	if e.openURL != nil {
		e.openURL(link.TargetURI)
		return
	}
	logger.Warn("no URL handler for external definition", "uri", link.TargetURI)
}

// Code actions.

// RequestCodeActions queries every registered code action provider
// for the current selection. Provider failures degrade to missing
// results; they are logged, never surfaced.
func (e *Editor) RequestCodeActions() {
	ids := e.registry.CodeActionIDs()
	if len(ids) == 0 {
		return
	}

	rng := e.sel.Range()
	id, ctx := e.begin(PopoverCodeAction)
	snap := e.buf.Snapshot()

	go func() {
		var actions []provider.CodeAction
		for _, pid := range ids {
			p, ok := e.registry.CodeAction(pid)
			if !ok {
				continue
			}
			got, err := p.CodeActions(ctx, snap, rng)
			if err != nil {
				logger.Warn("code action provider failed", "provider", pid, "error", err)
				continue
			}
			for _, a := range got {
				a.ProviderID = pid
				actions = append(actions, a)
			}
		}
		e.post(func() {
			if !e.current(PopoverCodeAction, id) {
				return
			}
			e.stateFor(PopoverCodeAction).cancel = nil
			if len(actions) == 0 {
				e.hidePopover(PopoverCodeAction)
				return
			}
			e.codeAction.actions = actions
			e.setPhase(PopoverCodeAction, PhaseShown)
		})
	}()
}

// ApplyCodeAction applies an action's edits and runs its command
// through the configured runner.
func (e *Editor) ApplyCodeAction(action provider.CodeAction) error {
	defer e.hidePopover(PopoverCodeAction)

	if len(action.Edits) > 0 {
		if err := e.ApplyTextEdits(action.Edits); err != nil {
			return err
		}
	}
	if action.Command != nil {
		if e.runCommand != nil {
			e.runCommand(*action.Command)
		} else {
			logger.Warn("no command runner for code action", "command", action.Command.ID)
		}
	}
	return nil
}
