package editor

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/textcore/buffer"
	"github.com/dshills/textcore/config"
	"github.com/dshills/textcore/event"
	"github.com/dshills/textcore/marker"
	"github.com/dshills/textcore/provider"
	"github.com/dshills/textcore/rope"
	"github.com/dshills/textcore/wrap"
)

// Editor is the edit and selection controller. It owns the buffer,
// the soft-wrap state, the marker overlay, and the provider registry,
// and it sequences every mutation through a single ordered path.
//
// Editor methods are not safe for concurrent use. One goroutine owns
// the editor; background provider results rejoin that goroutine
// through the posted-closure queue drained by Flush.
type Editor struct {
	buf      *buffer.Buffer
	wrapper  *wrap.Wrapper
	markers  *marker.Set
	registry *provider.Registry
	bus      *event.Bus
	opts     config.Options
	uri      string

	sel Selection

	// Posted closures from background goroutines, drained by Flush
	// on the owning goroutine.
	postMu sync.Mutex
	posted []func()

	completion completionState
	hover      hoverState
	definition definitionState
	codeAction codeActionState

	openURL        func(string)
	runCommand     func(provider.Command)
	shaperOverride wrap.Shaper
}

// asyncState is the bookkeeping shared by every popover kind: the
// identity of the outstanding query and the popover phase. A result
// whose ID no longer matches is stale and dropped at apply time.
type asyncState struct {
	requestID uuid.UUID
	cancel    func()
	phase     Phase
}

type completionState struct {
	asyncState
	items      []provider.CompletionItem
	received   []provider.CompletionItem // unfiltered provider results
	queryStart int                       // byte offset where the live query begins
}

type hoverState struct {
	asyncState
	info *provider.HoverInfo
	gate buffer.Range // symbol range the outstanding query covers
}

type definitionState struct {
	asyncState
	links []provider.LocationLink
}

type codeActionState struct {
	asyncState
	actions []provider.CodeAction
}

// Option configures an Editor.
type Option func(*Editor)

// WithText sets the initial buffer content.
func WithText(text string) Option {
	return func(e *Editor) { e.buf = buffer.FromString(text) }
}

// WithOptions sets the editor options.
func WithOptions(opts config.Options) Option {
	return func(e *Editor) { e.opts = opts }
}

// WithRegistry injects the provider registry.
func WithRegistry(r *provider.Registry) Option {
	return func(e *Editor) { e.registry = r }
}

// WithShaper sets the measurement service for soft wrapping.
func WithShaper(s wrap.Shaper) Option {
	return func(e *Editor) { e.shaperOverride = s }
}

// WithBus sets the event bus notifications are published on.
func WithBus(b *event.Bus) Option {
	return func(e *Editor) { e.bus = b }
}

// WithURI sets the document URI used to tell local definition targets
// from external ones.
func WithURI(uri string) Option {
	return func(e *Editor) { e.uri = uri }
}

// WithOpenURL sets the callback for definition targets outside this
// document.
func WithOpenURL(fn func(string)) Option {
	return func(e *Editor) { e.openURL = fn }
}

// WithCommandRunner sets the callback for code action commands.
func WithCommandRunner(fn func(provider.Command)) Option {
	return func(e *Editor) { e.runCommand = fn }
}

// New creates an editor. Without options it edits an empty document
// with default settings, no providers, and monospace measurement.
func New(opts ...Option) *Editor {
	e := &Editor{
		buf:      buffer.New(),
		markers:  marker.NewSet(),
		registry: provider.NewRegistry(),
		bus:      event.NewBus(),
		opts:     config.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	shaper := e.shaperOverride
	if shaper == nil {
		shaper = wrap.NewMonoShaper(e.opts.TabWidth)
	}
	e.wrapper = wrap.NewWrapper(shaper, e.opts.WrapWidth)
	e.wrapper.UpdateAll(e.buf.Snapshot().Rope())
	return e
}

// Buffer returns the underlying buffer.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Bus returns the editor's event bus.
func (e *Editor) Bus() *event.Bus {
	return e.bus
}

// Options returns the current editor options.
func (e *Editor) Options() config.Options {
	return e.opts
}

// SetOptions applies new options, rewrapping if geometry changed.
func (e *Editor) SetOptions(opts config.Options) {
	prev := e.opts
	e.opts = opts
	if opts.WrapWidth != prev.WrapWidth {
		e.wrapper.SetWrapWidth(opts.WrapWidth)
		e.publish(event.TopicWrapInvalidated, nil)
	}
	if opts.TabWidth != prev.TabWidth && e.shaperOverride == nil {
		e.wrapper.SetShaper(wrap.NewMonoShaper(opts.TabWidth))
		e.publish(event.TopicWrapInvalidated, nil)
	}
	e.publish(event.TopicConfigReloaded, opts)
}

// Selection returns the current selection.
func (e *Editor) Selection() Selection {
	return e.sel
}

// SetSelection sets the selection, clipping both ends to character
// boundaries. Crossing ends are swapped.
func (e *Editor) SetSelection(start, end int, reversed bool) {
	start = e.buf.ClipOffset(start, rope.BiasLeft)
	end = e.buf.ClipOffset(end, rope.BiasLeft)
	if start > end {
		start, end = end, start
	}
	prev := e.sel
	e.sel = Selection{Start: start, End: end, Reversed: reversed && start != end}
	if e.sel != prev {
		e.caretMoved()
		e.publish(event.TopicSelectionMoved, e.sel)
	}
}

// MoveCaret collapses the selection to a caret at offset.
func (e *Editor) MoveCaret(offset int) {
	e.SetSelection(offset, offset, false)
}

// SelectWord selects the word at offset; without one, it collapses
// the caret there.
func (e *Editor) SelectWord(offset int) {
	if start, end, ok := e.buf.WordRange(offset); ok {
		e.SetSelection(start, end, false)
		return
	}
	e.MoveCaret(offset)
}

// Edit path. Every mutation funnels through applyEdit so the order is
// fixed: buffer, wrap state, selection, completion trigger, events.

// InsertText inserts text at the caret, replacing the selection if
// one exists.
func (e *Editor) InsertText(text string) error {
	return e.ReplaceRange(e.sel.Range(), text)
}

// DeleteBackward deletes the selection, or the character before the
// caret.
func (e *Editor) DeleteBackward() error {
	rng := e.sel.Range()
	if rng.IsEmpty() {
		if rng.Start == 0 {
			return nil
		}
		start := e.buf.ClipOffset(rng.Start-1, rope.BiasLeft)
		rng = buffer.Range{Start: start, End: rng.Start}
	}
	return e.ReplaceRange(rng, "")
}

// DeleteForward deletes the selection, or the character after the
// caret.
func (e *Editor) DeleteForward() error {
	rng := e.sel.Range()
	if rng.IsEmpty() {
		if rng.Start >= e.buf.Len() {
			return nil
		}
		end := e.buf.ClipOffset(rng.Start+1, rope.BiasRight)
		rng = buffer.Range{Start: rng.Start, End: end}
	}
	return e.ReplaceRange(rng, "")
}

// ReplaceRange replaces a byte range with text.
func (e *Editor) ReplaceRange(rng buffer.Range, text string) error {
	res, err := e.applyEdit(buffer.Edit{Range: rng, NewText: text})
	if err != nil {
		return err
	}
	e.sel = collapsed(res.NewRange.End)
	e.afterEdit(res, text)
	return nil
}

// applyEdit performs the buffer mutation and the incremental wrap
// update. Selection and notifications are the caller's concern.
func (e *Editor) applyEdit(edit buffer.Edit) (buffer.EditResult, error) {
	res, err := e.buf.ApplyEdit(edit)
	if err != nil {
		return buffer.EditResult{}, err
	}
	e.wrapper.Update(e.buf.Snapshot().Rope(), res.OldRange, len(edit.NewText))
	return res, nil
}

// afterEdit runs the post-mutation steps of the edit path.
func (e *Editor) afterEdit(res buffer.EditResult, inserted string) {
	e.checkCompletionTrigger(inserted)
	e.publish(event.TopicEditApplied, res)
	e.publish(event.TopicSelectionMoved, e.sel)
}

// checkCompletionTrigger runs the synchronous trigger test on the
// last typed character and dispatches or refreshes completion.
func (e *Editor) checkCompletionTrigger(inserted string) {
	p, ok := e.registry.Completion()
	if !ok || inserted == "" {
		e.hidePopover(PopoverCompletion)
		return
	}

	last, _ := utf8.DecodeLastRuneInString(inserted)
	switch {
	case p.IsCompletionTrigger(last):
		e.RequestCompletions(provider.CompletionContext{
			TriggerKind:      provider.TriggerCharacter,
			TriggerCharacter: last,
		})
	case e.completion.phase != PhaseHidden && isQueryRune(last):
		// Keep the popover alive and refilter against the grown
		// query.
		e.refreshCompletionFilter()
	default:
		e.hidePopover(PopoverCompletion)
	}
}

func isQueryRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// caretMoved enforces popover caret-exit rules.
func (e *Editor) caretMoved() {
	if e.completion.phase != PhaseHidden && e.sel.Caret() < e.completion.queryStart {
		e.hidePopover(PopoverCompletion)
	}
	if e.hover.phase == PhaseShown && e.hover.info != nil && !e.hover.info.Range.Contains(e.sel.Caret()) {
		e.hidePopover(PopoverHover)
	}
}

// FocusLost hides every popover and cancels outstanding queries.
func (e *Editor) FocusLost() {
	e.hidePopover(PopoverCompletion)
	e.hidePopover(PopoverHover)
	e.hidePopover(PopoverDefinition)
	e.hidePopover(PopoverCodeAction)
}

// Markers and diagnostics.

// SetMarkers replaces the marker overlay.
func (e *Editor) SetMarkers(markers []*marker.Marker) {
	e.markers.Replace(markers)
	e.publish(event.TopicMarkersUpdated, len(markers))
}

// PublishDiagnostics ingests a publishDiagnostics payload, replacing
// the marker overlay.
func (e *Editor) PublishDiagnostics(payload []byte) error {
	_, diags, err := marker.ParsePublishDiagnostics(payload)
	if err != nil {
		return err
	}
	e.SetMarkers(marker.FromDiagnostics(e.buf.Snapshot(), diags))
	return nil
}

// Markers returns the markers at or above the configured minimum
// severity, in publish order.
func (e *Editor) Markers() []*marker.Marker {
	all := e.markers.All()
	kept := make([]*marker.Marker, 0, len(all))
	for _, m := range all {
		if m.Severity.AtLeast(e.opts.MinSeverity) {
			kept = append(kept, m)
		}
	}
	return kept
}

// MaxSeverity returns the most severe marker present, or SeverityHint
// when there are none.
func (e *Editor) MaxSeverity() marker.Severity {
	return e.markers.MaxSeverity()
}

// MarkersInRange returns the visible markers intersecting a byte
// range, resolved against the current buffer.
func (e *Editor) MarkersInRange(start, end int) []*marker.Marker {
	snap := e.buf.Snapshot()
	found := e.markers.MarkersInRange(snap, start, end)
	kept := found[:0]
	for _, m := range found {
		if m.Severity.AtLeast(e.opts.MinSeverity) {
			kept = append(kept, m)
		}
	}
	return kept
}

// View-model queries.

// LineCount returns the number of hard lines.
func (e *Editor) LineCount() int {
	return e.buf.LineCount()
}

// SoftLineCount returns the number of soft lines after wrapping.
func (e *Editor) SoftLineCount() int {
	return e.wrapper.SoftLineCount()
}

// Layout returns the wrap geometry of a row.
func (e *Editor) Layout(row int) (wrap.Layout, bool) {
	return e.wrapper.Layout(row)
}

// LongestRow returns the row with the most bytes.
func (e *Editor) LongestRow() wrap.LongestRow {
	return e.wrapper.LongestRow()
}

// PopoverPhase returns the phase of one popover kind.
func (e *Editor) PopoverPhase(kind PopoverKind) Phase {
	return e.stateFor(kind).phase
}

// CompletionItems returns the items of a shown completion popover.
func (e *Editor) CompletionItems() []provider.CompletionItem {
	return e.completion.items
}

// HoverInfo returns the contents of a shown hover popover.
func (e *Editor) HoverInfo() *provider.HoverInfo {
	return e.hover.info
}

// DefinitionLinks returns the targets of a resolved definition query.
func (e *Editor) DefinitionLinks() []provider.LocationLink {
	return e.definition.links
}

// CodeActions returns the actions of a shown code action popover.
func (e *Editor) CodeActions() []provider.CodeAction {
	return e.codeAction.actions
}

func (e *Editor) publish(topic event.Topic, payload any) {
	e.bus.Publish(event.New(topic, payload, "editor"))
}
