package provider

import (
	"context"

	"github.com/dshills/textcore/buffer"
)

// CompletionProvider supplies completion candidates.
type CompletionProvider interface {
	// Completions returns candidates for the given byte offset.
	// Implementations must honor ctx cancellation; a canceled query
	// should return ctx.Err().
	Completions(ctx context.Context, snap *buffer.Snapshot, offset int, cc CompletionContext) (CompletionList, error)

	// IsCompletionTrigger reports whether typing ch should open
	// completion. Called synchronously on the edit path; it must be
	// fast and must not block.
	IsCompletionTrigger(ch rune) bool
}

// HoverProvider supplies hover contents for a position.
type HoverProvider interface {
	Hover(ctx context.Context, snap *buffer.Snapshot, offset int) (*HoverInfo, error)
}

// DefinitionProvider resolves definition targets for a position.
type DefinitionProvider interface {
	Definitions(ctx context.Context, snap *buffer.Snapshot, offset int) ([]LocationLink, error)
}

// CodeActionProvider offers actions for a range. Multiple providers
// may be registered; the editor aggregates their results.
type CodeActionProvider interface {
	CodeActions(ctx context.Context, snap *buffer.Snapshot, rng buffer.Range) ([]CodeAction, error)
}
