package provider

import "github.com/dshills/textcore/buffer"

// CompletionItemKind follows the LSP numbering.
type CompletionItemKind int

const (
	KindText          CompletionItemKind = 1
	KindMethod        CompletionItemKind = 2
	KindFunction      CompletionItemKind = 3
	KindConstructor   CompletionItemKind = 4
	KindField         CompletionItemKind = 5
	KindVariable      CompletionItemKind = 6
	KindClass         CompletionItemKind = 7
	KindInterface     CompletionItemKind = 8
	KindModule        CompletionItemKind = 9
	KindProperty      CompletionItemKind = 10
	KindKeyword       CompletionItemKind = 14
	KindSnippet       CompletionItemKind = 15
	KindConstant      CompletionItemKind = 21
	KindStruct        CompletionItemKind = 22
	KindTypeParameter CompletionItemKind = 25
)

// CompletionItem is one completion candidate.
type CompletionItem struct {
	Label         string
	Kind          CompletionItemKind
	Detail        string
	Documentation string
	FilterText    string // text to match against; Label when empty
	SortText      string // sort key; Label when empty
	InsertText    string // text to insert; Label when empty
	Preselect     bool
	TextEdit      *TextEdit
	Command       *Command
}

// Insert returns the text this item inserts when accepted.
func (ci CompletionItem) Insert() string {
	if ci.TextEdit != nil {
		return ci.TextEdit.NewText
	}
	if ci.InsertText != "" {
		return ci.InsertText
	}
	return ci.Label
}

// CompletionList is a provider's response to a completion query.
type CompletionList struct {
	Items        []CompletionItem
	IsIncomplete bool // true when retyping should re-query
}

// CompletionTriggerKind says why a completion query fired.
type CompletionTriggerKind int

const (
	TriggerInvoked          CompletionTriggerKind = 1 // explicit request
	TriggerCharacter        CompletionTriggerKind = 2 // a trigger character was typed
	TriggerForIncompleteSet CompletionTriggerKind = 3 // refining an incomplete list
)

// CompletionContext carries the trigger of a completion query.
type CompletionContext struct {
	TriggerKind      CompletionTriggerKind
	TriggerCharacter rune // set when TriggerKind is TriggerCharacter
}

// HoverInfo is a provider's answer to a hover query. Range is the
// byte range of the symbol the contents describe; the editor uses it
// to keep a shown hover stable while the pointer stays on the symbol.
type HoverInfo struct {
	Contents string
	Kind     string // markup kind, "plaintext" or "markdown"
	Range    buffer.Range
}

// LocationLink points at a definition target. TargetStart and
// TargetEnd use wire positions within the target document.
type LocationLink struct {
	TargetURI   string
	TargetStart buffer.Position
	TargetEnd   buffer.Position
}

// TextEdit is a single wire-coordinate replacement.
type TextEdit struct {
	Start   buffer.Position
	End     buffer.Position
	NewText string
}

// Command is an action to invoke on the backend.
type Command struct {
	Title string
	ID    string
	Args  []string
}

// CodeAction is one action offered for a range.
type CodeAction struct {
	Title       string
	Kind        string // e.g. "quickfix", "refactor.extract"
	IsPreferred bool
	Edits       []TextEdit
	Command     *Command
	ProviderID  string // set by the editor when aggregating
}
