package provider

import (
	"context"
	"testing"

	"github.com/dshills/textcore/buffer"
)

type stubCompletion struct{}

func (stubCompletion) Completions(context.Context, *buffer.Snapshot, int, CompletionContext) (CompletionList, error) {
	return CompletionList{}, nil
}
func (stubCompletion) IsCompletionTrigger(ch rune) bool { return ch == '.' }

type stubActions struct{ id string }

func (s stubActions) CodeActions(context.Context, *buffer.Snapshot, buffer.Range) ([]CodeAction, error) {
	return []CodeAction{{Title: s.id}}, nil
}

func TestEmptyRegistry(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Completion(); ok {
		t.Error("empty registry has no completion provider")
	}
	if _, ok := r.Hover(); ok {
		t.Error("empty registry has no hover provider")
	}
	if _, ok := r.Definition(); ok {
		t.Error("empty registry has no definition provider")
	}
	if ids := r.CodeActionIDs(); len(ids) != 0 {
		t.Errorf("empty registry has action ids %v", ids)
	}
}

func TestRegistryCompletion(t *testing.T) {
	r := NewRegistry(WithCompletion(stubCompletion{}))

	p, ok := r.Completion()
	if !ok {
		t.Fatal("completion provider missing")
	}
	if !p.IsCompletionTrigger('.') || p.IsCompletionTrigger('x') {
		t.Error("trigger check not wired through")
	}
}

func TestRegistryCodeActionIDsSorted(t *testing.T) {
	r := NewRegistry(
		WithCodeAction("zed", stubActions{"zed"}),
		WithCodeAction("alpha", stubActions{"alpha"}),
		WithCodeAction("mid", stubActions{"mid"}),
	)

	ids := r.CodeActionIDs()
	want := []string{"alpha", "mid", "zed"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}

	if _, ok := r.CodeAction("mid"); !ok {
		t.Error("lookup by id failed")
	}
	if _, ok := r.CodeAction("nope"); ok {
		t.Error("unknown id should miss")
	}
}

func TestRegistryCodeActionReplaced(t *testing.T) {
	r := NewRegistry(
		WithCodeAction("dup", stubActions{"first"}),
		WithCodeAction("dup", stubActions{"second"}),
	)

	if len(r.CodeActionIDs()) != 1 {
		t.Fatalf("duplicate id not collapsed: %v", r.CodeActionIDs())
	}
	p, _ := r.CodeAction("dup")
	actions, _ := p.CodeActions(context.Background(), nil, buffer.Range{})
	if actions[0].Title != "second" {
		t.Errorf("later registration should win, got %q", actions[0].Title)
	}
}
