package provider

import "sort"

// Registry holds the providers available to an editor. It is built
// explicitly and injected; at most one completion, hover, and
// definition provider, and any number of code action providers keyed
// by a stable ID.
//
// A Registry is immutable after construction.
type Registry struct {
	completion CompletionProvider
	hover      HoverProvider
	definition DefinitionProvider
	actions    map[string]CodeActionProvider
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithCompletion sets the completion provider.
func WithCompletion(p CompletionProvider) RegistryOption {
	return func(r *Registry) { r.completion = p }
}

// WithHover sets the hover provider.
func WithHover(p HoverProvider) RegistryOption {
	return func(r *Registry) { r.hover = p }
}

// WithDefinition sets the definition provider.
func WithDefinition(p DefinitionProvider) RegistryOption {
	return func(r *Registry) { r.definition = p }
}

// WithCodeAction registers a code action provider under id. A second
// registration with the same id replaces the first.
func WithCodeAction(id string, p CodeActionProvider) RegistryOption {
	return func(r *Registry) { r.actions[id] = p }
}

// NewRegistry builds a registry from the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{actions: make(map[string]CodeActionProvider)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Completion returns the completion provider, if any.
func (r *Registry) Completion() (CompletionProvider, bool) {
	return r.completion, r.completion != nil
}

// Hover returns the hover provider, if any.
func (r *Registry) Hover() (HoverProvider, bool) {
	return r.hover, r.hover != nil
}

// Definition returns the definition provider, if any.
func (r *Registry) Definition() (DefinitionProvider, bool) {
	return r.definition, r.definition != nil
}

// CodeAction returns the provider registered under id.
func (r *Registry) CodeAction(id string) (CodeActionProvider, bool) {
	p, ok := r.actions[id]
	return p, ok
}

// CodeActionIDs returns the registered code action IDs in sorted
// order, so aggregation is deterministic.
func (r *Registry) CodeActionIDs() []string {
	ids := make([]string, 0, len(r.actions))
	for id := range r.actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
