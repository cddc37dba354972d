// Package provider defines the boundary contracts between the editing
// core and language intelligence backends.
//
// A backend implements one or more of the provider interfaces:
// completions, hover, definitions, code actions. Every asynchronous
// operation takes a context.Context for cancellation and an immutable
// buffer snapshot, so a slow backend never blocks or races the editor.
//
// The Registry is plain dependency injection: it is constructed
// explicitly with the providers an embedder wants and handed to the
// editor. There are no global registration side effects.
//
// Positions in wire-facing value types (TextEdit, LocationLink) use
// the UTF-16 convention language servers speak.
package provider
