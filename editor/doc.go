// Package editor is the edit and selection controller tying the core
// together: buffer, soft-wrap state, marker overlay, and language
// providers.
//
// Every mutation runs one ordered sequence: buffer change, incremental
// wrap update, selection adjustment, completion trigger check, event
// publish. That order is the package's central invariant; view-model
// queries between mutations always see a consistent trio of buffer,
// wrap state, and selection.
//
// Provider queries run on background goroutines against immutable
// snapshots. Results come back as closures on a posted queue and only
// take effect when the owning goroutine calls Flush, after an
// identity check drops anything stale. One query per kind is in
// flight at a time; a new trigger replaces the old query instead of
// queueing behind it.
package editor
