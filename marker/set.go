package marker

import (
	"cmp"
	"sort"

	"github.com/rdleal/intervalst/interval"

	"github.com/dshills/textcore/buffer"
)

// Set holds the current markers for a buffer behind an interval tree.
// Replacing the markers swaps the whole list, matching how language
// servers publish diagnostics: each publish supersedes the last.
//
// Set is not safe for concurrent use; the owning editor serializes
// access.
type Set struct {
	markers []*Marker
	tree    *interval.MultiValueSearchTree[*Marker, int]
	indexed buffer.Revision
}

// NewSet creates an empty marker set.
func NewSet() *Set {
	return &Set{}
}

// Replace swaps in a new marker list, dropping all previous markers.
func (s *Set) Replace(markers []*Marker) {
	s.markers = markers
	s.tree = nil
	s.indexed = 0
}

// Clear removes all markers.
func (s *Set) Clear() {
	s.Replace(nil)
}

// Len returns the number of markers.
func (s *Set) Len() int {
	return len(s.markers)
}

// All returns the markers in publish order.
func (s *Set) All() []*Marker {
	return s.markers
}

// MaxSeverity returns the most severe marker present, or SeverityHint
// for an empty set.
func (s *Set) MaxSeverity() Severity {
	most := SeverityHint
	for _, m := range s.markers {
		if m.Severity.AtLeast(most) {
			most = m.Severity
		}
	}
	return most
}

// index rebuilds the interval tree against snap if the buffer has
// changed since the last build.
func (s *Set) index(snap *buffer.Snapshot) {
	if s.tree != nil && s.indexed == snap.Revision() {
		return
	}

	tree := interval.NewMultiValueSearchTree[*Marker](func(a, b int) int {
		return cmp.Compare(a, b)
	})
	for _, m := range s.markers {
		r := m.Resolve(snap)
		end := r.End
		// Zero-length markers still occupy their start position.
		if end == r.Start {
			end = r.Start + 1
		}
		tree.Insert(r.Start, end, m)
	}
	s.tree = tree
	s.indexed = snap.Revision()
}

// MarkersInRange returns the markers whose resolved ranges intersect
// [start, end), ordered by start offset then severity.
func (s *Set) MarkersInRange(snap *buffer.Snapshot, start, end int) []*Marker {
	if len(s.markers) == 0 || start >= end {
		return nil
	}
	s.index(snap)

	found, ok := s.tree.AllIntersections(start, end)
	if !ok {
		return nil
	}
	sortMarkers(snap, found)
	return found
}

// MarkersAt returns the markers covering the given byte offset.
func (s *Set) MarkersAt(snap *buffer.Snapshot, offset int) []*Marker {
	return s.MarkersInRange(snap, offset, offset+1)
}

func sortMarkers(snap *buffer.Snapshot, markers []*Marker) {
	sort.SliceStable(markers, func(i, j int) bool {
		ri, rj := markers[i].Resolve(snap), markers[j].Resolve(snap)
		if ri.Start != rj.Start {
			return ri.Start < rj.Start
		}
		return markers[i].Severity < markers[j].Severity
	})
}
