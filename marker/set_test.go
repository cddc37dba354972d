package marker

import (
	"testing"

	"github.com/dshills/textcore/buffer"
)

func lc(line, col int) buffer.LineColumn {
	return buffer.LineColumn{Line: line, Column: col}
}

func TestSetReplace(t *testing.T) {
	s := NewSet()

	s.Replace([]*Marker{
		New(SeverityError, lc(0, 1), lc(0, 3), "first"),
		New(SeverityWarning, lc(1, 1), lc(1, 3), "second"),
	})
	if s.Len() != 2 {
		t.Fatalf("len = %d", s.Len())
	}

	// A publish supersedes the previous one.
	s.Replace([]*Marker{New(SeverityInfo, lc(0, 1), lc(0, 2), "only")})
	if s.Len() != 1 {
		t.Errorf("replace did not supersede: len %d", s.Len())
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("clear left %d markers", s.Len())
	}
}

func TestMarkersInRange(t *testing.T) {
	b := buffer.FromString("aaaa\nbbbb\ncccc\n")
	s := NewSet()
	s.Replace([]*Marker{
		New(SeverityError, lc(0, 1), lc(0, 5), "line one"),   // bytes 0..4
		New(SeverityWarning, lc(1, 1), lc(1, 5), "line two"), // bytes 5..9
		New(SeverityInfo, lc(2, 1), lc(2, 5), "line three"),  // bytes 10..14
	})
	snap := b.Snapshot()

	got := s.MarkersInRange(snap, 5, 9)
	if len(got) != 1 || got[0].Message != "line two" {
		t.Fatalf("range 5..9 gave %v", got)
	}

	got = s.MarkersInRange(snap, 0, 15)
	if len(got) != 3 {
		t.Fatalf("full range gave %d markers", len(got))
	}
	// Ordered by start offset.
	if got[0].Message != "line one" || got[2].Message != "line three" {
		t.Errorf("order: %v, %v, %v", got[0].Message, got[1].Message, got[2].Message)
	}

	if got := s.MarkersInRange(snap, 20, 30); len(got) != 0 {
		t.Errorf("empty region gave %d markers", len(got))
	}
	if got := s.MarkersInRange(snap, 9, 5); len(got) != 0 {
		t.Errorf("inverted range gave %d markers", len(got))
	}
}

func TestMarkersAt(t *testing.T) {
	b := buffer.FromString("hello world")
	s := NewSet()
	s.Replace([]*Marker{
		New(SeverityError, lc(0, 1), lc(0, 6), "on hello"),
		New(SeverityWarning, lc(0, 7), lc(0, 12), "on world"),
	})
	snap := b.Snapshot()

	if got := s.MarkersAt(snap, 2); len(got) != 1 || got[0].Message != "on hello" {
		t.Errorf("at 2: %v", got)
	}
	if got := s.MarkersAt(snap, 8); len(got) != 1 || got[0].Message != "on world" {
		t.Errorf("at 8: %v", got)
	}
	// Half-open: the end offset is outside.
	if got := s.MarkersAt(snap, 5); len(got) != 0 {
		t.Errorf("at 5: %v", got)
	}
}

func TestMarkersAtZeroLength(t *testing.T) {
	b := buffer.FromString("hello")
	s := NewSet()
	s.Replace([]*Marker{New(SeverityError, lc(0, 3), lc(0, 3), "point")})

	if got := s.MarkersAt(b.Snapshot(), 2); len(got) != 1 {
		t.Errorf("zero-length marker not found at its position: %v", got)
	}
}

func TestSetReindexesAfterEdit(t *testing.T) {
	b := buffer.FromString("hello world")
	s := NewSet()
	s.Replace([]*Marker{New(SeverityError, lc(0, 7), lc(0, 12), "on world")})

	if got := s.MarkersAt(b.Snapshot(), 8); len(got) != 1 {
		t.Fatalf("initial query: %v", got)
	}

	// A new first line pulls the marker's row out from under the old
	// byte range: it now clamps to the end of "say".
	if _, err := b.Insert(0, "say\n"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	snap := b.Snapshot()

	if got := s.MarkersAt(snap, 8); len(got) != 0 {
		t.Errorf("stale index hit: %v", got)
	}
	if got := s.MarkersAt(snap, 3); len(got) != 1 {
		t.Errorf("reindexed query missed: %v", got)
	}
}

func TestMaxSeverity(t *testing.T) {
	s := NewSet()
	if s.MaxSeverity() != SeverityHint {
		t.Error("empty set should report hint")
	}

	s.Replace([]*Marker{
		New(SeverityInfo, lc(0, 1), lc(0, 2), "i"),
		New(SeverityError, lc(0, 3), lc(0, 4), "e"),
		New(SeverityWarning, lc(0, 5), lc(0, 6), "w"),
	})
	if s.MaxSeverity() != SeverityError {
		t.Errorf("max severity = %v", s.MaxSeverity())
	}
}
