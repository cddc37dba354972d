package rope

import "testing"

const wordFixture = "Hello\nWorld\r\nThis is a test 中文 世界\nRope"

func TestWordRange(t *testing.T) {
	r := FromString(wordFixture)

	tests := []struct {
		name   string
		offset int
		start  int
		end    int
	}{
		{"start of word", 0, 0, 5},
		{"middle of word", 2, 0, 5},
		{"end of word expands left", 5, 0, 5},
		{"second line", 7, 6, 11},
		{"cjk word", 28, 28, 34},
		{"inside multi-byte char", 31, 28, 34},
		{"third line word", 13, 13, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := r.WordRange(tt.offset)
			if !ok {
				t.Fatalf("WordRange(%d) returned no word", tt.offset)
			}
			if start != tt.start || end != tt.end {
				t.Errorf("WordRange(%d) = [%d, %d), want [%d, %d)", tt.offset, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestWordRangeNone(t *testing.T) {
	r := FromString(wordFixture)

	// Offset 12 sits between '\r' and '\n'; neither side is a word
	// character.
	if _, _, ok := r.WordRange(12); ok {
		t.Error("expected no word between line-break characters")
	}

	spaces := FromString("   ")
	if _, _, ok := spaces.WordRange(1); ok {
		t.Error("expected no word inside whitespace")
	}

	if _, _, ok := New().WordRange(0); ok {
		t.Error("expected no word in empty rope")
	}
}

func TestWordRangeDoesNotCrossLines(t *testing.T) {
	r := FromString("one\ntwo")

	start, end, ok := r.WordRange(3)
	if !ok {
		t.Fatal("expected the word before the newline")
	}
	if start != 0 || end != 3 {
		t.Errorf("WordRange(3) = [%d, %d), want [0, 3)", start, end)
	}

	start, end, ok = r.WordRange(4)
	if !ok {
		t.Fatal("expected the word after the newline")
	}
	if start != 4 || end != 7 {
		t.Errorf("WordRange(4) = [%d, %d), want [4, 7)", start, end)
	}
}

func TestWordAt(t *testing.T) {
	r := FromString(wordFixture)

	if got := r.WordAt(7); got != "World" {
		t.Errorf("WordAt(7) = %q, want 'World'", got)
	}
	if got := r.WordAt(31); got != "中文" {
		t.Errorf("WordAt(31) = %q, want '中文'", got)
	}
	if got := r.WordAt(12); got != "" {
		t.Errorf("WordAt(12) = %q, want empty", got)
	}
}

func TestWordRangeUnderscore(t *testing.T) {
	r := FromString("my_var_name = 1")

	start, end, ok := r.WordRange(4)
	if !ok {
		t.Fatal("expected a word")
	}
	if start != 0 || end != 11 {
		t.Errorf("WordRange(4) = [%d, %d), want [0, 11)", start, end)
	}
}
