package wrap

import "testing"

func TestMonoAdvance(t *testing.T) {
	m := NewMonoShaper(4)

	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"中文", 4},
		{"a中b", 4},
		{"\t", 4},
		{"a\tb", 6},
		{"🎉", 2},
	}
	for _, tt := range tests {
		if got := m.Advance(tt.s); got != tt.want {
			t.Errorf("Advance(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestMonoTabWidth(t *testing.T) {
	if got := NewMonoShaper(8).Advance("\t"); got != 8 {
		t.Errorf("tab width 8 gave %d", got)
	}
	// Zero falls back to 4.
	if got := (MonoShaper{}).Advance("\t"); got != 4 {
		t.Errorf("default tab width gave %d", got)
	}
}

func TestWrapLineFits(t *testing.T) {
	m := NewMonoShaper(4)

	if breaks := m.WrapLine("short", 10); len(breaks) != 0 {
		t.Errorf("fitting line wrapped: %v", breaks)
	}
	if breaks := m.WrapLine("", 10); len(breaks) != 0 {
		t.Errorf("empty line wrapped: %v", breaks)
	}
	if breaks := m.WrapLine("anything", 0); len(breaks) != 0 {
		t.Errorf("zero width wrapped: %v", breaks)
	}
}

func TestWrapLinePrefersWordBoundary(t *testing.T) {
	m := NewMonoShaper(4)

	breaks := m.WrapLine("hello world foo", 10)
	if len(breaks) != 1 || breaks[0] != 6 {
		t.Errorf("breaks = %v, want [6]", breaks)
	}
}

func TestWrapLineBreaksLongWord(t *testing.T) {
	m := NewMonoShaper(4)

	breaks := m.WrapLine("abcdefghijklmnop", 5)
	want := []int{5, 10, 15}
	if len(breaks) != len(want) {
		t.Fatalf("breaks = %v, want %v", breaks, want)
	}
	for i := range want {
		if breaks[i] != want[i] {
			t.Fatalf("breaks = %v, want %v", breaks, want)
		}
	}
}

func TestWrapLineWideCharacters(t *testing.T) {
	m := NewMonoShaper(4)

	// Each CJK character is two cells; four fit in width 8.
	breaks := m.WrapLine("一二三四五六", 8)
	if len(breaks) != 1 || breaks[0] != 12 {
		t.Errorf("breaks = %v, want [12]", breaks)
	}
}

func TestWrapLineBreaksValid(t *testing.T) {
	m := NewMonoShaper(4)
	line := "the quick 中文 brown fox jumps over the lazy dog"

	for width := 1; width <= 20; width++ {
		prev := 0
		for _, bp := range m.WrapLine(line, width) {
			if bp <= prev || bp >= len(line) {
				t.Fatalf("width %d: invalid break %d after %d", width, bp, prev)
			}
			prev = bp
		}
	}
}

func TestIndexFor(t *testing.T) {
	m := NewMonoShaper(4)

	tests := []struct {
		s    string
		x    int
		want int
	}{
		{"hello", 0, 0},
		{"hello", 2, 2},
		{"hello", 99, 5},
		{"中文", 1, 0},  // inside first wide char, rounds to its start
		{"中文", 3, 3},  // second char
		{"中文", 99, 6},
	}
	for _, tt := range tests {
		if got := m.IndexFor(tt.s, tt.x); got != tt.want {
			t.Errorf("IndexFor(%q, %d) = %d, want %d", tt.s, tt.x, got, tt.want)
		}
	}
}
