package rope

import "testing"

func TestIsCharBoundary(t *testing.T) {
	// The emoji occupies bytes 12..16.
	r := FromString("Hello World 🎉 end")

	boundaries := map[int]bool{
		0: true, 5: true, 11: true, 12: true,
		13: false, 14: false, 15: false,
		16: true, 17: true,
	}
	for offset, want := range boundaries {
		if got := r.IsCharBoundary(offset); got != want {
			t.Errorf("IsCharBoundary(%d) = %v, want %v", offset, got, want)
		}
	}

	if r.IsCharBoundary(-1) {
		t.Error("negative offset should not be a boundary")
	}
	if !r.IsCharBoundary(r.Len()) {
		t.Error("Len() should be a boundary")
	}
	if r.IsCharBoundary(r.Len() + 1) {
		t.Error("offset past end should not be a boundary")
	}
}

func TestClipOffset(t *testing.T) {
	r := FromString("Hello World 🎉 end")

	tests := []struct {
		offset int
		bias   Bias
		want   int
	}{
		{13, BiasLeft, 12},
		{13, BiasRight, 16},
		{14, BiasLeft, 12},
		{15, BiasRight, 16},
		{12, BiasLeft, 12},
		{16, BiasRight, 16},
		{0, BiasLeft, 0},
		{-5, BiasLeft, 0},
		{-5, BiasRight, 0},
		{999, BiasLeft, 20},
		{999, BiasRight, 20},
	}

	for _, tt := range tests {
		if got := r.ClipOffset(tt.offset, tt.bias); got != tt.want {
			t.Errorf("ClipOffset(%d, %v) = %d, want %d", tt.offset, tt.bias, got, tt.want)
		}
	}
}

func TestClipOffsetAlwaysBoundary(t *testing.T) {
	r := FromString("mixed 中文 and 🎉 text")

	for offset := -2; offset <= r.Len()+2; offset++ {
		for _, bias := range []Bias{BiasLeft, BiasRight} {
			clipped := r.ClipOffset(offset, bias)
			if !r.IsCharBoundary(clipped) {
				t.Fatalf("ClipOffset(%d, %v) = %d is not a boundary", offset, bias, clipped)
			}
		}
	}
}
