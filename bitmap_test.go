package blit

import "testing"

// TestNew verifies dimensions, stride and storage length.
func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		w, h        int
		wantW       int
		wantH       int
		wantStride  int
		wantStorage int
	}{
		{"exact word", 32, 4, 32, 4, 1, 4},
		{"partial word", 33, 2, 33, 2, 2, 4},
		{"sub word", 10, 3, 10, 3, 1, 3},
		{"empty", 0, 0, 0, 0, 0, 0},
		{"negative clamps", -5, -7, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm := New(tt.w, tt.h)
			if bm.Width() != tt.wantW || bm.Height() != tt.wantH {
				t.Errorf("dims = %dx%d, want %dx%d", bm.Width(), bm.Height(), tt.wantW, tt.wantH)
			}
			if bm.WordsPerRow() != tt.wantStride {
				t.Errorf("WordsPerRow() = %d, want %d", bm.WordsPerRow(), tt.wantStride)
			}
			if len(bm.Words()) != tt.wantStorage {
				t.Errorf("len(Words()) = %d, want %d", len(bm.Words()), tt.wantStorage)
			}
		})
	}
}

// TestPixelPacking verifies the MSB-first packing: pixel (x,y) is bit
// 31-(x%32) of word y*wordsPerRow + x/32.
func TestPixelPacking(t *testing.T) {
	bm := New(64, 2)

	bm.SetPixel(0, 0, 1)
	if bm.Words()[0] != 0x80000000 {
		t.Errorf("pixel (0,0): word = %#08x, want 0x80000000", bm.Words()[0])
	}

	bm.SetPixel(31, 0, 1)
	if bm.Words()[0] != 0x80000001 {
		t.Errorf("pixel (31,0): word = %#08x, want 0x80000001", bm.Words()[0])
	}

	bm.SetPixel(32, 1, 1)
	if got := bm.Words()[1*2+1]; got != 0x80000000 {
		t.Errorf("pixel (32,1): word = %#08x, want 0x80000000", got)
	}
}

// TestGetSetPixel verifies set/clear round trips.
func TestGetSetPixel(t *testing.T) {
	bm := New(40, 10)
	points := []struct{ x, y int }{{0, 0}, {39, 9}, {31, 5}, {32, 5}, {7, 3}}

	for _, p := range points {
		bm.SetPixel(p.x, p.y, 1)
		if bm.GetPixel(p.x, p.y) != 1 {
			t.Errorf("GetPixel(%d,%d) = 0 after set", p.x, p.y)
		}
	}
	for _, p := range points {
		bm.SetPixel(p.x, p.y, 0)
		if bm.GetPixel(p.x, p.y) != 0 {
			t.Errorf("GetPixel(%d,%d) = 1 after clear", p.x, p.y)
		}
	}
}

// TestSetPixel_OutOfBounds verifies out-of-bounds writes are silently
// ignored and leave the storage untouched.
func TestSetPixel_OutOfBounds(t *testing.T) {
	bm := New(10, 10)
	bm.FillRect(0, 0, 10, 10, 1)

	original := make([]uint32, len(bm.Words()))
	copy(original, bm.Words())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		bm.SetPixel(c.x, c.y, 1)
		bm.SetPixel(c.x, c.y, 0)
		if bm.GetPixel(c.x, c.y) != 0 {
			t.Errorf("GetPixel(%d,%d) = 1, want 0 out of bounds", c.x, c.y)
		}
	}

	for i, w := range bm.Words() {
		if w != original[i] {
			t.Fatalf("out-of-bounds write modified word %d: got %#08x, want %#08x", i, w, original[i])
		}
	}
}

// TestFillRect verifies per-pixel fill with clipping.
func TestFillRect(t *testing.T) {
	bm := New(20, 20)
	bm.FillRect(15, 15, 10, 10, 1) // extends past both edges

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			want := 0
			if x >= 15 && y >= 15 {
				want = 1
			}
			if got := bm.GetPixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

// TestFillRectAligned verifies the whole-word fast path matches FillRect
// and that unaligned arguments delegate.
func TestFillRectAligned(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
	}{
		{"aligned", 32, 2, 64, 5},
		{"aligned full width", 0, 0, 128, 8},
		{"unaligned x delegates", 5, 1, 32, 3},
		{"unaligned w delegates", 0, 1, 50, 3},
		{"clipped bottom", 32, 6, 32, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fast := New(128, 8)
			slow := New(128, 8)
			fast.FillRectAligned(tt.x, tt.y, tt.w, tt.h, 1)
			slow.FillRect(tt.x, tt.y, tt.w, tt.h, 1)
			if !fast.Equal(slow) {
				t.Errorf("FillRectAligned differs from FillRect:\n%s\nvs\n%s",
					DisplayString(fast), DisplayString(slow))
			}
		})
	}
}

// TestFillRectAligned_WholeWords verifies the fast path actually writes
// full words.
func TestFillRectAligned_WholeWords(t *testing.T) {
	bm := New(64, 2)
	bm.FillRectAligned(32, 0, 32, 1, 1)
	if got := bm.Words()[1]; got != 0xFFFFFFFF {
		t.Errorf("word 1 = %#08x, want 0xFFFFFFFF", got)
	}
	if got := bm.Words()[0]; got != 0 {
		t.Errorf("word 0 = %#08x, want 0", got)
	}
}

// TestSharesStorage verifies storage identity detection.
func TestSharesStorage(t *testing.T) {
	a := New(16, 16)
	b := New(16, 16)
	view := &Bitmap{width: a.width, height: a.height, wordsPerRow: a.wordsPerRow, words: a.words}

	if !SharesStorage(a, a) {
		t.Error("SharesStorage(a, a) = false, want true")
	}
	if !SharesStorage(a, view) {
		t.Error("SharesStorage(a, view) = false, want true for aliased words")
	}
	if SharesStorage(a, b) {
		t.Error("SharesStorage(a, b) = true, want false for distinct storage")
	}
	if SharesStorage(a, a.Clone()) {
		t.Error("SharesStorage(a, clone) = true, want false")
	}
	if SharesStorage(nil, a) || SharesStorage(a, nil) {
		t.Error("SharesStorage with nil = true, want false")
	}
}

// TestCloneEqual verifies deep copy semantics.
func TestCloneEqual(t *testing.T) {
	bm := New(33, 7)
	bm.FillRect(3, 2, 20, 4, 1)

	c := bm.Clone()
	if !bm.Equal(c) {
		t.Fatal("clone not equal to original")
	}
	c.SetPixel(0, 0, 1)
	if bm.Equal(c) {
		t.Error("mutating clone affected equality with original")
	}
	if bm.GetPixel(0, 0) != 0 {
		t.Error("mutating clone modified original storage")
	}
}

// TestDisplayString verifies the diagnostic dump format.
func TestDisplayString(t *testing.T) {
	bm := New(4, 2)
	bm.SetPixel(0, 0, 1)
	bm.SetPixel(3, 1, 1)

	want := "#...\n...#\n"
	if got := DisplayString(bm); got != want {
		t.Errorf("DisplayString = %q, want %q", got, want)
	}
}

// TestToImage verifies set pixels render black and clear pixels white.
func TestToImage(t *testing.T) {
	bm := New(3, 1)
	bm.SetPixel(1, 0, 1)

	img := bm.ToImage()
	if img.GrayAt(1, 0).Y != 0 {
		t.Error("set pixel not black")
	}
	if img.GrayAt(0, 0).Y != 255 || img.GrayAt(2, 0).Y != 255 {
		t.Error("clear pixel not white")
	}
}
