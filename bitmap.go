package blit

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
)

// Word layout constants. Pixels pack MSB-first into 32-bit words.
const (
	wordBits  = 32
	wordShift = 5
	wordMask  = wordBits - 1
)

// Bitmap is a packed 1-bit-per-pixel buffer. Pixel (x,y) occupies bit
// 31-(x%32) of word y*wordsPerRow + x/32. The words slice always holds
// exactly height*wordsPerRow entries; a Bitmap is never resized.
type Bitmap struct {
	width       int
	height      int
	wordsPerRow int
	words       []uint32
}

// New creates a zero-filled bitmap with the given dimensions.
// Non-positive dimensions are clamped to zero.
func New(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	wpr := (width + wordMask) >> wordShift
	return &Bitmap{
		width:       width,
		height:      height,
		wordsPerRow: wpr,
		words:       make([]uint32, height*wpr),
	}
}

// Width returns the width of the bitmap in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// WordsPerRow returns the number of 32-bit words per scanline.
func (b *Bitmap) WordsPerRow() int {
	return b.wordsPerRow
}

// Words returns the raw packed pixel data. The slice is the live backing
// store, not a copy.
func (b *Bitmap) Words() []uint32 {
	return b.words
}

// pixelMask returns the single-bit mask for column x within its word.
func pixelMask(x int) uint32 {
	return 0x80000000 >> uint(x&wordMask)
}

// GetPixel returns 1 if pixel (x,y) is set, 0 otherwise.
// Out-of-bounds coordinates read as 0.
func (b *Bitmap) GetPixel(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	if b.words[y*b.wordsPerRow+(x>>wordShift)]&pixelMask(x) != 0 {
		return 1
	}
	return 0
}

// SetPixel sets pixel (x,y) to 1 if v is nonzero, 0 otherwise.
// Out-of-bounds coordinates are silently ignored.
func (b *Bitmap) SetPixel(x, y, v int) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := y*b.wordsPerRow + (x >> wordShift)
	if v != 0 {
		b.words[i] |= pixelMask(x)
	} else {
		b.words[i] &^= pixelMask(x)
	}
}

// FillRect sets every pixel of the given rectangle to v (0 or 1),
// clipped to the bitmap bounds.
func (b *Bitmap) FillRect(x, y, w, h, v int) {
	x0, y0, x1, y1 := clipToBounds(x, y, w, h, b.width, b.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			b.SetPixel(px, py, v)
		}
	}
}

// FillRectAligned fills a rectangle writing whole 32-bit words per row.
// The fast path applies only when x and w are multiples of 32 and the
// clipped rectangle stays word-aligned; otherwise it delegates to FillRect.
func (b *Bitmap) FillRectAligned(x, y, w, h, v int) {
	if x&wordMask != 0 || w&wordMask != 0 {
		b.FillRect(x, y, w, h, v)
		return
	}
	x0, y0, x1, y1 := clipToBounds(x, y, w, h, b.width, b.height)
	if x0&wordMask != 0 || (x1-x0)&wordMask != 0 {
		b.FillRect(x, y, w, h, v)
		return
	}
	var fill uint32
	if v != 0 {
		fill = 0xFFFFFFFF
	}
	w0 := x0 >> wordShift
	w1 := x1 >> wordShift
	for py := y0; py < y1; py++ {
		row := py * b.wordsPerRow
		for wi := w0; wi < w1; wi++ {
			b.words[row+wi] = fill
		}
	}
}

// clipToBounds intersects rectangle (x,y,w,h) with (0,0,width,height) and
// returns the half-open pixel range [x0,x1)×[y0,y1). Empty intersections
// yield x0 >= x1 or y0 >= y1.
func clipToBounds(x, y, w, h, width, height int) (x0, y0, x1, y1 int) {
	x0, y0 = max(x, 0), max(y, 0)
	x1, y1 = min(x+w, width), min(y+h, height)
	return x0, y0, x1, y1
}

// SharesStorage reports whether two bitmaps alias the same backing word
// array. This is the identity test the planner uses for overlap detection;
// it never compares pixel values.
func SharesStorage(a, b *Bitmap) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	if len(a.words) == 0 || len(b.words) == 0 {
		return false
	}
	return &a.words[0] == &b.words[0]
}

// Clone returns a deep copy of the bitmap with its own backing storage.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{
		width:       b.width,
		height:      b.height,
		wordsPerRow: b.wordsPerRow,
		words:       make([]uint32, len(b.words)),
	}
	copy(c.words, b.words)
	return c
}

// Equal reports whether two bitmaps have identical dimensions and pixel
// words.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if o == nil || b.width != o.width || b.height != o.height {
		return false
	}
	for i, w := range b.words {
		if w != o.words[i] {
			return false
		}
	}
	return true
}

// ToImage converts the bitmap to a grayscale image: set pixels render
// black, clear pixels white.
func (b *Bitmap) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.GetPixel(x, y) == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

// SavePNG saves the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, b.ToImage())
}

// SaveBMP saves the bitmap to a BMP file.
func (b *Bitmap) SaveBMP(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return bmp.Encode(f, b.ToImage())
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	if b.GetPixel(x, y) != 0 {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: 255}
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.GrayModel
}
