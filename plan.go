package blit

// Direction is the iteration order along one axis of a transfer.
type Direction uint8

const (
	// Forward iterates left-to-right (columns) or top-to-bottom (rows).
	Forward Direction = iota

	// Reverse iterates right-to-left or bottom-to-top. Chosen when the
	// source and destination ranges overlap in the same buffer and a
	// forward pass would overwrite source pixels before reading them.
	Reverse
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Plan describes one clipped, overlap-safe transfer. It is an immutable
// value: created by MakePlan and never modified afterwards.
//
// Width and Height are the post-clip rectangle dimensions and may be zero
// (nothing to transfer). The absolute coordinates travel on the Plan so a
// shape-keyed cached routine can still address the correct pixels, but
// they are excluded from the cache signature.
type Plan struct {
	Width, Height int
	XDir, YDir    Direction
	Aligned       bool

	// Post-clip absolute origins in the source and destination bitmaps.
	SrcX, SrcY int
	DstX, DstY int

	// Word-granular addressing for the aligned fast path.
	SrcWordX, DstWordX int
	RowWords           int
}

// Empty reports whether the plan transfers nothing. Callers must not
// invoke a routine with an empty plan.
func (p Plan) Empty() bool {
	return p.Width <= 0 || p.Height <= 0
}

// MakePlan clips the requested rectangle against both bitmaps and selects
// a safe iteration order and addressing mode. It reads only bitmap
// metadata, never pixel contents.
func MakePlan(dst *Bitmap, dstX, dstY, w, h int, src *Bitmap, srcX, srcY int) Plan {
	// Clip left/top: a negative origin on either side shifts both
	// rectangles forward together and shrinks the extent.
	if d := -srcX; d > 0 {
		srcX, dstX, w = srcX+d, dstX+d, w-d
	}
	if d := -dstX; d > 0 {
		srcX, dstX, w = srcX+d, dstX+d, w-d
	}
	if d := -srcY; d > 0 {
		srcY, dstY, h = srcY+d, dstY+d, h-d
	}
	if d := -dstY; d > 0 {
		srcY, dstY, h = srcY+d, dstY+d, h-d
	}

	// Clip right/bottom against both bitmaps.
	w = min(w, src.width-srcX, dst.width-dstX)
	h = min(h, src.height-srcY, dst.height-dstY)
	if w <= 0 || h <= 0 {
		return Plan{}
	}

	p := Plan{
		Width:    w,
		Height:   h,
		SrcX:     srcX,
		SrcY:     srcY,
		DstX:     dstX,
		DstY:     dstY,
		SrcWordX: srcX >> wordShift,
		DstWordX: dstX >> wordShift,
		RowWords: (w + wordMask) >> wordShift,
	}

	// Overlap is possible only when both rectangles live in the same
	// storage. The test is pure range intersection on the clipped
	// extents, per axis, independent of pixel values.
	same := SharesStorage(src, dst)
	if same {
		if srcX < dstX+w && dstX < srcX+w && srcX < dstX {
			p.XDir = Reverse
		}
		if srcY < dstY+h && dstY < srcY+h && srcY < dstY {
			p.YDir = Reverse
		}
	}

	// Word-granular fast path: both start columns and the width must be
	// word multiples. The horizontal direction is then re-derived on word
	// indices, since the aligned routines move whole words.
	if dstX&wordMask == 0 && srcX&wordMask == 0 && w&wordMask == 0 {
		p.Aligned = true
		p.RowWords = w >> wordShift
		if same {
			p.XDir = Forward
			sw, dw, nw := p.SrcWordX, p.DstWordX, p.RowWords
			if sw < dw+nw && dw < sw+nw && sw < dw {
				p.XDir = Reverse
			}
		}
	}

	return p
}
