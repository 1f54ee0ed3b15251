package blit

// Reference is the naive, unconditionally correct blit. It snapshots the
// clipped source rectangle before writing anything, so aliasing between
// src and dst can never corrupt the transfer regardless of iteration
// order. It shares no planning code with the Executor, which makes it
// the oracle the specialized routines are tested against; it also serves
// as a fallback when no generator backend is acceptable.
//
// Semantics are identical to Executor.Blit: the rectangle is clipped to
// both bitmaps, degenerate regions are no-ops, and op combines each
// source bit with the original destination bit.
func Reference(dst *Bitmap, dstX, dstY, w, h int, src *Bitmap, srcX, srcY int, op Op) {
	if dst == nil || src == nil {
		return
	}
	combine, err := op.combiner()
	if err != nil {
		return
	}

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
	if w > src.width-srcX {
		w = src.width - srcX
	}
	if w > dst.width-dstX {
		w = dst.width - dstX
	}
	if h > src.height-srcY {
		h = src.height - srcY
	}
	if h > dst.height-dstY {
		h = dst.height - dstY
	}
	if w <= 0 || h <= 0 {
		return
	}

	// Read every source bit before the first write.
	snap := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			snap[y*w+x] = uint8(src.GetPixel(srcX+x, srcY+y))
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s := uint32(snap[y*w+x])
			d := uint32(dst.GetPixel(dstX+x, dstY+y))
			dst.SetPixel(dstX+x, dstY+y, int(combine(s, d)))
		}
	}
}
