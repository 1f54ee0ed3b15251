package blit

// shapeGenerator composes a fresh routine per distinct plan shape. Where
// the table backend reads dimensions from the plan at every invocation,
// this backend captures them as constants when the routine is built, so
// the produced closure is specialized to exactly one signature. Results
// are bit-identical to the table backend.
type shapeGenerator struct{}

// Name returns the backend name.
func (shapeGenerator) Name() string { return BackendSpecialize }

// Signature returns the cache key for the plan and operator.
func (shapeGenerator) Signature(p Plan, op Op) Signature {
	return signatureOf(p, op)
}

// Generate builds a routine with the plan's shape burned in. Only the
// absolute coordinates are taken from the plan passed at invocation.
func (shapeGenerator) Generate(p Plan, op Op) (Routine, error) {
	combine, err := op.combiner()
	if err != nil {
		return nil, err
	}
	if p.Aligned {
		return specializeWords(p, combine), nil
	}
	return specializeBits(p, combine), nil
}

func specializeBits(p Plan, combine combineFunc) Routine {
	w, h := p.Width, p.Height
	x0, xStep := 0, 1
	if p.XDir == Reverse {
		x0, xStep = w-1, -1
	}
	y0, yStep := 0, 1
	if p.YDir == Reverse {
		y0, yStep = h-1, -1
	}
	return func(dst, src *Bitmap, q Plan) {
		for i, y := 0, y0; i < h; i, y = i+1, y+yStep {
			for j, x := 0, x0; j < w; j, x = j+1, x+xStep {
				s := uint32(src.GetPixel(q.SrcX+x, q.SrcY+y))
				d := uint32(dst.GetPixel(q.DstX+x, q.DstY+y))
				dst.SetPixel(q.DstX+x, q.DstY+y, int(combine(s, d)))
			}
		}
	}
}

func specializeWords(p Plan, combine combineFunc) Routine {
	h, n := p.Height, p.RowWords
	k0, kStep := 0, 1
	if p.XDir == Reverse {
		k0, kStep = n-1, -1
	}
	y0, yStep := 0, 1
	if p.YDir == Reverse {
		y0, yStep = h-1, -1
	}
	return func(dst, src *Bitmap, q Plan) {
		for i, y := 0, y0; i < h; i, y = i+1, y+yStep {
			srcRow := (q.SrcY+y)*src.wordsPerRow + q.SrcWordX
			dstRow := (q.DstY+y)*dst.wordsPerRow + q.DstWordX
			for c, k := 0, k0; c < n; c, k = c+1, k+kStep {
				dst.words[dstRow+k] = combine(src.words[srcRow+k], dst.words[dstRow+k])
			}
		}
	}
}
