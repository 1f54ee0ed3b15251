package blit

import "fmt"

// tableGenerator is the default backend: a dispatch table of routines
// precompiled at package init, indexed by {XDir, YDir, Aligned, Op}.
// Each routine reads its shape and coordinates from the plan passed at
// invocation, so one table entry serves every blit of that form.
type tableGenerator struct{}

// Name returns the backend name.
func (tableGenerator) Name() string { return BackendTable }

// Signature returns the cache key for the plan and operator.
func (tableGenerator) Signature(p Plan, op Op) Signature {
	return signatureOf(p, op)
}

// Generate selects the precompiled routine for the plan's form.
func (tableGenerator) Generate(p Plan, op Op) (Routine, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("blit: invalid op %d", uint8(op))
	}
	return routineTable[routineIndex(p.XDir, p.YDir, p.Aligned, op)], nil
}

// routineIndex maps a routine form to its table slot.
// Layout: op (4) × xdir (2) × ydir (2) × aligned (2) = 32 slots.
func routineIndex(xd, yd Direction, aligned bool, op Op) int {
	i := int(op)
	i = i<<1 | int(xd)
	i = i<<1 | int(yd)
	i <<= 1
	if aligned {
		i |= 1
	}
	return i
}

// routineTable holds the 32 precompiled routines.
var routineTable = buildRoutineTable()

func buildRoutineTable() [32]Routine {
	var t [32]Routine
	for op := Copy; op < opCount; op++ {
		combine, err := op.combiner()
		if err != nil {
			panic(err) // unreachable: op range is fixed above
		}
		for _, xd := range []Direction{Forward, Reverse} {
			for _, yd := range []Direction{Forward, Reverse} {
				t[routineIndex(xd, yd, false, op)] = makeBitRoutine(xd, yd, combine)
				t[routineIndex(xd, yd, true, op)] = makeWordRoutine(xd, yd, combine)
			}
		}
	}
	return t
}

// makeBitRoutine builds the general pixel-at-a-time transfer with the
// direction and combine form fixed at construction. The plan's direction
// fields are reflected in the iteration starts/steps computed once per
// call; the inner loop carries no branch on operator or direction.
func makeBitRoutine(xd, yd Direction, combine combineFunc) Routine {
	return func(dst, src *Bitmap, p Plan) {
		x0, xStep := 0, 1
		if xd == Reverse {
			x0, xStep = p.Width-1, -1
		}
		y0, yStep := 0, 1
		if yd == Reverse {
			y0, yStep = p.Height-1, -1
		}
		for i, y := 0, y0; i < p.Height; i, y = i+1, y+yStep {
			for j, x := 0, x0; j < p.Width; j, x = j+1, x+xStep {
				s := uint32(src.GetPixel(p.SrcX+x, p.SrcY+y))
				d := uint32(dst.GetPixel(p.DstX+x, p.DstY+y))
				dst.SetPixel(p.DstX+x, p.DstY+y, int(combine(s, d)))
			}
		}
	}
}

// makeWordRoutine builds the aligned fast path: whole 32-bit words per
// row. Valid only for plans with Aligned set, where start columns and
// width are word multiples.
func makeWordRoutine(xd, yd Direction, combine combineFunc) Routine {
	return func(dst, src *Bitmap, p Plan) {
		k0, kStep := 0, 1
		if xd == Reverse {
			k0, kStep = p.RowWords-1, -1
		}
		y0, yStep := 0, 1
		if yd == Reverse {
			y0, yStep = p.Height-1, -1
		}
		for i, y := 0, y0; i < p.Height; i, y = i+1, y+yStep {
			srcRow := (p.SrcY+y)*src.wordsPerRow + p.SrcWordX
			dstRow := (p.DstY+y)*dst.wordsPerRow + p.DstWordX
			for c, k := 0, k0; c < p.RowWords; c, k = c+1, k+kStep {
				dst.words[dstRow+k] = combine(src.words[srcRow+k], dst.words[dstRow+k])
			}
		}
	}
}
