// Package blit provides fast bit-block transfers (BitBLT) between packed
// 1-bit-per-pixel bitmaps.
//
// # Overview
//
// blit moves rectangular regions of bits between bitmaps, applying one of
// four combining operators (Copy, And, Or, Xor). It handles clipping,
// same-buffer overlap (like memmove, per axis), and a word-granular fast
// path for 32-bit-aligned transfers. It is a low-level primitive meant to
// be called at high frequency from a rendering or compositing layer.
//
// # Quick Start
//
//	import "github.com/gogpu/blit"
//
//	dst := blit.New(256, 256)
//	src := blit.New(256, 256)
//	src.FillRect(10, 10, 50, 50, 1)
//
//	ex := blit.NewExecutor()
//	ex.Blit(dst, 0, 0, 256, 256, src, 0, 0, blit.Copy)
//
// # Architecture
//
// A call to Executor.Blit is planned, specialized, and executed:
//   - Planner: clips the rectangle and picks an overlap-safe iteration
//     order per axis (plan.go)
//   - Generator backends: turn a plan shape + operator into an executable
//     routine (table.go, specialize.go)
//   - Routine cache: memoizes routines by translation-invariant shape, so
//     repeated transfers of the same shape skip generation entirely
//     (internal/cache)
//
// Backends are pluggable via RegisterGenerator. The default "table"
// backend selects from a fixed dispatch table of precompiled routines;
// the "specialize" backend composes a fresh routine per distinct shape.
// Both produce bit-identical results.
//
// # Pixel Layout
//
// Pixels pack most-significant-bit-first into 32-bit words: pixel (x,y)
// is bit 31-(x%32) of word y*wordsPerRow + x/32. Origin (0,0) is the
// top-left corner; x increases right, y increases down.
//
// # Concurrency
//
// An Executor is safe for concurrent Blit calls: the routine cache is the
// only shared state and concurrent misses on one shape generate at most
// once. Bitmap buffers carry no synchronization of their own; callers
// that share a Bitmap across goroutines must serialize access.
package blit

// Version is the current version of the library.
const Version = "0.1.0"
