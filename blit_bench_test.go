package blit

import (
	"fmt"
	"math/rand"
	"testing"
)

// BenchmarkBlit compares the specialized backends against the reference
// implementation across transfer sizes, aligned and unaligned.
func BenchmarkBlit(b *testing.B) {
	rng := rand.New(rand.NewSource(1))

	sizes := []struct {
		name string
		w, h int
	}{
		{"32x32", 32, 32},
		{"128x128", 128, 128},
		{"512x64", 512, 64},
	}

	for _, sz := range sizes {
		src := randomBitmap(rng, sz.w+64, sz.h+8)
		dst := randomBitmap(rng, sz.w+64, sz.h+8)

		for _, backend := range []string{BackendTable, BackendSpecialize} {
			ex := NewExecutor(WithBackend(backend))

			// Aligned: word-multiple origin and width.
			b.Run(fmt.Sprintf("%s/%s/aligned", backend, sz.name), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_ = ex.Blit(dst, 32, 0, sz.w, sz.h, src, 0, 0, Copy)
				}
			})

			// Unaligned: odd origin forces the bit path.
			b.Run(fmt.Sprintf("%s/%s/unaligned", backend, sz.name), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_ = ex.Blit(dst, 33, 1, sz.w, sz.h, src, 1, 0, Copy)
				}
			})
		}

		b.Run(fmt.Sprintf("reference/%s", sz.name), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Reference(dst, 33, 1, sz.w, sz.h, src, 1, 0, Copy)
			}
		})
	}
}

// BenchmarkCacheHit measures the steady-state cost of a fully cached
// small blit, the intended high-frequency case.
func BenchmarkCacheHit(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	src := randomBitmap(rng, 64, 64)
	dst := randomBitmap(rng, 64, 64)

	ex := NewExecutor()
	_ = ex.Blit(dst, 0, 0, 16, 16, src, 0, 0, Copy) // warm the cache

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ex.Blit(dst, 8, 8, 16, 16, src, 4, 4, Copy)
	}
}

// BenchmarkFillRect compares the aligned word fill against per-pixel fill.
func BenchmarkFillRect(b *testing.B) {
	bm := New(1024, 256)

	b.Run("FillRect", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			bm.FillRect(0, 0, 1024, 256, 1)
		}
	})
	b.Run("FillRectAligned", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			bm.FillRectAligned(0, 0, 1024, 256, 1)
		}
	})
}
