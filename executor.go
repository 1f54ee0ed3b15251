package blit

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/gogpu/blit/internal/cache"
)

// Executor plans, specializes and runs bit-block transfers. It owns one
// routine cache per backend and is the only type client code needs to
// call directly.
//
// Construct one Executor and reuse it across calls: the routine cache is
// what makes repeated transfers of the same shape cheap. An Executor is
// safe for concurrent use.
type Executor struct {
	mu  sync.RWMutex
	def string

	cacheMu sync.Mutex
	caches  map[string]*cache.Sharded[Signature, Routine]

	group singleflight.Group
}

// Option configures an Executor.
type Option func(*Executor)

// WithBackend sets the default generator backend. If the name is never
// registered, the first Blit reports ErrUnknownBackend.
func WithBackend(name string) Option {
	return func(e *Executor) { e.def = name }
}

// NewExecutor creates an Executor with empty caches. The default backend
// is BackendTable unless overridden with WithBackend.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		def:    BackendTable,
		caches: make(map[string]*cache.Sharded[Signature, Routine]),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefaultBackend returns the name of the backend Blit uses.
func (e *Executor) DefaultBackend() string {
	e.mu.RLock()
	def := e.def
	e.mu.RUnlock()
	return def
}

// SetDefaultBackend switches the backend used by Blit.
// Returns ErrUnknownBackend if the name is not registered.
func (e *Executor) SetDefaultBackend(name string) error {
	if _, ok := lookupGenerator(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	e.mu.Lock()
	e.def = name
	e.mu.Unlock()
	return nil
}

// Blit transfers a w×h rectangle from (srcX,srcY) in src to (dstX,dstY)
// in dst, combining pixels with op. The rectangle is clipped to both
// bitmaps; a degenerate or fully clipped region is a no-op. src and dst
// may share storage — overlapping in-place transfers are handled like
// memmove.
func (e *Executor) Blit(dst *Bitmap, dstX, dstY, w, h int, src *Bitmap, srcX, srcY int, op Op) error {
	return e.BlitWith(e.DefaultBackend(), dst, dstX, dstY, w, h, src, srcX, srcY, op)
}

// BlitWith is Blit with an explicit generator backend.
func (e *Executor) BlitWith(backend string, dst *Bitmap, dstX, dstY, w, h int, src *Bitmap, srcX, srcY int, op Op) error {
	if !op.Valid() {
		return fmt.Errorf("blit: invalid op %d", uint8(op))
	}
	if dst == nil || src == nil {
		return nil
	}

	p := MakePlan(dst, dstX, dstY, w, h, src, srcX, srcY)
	if p.Empty() {
		// Degenerate region: no routine call, no cache lookup.
		return nil
	}

	g, ok := lookupGenerator(backend)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}

	sig := g.Signature(p, op)
	c := e.cacheFor(backend)
	r, ok := c.Get(sig)
	if !ok {
		var err error
		r, err = e.generate(g, c, sig, p, op)
		if err != nil {
			return err
		}
	}

	r(dst, src, p)
	return nil
}

// generate builds and caches the routine for sig. Concurrent misses on
// the same key collapse into a single generation; the generator runs
// outside any cache lock.
func (e *Executor) generate(g Generator, c *cache.Sharded[Signature, Routine], sig Signature, p Plan, op Op) (Routine, error) {
	v, err, _ := e.group.Do(flightKey(g.Name(), sig), func() (any, error) {
		if r, ok := c.Get(sig); ok {
			return r, nil
		}
		r, err := g.Generate(p, op)
		if err != nil {
			return nil, err
		}
		c.Set(sig, r)
		Logger().Debug("generated blit routine",
			"backend", g.Name(),
			"op", sig.Op.String(),
			"width", sig.Width,
			"height", sig.Height,
			"xdir", sig.XDir.String(),
			"ydir", sig.YDir.String(),
			"aligned", sig.Aligned)
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Routine), nil
}

// flightKey is the singleflight key for one (backend, signature) pair.
func flightKey(backend string, s Signature) string {
	return fmt.Sprintf("%s/%dx%d/%d%d/%t/%d",
		backend, s.Width, s.Height, s.XDir, s.YDir, s.Aligned, s.Op)
}

// cacheFor returns the routine cache for a backend, creating it lazily.
func (e *Executor) cacheFor(backend string) *cache.Sharded[Signature, Routine] {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()
	c, ok := e.caches[backend]
	if !ok {
		c = cache.New[Signature, Routine](signatureHasher)
		e.caches[backend] = c
	}
	return c
}

// ClearCache drops all cached routines for one backend. Subsequent blits
// regenerate lazily. Returns ErrUnknownBackend if the name is not
// registered; clearing a registered backend that was never used is a
// no-op.
func (e *Executor) ClearCache(backend string) error {
	if _, ok := lookupGenerator(backend); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	e.cacheMu.Lock()
	c, ok := e.caches[backend]
	e.cacheMu.Unlock()
	if ok {
		c.Clear()
		Logger().Debug("cleared routine cache", "backend", backend)
	}
	return nil
}

// ClearAllCaches drops cached routines for every backend.
func (e *Executor) ClearAllCaches() {
	e.cacheMu.Lock()
	caches := make([]*cache.Sharded[Signature, Routine], 0, len(e.caches))
	for _, c := range e.caches {
		caches = append(caches, c)
	}
	e.cacheMu.Unlock()
	for _, c := range caches {
		c.Clear()
	}
	Logger().Debug("cleared all routine caches")
}

// CacheStats returns cache counters for one backend. A backend that was
// never used reports zero stats.
func (e *Executor) CacheStats(backend string) cache.Stats {
	e.cacheMu.Lock()
	c, ok := e.caches[backend]
	e.cacheMu.Unlock()
	if !ok {
		return cache.Stats{}
	}
	return c.Stats()
}

// signatureHasher mixes all signature fields FNV-1a style for shard
// selection.
func signatureHasher(s Signature) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	mix := func(v uint64) {
		h ^= v
		h *= prime
	}
	mix(uint64(uint32(s.Width)))
	mix(uint64(uint32(s.Height)))
	mix(uint64(s.XDir))
	mix(uint64(s.YDir))
	if s.Aligned {
		mix(1)
	} else {
		mix(0)
	}
	mix(uint64(s.Op))
	return h
}
