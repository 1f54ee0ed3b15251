package blit

import (
	"errors"
	"sort"
	"sync"
)

// ErrUnknownBackend indicates a generator name that was never registered.
var ErrUnknownBackend = errors.New("blit: unknown backend")

// Names of the built-in generator backends.
const (
	// BackendTable selects precompiled routines from a fixed dispatch
	// table indexed by direction, alignment and operator. Default.
	BackendTable = "table"

	// BackendSpecialize composes a fresh routine per distinct plan shape,
	// burning the rectangle dimensions in as construction-time constants.
	BackendSpecialize = "specialize"
)

// Routine is an executable transfer specialized for one plan shape and
// one operator. The plan passed at invocation supplies the absolute
// coordinates; its shape fields must match the signature the routine was
// generated for.
type Routine func(dst, src *Bitmap, p Plan)

// Signature is the cache key for a generated routine. It is built only
// from translation-invariant quantities: two blits of the same shape at
// different coordinates share one signature (and one cached routine).
type Signature struct {
	Width, Height int
	XDir, YDir    Direction
	Aligned       bool
	Op            Op
}

// signatureOf derives the canonical signature for a plan and operator.
// Absolute coordinates are deliberately excluded.
func signatureOf(p Plan, op Op) Signature {
	return Signature{
		Width:   p.Width,
		Height:  p.Height,
		XDir:    p.XDir,
		YDir:    p.YDir,
		Aligned: p.Aligned,
		Op:      op,
	}
}

// Generator turns a plan shape and operator into an executable Routine.
//
// Implementations must be stateless or internally synchronized: the
// Executor may call Generate from multiple goroutines. All generators for
// the same signature must produce behaviorally identical routines.
type Generator interface {
	// Name returns the backend name used for registration and lookup.
	Name() string

	// Signature returns the cache key for the plan and operator.
	Signature(p Plan, op Op) Signature

	// Generate builds a routine for the plan shape and operator.
	Generate(p Plan, op Op) (Routine, error)
}

var (
	genMu      sync.RWMutex
	generators = map[string]Generator{}
)

// RegisterGenerator registers a backend under its Name. Registering a
// second generator with the same name replaces the first.
//
// The built-in backends are registered at package init; external backends
// typically register themselves from their own init:
//
//	func init() {
//	    blit.RegisterGenerator(&jitGenerator{})
//	}
func RegisterGenerator(g Generator) error {
	if g == nil {
		return errors.New("blit: generator must not be nil")
	}
	if g.Name() == "" {
		return errors.New("blit: generator name must not be empty")
	}
	genMu.Lock()
	generators[g.Name()] = g
	genMu.Unlock()
	return nil
}

// Generators returns the names of all registered backends, sorted.
func Generators() []string {
	genMu.RLock()
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	genMu.RUnlock()
	sort.Strings(names)
	return names
}

// lookupGenerator returns the registered backend with the given name.
func lookupGenerator(name string) (Generator, bool) {
	genMu.RLock()
	g, ok := generators[name]
	genMu.RUnlock()
	return g, ok
}

func init() {
	_ = RegisterGenerator(tableGenerator{})
	_ = RegisterGenerator(shapeGenerator{})
}
