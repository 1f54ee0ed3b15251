package blit

import "fmt"

// Op is a combining operator applied between source and destination bits.
type Op uint8

const (
	// Copy replaces destination bits with source bits.
	Copy Op = iota

	// And keeps destination bits only where the source is also set.
	And

	// Or sets destination bits wherever the source is set.
	Or

	// Xor toggles destination bits wherever the source is set.
	Xor

	opCount
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case Copy:
		return "copy"
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// Valid reports whether op is one of the four defined operators.
func (op Op) Valid() bool {
	return op < opCount
}

// combineFunc merges a source word with a destination word. Generators
// select one at construction time so routine inner loops never branch on
// the operator. The same forms apply to single 0/1 bits.
type combineFunc func(s, d uint32) uint32

func combineCopy(s, _ uint32) uint32 { return s }
func combineAnd(s, d uint32) uint32  { return s & d }
func combineOr(s, d uint32) uint32   { return s | d }
func combineXor(s, d uint32) uint32  { return s ^ d }

// combiner returns the word-combine form for op.
func (op Op) combiner() (combineFunc, error) {
	switch op {
	case Copy:
		return combineCopy, nil
	case And:
		return combineAnd, nil
	case Or:
		return combineOr, nil
	case Xor:
		return combineXor, nil
	default:
		return nil, fmt.Errorf("blit: invalid op %d", uint8(op))
	}
}
