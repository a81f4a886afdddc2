package qm

import "strings"

// MaxVars is the largest number of variables a Minterm can hold. The
// system supports functions of up to six variables; position 5 is the
// most significant (variable A) and position 0 is the least
// significant (variable F) by convention of the rest of this module.
const MaxVars = 6

// Value is the value a Minterm takes at one position.
type Value uint8

const (
	Zero Value = iota
	One
	DontCare
)

func (v Value) String() string {
	switch v {
	case Zero:
		return "0"
	case One:
		return "1"
	case DontCare:
		return "*"
	default:
		return "?"
	}
}

// Minterm is a product term over up to MaxVars variables, each with a
// value in {Zero, One, DontCare}. It is value-typed and comparable, so
// it can be used directly as a map key or compared with ==; two
// Minterms of different lengths are never equal to each other, even if
// their stored positions happen to coincide.
//
// A Minterm is never mutated after construction; merge produces a new
// value.
type Minterm struct {
	n      uint8
	values [MaxVars]Value
}

// New constructs a Minterm from a slice of values, at most MaxVars
// long. It panics if given more than MaxVars values; that indicates a
// caller bug, not a recoverable condition.
func New(values ...Value) Minterm {
	if len(values) > MaxVars {
		panic("qm: minterm has more than MaxVars positions")
	}
	var m Minterm
	m.n = uint8(len(values))
	copy(m.values[:], values)
	return m
}

// Len returns the number of positions (variables) in m.
func (m Minterm) Len() int { return int(m.n) }

// At returns the value at position i. Position 5 is variable A,
// position 0 is variable F, for a full six-variable Minterm.
func (m Minterm) At(i int) Value {
	if i < 0 || i >= int(m.n) {
		panic("qm: minterm position out of range")
	}
	return m.values[i]
}

// String renders m as a position-major string of '0'/'1'/'*', mostly
// useful for debugging and test failure messages.
func (m Minterm) String() string {
	var b strings.Builder
	for i := 0; i < int(m.n); i++ {
		b.WriteString(m.values[i].String())
	}
	return b.String()
}

// merge returns a new Minterm equal to m except position differs is set
// to DontCare.
func (m Minterm) merge(differs int) Minterm {
	out := m
	out.values[differs] = DontCare
	return out
}

// canMerge reports whether a and b differ in exactly one position where
// both are concrete (one Zero, one One), and agree everywhere else,
// including DontCare positions (a concrete value against a DontCare is
// never mergeable). It returns the single differing position.
//
// Panics if a and b have different lengths: that is a caller bug, since
// every minterm in a single computation must share one length.
func canMerge(a, b Minterm) (int, bool) {
	if a.n != b.n {
		panic("qm: cannot compare minterms of different lengths")
	}
	diffPos := -1
	for i := 0; i < int(a.n); i++ {
		va, vb := a.values[i], b.values[i]
		switch {
		case va == DontCare && vb == DontCare:
			continue
		case va == DontCare || vb == DontCare:
			return 0, false
		case va == vb:
			continue
		default:
			if diffPos != -1 {
				return 0, false
			}
			diffPos = i
		}
	}
	if diffPos == -1 {
		// Identical implicants are not a merge; the caller's dedup
		// handles coalescing equal terms.
		return 0, false
	}
	return diffPos, true
}

// checkMatch reports whether pattern covers minterm: every position
// where pattern is concrete, minterm must equal it; DontCare positions
// in pattern are wildcards regardless of minterm's value there.
//
// Panics on length mismatch, a caller bug.
func checkMatch(pattern, minterm Minterm) bool {
	if pattern.n != minterm.n {
		panic("qm: cannot match minterms of different lengths")
	}
	for i := 0; i < int(pattern.n); i++ {
		if pattern.values[i] == DontCare {
			continue
		}
		if pattern.values[i] != minterm.values[i] {
			return false
		}
	}
	return true
}
