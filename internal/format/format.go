// Package format renders qm.Minterm values and minterm lists as SOP
// (sum-of-products) text. It renders terms in the order given; the
// canonical display sort is qm.DisplaySort.
package format

import (
	"fmt"
	"strings"

	"github.com/quinecrunch/qmcluskey/internal/qm"
)

const negChar = "~"

// varLetter returns the letter for position p of an n-length minterm:
// position n-1 is always A, position 0 is always the last letter in
// use, generalizing the teacher's fixed six-variable "ABCDEF" table to
// any length the qm package hands back.
func varLetter(p, n int) byte {
	const letters = "ABCDEF"
	if n < 1 || n > len(letters) {
		panic("format: minterm length out of range for display letters")
	}
	return letters[n-1-p]
}

// StringForMinterm renders a single minterm as an SOP product term:
// "A & ~C & D"-style, most significant position first, DontCare
// positions omitted. An all-DontCare minterm renders as "True".
func StringForMinterm(m qm.Minterm) string {
	var literals []string
	for p := m.Len() - 1; p >= 0; p-- {
		switch m.At(p) {
		case qm.DontCare:
			continue
		case qm.Zero:
			literals = append(literals, negChar+string(varLetter(p, m.Len())))
		case qm.One:
			literals = append(literals, string(varLetter(p, m.Len())))
		}
	}
	if len(literals) == 0 {
		return "True"
	}
	return strings.Join(literals, " & ")
}

// StringForSOP renders minterms as a disjunction of parenthesized
// product terms, joined by separator (defaulting to " | " when sep is
// empty). An empty minterms list renders as "False". When omitTrivial
// is set, any "True" product term is dropped from the output; if that
// empties the whole expression, the result is "True".
func StringForSOP(minterms []qm.Minterm, omitTrivial bool, sep string) string {
	if len(minterms) == 0 {
		return "False"
	}
	if sep == "" {
		sep = " | "
	}

	var terms []string
	for _, m := range minterms {
		s := StringForMinterm(m)
		if s == "True" && omitTrivial {
			continue
		}
		terms = append(terms, fmt.Sprintf("(%s)", s))
	}
	if len(terms) == 0 {
		return "True"
	}
	return strings.Join(terms, sep)
}
