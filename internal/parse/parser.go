// Package parse reads SOP (sum-of-products) text back into qm.Minterm
// values: a disjunction of `|`-separated product terms, each a
// conjunction of `&`-separated literals, parenthesized unless the
// product is a single literal. Grounded in the teacher's statement
// splitting and per-field parsing style (internal/cupl/parser.go).
package parse

import (
	"fmt"
	"strings"

	"github.com/quinecrunch/qmcluskey/internal/qm"
)

// varIndex maps a variable letter to its Minterm position: A is
// position 5 (most significant), F is position 0. G is not in the
// table: Parse recognizes it as its own case and rejects it with a
// user error, since every other component is hard-wired to six
// variables.
var varIndex = map[byte]int{
	'A': 5, 'B': 4, 'C': 3, 'D': 2, 'E': 1, 'F': 0,
}

// Parse reads sop and returns the list of minterms its product terms
// denote, one Minterm per term, in the order they appear. Returns an
// error for unbalanced parentheses, an unknown or unsupported (G)
// variable letter, a negation with no following letter, or an empty
// product.
func Parse(sop string) ([]qm.Minterm, error) {
	var minterms []qm.Minterm
	for _, product := range strings.Split(sop, "|") {
		product = strings.TrimSpace(product)
		if product == "" {
			return nil, fmt.Errorf("parse: empty product term in %q", sop)
		}
		m, err := parseProduct(product)
		if err != nil {
			return nil, err
		}
		minterms = append(minterms, m)
	}
	return minterms, nil
}

func parseProduct(product string) (qm.Minterm, error) {
	body := product
	if strings.HasPrefix(product, "(") {
		if !strings.HasSuffix(product, ")") {
			return qm.Minterm{}, fmt.Errorf("parse: unbalanced parentheses in %q", product)
		}
		body = strings.TrimSpace(product[1 : len(product)-1])
	} else if n := len([]rune(product)); n != 1 && !(n == 2 && (product[0] == '!' || product[0] == '~')) {
		return qm.Minterm{}, fmt.Errorf("parse: non-parenthesized product %q must be a single literal", product)
	}

	values := make([]qm.Value, qm.MaxVars)
	for i := range values {
		values[i] = qm.DontCare
	}

	for _, literal := range strings.Split(body, "&") {
		literal = strings.TrimSpace(literal)
		if literal == "" {
			return qm.Minterm{}, fmt.Errorf("parse: empty literal in product %q", product)
		}

		negated := false
		if literal[0] == '!' || literal[0] == '~' {
			negated = true
			literal = literal[1:]
		}
		if len(literal) != 1 {
			return qm.Minterm{}, fmt.Errorf("parse: literal %q is not a single variable letter", literal)
		}

		letter := literal[0]
		if letter == 'G' {
			return qm.Minterm{}, fmt.Errorf("parse: variable G is not supported (six-variable system only)")
		}
		pos, ok := varIndex[letter]
		if !ok {
			return qm.Minterm{}, fmt.Errorf("parse: unknown variable letter %q", literal)
		}
		if negated {
			values[pos] = qm.Zero
		} else {
			values[pos] = qm.One
		}
	}

	return qm.New(values...), nil
}
