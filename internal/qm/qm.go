package qm

import "sort"

// Minimize runs the full pipeline — prime-implicant generation, chart
// construction, and Petrick's exact cover selection — on minterms, and
// returns a minimum sum-of-products term set sorted for canonical
// display, along with a Petrick timing breakdown.
func Minimize(minterms []Minterm) ([]Minterm, TimeReport) {
	primes := GetPrimeImplicants(minterms)
	chart := NewChart(primes, minterms)
	result, report := MinimalSOPTerms(chart)
	DisplaySort(result)
	return result, report
}

// MinimizeGreedy runs the same pipeline as Minimize but selects the
// cover with the greedy approximation instead of Petrick's method.
func MinimizeGreedy(minterms []Minterm) []Minterm {
	primes := GetPrimeImplicants(minterms)
	chart := NewChart(primes, minterms)
	result := MinimalSOP(chart)
	DisplaySort(result)
	return result
}

// DisplaySort orders minterms for canonical human display: lexicographic
// on the tuple (t_{n-1}, ..., t_0), where at each position One sorts
// before Zero, which sorts before DontCare. This puts positive literals
// first, then negatives, then wildcards, and is stable across runs.
//
// All minterms in ms must share one length; DisplaySort panics
// otherwise, since mixed-length lists never arise from a single
// minimization and indicate a caller bug.
func DisplaySort(ms []Minterm) {
	if len(ms) == 0 {
		return
	}
	n := ms[0].n
	for _, m := range ms {
		if m.n != n {
			panic("qm: cannot display-sort minterms of different lengths")
		}
	}
	sort.Slice(ms, func(i, j int) bool {
		a, b := ms[i], ms[j]
		for p := int(n) - 1; p >= 0; p-- {
			ra, rb := displayRank(a.values[p]), displayRank(b.values[p])
			if ra != rb {
				return ra < rb
			}
		}
		return false
	})
}

func displayRank(v Value) int {
	switch v {
	case One:
		return 0
	case Zero:
		return 1
	default: // DontCare
		return 2
	}
}
