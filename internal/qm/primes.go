package qm

import "sort"

// GetPrimeImplicants returns the set of prime implicants of the
// function whose on-set is implicants (duplicates removed). It repeats
// adjacency merges — pairing implicants that differ in exactly one
// concrete position — until a round produces no merges, then returns
// that round's implicants: the union of newly-merged cubes and the
// inputs that were never merged.
//
// Each merge strictly increases the output's DontCare count over its
// inputs, and there are only Len()+1 possible DontCare counts, so this
// reaches a fixed point in at most Len()+1 rounds. Complexity is
// O(M^2 * N) per round, where M is the round's implicant count.
func GetPrimeImplicants(implicants []Minterm) []Minterm {
	if len(implicants) == 0 {
		return nil
	}

	current := dedupMinterms(implicants)
	for {
		next, anyMerged := mergeRound(current)
		if !anyMerged {
			sortMinterms(next)
			return next
		}
		current = next
	}
}

// mergeRound performs one sweep of pairwise merges over current and
// returns the deduplicated result set, plus whether any pair merged.
func mergeRound(current []Minterm) ([]Minterm, bool) {
	merged := make(map[Minterm]bool)
	used := make([]bool, len(current))
	anyMerged := false

	for i := 0; i < len(current); i++ {
		for j := i + 1; j < len(current); j++ {
			pos, ok := canMerge(current[i], current[j])
			if !ok {
				continue
			}
			merged[current[i].merge(pos)] = true
			used[i] = true
			used[j] = true
			anyMerged = true
		}
	}
	for i, wasUsed := range used {
		if !wasUsed {
			merged[current[i]] = true
		}
	}

	out := make([]Minterm, 0, len(merged))
	for m := range merged {
		out = append(out, m)
	}
	return out, anyMerged
}

func dedupMinterms(in []Minterm) []Minterm {
	seen := make(map[Minterm]bool, len(in))
	out := make([]Minterm, 0, len(in))
	for _, m := range in {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// sortMinterms orders minterms deterministically (by length, then
// position values, both ascending) for reproducible output order. This
// is unrelated to the canonical display sort in DisplaySort.
func sortMinterms(ms []Minterm) {
	sort.Slice(ms, func(i, j int) bool {
		a, b := ms[i], ms[j]
		if a.n != b.n {
			return a.n < b.n
		}
		for k := 0; k < int(a.n); k++ {
			if a.values[k] != b.values[k] {
				return a.values[k] < b.values[k]
			}
		}
		return false
	})
}
