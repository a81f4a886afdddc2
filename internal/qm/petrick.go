package qm

// MinimalSOPTerms finds a minimum-cardinality subset of chart's
// remaining implicants (after essential extraction) that covers every
// remaining column, using Petrick's method: each column becomes a
// disjunction of the rows that cover it, the conjunction across columns
// is distributed into a sum of products, and the shortest product names
// a minimal cover.
//
// Panics if chart has zero rows or zero columns: that is a caller bug
// (the chart should never be built or handed to a selector in that
// state).
func MinimalSOPTerms(chart *Chart) ([]Minterm, TimeReport) {
	if chart.NumRows() == 0 || chart.NumCols() == 0 {
		panic("qm: prime implicant chart has either no rows or no columns")
	}
	if chart.NumRows() > MaxChartCols {
		panic("qm: prime implicant chart has more rows than a BitVec can index")
	}

	var report TimeReport

	essentials, remainingCols := RemoveEssential(chart, &report)
	if len(remainingCols) == 0 {
		return essentials, report
	}

	stopBV := startTiming()
	colBitVecs := make([][]BitVec, 0, len(remainingCols))
	for _, col := range remainingCols {
		bvs := bitvecsFromChartCol(chart, col)
		if len(bvs) == 0 {
			continue
		}
		colBitVecs = append(colBitVecs, bvs)
	}
	report.BitVecsFromChartCols += stopBV()

	stopFirst := startTiming()
	current := []BitVec{0}
	for i, next := range colBitVecs {
		report.PairwiseOrCalls++
		current = pairwiseOr(current, next, &report)
		if i < len(colBitVecs)-1 {
			removeRedundant(&current, &report)
		}
	}
	report.FirstLoop += stopFirst()

	stopSecond := startTiming()
	bitSort(current)
	chosen := current[0]
	primes := chart.Primes()
	for _, idx := range chosen.Indices() {
		essentials = append(essentials, primes[idx])
	}
	report.SecondLoop += stopSecond()

	return essentials, report
}

// bitvecsFromChartCol returns one single-bit BitVec per chart row that
// covers col: a column's "options" for Petrick's method.
func bitvecsFromChartCol(chart *Chart, col int) []BitVec {
	var out []BitVec
	for i := 0; i < chart.NumRows(); i++ {
		if chart.Row(i)[col] {
			var bv BitVec
			bv.SetBit(i)
			out = append(out, bv)
		}
	}
	return out
}

// pairwiseOr computes the union of every pair (a, b) with a in current
// and b in next: despite the name inherited from the historical
// "pairwise_and" description of Petrick's product-of-sums algebra, the
// bitwise operation performed is OR, because a BitVec's set bits are
// interpreted as the *conjunction* of the corresponding implicants, and
// combining two partial covers unions their bits. Results are sorted by
// (popcount, bits) and adjacent duplicates removed.
func pairwiseOr(current, next []BitVec, report *TimeReport) []BitVec {
	stop := startTiming()
	defer func() { report.PairwiseOr += stop() }()

	merged := make([]BitVec, 0, len(current)*len(next))
	for _, c := range current {
		for _, n := range next {
			merged = append(merged, c.Union(n))
		}
	}

	bitSort(merged)
	out := merged[:0]
	for i, bv := range merged {
		if i == 0 || bv != out[len(out)-1] {
			out = append(out, bv)
		}
	}
	return out
}

// removeRedundant drops BitVecs from bvs that are proper supersets of
// another entry: since a partial cover is monotone in its bits (more
// bits can only add coverage), a strict superset of an existing cover
// is dominated and can never be the unique minimal choice. Sorting by
// popcount first means every potential dominator is considered before
// its possible supersets.
//
// Precondition: bvs is already sorted and deduplicated (pairwiseOr
// guarantees this for its own output).
func removeRedundant(bvs *[]BitVec, report *TimeReport) {
	if len(*bvs) == 0 {
		return
	}
	stop := startTiming()
	defer func() { report.RemoveRedundant += stop() }()

	groups := bitSort(*bvs)
	toRemove := make([]bool, len(*bvs))

	stopInner := startTiming()
	lastGroupStart := groups[len(groups)-1].start
	for i := 0; i < lastGroupStart; i++ {
		if toRemove[i] {
			// Removing bitvec i would also remove its supersets;
			// anything it would have dominated is already handled by
			// whatever dominates i.
			continue
		}
		bi := (*bvs)[i]
		gi := groupIndexForCount(groups, bi.CountOnes())
		nextStart := groups[gi+1].start
		for j := nextStart; j < len(*bvs); j++ {
			if !toRemove[j] && bi.IsSubset((*bvs)[j]) {
				toRemove[j] = true
			}
		}
	}
	report.RemoveRedundantFirstLoop += stopInner()

	out := (*bvs)[:0]
	for i, bv := range *bvs {
		if !toRemove[i] {
			out = append(out, bv)
		}
	}
	*bvs = out
}
