package qm

// Chart is a prime-implicant chart: a boolean matrix with one row per
// prime implicant and one column per original on-set minterm. Row i,
// column j is true iff the i'th prime implicant covers the j'th
// minterm. It owns both the matrix and the parallel prime-implicant
// list and keeps them index-consistent through removals, so callers
// never have to maintain that invariant themselves.
//
// Selectors mutate a Chart in place; callers should not reuse one after
// passing it to MinimalSOPTerms or MinimalSOP.
type Chart struct {
	rows   [][]bool
	primes []Minterm
}

// NewChart builds the chart covering minterms from primes. Row i is
// primes[i]'s coverage of minterms.
func NewChart(primes []Minterm, minterms []Minterm) *Chart {
	rows := make([][]bool, len(primes))
	for i, p := range primes {
		row := make([]bool, len(minterms))
		for j, m := range minterms {
			row[j] = checkMatch(p, m)
		}
		rows[i] = row
	}
	primesCopy := make([]Minterm, len(primes))
	copy(primesCopy, primes)
	return &Chart{rows: rows, primes: primesCopy}
}

// NumRows returns the current number of prime-implicant rows.
func (c *Chart) NumRows() int { return len(c.rows) }

// NumCols returns the current number of minterm columns, or 0 if the
// chart has no rows.
func (c *Chart) NumCols() int {
	if len(c.rows) == 0 {
		return 0
	}
	return len(c.rows[0])
}

// Primes returns the chart's current prime-implicant list, row-aligned
// with Row. Callers must not mutate the returned slice.
func (c *Chart) Primes() []Minterm { return c.primes }

// Row returns row i of the chart: row[j] is true iff implicant i covers
// column j.
func (c *Chart) Row(i int) []bool { return c.rows[i] }

// removeRow deletes row i (and its parallel primes[i]) from the chart,
// returning the removed implicant. Both slices are kept index-aligned.
func (c *Chart) removeRow(i int) Minterm {
	p := c.primes[i]
	c.primes = append(c.primes[:i], c.primes[i+1:]...)
	c.rows = append(c.rows[:i], c.rows[i+1:]...)
	return p
}

// rowCount classifies how many rows cover a chart column.
type rowCount int

const (
	rcNone rowCount = -2
	rcMulti rowCount = -1
	// rcNone/rcMulti are sentinels; any other value >= 0 is a row index.
)

// RemoveEssential extracts essential prime implicants from chart: a
// prime implicant is essential if it is the only row covering some
// column. It removes every essential row (and its column coverage) from
// chart, and returns the removed implicants along with the indices of
// columns that remain uncovered.
//
// Panics if any column has no covering row at all: that denotes a
// structural bug upstream (the chart was built from an incomplete
// prime-implicant set), not a recoverable condition.
func RemoveEssential(chart *Chart, report *TimeReport) (essentials []Minterm, remainingCols []int) {
	stop := startTiming()
	defer func() {
		if report != nil {
			report.RemoveEssentialPrimeImpls += stop()
		}
	}()

	numCols := chart.NumCols()
	owner := make([]rowCount, numCols)
	for i := range owner {
		owner[i] = rcNone
	}

	for rowI := 0; rowI < chart.NumRows(); rowI++ {
		row := chart.Row(rowI)
		for colI, present := range row {
			if !present {
				continue
			}
			switch owner[colI] {
			case rcNone:
				owner[colI] = rowCount(rowI)
			case rcMulti:
				// already multi, stays multi
			default:
				owner[colI] = rcMulti
			}
		}
	}

	isEssential := make([]bool, chart.NumRows())
	coveredByEssential := make([]bool, numCols)
	for _, o := range owner {
		switch {
		case o == rcNone:
			panic("qm: prime implicant chart column is covered by no row")
		case o == rcMulti:
			// leave as candidate for cover selection
		default:
			rowI := int(o)
			isEssential[rowI] = true
			for j, present := range chart.Row(rowI) {
				if present {
					coveredByEssential[j] = true
				}
			}
		}
	}

	for rowI := chart.NumRows() - 1; rowI >= 0; rowI-- {
		if isEssential[rowI] {
			essentials = append(essentials, chart.removeRow(rowI))
		}
	}

	support := make([]int, numCols)
	for rowI := 0; rowI < chart.NumRows(); rowI++ {
		for j, present := range chart.Row(rowI) {
			if present {
				support[j]++
			}
		}
	}

	for colI := 0; colI < numCols; colI++ {
		if !coveredByEssential[colI] && support[colI] > 0 {
			remainingCols = append(remainingCols, colI)
		}
	}
	return essentials, remainingCols
}
