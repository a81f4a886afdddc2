package qm

import "testing"

func TestNewChartCoverage(t *testing.T) {
	primes := []Minterm{New(One, DontCare)} // covers 10 and 11
	minterms := []Minterm{New(One, Zero), New(One, One), New(Zero, Zero)}
	chart := NewChart(primes, minterms)

	if chart.NumRows() != 1 || chart.NumCols() != 3 {
		t.Fatalf("unexpected chart shape: rows=%d cols=%d", chart.NumRows(), chart.NumCols())
	}
	row := chart.Row(0)
	want := []bool{true, true, false}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %v, want %v", i, row[i], want[i])
		}
	}
}

func TestRemoveEssentialSingleColumnIsEssential(t *testing.T) {
	// Two rows cover col 0 and col 1 respectively only; each is essential.
	primes := []Minterm{New(One, Zero), New(Zero, One)}
	minterms := []Minterm{New(One, Zero), New(Zero, One)}
	chart := NewChart(primes, minterms)

	essentials, remaining := RemoveEssential(chart, nil)
	if len(essentials) != 2 {
		t.Fatalf("expected both rows essential, got %v", essentials)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no remaining columns, got %v", remaining)
	}
	if chart.NumRows() != 0 {
		t.Fatalf("expected chart drained of rows, got %d", chart.NumRows())
	}
}

func TestRemoveEssentialLeavesMultiCoverageColumn(t *testing.T) {
	// Column 0 is covered by both rows (multi); neither is essential from
	// that column alone.
	primes := []Minterm{New(One, DontCare), New(DontCare, One)}
	minterms := []Minterm{New(One, One)}
	chart := NewChart(primes, minterms)

	essentials, remaining := RemoveEssential(chart, nil)
	if len(essentials) != 0 {
		t.Fatalf("expected no essential rows, got %v", essentials)
	}
	if len(remaining) != 1 || remaining[0] != 0 {
		t.Fatalf("expected column 0 to remain uncovered, got %v", remaining)
	}
	if chart.NumRows() != 2 {
		t.Fatalf("expected both rows to remain, got %d", chart.NumRows())
	}
}

func TestRemoveEssentialPanicsOnUncoveredColumn(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a column with no covering row")
		}
	}()
	primes := []Minterm{New(One, Zero)}
	minterms := []Minterm{New(One, Zero), New(Zero, Zero)}
	chart := NewChart(primes, minterms)
	RemoveEssential(chart, nil)
}

func TestRemoveEssentialDropsOrphanedColumn(t *testing.T) {
	// Row 0 is essential for column 1 and also covers column 0, the only
	// column row 1 covers. Column 0 should come out covered, not listed
	// as remaining, even though row 1 still supports it.
	primes := []Minterm{New(One, DontCare), New(One, Zero)}
	minterms := []Minterm{New(One, Zero), New(One, One)}
	chart := NewChart(primes, minterms)
	// Row0 "1x" covers both col0 (10) and col1 (11). Row1 "10" covers only col0.
	// col0 has two covering rows (multi); col1 has exactly one (row0, essential).
	essentials, remaining := RemoveEssential(chart, nil)
	if len(essentials) != 1 || essentials[0] != New(One, DontCare) {
		t.Fatalf("expected row0 essential, got %v", essentials)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no remaining columns since essential covered both, got %v", remaining)
	}
}
