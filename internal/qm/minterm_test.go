package qm

import "testing"

func TestMintermEquality(t *testing.T) {
	a := New(One, Zero, DontCare)
	b := New(One, Zero, DontCare)
	if a != b {
		t.Errorf("expected equal minterms, got %v != %v", a, b)
	}
	c := New(One, One, DontCare)
	if a == c {
		t.Errorf("expected distinct minterms, got %v == %v", a, c)
	}
}

func TestMintermAsMapKey(t *testing.T) {
	m := make(map[Minterm]bool)
	m[New(One, Zero)] = true
	if !m[New(One, Zero)] {
		t.Fatal("expected minterm to be usable as a map key")
	}
}

func TestCanMergeConcreteDiff(t *testing.T) {
	a := New(One, Zero, One)
	b := New(One, One, One)
	pos, ok := canMerge(a, b)
	if !ok || pos != 1 {
		t.Fatalf("expected merge at position 1, got pos=%d ok=%v", pos, ok)
	}
}

func TestCanMergeRejectsTwoDiffs(t *testing.T) {
	a := New(Zero, Zero, One)
	b := New(One, One, One)
	if _, ok := canMerge(a, b); ok {
		t.Fatal("expected no merge for two differing positions")
	}
}

func TestCanMergeRejectsConcreteAgainstDontCare(t *testing.T) {
	a := New(One, DontCare, One)
	b := New(One, One, One)
	if _, ok := canMerge(a, b); ok {
		t.Fatal("expected no merge when one side has a DontCare the other lacks")
	}
}

func TestCanMergeRejectsIdentical(t *testing.T) {
	a := New(One, Zero, One)
	b := New(One, Zero, One)
	if _, ok := canMerge(a, b); ok {
		t.Fatal("expected identical minterms to not be mergeable")
	}
}

func TestCanMergePanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	canMerge(New(One, Zero), New(One, Zero, One))
}

func TestMerge(t *testing.T) {
	a := New(One, Zero, One)
	b := New(One, One, One)
	pos, ok := canMerge(a, b)
	if !ok {
		t.Fatal("expected mergeable")
	}
	got := a.merge(pos)
	want := New(One, DontCare, One)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCheckMatch(t *testing.T) {
	pattern := New(One, DontCare, Zero)
	if !checkMatch(pattern, New(One, One, Zero)) {
		t.Error("expected pattern to match")
	}
	if !checkMatch(pattern, New(One, Zero, Zero)) {
		t.Error("expected pattern to match regardless of wildcard position")
	}
	if checkMatch(pattern, New(Zero, One, Zero)) {
		t.Error("expected mismatch on concrete position")
	}
}

func TestCheckMatchPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	checkMatch(New(One, Zero), New(One, Zero, One))
}
