package parse

import (
	"testing"

	"github.com/quinecrunch/qmcluskey/internal/qm"
)

func TestParseSingleLetterProduct(t *testing.T) {
	got, err := Parse("A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].At(5) != qm.One {
		t.Fatalf("got %v, want A set at position 5", got)
	}
}

func TestParseParenthesizedProductWithNegation(t *testing.T) {
	got, err := Parse("(A & !F)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected a single product term, got %v", got)
	}
	m := got[0]
	if m.At(5) != qm.One || m.At(0) != qm.Zero {
		t.Fatalf("got %v, want A=1, F=0", m)
	}
	for _, p := range []int{1, 2, 3, 4} {
		if m.At(p) != qm.DontCare {
			t.Fatalf("position %d should be DontCare, got %v", p, m.At(p))
		}
	}
}

func TestParseDisjunction(t *testing.T) {
	got, err := Parse("(A & !F) | (B & !C & D)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 product terms, got %d: %v", len(got), got)
	}
}

func TestParseAcceptsTildeNegation(t *testing.T) {
	got, err := Parse("(~A)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].At(5) != qm.Zero {
		t.Fatalf("got %v, want A=0", got[0])
	}
}

func TestParseRejectsG(t *testing.T) {
	_, err := Parse("(G)")
	if err == nil {
		t.Fatal("expected error rejecting variable G")
	}
}

func TestParseRejectsUnbalancedParens(t *testing.T) {
	_, err := Parse("(A & B")
	if err == nil {
		t.Fatal("expected error for unbalanced parentheses")
	}
}

func TestParseRejectsEmptyProduct(t *testing.T) {
	_, err := Parse("A | | B")
	if err == nil {
		t.Fatal("expected error for empty product term")
	}
}

func TestParseRejectsMultiLetterWithoutParens(t *testing.T) {
	_, err := Parse("AB")
	if err == nil {
		t.Fatal("expected error for non-parenthesized multi-character product")
	}
}

func TestParseRejectsUnknownLetter(t *testing.T) {
	_, err := Parse("(H)")
	if err == nil {
		t.Fatal("expected error for unknown variable letter")
	}
}
