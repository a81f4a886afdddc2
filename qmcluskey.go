package qmcluskey

import (
	"github.com/quinecrunch/qmcluskey/internal/convert"
	"github.com/quinecrunch/qmcluskey/internal/format"
	"github.com/quinecrunch/qmcluskey/internal/parse"
	"github.com/quinecrunch/qmcluskey/internal/qm"
)

// Value is the value a Minterm position takes: Zero, One, or DontCare.
type Value = qm.Value

// The three values a Minterm position can hold.
const (
	Zero     = qm.Zero
	One      = qm.One
	DontCare = qm.DontCare
)

// Minterm is a product term over up to six variables.
type Minterm = qm.Minterm

// NewMinterm builds a Minterm from its position values; see qm.New.
func NewMinterm(values ...Value) Minterm { return qm.New(values...) }

// TimeReport is an optional diagnostic breakdown of where Petrick's
// method spent its time. It never affects a result's correctness.
type TimeReport = qm.TimeReport

// Simplify runs the exact Quine-McCluskey pipeline on minterms and
// returns the rendered minimum sum-of-products string, its term count,
// and a Petrick timing breakdown. An empty on-set renders as "False"
// with zero terms.
func Simplify(minterms []Minterm) (sop string, termCount int, report TimeReport) {
	if len(minterms) == 0 {
		return format.StringForSOP(nil, true, ""), 0, TimeReport{}
	}
	result, rep := qm.Minimize(minterms)
	return format.StringForSOP(result, true, ""), len(result), rep
}

// SimplifyGreedy runs the same pipeline as Simplify but selects an
// approximately-minimal cover using the greedy selector.
func SimplifyGreedy(minterms []Minterm) (sop string, termCount int) {
	if len(minterms) == 0 {
		return format.StringForSOP(nil, true, ""), 0
	}
	result := qm.MinimizeGreedy(minterms)
	return format.StringForSOP(result, true, ""), len(result)
}

// SimplifyInit parses a 16-hex-char (or shorter, zero-padded) INIT
// string into its on-set minterms and runs Simplify on them. Returns a
// user error if hex is malformed.
func SimplifyInit(hex string) (sop string, termCount int, report TimeReport, err error) {
	minterms, err := convert.MintermsFromInitHex(hex)
	if err != nil {
		return "", 0, TimeReport{}, err
	}
	sop, termCount, report = Simplify(minterms)
	return sop, termCount, report, nil
}

// SimplifyInitGreedy is the greedy counterpart to SimplifyInit.
func SimplifyInitGreedy(hex string) (sop string, termCount int, err error) {
	minterms, err := convert.MintermsFromInitHex(hex)
	if err != nil {
		return "", 0, err
	}
	sop, termCount = SimplifyGreedy(minterms)
	return sop, termCount, nil
}

// SOPStringToInit parses sop and encodes its literal product terms
// directly into a 16-hex-char INIT string, without minimization. Useful
// for checking whether two SOP expressions denote the same function.
func SOPStringToInit(sop string) (string, error) {
	return convert.SOPStringToInit(sop)
}

// InitHexToSOPString parses a hex INIT string and formats its on-set
// directly as SOP text, without minimization.
func InitHexToSOPString(hex string, omitTrivial bool) (string, error) {
	minterms, err := convert.MintermsFromInitHex(hex)
	if err != nil {
		return "", err
	}
	return convert.MintermsToSOPString(minterms, omitTrivial), nil
}

// FormatSOP re-renders sop text after parsing and re-formatting it,
// without minimization: a convenience for normalizing user-written SOP
// expressions to the canonical " | "/" & "/"~" rendering.
func FormatSOP(sop string, omitTrivial bool) (string, error) {
	minterms, err := parse.Parse(sop)
	if err != nil {
		return "", err
	}
	return format.StringForSOP(minterms, omitTrivial, ""), nil
}
