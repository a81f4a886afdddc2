// Package convert bridges the hex INIT truth-table encoding used by
// callers to the qm package's Minterm value type. Both directions apply
// the same bit convention: position 5 of a Minterm is the most
// significant bit of the encoded index and is variable A; position 0 is
// the least significant bit and is variable F.
package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quinecrunch/qmcluskey/internal/format"
	"github.com/quinecrunch/qmcluskey/internal/parse"
	"github.com/quinecrunch/qmcluskey/internal/qm"
)

const hexLen = 16

// MintermsFromInitHex parses a right-justified hex INIT string (at most
// 16 characters, zero-padded on the left) into the list of concrete
// six-variable minterms whose bit is set in the encoded truth table.
//
// Returns an error if hex is longer than 16 characters or contains a
// non-hex character; both are user errors, not programmer errors.
func MintermsFromInitHex(hex string) ([]qm.Minterm, error) {
	if len(hex) > hexLen {
		return nil, fmt.Errorf("convert: hex string contains more than %d hex chars", hexLen)
	}
	padded := strings.Repeat("0", hexLen-len(hex)) + hex
	num, err := strconv.ParseUint(padded, 16, 64)
	if err != nil {
		return nil, fmt.Errorf("convert: %q is not a valid hex string: %w", hex, err)
	}

	var minterms []qm.Minterm
	for k := 0; k < 64; k++ {
		if num&(uint64(1)<<uint(k)) == 0 {
			continue
		}
		minterms = append(minterms, mintermFromIndex(k))
	}
	return minterms, nil
}

// InitHexFromMinterms encodes minterms (which may contain DontCare
// positions) back into a 16-character uppercase hex INIT string: every
// concrete assignment covered by any minterm has its bit set.
func InitHexFromMinterms(minterms []qm.Minterm) string {
	var num uint64
	for _, m := range minterms {
		for _, k := range indicesCoveredBy(m) {
			num |= uint64(1) << uint(k)
		}
	}
	return fmt.Sprintf("%016X", num)
}

// mintermFromIndex builds the concrete minterm whose six-bit assignment
// equals k: position p (0 = F .. 5 = A) takes bit p of k.
func mintermFromIndex(k int) qm.Minterm {
	values := make([]qm.Value, qm.MaxVars)
	for p := 0; p < qm.MaxVars; p++ {
		if k&(1<<uint(p)) != 0 {
			values[p] = qm.One
		} else {
			values[p] = qm.Zero
		}
	}
	return qm.New(values...)
}

// SOPStringToInit parses sop and directly encodes its literal product
// terms into a 16-hex-char INIT string, without running the
// minimization pipeline. It exists for callers that want to check
// whether two SOP expressions are logically equivalent (by comparing
// their INIT encodings) without caring whether either is minimal.
func SOPStringToInit(sop string) (string, error) {
	minterms, err := parse.Parse(sop)
	if err != nil {
		return "", err
	}
	return InitHexFromMinterms(minterms), nil
}

// MintermsToSOPString renders minterms as SOP text using the same
// product-term formatting the minimizer's own output uses, independent
// of any minimization step: it is a thin convenience wrapper over
// internal/format for callers that already have a minterm list in hand.
func MintermsToSOPString(minterms []qm.Minterm, omitTrivial bool) string {
	return format.StringForSOP(minterms, omitTrivial, "")
}

// indicesCoveredBy expands m's DontCare positions into every concrete
// assignment index it covers.
func indicesCoveredBy(m qm.Minterm) []int {
	indices := []int{0}
	for p := 0; p < m.Len(); p++ {
		bit := 1 << uint(p)
		switch m.At(p) {
		case qm.Zero:
			// bit stays clear
		case qm.One:
			for i := range indices {
				indices[i] |= bit
			}
		case qm.DontCare:
			extra := make([]int, len(indices))
			copy(extra, indices)
			for i := range extra {
				extra[i] |= bit
			}
			indices = append(indices, extra...)
		}
	}
	return indices
}
