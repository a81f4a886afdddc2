// Package qmcluskey minimizes Boolean functions of up to six variables
// into a minimum (or near-minimum) sum-of-products expression using the
// Quine-McCluskey procedure. The minimization engine itself lives in
// internal/qm; this package wires it together with INIT-hex conversion,
// SOP parsing, and SOP formatting into the public API.
package qmcluskey

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var versionRaw string

// Version returns the embedded version string from VERSION.
func Version() string {
	return strings.TrimSpace(versionRaw)
}
