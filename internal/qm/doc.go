// Package qm implements the Quine-McCluskey minimization engine: the
// minterm/implicant value type, prime-implicant generation, the
// prime-implicant chart, essential-implicant extraction, and the two
// cover selectors (Petrick's method and a greedy fallback).
//
// The package is synchronous and allocates no goroutines. Every
// exported function is a pure function of its inputs (plus, for the
// Petrick path, an optional *TimeReport accumulator). Callers that need
// a time budget should wrap calls at the process level and prefer
// MinimizeGreedy for responsiveness; this package has no notion of
// cancellation.
package qm
