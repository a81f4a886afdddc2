package qm

import (
	"fmt"
	"strings"
	"time"
)

// TimeReport accumulates per-phase timing for the Petrick cover
// selector. It is a diagnostic artifact, not part of the algorithmic
// contract: it may be ignored, and its presence or absence never
// changes a selector's result.
type TimeReport struct {
	RemoveEssentialPrimeImpls time.Duration
	BitVecsFromChartCols      time.Duration

	RemoveRedundant          time.Duration
	RemoveRedundantFirstLoop time.Duration

	FirstLoop  time.Duration
	SecondLoop time.Duration

	PairwiseOrCalls uint64
	PairwiseOr      time.Duration
}

// String renders a human-readable breakdown of where time went.
func (t TimeReport) String() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Petrick run time:")
	fmt.Fprintf(&b, "-- remove_essential_prime_impls: %5d ms\n", t.RemoveEssentialPrimeImpls.Milliseconds())
	fmt.Fprintf(&b, "-- bitvecs_from_chart_cols:      %5d ms\n\n", t.BitVecsFromChartCols.Milliseconds())
	fmt.Fprintf(&b, "-- remove_redundant:             %5d ms\n", t.RemoveRedundant.Milliseconds())
	fmt.Fprintf(&b, "-- remove_redundant first loop:  %5d ms\n\n", t.RemoveRedundantFirstLoop.Milliseconds())
	fmt.Fprintf(&b, "-- first loop:                   %5d ms\n", t.FirstLoop.Milliseconds())
	fmt.Fprintf(&b, "-- second loop:                  %5d ms\n\n", t.SecondLoop.Milliseconds())
	fmt.Fprintf(&b, "-- pairwise_or calls:            %5d \n", t.PairwiseOrCalls)
	fmt.Fprintf(&b, "-- pairwise_or:                  %5d ms", t.PairwiseOr.Milliseconds())
	return b.String()
}

// startTiming returns a stop function yielding the elapsed duration
// since startTiming was called, for the common "stop := startTiming();
// ...; total += stop()" pattern used throughout the Petrick path.
func startTiming() func() time.Duration {
	start := time.Now()
	return func() time.Duration { return time.Since(start) }
}
