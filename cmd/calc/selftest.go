package main

import (
	"fmt"
	"io"

	"github.com/rogpeppe/menucalc/arith"
)

// selftest runs each of the fixtures against ops, printing
// a report of each one to w followed by a summary.
func selftest(w io.Writer, fixtures []arith.Fixture, ops []arith.Op) (passed, failed int) {
	for _, f := range fixtures {
		op, ok := arith.Lookup(ops, f.Op)
		fmt.Fprintf(w, "Testing: %s\n", f.About)
		if !ok {
			fmt.Fprintf(w, "Unknown operation %d\n✗ FAIL\n\n", f.Op)
			failed++
			continue
		}
		got, pass := f.Run(ops)
		fmt.Fprintf(w, "Operation: %s\n", op.Name)
		if op.Arity() == 1 {
			fmt.Fprintf(w, "Input: %.2f\n", f.X)
		} else {
			fmt.Fprintf(w, "Inputs: %.2f, %.2f\n", f.X, f.Y)
		}
		fmt.Fprintf(w, "Expected: %.2f\n", f.Want)
		fmt.Fprintf(w, "Actual: %.2f\n", got)
		if pass {
			fmt.Fprintf(w, "✓ PASS\n\n")
			passed++
		} else {
			fmt.Fprintf(w, "✗ FAIL\n\n")
			failed++
		}
	}
	fmt.Fprintf(w, "%d tests, %d passed, %d failed\n", len(fixtures), passed, failed)
	return passed, failed
}
