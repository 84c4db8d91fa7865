package arith

import (
	"math"
)

// Tolerance is the absolute difference allowed between
// a fixture's expected and actual results.
const Tolerance = 0.01

// Fixture is a single expected-value check for an operation.
type Fixture struct {
	About string
	X, Y  float64
	Want  float64
	// Op is the ID of the operation to run. Unary
	// operations ignore Y.
	Op int
}

// Run runs the fixture against the operation table ops.
// It reports the value the operation produced and whether
// it is within Tolerance of f.Want. Run does not check the
// operation's precondition.
func (f Fixture) Run(ops []Op) (got float64, pass bool) {
	op, ok := Lookup(ops, f.Op)
	if !ok {
		return math.NaN(), false
	}
	got = op.Apply([]float64{f.X, f.Y})
	return got, math.Abs(got-f.Want) < Tolerance
}

// Fixtures holds the reference battery for the standard
// operation table.
var Fixtures = []Fixture{
	{"Basic addition of positive numbers", 5.0, 3.0, 8.0, 1},
	{"Addition with decimal numbers", 2.5, 3.7, 6.2, 1},
	{"Addition with negative numbers", -5.0, -3.0, -8.0, 1},
	{"Addition with zero", 10.0, 0.0, 10.0, 1},
	{"Addition with mixed positive/negative", 15.0, -5.0, 10.0, 1},

	{"Basic subtraction", 10.0, 4.0, 6.0, 2},
	{"Subtraction with decimals", 7.5, 2.3, 5.2, 2},
	{"Subtraction resulting in negative", 3.0, 8.0, -5.0, 2},
	{"Subtraction with negative numbers", -5.0, -3.0, -2.0, 2},
	{"Subtraction with zero", 15.0, 0.0, 15.0, 2},

	{"Basic multiplication", 6.0, 7.0, 42.0, 3},
	{"Multiplication with decimals", 2.5, 4.0, 10.0, 3},
	{"Multiplication with negative", -3.0, 4.0, -12.0, 3},
	{"Multiplication with zero", 100.0, 0.0, 0.0, 3},
	{"Multiplication of negatives", -2.0, -5.0, 10.0, 3},

	{"Basic division", 20.0, 4.0, 5.0, 4},
	{"Division with decimals", 7.5, 2.5, 3.0, 4},
	{"Division resulting in decimal", 10.0, 3.0, 3.33, 4},
	{"Division with negative", -12.0, 3.0, -4.0, 4},
	{"Division by negative", 15.0, -3.0, -5.0, 4},

	{"Basic power operation", 2.0, 3.0, 8.0, 5},
	{"Power with decimal base", 2.5, 2.0, 6.25, 5},
	{"Power to zero", 5.0, 0.0, 1.0, 5},
	{"Power to one", 7.0, 1.0, 7.0, 5},
	{"Square operation", 4.0, 2.0, 16.0, 5},

	{"Basic square root", 9.0, 0.0, 3.0, 6},
	{"Square root of decimal", 6.25, 0.0, 2.5, 6},
	{"Square root of 1", 1.0, 0.0, 1.0, 6},
	{"Square root of 0", 0.0, 0.0, 0.0, 6},
	{"Square root of large number", 144.0, 0.0, 12.0, 6},
}
