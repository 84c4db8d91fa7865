// Package arith holds the calculator's operations: six pure functions
// over float64 and the table that the interactive session dispatches
// through.
//
// The functions never check their operands. Division by zero and the
// square root of a negative number follow IEEE-754 rules; it is up to the
// caller to run the operation's Check before calling it.
package arith

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDivisionByZero = errors.New("division by zero is not allowed")
	ErrNegativeRoot   = errors.New("cannot calculate square root of negative number")
)

func Add(a, b float64) float64 {
	return a + b
}

func Subtract(a, b float64) float64 {
	return a - b
}

func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a/b. The caller must ensure that b is not zero.
func Divide(a, b float64) float64 {
	return a / b
}

// Power returns base raised to exp. A negative base with
// a fractional exponent gives NaN.
func Power(base, exp float64) float64 {
	return math.Pow(base, exp)
}

// SquareRoot returns the principal square root of n.
// The caller must ensure that n is not negative.
func SquareRoot(n float64) float64 {
	return math.Sqrt(n)
}

// Op describes a single calculator operation.
type Op struct {
	// ID is the operation's menu number.
	ID     int
	Name   string
	Symbol string

	// Exactly one of Unary and Binary is non-nil.
	Unary  func(float64) float64
	Binary func(a, b float64) float64

	// Check, if non-nil, returns an error when args
	// do not satisfy the operation's precondition.
	Check func(args []float64) error
}

// Arity returns the number of operands the operation takes.
func (op Op) Arity() int {
	if op.Unary != nil {
		return 1
	}
	return 2
}

// Apply calls the operation's function on args without
// checking its precondition. It panics if len(args) < op.Arity().
func (op Op) Apply(args []float64) float64 {
	if op.Unary != nil {
		return op.Unary(args[0])
	}
	return op.Binary(args[0], args[1])
}

// Validate checks that args holds the right number of
// operands and that they satisfy the operation's precondition.
func (op Op) Validate(args []float64) error {
	if len(args) != op.Arity() {
		return fmt.Errorf("%s takes %d operand(s), not %d", op.Name, op.Arity(), len(args))
	}
	if op.Check != nil {
		return op.Check(args)
	}
	return nil
}

func (op Op) String() string {
	return fmt.Sprintf("%s (%s)", op.Name, op.Symbol)
}

// CheckDivisor guards Divide.
func CheckDivisor(args []float64) error {
	if args[1] == 0 {
		return ErrDivisionByZero
	}
	return nil
}

// CheckRadicand guards SquareRoot.
func CheckRadicand(args []float64) error {
	if args[0] < 0 {
		return ErrNegativeRoot
	}
	return nil
}

// Ops holds the standard operations in menu order.
var Ops = []Op{
	{ID: 1, Name: "Addition", Symbol: "+", Binary: Add},
	{ID: 2, Name: "Subtraction", Symbol: "-", Binary: Subtract},
	{ID: 3, Name: "Multiplication", Symbol: "*", Binary: Multiply},
	{ID: 4, Name: "Division", Symbol: "/", Binary: Divide, Check: CheckDivisor},
	{ID: 5, Name: "Power", Symbol: "^", Binary: Power},
	{ID: 6, Name: "Square Root", Symbol: "√", Unary: SquareRoot, Check: CheckRadicand},
}

// Lookup returns the operation in ops with the given ID.
func Lookup(ops []Op, id int) (Op, bool) {
	for _, op := range ops {
		if op.ID == id {
			return op, true
		}
	}
	return Op{}, false
}

// CheckTable checks that ops is well formed: IDs run from 1
// in order, every entry has a name and a symbol and exactly
// one of Unary and Binary is set.
func CheckTable(ops []Op) error {
	if len(ops) == 0 {
		return errors.New("no operations")
	}
	for i, op := range ops {
		if op.ID != i+1 {
			return fmt.Errorf("operation %d (%q) has id %d", i+1, op.Name, op.ID)
		}
		if op.Name == "" || op.Symbol == "" {
			return fmt.Errorf("operation %d has no name or symbol", op.ID)
		}
		if (op.Unary == nil) == (op.Binary == nil) {
			return fmt.Errorf("operation %d (%q) must have exactly one of Unary and Binary", op.ID, op.Name)
		}
	}
	return nil
}
