package session

import (
	"math"
	"testing"

	"github.com/rogpeppe/menucalc/arith"
)

var formatTests = []struct {
	op     int
	args   []float64
	result float64
	want   string
}{
	{1, []float64{5, 3}, 8, "5.00 + 3.00 = 8.00"},
	{4, []float64{10, 3}, 10.0 / 3, "10.00 / 3.00 = 3.33"},
	{2, []float64{0.005, 0.004}, 0.001, "0.01 - 0.00 = 0.00"},
	{5, []float64{10, 400}, math.Inf(1), "10.00 ^ 400.00 = +Inf"},
	{5, []float64{-8, 1.0 / 3}, math.NaN(), "-8.00 ^ 0.33 = NaN"},
	{3, []float64{1e6, 1e6}, 1e12, "1000000.00 * 1000000.00 = 1000000000000.00"},
	{6, []float64{2}, math.Sqrt2, "√2.00 = 1.41"},
}

func TestFormatCalculation(t *testing.T) {
	for _, test := range formatTests {
		op, _ := arith.Lookup(arith.Ops, test.op)
		got := formatCalculation(&calculation{op: op, args: test.args, result: test.result})
		if got != test.want {
			t.Errorf("want %q; got %q", test.want, got)
		}
	}
}

func TestParseOperand(t *testing.T) {
	for _, text := range []string{"1", " 2.5 ", "-0", "1e3", ".5", "0x1p-2"} {
		if _, err := parseOperand(text); err != nil {
			t.Errorf("parseOperand(%q): unexpected error %v", text, err)
		}
	}
	for _, text := range []string{"", "abc", "1 2", "NaN", "inf", "-Infinity", "1e400", "3,5"} {
		if x, err := parseOperand(text); err == nil {
			t.Errorf("parseOperand(%q): expected error, got %v", text, x)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if got := phaseValidate.String(); got != "validate" {
		t.Errorf("got %q", got)
	}
	if got := phase(99).String(); got != "phase99" {
		t.Errorf("got %q", got)
	}
}
