package session

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// precision is the number of decimal places
// used for every number the session prints.
const precision = 2

const bannerRule = "==============================="

// palette holds the formatting functions used
// for the parts of the output that can be coloured.
type palette struct {
	banner  func(format string, a ...interface{}) string
	result  func(format string, a ...interface{}) string
	problem func(format string, a ...interface{}) string
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{
			banner:  fmt.Sprintf,
			result:  fmt.Sprintf,
			problem: fmt.Sprintf,
		}
	}
	sprintf := func(attrs ...color.Attribute) func(string, ...interface{}) string {
		c := color.New(attrs...)
		// Colour was asked for explicitly, so don't
		// second-guess it by looking at the terminal.
		c.EnableColor()
		return c.SprintfFunc()
	}
	return palette{
		banner:  sprintf(color.FgCyan, color.Bold),
		result:  sprintf(color.FgGreen),
		problem: sprintf(color.FgRed),
	}
}

func (s *Session) printf(f string, a ...interface{}) {
	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintf(s.out, f, a...); err != nil {
		s.err = fmt.Errorf("cannot write output: %v", err)
	}
}

func (s *Session) banner() {
	s.printf("%s\n", s.colors.banner("%s\n      CONSOLE CALCULATOR\n%s", bannerRule, bannerRule))
	s.printf("\n")
}

func (s *Session) menu() {
	var b strings.Builder
	b.WriteString("Select an operation:\n")
	for _, op := range s.ops {
		fmt.Fprintf(&b, "%d. %v\n", op.ID, op)
	}
	fmt.Fprintf(&b, "%d. Exit\n", s.exit)
	fmt.Fprintf(&b, "Enter your choice (1-%d): ", s.exit)
	s.printf("%s", b.String())
}

func (s *Session) invalidChoice() {
	s.printf("\n%s\n", s.colors.problem("Invalid choice! Please try again."))
}

func (s *Session) goodbye() {
	s.printf("\n%s\n", s.colors.banner("Thank you for using the calculator!"))
}

// report prints the outcome of the calculation c.
func (s *Session) report(c *calculation) {
	if c.err != nil {
		s.printf("\n%s\n", s.colors.problem("Error: %v!", c.err))
		return
	}
	s.printf("\nResult: %s\n", s.colors.result("%s", formatCalculation(c)))
}

// formatCalculation returns the calculation in
// the form "a op b = result", or "op a = result"
// for a unary operation.
func formatCalculation(c *calculation) string {
	if len(c.args) == 1 {
		return fmt.Sprintf("%s%s = %s", c.op.Symbol, formatNumber(c.args[0]), formatNumber(c.result))
	}
	return fmt.Sprintf("%s %s %s = %s", formatNumber(c.args[0]), c.op.Symbol, formatNumber(c.args[1]), formatNumber(c.result))
}

func formatNumber(x float64) string {
	return fmt.Sprintf("%.*f", precision, x)
}
