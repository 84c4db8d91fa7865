package session

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/rogpeppe/menucalc/arith"
	"github.com/rogpeppe/menucalc/readlines"
)

var errNotFinite = errors.New("number is not finite")

// readChoice reads a menu selection. Text that
// is not an integer, or that is too long to read
// in full, is returned as 0, which is never a valid choice.
func (s *Session) readChoice() (int, error) {
	line, err := s.in.ReadLine()
	if err == readlines.ErrLineTooLong {
		s.logf("choice too long: %q...", line)
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		s.logf("bad choice %q: %v", line, err)
		return 0, nil
	}
	return choice, nil
}

// readOperands reads as many operands as op needs.
func (s *Session) readOperands(op arith.Op) ([]float64, error) {
	prompts := []string{"Enter first number: ", "Enter second number: "}
	if op.Arity() == 1 {
		prompts = []string{"Enter a number: "}
	}
	args := make([]float64, len(prompts))
	for i, prompt := range prompts {
		x, err := s.readOperand(prompt)
		if err != nil {
			return nil, err
		}
		args[i] = x
	}
	return args, nil
}

// readOperand prompts for a number until it
// gets one that parses. A line too long to read in full
// is never parsed, because its prefix may be a different number.
func (s *Session) readOperand(prompt string) (float64, error) {
	for {
		s.printf("%s", prompt)
		line, err := s.in.ReadLine()
		switch {
		case err == readlines.ErrLineTooLong:
			s.logf("operand too long: %q...", line)
			s.printf("%s\n", s.colors.problem("Invalid number %q..., please try again.", strings.TrimSpace(line)))
			continue
		case err != nil:
			return 0, err
		}
		x, err := parseOperand(line)
		if err == nil {
			return x, nil
		}
		s.logf("bad operand %q: %v", line, err)
		s.printf("%s\n", s.colors.problem("Invalid number %q, please try again.", strings.TrimSpace(line)))
	}
}

// parseOperand parses a single finite number.
func parseOperand(text string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, errNotFinite
	}
	return x, nil
}

// readContinue asks whether to do another calculation.
// Blank lines are skipped; the answer is taken from the
// first character of the first non-blank line, so an
// overlong line still counts.
func (s *Session) readContinue() (bool, error) {
	s.printf("\nDo you want to perform another calculation? (y/n): ")
	for {
		line, err := s.in.ReadLine()
		if err != nil && err != readlines.ErrLineTooLong {
			return false, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.printf("\n")
		return line[0] == 'y' || line[0] == 'Y', nil
	}
}
