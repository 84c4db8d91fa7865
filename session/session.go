// Package session implements the calculator's interactive loop:
// show the menu, read a choice and its operands, check the
// operation's precondition, run it, report the result and ask
// whether to go round again.
//
// Every read blocks until a line of input arrives. The loop keeps
// no state between calculations.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/rogpeppe/menucalc/arith"
	"github.com/rogpeppe/menucalc/readlines"
)

var spewConf = spew.ConfigState{
	Indent:         "\t",
	DisableMethods: true,
	MaxDepth:       3,
}

// DefaultMaxLine is the default maximum length of an input line.
const DefaultMaxLine = 50

// Params holds the parameters for a new Session.
type Params struct {
	// In and Out are required.
	In  io.Reader
	Out io.Writer

	// Ops holds the operations offered on the menu.
	// If it is nil, arith.Ops is used.
	Ops []arith.Op

	// MaxLine holds the maximum length of an input line.
	// Longer lines are treated as invalid input. If it is zero,
	// DefaultMaxLine is used.
	MaxLine int

	// Color enables ANSI colour in the output.
	Color bool

	// Log, if non-nil, receives a trace of every phase
	// the session passes through.
	Log *log.Logger
}

// Session is a single interactive calculator session.
type Session struct {
	in     *readlines.Reader
	out    io.Writer
	ops    []arith.Op
	exit   int
	colors palette
	log    *log.Logger

	// err holds the first error encountered when writing.
	err error
}

// New returns a new session using the given parameters.
func New(p Params) (*Session, error) {
	if p.In == nil || p.Out == nil {
		return nil, errors.New("session needs both input and output")
	}
	if p.Ops == nil {
		p.Ops = arith.Ops
	}
	if err := arith.CheckTable(p.Ops); err != nil {
		return nil, fmt.Errorf("bad operation table: %v", err)
	}
	if p.MaxLine <= 0 {
		p.MaxLine = DefaultMaxLine
	}
	return &Session{
		in:     readlines.NewReader(p.In, p.MaxLine),
		out:    p.Out,
		ops:    p.Ops,
		exit:   len(p.Ops) + 1,
		colors: newPalette(p.Color),
		log:    p.Log,
	}, nil
}

// phase represents a step of the session's state machine.
type phase int

const (
	phaseMenu phase = iota
	phaseOperands
	phaseValidate
	phaseExecute
	phaseReport
	phaseContinue
	phaseTerminated
)

var phaseNames = []string{
	phaseMenu:       "menu",
	phaseOperands:   "operands",
	phaseValidate:   "validate",
	phaseExecute:    "execute",
	phaseReport:     "report",
	phaseContinue:   "continue",
	phaseTerminated: "terminated",
}

func (p phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase%d", int(p))
	}
	return phaseNames[p]
}

// calculation holds everything known about the
// calculation in progress.
type calculation struct {
	op     arith.Op
	args   []float64
	result float64
	err    error
}

// Run runs the session until the user chooses to exit, declines
// to continue or the input is exhausted. It returns an error only
// if reading or writing fails.
func (s *Session) Run() error {
	s.banner()
	var c calculation
	for p := phaseMenu; p != phaseTerminated; {
		s.trace(p, &c)
		next, err := s.step(p, &c)
		if err != nil {
			if err == io.EOF {
				s.logf("end of input during %v", p)
				break
			}
			return err
		}
		if s.err != nil {
			return s.err
		}
		p = next
	}
	return s.err
}

// step runs a single phase of the state machine
// and returns the phase to move to.
func (s *Session) step(p phase, c *calculation) (phase, error) {
	switch p {
	case phaseMenu:
		*c = calculation{}
		s.menu()
		choice, err := s.readChoice()
		if err != nil {
			return 0, err
		}
		if choice == s.exit {
			s.goodbye()
			return phaseTerminated, nil
		}
		op, ok := arith.Lookup(s.ops, choice)
		if !ok {
			s.invalidChoice()
			return phaseMenu, nil
		}
		c.op = op
		return phaseOperands, nil
	case phaseOperands:
		args, err := s.readOperands(c.op)
		if err != nil {
			return 0, err
		}
		c.args = args
		return phaseValidate, nil
	case phaseValidate:
		if err := c.op.Validate(c.args); err != nil {
			c.err = err
			return phaseReport, nil
		}
		return phaseExecute, nil
	case phaseExecute:
		c.result = c.op.Apply(c.args)
		return phaseReport, nil
	case phaseReport:
		s.report(c)
		return phaseContinue, nil
	case phaseContinue:
		again, err := s.readContinue()
		if err != nil {
			return 0, err
		}
		if again {
			return phaseMenu, nil
		}
		return phaseTerminated, nil
	}
	panic(fmt.Errorf("unexpected phase %v", p))
}

// trace logs the phase about to run along
// with the calculation so far.
func (s *Session) trace(p phase, c *calculation) {
	if s.log == nil {
		return
	}
	s.logf("%v: op %q args %s err %v", p, c.op.Name, spewConf.Sdump(c.args), c.err)
}

func (s *Session) logf(f string, a ...interface{}) {
	if s.log == nil {
		return
	}
	s.log.Print(strings.TrimSuffix(fmt.Sprintf(f, a...), "\n"))
}
