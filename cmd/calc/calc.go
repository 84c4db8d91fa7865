package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rogpeppe/menucalc/arith"
	"github.com/rogpeppe/menucalc/session"
)

var (
	colorFlag    = flag.Bool("color", false, "colour banner, results and errors")
	acmeFlag     = flag.Bool("acme", false, "copy the session transcript to a new acme window")
	debug        = flag.Bool("debug", false, "log session steps to stderr")
	maxLine      = flag.Int("maxline", session.DefaultMaxLine, "reject input lines longer than this many bytes")
	selftestFlag = flag.Bool("selftest", false, "run the reference calculations and exit")
)

var exit = os.Exit

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "calc: %v\n", err)
		exit(2)
	}
}

func run(stdin io.Reader, stdout io.Writer) error {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: calc [flags]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		exit(2)
		return nil
	}
	if *selftestFlag {
		if _, failed := selftest(stdout, arith.Fixtures, arith.Ops); failed > 0 {
			exit(1)
		}
		return nil
	}
	out := stdout
	if *acmeFlag {
		t, err := newTranscript()
		if err != nil {
			return err
		}
		defer t.close()
		out = io.MultiWriter(stdout, t)
	}
	var logger *log.Logger
	if *debug {
		logger = log.New(os.Stderr, "calc: ", log.Lmicroseconds)
	}
	s, err := session.New(session.Params{
		In:      stdin,
		Out:     out,
		MaxLine: *maxLine,
		Color:   *colorFlag,
		Log:     logger,
	})
	if err != nil {
		return err
	}
	// A session always exits with status 0, so a failure
	// part way through is logged rather than returned.
	if err := s.Run(); err != nil {
		log.Printf("calc: %v", err)
	}
	return nil
}
