package main

import (
	"fmt"
	"log"

	"9fans.net/go/acme"
)

const transcriptName = "+calc"

// window holds the methods of *acme.Win used by transcript.
type window interface {
	Write(file string, b []byte) (int, error)
	Ctl(format string, args ...interface{}) error
	CloseFiles()
}

// transcript is an acme window that receives a
// copy of everything the session prints.
type transcript struct {
	win window
}

func newTranscript() (*transcript, error) {
	win, err := acme.New()
	if err != nil {
		return nil, fmt.Errorf("cannot open acme window: %v", err)
	}
	if err := win.Name("%s", transcriptName); err != nil {
		win.CloseFiles()
		return nil, fmt.Errorf("cannot name acme window: %v", err)
	}
	return &transcript{win: win}, nil
}

func (t *transcript) Write(buf []byte) (int, error) {
	// Keep each write well under the 9P message size;
	// acme misbehaves when given more.
	const chunk = 4096
	n := 0
	for n < len(buf) {
		end := n + chunk
		if end > len(buf) {
			end = len(buf)
		}
		m, err := t.win.Write("body", buf[n:end])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// close marks the window clean so that acme
// does not complain when it is deleted.
func (t *transcript) close() {
	if err := t.win.Ctl("clean"); err != nil {
		log.Printf("calc: cannot mark acme window clean: %v", err)
	}
	t.win.CloseFiles()
}
