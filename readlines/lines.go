// Package readlines reads bounded lines of text.
//
// Lines longer than the requested maximum are truncated, never
// splitting a multibyte UTF-8 sequence, and the remainder of the line is
// discarded, so a single overlong input line cannot grow the buffer
// without limit. The caller is told when that happens.
package readlines

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

// ErrLineTooLong is returned by ReadLine, along with the
// truncated line, when a line exceeds the maximum size.
var ErrLineTooLong = errors.New("line too long")

// Reader reads lines from an underlying reader.
type Reader struct {
	b       *bufio.Reader
	maxSize int
}

// NewReader returns a Reader that reads lines from r, truncating
// each one to at most maxSize bytes.
func NewReader(r io.Reader, maxSize int) *Reader {
	return &Reader{
		b:       bufio.NewReader(r),
		maxSize: maxSize,
	}
}

// ReadLine returns the next line, not including the line terminator.
// A final line without a terminator is returned as usual; after
// that ReadLine returns io.EOF. If the line was longer than the
// maximum size, ReadLine returns its truncated start and ErrLineTooLong.
func (r *Reader) ReadLine() (string, error) {
	line, isPrefix, err := r.b.ReadLine()
	if err != nil {
		return "", err
	}
	if !isPrefix {
		// Simple line that fits within the bufio buffer size.
		return r.bounded(line)
	}
	buf := make([]byte, len(line), len(line)*2)
	copy(buf, line)
	for isPrefix && len(buf) < r.maxSize {
		line, isPrefix, err = r.b.ReadLine()
		if err != nil {
			// The error will be seen again by the next call.
			return r.bounded(buf)
		}
		buf = append(buf, line...)
	}
	if !isPrefix {
		return r.bounded(buf)
	}
	// Discard any of the line that exceeds the maximum size
	for isPrefix {
		if _, isPrefix, err = r.b.ReadLine(); err != nil {
			break
		}
	}
	return string(truncate(buf, r.maxSize)), ErrLineTooLong
}

func (r *Reader) bounded(line []byte) (string, error) {
	if len(line) > r.maxSize {
		return string(truncate(line, r.maxSize)), ErrLineTooLong
	}
	return string(line), nil
}

// truncate returns s truncated to the given size,
// avoiding splitting a multibyte UTF-8 sequence.
func truncate(p []byte, size int) []byte {
	if len(p) <= size {
		return p
	}
	p = p[0:size]
	start := size - 1
	r := rune(p[start])
	if r < utf8.RuneSelf {
		return p
	}
	// Find the start of the last character and check
	// whether it's valid.
	lim := size - utf8.UTFMax
	if lim < 0 {
		lim = 0
	}
	for ; start >= lim; start-- {
		if utf8.RuneStart(p[start]) {
			break
		}
	}
	// If we can't find the start of the last character,
	// return the whole lot.
	if start < 0 {
		return p
	}
	_, rsize := utf8.DecodeRune(p[start:size])
	// The last rune was valid, so include it.
	if rsize > 1 {
		return p
	}
	// The last rune was invalid, so lose it.
	return p[0:start]
}

