package main

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogpeppe/menucalc/arith"
)

func TestSelftestPasses(t *testing.T) {
	var out bytes.Buffer
	passed, failed := selftest(&out, arith.Fixtures, arith.Ops)
	assert.Equal(t, len(arith.Fixtures), passed)
	assert.Equal(t, 0, failed)
	assert.Contains(t, out.String(), "Testing: Division resulting in decimal\nOperation: Division\nInputs: 10.00, 3.00\nExpected: 3.33\nActual: 3.33\n✓ PASS\n")
	assert.Contains(t, out.String(), "Testing: Basic square root\nOperation: Square Root\nInput: 9.00\n")
	assert.True(t, strings.HasSuffix(out.String(), "30 tests, 30 passed, 0 failed\n"))
}

func TestSelftestFailures(t *testing.T) {
	fixtures := []arith.Fixture{
		{About: "wrong answer", X: 2, Y: 2, Want: 5, Op: 1},
		{About: "no such operation", X: 1, Y: 1, Want: 1, Op: 8},
		{About: "just inside tolerance", X: 1, Y: 0.005, Want: 1, Op: 1},
	}
	var out bytes.Buffer
	passed, failed := selftest(&out, fixtures, arith.Ops)
	assert.Equal(t, 1, passed)
	assert.Equal(t, 2, failed)
	assert.Contains(t, out.String(), "Unknown operation 8\n✗ FAIL\n")
	assert.Contains(t, out.String(), "3 tests, 1 passed, 2 failed\n")
}

// withArgs runs f with os.Args and the exit function
// replaced, restoring them and the flags afterwards.
func withArgs(t *testing.T, args []string, f func()) (exitCode int) {
	oldArgs, oldExit := os.Args, exit
	defer func() {
		os.Args, exit = oldArgs, oldExit
		*selftestFlag = false
		*colorFlag = false
	}()
	os.Args = append([]string{"calc"}, args...)
	exitCode = -1
	exit = func(code int) {
		exitCode = code
	}
	f()
	return exitCode
}

func TestRunSession(t *testing.T) {
	var out bytes.Buffer
	code := withArgs(t, nil, func() {
		err := run(strings.NewReader("1\n5\n3\nn\n"), &out)
		require.NoError(t, err)
	})
	assert.Equal(t, -1, code)
	assert.Contains(t, out.String(), "Result: 5.00 + 3.00 = 8.00\n")
}

func TestRunSelftest(t *testing.T) {
	var out bytes.Buffer
	code := withArgs(t, []string{"-selftest"}, func() {
		err := run(strings.NewReader(""), &out)
		require.NoError(t, err)
	})
	assert.Equal(t, -1, code)
	assert.Contains(t, out.String(), "30 tests, 30 passed, 0 failed\n")
	assert.NotContains(t, out.String(), "Select an operation:")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRunWriteFailureExitsZero(t *testing.T) {
	var logBuf bytes.Buffer
	log.SetOutput(&logBuf)
	defer log.SetOutput(os.Stderr)
	code := withArgs(t, nil, func() {
		err := run(strings.NewReader("1\n5\n3\nn\n"), brokenWriter{})
		require.NoError(t, err)
	})
	assert.Equal(t, -1, code)
	assert.Contains(t, logBuf.String(), "calc: cannot write output: broken pipe")
}
