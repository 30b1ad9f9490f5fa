// Package progtest provides utilities for testing subprograms.
//
// The entry point of the framework is the Test function. Test cases are
// described by the Case type, constructed with ThatWeir and altered with its
// chainable methods.
package progtest

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"src.weir.sh/pkg/must"
	"src.weir.sh/pkg/prog"
)

// Case is a test case to be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return fmt.Sprintf("text containing %q", o.content)
	}
	return fmt.Sprintf("text %q", o.content)
}

// ThatWeir returns a new Case with the given arguments.
func ThatWeir(args ...string) Case {
	return Case{args: append([]string{"weir"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to the
// standard input of the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// have no expectations, for example:
//
//	ThatWeir("-c", "nop").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program
// run to write output to stdout containing the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program
// run to write output to stderr containing the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if r.exitCode != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", r.exitCode, c.want.exitCode)
			}
			if !matchOutput(r.stdout, c.want.stdout) {
				t.Errorf("got stdout %q, want %s", r.stdout, c.want.stdout)
			}
			if !matchOutput(r.stderr, c.want.stderr) {
				t.Errorf("got stderr %q, want %s", r.stderr, c.want.stderr)
			}
		})
	}
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}

type runResult struct {
	exitCode       int
	stdout, stderr string
}

func run(p prog.Program, args []string, stdin string) runResult {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()

	// Write the input and read the outputs concurrently; the program may
	// move more data than fits in a pipe buffer in either direction.
	go func() {
		defer w0.Close()
		w0.WriteString(stdin)
	}()
	var stdout, stderr string
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		stdout = string(must.OK1(io.ReadAll(r1)))
	}()
	go func() {
		defer wg.Done()
		stderr = string(must.OK1(io.ReadAll(r2)))
	}()

	exitCode := prog.Run([3]*os.File{r0, w1, w2}, args, p)

	r0.Close()
	w1.Close()
	w2.Close()
	wg.Wait()
	r1.Close()
	r2.Close()
	return runResult{exitCode, stdout, stderr}
}
