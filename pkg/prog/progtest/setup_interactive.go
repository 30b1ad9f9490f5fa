//go:build unix

package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"

	"src.weir.sh/pkg/must"
	"src.weir.sh/pkg/testutil"
)

// InteractiveFixture is a fixture for testing a program that reads commands
// from a terminal. Its standard input is the slave end of a pseudo-terminal,
// so the program under test detects an interactive session; stdout and
// stderr remain pipes so that output can be asserted exactly.
type InteractiveFixture struct {
	ptm *os.File
	tty *os.File
	out [3]*outputCollector
}

// SetupInteractive creates an InteractiveFixture. It also changes into a
// temporary directory for the duration of the test.
func SetupInteractive(c testutil.Cleanuper) *InteractiveFixture {
	testutil.InTempDir(c)
	ptm, tty := must.OK2(pty.Open())
	// Input is echoed to the master's output queue, which tests never
	// drain. Turn echo off so a large feed cannot wedge the line
	// discipline.
	attr := must.OK1(unix.IoctlGetTermios(int(tty.Fd()), ioctlGetTermios))
	attr.Lflag &^= unix.ECHO
	must.OK(unix.IoctlSetTermios(int(tty.Fd()), ioctlSetTermios, attr))

	f := &InteractiveFixture{
		ptm: ptm,
		tty: tty,
		out: [3]*outputCollector{nil, newOutputCollector(), newOutputCollector()},
	}
	c.Cleanup(func() {
		ptm.Close()
		tty.Close()
		f.out[1].close()
		f.out[2].close()
	})
	return f
}

// Fds returns the file descriptors to run the program with.
func (f *InteractiveFixture) Fds() [3]*os.File {
	return [3]*os.File{f.tty, f.out[1].w, f.out[2].w}
}

// FeedIn feeds input to the terminal. The terminal runs in canonical mode,
// so the program sees the input line by line; a "\x04" (^D) fed at the
// start of a line reads as end of input.
func (f *InteractiveFixture) FeedIn(s string) {
	_, err := f.ptm.WriteString(s)
	if err != nil {
		panic(err)
	}
}

// Out returns the output that has been written to the given FD (1 or 2).
func (f *InteractiveFixture) Out(fd int) string {
	return f.out[fd].get()
}

// TestOut tests that the output on the given FD is exactly the given text.
func (f *InteractiveFixture) TestOut(t *testing.T, fd int, want string) {
	t.Helper()
	if got := f.Out(fd); got != want {
		t.Errorf("got out %q, want %q", got, want)
	}
}

// TestOutSnippet tests that the output on the given FD contains the given
// text as a substring.
func (f *InteractiveFixture) TestOutSnippet(t *testing.T, fd int, wantSnippet string) {
	t.Helper()
	if got := f.Out(fd); !strings.Contains(got, wantSnippet) {
		t.Errorf("got out %q, want string containing %q", got, wantSnippet)
	}
}

// An outputCollector reads everything written to the write end of a pipe.
// The read happens on a background goroutine so that the program under test
// never blocks on a full pipe buffer.
type outputCollector struct {
	w    *os.File
	ch   chan string
	text string
	done bool
}

func newOutputCollector() *outputCollector {
	r, w := must.Pipe()
	o := &outputCollector{w: w, ch: make(chan string, 1)}
	go func() {
		b, _ := io.ReadAll(r)
		r.Close()
		o.ch <- string(b)
	}()
	return o
}

// Closes the write end and returns everything written to it. Subsequent
// calls return the same text.
func (o *outputCollector) get() string {
	if !o.done {
		o.w.Close()
		o.text = <-o.ch
		o.done = true
	}
	return o.text
}

func (o *outputCollector) close() { o.get() }
