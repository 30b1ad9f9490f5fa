//go:build unix

package progtest

import (
	"bufio"
	"fmt"
	"os"
	"testing"

	"src.weir.sh/pkg/prog"
	"src.weir.sh/pkg/sys"
)

// A program that reports whether its stdin is a terminal, then copies stdin
// to stdout line by line.
type ttyProgram struct{}

func (ttyProgram) Run(fds [3]*os.File, _ *prog.Flags, _ []string) error {
	fmt.Fprintf(fds[2], "tty=%v\n", sys.IsATTY(fds[0].Fd()))
	in := bufio.NewReader(fds[0])
	for {
		line, err := in.ReadString('\n')
		fds[1].WriteString(line)
		if err != nil {
			return nil
		}
	}
}

func TestInteractiveFixture(t *testing.T) {
	f := SetupInteractive(t)
	f.FeedIn("hello\n\x04")

	exit := prog.Run(f.Fds(), []string{"weir"}, ttyProgram{})
	if exit != 0 {
		t.Errorf("got exit code %v, want 0", exit)
	}
	f.TestOut(t, 1, "hello\n")
	f.TestOutSnippet(t, 2, "tty=true")
}
