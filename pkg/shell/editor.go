package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"src.weir.sh/pkg/strutil"
)

// minEditor reads commands for the interactive mode. It has no editing
// capability beyond what the terminal's line discipline provides.
type minEditor struct {
	in  *bufio.Reader
	out io.Writer
	// Returns the prompt to show before reading; nil shows no prompt. A
	// session fed from a pipe or file runs without one.
	prompt func() string
}

func newMinEditor(in, out *os.File, prompt func() string) *minEditor {
	return &minEditor{bufio.NewReader(in), out, prompt}
}

// ReadCode prompts and reads a command from the terminal.
func (ed *minEditor) ReadCode() (string, error) {
	if ed.prompt != nil {
		fmt.Fprint(ed.out, ed.prompt())
	}
	line, err := ed.in.ReadString('\n')
	return strutil.ChopLineEnding(line), err
}

// defaultPrompt is the working directory followed by "> ".
func defaultPrompt() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "?"
	}
	return wd + "> "
}
