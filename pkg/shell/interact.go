package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"src.weir.sh/pkg/diag"
	"src.weir.sh/pkg/eval"
	"src.weir.sh/pkg/parse"
	"src.weir.sh/pkg/sys"
)

// Configuration for the interactive mode.
type interactCfg struct {
	// Prompt to show before each command; empty means the default prompt,
	// the working directory followed by "> ".
	Prompt string
	// Prefix written before each value a command outputs.
	ValuePrefix string

	// Path of the rc script to source on startup; empty means no rc script.
	RC string
	// Store to record the command history in; may be nil.
	Store eval.HistoryStore
}

// Runs an interactive session: read a command, run it, show its values and
// errors, until the input ends.
func interact(ev *eval.Evaler, fds [3]*os.File, ints *intSource, cfg *interactCfg) {
	if cfg.Store != nil {
		ev.HistoryStore = cfg.Store
	}

	if cfg.RC != "" {
		err := sourceRC(ev, fds, ints, cfg.RC, cfg.ValuePrefix)
		if err != nil {
			diag.ShowError(fds[2], err)
		}
	}

	// The prompt goes to stderr, leaving stdout for what the commands
	// output. It is only shown when the input is a terminal.
	var prompt func() string
	if sys.IsATTY(fds[0].Fd()) {
		prompt = defaultPrompt
		if cfg.Prompt != "" {
			p := cfg.Prompt
			prompt = func() string { return p }
		}
	}
	ed := newMinEditor(fds[0], fds[2], prompt)

	cmdNum := 0
	for {
		cmdNum++
		line, err := ed.ReadCode()
		if err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintln(fds[2], "Editor error:", err)
			break
		}

		if line != "" && cfg.Store != nil {
			_, err := cfg.Store.AddCmd(line)
			if err != nil {
				logger.Println("failed to record command:", err)
			}
		}

		src := parse.Source{Name: fmt.Sprintf("[tty %v]", cmdNum), Code: line}
		err = evalInTTY(ev, fds, ints.next(), cfg.ValuePrefix, src)
		if err != nil {
			diag.ShowError(fds[2], err)
		}
	}
}

func sourceRC(ev *eval.Evaler, fds [3]*os.File, ints *intSource, rcPath, valuePrefix string) error {
	absPath, err := filepath.Abs(rcPath)
	if err != nil {
		return fmt.Errorf("cannot get full path of rc.weir: %v", err)
	}
	code, err := readFileUTF8(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	src := parse.Source{Name: absPath, Code: code, IsFile: true}
	return evalInTTY(ev, fds, ints.next(), valuePrefix, src)
}
