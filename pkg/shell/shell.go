// Package shell is the entry point for the terminal interface of Weir.
package shell

import (
	"fmt"
	"os"
	"os/signal"

	"src.weir.sh/pkg/eval"
	"src.weir.sh/pkg/eval/vals"
	"src.weir.sh/pkg/logutil"
	"src.weir.sh/pkg/parse"
	"src.weir.sh/pkg/prog"
	"src.weir.sh/pkg/store"
	"src.weir.sh/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It handles both the script mode and the
// interactive mode, and is suitable as the fallback of a Composite program.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	ints := newIntSource()
	sigCh := sys.NotifySignals()
	go func() {
		for sig := range sigCh {
			if sig == os.Interrupt {
				ints.interrupt()
				continue
			}
			if !ignoreSignal(sig) {
				logger.Println("signal", signalName(sig))
			}
			handleSignal(sig, fds[2])
		}
	}()
	defer signal.Stop(sigCh)

	ev := eval.NewEvaler()

	if len(args) > 1 {
		return prog.BadUsage("at most one argument is accepted")
	}
	if len(args) == 1 {
		exit := script(ev, fds, ints, args[0], &scriptCfg{
			Cmd: f.CodeInArg, CompileOnly: f.CompileOnly, JSON: f.JSON})
		return prog.Exit(exit)
	}
	if f.CodeInArg {
		return prog.BadUsage("-c requires an argument")
	}

	cfg, cleanup := interactConfig(fds[2], f)
	defer cleanup()
	interact(ev, fds, ints, cfg)
	return nil
}

// Assembles the interactive mode configuration from the flags, the settings
// file and the default paths. Problems only produce warnings; the session
// starts regardless, possibly without an rc file or command history. The
// returned cleanup function closes the history store.
func interactConfig(stderr *os.File, f *prog.Flags) (*interactCfg, func()) {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
	}
	cfg := &interactCfg{Prompt: settings.Prompt, ValuePrefix: settings.ValuePrefix}

	if !f.NoRc {
		if f.RC != "" {
			cfg.RC = f.RC
		} else if p, err := rcPath(); err == nil {
			cfg.RC = p
		} else {
			fmt.Fprintln(stderr, "Warning:", err)
		}
	}

	db := f.DB
	if db == "" {
		db = settings.DBPath
	}
	if db == "" {
		if p, err := dbPath(); err == nil {
			db = p
		} else {
			fmt.Fprintln(stderr, "Warning:", err)
			fmt.Fprintln(stderr, "Command history will not be persisted.")
		}
	}
	if db != "" {
		st, err := store.NewStore(db)
		if err != nil {
			fmt.Fprintln(stderr, "Warning: cannot open history db:", err)
		} else {
			cfg.Store = st
			return cfg, func() { st.Close() }
		}
	}
	return cfg, func() {}
}

// Evaluates a single piece of source in the terminal context. Values of the
// last pipeline are rendered to stdout one per line; valuePrefix marks them
// apart from byte output in interactive sessions and is empty in script
// mode. Pulling the output is what drives evaluation, so an interrupt during
// a long output stops the work upstream as well.
func evalInTTY(ev *eval.Evaler, fds [3]*os.File, ints <-chan struct{}, valuePrefix string, src parse.Source) error {
	data, err := ev.Eval(src, eval.EvalCfg{Interrupts: ints})
	if err != nil {
		return err
	}
	for {
		select {
		case <-ints:
			return eval.ErrInterrupted
		default:
		}
		v, ok := data.Next()
		if !ok {
			return nil
		}
		fmt.Fprintln(fds[1], valuePrefix+vals.Repr(v))
	}
}
