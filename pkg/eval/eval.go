// Package eval implements the Weir evaluator.
//
// Evaluation proceeds in two phases. Compilation turns a parse tree into a
// tree of ops, resolving every variable use to an ID and checking every
// command call against the command's signature; runtime failures of either
// kind can then only come from an internal inconsistency. Execution runs the
// ops against a scope chain, threading PipelineData between pipeline stages.
package eval

import (
	"sort"

	"src.weir.sh/pkg/eval/errs"
	"src.weir.sh/pkg/eval/vals"
	"src.weir.sh/pkg/logutil"
	"src.weir.sh/pkg/parse"
)

var logger = logutil.GetLogger("[eval] ")

// Evaler provides a Weir evaluator. It keeps the commands, the compiled
// block table, and the global scope, which persists between Eval calls so
// that an interactive session accumulates state.
type Evaler struct {
	commands   map[string]Command
	blocks     []blockBody
	global     *Stack
	globalInfo *scopeInfo
	nextVar    VarID

	// HistoryStore, if non-nil, backs the history command and lets the
	// interactive shell record the commands it runs.
	HistoryStore HistoryStore
}

// NewEvaler creates a new Evaler with all built-in commands registered.
func NewEvaler() *Evaler {
	ev := &Evaler{
		commands:   make(map[string]Command),
		global:     NewStack(),
		globalInfo: newScopeInfo(nil),
	}
	for _, cmd := range builtinCommands() {
		ev.AddCommand(cmd)
	}
	return ev
}

// AddCommand registers a command, replacing any previous command of the same
// name.
func (ev *Evaler) AddCommand(cmd Command) {
	ev.commands[cmd.Name()] = cmd
}

// Commands returns all registered commands, sorted by name.
func (ev *Evaler) Commands() []Command {
	cmds := make([]Command, 0, len(ev.commands))
	for _, cmd := range ev.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// EvalCfg configures an Eval call.
type EvalCfg struct {
	// Interrupts, if non-nil, makes the evaluation interruptible: pull
	// loops inside the evaluator stop with ErrInterrupted once the channel
	// is readable or closed.
	Interrupts <-chan struct{}
}

// Eval parses, compiles and runs the given source. The returned
// PipelineData is the output of the last pipeline of the source; pulling it
// drives any evaluation that is still pending. The error is a *parse.Error,
// a *CompilationError, or an *Exception.
func (ev *Evaler) Eval(src parse.Source, cfg EvalCfg) (PipelineData, error) {
	tree, err := parse.Parse(src)
	if err != nil {
		return emptyData(), err
	}
	op, delta, err := ev.compile(tree)
	if err != nil {
		return emptyData(), err
	}
	// The returned data may be pulled long after this call returns, so the
	// compiled delta must be visible before anything runs.
	ev.commit(delta)
	logger.Printf("eval %s (%d bytes)", src.Name, len(src.Code))
	fm := &Frame{Evaler: ev, src: src, stack: ev.global, intCh: cfg.Interrupts}
	return op.exec(fm, emptyData())
}

// Check parses and compiles the source without running it and without
// changing the Evaler's state. The error is a *parse.Error, a
// *CompilationError, or nil.
func (ev *Evaler) Check(src parse.Source) error {
	tree, err := parse.Parse(src)
	if err != nil {
		return err
	}
	_, _, err = ev.compile(tree)
	return err
}

func (ev *Evaler) commit(delta *compileDelta) {
	ev.blocks = append(ev.blocks, delta.blocks...)
	for name, id := range delta.globals {
		ev.globalInfo.names[name] = id
	}
	ev.nextVar = delta.nextVar
}

// block resolves a block value to its compiled body.
func (ev *Evaler) block(b vals.Block) (blockBody, error) {
	if b.ID < 0 || b.ID >= len(ev.blocks) {
		return blockBody{}, errs.Internal{Msg: "no such block"}
	}
	return ev.blocks[b.ID], nil
}
