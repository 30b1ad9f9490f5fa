package eval

import (
	"errors"
	"fmt"

	"src.weir.sh/pkg/diag"
	"src.weir.sh/pkg/eval/errs"
	"src.weir.sh/pkg/eval/vals"
	"src.weir.sh/pkg/parse"
)

// ErrInterrupted is thrown when the user interrupts the evaluation.
var ErrInterrupted = errors.New("interrupted")

// Frame carries the state of one evaluation: the Evaler that owns the
// compiled code, the source being evaluated, the current scope, and the
// interrupt channel. Frames are cheap; a new one is forked whenever
// evaluation moves to a different scope.
type Frame struct {
	Evaler *Evaler

	src   parse.Source
	stack *Stack
	intCh <-chan struct{}
}

// withStack returns a copy of fm using the given scope.
func (fm *Frame) withStack(s *Stack) *Frame {
	cloned := *fm
	cloned.stack = s
	return &cloned
}

// IsInterrupted reports whether an interrupt has arrived. It never blocks.
func (fm *Frame) IsInterrupted() bool {
	select {
	case <-fm.intCh:
		return true
	default:
		return false
	}
}

// errorp wraps err into an *Exception blaming the given range of the source
// being evaluated. A nil error stays nil, and an error that is already an
// *Exception keeps its original context.
func (fm *Frame) errorp(r diag.Ranger, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*Exception); ok {
		return err
	}
	rg := r.Range()
	return &Exception{err, diag.NewContext(fm.src.Name, fm.src.Code, rg)}
}

// errorpf is like errorp, but constructs the error with fmt.Errorf.
func (fm *Frame) errorpf(r diag.Ranger, format string, args ...any) error {
	return fm.errorp(r, fmt.Errorf(format, args...))
}

// EvalArg evaluates an argument in fm's scope and returns its value.
func (fm *Frame) EvalArg(a Arg) (vals.Value, error) {
	switch {
	case a.expr != nil:
		return a.expr.eval(fm)
	case a.block != nil:
		return *a.block, nil
	default:
		return nil, errs.Internal{Msg: "argument has no expression"}
	}
}

// callBlock runs a block value with the given arguments bound to its
// parameters, in a fresh child of fm's current scope.
func (fm *Frame) callBlock(b vals.Block, args []vals.Value, input PipelineData) (PipelineData, error) {
	body, err := fm.Evaler.block(b)
	if err != nil {
		return emptyData(), err
	}
	if len(args) != len(body.params) {
		return emptyData(), errs.ArityMismatch{
			What:     "arguments to block",
			ValidLow: len(body.params), ValidHigh: len(body.params),
			Actual: len(args)}
	}
	child := fm.stack.NewChild()
	for i, id := range body.params {
		child.Set(id, args[i])
	}
	return body.body.exec(fm.withStack(child), input)
}

// runBlock runs the body of a block value with fm's scope as-is. The caller
// is responsible for having prepared the scope, including any variables the
// body expects.
func (fm *Frame) runBlock(b vals.Block, input PipelineData) (PipelineData, error) {
	body, err := fm.Evaler.block(b)
	if err != nil {
		return emptyData(), err
	}
	return body.body.exec(fm, input)
}
