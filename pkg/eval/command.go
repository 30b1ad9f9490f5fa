package eval

import (
	"src.weir.sh/pkg/diag"
	"src.weir.sh/pkg/eval/errs"
	"src.weir.sh/pkg/eval/vals"
)

// Command is implemented by every built-in command.
//
// Run receives the call with its compiled arguments and the input data of
// the pipeline stage. Arguments arrive unevaluated; the command decides
// which ones to evaluate, and in which scope. The compiler has already
// checked the arguments against the command's signature, so shape
// assertions inside Run fail only on an internal inconsistency.
type Command interface {
	// Name returns the name the command is called by.
	Name() string
	// Usage returns a one-line description of the command.
	Usage() string
	// Signature returns the command's calling convention.
	Signature() Signature
	// Run runs the command.
	Run(fm *Frame, call *Call, input PipelineData) (PipelineData, error)
	// Examples returns usage examples. Examples with a non-nil Result are
	// verified by the test suite.
	Examples() []Example
}

// Example is a testable usage example of a command.
type Example struct {
	Description string
	Code        string
	// Result is the value the example evaluates to after collecting its
	// output, or nil if the example is only illustrative.
	Result vals.Value
}

// Call is a compiled command call.
type Call struct {
	diag.Ranging
	// Args has one element per signature parameter that was given. Optional
	// parameters that were omitted are not present, so len(Args) can be
	// smaller than the parameter count; rest parameters contribute one
	// element per remaining argument.
	Args []Arg
}

// Arg is one compiled argument of a call. Depending on the parameter's
// shape it holds a declared variable, a compiled block, or an unevaluated
// expression.
type Arg struct {
	diag.Ranging
	hasVar bool
	varID  VarID
	block  *vals.Block
	expr   exprOp
}

// AsVar returns the variable the argument declares.
func (a Arg) AsVar() (VarID, error) {
	if !a.hasVar {
		return 0, errs.Internal{Msg: "missing variable"}
	}
	return a.varID, nil
}

// AsBlock returns the block literal the argument compiled to.
func (a Arg) AsBlock() (vals.Block, error) {
	if a.block == nil {
		return vals.Block{}, errs.Internal{Msg: "expected block"}
	}
	return *a.block, nil
}
