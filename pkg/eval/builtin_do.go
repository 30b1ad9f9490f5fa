package eval

import (
	"src.weir.sh/pkg/eval/errs"
	"src.weir.sh/pkg/eval/vals"
)

// The do command runs a block, passing any remaining arguments to the
// block's parameters:
//
//	do {|x| $x * 2 } 21
//
// Unlike a block argument of for or if, the block here is an ordinary
// value, so it can also come from a variable.
type doCmd struct{}

func (doCmd) Name() string { return "do" }

func (doCmd) Usage() string { return "run a block" }

func (doCmd) Signature() Signature {
	return NewSignature("do").
		Required("block", AnyShape, "the block to run").
		Rest("args", AnyShape, "arguments to bind to the block's parameters")
}

func (doCmd) Run(fm *Frame, call *Call, input PipelineData) (PipelineData, error) {
	v, err := fm.EvalArg(call.Args[0])
	if err != nil {
		return emptyData(), err
	}
	block, ok := v.(vals.Block)
	if !ok {
		return emptyData(), fm.errorp(call.Args[0], errs.BadValue{
			What: "first argument of do", Valid: "a block", Actual: vals.Kind(v)})
	}
	args := make([]vals.Value, 0, len(call.Args)-1)
	for _, a := range call.Args[1:] {
		v, err := fm.EvalArg(a)
		if err != nil {
			return emptyData(), err
		}
		args = append(args, v)
	}
	return fm.callBlock(block, args, input)
}

func (doCmd) Examples() []Example {
	return []Example{
		{
			Description: "Run a block",
			Code:        "do { echo hi }",
			Result:      vals.Str{Val: "hi"},
		},
		{
			Description: "Run a block with an argument",
			Code:        "do {|x| $x * 2 } 21",
			Result:      vals.Int{Val: 42},
		},
		{
			Description: "Run a block stored in a variable",
			Code:        "let double = {|x| $x * 2 }; do $double 7",
			Result:      vals.Int{Val: 14},
		},
	}
}
