package eval

import (
	"src.weir.sh/pkg/eval/errs"
	"src.weir.sh/pkg/eval/vals"
)

// The if command runs one of two blocks depending on a condition:
//
//	if ($x > 2) { echo big } else { echo small }
//
// The condition must evaluate to a boolean; no other value counts as truthy
// or falsy. Without an else branch a false condition produces no output.
type ifCmd struct{}

func (ifCmd) Name() string { return "if" }

func (ifCmd) Usage() string { return "run a block conditionally" }

func (ifCmd) Signature() Signature {
	return NewSignature("if").
		Required("condition", AnyShape, "the condition to test").
		RequiredBlock("then", 0, "the block to run when the condition is true").
		OptionalKeywordBlock("else", "else", 0, "the block to run when the condition is false")
}

func (ifCmd) Run(fm *Frame, call *Call, input PipelineData) (PipelineData, error) {
	cond, err := fm.EvalArg(call.Args[0])
	if err != nil {
		return emptyData(), err
	}
	b, ok := cond.(vals.Bool)
	if !ok {
		return emptyData(), fm.errorp(call.Args[0], errs.BadValue{
			What: "condition", Valid: "a boolean", Actual: vals.Kind(cond)})
	}
	if b.Val {
		then, err := call.Args[1].AsBlock()
		if err != nil {
			return emptyData(), err
		}
		return fm.callBlock(then, nil, input)
	}
	if len(call.Args) > 2 {
		alt, err := call.Args[2].AsBlock()
		if err != nil {
			return emptyData(), err
		}
		return fm.callBlock(alt, nil, input)
	}
	return emptyData(), nil
}

func (ifCmd) Examples() []Example {
	return []Example{
		{
			Description: "Choose between two blocks",
			Code:        "if $true { echo yes } else { echo no }",
			Result:      vals.Str{Val: "yes"},
		},
		{
			Description: "A false condition without an else produces nothing",
			Code:        "if (1 > 2) { echo impossible }",
			Result:      vals.Nothing{},
		},
	}
}
