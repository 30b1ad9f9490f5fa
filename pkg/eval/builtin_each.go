package eval

import (
	"src.weir.sh/pkg/eval/vals"
)

// The each command runs a block once per input value, with the value bound
// to the block's sole parameter. Like a list-sourced for loop, a failing
// run leaves an error value in that slot and the remaining input is still
// processed.
type eachCmd struct{}

func (eachCmd) Name() string { return "each" }

func (eachCmd) Usage() string { return "run a block on each element of the input" }

func (eachCmd) Signature() Signature {
	return NewSignature("each").
		RequiredBlock("block", 1, "the block to run")
}

func (eachCmd) Run(fm *Frame, call *Call, input PipelineData) (PipelineData, error) {
	block, err := call.Args[0].AsBlock()
	if err != nil {
		return emptyData(), err
	}
	in, err := input.expand()
	if err != nil {
		return emptyData(), err
	}
	return dataFromPull(func() (vals.Value, bool) {
		x, ok := in.Next()
		if !ok {
			return nil, false
		}
		data, err := fm.callBlock(block, []vals.Value{x}, emptyData())
		if err == nil {
			var collected []vals.Value
			collected, err = data.Collect(fm)
			if err == nil {
				return condense(collected, x.Range()), true
			}
		}
		return vals.Error{Err: err, Ranging: x.Range()}, true
	}), nil
}

func (eachCmd) Examples() []Example {
	return []Example{
		{
			Description: "Double each element of a list",
			Code:        "echo [1 2 3] | each {|x| $x * 2 }",
			Result: vals.List{Vals: []vals.Value{
				vals.Int{Val: 2}, vals.Int{Val: 4}, vals.Int{Val: 6}}},
		},
	}
}
