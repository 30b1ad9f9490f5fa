package eval

import (
	"src.weir.sh/pkg/eval/vals"
)

// The length command counts the values in its input. A single list or range
// input counts its elements, so a bounded range is counted without being
// materialized; an unbounded range never finishes and must be cut short
// upstream, or interrupted.
type lengthCmd struct{}

func (lengthCmd) Name() string { return "length" }

func (lengthCmd) Usage() string { return "count the values in the input" }

func (lengthCmd) Signature() Signature {
	return NewSignature("length")
}

func (lengthCmd) Run(fm *Frame, call *Call, input PipelineData) (PipelineData, error) {
	in, err := input.expand()
	if err != nil {
		return emptyData(), err
	}
	var n int64
	for {
		if fm.IsInterrupted() {
			return emptyData(), ErrInterrupted
		}
		if _, ok := in.Next(); !ok {
			break
		}
		n++
	}
	return dataOfValues(vals.Int{Val: n, Ranging: call.Ranging}), nil
}

func (lengthCmd) Examples() []Example {
	return []Example{
		{
			Description: "Count the elements of a list",
			Code:        "echo [1 2 3] | length",
			Result:      vals.Int{Val: 3},
		},
		{
			Description: "Count the elements of a range",
			Code:        "1..100 | length",
			Result:      vals.Int{Val: 100},
		},
	}
}
