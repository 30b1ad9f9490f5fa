package eval

import (
	"src.weir.sh/pkg/eval/errs"
	"src.weir.sh/pkg/eval/vals"
)

// The first command passes through the first count values of its input and
// stops pulling after that, which also stops all work upstream. This is
// what makes an unbounded range usable:
//
//	for x in 1.. { $x } | first 3
type firstCmd struct{}

func (firstCmd) Name() string { return "first" }

func (firstCmd) Usage() string { return "take the first values of the input" }

func (firstCmd) Signature() Signature {
	return NewSignature("first").
		Required("count", IntShape, "number of values to take")
}

func (firstCmd) Run(fm *Frame, call *Call, input PipelineData) (PipelineData, error) {
	v, err := fm.EvalArg(call.Args[0])
	if err != nil {
		return emptyData(), err
	}
	count, ok := v.(vals.Int)
	if !ok {
		return emptyData(), fm.errorp(call.Args[0], errs.BadValue{
			What: "count", Valid: "an integer", Actual: vals.Kind(v)})
	}
	if count.Val < 0 {
		return emptyData(), fm.errorp(call.Args[0], errs.BadValue{
			What: "count", Valid: "a non-negative number", Actual: vals.Repr(v)})
	}
	in, err := input.expand()
	if err != nil {
		return emptyData(), err
	}
	var taken int64
	return dataFromPull(func() (vals.Value, bool) {
		if taken >= count.Val {
			return nil, false
		}
		x, ok := in.Next()
		if !ok {
			return nil, false
		}
		taken++
		return x, true
	}), nil
}

func (firstCmd) Examples() []Example {
	return []Example{
		{
			Description: "Take the first elements of a list",
			Code:        "echo [1 2 3 4] | first 2",
			Result: vals.List{Vals: []vals.Value{
				vals.Int{Val: 1}, vals.Int{Val: 2}}},
		},
		{
			Description: "Cut an unbounded loop short",
			Code:        "for x in 1.. { $x } | first 3",
			Result: vals.List{Vals: []vals.Value{
				vals.Int{Val: 1}, vals.Int{Val: 2}, vals.Int{Val: 3}}},
		},
	}
}
