package eval

import (
	"src.weir.sh/pkg/eval/vals"
)

// The echo command outputs its arguments, one value each. It ignores its
// input, which makes it a way to start a pipeline from fixed values.
type echoCmd struct{}

func (echoCmd) Name() string { return "echo" }

func (echoCmd) Usage() string { return "output its arguments" }

func (echoCmd) Signature() Signature {
	return NewSignature("echo").
		Rest("values", AnyShape, "the values to output")
}

func (echoCmd) Run(fm *Frame, call *Call, _ PipelineData) (PipelineData, error) {
	vs := make([]vals.Value, 0, len(call.Args))
	for _, a := range call.Args {
		v, err := fm.EvalArg(a)
		if err != nil {
			return emptyData(), err
		}
		vs = append(vs, v)
	}
	return dataOfValues(vs...), nil
}

func (echoCmd) Examples() []Example {
	return []Example{
		{
			Description: "Output a value",
			Code:        "echo hi",
			Result:      vals.Str{Val: "hi"},
		},
		{
			Description: "Output several values",
			Code:        "echo 1 2 3",
			Result: vals.List{Vals: []vals.Value{
				vals.Int{Val: 1}, vals.Int{Val: 2}, vals.Int{Val: 3}}},
		},
	}
}
