package eval

import (
	"strings"

	"src.weir.sh/pkg/eval/vals"
)

// The build-string command concatenates the string forms of its arguments:
//
//	build-string a b c
//
// Numbers, booleans and nothing convert implicitly; anything else is an
// error, there is no implicit stringification of lists or blocks.
type buildStringCmd struct{}

func (buildStringCmd) Name() string { return "build-string" }

func (buildStringCmd) Usage() string { return "concatenate its arguments into a string" }

func (buildStringCmd) Signature() Signature {
	return NewSignature("build-string").
		Rest("values", AnyShape, "the values to concatenate")
}

func (buildStringCmd) Run(fm *Frame, call *Call, _ PipelineData) (PipelineData, error) {
	sb := new(strings.Builder)
	for _, a := range call.Args {
		v, err := fm.EvalArg(a)
		if err != nil {
			return emptyData(), err
		}
		s, err := vals.ToString(v, "argument of build-string")
		if err != nil {
			return emptyData(), fm.errorp(a, err)
		}
		sb.WriteString(s)
	}
	return dataOfValues(vals.Str{Val: sb.String(), Ranging: call.Ranging}), nil
}

func (buildStringCmd) Examples() []Example {
	return []Example{
		{
			Description: "Concatenate words",
			Code:        "build-string a b c",
			Result:      vals.Str{Val: "abc"},
		},
		{
			Description: "Numbers convert to their string forms",
			Code:        "build-string 1 ' and ' 2",
			Result:      vals.Str{Val: "1 and 2"},
		},
	}
}
