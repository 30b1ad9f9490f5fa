package eval

import (
	"src.weir.sh/pkg/eval/vals"
)

// The let command binds a value to a variable in the current scope:
//
//	let x = 10
//
// The binding is visible to the rest of the scope, so a let at the top
// level persists for the rest of the session.
type letCmd struct{}

func (letCmd) Name() string { return "let" }

func (letCmd) Usage() string { return "bind a value to a variable" }

func (letCmd) Signature() Signature {
	return NewSignature("let").
		Required("var-name", VarShape, "name of the variable").
		RequiredKeyword("=", "value", AnyShape, "the value to bind")
}

func (letCmd) Run(fm *Frame, call *Call, _ PipelineData) (PipelineData, error) {
	varID, err := call.Args[0].AsVar()
	if err != nil {
		return emptyData(), err
	}
	v, err := fm.EvalArg(call.Args[1])
	if err != nil {
		return emptyData(), err
	}
	fm.stack.Set(varID, v)
	return emptyData(), nil
}

func (letCmd) Examples() []Example {
	return []Example{
		{
			Description: "Bind a value and use it",
			Code:        "let x = 10; $x * 2",
			Result:      vals.Int{Val: 20},
		},
		{
			Description: "Bind a string",
			Code:        "let greeting = hello; build-string $greeting ' world'",
			Result:      vals.Str{Val: "hello world"},
		},
	}
}
