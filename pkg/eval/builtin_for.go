package eval

import (
	"src.weir.sh/pkg/eval/vals"
)

// The for command loops a block over an iteration source:
//
//	for x in [1 2 3] { $x * $x }
//
// A list iterates its elements and a range iterates lazily, possibly
// forever; any other value runs the block exactly once with the value
// itself. The distinction also decides how failures travel: under a list or
// range source a failing iteration leaves an error value in its output slot
// and the loop carries on, while under a single value the failure is the
// command's own.
type forCmd struct{}

func (forCmd) Name() string { return "for" }

func (forCmd) Usage() string { return "loop over a range" }

func (forCmd) Signature() Signature {
	return NewSignature("for").
		Required("var-name", VarShape, "name of the looping variable").
		RequiredKeyword("in", "range", AnyShape, "range of the loop").
		RequiredBlock("block", 0, "the block to run").
		CreatingScope()
}

func (forCmd) Run(fm *Frame, call *Call, _ PipelineData) (PipelineData, error) {
	varID, err := call.Args[0].AsVar()
	if err != nil {
		return emptyData(), err
	}
	// The source expression is evaluated once, in the caller's scope: no
	// iteration scope exists yet, and the loop variable must not be visible
	// to it.
	source, err := fm.EvalArg(call.Args[1])
	if err != nil {
		return emptyData(), err
	}
	block, err := call.Args[2].AsBlock()
	if err != nil {
		return emptyData(), err
	}

	// Every iteration's scope is a fresh child of the scope the loop was
	// entered with. Iteration scopes are siblings: nothing bound during one
	// iteration, the loop variable included, survives into the next.
	entry := fm.stack
	runIteration := func(x vals.Value) vals.Value {
		child := entry.NewChild()
		child.Set(varID, x)
		data, err := fm.withStack(child).runBlock(block, emptyData())
		if err == nil {
			var collected []vals.Value
			collected, err = data.Collect(fm)
			if err == nil {
				return condense(collected, source.Range())
			}
		}
		return vals.Error{Err: err, Ranging: source.Range()}
	}

	switch source := source.(type) {
	case vals.List:
		elems := source.Vals
		i := 0
		return dataFromPull(func() (vals.Value, bool) {
			if i >= len(elems) {
				return nil, false
			}
			x := elems[i]
			i++
			return runIteration(x), true
		}), nil
	case vals.Range:
		// A malformed descriptor fails the command here, before any scope
		// is created and before any output exists.
		it, err := source.Iterator()
		if err != nil {
			return emptyData(), fm.errorp(source, err)
		}
		return dataFromPull(func() (vals.Value, bool) {
			x, ok := it.Next()
			if !ok {
				return nil, false
			}
			return runIteration(x), true
		}), nil
	default:
		child := entry.NewChild()
		child.Set(varID, source)
		return fm.withStack(child).runBlock(block, emptyData())
	}
}

func (forCmd) Examples() []Example {
	return []Example{
		{
			Description: "Echo the square of each integer",
			Code:        "for x in [1 2 3] { $x * $x }",
			Result: vals.List{Vals: []vals.Value{
				vals.Int{Val: 1}, vals.Int{Val: 4}, vals.Int{Val: 9}}},
		},
		{
			Description: "Work with elements of a range",
			Code:        "for $x in 1..3 { $x }",
			Result: vals.List{Vals: []vals.Value{
				vals.Int{Val: 1}, vals.Int{Val: 2}, vals.Int{Val: 3}}},
		},
		{
			Description: "Run a block once over a single value",
			Code:        "for x in 5 { $x * $x }",
			Result:      vals.Int{Val: 25},
		},
	}
}
