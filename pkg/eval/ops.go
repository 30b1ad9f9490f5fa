package eval

import (
	"src.weir.sh/pkg/diag"
	"src.weir.sh/pkg/eval/errs"
	"src.weir.sh/pkg/eval/vals"
	"src.weir.sh/pkg/parse"
)

// Compiled code is a tree of ops mirroring the parse tree. Expression ops
// produce a single value; stage ops transform pipeline data; chunk ops run
// pipelines in sequence. Errors returned by eval and exec are already
// wrapped as *Exception by the op that detected them.

type exprOp interface {
	diag.Ranger
	eval(fm *Frame) (vals.Value, error)
}

type stageOp interface {
	exec(fm *Frame, input PipelineData) (PipelineData, error)
}

// chunkOp runs pipelines in order. The chunk's input flows into the first
// pipeline only; the output of every pipeline but the last is drained and
// discarded, and the last pipeline's output becomes the chunk's output. An
// empty chunk passes its input through.
type chunkOp struct {
	diag.Ranging
	pipelines []pipelineOp
}

func (op chunkOp) exec(fm *Frame, input PipelineData) (PipelineData, error) {
	if len(op.pipelines) == 0 {
		return input, nil
	}
	for i, p := range op.pipelines {
		last := i == len(op.pipelines)-1
		data, err := p.exec(fm, input)
		if err != nil {
			return emptyData(), err
		}
		if last {
			return data, nil
		}
		input = emptyData()
		if err := data.Drain(fm); err != nil {
			return emptyData(), fm.errorp(p, err)
		}
	}
	panic("unreachable")
}

// pipelineOp chains stages; each stage's output is the next stage's input.
// Construction of every stage happens when the pipeline runs, but values
// only flow when the pipeline's output is pulled.
type pipelineOp struct {
	diag.Ranging
	stages []stageOp
}

func (op pipelineOp) exec(fm *Frame, input PipelineData) (PipelineData, error) {
	data := input
	for _, stage := range op.stages {
		var err error
		data, err = stage.exec(fm, data)
		if err != nil {
			return emptyData(), err
		}
	}
	return data, nil
}

// callOp is a compiled command call.
type callOp struct {
	diag.Ranging
	cmd  Command
	args []Arg
}

func (op *callOp) exec(fm *Frame, input PipelineData) (PipelineData, error) {
	data, err := op.cmd.Run(fm, &Call{Ranging: op.Ranging, Args: op.args}, input)
	if err != nil {
		return emptyData(), fm.errorp(op, err)
	}
	return data, nil
}

// exprStageOp runs an expression as a pipeline stage producing one value.
// The stage's input is discarded, like a command that ignores its input.
type exprStageOp struct {
	expr exprOp
}

func (op exprStageOp) exec(fm *Frame, input PipelineData) (PipelineData, error) {
	v, err := op.expr.eval(fm)
	if err != nil {
		return emptyData(), err
	}
	return dataOfValues(v), nil
}

// literalOp produces a value fixed at compile time.
type literalOp struct {
	diag.Ranging
	value vals.Value
}

func (op literalOp) eval(*Frame) (vals.Value, error) {
	return op.value, nil
}

// varOp reads a variable resolved to an ID at compile time.
type varOp struct {
	diag.Ranging
	name string
	id   VarID
}

func (op varOp) eval(fm *Frame) (vals.Value, error) {
	v, ok := fm.stack.Lookup(op.id)
	if !ok {
		return nil, fm.errorp(op, errs.UnsetVariable{Name: op.name})
	}
	return vals.WithRange(v, op.Ranging), nil
}

// listOp builds a list from element expressions.
type listOp struct {
	diag.Ranging
	elems []exprOp
}

func (op listOp) eval(fm *Frame) (vals.Value, error) {
	elems := make([]vals.Value, len(op.elems))
	for i, e := range op.elems {
		v, err := e.eval(fm)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return vals.List{Vals: elems, Ranging: op.Ranging}, nil
}

// rangeOp builds a range descriptor. The bounds are evaluated here; the
// descriptor itself is validated only when something expands it.
type rangeOp struct {
	diag.Ranging
	from, next, to exprOp // any may be nil
	exclusive      bool
}

func (op rangeOp) eval(fm *Frame) (vals.Value, error) {
	// An omitted lower bound is 0; omitted stride point and upper bound are
	// Nothing, leaving the stride implicit and the range unbounded.
	bound := func(e exprOp, absent vals.Value) (vals.Value, error) {
		if e == nil {
			return absent, nil
		}
		return e.eval(fm)
	}
	from, err := bound(op.from, vals.Int{Val: 0, Ranging: op.Ranging})
	if err != nil {
		return nil, err
	}
	next, err := bound(op.next, vals.Nothing{Ranging: op.Ranging})
	if err != nil {
		return nil, err
	}
	to, err := bound(op.to, vals.Nothing{Ranging: op.Ranging})
	if err != nil {
		return nil, err
	}
	return vals.Range{
		From: from, Next: next, To: to,
		Exclusive: op.exclusive, Ranging: op.Ranging,
	}, nil
}

// blockOp produces the block value for a compiled block literal.
type blockOp struct {
	diag.Ranging
	id int
}

func (op blockOp) eval(*Frame) (vals.Value, error) {
	return vals.Block{ID: op.id, Ranging: op.Ranging}, nil
}

// binaryOp applies a binary operator.
type binaryOp struct {
	diag.Ranging
	op       parse.BinaryOp
	lhs, rhs exprOp
}

func (op binaryOp) eval(fm *Frame) (vals.Value, error) {
	lhs, err := op.lhs.eval(fm)
	if err != nil {
		return nil, err
	}
	rhs, err := op.rhs.eval(fm)
	if err != nil {
		return nil, err
	}
	v, err := applyBinary(op.op, lhs, rhs)
	if err != nil {
		return nil, fm.errorp(op, err)
	}
	return vals.WithRange(v, op.Ranging), nil
}

func applyBinary(op parse.BinaryOp, lhs, rhs vals.Value) (vals.Value, error) {
	switch op {
	case parse.Add:
		return vals.Add(lhs, rhs)
	case parse.Sub:
		return vals.Sub(lhs, rhs)
	case parse.Mul:
		return vals.Mul(lhs, rhs)
	case parse.Div:
		return vals.Div(lhs, rhs)
	case parse.Eq:
		return vals.Bool{Val: vals.Equal(lhs, rhs)}, nil
	case parse.NotEq:
		return vals.Bool{Val: !vals.Equal(lhs, rhs)}, nil
	}
	cmp, err := vals.Cmp(lhs, rhs)
	if err != nil {
		return nil, err
	}
	switch op {
	case parse.Lt:
		return vals.Bool{Val: cmp < 0}, nil
	case parse.LtEq:
		return vals.Bool{Val: cmp <= 0}, nil
	case parse.Gt:
		return vals.Bool{Val: cmp > 0}, nil
	case parse.GtEq:
		return vals.Bool{Val: cmp >= 0}, nil
	}
	return nil, errs.Internal{Msg: "unknown binary operator"}
}

// subexprOp evaluates a parenthesized expression. It exists as a separate op
// so the value reports the parenthesized range.
type subexprOp struct {
	diag.Ranging
	inner exprOp
}

func (op subexprOp) eval(fm *Frame) (vals.Value, error) {
	v, err := op.inner.eval(fm)
	if err != nil {
		return nil, err
	}
	return vals.WithRange(v, op.Ranging), nil
}

// callValueOp evaluates a parenthesized command call by running it on empty
// input and condensing its output into one value.
type callValueOp struct {
	diag.Ranging
	call *callOp
}

func (op callValueOp) eval(fm *Frame) (vals.Value, error) {
	data, err := op.call.exec(fm, emptyData())
	if err != nil {
		return nil, err
	}
	collected, err := data.Collect(fm)
	if err != nil {
		return nil, fm.errorp(op, err)
	}
	return condense(collected, op.Ranging), nil
}
