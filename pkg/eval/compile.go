package eval

import (
	"errors"
	"fmt"
	"strings"

	"src.weir.sh/pkg/diag"
	"src.weir.sh/pkg/eval/errs"
	"src.weir.sh/pkg/eval/vals"
	"src.weir.sh/pkg/parse"
)

// CompilationError stores the errors found when compiling a parse tree.
type CompilationError struct {
	Entries []*diag.Error
}

// Error returns a plain text representation of the error.
func (ce *CompilationError) Error() string {
	switch len(ce.Entries) {
	case 0:
		return "no compilation error"
	case 1:
		return ce.Entries[0].Error()
	default:
		sb := new(strings.Builder)
		sb.WriteString("multiple compilation errors: ")
		for i, e := range ce.Entries {
			if i > 0 {
				sb.WriteString("; ")
			}
			fmt.Fprintf(sb, "%d-%d in %s: %s",
				e.Context.From, e.Context.To, e.Context.Name, e.Message)
		}
		return sb.String()
	}
}

// Show shows all constituent errors with their contexts.
func (ce *CompilationError) Show(indent string) string {
	switch len(ce.Entries) {
	case 0:
		return "no compilation error"
	case 1:
		return ce.Entries[0].Show(indent)
	default:
		sb := new(strings.Builder)
		sb.WriteString("Multiple compilation errors:")
		for _, e := range ce.Entries {
			sb.WriteString("\n" + indent + "  ")
			sb.WriteString(e.Show(indent + "  "))
		}
		return sb.String()
	}
}

// GetCompilationError returns a *CompilationError if the given error
// contains one. Otherwise it returns nil.
func GetCompilationError(e error) *CompilationError {
	var ce *CompilationError
	if errors.As(e, &ce) {
		return ce
	}
	return nil
}

// UnpackCompilationErrors returns the constituent errors if the given error
// contains one or more compilation errors. Otherwise it returns nil.
func UnpackCompilationErrors(e error) []*diag.Error {
	if ce := GetCompilationError(e); ce != nil {
		return ce.Entries
	}
	return nil
}

// scopeInfo is the compiler's view of a scope: the names declared in it and
// the IDs they resolve to. It parallels the runtime Stack.
type scopeInfo struct {
	parent *scopeInfo
	names  map[string]VarID
}

func newScopeInfo(parent *scopeInfo) *scopeInfo {
	return &scopeInfo{parent: parent, names: make(map[string]VarID)}
}

func (s *scopeInfo) lookup(name string) (VarID, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if id, ok := sc.names[name]; ok {
			return id, true
		}
	}
	return 0, false
}

// compileDelta is what a successful compilation adds to the Evaler: new
// blocks, new top-level names, and the advanced variable ID counter. It is
// committed only when the compiled code is actually going to run, so that
// checking code has no lasting effect.
type compileDelta struct {
	blocks  []blockBody
	globals map[string]VarID
	nextVar VarID
}

// blockBody is a compiled block: its parameter variables and its body.
type blockBody struct {
	diag.Ranging
	params []VarID
	body   chunkOp
}

type compiler struct {
	ev      *Evaler
	src     parse.Source
	scope   *scopeInfo
	blocks  []blockBody
	base    int
	nextVar VarID
	errors  []*diag.Error
}

// compile compiles a parse tree into a chunk op. The returned delta must be
// committed to the Evaler before the op runs.
func (ev *Evaler) compile(tree parse.Tree) (chunkOp, *compileDelta, error) {
	cp := &compiler{
		ev:      ev,
		src:     tree.Source,
		scope:   newScopeInfo(ev.globalInfo),
		base:    len(ev.blocks),
		nextVar: ev.nextVar,
	}
	op := cp.compileChunk(tree.Root)
	if len(cp.errors) > 0 {
		return chunkOp{}, nil, &CompilationError{cp.errors}
	}
	delta := &compileDelta{
		blocks:  cp.blocks,
		globals: cp.scope.names,
		nextVar: cp.nextVar,
	}
	return op, delta, nil
}

func (cp *compiler) errorpf(r diag.Ranger, format string, args ...any) {
	cp.errors = append(cp.errors, &diag.Error{
		Type:    "compilation error",
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(cp.src.Name, cp.src.Code, r.Range()),
	})
}

func (cp *compiler) declare(scope *scopeInfo, name string) VarID {
	id := cp.nextVar
	cp.nextVar++
	scope.names[name] = id
	return id
}

func (cp *compiler) compileChunk(n *parse.Chunk) chunkOp {
	op := chunkOp{Ranging: n.Range()}
	for _, p := range n.Pipelines {
		op.pipelines = append(op.pipelines, cp.compilePipeline(p))
	}
	return op
}

func (cp *compiler) compilePipeline(n *parse.Pipeline) pipelineOp {
	op := pipelineOp{Ranging: n.Range()}
	for _, elem := range n.Elems {
		op.stages = append(op.stages, cp.compileStage(elem))
	}
	return op
}

func (cp *compiler) compileStage(n parse.Expr) stageOp {
	if call, ok := n.(*parse.Call); ok {
		return cp.compileCall(call)
	}
	return exprStageOp{cp.compileExpr(n)}
}

func (cp *compiler) compileCall(n *parse.Call) *callOp {
	name := n.Head.Value
	cmd, ok := cp.ev.commands[name]
	if !ok {
		cp.errorpf(n.Head, "unknown command: %s", name)
		// Keep compiling the arguments so their errors surface too.
		for _, arg := range n.Args {
			cp.compileExpr(arg)
		}
		return &callOp{Ranging: n.Range()}
	}
	sig := cmd.Signature()

	// Variables declared by the command and block arguments live in a fresh
	// child scope when the command creates one. Expression arguments always
	// resolve in the caller's scope: the iteration source of a for loop must
	// not see the loop variable.
	declScope := cp.scope
	if sig.CreatesScope {
		declScope = newScopeInfo(cp.scope)
	}

	op := &callOp{Ranging: n.Range(), cmd: cmd}
	nodes := n.Args
	ni, keywords := 0, 0
	badArity := func() {
		low, high := sig.arity()
		cp.errorp(n, errs.ArityMismatch{
			What:     "arguments to " + name,
			ValidLow: low, ValidHigh: high,
			Actual: len(nodes) - keywords})
	}
	for _, p := range sig.Params {
		if p.Rest {
			for ; ni < len(nodes); ni++ {
				op.args = append(op.args, cp.compileArg(p, nodes[ni], declScope))
			}
			break
		}
		if p.Keyword != "" {
			if ni >= len(nodes) || !isKeyword(nodes[ni], p.Keyword) {
				if p.Optional {
					continue
				}
				if ni >= len(nodes) {
					badArity()
				} else {
					cp.errorpf(nodes[ni], "should be the keyword '%s'", p.Keyword)
				}
				return op
			}
			ni++
			keywords++
			// Once the keyword is given, the argument it introduces is
			// mandatory even for an optional parameter.
			if ni >= len(nodes) {
				cp.errorpf(nodes[ni-1],
					"the keyword '%s' should be followed by an argument", p.Keyword)
				return op
			}
		} else if ni >= len(nodes) && p.Optional {
			continue
		}
		if ni >= len(nodes) {
			badArity()
			return op
		}
		op.args = append(op.args, cp.compileArg(p, nodes[ni], declScope))
		ni++
	}
	if ni < len(nodes) {
		badArity()
	}
	return op
}

func isKeyword(n parse.Expr, keyword string) bool {
	bw, ok := n.(*parse.Bareword)
	return ok && bw.Value == keyword
}

func (cp *compiler) compileArg(p Param, n parse.Expr, declScope *scopeInfo) Arg {
	switch p.Shape {
	case VarShape:
		name := ""
		switch n := n.(type) {
		case *parse.Bareword:
			name = n.Value
		case *parse.Var:
			name = n.Name
		default:
			cp.errorpf(n, "should be a variable name")
			return Arg{Ranging: n.Range()}
		}
		id := cp.declare(declScope, name)
		return Arg{Ranging: n.Range(), hasVar: true, varID: id}
	case BlockShape:
		block, ok := n.(*parse.Block)
		if !ok {
			cp.errorpf(n, "should be a block")
			return Arg{Ranging: n.Range()}
		}
		if p.BlockParams >= 0 && len(block.Params) != p.BlockParams {
			cp.errorpf(n, "the block should take %s", parametersString(p.BlockParams))
		}
		b := cp.compileBlock(block, declScope)
		return Arg{Ranging: n.Range(), block: &b}
	default:
		return Arg{Ranging: n.Range(), expr: cp.compileExpr(n)}
	}
}

func parametersString(n int) string {
	switch n {
	case 0:
		return "no parameters"
	case 1:
		return "1 parameter"
	default:
		return fmt.Sprintf("%d parameters", n)
	}
}

// compileBlock compiles a block literal into the block table and returns its
// value. Parameters and body names resolve in a fresh scope under enclosing.
func (cp *compiler) compileBlock(n *parse.Block, enclosing *scopeInfo) vals.Block {
	info := newScopeInfo(enclosing)
	params := make([]VarID, 0, len(n.Params))
	for _, p := range n.Params {
		if _, ok := info.names[p.Value]; ok {
			cp.errorpf(p, "duplicate parameter: %s", p.Value)
			continue
		}
		params = append(params, cp.declare(info, p.Value))
	}
	saved := cp.scope
	cp.scope = info
	body := cp.compileChunk(n.Body)
	cp.scope = saved

	id := cp.base + len(cp.blocks)
	cp.blocks = append(cp.blocks, blockBody{
		Ranging: n.Range(), params: params, body: body})
	return vals.Block{ID: id, Ranging: n.Range()}
}

func (cp *compiler) compileExpr(n parse.Expr) exprOp {
	switch n := n.(type) {
	case *parse.Bareword:
		return literalOp{n.Range(), vals.Str{Val: n.Value, Ranging: n.Range()}}
	case *parse.IntLit:
		return literalOp{n.Range(), vals.Int{Val: n.Value, Ranging: n.Range()}}
	case *parse.FloatLit:
		return literalOp{n.Range(), vals.Float{Val: n.Value, Ranging: n.Range()}}
	case *parse.Str:
		return literalOp{n.Range(), vals.Str{Val: n.Value, Ranging: n.Range()}}
	case *parse.BoolLit:
		return literalOp{n.Range(), vals.Bool{Val: n.Value, Ranging: n.Range()}}
	case *parse.NothingLit:
		return literalOp{n.Range(), vals.Nothing{Ranging: n.Range()}}
	case *parse.Var:
		id, ok := cp.scope.lookup(n.Name)
		if !ok {
			cp.errorpf(n, "variable $%s not found", n.Name)
		}
		return varOp{n.Range(), n.Name, id}
	case *parse.List:
		op := listOp{Ranging: n.Range()}
		for _, elem := range n.Elems {
			op.elems = append(op.elems, cp.compileExpr(elem))
		}
		return op
	case *parse.RangeExpr:
		op := rangeOp{Ranging: n.Range(), exclusive: n.Exclusive}
		if n.From != nil {
			op.from = cp.compileExpr(n.From)
		}
		if n.Next != nil {
			op.next = cp.compileExpr(n.Next)
		}
		if n.To != nil {
			op.to = cp.compileExpr(n.To)
		}
		return op
	case *parse.Block:
		b := cp.compileBlock(n, cp.scope)
		return blockOp{n.Range(), b.ID}
	case *parse.Binary:
		return binaryOp{n.Range(), n.Op, cp.compileExpr(n.LHS), cp.compileExpr(n.RHS)}
	case *parse.Subexpr:
		if call, ok := n.Elem.(*parse.Call); ok {
			return callValueOp{n.Range(), cp.compileCall(call)}
		}
		return subexprOp{n.Range(), cp.compileExpr(n.Elem)}
	}
	cp.errorpf(n, "cannot compile expression")
	return literalOp{n.Range(), vals.Nothing{Ranging: n.Range()}}
}

func (cp *compiler) errorp(r diag.Ranger, err error) {
	cp.errors = append(cp.errors, &diag.Error{
		Type:    "compilation error",
		Message: err.Error(),
		Context: *diag.NewContext(cp.src.Name, cp.src.Code, r.Range()),
	})
}
