// Package parse implements the Weir parser.
//
// The parser builds an AST (abstract syntax tree) whose nodes all carry the
// byte range of the source text they were parsed from. The parser does not
// know about commands or their signatures; calls are parsed uniformly as a
// head followed by argument atoms, and it is the compilation step that checks
// arguments against command signatures.
package parse

import (
	"strconv"
	"strings"
	"unicode"

	"src.weir.sh/pkg/diag"
)

// Tree represents a parsed tree.
type Tree struct {
	Root   *Chunk
	Source Source
}

// Parse parses the given source. The returned error is nil or an *Error.
func Parse(src Source) (Tree, error) {
	ps := &parser{srcName: src.Name, src: src.Code}
	root := parseChunk(ps)
	ps.done()
	return Tree{root, src}, ps.assembleError()
}

// Errors.
var (
	errShouldBeExpr         = newError("", "an expression")
	errShouldBeElement      = newError("", "a command or an expression")
	errShouldBeVariableName = newError("", "a variable name")
	errShouldBeRBracket     = newError("", "']'")
	errShouldBeRBrace       = newError("", "'}'")
	errShouldBeRParen       = newError("", "')'")
	errShouldBePipeEnd      = newError("", "'|'")
	errShouldBeSep          = newError("", "whitespace or a separator")
	errStringUnterminated   = newError("string not terminated")
	errInvalidEscape        = newError("invalid escape sequence")
	errInvalidEscapeHex     = newError("invalid escape sequence", "a hex digit")
	errNumberOutOfRange     = newError("number out of range")
)

// Node is implemented by all AST nodes.
type Node interface {
	diag.Ranger
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Chunk = { Sep } { Pipeline { Sep } }
type Chunk struct {
	diag.Ranging
	Pipelines []*Pipeline
}

func parseChunk(ps *parser) *Chunk {
	n := &Chunk{Ranging: diag.PointRanging(ps.pos)}
	parseSeps(ps)
	for startsPipeline(ps.peek()) {
		n.Pipelines = append(n.Pipelines, parsePipeline(ps))
		if parseSeps(ps) == 0 {
			break
		}
	}
	if len(n.Pipelines) > 0 {
		n.To = n.Pipelines[len(n.Pipelines)-1].To
	}
	return n
}

func startsPipeline(r rune) bool {
	return r != eof && r != '}'
}

// parseSeps parses pipeline separators along with whitespace and comments. It
// returns the number of separators parsed.
func parseSeps(ps *parser) int {
	nseps := 0
	for {
		r := ps.peek()
		if r == ';' || r == '\n' || r == '\r' {
			ps.next()
			nseps++
		} else if r == ' ' || r == '\t' {
			ps.next()
		} else if r == '#' {
			skipComment(ps)
		} else {
			break
		}
	}
	return nseps
}

func skipComment(ps *parser) {
	for {
		r := ps.peek()
		if r == eof || r == '\n' {
			break
		}
		ps.next()
	}
}

func skipSpaces(ps *parser) {
	for {
		r := ps.peek()
		if r == ' ' || r == '\t' {
			ps.next()
		} else if r == '#' {
			skipComment(ps)
		} else {
			break
		}
	}
}

func skipSpacesAndNewlines(ps *parser) {
	for {
		r := ps.peek()
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			ps.next()
		} else if r == '#' {
			skipComment(ps)
		} else {
			break
		}
	}
}

// Pipeline = Element { '|' Element }
type Pipeline struct {
	diag.Ranging
	Elems []Expr
}

func parsePipeline(ps *parser) *Pipeline {
	n := &Pipeline{Ranging: diag.PointRanging(ps.pos)}
	if elem := parseElement(ps); elem != nil {
		n.Elems = append(n.Elems, elem)
	}
	for {
		skipSpaces(ps)
		if ps.peek() != '|' {
			break
		}
		ps.next()
		skipSpacesAndNewlines(ps)
		if !startsPipeline(ps.peek()) {
			ps.error(errShouldBeElement)
			break
		}
		if elem := parseElement(ps); elem != nil {
			n.Elems = append(n.Elems, elem)
		}
	}
	if len(n.Elems) > 0 {
		n.To = n.Elems[len(n.Elems)-1].Range().To
	} else {
		n.To = ps.pos
	}
	return n
}

// Element = Call | Expr
//
// An element that starts with a letter or underscore is a call; anything else
// is parsed as an expression.
func parseElement(ps *parser) Expr {
	if startsCall(ps.peek()) {
		return parseCall(ps)
	}
	return parseExpr(ps)
}

func startsCall(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// Call = Bareword { Atom }
type Call struct {
	diag.Ranging
	Head *Bareword
	Args []Expr
}

func (*Call) exprNode() {}

func parseCall(ps *parser) Expr {
	n := &Call{Ranging: diag.PointRanging(ps.pos)}
	n.Head = parseBareword(ps)
	n.To = n.Head.To
	for {
		skipSpaces(ps)
		if isElementEnd(ps.peek()) {
			break
		}
		arg := parseAtom(ps, true)
		if arg != nil {
			n.Args = append(n.Args, arg)
			n.To = arg.Range().To
			checkAtomEnd(ps)
		}
	}
	return n
}

func isElementEnd(r rune) bool {
	switch r {
	case eof, ';', '\n', '\r', '|', ')', ']', '}', '#':
		return true
	}
	return false
}

// Atoms must be delimited by whitespace or a terminator; this turns things
// like "1+2" in argument position into errors instead of a silent bareword.
func checkAtomEnd(ps *parser) {
	r := ps.peek()
	if r == ' ' || r == '\t' || isElementEnd(r) {
		return
	}
	ps.error(errShouldBeSep)
	ps.next()
}

// BinaryOp identifies a binary operator.
type BinaryOp int

// Binary operators.
const (
	Mul BinaryOp = iota
	Div
	Add
	Sub
	Eq
	NotEq
	Lt
	LtEq
	Gt
	GtEq
)

var opNames = map[BinaryOp]string{
	Mul: "*", Div: "/", Add: "+", Sub: "-",
	Eq: "==", NotEq: "!=", Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=",
}

func (op BinaryOp) String() string { return opNames[op] }

// Binary is a binary operator expression.
type Binary struct {
	diag.Ranging
	Op       BinaryOp
	LHS, RHS Expr
}

func (*Binary) exprNode() {}

// Expr = Compare
func parseExpr(ps *parser) Expr {
	return parseCompare(ps)
}

// Compare = Arith [ ( '==' | '!=' | '<=' | '<' | '>=' | '>' ) Arith ]
func parseCompare(ps *parser) Expr {
	lhs := parseArith(ps)
	skipSpaces(ps)
	var op BinaryOp
	switch {
	case ps.hasPrefix("=="):
		op = Eq
	case ps.hasPrefix("!="):
		op = NotEq
	case ps.hasPrefix("<="):
		op = LtEq
	case ps.hasPrefix(">="):
		op = GtEq
	case ps.hasPrefix("<"):
		op = Lt
	case ps.hasPrefix(">"):
		op = Gt
	default:
		return lhs
	}
	for range op.String() {
		ps.next()
	}
	skipSpaces(ps)
	return binary(op, lhs, parseArith(ps))
}

// Arith = Term { ( '+' | '-' ) Term }
func parseArith(ps *parser) Expr {
	lhs := parseTerm(ps)
	for {
		skipSpaces(ps)
		var op BinaryOp
		switch ps.peek() {
		case '+':
			op = Add
		case '-':
			op = Sub
		default:
			return lhs
		}
		ps.next()
		skipSpaces(ps)
		lhs = binary(op, lhs, parseTerm(ps))
	}
}

// Term = Atom { ( '*' | '/' ) Atom }
func parseTerm(ps *parser) Expr {
	lhs := parseAtom(ps, false)
	for {
		skipSpaces(ps)
		var op BinaryOp
		switch ps.peek() {
		case '*':
			op = Mul
		case '/':
			op = Div
		default:
			return lhs
		}
		ps.next()
		skipSpaces(ps)
		lhs = binary(op, lhs, parseAtom(ps, false))
	}
}

func binary(op BinaryOp, lhs, rhs Expr) Expr {
	if lhs == nil {
		return rhs
	}
	if rhs == nil {
		return lhs
	}
	return &Binary{Ranging: diag.MixedRanging(lhs, rhs), Op: op, LHS: lhs, RHS: rhs}
}

// Atom = Range | Primary
func parseAtom(ps *parser, barewordOK bool) Expr {
	if ps.hasPrefix("..") {
		return parseRange(ps, nil)
	}
	p := parsePrimary(ps, barewordOK)
	if p != nil && rangeable(p) && ps.hasPrefix("..") {
		return parseRange(ps, p)
	}
	return p
}

// Reports whether p can be the lower bound of a range literal. Barewords are
// excluded; they consume '.' themselves.
func rangeable(p Expr) bool {
	switch p.(type) {
	case *IntLit, *FloatLit, *Var, *Subexpr:
		return true
	}
	return false
}

// RangeExpr is a range literal.
//
// Range = [ Primary ] '..' [ '<' ] [ Primary ] [ '..' [ '<' ] [ Primary ] ]
//
// With three parts the middle one is the stride hint: "1..3..9" counts from 1
// to 9 in steps of 2. The '<' of the last joint excludes the upper bound.
type RangeExpr struct {
	diag.Ranging
	From, Next, To Expr // any may be nil
	Exclusive      bool // right bound excluded
}

func (*RangeExpr) exprNode() {}

func parseRange(ps *parser, from Expr) Expr {
	begin := ps.pos
	if from != nil {
		begin = from.Range().From
	}
	n := &RangeExpr{From: from}
	ps.next()
	ps.next()
	if ps.peek() == '<' {
		ps.next()
		n.Exclusive = true
	}
	if startsRangeBound(ps) {
		n.To = parsePrimary(ps, false)
	}
	if !n.Exclusive && ps.hasPrefix("..") {
		// The bound parsed above was actually the stride hint.
		n.Next, n.To = n.To, nil
		ps.next()
		ps.next()
		if ps.peek() == '<' {
			ps.next()
			n.Exclusive = true
		}
		if startsRangeBound(ps) {
			n.To = parsePrimary(ps, false)
		}
	}
	n.Ranging = diag.Ranging{From: begin, To: ps.pos}
	return n
}

func startsRangeBound(ps *parser) bool {
	r := ps.peek()
	return startsNumber(ps) || r == '$' || r == '('
}

func startsNumber(ps *parser) bool {
	r := ps.peek()
	if r == '-' {
		return ps.pos+1 < len(ps.src) && isDigit(rune(ps.src[ps.pos+1]))
	}
	return isDigit(r)
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// Primary = Var | String | List | Block | Subexpr | Number | Bareword
func parsePrimary(ps *parser, barewordOK bool) Expr {
	switch r := ps.peek(); {
	case r == '$':
		return parseVar(ps)
	case r == '\'':
		return parseSingleQuoted(ps)
	case r == '"':
		return parseDoubleQuoted(ps)
	case r == '[':
		return parseList(ps)
	case r == '{':
		return parseBlock(ps)
	case r == '(':
		return parseSubexpr(ps)
	case startsNumber(ps):
		return parseNumber(ps)
	case barewordOK && allowedInBareword(r):
		return parseBareword(ps)
	default:
		ps.error(errShouldBeExpr)
		ps.next()
		return nil
	}
}

// Bareword is an unquoted word. Depending on the position it is a string
// value, a command name or a keyword.
type Bareword struct {
	diag.Ranging
	Value string
}

func (*Bareword) exprNode() {}

func allowedInBareword(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '+' || r == '?' ||
		r == '!' || r == '=' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func parseBareword(ps *parser) *Bareword {
	begin := ps.pos
	for allowedInBareword(ps.peek()) {
		ps.next()
	}
	return &Bareword{
		Ranging: diag.Ranging{From: begin, To: ps.pos},
		Value:   ps.src[begin:ps.pos],
	}
}

// IntLit is a decimal integer literal.
type IntLit struct {
	diag.Ranging
	Value int64
}

func (*IntLit) exprNode() {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	diag.Ranging
	Value float64
}

func (*FloatLit) exprNode() {}

func parseNumber(ps *parser) Expr {
	begin := ps.pos
	if ps.peek() == '-' {
		ps.next()
	}
	for isDigit(ps.peek()) {
		ps.next()
	}
	isFloat := false
	// A '.' followed by a digit is a fraction; ".." starts a range.
	if ps.peek() == '.' && ps.pos+1 < len(ps.src) && isDigit(rune(ps.src[ps.pos+1])) {
		isFloat = true
		ps.next()
		for isDigit(ps.peek()) {
			ps.next()
		}
	}
	text := ps.src[begin:ps.pos]
	r := diag.Ranging{From: begin, To: ps.pos}
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			ps.errorp(r, errNumberOutOfRange)
			return nil
		}
		return &FloatLit{Ranging: r, Value: f}
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		ps.errorp(r, errNumberOutOfRange)
		return nil
	}
	return &IntLit{Ranging: r, Value: i}
}

// Var is a use of a variable, like $x.
type Var struct {
	diag.Ranging
	Name string
}

func (*Var) exprNode() {}

// BoolLit is a boolean literal, written $true or $false.
type BoolLit struct {
	diag.Ranging
	Value bool
}

func (*BoolLit) exprNode() {}

// NothingLit is the nothing literal, written $nothing.
type NothingLit struct {
	diag.Ranging
}

func (*NothingLit) exprNode() {}

func parseVar(ps *parser) Expr {
	begin := ps.pos
	ps.next()
	nameBegin := ps.pos
	for allowedInVariableName(ps.peek()) {
		ps.next()
	}
	name := ps.src[nameBegin:ps.pos]
	r := diag.Ranging{From: begin, To: ps.pos}
	if name == "" {
		ps.errorp(r, errShouldBeVariableName)
		return nil
	}
	switch name {
	case "true":
		return &BoolLit{Ranging: r, Value: true}
	case "false":
		return &BoolLit{Ranging: r, Value: false}
	case "nothing":
		return &NothingLit{Ranging: r}
	}
	return &Var{Ranging: r, Name: name}
}

func allowedInVariableName(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Str is a quoted string literal.
type Str struct {
	diag.Ranging
	Value string
}

func (*Str) exprNode() {}

// In single-quoted strings a consecutive pair of single quotes is one literal
// quote; there are no other special sequences.
func parseSingleQuoted(ps *parser) Expr {
	begin := ps.pos
	ps.next()
	var sb strings.Builder
	for {
		switch r := ps.next(); r {
		case eof:
			ps.error(errStringUnterminated)
			return &Str{Ranging: diag.Ranging{From: begin, To: ps.pos}, Value: sb.String()}
		case '\'':
			if ps.peek() == '\'' {
				ps.next()
				sb.WriteRune('\'')
			} else {
				return &Str{Ranging: diag.Ranging{From: begin, To: ps.pos}, Value: sb.String()}
			}
		default:
			sb.WriteRune(r)
		}
	}
}

func parseDoubleQuoted(ps *parser) Expr {
	begin := ps.pos
	ps.next()
	var sb strings.Builder
	for {
		switch r := ps.next(); r {
		case eof:
			ps.error(errStringUnterminated)
			return &Str{Ranging: diag.Ranging{From: begin, To: ps.pos}, Value: sb.String()}
		case '"':
			return &Str{Ranging: diag.Ranging{From: begin, To: ps.pos}, Value: sb.String()}
		case '\\':
			parseDoubleEscape(ps, &sb)
		default:
			sb.WriteRune(r)
		}
	}
}

func parseDoubleEscape(ps *parser, sb *strings.Builder) {
	switch r := ps.next(); r {
	case 'x', 'u', 'U':
		var width int
		switch r {
		case 'x':
			width = 2
		case 'u':
			width = 4
		case 'U':
			width = 8
		}
		var decoded rune
		for i := 0; i < width; i++ {
			d, ok := hexToDigit(ps.next())
			if !ok {
				ps.backup()
				ps.error(errInvalidEscapeHex)
				return
			}
			decoded = decoded*16 + d
		}
		sb.WriteRune(decoded)
	default:
		if decoded, ok := doubleEscape[r]; ok {
			sb.WriteRune(decoded)
		} else {
			ps.backup()
			ps.error(errInvalidEscape)
			ps.next()
		}
	}
}

func hexToDigit(r rune) (rune, bool) {
	switch {
	case '0' <= r && r <= '9':
		return r - '0', true
	case 'a' <= r && r <= 'f':
		return r - 'a' + 10, true
	case 'A' <= r && r <= 'F':
		return r - 'A' + 10, true
	default:
		return -1, false
	}
}

// Supported escape sequences in double-quoted strings, and the inverse
// mapping used when quoting.
var (
	doubleEscape   = map[rune]rune{'"': '"', '\\': '\\', 'e': '\033', 'n': '\n', 'r': '\r', 't': '\t'}
	doubleUnescape = map[rune]rune{}
)

func init() {
	for e, r := range doubleEscape {
		doubleUnescape[r] = e
	}
}

// List = '[' { Atom } ']'
type List struct {
	diag.Ranging
	Elems []Expr
}

func (*List) exprNode() {}

func parseList(ps *parser) Expr {
	n := &List{Ranging: diag.PointRanging(ps.pos)}
	ps.next()
	for {
		skipSpacesAndNewlines(ps)
		r := ps.peek()
		if r == ']' {
			ps.next()
			break
		}
		if r == eof {
			ps.error(errShouldBeRBracket)
			break
		}
		if elem := parseAtom(ps, true); elem != nil {
			n.Elems = append(n.Elems, elem)
			checkAtomEnd(ps)
		}
	}
	n.To = ps.pos
	return n
}

// Block = '{' [ '|' { Bareword } '|' ] Chunk '}'
type Block struct {
	diag.Ranging
	Params []*Bareword
	Body   *Chunk
}

func (*Block) exprNode() {}

func parseBlock(ps *parser) Expr {
	n := &Block{Ranging: diag.PointRanging(ps.pos)}
	ps.next()
	skipSpaces(ps)
	if ps.peek() == '|' {
		ps.next()
		for {
			skipSpaces(ps)
			r := ps.peek()
			if r == '|' {
				ps.next()
				break
			}
			if r == eof {
				ps.error(errShouldBePipeEnd)
				break
			}
			if allowedInBareword(r) && !startsNumber(ps) {
				n.Params = append(n.Params, parseBareword(ps))
			} else {
				ps.error(errShouldBeVariableName)
				ps.next()
			}
		}
	}
	n.Body = parseChunk(ps)
	if ps.peek() == '}' {
		ps.next()
	} else {
		ps.error(errShouldBeRBrace)
	}
	n.To = ps.pos
	return n
}

// Subexpr = '(' Element ')'
type Subexpr struct {
	diag.Ranging
	Elem Expr
}

func (*Subexpr) exprNode() {}

func parseSubexpr(ps *parser) Expr {
	n := &Subexpr{Ranging: diag.PointRanging(ps.pos)}
	ps.next()
	skipSpacesAndNewlines(ps)
	n.Elem = parseElement(ps)
	skipSpacesAndNewlines(ps)
	if ps.peek() == ')' {
		ps.next()
	} else {
		ps.error(errShouldBeRParen)
	}
	n.To = ps.pos
	return n
}
