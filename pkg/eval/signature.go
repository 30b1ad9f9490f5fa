package eval

// Shape describes what kind of argument a command parameter accepts. The
// syntactic shapes (VarShape and BlockShape) are enforced by the compiler;
// the value shapes describe what the argument must evaluate to, and the
// command checks them when it runs.
type Shape int

const (
	// AnyShape accepts any expression.
	AnyShape Shape = iota
	// VarShape accepts a variable name, which the command declares rather
	// than reads.
	VarShape
	// BlockShape accepts a block literal.
	BlockShape
	// IntShape accepts an expression that must evaluate to an int.
	IntShape
	// StrShape accepts an expression that must evaluate to a string.
	StrShape
)

// Param describes one parameter of a command.
type Param struct {
	Name  string
	Shape Shape
	Doc   string
	// Keyword, if non-empty, is a literal word that must precede the
	// argument, like the "in" of a for loop.
	Keyword string
	// Optional marks a parameter that may be omitted, along with its
	// keyword. Optional parameters must come after all required ones.
	Optional bool
	// Rest marks the last parameter as accepting all remaining arguments.
	Rest bool
	// BlockParams is the number of parameters the block argument must
	// declare; -1 allows any number. Only meaningful for BlockShape.
	BlockParams int
}

// Signature describes the calling convention of a command: its parameters,
// and whether calling it opens a new lexical scope for its block argument.
type Signature struct {
	Name   string
	Params []Param
	// CreatesScope declares that variables introduced by VarShape parameters
	// are bound in a fresh child scope, which is also the scope the block
	// argument resolves names in.
	CreatesScope bool
}

// NewSignature starts building a signature for the named command. The
// builder methods return modified copies and can be chained.
func NewSignature(name string) Signature {
	return Signature{Name: name}
}

// Required appends a required parameter.
func (sig Signature) Required(name string, shape Shape, doc string) Signature {
	sig.Params = append(sig.Params, Param{Name: name, Shape: shape, Doc: doc})
	return sig
}

// RequiredKeyword appends a required parameter introduced by a literal
// keyword.
func (sig Signature) RequiredKeyword(keyword, name string, shape Shape, doc string) Signature {
	sig.Params = append(sig.Params, Param{Name: name, Shape: shape, Doc: doc, Keyword: keyword})
	return sig
}

// RequiredBlock appends a required block parameter whose block must declare
// exactly nParams parameters; pass -1 to allow any number.
func (sig Signature) RequiredBlock(name string, nParams int, doc string) Signature {
	sig.Params = append(sig.Params, Param{Name: name, Shape: BlockShape, Doc: doc, BlockParams: nParams})
	return sig
}

// OptionalKeywordBlock appends an optional block parameter introduced by a
// literal keyword, like the "else" branch of an if.
func (sig Signature) OptionalKeywordBlock(keyword, name string, nParams int, doc string) Signature {
	sig.Params = append(sig.Params, Param{
		Name: name, Shape: BlockShape, Doc: doc,
		Keyword: keyword, Optional: true, BlockParams: nParams})
	return sig
}

// Rest appends a parameter accepting all remaining arguments. It must be the
// last parameter.
func (sig Signature) Rest(name string, shape Shape, doc string) Signature {
	sig.Params = append(sig.Params, Param{Name: name, Shape: shape, Doc: doc, Rest: true})
	return sig
}

// CreatingScope marks the command as creating a new lexical scope.
func (sig Signature) CreatingScope() Signature {
	sig.CreatesScope = true
	return sig
}

// arity returns the minimum and maximum number of arguments the signature
// accepts; max is -1 when there is a rest parameter.
func (sig Signature) arity() (min, max int) {
	for _, p := range sig.Params {
		if p.Rest {
			return min, -1
		}
		if !p.Optional {
			min++
		}
		max++
	}
	return min, max
}
