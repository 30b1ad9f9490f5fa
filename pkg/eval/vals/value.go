// Package vals defines the value types of the Weir language and common
// operations on them.
//
// Every value carries the source range of the expression that produced it,
// so that errors blaming a value can point back at the code. Values
// synthesized by the runtime carry diag.Unknown.
package vals

import "src.weir.sh/pkg/diag"

// Value is implemented by all value variants: Int, Float, Str, Bool,
// Nothing, List, Range, Block and Error.
type Value interface {
	diag.Ranger
	// Kind returns a human-readable name for the kind of the value, like
	// "int" or "list".
	Kind() string
}

// Int is an integer value.
type Int struct {
	Val int64
	diag.Ranging
}

func (Int) Kind() string { return "int" }

// Float is a floating-point value.
type Float struct {
	Val float64
	diag.Ranging
}

func (Float) Kind() string { return "float" }

// Str is a string value.
type Str struct {
	Val string
	diag.Ranging
}

func (Str) Kind() string { return "string" }

// Bool is a boolean value.
type Bool struct {
	Val bool
	diag.Ranging
}

func (Bool) Kind() string { return "bool" }

// Nothing is the unit value. It is the value of $nothing, of omitted range
// bounds, and of commands that produce no output.
type Nothing struct {
	diag.Ranging
}

func (Nothing) Kind() string { return "nothing" }

// List is a list of values.
type List struct {
	Vals []Value
	diag.Ranging
}

func (List) Kind() string { return "list" }

// Block is a compiled block. The ID identifies the block within the
// evaluator that compiled it; blocks are only meaningful to that evaluator.
type Block struct {
	ID int
	diag.Ranging
}

func (Block) Kind() string { return "block" }

// MakeInt returns an Int with the given range.
func MakeInt(i int64, r diag.Ranging) Int { return Int{i, r} }

// MakeFloat returns a Float with the given range.
func MakeFloat(f float64, r diag.Ranging) Float { return Float{f, r} }

// MakeStr returns a Str with the given range.
func MakeStr(s string, r diag.Ranging) Str { return Str{s, r} }

// MakeBool returns a Bool with the given range.
func MakeBool(b bool, r diag.Ranging) Bool { return Bool{b, r} }

// MakeNothing returns a Nothing with the given range.
func MakeNothing(r diag.Ranging) Nothing { return Nothing{r} }

// MakeList returns a List of the given values, with the given range.
func MakeList(r diag.Ranging, vs ...Value) List { return List{vs, r} }

// WithRange returns v with its range replaced by r.
func WithRange(v Value, r diag.Ranging) Value {
	switch v := v.(type) {
	case Int:
		v.Ranging = r
		return v
	case Float:
		v.Ranging = r
		return v
	case Str:
		v.Ranging = r
		return v
	case Bool:
		v.Ranging = r
		return v
	case Nothing:
		v.Ranging = r
		return v
	case List:
		v.Ranging = r
		return v
	case Range:
		v.Ranging = r
		return v
	case Block:
		v.Ranging = r
		return v
	case Error:
		v.Ranging = r
		return v
	}
	return v
}
