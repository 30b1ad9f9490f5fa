package vals

import (
	"strings"

	"src.weir.sh/pkg/diag"
	"src.weir.sh/pkg/eval/errs"
)

// ErrDivideByZero is returned by Div when the divisor is zero.
var ErrDivideByZero = errs.BadValue{
	What: "divisor", Valid: "a number other than 0", Actual: "0"}

// Add adds two numbers, or concatenates two strings. The result carries
// diag.Unknown; the caller decides which range to stamp on it.
func Add(x, y Value) (Value, error) {
	if xs, ok := x.(Str); ok {
		ys, ok := y.(Str)
		if !ok {
			return nil, errs.BadValue{What: "operand", Valid: "a string", Actual: Kind(y)}
		}
		return Str{Val: xs.Val + ys.Val, Ranging: diag.Unknown}, nil
	}
	p, err := numOperands(x, y)
	if err != nil {
		return nil, err
	}
	if p.bothInt {
		return Int{Val: p.ix + p.iy, Ranging: diag.Unknown}, nil
	}
	return Float{Val: p.fx + p.fy, Ranging: diag.Unknown}, nil
}

// Sub subtracts y from x.
func Sub(x, y Value) (Value, error) {
	p, err := numOperands(x, y)
	if err != nil {
		return nil, err
	}
	if p.bothInt {
		return Int{Val: p.ix - p.iy, Ranging: diag.Unknown}, nil
	}
	return Float{Val: p.fx - p.fy, Ranging: diag.Unknown}, nil
}

// Mul multiplies two numbers.
func Mul(x, y Value) (Value, error) {
	p, err := numOperands(x, y)
	if err != nil {
		return nil, err
	}
	if p.bothInt {
		return Int{Val: p.ix * p.iy, Ranging: diag.Unknown}, nil
	}
	return Float{Val: p.fx * p.fy, Ranging: diag.Unknown}, nil
}

// Div divides x by y. Dividing two ints gives an int when the division is
// exact and a float otherwise. Dividing by zero is ErrDivideByZero.
func Div(x, y Value) (Value, error) {
	p, err := numOperands(x, y)
	if err != nil {
		return nil, err
	}
	if p.bothInt {
		if p.iy == 0 {
			return nil, ErrDivideByZero
		}
		if p.ix%p.iy == 0 {
			return Int{Val: p.ix / p.iy, Ranging: diag.Unknown}, nil
		}
		return Float{Val: float64(p.ix) / float64(p.iy), Ranging: diag.Unknown}, nil
	}
	if p.fy == 0 {
		return nil, ErrDivideByZero
	}
	return Float{Val: p.fx / p.fy, Ranging: diag.Unknown}, nil
}

// Cmp compares two numbers or two strings, returning -1, 0 or 1. Comparing
// anything else is an error.
func Cmp(x, y Value) (int, error) {
	if xs, ok := x.(Str); ok {
		if ys, ok := y.(Str); ok {
			return strings.Compare(xs.Val, ys.Val), nil
		}
		return 0, errs.BadValue{What: "operand", Valid: "a string", Actual: Kind(y)}
	}
	p, err := numOperands(x, y)
	if err != nil {
		return 0, err
	}
	if p.bothInt {
		switch {
		case p.ix < p.iy:
			return -1, nil
		case p.ix > p.iy:
			return 1, nil
		}
		return 0, nil
	}
	switch {
	case p.fx < p.fy:
		return -1, nil
	case p.fx > p.fy:
		return 1, nil
	}
	return 0, nil
}

type numPair struct {
	bothInt bool
	ix, iy  int64
	fx, fy  float64
}

func numOperands(x, y Value) (numPair, error) {
	xi, xIsInt := x.(Int)
	yi, yIsInt := y.(Int)
	if xIsInt && yIsInt {
		return numPair{bothInt: true, ix: xi.Val, iy: yi.Val}, nil
	}
	fx, err := numOperand(x)
	if err != nil {
		return numPair{}, err
	}
	fy, err := numOperand(y)
	if err != nil {
		return numPair{}, err
	}
	return numPair{fx: fx, fy: fy}, nil
}

func numOperand(v Value) (float64, error) {
	switch v := v.(type) {
	case Int:
		return float64(v.Val), nil
	case Float:
		return v.Val, nil
	default:
		return 0, errs.BadValue{What: "operand", Valid: "a number", Actual: Kind(v)}
	}
}
