// Package errs declares error types used as exception causes.
package errs

import (
	"fmt"
	"strconv"
)

// OutOfRange encodes an error where a value is out of its valid range.
type OutOfRange struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    string
}

func (e OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf("out of range: %s has no valid value, but is %s",
			e.What, e.Actual)
	}
	return fmt.Sprintf("out of range: %s must be from %d to %d, but is %s",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}

// BadValue encodes an error where the value does not fall into the valid set.
type BadValue struct {
	What   string
	Valid  string
	Actual string
}

func (e BadValue) Error() string {
	return fmt.Sprintf("bad value: %s must be %s, but is %s",
		e.What, e.Valid, e.Actual)
}

// ArityMismatch encodes an error where the expected number of values is out
// of the valid range.
type ArityMismatch struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    int
}

func (e ArityMismatch) Error() string {
	switch {
	case e.ValidHigh == e.ValidLow:
		return fmt.Sprintf("arity mismatch: %s must be %s, but is %s",
			e.What, valuesString(e.ValidLow), valuesString(e.Actual))
	case e.ValidHigh == -1:
		return fmt.Sprintf("arity mismatch: %s must be %d or more values, but is %s",
			e.What, e.ValidLow, valuesString(e.Actual))
	default:
		return fmt.Sprintf("arity mismatch: %s must be %d to %d values, but is %s",
			e.What, e.ValidLow, e.ValidHigh, valuesString(e.Actual))
	}
}

func valuesString(n int) string {
	if n == 1 {
		return "1 value"
	}
	return strconv.Itoa(n) + " values"
}

// UnsetVariable encodes an error where a variable is known lexically but has
// no value on the current scope chain.
type UnsetVariable struct {
	Name string
}

func (e UnsetVariable) Error() string {
	return "variable $" + e.Name + " is not set"
}

// Internal encodes an inconsistency between compilation and evaluation. It
// indicates a bug in the interpreter rather than in the code being run.
type Internal struct {
	Msg string
}

func (e Internal) Error() string {
	return "internal error: " + e.Msg
}
