package vals

import "src.weir.sh/pkg/diag"

// Error is an error carried as a value. When an iteration of a list or
// range loop fails, the loop emits an Error in that iteration's output slot
// and carries on; the Error flows through the pipeline like any other value.
type Error struct {
	Err error
	diag.Ranging
}

func (Error) Kind() string { return "error" }

// MakeError returns an Error wrapping err, with the given range.
func MakeError(err error, r diag.Ranging) Error { return Error{err, r} }
