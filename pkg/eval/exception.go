package eval

import (
	"src.weir.sh/pkg/diag"
)

// Exception is an error thrown while evaluating Weir code, together with the
// context of the code that threw it. It is the error type returned by
// (*Evaler).Eval for runtime failures.
type Exception struct {
	reason  error
	context *diag.Context
}

// NewException creates a new Exception.
func NewException(reason error, context *diag.Context) *Exception {
	return &Exception{reason, context}
}

// Reason returns the underlying cause of the exception.
func (exc *Exception) Reason() error { return exc.reason }

// Context returns the context where the exception was thrown.
func (exc *Exception) Context() *diag.Context { return exc.context }

// Error returns the message of the cause of the exception.
func (exc *Exception) Error() string { return exc.reason.Error() }

// Show shows the exception with the culprit code highlighted.
func (exc *Exception) Show(indent string) string {
	var causeDescription string
	if shower, ok := exc.reason.(diag.Shower); ok {
		causeDescription = shower.Show(indent)
	} else {
		causeDescription = "\033[31;1m" + exc.reason.Error() + "\033[m"
	}
	s := "Exception: " + causeDescription
	if exc.context != nil {
		s += "\n" + exc.context.ShowCompact(indent)
	}
	return s
}

// Reason returns the Reason field if err is an *Exception. Otherwise it
// returns err itself.
func Reason(err error) error {
	if exc, ok := err.(*Exception); ok {
		return exc.reason
	}
	return err
}
