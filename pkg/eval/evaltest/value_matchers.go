package evaltest

import (
	"src.weir.sh/pkg/eval/vals"
)

// ValueMatcher is a value that can be passed to [Case.Puts] and has its own
// matching semantics.
type ValueMatcher interface{ matchValue(vals.Value) bool }

// Anything matches anything. It is useful when the exact value does not
// matter to the test.
var Anything ValueMatcher = anything{}

type anything struct{}

func (anything) String() string { return "anything" }

func (anything) matchValue(vals.Value) bool { return true }

// AnyErrorValue matches any error value.
var AnyErrorValue ValueMatcher = anyErrorValue{}

type anyErrorValue struct{}

func (anyErrorValue) String() string { return "any error value" }

func (anyErrorValue) matchValue(v vals.Value) bool {
	_, ok := v.(vals.Error)
	return ok
}

// ErrorValue returns a matcher that matches an error value whose message is
// msg.
func ErrorValue(msg string) ValueMatcher { return errorValue{msg} }

type errorValue struct{ msg string }

func (e errorValue) String() string { return "<error: " + e.msg + ">" }

func (e errorValue) matchValue(v vals.Value) bool {
	ev, ok := v.(vals.Error)
	return ok && ev.Err != nil && ev.Err.Error() == e.msg
}
