package evaltest

import (
	"fmt"
	"reflect"

	"src.weir.sh/pkg/eval"
	"src.weir.sh/pkg/parse"
)

type errorMatcher interface{ matchError(error) bool }

// matchErr reports whether got matches the wanted error. A want that is an
// errorMatcher decides for itself against the raw error; any other want is
// compared against the exception reason of got.
func matchErr(want, got error) bool {
	if matcher, ok := want.(errorMatcher); ok {
		return matcher.matchError(got)
	}
	return reflect.DeepEqual(want, eval.Reason(got))
}

// AnyParseError is an error that matches any parse error.
var AnyParseError error = anyParseError{}

type anyParseError struct{}

func (anyParseError) Error() string { return "any parse error" }

func (anyParseError) matchError(e error) bool { return parse.GetError(e) != nil }

// ErrorWithType returns an error that matches any error with the same type
// as the argument.
func ErrorWithType(v error) error { return errorWithType{v} }

type errorWithType struct{ v error }

func (e errorWithType) Error() string { return fmt.Sprintf("error with type %T", e.v) }

func (e errorWithType) matchError(e2 error) bool {
	return reflect.TypeOf(e.v) == reflect.TypeOf(eval.Reason(e2))
}

// ErrorWithMessage returns an error that matches any error with the given
// message.
func ErrorWithMessage(msg string) error { return errorWithMessage{msg} }

type errorWithMessage struct{ msg string }

func (e errorWithMessage) Error() string { return "error with message " + e.msg }

func (e errorWithMessage) matchError(e2 error) bool {
	return e2 != nil && eval.Reason(e2).Error() == e.msg
}

// OneOfErrors returns an error that matches any of the given errors.
func OneOfErrors(errs ...error) error { return oneOfErrors(errs) }

type oneOfErrors []error

func (e oneOfErrors) Error() string { return fmt.Sprint("one of ", []error(e)) }

func (e oneOfErrors) matchError(e2 error) bool {
	for _, want := range e {
		if matchErr(want, e2) {
			return true
		}
	}
	return false
}
