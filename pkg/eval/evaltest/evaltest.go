// Package evaltest provides a framework for testing Weir code.
//
// The entry point of the framework is the Test function, which accepts a
// *testing.T and any number of test cases. Test cases are constructed with
// the That function, followed by method calls that describe the wanted
// outcome:
//
//	Test(t,
//	    That("echo foo").Puts("foo"),
//	    That("bad").DoesNotCompile("unknown command: bad"))
//
// If some setup is needed, use the TestWithSetup function instead.
//
// This file does not have a _test.go suffix so that the framework can be
// used by tests of other packages too.
package evaltest

import (
	"fmt"
	"strings"
	"testing"

	"src.weir.sh/pkg/eval"
	"src.weir.sh/pkg/eval/vals"
	"src.weir.sh/pkg/parse"
)

// Case is a test case that can be used in Test.
type Case struct {
	codes  []string
	setup  func(ev *eval.Evaler)
	verify func(t *testing.T)
	want   result
}

type result struct {
	values []any

	compilationError    string
	hasCompilationError bool

	exception error
}

// That returns a new Case with the given source code. Multiple pieces of
// code are evaluated in order on the same Evaler, accumulating output, so
// state established by one piece is visible to the next.
func That(codes ...string) Case {
	return Case{codes: codes}
}

// WithSetup returns an altered Case that runs the given function on the
// Evaler before evaluating any code.
func (c Case) WithSetup(f func(ev *eval.Evaler)) Case {
	c.setup = f
	return c
}

// Puts returns an altered Case that requires the source code to produce the
// given values when evaluated. Wanted values may be given as vals.Value, as
// a ValueMatcher, or as a native Go value mirroring a literal: bool, int,
// float64, string, nil for the nothing value, or []any for a list.
func (c Case) Puts(vs ...any) Case {
	c.want.values = make([]any, len(vs))
	for i, v := range vs {
		c.want.values[i] = wantValue(v)
	}
	return c
}

// Throws returns an altered Case that requires the evaluation to fail with
// an exception whose reason matches the given error. The argument may also
// be an error matcher like AnyParseError or ErrorWithMessage.
func (c Case) Throws(reason error) Case {
	c.want.exception = reason
	return c
}

// DoesNotCompile returns an altered Case that requires the source code to
// fail compilation with the given error message.
func (c Case) DoesNotCompile(msg string) Case {
	c.want.hasCompilationError = true
	c.want.compilationError = msg
	return c
}

// Verify returns an altered Case that runs the given function after the
// code is evaluated, for checking side effects.
func (c Case) Verify(f func(t *testing.T)) Case {
	c.verify = f
	return c
}

// Test runs each test case against a fresh Evaler.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	TestWithSetup(t, func(*eval.Evaler) {}, tests...)
}

// TestWithSetup is like Test, but runs setup on the fresh Evaler of every
// test case before evaluating its code.
func TestWithSetup(t *testing.T, setup func(ev *eval.Evaler), tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(strings.Join(tc.codes, "\n"), func(t *testing.T) {
			t.Helper()
			ev := eval.NewEvaler()
			setup(ev)
			if tc.setup != nil {
				tc.setup(ev)
			}

			values, err := evalAndCollect(ev, tc.codes)

			if !matchValues(tc.want.values, values) {
				t.Errorf("got values %s, want %s",
					reprValues(values), reprWants(tc.want.values))
			}
			checkErr(t, tc.want, err)
			if tc.verify != nil {
				tc.verify(t)
			}
		})
	}
}

// evalAndCollect evaluates the pieces of code in order and pulls each
// output stream to exhaustion. The first error stops the evaluation;
// already collected values are still returned.
func evalAndCollect(ev *eval.Evaler, codes []string) ([]vals.Value, error) {
	var values []vals.Value
	for _, code := range codes {
		data, err := ev.Eval(parse.SourceForTest(code), eval.EvalCfg{})
		if err != nil {
			return values, err
		}
		for {
			v, ok := data.Next()
			if !ok {
				break
			}
			values = append(values, v)
		}
	}
	return values, nil
}

func checkErr(t *testing.T, want result, err error) {
	t.Helper()
	switch {
	case want.hasCompilationError:
		if !matchCompilationError(err, want.compilationError) {
			t.Errorf("got error %v, want compilation error with message %q",
				err, want.compilationError)
		}
	case want.exception != nil:
		if !matchErr(want.exception, err) {
			t.Errorf("got error %v, want %v", err, want.exception)
		}
	default:
		if err != nil {
			t.Errorf("got error %v, want none", err)
		}
	}
}

func matchCompilationError(err error, msg string) bool {
	for _, e := range eval.UnpackCompilationErrors(err) {
		if e.Message == msg {
			return true
		}
	}
	return false
}

func matchValues(wants []any, got []vals.Value) bool {
	if len(wants) != len(got) {
		return false
	}
	for i, want := range wants {
		switch want := want.(type) {
		case ValueMatcher:
			if !want.matchValue(got[i]) {
				return false
			}
		case vals.Value:
			if !vals.Equal(want, got[i]) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// wantValue converts a value given to Puts into a vals.Value, passing
// matchers through. It panics on an argument it does not understand, which
// indicates a bug in the test code itself.
func wantValue(v any) any {
	switch v := v.(type) {
	case ValueMatcher:
		return v
	case vals.Value:
		return v
	case bool:
		return vals.Bool{Val: v}
	case int:
		return vals.Int{Val: int64(v)}
	case int64:
		return vals.Int{Val: v}
	case float64:
		return vals.Float{Val: v}
	case string:
		return vals.Str{Val: v}
	case []any:
		elems := make([]vals.Value, len(v))
		for i, elem := range v {
			value, ok := wantValue(elem).(vals.Value)
			if !ok {
				panic(fmt.Sprintf("invalid value inside wanted list: %v", elem))
			}
			elems[i] = value
		}
		return vals.List{Vals: elems}
	case nil:
		return vals.Nothing{}
	}
	panic(fmt.Sprintf("invalid wanted value: %v of type %T", v, v))
}

func reprValues(vs []vals.Value) string {
	reprs := make([]string, len(vs))
	for i, v := range vs {
		reprs[i] = vals.Repr(v)
	}
	return "(" + strings.Join(reprs, " ") + ")"
}

func reprWants(vs []any) string {
	reprs := make([]string, len(vs))
	for i, v := range vs {
		if value, ok := v.(vals.Value); ok {
			reprs[i] = vals.Repr(value)
		} else {
			reprs[i] = fmt.Sprint(v)
		}
	}
	return "(" + strings.Join(reprs, " ") + ")"
}
