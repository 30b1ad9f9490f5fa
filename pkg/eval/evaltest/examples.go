package evaltest

import (
	"testing"

	"src.weir.sh/pkg/eval"
	"src.weir.sh/pkg/eval/vals"
	"src.weir.sh/pkg/parse"
)

// CheckExamples checks the examples of all built-in commands. Examples that
// declare a result are evaluated on a fresh Evaler and must produce that
// result; examples that are only illustrative must at least compile.
func CheckExamples(t *testing.T) {
	t.Helper()
	for _, cmd := range eval.NewEvaler().Commands() {
		for _, ex := range cmd.Examples() {
			t.Run(cmd.Name()+"/"+ex.Code, func(t *testing.T) {
				t.Helper()
				checkExample(t, ex)
			})
		}
	}
}

func checkExample(t *testing.T, ex eval.Example) {
	ev := eval.NewEvaler()
	src := parse.SourceForTest(ex.Code)
	if ex.Result == nil {
		if err := ev.Check(src); err != nil {
			t.Errorf("example does not compile: %v", err)
		}
		return
	}
	data, err := ev.Eval(src, eval.EvalCfg{})
	if err != nil {
		t.Errorf("example evaluates with error %v", err)
		return
	}
	var collected []vals.Value
	for {
		v, ok := data.Next()
		if !ok {
			break
		}
		collected = append(collected, v)
	}
	got := condenseValues(collected)
	if !vals.Equal(got, ex.Result) {
		t.Errorf("example evaluates to %s, want %s",
			vals.Repr(got), vals.Repr(ex.Result))
	}
}

// condenseValues mirrors how the shell presents the output of a chunk as a
// single value: no values is nothing, one value is itself, more is a list.
func condenseValues(vs []vals.Value) vals.Value {
	switch len(vs) {
	case 0:
		return vals.Nothing{}
	case 1:
		return vs[0]
	default:
		return vals.List{Vals: vs}
	}
}
