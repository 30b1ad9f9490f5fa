package eval_test

import (
	"sort"
	"testing"

	"src.weir.sh/pkg/eval"
	"src.weir.sh/pkg/parse"
)

func TestCheck_DoesNotChangeState(t *testing.T) {
	ev := eval.NewEvaler()
	if err := ev.Check(parse.SourceForTest("let x = 5")); err != nil {
		t.Fatalf("checking valid code: %v", err)
	}
	// The checked let must not have declared anything.
	if err := ev.Check(parse.SourceForTest("$x")); err == nil {
		t.Errorf("checking $x succeeds, want compilation error")
	}
}

func TestCheck_Errors(t *testing.T) {
	ev := eval.NewEvaler()
	if err := ev.Check(parse.SourceForTest("echo 'x")); parse.GetError(err) == nil {
		t.Errorf("got error %v, want parse error", err)
	}
	err := ev.Check(parse.SourceForTest("bad"))
	if eval.GetCompilationError(err) == nil {
		t.Errorf("got error %v, want compilation error", err)
	}
}

func TestEval_Interrupts(t *testing.T) {
	ev := eval.NewEvaler()
	ch := make(chan struct{})
	close(ch)
	_, err := ev.Eval(parse.SourceForTest("for x in 1.. { $x } | length"),
		eval.EvalCfg{Interrupts: ch})
	if eval.Reason(err) != eval.ErrInterrupted {
		t.Errorf("got error %v, want ErrInterrupted", err)
	}
}

func TestCommands_Sorted(t *testing.T) {
	cmds := eval.NewEvaler().Commands()
	names := make([]string, len(cmds))
	for i, cmd := range cmds {
		names[i] = cmd.Name()
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Commands returns %v, want sorted", names)
	}
	i := sort.SearchStrings(names, "for")
	if i == len(names) || names[i] != "for" {
		t.Errorf("Commands returns %v, want it to contain for", names)
	}
}
