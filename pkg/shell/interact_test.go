package shell

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.weir.sh/pkg/eval"
	"src.weir.sh/pkg/must"
	"src.weir.sh/pkg/store/storedefs"
	"src.weir.sh/pkg/testutil"
)

func TestInteract_Eval(t *testing.T) {
	f := setupFds(t, "echo hello\n")

	interact(eval.NewEvaler(), f.fds(), newIntSource(), &interactCfg{ValuePrefix: "▶ "})

	stdout, stderr := f.outputs()
	if stdout != "▶ hello\n" {
		t.Errorf("got stdout %q, want %q", stdout, "▶ hello\n")
	}
	if stderr != "" {
		t.Errorf("got stderr %q, want empty", stderr)
	}
}

func TestInteract_KeepsGoingAfterError(t *testing.T) {
	f := setupFds(t, "1 / 0\necho [\n$nope\necho ok\n")

	interact(eval.NewEvaler(), f.fds(), newIntSource(), &interactCfg{})

	stdout, stderr := f.outputs()
	if stdout != "ok\n" {
		t.Errorf("got stdout %q, want %q", stdout, "ok\n")
	}
	for _, snippet := range []string{
		"divisor must be a number other than 0",
		"should be ']'",
		"variable $nope not found",
	} {
		if !strings.Contains(stderr, snippet) {
			t.Errorf("stderr %q misses %q", stderr, snippet)
		}
	}
}

func TestInteract_SourcesRC(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("rc.weir", "echo greetings")
	f := setupFds(t, "")

	interact(eval.NewEvaler(), f.fds(), newIntSource(),
		&interactCfg{ValuePrefix: "▶ ", RC: "rc.weir"})

	stdout, stderr := f.outputs()
	if stdout != "▶ greetings\n" {
		t.Errorf("got stdout %q, want %q", stdout, "▶ greetings\n")
	}
	if stderr != "" {
		t.Errorf("got stderr %q, want empty", stderr)
	}
}

func TestInteract_MissingRCIsFine(t *testing.T) {
	testutil.InTempDir(t)
	f := setupFds(t, "echo hello\n")

	interact(eval.NewEvaler(), f.fds(), newIntSource(),
		&interactCfg{RC: "nonexistent.weir"})

	stdout, stderr := f.outputs()
	if stdout != "hello\n" {
		t.Errorf("got stdout %q, want %q", stdout, "hello\n")
	}
	if stderr != "" {
		t.Errorf("got stderr %q, want empty", stderr)
	}
}

func TestInteract_BadRCDoesNotAbortSession(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("rc.weir", "1 / 0")
	f := setupFds(t, "echo hello\n")

	interact(eval.NewEvaler(), f.fds(), newIntSource(), &interactCfg{RC: "rc.weir"})

	stdout, stderr := f.outputs()
	if stdout != "hello\n" {
		t.Errorf("got stdout %q, want %q", stdout, "hello\n")
	}
	if !strings.Contains(stderr, "divisor must be a number other than 0") {
		t.Errorf("stderr %q misses the rc error", stderr)
	}
}

func TestInteract_RecordsHistory(t *testing.T) {
	st := &fakeHistoryStore{}
	f := setupFds(t, "echo a\n\necho b\nhistory\n")

	interact(eval.NewEvaler(), f.fds(), newIntSource(), &interactCfg{Store: st})

	wantCmds := []string{"echo a", "echo b", "history"}
	var gotCmds []string
	for _, cmd := range st.cmds {
		gotCmds = append(gotCmds, cmd.Text)
	}
	if len(gotCmds) != len(wantCmds) {
		t.Fatalf("got cmds %q, want %q", gotCmds, wantCmds)
	}
	for i := range wantCmds {
		if gotCmds[i] != wantCmds[i] {
			t.Errorf("cmd %d is %q, want %q", i, gotCmds[i], wantCmds[i])
		}
	}

	// The history command sees what was recorded, its own line included.
	stdout, _ := f.outputs()
	want := "a\nb\n'echo a'\n'echo b'\nhistory\n"
	if stdout != want {
		t.Errorf("got stdout %q, want %q", stdout, want)
	}
}

// fakeHistoryStore is an in-memory eval.HistoryStore.
type fakeHistoryStore struct {
	cmds []storedefs.Cmd
}

func (s *fakeHistoryStore) AddCmd(text string) (int, error) {
	seq := len(s.cmds)
	s.cmds = append(s.cmds, storedefs.Cmd{Text: text, Seq: seq})
	return seq, nil
}

func (s *fakeHistoryStore) NextCmdSeq() (int, error) { return len(s.cmds), nil }

func (s *fakeHistoryStore) CmdsWithSeq(from, upto int) ([]storedefs.Cmd, error) {
	if from < 0 {
		from = 0
	}
	if upto > len(s.cmds) {
		upto = len(s.cmds)
	}
	if from >= upto {
		return nil, nil
	}
	return s.cmds[from:upto], nil
}

// fdsFixture provides pipe-backed file descriptors for testing the
// interactive mode directly. The input is not a terminal, so the session
// runs without a prompt and the outputs can be asserted exactly.
type fdsFixture struct {
	files            [3]*os.File
	stdoutC, stderrC <-chan string
}

func setupFds(t *testing.T, stdin string) *fdsFixture {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	go func() {
		defer w0.Close()
		w0.WriteString(stdin)
	}()
	t.Cleanup(func() { r0.Close() })
	return &fdsFixture{
		files:   [3]*os.File{r0, w1, w2},
		stdoutC: collectOutput(r1),
		stderrC: collectOutput(r2),
	}
}

func collectOutput(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		r.Close()
		ch <- string(b)
	}()
	return ch
}

func (f *fdsFixture) fds() [3]*os.File { return f.files }

// outputs closes the output files and returns everything written to stdout
// and stderr. It may only be called once.
func (f *fdsFixture) outputs() (string, string) {
	f.files[1].Close()
	f.files[2].Close()
	return <-f.stdoutC, <-f.stderrC
}
