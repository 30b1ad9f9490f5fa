package eval_test

import (
	"testing"

	"src.weir.sh/pkg/eval"
	. "src.weir.sh/pkg/eval/evaltest"
	"src.weir.sh/pkg/store/storedefs"
)

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

func TestHistory(t *testing.T) {
	st := &fakeHistoryStore{}
	st.AddCmd("echo first")
	st.AddCmd("echo second")
	useStore := func(ev *eval.Evaler) { ev.HistoryStore = st }

	Test(t,
		That("history").WithSetup(useStore).Puts("echo first", "echo second"),
		That("history | length").WithSetup(useStore).Puts(2),
		// An Evaler without a store has no history to show.
		That("history").Throws(ErrorWithMessage("no history store")),
	)
}
