// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.weir.sh/pkg/store/storedefs"
)

var cmds = []string{"echo foo", "put bar", "put lorem", "echo bar"}

var searches = []struct {
	next   bool
	seq    int
	prefix string

	wantCmd storedefs.Cmd
	wantErr error
}{
	{true, 0, "", storedefs.Cmd{Text: "echo foo", Seq: 1}, nil},
	{true, 2, "put", storedefs.Cmd{Text: "put bar", Seq: 2}, nil},
	{true, 3, "put", storedefs.Cmd{Text: "put lorem", Seq: 3}, nil},
	{true, 4, "put", storedefs.Cmd{}, storedefs.ErrNoMatchingCmd},
	{true, 0, "absent", storedefs.Cmd{}, storedefs.ErrNoMatchingCmd},

	{false, 5, "", storedefs.Cmd{Text: "echo bar", Seq: 4}, nil},
	{false, 5, "echo", storedefs.Cmd{Text: "echo bar", Seq: 4}, nil},
	{false, 4, "echo", storedefs.Cmd{Text: "echo foo", Seq: 1}, nil},
	{false, 1, "echo", storedefs.Cmd{}, storedefs.ErrNoMatchingCmd},
	{false, 100, "put", storedefs.Cmd{Text: "put lorem", Seq: 3}, nil},
}

// TestCmd tests the command history part of a fresh Store.
func TestCmd(t *testing.T, store storedefs.Store) {
	t.Helper()

	if seq := mustNextCmdSeq(t, store); seq != 1 {
		t.Errorf("NextCmdSeq() of fresh store = %v, want 1", seq)
	}

	for _, cmd := range cmds {
		wantSeq := mustNextCmdSeq(t, store)
		seq, err := store.AddCmd(cmd)
		if seq != wantSeq || err != nil {
			t.Errorf("AddCmd(%q) = (%v, %v), want (%v, nil)", cmd, seq, err, wantSeq)
		}
	}

	if seq := mustNextCmdSeq(t, store); seq != len(cmds)+1 {
		t.Errorf("NextCmdSeq() after adding = %v, want %v", seq, len(cmds)+1)
	}

	text, err := store.Cmd(2)
	if text != "put bar" || err != nil {
		t.Errorf(`Cmd(2) = (%q, %v), want ("put bar", nil)`, text, err)
	}
	if _, err := store.Cmd(100); !matchErr(err, storedefs.ErrNoMatchingCmd) {
		t.Errorf("Cmd(100) returns error %v, want ErrNoMatchingCmd", err)
	}

	testCmdsWithSeq(t, store, 1, 5, []storedefs.Cmd{
		{Text: "echo foo", Seq: 1},
		{Text: "put bar", Seq: 2},
		{Text: "put lorem", Seq: 3},
		{Text: "echo bar", Seq: 4},
	})
	testCmdsWithSeq(t, store, 2, 4, []storedefs.Cmd{
		{Text: "put bar", Seq: 2},
		{Text: "put lorem", Seq: 3},
	})
	testCmdsWithSeq(t, store, 5, 100, nil)

	for _, s := range searches {
		var (
			name string
			cmd  storedefs.Cmd
			err  error
		)
		if s.next {
			name = "NextCmd"
			cmd, err = store.NextCmd(s.seq, s.prefix)
		} else {
			name = "PrevCmd"
			cmd, err = store.PrevCmd(s.seq, s.prefix)
		}
		if cmd != s.wantCmd || !matchErr(err, s.wantErr) {
			t.Errorf("%s(%v, %q) = (%v, %v), want (%v, %v)",
				name, s.seq, s.prefix, cmd, err, s.wantCmd, s.wantErr)
		}
	}

	if err := store.DelCmd(2); err != nil {
		t.Errorf("DelCmd(2) returns error %v", err)
	}
	if _, err := store.Cmd(2); !matchErr(err, storedefs.ErrNoMatchingCmd) {
		t.Errorf("Cmd(2) after deletion returns error %v, want ErrNoMatchingCmd", err)
	}
	testCmdsWithSeq(t, store, 1, 5, []storedefs.Cmd{
		{Text: "echo foo", Seq: 1},
		{Text: "put lorem", Seq: 3},
		{Text: "echo bar", Seq: 4},
	})
	// Deletion does not reuse sequence numbers.
	if seq := mustNextCmdSeq(t, store); seq != len(cmds)+1 {
		t.Errorf("NextCmdSeq() after deletion = %v, want %v", seq, len(cmds)+1)
	}
	// Deleting a sequence number that does not exist is not an error.
	if err := store.DelCmd(100); err != nil {
		t.Errorf("DelCmd(100) returns error %v", err)
	}
}

func testCmdsWithSeq(t *testing.T, store storedefs.Store, from, upto int, want []storedefs.Cmd) {
	t.Helper()
	cmds, err := store.CmdsWithSeq(from, upto)
	if err != nil {
		t.Errorf("CmdsWithSeq(%v, %v) returns error %v", from, upto, err)
	}
	if diff := cmp.Diff(want, cmds); diff != "" {
		t.Errorf("CmdsWithSeq(%v, %v) returns commands (-want +got):\n%s", from, upto, diff)
	}
}

func mustNextCmdSeq(t *testing.T, store storedefs.Store) int {
	t.Helper()
	seq, err := store.NextCmdSeq()
	if err != nil {
		t.Fatalf("NextCmdSeq() returns error %v", err)
	}
	return seq
}

func matchErr(e1, e2 error) bool {
	return (e1 == nil && e2 == nil) || (e1 != nil && e2 != nil && e1.Error() == e2.Error())
}
