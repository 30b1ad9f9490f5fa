package eval

import (
	"errors"
	"strings"
	"testing"

	"src.weir.sh/pkg/diag"
)

func TestException(t *testing.T) {
	reason := errors.New("bad thing")
	exc := NewException(reason,
		diag.NewContext("[test]", "echo x", diag.Ranging{From: 0, To: 4}))

	if exc.Reason() != reason {
		t.Errorf("Reason returns %v, want %v", exc.Reason(), reason)
	}
	if exc.Error() != "bad thing" {
		t.Errorf("Error returns %q, want %q", exc.Error(), "bad thing")
	}
	show := exc.Show("")
	for _, want := range []string{"Exception:", "bad thing", "[test]"} {
		if !strings.Contains(show, want) {
			t.Errorf("Show returns %q, want it to contain %q", show, want)
		}
	}
}

func TestReason(t *testing.T) {
	raw := errors.New("raw")
	if Reason(raw) != raw {
		t.Errorf("Reason of a plain error is not the error itself")
	}
	if Reason(&Exception{reason: raw}) != raw {
		t.Errorf("Reason of an exception is not its cause")
	}
	if Reason(nil) != nil {
		t.Errorf("Reason of nil is not nil")
	}
}
