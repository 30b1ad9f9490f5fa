package vals

import (
	"testing"

	"src.weir.sh/pkg/tt"
)

var Args = tt.Args

// rangeElems collects up to max elements of r, failing the test if the
// descriptor does not validate.
func rangeElems(t *testing.T, r Range, max int) []string {
	t.Helper()
	it, err := r.Iterator()
	if err != nil {
		t.Fatalf("Iterator() -> error %v, want nil", err)
	}
	var reprs []string
	for len(reprs) < max {
		v, ok := it.Next()
		if !ok {
			break
		}
		reprs = append(reprs, Repr(v))
	}
	return reprs
}
