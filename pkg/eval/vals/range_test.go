package vals

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.weir.sh/pkg/diag"
	"src.weir.sh/pkg/eval/errs"
)

var rangeIterationTests = []struct {
	name string
	r    Range
	want []string
}{
	{"ascending", Range{From: Int{Val: 1}, To: Int{Val: 3}}, []string{"1", "2", "3"}},
	{"ascending exclusive", Range{From: Int{Val: 1}, To: Int{Val: 3}, Exclusive: true},
		[]string{"1", "2"}},
	{"descending", Range{From: Int{Val: 3}, To: Int{Val: 1}}, []string{"3", "2", "1"}},
	{"descending exclusive", Range{From: Int{Val: 3}, To: Int{Val: 1}, Exclusive: true},
		[]string{"3", "2"}},
	{"single element", Range{From: Int{Val: 2}, To: Int{Val: 2}}, []string{"2"}},
	{"empty exclusive", Range{From: Int{Val: 2}, To: Int{Val: 2}, Exclusive: true}, nil},
	{"explicit stride", Range{From: Int{Val: 1}, Next: Int{Val: 3}, To: Int{Val: 9}},
		[]string{"1", "3", "5", "7", "9"}},
	{"stride overshooting bound", Range{From: Int{Val: 1}, Next: Int{Val: 3}, To: Int{Val: 8}},
		[]string{"1", "3", "5", "7"}},
	{"negative stride", Range{From: Int{Val: 10}, Next: Int{Val: 8}, To: Int{Val: 4}},
		[]string{"10", "8", "6", "4"}},
	{"negative bounds", Range{From: Int{Val: -2}, To: Int{Val: 1}},
		[]string{"-2", "-1", "0", "1"}},
	{"float bounds", Range{From: Float{Val: 0.5}, To: Int{Val: 3}},
		[]string{"0.5", "1.5", "2.5"}},
	{"float stride", Range{From: Int{Val: 0}, Next: Float{Val: 0.5}, To: Int{Val: 1}},
		[]string{"0.0", "0.5", "1.0"}},
}

func TestRangeIterator(t *testing.T) {
	for _, test := range rangeIterationTests {
		t.Run(test.name, func(t *testing.T) {
			got := rangeElems(t, test.r, 100)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("elements of %s (-want +got):\n%s", Repr(test.r), diff)
			}
		})
	}
}

func TestRangeIterator_Unbounded(t *testing.T) {
	// An unbounded range produces elements for as long as the consumer asks.
	got := rangeElems(t, Range{From: Int{Val: 5}}, 4)
	want := []string{"5", "6", "7", "8"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("elements (-want +got):\n%s", diff)
	}

	got = rangeElems(t, Range{From: Int{Val: 0}, Next: Int{Val: -2}}, 3)
	want = []string{"0", "-2", "-4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("elements (-want +got):\n%s", diff)
	}
}

var rangeValidationTests = []struct {
	name    string
	r       Range
	wantErr error
}{
	{"zero stride",
		Range{From: Int{Val: 1}, Next: Int{Val: 1}, To: Int{Val: 5}},
		errs.BadValue{What: "range stride", Valid: "a non-zero number", Actual: "0"}},
	{"zero stride unbounded",
		Range{From: Int{Val: 1}, Next: Int{Val: 1}},
		errs.BadValue{What: "range stride", Valid: "a non-zero number", Actual: "0"}},
	{"zero float stride",
		Range{From: Float{Val: 1}, Next: Float{Val: 1}, To: Int{Val: 5}},
		errs.BadValue{What: "range stride", Valid: "a non-zero number", Actual: "0"}},
	{"negative stride on ascending range",
		Range{From: Int{Val: 1}, Next: Int{Val: 0}, To: Int{Val: 5}},
		errs.BadValue{What: "stride of an ascending range", Valid: "a positive number", Actual: "-1"}},
	{"positive stride on descending range",
		Range{From: Int{Val: 5}, Next: Int{Val: 7}, To: Int{Val: 1}},
		errs.BadValue{What: "stride of a descending range", Valid: "a negative number", Actual: "2"}},
	{"non-numeric lower bound",
		Range{From: Str{Val: "a"}, To: Int{Val: 5}},
		errs.BadValue{What: "range lower bound", Valid: "a number", Actual: "string"}},
	{"non-numeric upper bound",
		Range{From: Int{Val: 1}, To: List{}},
		errs.BadValue{What: "range upper bound", Valid: "a number", Actual: "list"}},
}

func TestRangeIterator_Validation(t *testing.T) {
	for _, test := range rangeValidationTests {
		t.Run(test.name, func(t *testing.T) {
			// Validation happens when the iterator is made, before any
			// element is produced.
			it, err := test.r.Iterator()
			if it != nil {
				t.Errorf("Iterator() -> iterator %v, want nil", it)
			}
			if err == nil || err.Error() != test.wantErr.Error() {
				t.Errorf("Iterator() -> error %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestRangeIterator_ElementRanges(t *testing.T) {
	// Elements synthesized from a range carry the range expression's source
	// range, so errors about an element can still point at code.
	span := diag.Ranging{From: 10, To: 14}
	it, err := Range{From: Int{Val: 1}, To: Int{Val: 2}, Ranging: span}.Iterator()
	if err != nil {
		t.Fatalf("Iterator() -> error %v", err)
	}
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if v.Range() != span {
			t.Errorf("element %s has range %v, want %v", Repr(v), v.Range(), span)
		}
	}
}

func TestRangeIterator_ExhaustedStaysExhausted(t *testing.T) {
	it, err := Range{From: Int{Val: 1}, To: Int{Val: 1}}.Iterator()
	if err != nil {
		t.Fatalf("Iterator() -> error %v", err)
	}
	it.Next()
	for i := 0; i < 3; i++ {
		if v, ok := it.Next(); ok {
			t.Errorf("Next() after exhaustion -> %s, true; want _, false", Repr(v))
		}
	}
}
