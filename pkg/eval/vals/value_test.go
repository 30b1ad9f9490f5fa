package vals

import (
	"errors"
	"testing"

	"src.weir.sh/pkg/diag"
	"src.weir.sh/pkg/tt"
)

func TestKind(t *testing.T) {
	tt.Test(t, tt.Fn("Kind", Kind), tt.Table{
		Args(Int{Val: 1}).Rets("int"),
		Args(Float{Val: 1.5}).Rets("float"),
		Args(Str{Val: "x"}).Rets("string"),
		Args(Bool{Val: true}).Rets("bool"),
		Args(Nothing{}).Rets("nothing"),
		Args(List{}).Rets("list"),
		Args(Range{From: Int{Val: 0}}).Rets("range"),
		Args(Block{ID: 0}).Rets("block"),
		Args(Error{Err: errors.New("bad")}).Rets("error"),
		Args(nil).Rets("nil"),
	})
}

func TestWithRange(t *testing.T) {
	r := diag.Ranging{From: 3, To: 7}
	values := []Value{
		Int{Val: 1}, Float{Val: 1.5}, Str{Val: "x"}, Bool{Val: true},
		Nothing{}, List{Vals: []Value{Int{Val: 1}}},
		Range{From: Int{Val: 0}, To: Int{Val: 2}},
		Block{ID: 4}, Error{Err: errors.New("bad")},
	}
	for _, v := range values {
		got := WithRange(v, r)
		if got.Range() != r {
			t.Errorf("WithRange(%s, %v).Range() = %v, want %v", Kind(v), r, got.Range(), r)
		}
		if !Equal(got, v) {
			t.Errorf("WithRange(%s, %v) changed the value", Kind(v), r)
		}
	}
}

func TestMakers(t *testing.T) {
	r := diag.Ranging{From: 1, To: 2}
	tt.Test(t, tt.Fn("Repr", Repr), tt.Table{
		Args(MakeInt(42, r)).Rets("42"),
		Args(MakeFloat(0.5, r)).Rets("0.5"),
		Args(MakeStr("x", r)).Rets("x"),
		Args(MakeBool(false, r)).Rets("$false"),
		Args(MakeNothing(r)).Rets("$nothing"),
		Args(MakeList(r, MakeInt(1, r), MakeInt(2, r))).Rets("[1 2]"),
	})
	if got := MakeList(r).Range(); got != r {
		t.Errorf("MakeList(r).Range() = %v, want %v", got, r)
	}
}
