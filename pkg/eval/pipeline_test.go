package eval

import (
	"testing"

	"src.weir.sh/pkg/diag"
	"src.weir.sh/pkg/eval/vals"
	"src.weir.sh/pkg/tt"
)

func TestCondense(t *testing.T) {
	r := diag.Ranging{From: 3, To: 7}
	one := vals.Int{Val: 4, Ranging: diag.Ranging{From: 0, To: 1}}
	two := vals.Str{Val: "x"}
	tt.Test(t, tt.Fn("condense", condense), tt.Table{
		tt.Args([]vals.Value{}, r).Rets(vals.Nothing{Ranging: r}),
		// A single value stays itself, keeping its own range.
		tt.Args([]vals.Value{one}, r).Rets(one),
		tt.Args([]vals.Value{one, two}, r).Rets(
			vals.List{Vals: []vals.Value{one, two}, Ranging: r}),
	})
}

func TestPipelineData_Expand(t *testing.T) {
	intVals := func(is ...int64) []vals.Value {
		vs := make([]vals.Value, len(is))
		for i, n := range is {
			vs[i] = vals.Int{Val: n}
		}
		return vs
	}
	list := vals.List{Vals: intVals(1, 2, 3)}

	t.Run("single list expands", func(t *testing.T) {
		d, err := dataOfValues(list).expand()
		if err != nil {
			t.Fatalf("expand: %v", err)
		}
		checkValues(t, allValues(d), intVals(1, 2, 3))
	})
	t.Run("single range expands", func(t *testing.T) {
		d, err := dataOfValues(vals.Range{
			From: vals.Int{Val: 1}, To: vals.Int{Val: 3}}).expand()
		if err != nil {
			t.Fatalf("expand: %v", err)
		}
		checkValues(t, allValues(d), intVals(1, 2, 3))
	})
	t.Run("single scalar passes through", func(t *testing.T) {
		d, err := dataOfValues(vals.Int{Val: 7}).expand()
		if err != nil {
			t.Fatalf("expand: %v", err)
		}
		checkValues(t, allValues(d), intVals(7))
	})
	t.Run("several values pass through", func(t *testing.T) {
		d, err := dataOfValues(vals.Int{Val: 7}, list).expand()
		if err != nil {
			t.Fatalf("expand: %v", err)
		}
		checkValues(t, allValues(d), []vals.Value{vals.Int{Val: 7}, list})
	})
	t.Run("empty stays empty", func(t *testing.T) {
		d, err := emptyData().expand()
		if err != nil {
			t.Fatalf("expand: %v", err)
		}
		checkValues(t, allValues(d), nil)
	})
	t.Run("malformed range fails", func(t *testing.T) {
		_, err := dataOfValues(vals.Range{
			From: vals.Int{Val: 1}, Next: vals.Int{Val: 1},
			To: vals.Int{Val: 9}}).expand()
		if err == nil {
			t.Errorf("expanding a zero-stride range succeeds, want error")
		}
	})
}

func TestCollect_Interrupt(t *testing.T) {
	fm := interruptedFrame()
	endless := dataFromPull(func() (vals.Value, bool) {
		return vals.Int{Val: 1}, true
	})
	if _, err := endless.Collect(fm); err != ErrInterrupted {
		t.Errorf("Collect returns error %v, want ErrInterrupted", err)
	}
	if err := endless.Drain(fm); err != ErrInterrupted {
		t.Errorf("Drain returns error %v, want ErrInterrupted", err)
	}
}

func TestCollect_NoInterruptChannel(t *testing.T) {
	fm := &Frame{}
	collected, err := dataOfValues(vals.Int{Val: 1}, vals.Int{Val: 2}).Collect(fm)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	checkValues(t, collected, []vals.Value{vals.Int{Val: 1}, vals.Int{Val: 2}})
}

func interruptedFrame() *Frame {
	ch := make(chan struct{})
	close(ch)
	return &Frame{intCh: ch}
}

func allValues(d PipelineData) []vals.Value {
	var vs []vals.Value
	for {
		v, ok := d.Next()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}

func checkValues(t *testing.T, got, want []vals.Value) {
	t.Helper()
	equal := len(got) == len(want)
	if equal {
		for i := range got {
			if !vals.Equal(got[i], want[i]) {
				equal = false
				break
			}
		}
	}
	if !equal {
		t.Errorf("got %d values %v, want %d values %v",
			len(got), got, len(want), want)
	}
}
