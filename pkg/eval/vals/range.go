package vals

import (
	"math"

	"src.weir.sh/pkg/diag"
	"src.weir.sh/pkg/eval/errs"
)

// Range is a numeric range descriptor. From is always a number; Next and To
// are numbers or Nothing. A Nothing To makes the range unbounded. The
// descriptor itself is a single value; its elements only exist when an
// iterator is asked for them.
type Range struct {
	From      Value
	Next      Value
	To        Value
	Exclusive bool
	diag.Ranging
}

func (Range) Kind() string { return "range" }

// Iterator validates the descriptor and returns an iterator over its
// elements. All validation happens here, before any element is produced: a
// zero stride or a stride pointing away from the upper bound is an error
// even if the first element would have been well-defined.
func (r Range) Iterator() (*RangeIterator, error) {
	from, err := rangeBound(r.From, "range lower bound")
	if err != nil {
		return nil, err
	}
	next, err := rangeBound(r.Next, "range stride point")
	if err != nil {
		return nil, err
	}
	to, err := rangeBound(r.To, "range upper bound")
	if err != nil {
		return nil, err
	}
	it := &RangeIterator{
		isFloat:   from.isFloat || next.present && next.isFloat || to.present && to.isFloat,
		bounded:   to.present,
		exclusive: r.Exclusive,
		span:      r.Range(),
	}
	if it.isFloat {
		it.fcur, it.fbound = from.float(), to.float()
		switch {
		case next.present:
			it.fstride = next.float() - from.float()
		case to.present && to.float() < from.float():
			it.fstride = -1
		default:
			it.fstride = 1
		}
		if it.fstride == 0 {
			return nil, errs.BadValue{
				What: "range stride", Valid: "a non-zero number", Actual: "0"}
		}
		if to.present {
			err := checkStrideDirection(it.fstride < 0, to.float() < from.float(), Repr(Float{Val: it.fstride}))
			if err != nil {
				return nil, err
			}
		}
	} else {
		it.icur, it.ibound = from.i, to.i
		switch {
		case next.present:
			it.istride = next.i - from.i
		case to.present && to.i < from.i:
			it.istride = -1
		default:
			it.istride = 1
		}
		if it.istride == 0 {
			return nil, errs.BadValue{
				What: "range stride", Valid: "a non-zero number", Actual: "0"}
		}
		if to.present {
			err := checkStrideDirection(it.istride < 0, to.i < from.i, Repr(Int{Val: it.istride}))
			if err != nil {
				return nil, err
			}
		}
	}
	return it, nil
}

func checkStrideDirection(strideNegative, descending bool, stride string) error {
	if descending && !strideNegative {
		return errs.BadValue{
			What: "stride of a descending range", Valid: "a negative number", Actual: stride}
	}
	if !descending && strideNegative {
		return errs.BadValue{
			What: "stride of an ascending range", Valid: "a positive number", Actual: stride}
	}
	return nil
}

type boundNum struct {
	present bool
	isFloat bool
	i       int64
	f       float64
}

func (b boundNum) float() float64 {
	if b.isFloat {
		return b.f
	}
	return float64(b.i)
}

func rangeBound(v Value, what string) (boundNum, error) {
	switch v := v.(type) {
	case nil, Nothing:
		return boundNum{}, nil
	case Int:
		return boundNum{present: true, i: v.Val}, nil
	case Float:
		return boundNum{present: true, isFloat: true, f: v.Val}, nil
	default:
		return boundNum{}, errs.BadValue{What: what, Valid: "a number", Actual: Kind(v)}
	}
}

// RangeIterator produces the elements of a Range one at a time. Elements
// carry the range expression's source range.
type RangeIterator struct {
	isFloat   bool
	bounded   bool
	exclusive bool
	done      bool

	icur, istride, ibound int64
	fcur, fstride, fbound float64

	span diag.Ranging
}

// Next returns the next element of the range, or false if the range is
// exhausted. An unbounded iterator never returns false.
func (it *RangeIterator) Next() (Value, bool) {
	if it.done {
		return nil, false
	}
	if it.isFloat {
		return it.nextFloat()
	}
	return it.nextInt()
}

func (it *RangeIterator) nextInt() (Value, bool) {
	cur := it.icur
	if it.bounded {
		past := false
		if it.istride > 0 {
			past = cur > it.ibound || it.exclusive && cur == it.ibound
		} else {
			past = cur < it.ibound || it.exclusive && cur == it.ibound
		}
		if past {
			it.done = true
			return nil, false
		}
	}
	// Stepping past the int64 end would wrap around, so stop instead.
	if it.istride > 0 && cur > math.MaxInt64-it.istride ||
		it.istride < 0 && cur < math.MinInt64-it.istride {
		it.done = true
	} else {
		it.icur = cur + it.istride
	}
	return Int{cur, it.span}, true
}

func (it *RangeIterator) nextFloat() (Value, bool) {
	cur := it.fcur
	if it.bounded {
		past := false
		if it.fstride > 0 {
			past = cur > it.fbound || it.exclusive && cur == it.fbound
		} else {
			past = cur < it.fbound || it.exclusive && cur == it.fbound
		}
		if past {
			it.done = true
			return nil, false
		}
	}
	it.fcur = cur + it.fstride
	return Float{cur, it.span}, true
}
