package vals

// Equal returns whether two values are equal. Source ranges are ignored:
// two values are equal if they denote the same data, regardless of where
// they came from. Ints and floats compare across kinds by numeric value;
// all other cross-kind comparisons are false.
func Equal(x, y Value) bool {
	switch x := x.(type) {
	case nil:
		return y == nil
	case Int:
		switch y := y.(type) {
		case Int:
			return x.Val == y.Val
		case Float:
			return float64(x.Val) == y.Val
		}
	case Float:
		switch y := y.(type) {
		case Int:
			return x.Val == float64(y.Val)
		case Float:
			return x.Val == y.Val
		}
	case Str:
		if y, ok := y.(Str); ok {
			return x.Val == y.Val
		}
	case Bool:
		if y, ok := y.(Bool); ok {
			return x.Val == y.Val
		}
	case Nothing:
		_, ok := y.(Nothing)
		return ok
	case List:
		y, ok := y.(List)
		if !ok || len(x.Vals) != len(y.Vals) {
			return false
		}
		for i, xv := range x.Vals {
			if !Equal(xv, y.Vals[i]) {
				return false
			}
		}
		return true
	case Range:
		y, ok := y.(Range)
		return ok && x.Exclusive == y.Exclusive &&
			equalBound(x.From, y.From) && equalBound(x.Next, y.Next) && equalBound(x.To, y.To)
	case Block:
		y, ok := y.(Block)
		return ok && x.ID == y.ID
	case Error:
		y, ok := y.(Error)
		return ok && x.Err.Error() == y.Err.Error()
	}
	return false
}

func equalBound(x, y Value) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return Equal(x, y)
}
