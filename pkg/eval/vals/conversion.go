package vals

import (
	"strconv"

	"src.weir.sh/pkg/eval/errs"
)

// ToString converts a value to a string. Strings convert to themselves;
// numbers and booleans to their literal spelling without sigils; Nothing to
// the empty string. Other kinds do not convert, and what names the value
// being converted in the resulting error.
func ToString(v Value, what string) (string, error) {
	switch v := v.(type) {
	case Str:
		return v.Val, nil
	case Int:
		return strconv.FormatInt(v.Val, 10), nil
	case Float:
		return reprFloat(v.Val), nil
	case Bool:
		if v.Val {
			return "true", nil
		}
		return "false", nil
	case Nothing:
		return "", nil
	default:
		return "", errs.BadValue{
			What: what, Valid: "a string, number, boolean or nothing", Actual: Kind(v)}
	}
}
