package vals

import (
	"math"
	"strconv"
	"strings"

	"src.weir.sh/pkg/parse"
)

// Repr returns a representation of the value that, for lists, strings,
// numbers, booleans and ranges, is also valid Weir source for the same
// value.
func Repr(v Value) string {
	switch v := v.(type) {
	case nil:
		return "$nothing"
	case Int:
		return strconv.FormatInt(v.Val, 10)
	case Float:
		return reprFloat(v.Val)
	case Str:
		return parse.Quote(v.Val)
	case Bool:
		if v.Val {
			return "$true"
		}
		return "$false"
	case Nothing:
		return "$nothing"
	case List:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range v.Vals {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(Repr(e))
		}
		sb.WriteByte(']')
		return sb.String()
	case Range:
		return reprRange(v)
	case Block:
		return "<block>"
	case Error:
		return "<error: " + v.Err.Error() + ">"
	default:
		return "<unknown " + v.Kind() + ">"
	}
}

func reprFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Keep the float-ness visible: 1 becomes 1.0, not 1.
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func reprRange(r Range) string {
	var sb strings.Builder
	sb.WriteString(Repr(r.From))
	if _, absent := r.Next.(Nothing); r.Next != nil && !absent {
		sb.WriteString("..")
		sb.WriteString(Repr(r.Next))
	}
	sb.WriteString("..")
	if r.Exclusive {
		sb.WriteByte('<')
	}
	if _, absent := r.To.(Nothing); r.To != nil && !absent {
		sb.WriteString(Repr(r.To))
	}
	return sb.String()
}
