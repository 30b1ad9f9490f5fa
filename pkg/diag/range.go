// Package diag contains building blocks for attaching provenance to values
// and errors, and for rendering them against the source code they came from.
package diag

// Ranger wraps the Range method.
type Ranger interface {
	// Range returns the range associated with the value.
	Range() Ranging
}

// Ranging is a byte range [From, To) within a source text. Structs can embed
// Ranging to satisfy the [Ranger] interface.
//
// Calling this type Range would read better, but then embedding structs would
// gain a Range field rather than a Range method and fail to implement
// [Ranger].
type Ranging struct {
	From int
	To   int
}

// Unknown is the range of values that did not come from any source text, such
// as values synthesized by the runtime.
var Unknown = Ranging{-1, -1}

// Range returns the Ranging itself.
func (r Ranging) Range() Ranging { return r }

// IsKnown reports whether r refers to an actual piece of source text.
func (r Ranging) IsKnown() bool { return r.From >= 0 }

// PointRanging returns a zero-width Ranging at the given point.
func PointRanging(p int) Ranging {
	return Ranging{p, p}
}

// MixedRanging returns a Ranging from the start position of a to the end
// position of b.
func MixedRanging(a, b Ranger) Ranging {
	return Ranging{a.Range().From, b.Range().To}
}
