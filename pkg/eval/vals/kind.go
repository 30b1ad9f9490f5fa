package vals

// Kind returns the kind of a value, or "nil" for a nil Value.
func Kind(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind()
}
