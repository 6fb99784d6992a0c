package enumreflect

// As recovers the concrete value behind a type-erased field entry. It
// accepts both read entries (plain values) and mutable entries (pointers),
// dereferencing the latter, so callers can use one helper against either
// accessor family.
func As[T any](ref any) (T, bool) {
	switch v := ref.(type) {
	case T:
		return v, true
	case *T:
		if v == nil {
			break
		}
		return *v, true
	}
	var zero T
	return zero, false
}

// Set writes v through a mutable field entry. It returns false when the
// entry does not point at a T, including entries taken from the read-only
// accessors.
func Set[T any](ref any, v T) bool {
	p, ok := ref.(*T)
	if !ok || p == nil {
		return false
	}
	*p = v
	return true
}
