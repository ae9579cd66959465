package ptr

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// ValueOr dereferences p, or returns fallback when the field was absent.
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
