package patch

// Coalesce dereferences ptr when set, falling back otherwise. Optional request
// fields arrive as pointers; this keeps the unwrapping in one place.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
