package util

// CloneSliceFunc returns a new slice whose elements are produced by applying
// copy to each element of slice. A nil slice clones to nil.
func CloneSliceFunc[T any](slice []T, copy func(T) T) (out []T) {
	if slice == nil {
		return nil
	}

	out = make([]T, 0, len(slice))
	for _, item := range slice {
		out = append(out, copy(item))
	}

	return out
}
