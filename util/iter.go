package util

import "iter"

// SeqOf returns a sequence over items in order.
func SeqOf[T any](items ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// SeqIsSorted reports whether seq yields its elements in non-decreasing
// order under less.
func SeqIsSorted[T any](seq iter.Seq[T], less func(a, b T) bool) bool {
	var prev Optional[T]
	for item := range seq {
		if prevItem, exists := prev.Unpack(); exists && less(item, prevItem) {
			return false
		}
		prev = Some(item)
	}
	return true
}
