// Package heap implements an array-backed binary heap parameterized by an
// ordering function. The element for which the ordering function reports
// "less" against all others sits at the root, so the default natural
// ordering yields a min-heap; supplying a greater-than function yields a
// max-heap.
package heap

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"

	"github.com/navijation/njheap/util"
)

// ErrEmptyHeap is returned by Top and Pop when called on a heap with no
// elements.
var ErrEmptyHeap = errors.New("heap is empty")

// LessFunc reports whether a must sort before b. It must describe a total
// strict-weak ordering over the element type; if both LessFunc(a, b) and
// LessFunc(b, a) are false the elements are considered equal.
type LessFunc[T any] func(a, b T) bool

// Heap owns a contiguous slice of elements interpreted as a complete binary
// tree in level order, where no parent sorts after either of its children.
// Elements are never exposed for external mutation in place; observers return
// copies. The zero value is not usable; construct with New or NewFunc. Not
// safe for unsynchronized concurrent use.
type Heap[T any] struct {
	less  LessFunc[T]
	items []T
}

// New returns a heap over items using the natural ascending ordering, i.e. a
// min-heap.
func New[T cmp.Ordered](items ...T) Heap[T] {
	return NewFunc(cmp.Less[T], items...)
}

// NewFunc returns a heap over items ordered by less.
func NewFunc[T any](less LessFunc[T], items ...T) Heap[T] {
	out := Heap[T]{
		less:  less,
		items: append([]T(nil), items...),
	}
	out.establish()
	return out
}

// Size returns the number of elements in the heap.
func (me *Heap[T]) Size() int {
	return len(me.items)
}

// Empty reports whether the heap has no elements.
func (me *Heap[T]) Empty() bool {
	return len(me.items) == 0
}

// Push adds value to the heap.
func (me *Heap[T]) Push(value T) {
	me.items = append(me.items, value)
	me.siftUp(len(me.items) - 1)
}

// Pop removes and returns the extreme element. It fails with ErrEmptyHeap on
// an empty heap.
func (me *Heap[T]) Pop() (out T, _ error) {
	if me.Empty() {
		return out, ErrEmptyHeap
	}

	last := len(me.items) - 1
	me.items[0], me.items[last] = me.items[last], me.items[0]
	out = me.items[last]

	// clear the vacated slot so the backing array does not keep the popped
	// element reachable
	var zero T
	me.items[last] = zero
	me.items = me.items[:last]

	if last > 0 {
		me.siftDown(0)
	}
	return out, nil
}

// Top returns the extreme element without removing it. It fails with
// ErrEmptyHeap on an empty heap.
func (me *Heap[T]) Top() (out T, _ error) {
	if me.Empty() {
		return out, ErrEmptyHeap
	}
	return me.items[0], nil
}

// Peek is the non-failing variant of Top.
func (me *Heap[T]) Peek() util.Optional[T] {
	if me.Empty() {
		return util.None[T]()
	}
	return util.Some(me.items[0])
}

// Heapify discards all current elements and replaces them with a copy of
// items, then restores heap order bottom-up. The aggregate cost is O(n), not
// O(n log n).
func (me *Heap[T]) Heapify(items []T) {
	me.items = append(me.items[:0], items...)
	me.establish()
}

// establish restores heap order over the whole slice by sifting every index
// down, last to first. Sifting a node down is only valid once both of its
// subtrees are already heaps, which decreasing-index order guarantees.
func (me *Heap[T]) establish() {
	for i := len(me.items) - 1; i >= 0; i-- {
		me.siftDown(i)
	}
}

// IsHeap reports whether every parent sorts no later than each of its
// children. O(n); useful as a test oracle.
func (me *Heap[T]) IsHeap() bool {
	for i := range me.items {
		if me.hasLeftChild(i) && me.less(me.leftChild(i), me.items[i]) {
			return false
		}
		if me.hasRightChild(i) && me.less(me.rightChild(i), me.items[i]) {
			return false
		}
	}
	return true
}

// Grow reserves capacity for at least n more elements.
func (me *Heap[T]) Grow(n int) {
	me.items = slices.Grow(me.items, n)
}

// Clone returns a heap with the same ordering function and an independent
// copy of the elements.
func (me *Heap[T]) Clone() Heap[T] {
	return Heap[T]{
		less:  me.less,
		items: util.CloneSliceFunc(me.items, func(item T) T { return item }),
	}
}

// Items returns a copy of the underlying slice in level order. The copy is
// independent of the heap.
func (me *Heap[T]) Items() []T {
	return append([]T(nil), me.items...)
}
