// Package pqueue provides a priority-queue facade over the heap package.
package pqueue

import (
	"github.com/navijation/njheap/heap"
	"github.com/navijation/njheap/util"
)

type PriorityQueue[T any] struct {
	h heap.Heap[T]
}

// NewPriorityQueue returns a queue ordered by less, with room reserved for
// capacity elements beyond the seed.
func NewPriorityQueue[T any](less heap.LessFunc[T], capacity int, seed ...T) PriorityQueue[T] {
	out := PriorityQueue[T]{
		h: heap.NewFunc(less, seed...),
	}
	out.h.Grow(capacity)
	return out
}

func (me *PriorityQueue[T]) Enqueue(item T) {
	me.h.Push(item)
}

// Dequeue removes and returns the highest-priority item. It fails with
// heap.ErrEmptyHeap on an empty queue.
func (me *PriorityQueue[T]) Dequeue() (T, error) {
	return me.h.Pop()
}

// Peek returns the highest-priority item without removing it. It fails with
// heap.ErrEmptyHeap on an empty queue.
func (me *PriorityQueue[T]) Peek() (T, error) {
	return me.h.Top()
}

// PeekOpt is the non-failing variant of Peek.
func (me *PriorityQueue[T]) PeekOpt() util.Optional[T] {
	return me.h.Peek()
}

func (me *PriorityQueue[T]) Len() int {
	return me.h.Size()
}

func (me *PriorityQueue[T]) Empty() bool {
	return me.h.Empty()
}
