// Package merge combines multiple sorted inputs into one sorted stream using
// a heap of per-source cursors.
package merge

import (
	"iter"

	"github.com/navijation/njheap/heap"
	"github.com/navijation/njheap/util"
)

type cursor[T any] struct {
	current T
	source  int
	next    func() (T, bool)
}

type MuxArgs[T any] struct {
	Less heap.LessFunc[T]

	// Emit only the first of a run of equivalent elements. Two elements are
	// equivalent when Less reports false in both directions.
	SkipDuplicates bool
}

// Mux merges sorted sources element by element. Each source must already be
// sorted under the same ordering; ties across sources go to the earlier
// source, so the merge is stable.
type Mux[T any] struct {
	heap        heap.Heap[cursor[T]]
	less        heap.LessFunc[T]
	sourceCount int

	skipDuplicates bool
	lastEmitted    util.Optional[T]
}

func NewMux[T any](args MuxArgs[T]) Mux[T] {
	less := args.Less
	return Mux[T]{
		heap: heap.NewFunc(func(a, b cursor[T]) bool {
			if less(a.current, b.current) {
				return true
			}
			if less(b.current, a.current) {
				return false
			}
			return a.source < b.source
		}),
		less:           less,
		skipDuplicates: args.SkipDuplicates,
	}
}

// AddSource registers a pull function yielding the source's elements in
// sorted order. An immediately-exhausted source is dropped.
func (me *Mux[T]) AddSource(next func() (T, bool)) {
	source := me.sourceCount
	me.sourceCount++

	item, hasNext := next()
	if !hasNext {
		return
	}

	me.heap.Push(cursor[T]{
		current: item,
		source:  source,
		next:    next,
	})
}

// Next returns the smallest element not yet emitted across all sources.
func (me *Mux[T]) Next() (out T, hasNext bool) {
	for !me.heap.Empty() {
		entry, err := me.heap.Pop()
		util.AssertNoError(err)

		if item, hasNext := entry.next(); hasNext {
			me.heap.Push(cursor[T]{
				current: item,
				source:  entry.source,
				next:    entry.next,
			})
		}

		if me.skipDuplicates {
			if last, exists := me.lastEmitted.Unpack(); exists && me.equivalent(entry.current, last) {
				continue
			}
			me.lastEmitted = util.Some(entry.current)
		}

		return entry.current, true
	}

	return out, false
}

func (me *Mux[T]) equivalent(a, b T) bool {
	return !me.less(a, b) && !me.less(b, a)
}

// Seqs merges sorted sequences into one sorted sequence under less.
func Seqs[T any](less heap.LessFunc[T], seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		mux := NewMux(MuxArgs[T]{Less: less})

		for _, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()

			mux.AddSource(next)
		}

		for {
			item, hasNext := mux.Next()
			if !hasNext {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}
