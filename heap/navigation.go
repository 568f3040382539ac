package heap

import "github.com/navijation/njheap/util"

func leftChildIndex(index int) int {
	return 2*index + 1
}

func rightChildIndex(index int) int {
	return 2*index + 2
}

func parentIndex(index int) int {
	return (index - 1) / 2
}

func (me *Heap[T]) hasLeftChild(index int) bool {
	return leftChildIndex(index) < len(me.items)
}

func (me *Heap[T]) hasRightChild(index int) bool {
	return rightChildIndex(index) < len(me.items)
}

// A node has a parent iff it is not the root. Checking against the container
// size here would make the root its own parent under truncating division.
func (me *Heap[T]) hasParent(index int) bool {
	return index > 0
}

func (me *Heap[T]) leftChild(index int) T {
	util.Assert(me.hasLeftChild(index), "node %d has no left child", index)
	return me.items[leftChildIndex(index)]
}

func (me *Heap[T]) rightChild(index int) T {
	util.Assert(me.hasRightChild(index), "node %d has no right child", index)
	return me.items[rightChildIndex(index)]
}

func (me *Heap[T]) parentOf(index int) T {
	util.Assert(me.hasParent(index), "node %d has no parent", index)
	return me.items[parentIndex(index)]
}
