package heap

// siftUp moves the element at index toward the root while it sorts before its
// parent. This is the only path by which an element moves rootward.
func (me *Heap[T]) siftUp(index int) {
	for me.hasParent(index) && me.less(me.items[index], me.parentOf(index)) {
		parent := parentIndex(index)
		me.items[index], me.items[parent] = me.items[parent], me.items[index]
		index = parent
	}
}

// siftDown moves the element at index toward the leaves while the
// earlier-sorting of its children sorts before it.
func (me *Heap[T]) siftDown(index int) {
	for me.hasLeftChild(index) {
		candidate := leftChildIndex(index)
		if me.hasRightChild(index) && me.less(me.rightChild(index), me.leftChild(index)) {
			candidate = rightChildIndex(index)
		}

		if !me.less(me.items[candidate], me.items[index]) {
			break
		}

		me.items[index], me.items[candidate] = me.items[candidate], me.items[index]
		index = candidate
	}
}
