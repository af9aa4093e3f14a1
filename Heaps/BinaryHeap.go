package Heaps

import (
	"golang.org/x/exp/constraints"
)

// Make a BinaryHeap ordered by cmp: the element e with cmp(e, x)>0 for all
// other x is the top. Pass a negated comparison for a min-heap, or use
// Max/Min for ordered types.
func Make[T any](cmp func(a, b T) int) *BinaryHeap[T] {
	return &BinaryHeap[T]{cmp: cmp}
}

// MakeCap is Make with room for initCap elements preallocated.
func MakeCap[T any](cmp func(a, b T) int, initCap uint) *BinaryHeap[T] {
	return &BinaryHeap[T]{data: make([]T, 0, initCap), cmp: cmp}
}

func compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Max heap of an ordered type: Pop gives the greatest element.
func Max[T constraints.Ordered]() *BinaryHeap[T] {
	return Make(compare[T])
}

// Min heap of an ordered type: Pop gives the smallest element.
func Min[T constraints.Ordered]() *BinaryHeap[T] {
	return Make(func(a, b T) int { return compare(b, a) })
}

// BinaryHeap is an implicit binary tree in a slice: the children of element i
// sit at 2i+1 and 2i+2, and no element orders above its parent. Push and Pop
// are O(log n), Peek is O(1).
type BinaryHeap[T any] struct {
	data []T
	cmp  func(a, b T) int
}

func (u *BinaryHeap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if u.cmp(u.data[i], u.data[p]) <= 0 {
			break
		}
		u.data[i], u.data[p] = u.data[p], u.data[i]
		i = p
	}
}

func (u *BinaryHeap[T]) siftDown(i int) {
	for {
		l, r, top := 2*i+1, 2*i+2, i
		if l < len(u.data) && u.cmp(u.data[l], u.data[top]) > 0 {
			top = l
		}
		if r < len(u.data) && u.cmp(u.data[r], u.data[top]) > 0 {
			top = r
		}
		if top == i {
			return
		}
		u.data[i], u.data[top] = u.data[top], u.data[i]
		i = top
	}
}

// Push item onto the heap.
// Time: O(log n)
func (u *BinaryHeap[T]) Push(item T) {
	u.data = append(u.data, item)
	u.siftUp(len(u.data) - 1)
}

// Pop the top element. Returns false iff the heap is empty.
// Time: O(log n)
func (u *BinaryHeap[T]) Pop() (T, bool) {
	if len(u.data) == 0 {
		return *new(T), false
	}
	top := u.data[0]
	last := len(u.data) - 1
	u.data[0] = u.data[last]
	u.data[last] = *new(T)
	u.data = u.data[:last]
	if last > 0 {
		u.siftDown(0)
	}
	return top, true
}

// Peek at the top element without removing it.
// Time: O(1)
func (u *BinaryHeap[T]) Peek() (T, bool) {
	if len(u.data) == 0 {
		return *new(T), false
	}
	return u.data[0], true
}

// Size of the heap.
func (u *BinaryHeap[T]) Size() uint {
	return uint(len(u.data))
}

// Empty is Size()==0.
func (u *BinaryHeap[T]) Empty() bool {
	return len(u.data) == 0
}

// Clear discards every element.
func (u *BinaryHeap[T]) Clear() {
	clear(u.data)
	u.data = u.data[:0]
}

// Drain pops everything, top first. The heap is empty afterwards.
// Time: O(n log n)
func (u *BinaryHeap[T]) Drain() []T {
	out := make([]T, 0, len(u.data))
	for v, ok := u.Pop(); ok; v, ok = u.Pop() {
		out = append(out, v)
	}
	return out
}
