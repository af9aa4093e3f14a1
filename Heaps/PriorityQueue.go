package Heaps

import (
	"golang.org/x/exp/constraints"
)

type pqItem[T any, P constraints.Ordered] struct {
	item T
	prio P
}

// MaxPQ is a PriorityQueue where Pop gives the item with the greatest
// priority. Ties pop in unspecified order.
func MaxPQ[T any, P constraints.Ordered]() *PriorityQueue[T, P] {
	return &PriorityQueue[T, P]{Make(func(a, b pqItem[T, P]) int { return compare(a.prio, b.prio) })}
}

// MinPQ is a PriorityQueue where Pop gives the item with the smallest
// priority.
func MinPQ[T any, P constraints.Ordered]() *PriorityQueue[T, P] {
	return &PriorityQueue[T, P]{Make(func(a, b pqItem[T, P]) int { return compare(b.prio, a.prio) })}
}

// PriorityQueue pairs items with priorities on a BinaryHeap. The item type
// carries no ordering requirement; only priorities compare.
type PriorityQueue[T any, P constraints.Ordered] struct {
	h *BinaryHeap[pqItem[T, P]]
}

// Push item with the given priority.
// Time: O(log n)
func (u *PriorityQueue[T, P]) Push(item T, priority P) {
	u.h.Push(pqItem[T, P]{item, priority})
}

// Pop the item at the top. Returns false iff the queue is empty.
// Time: O(log n)
func (u *PriorityQueue[T, P]) Pop() (T, bool) {
	e, ok := u.h.Pop()
	return e.item, ok
}

// Peek at the item at the top without removing it.
// Time: O(1)
func (u *PriorityQueue[T, P]) Peek() (T, bool) {
	e, ok := u.h.Peek()
	return e.item, ok
}

// PeekPriority is the priority of the item Peek would give.
// Time: O(1)
func (u *PriorityQueue[T, P]) PeekPriority() (P, bool) {
	e, ok := u.h.Peek()
	return e.prio, ok
}

// Size of the queue.
func (u *PriorityQueue[T, P]) Size() uint {
	return u.h.Size()
}

// Empty is Size()==0.
func (u *PriorityQueue[T, P]) Empty() bool {
	return u.h.Empty()
}

// Clear discards every element.
func (u *PriorityQueue[T, P]) Clear() {
	u.h.Clear()
}

// Drain pops every item, top first. The queue is empty afterwards.
// Time: O(n log n)
func (u *PriorityQueue[T, P]) Drain() []T {
	out := make([]T, 0, u.h.Size())
	for v, ok := u.Pop(); ok; v, ok = u.Pop() {
		out = append(out, v)
	}
	return out
}
