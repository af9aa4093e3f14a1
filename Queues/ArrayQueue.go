package Queues

// ArrayQueue is a Queue over a circular buffer: head chases tail around a
// slice that grows by half when full. Push and Pop are amortized O(1).
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap elements before the first growth.
func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, max(initCap, 1))}
}

// Empty [Queue.Empty]
func (this *ArrayQueue[T]) Empty() bool {
	return this.sz == 0
}

func (this *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.head < this.tail {
		copy(nc, this.content[this.head:this.tail])
	} else {
		n := copy(nc, this.content[this.head:])
		copy(nc[n:], this.content[:this.tail])
	}
	this.head, this.tail = 0, this.sz
	this.content = nc
}

// Shrink the buffer to fit the current size.
func (this *ArrayQueue[T]) Shrink() {
	this.resize(max(this.sz, 1))
}

// Clear discards every element, keeping the buffer.
func (this *ArrayQueue[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

// Size of the queue.
func (this *ArrayQueue[T]) Size() uint {
	return this.sz
}

// Push [Queue.Push]
// Time: amortized O(1)
func (this *ArrayQueue[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz*3/2 + 1)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

// Pop [Queue.Pop]
// Time: O(1)
func (this *ArrayQueue[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return t, nil
}

// Peek [Queue.Peek]
// Time: O(1)
func (this *ArrayQueue[T]) Peek() (item T) {
	if this.Empty() {
		return *new(T)
	}
	return this.content[this.head]
}

// PeekBack is the element Push appended last; the zero value if empty.
// Time: O(1)
func (this *ArrayQueue[T]) PeekBack() (item T) {
	if this.Empty() {
		return *new(T)
	}
	return this.content[(this.tail+uint(len(this.content))-1)%uint(len(this.content))]
}
