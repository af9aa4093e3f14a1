package Queues

// Stack is a LIFO over a slice. The zero value is ready to use.
type Stack[T any] struct {
	content []T
}

// MakeStack with room for initCap elements before the first growth.
func MakeStack[T any](initCap uint) *Stack[T] {
	return &Stack[T]{make([]T, 0, initCap)}
}

// Push item on top.
// Time: amortized O(1)
func (this *Stack[T]) Push(item T) {
	this.content = append(this.content, item)
}

// Pop the top item. Returns false iff the stack is empty.
// Time: O(1)
func (this *Stack[T]) Pop() (T, bool) {
	if len(this.content) == 0 {
		return *new(T), false
	}
	t := this.content[len(this.content)-1]
	this.content[len(this.content)-1] = *new(T)
	this.content = this.content[:len(this.content)-1]
	return t, true
}

// Peek at the top item without removing it. Returns false iff empty.
// Time: O(1)
func (this *Stack[T]) Peek() (T, bool) {
	if len(this.content) == 0 {
		return *new(T), false
	}
	return this.content[len(this.content)-1], true
}

// Size of the stack.
func (this *Stack[T]) Size() uint {
	return uint(len(this.content))
}

// Empty is Size()==0.
func (this *Stack[T]) Empty() bool {
	return len(this.content) == 0
}

// Clear discards every element, keeping the buffer.
func (this *Stack[T]) Clear() {
	clear(this.content)
	this.content = this.content[:0]
}
