package Lists

type node[T any] struct {
	v    T
	next *node[T]
}

// LinkedList is a singly linked list; cheap at the front, O(n) at the back.
// The zero value is an empty list.
type LinkedList[T any] struct {
	head *node[T]
	sz   uint
}

func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// PushFront prepends item.
// Time: O(1)
func (u *LinkedList[T]) PushFront(item T) {
	u.head = &node[T]{item, u.head}
	u.sz++
}

// PopFront removes and returns the first item. Returns false iff empty.
// Time: O(1)
func (u *LinkedList[T]) PopFront() (T, bool) {
	if u.head == nil {
		return *new(T), false
	}
	t := u.head.v
	u.head = u.head.next
	u.sz--
	return t, true
}

// Front is the first item without removing it. Returns false iff empty.
// Time: O(1)
func (u *LinkedList[T]) Front() (T, bool) {
	if u.head == nil {
		return *new(T), false
	}
	return u.head.v, true
}

// FrontPtr is a pointer to the first item, nil if empty. The pointer is
// invalidated by PopFront, Remove, and Clear.
// Time: O(1)
func (u *LinkedList[T]) FrontPtr() *T {
	if u.head == nil {
		return nil
	}
	return &u.head.v
}

// PushBack appends item.
// Time: O(n)
func (u *LinkedList[T]) PushBack(item T) {
	n := &node[T]{v: item}
	if u.head == nil {
		u.head = n
	} else {
		cur := u.head
		for ; cur.next != nil; cur = cur.next {
		}
		cur.next = n
	}
	u.sz++
}

// Has reports whether eq accepts any element.
// Time: O(n)
func (u *LinkedList[T]) Has(eq func(T) bool) bool {
	for cur := u.head; cur != nil; cur = cur.next {
		if eq(cur.v) {
			return true
		}
	}
	return false
}

// Remove unlinks the first element eq accepts; false if none matched.
// Time: O(n)
func (u *LinkedList[T]) Remove(eq func(T) bool) bool {
	for curPtr := &u.head; *curPtr != nil; curPtr = &(*curPtr).next {
		if eq((*curPtr).v) {
			*curPtr = (*curPtr).next
			u.sz--
			return true
		}
	}
	return false
}

// Reverse the list in place.
// Time: O(n); Space: O(1)
func (u *LinkedList[T]) Reverse() {
	var prev *node[T]
	for cur := u.head; cur != nil; {
		cur.next, prev, cur = prev, cur, cur.next
	}
	u.head = prev
}

// Iter walks front to back; each call gives the next element until false.
// Mutating the list mid-iteration is undefined.
func (u *LinkedList[T]) Iter() func() (T, bool) {
	cur := u.head
	return func() (T, bool) {
		if cur == nil {
			return *new(T), false
		}
		t := cur.v
		cur = cur.next
		return t, true
	}
}

// Size of the list.
func (u *LinkedList[T]) Size() uint {
	return u.sz
}

// Empty is Size()==0.
func (u *LinkedList[T]) Empty() bool {
	return u.head == nil
}

// Clear discards every element.
func (u *LinkedList[T]) Clear() {
	u.head, u.sz = nil, 0
}
