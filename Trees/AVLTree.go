package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values that keeps itself
// height-balanced through rotations: at every node the heights of the two
// subtrees differ by at most 1, so the height D stays below 1.44*log2(n+2)
// and every operation is O(log n). Each node carries the height of its
// subtree, an additional 4 bytes per element.
// Unlike RBTree this variant supports Remove, at the cost of slightly more
// rotations per mutation.
type AVLTree[T constraints.Ordered] struct {
	root *avlNode[T]
	sz   uint
}

// NewAVLTree returns an empty AVLTree.
func NewAVLTree[T constraints.Ordered]() *AVLTree[T] {
	return new(AVLTree[T])
}

// MakeAVLTree builds an AVLTree from the given slice recursively; this is
// faster than repeatedly calling Insert. The slice must be sorted in
// ascending order and mustn't contain duplicate elements. If safe==true this
// function checks the precondition and panics with InvalidSliceError when
// it's broken; otherwise the check is skipped and it's up to the caller to
// ensure it (the tree is corrupt if not).
// Time: O(n)
func MakeAVLTree[T constraints.Ordered](sli []T, safe bool) *AVLTree[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i] <= sli[i-1] {
				panic(InvalidSliceError[T]{sli[i-1], sli[i]})
			}
		}
	}
	var build func(s []T) *avlNode[T]
	build = func(s []T) *avlNode[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &avlNode[T]{v: s[mid], l: build(s[:mid]), r: build(s[mid+1:])}
		n.update()
		return n
	}
	return &AVLTree[T]{build(sli), uint(len(sli))}
}

// balance restores the height invariant at *curPtr after a structural change
// immediately below it. A factor of exactly ±1 is legal and never triggers a
// rotation; only |factor|>1 does, with a preliminary child rotation when the
// heavy child leans the other way (double rotation).
// Time: O(1)
func balance[T constraints.Ordered](curPtr **avlNode[T]) {
	if cur := *curPtr; cur.factor() > 1 {
		if cur.l.factor() < 0 {
			rotateLeft(&cur.l)
		}
		rotateRight(curPtr)
	} else if cur.factor() < -1 {
		if cur.r.factor() > 0 {
			rotateRight(&cur.r)
		}
		rotateLeft(curPtr)
	}
}

// insert v into the subtree rooted at *curPtr recursively, rebalancing every
// node on the unwind. Returns false when v was already present, in which
// case the stored value is overwritten.
func (u *AVLTree[T]) insert(curPtr **avlNode[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &avlNode[T]{v: v, h: 1}
		return true
	}
	var inserted bool
	if v < cur.v {
		inserted = u.insert(&cur.l, v)
	} else if v == cur.v {
		cur.v = v
		return false
	} else {
		inserted = u.insert(&cur.r, v)
	}
	if inserted {
		cur.update()
		balance(curPtr)
	}
	return inserted
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *AVLTree[T]) Insert(v T) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// extractMin detaches the smallest node of the non-empty subtree at *curPtr
// and rebalances every node on the path from the extraction point back up,
// not only the reattachment point. The detached node is returned with both
// children cleared.
func extractMin[T constraints.Ordered](curPtr **avlNode[T]) *avlNode[T] {
	cur := *curPtr
	if cur == nil {
		// reachable only if the tree structure was already corrupt
		panic("Trees: extractMin on empty subtree")
	}
	if cur.l == nil {
		*curPtr = cur.r
		cur.r = nil
		return cur
	}
	m := extractMin(&cur.l)
	cur.update()
	balance(curPtr)
	return m
}

// remove v from the subtree rooted at *curPtr recursively, rebalancing every
// node on the unwind exactly as insert does. A node with two children is
// replaced by the minimum of its right subtree.
func (u *AVLTree[T]) remove(curPtr **avlNode[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	var removed bool
	if v < cur.v {
		removed = u.remove(&cur.l, v)
	} else if v > cur.v {
		removed = u.remove(&cur.r, v)
	} else {
		removed = true
		if cur.l == nil {
			*curPtr = cur.r
			return true
		} else if cur.r == nil {
			*curPtr = cur.l
			return true
		}
		m := extractMin(&cur.r)
		m.l, m.r = cur.l, cur.r
		*curPtr = m
	}
	if removed {
		(*curPtr).update()
		balance(curPtr)
	}
	return removed
}

// Remove v from the tree. Returns true iff v was present; an absent v leaves
// the tree unchanged. Recursive.
// Time: O(D)
func (u *AVLTree[T]) Remove(v T) bool {
	if u.remove(&u.root, v) {
		u.sz--
		return true
	}
	return false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Has(v T) bool {
	return has(u.root, v)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Minimum() (T, bool) {
	return minimum(u.root)
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Maximum() (T, bool) {
	return maximum(u.root)
}

// Height [Tree.Height]
// Time: O(1)
func (u *AVLTree[T]) Height() uint {
	return uint(subHeight(u.root))
}

// Size [Tree.Size]
func (u *AVLTree[T]) Size() uint {
	return u.sz
}

// Empty [Tree.Empty]
func (u *AVLTree[T]) Empty() bool {
	return u.sz == 0
}

// Clear [Tree.Clear]
func (u *AVLTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// InOrder [Tree.InOrder]
func (u *AVLTree[T]) InOrder() func() (T, bool) {
	return inOrder(u.root)
}

// balancedHeight recomputes the height of the subtree at n bottom-up,
// reporting false if any node's factor leaves [-1,1] or a stored height
// disagrees with the recomputation.
func balancedHeight[T any](n *avlNode[T]) (int32, bool) {
	if n == nil {
		return 0, true
	}
	lh, lok := balancedHeight(n.l)
	rh, rok := balancedHeight(n.r)
	if !lok || !rok || lh-rh > 1 || rh-lh > 1 || n.h != 1+max(lh, rh) {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// Balanced reports whether every node satisfies the height invariant.
// Diagnostic only.
// Time: O(n)
func (u *AVLTree[T]) Balanced() bool {
	_, ok := balancedHeight(u.root)
	return ok
}

// Corrupt [Tree.Corrupt]: order violation, height violation, or a size that
// disagrees with the reachable node count.
// Time: O(n)
func (u *AVLTree[T]) Corrupt() bool {
	if !u.Balanced() || !ascending(u.InOrder()) {
		return true
	}
	n, next := uint(0), u.InOrder()
	for _, ok := next(); ok; _, ok = next() {
		n++
	}
	return n != u.sz
}
