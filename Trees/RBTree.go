package Trees

import (
	"golang.org/x/exp/constraints"
)

// RBTree is a left-leaning red-black tree with no repeated values. Every
// root-to-nil path carries the same number of black nodes and no red node
// has a red child, bounding the height D by 2*log2(n+1) with amortized O(1)
// rotations per insertion. Each node spends 1 byte on its color.
// This variant is insert-only: it has no Remove. Callers that need balanced
// deletion should use AVLTree instead; extending this type with the standard
// double-black fixup cases is possible but deliberately not done here.
type RBTree[T constraints.Ordered] struct {
	root *rbNode[T]
	sz   uint
}

// NewRBTree returns an empty RBTree.
func NewRBTree[T constraints.Ordered]() *RBTree[T] {
	return new(RBTree[T])
}

// fixUp restores the left-leaning red-black shape at *curPtr on the unwind.
// The three repairs must run in this order for insertion to converge:
// right-leaning red link is rotated left, a red-red chain on the left spine
// is rotated right, and two red children are color-flipped, pushing the
// redness one level up.
// Time: O(1)
func fixUp[T constraints.Ordered](curPtr **rbNode[T]) {
	if cur := *curPtr; cur.r.isRed() && !cur.l.isRed() {
		rbRotateLeft(curPtr)
	}
	if cur := *curPtr; cur.l.isRed() && cur.l.l.isRed() {
		rbRotateRight(curPtr)
	}
	if cur := *curPtr; cur.l.isRed() && cur.r.isRed() {
		flipColors(cur)
	}
}

// insert v into the subtree rooted at *curPtr recursively; new nodes start
// red and fixUp runs at every ancestor on the unwind.
func (u *RBTree[T]) insert(curPtr **rbNode[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &rbNode[T]{v: v, red: true}
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
		fixUp(curPtr)
	}
	return inserted
}

// Insert [Tree.Insert]. Recursive. The root is reset to black after every
// call; the reset is idempotent.
// Time: O(D)
func (u *RBTree[T]) Insert(v T) bool {
	inserted := u.insert(&u.root, v)
	u.root.red = false
	if inserted {
		u.sz++
	}
	return inserted
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Has(v T) bool {
	return has(u.root, v)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Minimum() (T, bool) {
	return minimum(u.root)
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Maximum() (T, bool) {
	return maximum(u.root)
}

func subDepth[T any](n *rbNode[T]) uint {
	if n == nil {
		return 0
	}
	return 1 + max(subDepth(n.l), subDepth(n.r))
}

// Height [Tree.Height]. Unlike AVLTree the nodes don't store heights, so
// this recomputes.
// Time: O(n)
func (u *RBTree[T]) Height() uint {
	return subDepth(u.root)
}

// Size [Tree.Size]
func (u *RBTree[T]) Size() uint {
	return u.sz
}

// Empty [Tree.Empty]
func (u *RBTree[T]) Empty() bool {
	return u.sz == 0
}

// Clear [Tree.Clear]
func (u *RBTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// InOrder [Tree.InOrder]
func (u *RBTree[T]) InOrder() func() (T, bool) {
	return inOrder(u.root)
}

// blackHeight of the subtree at n counting n itself, with nil counting 1.
// Returns 0 when the subtree holds a red-red edge or its two sides disagree
// on black height.
func blackHeight[T any](n *rbNode[T]) uint {
	if n == nil {
		return 1
	}
	if n.red && (n.l.isRed() || n.r.isRed()) {
		return 0
	}
	lh, rh := blackHeight(n.l), blackHeight(n.r)
	if lh == 0 || lh != rh {
		return 0
	}
	if !n.red {
		lh++
	}
	return lh
}

// Valid reports whether the red-black properties hold: black root, no
// red-red parent-child edge, and a uniform black height across all
// root-to-nil paths. Diagnostic only.
// Time: O(n)
func (u *RBTree[T]) Valid() bool {
	if u.root == nil {
		return true
	}
	return !u.root.red && blackHeight(u.root) > 0
}

// Corrupt [Tree.Corrupt]: order violation, red-black property violation, or
// a size that disagrees with the reachable node count.
// Time: O(n)
func (u *RBTree[T]) Corrupt() bool {
	if !u.Valid() || !ascending(u.InOrder()) {
		return true
	}
	n, next := uint(0), u.InOrder()
	for _, ok := next(); ok; _, ok = next() {
		n++
	}
	return n != u.sz
}
