package Trees

// A node in the AVLTree.
// h is the height of the subtree rooted here: 1 for a leaf, 0 for a nil
// subtree. h = 1+max(h(l), h(r)) holds after every structural change below.
type avlNode[T any] struct {
	v    T
	l, r *avlNode[T]
	h    int32
}

func (n *avlNode[T]) lhs() *avlNode[T] { return n.l }
func (n *avlNode[T]) rhs() *avlNode[T] { return n.r }
func (n *avlNode[T]) val() T           { return n.v }

func subHeight[T any](n *avlNode[T]) int32 {
	if n == nil {
		return 0
	}
	return n.h
}

func (n *avlNode[T]) update() {
	n.h = 1 + max(subHeight(n.l), subHeight(n.r))
}

// factor is left height minus right height; legal range is [-1, 1].
func (n *avlNode[T]) factor() int32 {
	return subHeight(n.l) - subHeight(n.r)
}

// rotateLeft re-parents *n and its right child, preserving the in-order
// sequence. n is passed by reference in order to modify its content.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n **avlNode[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	r.update()
	rc.l = r
	rc.update()
	*n = rc
}

// rotateRight is the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[T any](n **avlNode[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	r.update()
	lc.r = r
	lc.update()
	*n = lc
}

// A node in the RBTree. Freshly inserted nodes are red.
type rbNode[T any] struct {
	v    T
	l, r *rbNode[T]
	red  bool
}

func (n *rbNode[T]) lhs() *rbNode[T] { return n.l }
func (n *rbNode[T]) rhs() *rbNode[T] { return n.r }
func (n *rbNode[T]) val() T          { return n.v }

// isRed treats nil subtrees as black.
func (n *rbNode[T]) isRed() bool {
	return n != nil && n.red
}

// rbRotateLeft turns a right-leaning red link into a left-leaning one: the
// new subtree root takes over the old root's color and the old root turns
// red. n is passed by reference.
// Time: O(1); Space: O(1)
func rbRotateLeft[T any](n **rbNode[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	rc.red = r.red
	r.red = true
	*n = rc
}

// rbRotateRight is the mirror of rbRotateLeft, used to break a red-red chain
// on the left spine.
// Time: O(1); Space: O(1)
func rbRotateRight[T any](n **rbNode[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	lc.red = r.red
	r.red = true
	*n = lc
}

// flipColors pushes redness up one level: both children turn black, n turns
// red. Callers guarantee both children exist and are red.
func flipColors[T any](n *rbNode[T]) {
	n.red = true
	n.l.red = false
	n.r.red = false
}
