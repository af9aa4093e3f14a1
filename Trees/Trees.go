package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tree is the surface shared by the ordered trees in this package. Receivers
// that have a bool as a second return value indicate whether the first return
// value is defined; calling Minimum on an empty tree gives (x T, false) and x
// shouldn't be used. Remove isn't part of this interface because RBTree
// carries no deletion; it is declared on AVLTree directly.
type Tree[T constraints.Ordered] interface {
	//Insert v into the Tree. Returns true iff v wasn't already present; when
	//it was, the stored value is overwritten and the size is unchanged.
	Insert(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Height of the tree; 0 iff empty, 1 for a single node.
	Height() uint
	//Size is the number of distinct elements.
	Size() uint
	//Empty is Size()==0.
	Empty() bool
	//Clear discards every element.
	Clear()
	//InOrder returns a closure function f acting like an iterator. f gives
	//elements in ascending order: val, valid=f(). val is meaningful only if
	//valid is true; valid can't turn true after it first became false. The
	//tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt reports whether the tree violates its structural properties.
	//Diagnostic only; always false after any sequence of public operations.
	Corrupt() bool
}

// InvalidSliceError reports two adjacent elements that break the strictly
// ascending precondition of MakeAVLTree.
type InvalidSliceError[T any] struct {
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't sorted strictly ascending: %v isn't less than %v", e.Prev, e.Next)
}

// binNode abstracts the node shape of the tree variants; N is the concrete
// node pointer type, so the helpers below compile to direct calls without
// dynamic dispatch.
type binNode[T any, N any] interface {
	comparable
	lhs() N
	rhs() N
	val() T
}

// has descends by comparison.
// Time: O(D); Space: O(1)
func has[T constraints.Ordered, N binNode[T, N]](cur N, v T) bool {
	var null N
	for cur != null {
		if v < cur.val() {
			cur = cur.lhs()
		} else if v == cur.val() {
			return true
		} else {
			cur = cur.rhs()
		}
	}
	return false
}

// minimum follows the left spine.
// Time: O(D); Space: O(1)
func minimum[T any, N binNode[T, N]](cur N) (r T, ok bool) {
	var null N
	for ; cur != null; cur = cur.lhs() {
		r, ok = cur.val(), true
	}
	return
}

// maximum follows the right spine.
// Time: O(D); Space: O(1)
func maximum[T any, N binNode[T, N]](cur N) (r T, ok bool) {
	var null N
	for ; cur != null; cur = cur.rhs() {
		r, ok = cur.val(), true
	}
	return
}

// inOrder returns a lazy ascending iterator over the subtree at root. The
// stack holds the ancestors whose right subtree is still unvisited; the left
// spine is pushed up front and again after every yield.
// Time: f(): amortized O(1) per call; Space: O(D)
func inOrder[T any, N binNode[T, N]](root N) func() (T, bool) {
	var null N
	var stack []N
	for cur := root; cur != null; cur = cur.lhs() {
		stack = append(stack, cur)
	}
	return func() (r T, ok bool) {
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r, ok = top.val(), true
		for cur := top.rhs(); cur != null; cur = cur.lhs() {
			stack = append(stack, cur)
		}
		return
	}
}

// ascending reports whether next yields strictly increasing values until
// exhaustion; used by the Corrupt diagnostics.
func ascending[T constraints.Ordered](next func() (T, bool)) bool {
	prev, ok := next()
	if !ok {
		return true
	}
	for {
		cur, ok := next()
		if !ok {
			return true
		}
		if cur <= prev {
			return false
		}
		prev = cur
	}
}
