package Sets

import (
	"github.com/g-m-twostay/go-collections/Maps"
)

// New HashSet whose initial table handles size elements without resizing.
// hashF follows the same contract as in Maps.New.
func New[E comparable](size uint, hashF func(E) uint) *HashSet[E] {
	return &HashSet[E]{Maps.New[E, struct{}](size, hashF), hashF}
}

// HashSet is an unordered set of E layered over Maps.ChainMap. The algebra
// receivers (Union and friends) allocate a fresh set using the receiver's
// hash function and leave both operands untouched.
type HashSet[E comparable] struct {
	m     *Maps.ChainMap[E, struct{}]
	hashF func(E) uint
}

// Put [Set.Put]
// Time: amortized O(1)
func (u *HashSet[E]) Put(e E) bool {
	_, existed := u.m.Store(e, struct{}{})
	return !existed
}

// Has [Set.Has]
// Time: O(1)
func (u *HashSet[E]) Has(e E) bool {
	return u.m.HasKey(e)
}

// Remove [Set.Remove]
// Time: O(1)
func (u *HashSet[E]) Remove(e E) bool {
	_, removed := u.m.Delete(e)
	return removed
}

// Size [Set.Size]
func (u *HashSet[E]) Size() uint {
	return u.m.Size()
}

// Empty is Size()==0.
func (u *HashSet[E]) Empty() bool {
	return u.m.Size() == 0
}

// Range [Set.Range]
func (u *HashSet[E]) Range(f func(E) bool) {
	u.m.Range(func(e E, _ struct{}) bool {
		return f(e)
	})
}

// Clear discards every element.
func (u *HashSet[E]) Clear() {
	u.m.Clear()
}

// Union of u and o as a new set.
// Time: O(|u|+|o|)
func (u *HashSet[E]) Union(o *HashSet[E]) *HashSet[E] {
	r := New[E](u.Size()+o.Size(), u.hashF)
	u.Range(func(e E) bool { r.Put(e); return true })
	o.Range(func(e E) bool { r.Put(e); return true })
	return r
}

// Intersect of u and o as a new set.
// Time: O(min(|u|,|o|))
func (u *HashSet[E]) Intersect(o *HashSet[E]) *HashSet[E] {
	a, b := u, o
	if b.Size() < a.Size() {
		a, b = b, a
	}
	r := New[E](a.Size(), u.hashF)
	a.Range(func(e E) bool {
		if b.Has(e) {
			r.Put(e)
		}
		return true
	})
	return r
}

// Difference u minus o as a new set.
// Time: O(|u|)
func (u *HashSet[E]) Difference(o *HashSet[E]) *HashSet[E] {
	r := New[E](u.Size(), u.hashF)
	u.Range(func(e E) bool {
		if !o.Has(e) {
			r.Put(e)
		}
		return true
	})
	return r
}

// SubsetOf reports whether every element of u is in o.
// Time: O(|u|)
func (u *HashSet[E]) SubsetOf(o *HashSet[E]) bool {
	if u.Size() > o.Size() {
		return false
	}
	r := true
	u.Range(func(e E) bool {
		r = o.Has(e)
		return r
	})
	return r
}

// SupersetOf is o.SubsetOf(u).
func (u *HashSet[E]) SupersetOf(o *HashSet[E]) bool {
	return o.SubsetOf(u)
}

// DisjointWith reports whether u and o share no element.
// Time: O(min(|u|,|o|))
func (u *HashSet[E]) DisjointWith(o *HashSet[E]) bool {
	a, b := u, o
	if b.Size() < a.Size() {
		a, b = b, a
	}
	r := true
	a.Range(func(e E) bool {
		r = !b.Has(e)
		return r
	})
	return r
}
