package Maps

import (
	"math/bits"
)

// resize when sz/len(bkt) would exceed 3/4.
const loadNum, loadDen = 3, 4

// A key-value pair in a bucket's chain.
type entry[K comparable, V any] struct {
	k    K
	v    V
	next *entry[K, V]
}

// New ChainMap whose initial table handles size elements without resizing.
// hashF maps keys to hashes; equal keys must hash equally, and the quality of
// the high bits doesn't matter since the table length is a power of two
// masked from the low bits.
func New[K comparable, V any](size uint, hashF func(K) uint) *ChainMap[K, V] {
	return &ChainMap[K, V]{bkt: make([]*entry[K, V], uint(1)<<bits.Len(size*loadDen/loadNum)), hashF: hashF}
}

// ChainMap is a hash map using separate chaining, doubling its table whenever
// the load factor passes 3/4. It is not safe for concurrent use; external
// synchronization is the caller's responsibility.
type ChainMap[K comparable, V any] struct {
	bkt   []*entry[K, V]
	hashF func(K) uint
	sz    uint
}

func (u *ChainMap[K, V]) mod(hash uint) uint {
	return hash & (uint(len(u.bkt)) - 1)
}

func (u *ChainMap[K, V]) expand() {
	old := u.bkt
	u.bkt = make([]*entry[K, V], len(old)<<1)
	for _, e := range old {
		for e != nil {
			next := e.next
			i := u.mod(u.hashF(e.k))
			e.next = u.bkt[i]
			u.bkt[i] = e
			e = next
		}
	}
}

// Store v under k. Returns the displaced value and true when k was already
// present.
// Time: amortized O(1)
func (u *ChainMap[K, V]) Store(k K, v V) (old V, replaced bool) {
	i := u.mod(u.hashF(k))
	for e := u.bkt[i]; e != nil; e = e.next {
		if e.k == k {
			old, e.v = e.v, v
			return old, true
		}
	}
	if (u.sz+1)*loadDen > uint(len(u.bkt))*loadNum {
		u.expand()
		i = u.mod(u.hashF(k))
	}
	u.bkt[i] = &entry[K, V]{k, v, u.bkt[i]}
	u.sz++
	return
}

// Load the value under k.
// Time: O(1)
func (u *ChainMap[K, V]) Load(k K) (V, bool) {
	if p := u.LoadPtr(k); p != nil {
		return *p, true
	}
	return *new(V), false
}

// LoadPtr returns a pointer to the value stored under k, nil if absent. The
// pointer is invalidated by any Store or Delete.
// Time: O(1)
func (u *ChainMap[K, V]) LoadPtr(k K) *V {
	for e := u.bkt[u.mod(u.hashF(k))]; e != nil; e = e.next {
		if e.k == k {
			return &e.v
		}
	}
	return nil
}

// HasKey k.
// Time: O(1)
func (u *ChainMap[K, V]) HasKey(k K) bool {
	return u.LoadPtr(k) != nil
}

// Delete the entry under k. Returns the removed value and true when k was
// present.
// Time: O(1)
func (u *ChainMap[K, V]) Delete(k K) (old V, removed bool) {
	for p := &u.bkt[u.mod(u.hashF(k))]; *p != nil; p = &(*p).next {
		if e := *p; e.k == k {
			*p = e.next
			u.sz--
			return e.v, true
		}
	}
	return
}

// Range calls f on every pair until f returns false. The map must not be
// modified during the iteration.
func (u *ChainMap[K, V]) Range(f func(K, V) bool) {
	for _, e := range u.bkt {
		for ; e != nil; e = e.next {
			if !f(e.k, e.v) {
				return
			}
		}
	}
}

// Size is the number of keys.
func (u *ChainMap[K, V]) Size() uint {
	return u.sz
}

// Cap is the current table length.
func (u *ChainMap[K, V]) Cap() uint {
	return uint(len(u.bkt))
}

// LoadFactor is Size()/Cap().
func (u *ChainMap[K, V]) LoadFactor() float64 {
	return float64(u.sz) / float64(len(u.bkt))
}

// Clear discards every entry, keeping the table.
func (u *ChainMap[K, V]) Clear() {
	clear(u.bkt)
	u.sz = 0
}
