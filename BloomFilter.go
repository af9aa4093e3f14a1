package Go_Collections

import (
	"math"
	"unsafe"
)

// NewBloomFilter sized for expected elements at the given false positive rate.
// The optimal parameters are m=-n*ln(p)/ln(2)^2 bits and k=(m/n)*ln(2) hash
// functions. fpRate must be in (0,1).
func NewBloomFilter[E any](expected uint, fpRate float64, seed uint) *BloomFilter[E] {
	n := float64(max(expected, 1))
	m := uint(math.Ceil(-n * math.Log(fpRate) / (math.Ln2 * math.Ln2)))
	k := uint(math.Max(math.Round(float64(m)/n*math.Ln2), 1))
	return MakeBloomFilter[E](m, k, seed)
}

// MakeBloomFilter with explicit bit and hash function counts.
func MakeBloomFilter[E any](size, hashes uint, seed uint) *BloomFilter[E] {
	return &BloomFilter[E]{bits: NewBitArray(max(size, 1)), k: max(hashes, 1), Seed: Hasher(seed)}
}

// BloomFilter is a probabilistic set of E: Possibly never reports false
// negatives but may report false positives. Elements can't be removed.
// E is hashed by memory content, so E shouldn't contain pointers; strings
// are handled specially.
type BloomFilter[E any] struct {
	bits BitArray
	Seed Hasher
	k    uint
	sz   uint
}

// index of the i-th probe for the two base hashes, double hashing.
func (u *BloomFilter[E]) index(h1, h2, i uint) uint {
	return (h1 + i*h2) % u.bits.Len()
}

func (u *BloomFilter[E]) hash2(e *E) (uint, uint) {
	var h1 uint
	if s, ok := any(*e).(string); ok {
		h1 = u.Seed.HashString(s)
	} else {
		h1 = u.Seed.HashMem(unsafe.Pointer(e), unsafe.Sizeof(*e))
	}
	return h1, (u.Seed + 1).HashMem(unsafe.Pointer(&h1), unsafe.Sizeof(h1))
}

// Put e into the filter.
func (u *BloomFilter[E]) Put(e E) {
	h1, h2 := u.hash2(&e)
	for i := uint(0); i < u.k; i++ {
		u.bits.Up(u.index(h1, h2, i))
	}
	u.sz++
}

// Possibly reports whether e may have been Put. False means definitely not.
func (u *BloomFilter[E]) Possibly(e E) bool {
	h1, h2 := u.hash2(&e)
	for i := uint(0); i < u.k; i++ {
		if !u.bits.Get(u.index(h1, h2, i)) {
			return false
		}
	}
	return true
}

// Rate estimates the current false positive probability, (1-e^(-k*n/m))^k.
func (u *BloomFilter[E]) Rate() float64 {
	if u.sz == 0 {
		return 0
	}
	k, n, m := float64(u.k), float64(u.sz), float64(u.bits.Len())
	return math.Pow(1-math.Exp(-k*n/m), k)
}

// Bits is the total number of bits in the filter.
func (u *BloomFilter[E]) Bits() uint {
	return u.bits.Len()
}

// Hashes is the number of hash functions applied per element.
func (u *BloomFilter[E]) Hashes() uint {
	return u.k
}

// Size is the number of Put calls, not distinct elements.
func (u *BloomFilter[E]) Size() uint {
	return u.sz
}

// Reset empties the filter.
func (u *BloomFilter[E]) Reset() {
	u.bits.Reset()
	u.sz = 0
}
