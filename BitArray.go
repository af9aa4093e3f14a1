package Go_Collections

import (
	"math/bits"
)

// NewBitArray with at least size usable bits, all down initially.
func NewBitArray(size uint) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed-length array of bits packed into uints.
type BitArray struct {
	bits []uint
}

// Len is the number of bits held, a multiple of bits.UintSize.
func (u BitArray) Len() uint {
	return uint(len(u.bits)) * bits.UintSize
}

// Get bit i.
func (u BitArray) Get(i uint) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

// Up sets bit i to 1.
func (u BitArray) Up(i uint) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

// Down sets bit i to 0.
func (u BitArray) Down(i uint) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Ups counts the bits that are up.
func (u BitArray) Ups() uint {
	t := 0
	for _, w := range u.bits {
		t += bits.OnesCount(w)
	}
	return uint(t)
}

// Reset puts all bits down.
func (u BitArray) Reset() {
	clear(u.bits)
}
