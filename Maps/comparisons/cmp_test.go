package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-collections/Maps"
)

// compares ChainMap's single-threaded throughput with
// https://github.com/cornelk/hashmap and https://github.com/alphadose/haxmap
// using the workload shape of cornelk's own benchmark suite. Both of those
// maps pay for lock-freedom; the point of the comparison is the price of the
// chains, not a like-for-like race.

const benchmarkItemCount = 1024

func hashUintptr(x uintptr) uint {
	return uint(x) * 0x9e3779b9
}

func setupChainMap(b *testing.B) *Maps.ChainMap[uintptr, uintptr] {
	b.Helper()
	m := Maps.New[uintptr, uintptr](benchmarkItemCount, hashUintptr)
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Store(i, i)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[uintptr, uintptr] {
	b.Helper()
	m := hashmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, uintptr] {
	b.Helper()
	m := haxmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func BenchmarkReadChainMapUint(b *testing.B) {
	m := setupChainMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := uintptr(0); j < benchmarkItemCount; j++ {
			if v, _ := m.Load(j); v != j {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHashMapUint(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := uintptr(0); j < benchmarkItemCount; j++ {
			if v, _ := m.Get(j); v != j {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHaxMapUint(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := uintptr(0); j < benchmarkItemCount; j++ {
			if v, _ := m.Get(j); v != j {
				b.Fail()
			}
		}
	}
}

func BenchmarkWriteChainMapUint(b *testing.B) {
	m := Maps.New[uintptr, uintptr](benchmarkItemCount, hashUintptr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := uintptr(0); j < benchmarkItemCount; j++ {
			m.Store(j, j)
		}
	}
}

func BenchmarkWriteHashMapUint(b *testing.B) {
	m := hashmap.New[uintptr, uintptr]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := uintptr(0); j < benchmarkItemCount; j++ {
			m.Set(j, j)
		}
	}
}

func BenchmarkWriteHaxMapUint(b *testing.B) {
	m := haxmap.New[uintptr, uintptr]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := uintptr(0); j < benchmarkItemCount; j++ {
			m.Set(j, j)
		}
	}
}
