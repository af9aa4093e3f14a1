package Heaps

import (
	"math/rand"
	"slices"
	"testing"
)

var rg = rand.New(rand.NewSource(0))

func TestBinaryHeap_MaxOrder(t *testing.T) {
	u := Max[int]()
	a := rg.Perm(5000)
	for _, v := range a {
		u.Push(v)
	}
	if u.Size() != 5000 {
		t.Fatalf("size %d, want 5000", u.Size())
	}
	got := u.Drain()
	if !u.Empty() {
		t.Error("drain left elements")
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] < got[i] {
			t.Fatalf("max heap popped %d before %d", got[i-1], got[i])
		}
	}
}

func TestBinaryHeap_MinOrder(t *testing.T) {
	u := Min[int]()
	for _, v := range rg.Perm(5000) {
		u.Push(v)
	}
	got := u.Drain()
	if !slices.IsSorted(got) {
		t.Error("min heap didn't pop ascending")
	}
}

func TestBinaryHeap_Duplicates(t *testing.T) {
	u := Max[int]()
	for _, v := range []int{3, 1, 3, 2, 3} {
		u.Push(v)
	}
	if got := u.Drain(); !slices.Equal(got, []int{3, 3, 3, 2, 1}) {
		t.Errorf("drained %v", got)
	}
}

func TestBinaryHeap_Empty(t *testing.T) {
	u := Min[int]()
	if _, ok := u.Pop(); ok {
		t.Error("popped from empty heap")
	}
	if _, ok := u.Peek(); ok {
		t.Error("peeked at empty heap")
	}
	u.Push(1)
	u.Clear()
	if !u.Empty() {
		t.Error("clear left elements")
	}
}

func TestBinaryHeap_PeekMatchesPop(t *testing.T) {
	u := MakeCap[int](func(a, b int) int { return a - b }, 64)
	for i := 0; i < 1000; i++ {
		u.Push(rg.Intn(100))
		p, _ := u.Peek()
		v, _ := u.Pop()
		if p != v {
			t.Fatalf("peek %d, pop %d", p, v)
		}
		u.Push(v)
	}
}

func TestPriorityQueue_Order(t *testing.T) {
	u := MinPQ[string, int]()
	u.Push("c", 3)
	u.Push("a", 1)
	u.Push("d", 4)
	u.Push("b", 2)
	if v, ok := u.Peek(); !ok || v != "a" {
		t.Errorf("peek %q", v)
	}
	if p, ok := u.PeekPriority(); !ok || p != 1 {
		t.Errorf("peek priority %d", p)
	}
	if got := u.Drain(); !slices.Equal(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("drained %v", got)
	}
}

func TestPriorityQueue_Max(t *testing.T) {
	u := MaxPQ[string, int]()
	u.Push("low", 1)
	u.Push("high", 10)
	u.Push("mid", 5)
	if got := u.Drain(); !slices.Equal(got, []string{"high", "mid", "low"}) {
		t.Errorf("drained %v", got)
	}
	if _, ok := u.Pop(); ok {
		t.Error("popped from empty queue")
	}
}

func BenchmarkBinaryHeap_PushPop(b *testing.B) {
	u := MakeCap[int](func(a, c int) int { return a - c }, 1<<10)
	for i := 0; i < b.N; i++ {
		u.Push(i & 1023)
		if i&1 == 1 {
			u.Pop()
		}
	}
}
