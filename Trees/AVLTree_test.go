package Trees

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

var rg = rand.New(rand.NewSource(0))

func drain[T any](next func() (T, bool)) []T {
	var out []T
	for v, ok := next(); ok; v, ok = next() {
		out = append(out, v)
	}
	return out
}

func TestAVLTree_Empty(t *testing.T) {
	u := NewAVLTree[int]()
	if !u.Empty() || u.Size() != 0 || u.Height() != 0 {
		t.Errorf("empty tree: size %d height %d", u.Size(), u.Height())
	}
	if _, ok := u.Minimum(); ok {
		t.Error("empty tree has a minimum")
	}
	if _, ok := u.Maximum(); ok {
		t.Error("empty tree has a maximum")
	}
	if u.Remove(1) {
		t.Error("removed from empty tree")
	}
	if v, ok := u.InOrder()(); ok {
		t.Errorf("empty tree yielded %d", v)
	}
	if !u.Balanced() || u.Corrupt() {
		t.Error("empty tree isn't balanced or is corrupt")
	}
}

func TestAVLTree_Rotations(t *testing.T) {
	for _, c := range [][3]int{{3, 2, 1}, {1, 2, 3}, {3, 1, 2}, {1, 3, 2}} {
		u := NewAVLTree[int]()
		for _, v := range c {
			if !u.Insert(v) {
				t.Errorf("%v: failed to insert %d", c, v)
			}
		}
		if u.Height() != 2 {
			t.Errorf("%v: height %d, want 2", c, u.Height())
		}
		if got := drain(u.InOrder()); !slices.Equal(got, []int{1, 2, 3}) {
			t.Errorf("%v: in-order %v", c, got)
		}
		if !u.Balanced() {
			t.Errorf("%v: not balanced", c)
		}
	}
}

func TestAVLTree_SequentialInsert(t *testing.T) {
	u := NewAVLTree[int]()
	for i := 1; i <= 7; i++ {
		u.Insert(i)
		if !u.Balanced() {
			t.Errorf("unbalanced after inserting %d", i)
		}
	}
	if u.Height() != 3 {
		t.Errorf("height %d, want 3", u.Height())
	}
	if u.Size() != 7 {
		t.Errorf("size %d, want 7", u.Size())
	}
}

func TestAVLTree_DuplicateInsert(t *testing.T) {
	u := NewAVLTree[int]()
	if a, b := u.Insert(5), u.Insert(5); !a || b {
		t.Errorf("duplicate insert returned (%v, %v), want (true, false)", a, b)
	}
	if u.Size() != 1 {
		t.Errorf("size %d, want 1", u.Size())
	}
}

func TestAVLTree_Remove(t *testing.T) {
	u := NewAVLTree[int]()
	for i := 1; i <= 7; i++ {
		u.Insert(i)
	}
	if !u.Remove(4) {
		t.Error("failed to remove 4")
	}
	if u.Has(4) || !u.Balanced() || u.Size() != 6 {
		t.Errorf("after removing 4: has=%v size=%d", u.Has(4), u.Size())
	}
	if u.Remove(4) {
		t.Error("removed 4 twice")
	}
	// leaf, one-child and root removals
	for _, v := range []int{1, 2, 6, 3, 5, 7} {
		if !u.Remove(v) {
			t.Errorf("failed to remove %d", v)
		}
		if !u.Balanced() || u.Corrupt() {
			t.Errorf("tree corrupt after removing %d", v)
		}
	}
	if !u.Empty() {
		t.Errorf("size %d after removing everything", u.Size())
	}
}

func TestAVLTree_RemoveTwoChildren(t *testing.T) {
	u := NewAVLTree[int]()
	// the root has two full subtrees; removing it forces successor extraction
	for _, v := range []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15} {
		u.Insert(v)
	}
	if !u.Remove(8) {
		t.Error("failed to remove root")
	}
	if u.Has(8) || !u.Balanced() || u.Corrupt() {
		t.Error("tree corrupt after removing root")
	}
	if got := drain(u.InOrder()); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 14, 15}) {
		t.Errorf("in-order %v", got)
	}
}

func TestAVLTree_RandomOps(t *testing.T) {
	u := NewAVLTree[int]()
	content := make(map[int]struct{})
	for i := 0; i < 4000; i++ {
		v := rg.Intn(1000)
		if rg.Intn(3) == 0 {
			_, in := content[v]
			if u.Remove(v) != in {
				t.Fatalf("remove %d disagrees with reference", v)
			}
			delete(content, v)
		} else {
			_, in := content[v]
			if u.Insert(v) == in {
				t.Fatalf("insert %d disagrees with reference", v)
			}
			content[v] = struct{}{}
		}
	}
	if u.Corrupt() {
		t.Fatal("tree corrupt after random ops")
	}
	if int(u.Size()) != len(content) {
		t.Errorf("size %d, want %d", u.Size(), len(content))
	}
	want := make([]int, 0, len(content))
	for v := range content {
		want = append(want, v)
	}
	slices.Sort(want)
	if got := drain(u.InOrder()); !slices.Equal(got, want) {
		t.Errorf("in-order traversal disagrees with reference")
	}
}

func TestAVLTree_HeightBound(t *testing.T) {
	u := NewAVLTree[int]()
	for i := 0; i < 1<<12; i++ {
		u.Insert(i)
		if h, lim := float64(u.Height()), 1.44*math.Log2(float64(u.Size())+2); h > lim {
			t.Fatalf("height %f exceeds %f at size %d", h, lim, u.Size())
		}
	}
}

func TestAVLTree_RoundTripRemoval(t *testing.T) {
	u := NewAVLTree[int]()
	for _, v := range rg.Perm(100) {
		u.Insert(v)
	}
	before := u.Size()
	u.Insert(1000)
	if !u.Remove(1000) || u.Has(1000) || u.Size() != before || !u.Balanced() {
		t.Error("insert+remove didn't restore the tree")
	}
}

func TestMakeAVLTree(t *testing.T) {
	sli := make([]int, 1000)
	for i := range sli {
		sli[i] = i * 2
	}
	u := MakeAVLTree(sli, true)
	if u.Size() != 1000 || u.Corrupt() {
		t.Fatalf("built tree: size %d corrupt %v", u.Size(), u.Corrupt())
	}
	if !slices.Equal(drain(u.InOrder()), sli) {
		t.Error("built tree traversal disagrees with input")
	}
	defer func() {
		if _, ok := recover().(InvalidSliceError[int]); !ok {
			t.Error("unsorted slice didn't panic with InvalidSliceError")
		}
	}()
	MakeAVLTree([]int{1, 3, 2}, true)
}

func TestAVLTree_IteratorExhaustion(t *testing.T) {
	u := NewAVLTree[int]()
	u.Insert(1)
	f := u.InOrder()
	f()
	if _, ok := f(); ok {
		t.Error("iterator yielded after exhaustion")
	}
	if _, ok := f(); ok {
		t.Error("iterator restarted after exhaustion")
	}
}

func TestAVLTree_Clear(t *testing.T) {
	u := NewAVLTree[int]()
	for i := 0; i < 10; i++ {
		u.Insert(i)
	}
	u.Clear()
	if !u.Empty() || u.Height() != 0 || u.Has(3) {
		t.Error("clear left elements behind")
	}
}
