package Trees

import (
	"math"
	"slices"
	"testing"
)

func TestRBTree_Empty(t *testing.T) {
	u := NewRBTree[int]()
	if !u.Empty() || u.Size() != 0 || u.Height() != 0 {
		t.Errorf("empty tree: size %d height %d", u.Size(), u.Height())
	}
	if _, ok := u.Minimum(); ok {
		t.Error("empty tree has a minimum")
	}
	if _, ok := u.Maximum(); ok {
		t.Error("empty tree has a maximum")
	}
	if !u.Valid() || u.Corrupt() {
		t.Error("empty tree isn't valid or is corrupt")
	}
}

func TestRBTree_SequentialInsert(t *testing.T) {
	u := NewRBTree[int]()
	for i := 1; i <= 15; i++ {
		if !u.Insert(i) {
			t.Errorf("failed to insert %d", i)
		}
		if !u.Valid() {
			t.Errorf("invalid after inserting %d", i)
		}
	}
	if u.Size() != 15 {
		t.Errorf("size %d, want 15", u.Size())
	}
	if got := drain(u.InOrder()); !slices.IsSorted(got) || len(got) != 15 {
		t.Errorf("in-order %v", got)
	}
}

func TestRBTree_RootIsBlack(t *testing.T) {
	u := NewRBTree[int]()
	for _, v := range rg.Perm(100) {
		u.Insert(v)
		if u.root.red {
			t.Fatalf("red root after inserting %d", v)
		}
	}
}

func TestRBTree_DuplicateInsert(t *testing.T) {
	u := NewRBTree[int]()
	if a, b := u.Insert(5), u.Insert(5); !a || b {
		t.Errorf("duplicate insert returned (%v, %v), want (true, false)", a, b)
	}
	if u.Size() != 1 {
		t.Errorf("size %d, want 1", u.Size())
	}
}

func TestRBTree_RandomInsert(t *testing.T) {
	u := NewRBTree[int]()
	content := make(map[int]struct{})
	for i := 0; i < 4000; i++ {
		v := rg.Intn(2000)
		_, in := content[v]
		if u.Insert(v) == in {
			t.Fatalf("insert %d disagrees with reference", v)
		}
		content[v] = struct{}{}
	}
	if u.Corrupt() {
		t.Fatal("tree corrupt after random inserts")
	}
	want := make([]int, 0, len(content))
	for v := range content {
		want = append(want, v)
	}
	slices.Sort(want)
	if got := drain(u.InOrder()); !slices.Equal(got, want) {
		t.Error("in-order traversal disagrees with reference")
	}
	if mn, _ := u.Minimum(); mn != want[0] {
		t.Errorf("minimum %d, want %d", mn, want[0])
	}
	if mx, _ := u.Maximum(); mx != want[len(want)-1] {
		t.Errorf("maximum %d, want %d", mx, want[len(want)-1])
	}
}

func TestRBTree_HeightBound(t *testing.T) {
	u := NewRBTree[int]()
	for i := 0; i < 1<<12; i++ {
		u.Insert(i)
	}
	if h, lim := float64(u.Height()), 2*math.Log2(float64(u.Size())+1); h > lim {
		t.Errorf("height %f exceeds %f at size %d", h, lim, u.Size())
	}
}

func TestRBTree_Clear(t *testing.T) {
	u := NewRBTree[int]()
	for i := 0; i < 10; i++ {
		u.Insert(i)
	}
	u.Clear()
	if !u.Empty() || u.Height() != 0 || u.Has(3) || !u.Valid() {
		t.Error("clear left elements behind")
	}
}

// the two balanced variants expose the same read surface
func TestTreeInterface(t *testing.T) {
	for _, u := range []Tree[int]{NewAVLTree[int](), NewRBTree[int]()} {
		for _, v := range rg.Perm(256) {
			u.Insert(v)
		}
		if u.Size() != 256 || u.Corrupt() {
			t.Errorf("%T: size %d corrupt %v", u, u.Size(), u.Corrupt())
		}
		if !u.Has(128) || u.Has(256) {
			t.Errorf("%T: membership disagrees", u)
		}
		if mn, _ := u.Minimum(); mn != 0 {
			t.Errorf("%T: minimum %d", u, mn)
		}
		if mx, _ := u.Maximum(); mx != 255 {
			t.Errorf("%T: maximum %d", u, mx)
		}
	}
}
