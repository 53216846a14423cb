package bplus

import (
	"errors"
	"math/rand"
	"testing"
)

func newIntTree(t *testing.T, order int) *Tree[int, int] {
	t.Helper()
	tree, err := New[int, int](Config{Order: order})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func mustCheck(t *testing.T, tree *Tree[int, int]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func collectKeys(tree *Tree[int, int]) []int {
	keys := make([]int, 0, tree.Len())
	tree.ForEach(func(k, _ int) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New[int, int](Config{Order: 2})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for order 2, got %v", err)
	}
}

func TestNewDefaultsOrder(t *testing.T) {
	tree, err := New[int, int](Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Order() != DefaultOrder {
		t.Fatalf("expected default order %d, got %d", DefaultOrder, tree.Order())
	}
}

func TestEmptyTreeBehavior(t *testing.T) {
	tree := newIntTree(t, 4)
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if _, ok := tree.Find(42); ok {
		t.Fatalf("Find on empty tree must come up empty")
	}
	if _, ok := tree.Remove(42); ok {
		t.Fatalf("Remove on empty tree must come up empty")
	}
	if tree.Contains(42) {
		t.Fatalf("Contains on empty tree must be false")
	}
	mustCheck(t, tree)
}

func TestInsertFindRoundTrip(t *testing.T) {
	tree := newIntTree(t, 4)
	for i := 0; i < 64; i++ {
		tree.Insert(i*3, i*100)
	}
	mustCheck(t, tree)
	for i := 0; i < 64; i++ {
		v, ok := tree.Find(i * 3)
		if !ok || v != i*100 {
			t.Fatalf("Find(%d) = (%d, %v), want (%d, true)", i*3, v, ok, i*100)
		}
	}
	if tree.Contains(1) {
		t.Fatalf("Contains must be false for a key between stored keys")
	}
}

func TestInsertOverwrite(t *testing.T) {
	tree := newIntTree(t, 4)
	if _, replaced := tree.Insert(7, 1); replaced {
		t.Fatalf("first insert must not report a replacement")
	}
	old, replaced := tree.Insert(7, 2)
	if !replaced || old != 1 {
		t.Fatalf("second insert = (%d, %v), want (1, true)", old, replaced)
	}
	if v, _ := tree.Find(7); v != 2 {
		t.Fatalf("Find after overwrite = %d, want 2", v)
	}
	if tree.Len() != 1 {
		t.Fatalf("overwrite must not grow the tree, len=%d", tree.Len())
	}
	mustCheck(t, tree)
}

// The canonical split scenario: order 4, ascending inserts. The 5th insert
// overflows the root leaf, which splits at len/2 into a 2-entry left leaf
// and a 3-entry right leaf under a fresh internal root keyed (0, 10).
func TestRootLeafSplitScenario(t *testing.T) {
	tree := newIntTree(t, 4)
	keys := []int{0, 5, 10, 15, 20, 25, 30, 35}
	for i, k := range keys[:5] {
		tree.Insert(k, i)
	}
	mustCheck(t, tree)
	if tree.Height() != 2 {
		t.Fatalf("expected height 2 after root split, got %d", tree.Height())
	}
	var views []NodeView[int, int]
	tree.WalkNodes(func(view NodeView[int, int]) bool {
		views = append(views, view)
		return true
	})
	if len(views) != 3 {
		t.Fatalf("expected 3 nodes after split, got %d", len(views))
	}
	root := views[0]
	if root.Leaf || len(root.Keys) != 2 || root.Keys[0] != 0 || root.Keys[1] != 10 {
		t.Fatalf("unexpected root after split: %+v", root)
	}
	left, right := views[1], views[2]
	if !left.Leaf || !right.Leaf {
		t.Fatalf("children of the split root must be leaves")
	}
	if len(left.Entries) != 2 || len(right.Entries) != 3 {
		t.Fatalf("split sizes = %d/%d, want 2/3", len(left.Entries), len(right.Entries))
	}
	for i, k := range keys[5:] {
		tree.Insert(k, 5+i)
	}
	mustCheck(t, tree)
	if got := collectKeys(tree); len(got) != len(keys) {
		t.Fatalf("expected %d keys, got %d", len(keys), len(got))
	}
}

func TestSplitBalanceLeaf(t *testing.T) {
	leaf := &leafNode[int, int]{}
	for i := 0; i < 5; i++ {
		leaf.insert(i, i)
	}
	right := leaf.split().(*leafNode[int, int])
	if len(leaf.entries) != 2 || len(right.entries) != 3 {
		t.Fatalf("split sizes = %d/%d, want 2/3", len(leaf.entries), len(right.entries))
	}
	if leaf.size() > right.size() {
		t.Fatalf("left sibling must not outgrow the right one")
	}
	if leaf.largestKey() >= right.smallestKey() {
		t.Fatalf("split halves out of order")
	}
}

func TestSortInvariantAfterInserts(t *testing.T) {
	tree := newIntTree(t, 3)
	r := rand.New(rand.NewSource(99))
	perm := r.Perm(500)
	for _, k := range perm {
		tree.Insert(k, k)
	}
	mustCheck(t, tree)
	keys := collectKeys(tree)
	if len(keys) != 500 {
		t.Fatalf("expected 500 keys, got %d", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not strictly increasing at %d: %d >= %d", i, keys[i-1], keys[i])
		}
	}
}

func TestInsertNewMinimumRepairsSeparators(t *testing.T) {
	tree := newIntTree(t, 3)
	for k := 100; k > 0; k-- {
		tree.Insert(k, k)
		mustCheck(t, tree)
	}
	if got := collectKeys(tree); got[0] != 1 || len(got) != 100 {
		t.Fatalf("unexpected key range after descending inserts: first=%d len=%d", got[0], len(got))
	}
}

func TestRemoveSimple(t *testing.T) {
	tree := newIntTree(t, 4)
	for i := 0; i < 10; i++ {
		tree.Insert(i, i*2)
	}
	v, ok := tree.Remove(6)
	if !ok || v != 12 {
		t.Fatalf("Remove(6) = (%d, %v), want (12, true)", v, ok)
	}
	if tree.Contains(6) {
		t.Fatalf("removed key still present")
	}
	if _, ok := tree.Remove(6); ok {
		t.Fatalf("second Remove of the same key must come up empty")
	}
	if tree.Len() != 9 {
		t.Fatalf("unexpected length after removal: %d", tree.Len())
	}
	mustCheck(t, tree)
}

func TestRemoveSmallestUpdatesSeparators(t *testing.T) {
	tree := newIntTree(t, 3)
	for i := 0; i < 50; i++ {
		tree.Insert(i, i)
	}
	// Removing ascending minima keeps knocking out leftmost leaf heads,
	// which must ripple fresh separators up the left spine.
	for i := 0; i < 40; i++ {
		if _, ok := tree.Remove(i); !ok {
			t.Fatalf("Remove(%d) unexpectedly empty", i)
		}
		mustCheck(t, tree)
	}
	if got := collectKeys(tree); got[0] != 40 || len(got) != 10 {
		t.Fatalf("unexpected remainder: first=%d len=%d", got[0], len(got))
	}
}

func TestRemoveLeafHeadBeforeMerge(t *testing.T) {
	// Removing a right leaf's smallest key leaves its separator pointing at
	// a key no longer present; the separator must grow to the new head so
	// that the follow-up underflow merge can still address the leaf's slot.
	tree := newIntTree(t, 3)
	for _, k := range []int{65, 14, 3, 77} {
		tree.Insert(k, k)
	}
	if _, ok := tree.Remove(65); !ok {
		t.Fatalf("Remove(65) unexpectedly empty")
	}
	mustCheck(t, tree)
	if got := collectKeys(tree); len(got) != 3 || got[0] != 3 || got[2] != 77 {
		t.Fatalf("unexpected remainder: %v", got)
	}
}

func TestRemoveLeafHeadWithoutUnderflow(t *testing.T) {
	// Same separator staleness, but the leaf stays above the fill bound, so
	// the repaired separator is the only structural change.
	tree := newIntTree(t, 4)
	for _, k := range []int{0, 5, 10, 15, 20} {
		tree.Insert(k, k)
	}
	if _, ok := tree.Remove(10); !ok {
		t.Fatalf("Remove(10) unexpectedly empty")
	}
	mustCheck(t, tree)
	if _, ok := tree.Find(15); !ok {
		t.Fatalf("Find(15) must succeed after removing its leaf's old head")
	}
}

func TestSizeAccounting(t *testing.T) {
	tree := newIntTree(t, 4)
	model := make(map[int]int)
	r := rand.New(rand.NewSource(7))
	for step := 0; step < 2000; step++ {
		k := r.Intn(200)
		switch r.Intn(3) {
		case 0, 1:
			tree.Insert(k, step)
			model[k] = step
		case 2:
			_, ok := tree.Remove(k)
			_, inModel := model[k]
			if ok != inModel {
				t.Fatalf("step %d: Remove(%d) = %v, model says %v", step, k, ok, inModel)
			}
			delete(model, k)
		}
		if tree.Len() != len(model) {
			t.Fatalf("step %d: Len() = %d, model holds %d", step, tree.Len(), len(model))
		}
	}
	mustCheck(t, tree)
}

func TestHeightGrowsAndShrinks(t *testing.T) {
	tree := newIntTree(t, 3)
	for i := 0; i < 200; i++ {
		tree.Insert(i, i)
	}
	grown := tree.Height()
	if grown < 3 {
		t.Fatalf("expected height >= 3 after 200 inserts at order 3, got %d", grown)
	}
	for i := 0; i < 200; i++ {
		tree.Remove(i)
		mustCheck(t, tree)
	}
	if !tree.IsEmpty() || tree.Height() != 0 {
		t.Fatalf("tree must collapse back to empty, height=%d", tree.Height())
	}
}

func TestRandomInsertRemoveSoak(t *testing.T) {
	tree := newIntTree(t, 4)
	r := rand.New(rand.NewSource(12345))
	keys := r.Perm(1000)
	for _, k := range keys {
		tree.Insert(k, k*10)
	}
	mustCheck(t, tree)
	if tree.Len() != 1000 {
		t.Fatalf("expected 1000 entries, got %d", tree.Len())
	}
	order := r.Perm(1000)
	for i, idx := range order {
		k := keys[idx]
		v, ok := tree.Remove(k)
		if !ok || v != k*10 {
			t.Fatalf("Remove(%d) = (%d, %v), want (%d, true)", k, v, ok, k*10)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("invariants broken after removal %d of %d: %v", i+1, len(order), err)
		}
	}
	if !tree.IsEmpty() {
		t.Fatalf("tree must be empty after removing every key")
	}
}

func TestForEachEarlyStop(t *testing.T) {
	tree := newIntTree(t, 4)
	for i := 0; i < 30; i++ {
		tree.Insert(i, i)
	}
	seen := 0
	tree.ForEach(func(k, _ int) bool {
		seen++
		return k < 9
	})
	if seen != 10 {
		t.Fatalf("expected traversal to stop after 10 visits, got %d", seen)
	}
}

func TestWalkNodesViews(t *testing.T) {
	tree := newIntTree(t, 3)
	for i := 0; i < 30; i++ {
		tree.Insert(i, i)
	}
	mustCheck(t, tree)
	seen := make(map[int]NodeView[int, int])
	tree.WalkNodes(func(view NodeView[int, int]) bool {
		if _, dup := seen[view.ID]; dup {
			t.Fatalf("node ID %d emitted twice", view.ID)
		}
		seen[view.ID] = view
		return true
	})
	root, ok := seen[1]
	if !ok || root.ParentID != 0 || root.Depth != 0 {
		t.Fatalf("root view missing or malformed: %+v", root)
	}
	for id, view := range seen {
		if id == 1 {
			continue
		}
		parent, ok := seen[view.ParentID]
		if !ok {
			t.Fatalf("node %d references unknown parent %d", id, view.ParentID)
		}
		if view.Depth != parent.Depth+1 {
			t.Fatalf("node %d depth %d under parent depth %d", id, view.Depth, parent.Depth)
		}
		found := false
		for _, c := range parent.Children {
			if c == id {
				found = true
			}
		}
		if !found {
			t.Fatalf("node %d not listed among its parent's children", id)
		}
	}
}
