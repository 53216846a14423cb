package bplus

import (
	"cmp"
	"sort"
)

// slotFor returns the index of the entry with the greatest separator <= key,
// or 0 when all separators are greater (keys below the tree minimum route
// through the first child).
func (n *innerNode[K, V]) slotFor(key K) int {
	assert(len(n.entries) > 0, "slotFor on internal node without entries")
	idx := sort.Search(len(n.entries), func(i int) bool {
		return n.entries[i].key > key
	})
	if idx == 0 {
		return 0
	}
	return idx - 1
}

// find returns the child to descend into for key.
func (n *innerNode[K, V]) find(key K) treeNode[K, V] {
	return n.entries[n.slotFor(key)].child
}

// insertOrReplace binds key to child. An existing entry with the same
// separator has its child reference overwritten and the previous child is
// returned so the caller can reclaim it; otherwise a new entry is inserted
// at the sorted position. An empty node accepts the entry at slot 0, which
// bootstraps the first internal level.
func (n *innerNode[K, V]) insertOrReplace(key K, child treeNode[K, V]) treeNode[K, V] {
	idx := sort.Search(len(n.entries), func(i int) bool {
		return n.entries[i].key > key
	})
	if idx > 0 && n.entries[idx-1].key == key {
		prev := n.entries[idx-1].child
		n.entries[idx-1].child = child
		return prev
	}
	n.entries = insertAt(n.entries, idx, innerEntry[K, V]{key: key, child: child})
	return nil
}

// remove deletes the entry with exactly the separator key and returns its
// child. An absent key is a no-op.
func (n *innerNode[K, V]) remove(key K) (treeNode[K, V], bool) {
	idx := sort.Search(len(n.entries), func(i int) bool {
		return n.entries[i].key >= key
	})
	if idx >= len(n.entries) || n.entries[idx].key != key {
		return nil, false
	}
	child := n.entries[idx].child
	n.entries = removeRange(n.entries, idx, idx+1)
	return child, true
}

// leftEntry returns the entry immediately below the one addressed by key,
// used to locate a rebalancing candidate. The second result is false when
// key addresses the first entry.
func (n *innerNode[K, V]) leftEntry(key K) (innerEntry[K, V], bool) {
	idx := n.slotFor(key)
	if idx == 0 {
		var zero innerEntry[K, V]
		return zero, false
	}
	return n.entries[idx-1], true
}

// rightEntry returns the entry immediately above the one addressed by key.
// The second result is false when key addresses the last entry.
func (n *innerNode[K, V]) rightEntry(key K) (innerEntry[K, V], bool) {
	idx := n.slotFor(key)
	if idx+1 >= len(n.entries) {
		var zero innerEntry[K, V]
		return zero, false
	}
	return n.entries[idx+1], true
}

// indexOfChild locates a child by identity. The parent back-reference
// invariant guarantees the child is present; a miss is a defect.
func (n *innerNode[K, V]) indexOfChild(child treeNode[K, V]) int {
	for i, e := range n.entries {
		if e.child == child {
			return i
		}
	}
	assert(false, "child not present in its recorded parent")
	return -1
}

// split moves the upper half of the entries into a new internal node and
// re-parents the transferred children. Like the leaf split, the receiver
// keeps the (smaller or equal) lower half.
func (n *innerNode[K, V]) split() treeNode[K, V] {
	assert(len(n.entries) > 1, "split on internal node with fewer than 2 entries")
	mid := len(n.entries) / 2
	right := &innerNode[K, V]{
		entries: append([]innerEntry[K, V](nil), n.entries[mid:]...),
	}
	for _, e := range right.entries {
		e.child.setParent(right)
	}
	n.entries = removeRange(n.entries, mid, len(n.entries))
	return right
}

func (n *innerNode[K, V]) lmergeInto(other treeNode[K, V]) {
	sib, ok := other.(*innerNode[K, V])
	assert(ok, "internal lmergeInto expects an internal sibling")
	for _, e := range sib.entries {
		e.child.setParent(n)
	}
	merged := make([]innerEntry[K, V], 0, len(sib.entries)+len(n.entries))
	merged = append(merged, sib.entries...)
	merged = append(merged, n.entries...)
	n.entries = merged
	sib.entries = nil
}

func (n *innerNode[K, V]) rmergeInto(other treeNode[K, V]) {
	sib, ok := other.(*innerNode[K, V])
	assert(ok, "internal rmergeInto expects an internal sibling")
	for _, e := range n.entries {
		e.child.setParent(sib)
	}
	sib.entries = append(sib.entries, n.entries...)
	n.entries = nil
}

func (n *innerNode[K, V]) donateLargestTo(sib treeNode[K, V]) {
	right, ok := sib.(*innerNode[K, V])
	assert(ok, "internal donateLargestTo expects an internal sibling")
	assert(len(n.entries) > 0, "donateLargestTo on empty internal node")
	last := len(n.entries) - 1
	entry := n.entries[last]
	n.entries = removeRange(n.entries, last, last+1)
	entry.child.setParent(right)
	right.entries = insertAt(right.entries, 0, entry)
}

func (n *innerNode[K, V]) donateSmallestTo(sib treeNode[K, V]) {
	left, ok := sib.(*innerNode[K, V])
	assert(ok, "internal donateSmallestTo expects an internal sibling")
	assert(len(n.entries) > 0, "donateSmallestTo on empty internal node")
	entry := n.entries[0]
	n.entries = removeRange(n.entries, 0, 1)
	entry.child.setParent(left)
	left.entries = append(left.entries, entry)
}

// newInternalWithChildren constructs a fresh internal node over two
// children, keyed by their smallest keys, and re-parents both. It serves
// both root growth after a root split and the materialization of a split
// product one level up.
func newInternalWithChildren[K cmp.Ordered, V any](c1, c2 treeNode[K, V]) *innerNode[K, V] {
	assert(c1.smallestKey() <= c2.smallestKey(),
		"newInternalWithChildren requires children in key order")
	n := &innerNode[K, V]{
		entries: []innerEntry[K, V]{
			{key: c1.smallestKey(), child: c1},
			{key: c2.smallestKey(), child: c2},
		},
	}
	c1.setParent(n)
	c2.setParent(n)
	return n
}
