package bplus

import "sort"

// searchKey returns the slot of key in the leaf, or the slot where it
// would be inserted, plus whether it is present.
func (l *leafNode[K, V]) searchKey(key K) (int, bool) {
	idx := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].key >= key
	})
	if idx < len(l.entries) && l.entries[idx].key == key {
		return idx, true
	}
	return idx, false
}

// insert places (key, val) at the sorted position. If the key is already
// present its value is replaced and the previous value returned.
func (l *leafNode[K, V]) insert(key K, val V) (old V, replaced bool) {
	idx, found := l.searchKey(key)
	if found {
		old = l.entries[idx].val
		l.entries[idx].val = val
		return old, true
	}
	l.entries = insertAt(l.entries, idx, leafEntry[K, V]{key: key, val: val})
	return old, false
}

// remove deletes the entry for key, if present. An absent key is a no-op.
func (l *leafNode[K, V]) remove(key K) (V, bool) {
	idx, found := l.searchKey(key)
	if !found {
		var zero V
		return zero, false
	}
	val := l.entries[idx].val
	l.entries = removeRange(l.entries, idx, idx+1)
	return val, true
}

func (l *leafNode[K, V]) find(key K) (V, bool) {
	idx, found := l.searchKey(key)
	if !found {
		var zero V
		return zero, false
	}
	return l.entries[idx].val, true
}

// split moves the upper half (len/2 .. len) into a new leaf. The receiver
// keeps the lower half, so for odd sizes the new sibling holds the larger
// half.
func (l *leafNode[K, V]) split() treeNode[K, V] {
	assert(len(l.entries) > 1, "split on leaf with fewer than 2 entries")
	mid := len(l.entries) / 2
	right := &leafNode[K, V]{
		entries: append([]leafEntry[K, V](nil), l.entries[mid:]...),
	}
	l.entries = removeRange(l.entries, mid, len(l.entries))
	return right
}

func (l *leafNode[K, V]) lmergeInto(other treeNode[K, V]) {
	sib, ok := other.(*leafNode[K, V])
	assert(ok, "leaf lmergeInto expects a leaf sibling")
	merged := make([]leafEntry[K, V], 0, len(sib.entries)+len(l.entries))
	merged = append(merged, sib.entries...)
	merged = append(merged, l.entries...)
	l.entries = merged
	sib.entries = nil
}

func (l *leafNode[K, V]) rmergeInto(other treeNode[K, V]) {
	sib, ok := other.(*leafNode[K, V])
	assert(ok, "leaf rmergeInto expects a leaf sibling")
	sib.entries = append(sib.entries, l.entries...)
	l.entries = nil
}

func (l *leafNode[K, V]) donateLargestTo(sib treeNode[K, V]) {
	right, ok := sib.(*leafNode[K, V])
	assert(ok, "leaf donateLargestTo expects a leaf sibling")
	assert(len(l.entries) > 0, "donateLargestTo on empty leaf")
	last := len(l.entries) - 1
	entry := l.entries[last]
	l.entries = removeRange(l.entries, last, last+1)
	right.entries = insertAt(right.entries, 0, entry)
}

func (l *leafNode[K, V]) donateSmallestTo(sib treeNode[K, V]) {
	left, ok := sib.(*leafNode[K, V])
	assert(ok, "leaf donateSmallestTo expects a leaf sibling")
	assert(len(l.entries) > 0, "donateSmallestTo on empty leaf")
	entry := l.entries[0]
	l.entries = removeRange(l.entries, 0, 1)
	left.entries = append(left.entries, entry)
}

// updateParentSmallestKey repairs separator keys after the leaf's smallest
// key changed, in either direction: inserting a new minimum leaves the
// separator too large, removing the old minimum leaves it too small. It
// climbs through parent references and corrects the stale separator at each
// level. The climb continues only while the corrected slot is the first one,
// since only then does the ancestor's own smallest key change as well.
func (l *leafNode[K, V]) updateParentSmallestKey() {
	key := l.smallestKey()
	var child treeNode[K, V] = l
	for p := l.parent; p != nil; p = p.parent {
		idx := p.indexOfChild(child)
		if p.entries[idx].key == key {
			break
		}
		p.entries[idx].key = key
		if idx != 0 {
			break
		}
		child = p
	}
}
