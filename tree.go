package bplus

import "cmp"

// Tree is an ordered map backed by an order-bounded B+ tree.
//
// K is the key type, totally ordered through cmp.Ordered; V is the value
// type. The zero Tree is not usable: construct trees with New.
type Tree[K cmp.Ordered, V any] struct {
	cfg    Config
	root   treeNode[K, V]
	length int
}

// New creates an empty tree with validated configuration.
func New[K cmp.Ordered, V any](cfg Config) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config {
	return t.cfg
}

// Order returns the maximum number of entries per node.
func (t *Tree[K, V]) Order() int {
	return t.cfg.Order
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Height returns the tree height, where 0 means empty and 1 means a leaf
// root. The tree enforces uniform leaf depth, so following the left spine
// is sufficient.
func (t *Tree[K, V]) Height() int {
	if t == nil || t.root == nil {
		return 0
	}
	h := 0
	n := t.root
	for {
		h++
		inner, ok := n.(*innerNode[K, V])
		if !ok {
			return h
		}
		n = inner.entries[0].child
	}
}

// minFill is the smallest legal entry count for a non-root node.
func (t *Tree[K, V]) minFill() int {
	return (t.cfg.Order + 1) / 2
}

// descend walks from the root to the leaf owning key.
func (t *Tree[K, V]) descend(key K) *leafNode[K, V] {
	assert(t.root != nil, "descend on empty tree")
	n := t.root
	for !n.isLeaf() {
		inner, ok := n.(*innerNode[K, V])
		assert(ok, "non-leaf node must be internal")
		n = inner.find(key)
	}
	leaf, ok := n.(*leafNode[K, V])
	assert(ok, "descend must terminate at a leaf")
	return leaf
}

// Insert stores val under key. If the key was already present, the previous
// value is replaced and returned.
func (t *Tree[K, V]) Insert(key K, val V) (old V, replaced bool) {
	if t.root == nil {
		t.root = &leafNode[K, V]{entries: []leafEntry[K, V]{{key: key, val: val}}}
		t.length = 1
		return old, false
	}
	leaf := t.descend(key)
	old, replaced = leaf.insert(key, val)
	if replaced {
		return old, true
	}
	t.length++
	if leaf.parent != nil && leaf.smallestKey() == key {
		// A new tree-wide or subtree-wide minimum leaves stale separators
		// on the path above.
		leaf.updateParentSmallestKey()
	}
	t.propagateOverflow(leaf)
	return old, false
}

// propagateOverflow splits overfull nodes bottom-up along parent
// references until the tree is within bounds, growing the root when the
// split reaches it.
func (t *Tree[K, V]) propagateOverflow(from treeNode[K, V]) {
	n := from
	for n.size() > t.cfg.Order {
		right := n.split()
		p := n.parentNode()
		if p == nil {
			assert(n == t.root, "parentless node must be the root")
			t.root = newInternalWithChildren(n, right)
			return
		}
		right.setParent(p)
		prev := p.insertOrReplace(right.smallestKey(), right)
		assert(prev == nil, "split sibling separator collided with an existing entry")
		n = p
	}
}

// Find returns the value stored under key.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	if t == nil || t.root == nil {
		var zero V
		return zero, false
	}
	return t.descend(key).find(key)
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Find(key)
	return ok
}

// Remove deletes the entry stored under key and returns its value. An
// absent key leaves the tree untouched.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	if t == nil || t.root == nil {
		var zero V
		return zero, false
	}
	leaf := t.descend(key)
	wasSmallest := leaf.smallestKey() == key
	val, ok := leaf.remove(key)
	if !ok {
		var zero V
		return zero, false
	}
	t.length--
	if wasSmallest && len(leaf.entries) > 0 && leaf.parent != nil {
		leaf.updateParentSmallestKey()
	}
	t.rebalanceAfterRemove(leaf)
	t.collapseRoot()
	return val, true
}

// rebalanceAfterRemove repairs occupancy along the path from a shrunken
// node up to the root: borrow from the left sibling, else from the right
// sibling, else merge with whichever sibling exists, propagating the
// underflow check one level up after each merge.
func (t *Tree[K, V]) rebalanceAfterRemove(from treeNode[K, V]) {
	min := t.minFill()
	n := from
	for n != t.root && n.size() < min {
		p := n.parentNode()
		assert(p != nil, "non-root node without parent")
		nk := n.smallestKey()
		assert(p.entries[p.slotFor(nk)].child == n, "separator does not address its child")
		leftE, hasLeft := p.leftEntry(nk)
		rightE, hasRight := p.rightEntry(nk)
		assert(hasLeft || hasRight, "underfull node without any sibling")

		if hasLeft && leftE.child.size() > min {
			leftE.child.donateLargestTo(n)
			p.entries[p.indexOfChild(n)].key = n.smallestKey()
			return
		}
		if hasRight && rightE.child.size() > min {
			rightE.child.donateSmallestTo(n)
			p.entries[p.indexOfChild(rightE.child)].key = rightE.child.smallestKey()
			return
		}

		if hasLeft {
			// Absorb the left sibling into n, rebind the left slot to n
			// and drop n's own slot.
			n.lmergeInto(leftE.child)
			prev := p.insertOrReplace(leftE.key, n)
			assert(prev == leftE.child, "merge must rebind the absorbed sibling's slot")
			_, removed := p.remove(nk)
			assert(removed, "merge must drop the absorbed slot's separator")
		} else {
			// Absorb the right sibling into n; the sibling becomes the
			// discarded shell.
			rightE.child.rmergeInto(n)
			shell, removed := p.remove(rightE.key)
			assert(removed && shell == rightE.child, "merge must drop the absorbed sibling")
		}
		n = p
	}
}

// collapseRoot re-normalizes the root after deletions: an empty root leaf
// empties the tree, and a root internal node with a single child is
// replaced by that child (the height shrinks).
func (t *Tree[K, V]) collapseRoot() {
	if t.root == nil {
		return
	}
	if leaf, ok := t.root.(*leafNode[K, V]); ok {
		if len(leaf.entries) == 0 {
			t.root = nil
		}
		return
	}
	for {
		inner, ok := t.root.(*innerNode[K, V])
		if !ok || len(inner.entries) != 1 {
			return
		}
		child := inner.entries[0].child
		child.setParent(nil)
		t.root = child
	}
}
