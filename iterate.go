package bplus

import "cmp"

// ForEach walks all entries in ascending key order.
//
// Iteration stops early if the callback returns false. The callback must
// not mutate the tree.
func (t *Tree[K, V]) ForEach(fn func(key K, val V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[K, V]) forEachNode(n treeNode[K, V], fn func(key K, val V) bool) bool {
	assert(n != nil, "forEachNode called with nil node")
	switch n := n.(type) {
	case *leafNode[K, V]:
		for _, e := range n.entries {
			if !fn(e.key, e.val) {
				return false
			}
		}
	case *innerNode[K, V]:
		for _, e := range n.entries {
			if !t.forEachNode(e.child, fn) {
				return false
			}
		}
	default:
		assert(false, "unknown tree node type")
	}
	return true
}

// Pair is a key/value pair exposed by the read-only node walker.
type Pair[K cmp.Ordered, V any] struct {
	Key K
	Val V
}

// NodeView is a read-only snapshot of a single node, produced by
// WalkNodes for visualization and debugging tooling. IDs are stable for
// the duration of one walk: the root is always 1, a ParentID of 0 marks
// the root itself.
type NodeView[K cmp.Ordered, V any] struct {
	ID       int
	ParentID int
	Depth    int
	Leaf     bool
	Keys     []K          // entry keys (leaf) or separator keys (internal)
	Entries  []Pair[K, V] // leaf entries; nil for internal nodes
	Children []int        // child IDs in key order; nil for leaves
}

// nodeids allocates per-walk numeric identities for nodes.
type nodeids[K cmp.Ordered, V any] struct {
	table map[treeNode[K, V]]int
	max   int
}

func newNodeids[K cmp.Ordered, V any]() *nodeids[K, V] {
	return &nodeids[K, V]{
		table: make(map[treeNode[K, V]]int),
		max:   1,
	}
}

func (ids *nodeids[K, V]) alloc(n treeNode[K, V]) int {
	if id, ok := ids.table[n]; ok {
		return id
	}
	ids.table[n] = ids.max
	ids.max++
	return ids.max - 1
}

// WalkNodes visits every node depth-first in key order, handing the
// callback a read-only view. It is the only structural interface exposed
// to visualization collaborators and is never required for correctness.
//
// The walk stops early if the callback returns false.
func (t *Tree[K, V]) WalkNodes(fn func(view NodeView[K, V]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	ids := newNodeids[K, V]()
	ids.alloc(t.root)
	t.walkNode(t.root, 0, 0, ids, fn)
}

func (t *Tree[K, V]) walkNode(
	n treeNode[K, V], parentID, depth int,
	ids *nodeids[K, V], fn func(view NodeView[K, V]) bool,
) bool {
	view := NodeView[K, V]{
		ID:       ids.alloc(n),
		ParentID: parentID,
		Depth:    depth,
		Leaf:     n.isLeaf(),
	}
	switch n := n.(type) {
	case *leafNode[K, V]:
		view.Keys = make([]K, 0, len(n.entries))
		view.Entries = make([]Pair[K, V], 0, len(n.entries))
		for _, e := range n.entries {
			view.Keys = append(view.Keys, e.key)
			view.Entries = append(view.Entries, Pair[K, V]{Key: e.key, Val: e.val})
		}
		return fn(view)
	case *innerNode[K, V]:
		view.Keys = make([]K, 0, len(n.entries))
		view.Children = make([]int, 0, len(n.entries))
		for _, e := range n.entries {
			view.Keys = append(view.Keys, e.key)
			view.Children = append(view.Children, ids.alloc(e.child))
		}
		if !fn(view) {
			return false
		}
		for _, e := range n.entries {
			if !t.walkNode(e.child, view.ID, depth+1, ids, fn) {
				return false
			}
		}
		return true
	default:
		assert(false, "unknown tree node type")
		return false
	}
}
