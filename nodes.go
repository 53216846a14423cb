package bplus

import "cmp"

// treeNode is the tagged union over leaf and internal nodes.
//
// The polymorphic surface is deliberately small: variant-specific logic
// lives behind exhaustive type switches at the use sites, and a mismatch
// between expected and actual variant is an assertion failure, never a
// recoverable condition.
type treeNode[K cmp.Ordered, V any] interface {
	isLeaf() bool
	size() int
	smallestKey() K
	largestKey() K
	parentNode() *innerNode[K, V]
	setParent(p *innerNode[K, V])
	// split moves the upper half of the entries into a freshly allocated
	// sibling of the same variant and returns it. The receiver keeps the
	// lower half and never ends up larger than the new sibling. Linking
	// the sibling into a parent is the caller's responsibility.
	split() treeNode[K, V]
	// lmergeInto absorbs the left sibling `other`: afterwards the receiver
	// holds other's entries followed by its own, and other is an empty
	// shell to be discarded by the caller.
	lmergeInto(other treeNode[K, V])
	// rmergeInto appends the receiver's entries onto the end of the left
	// sibling `other`: afterwards other holds the union and the receiver
	// is the empty shell.
	rmergeInto(other treeNode[K, V])
	// donateLargestTo moves the receiver's largest entry to the front of
	// its right sibling sib.
	donateLargestTo(sib treeNode[K, V])
	// donateSmallestTo moves the receiver's smallest entry to the end of
	// its left sibling sib.
	donateSmallestTo(sib treeNode[K, V])
}

// leafEntry is a single key/value pair stored in a leaf.
type leafEntry[K cmp.Ordered, V any] struct {
	key K
	val V
}

// innerEntry routes a separator key to a child subtree. The separator is
// always the smallest key contained in the child.
type innerEntry[K cmp.Ordered, V any] struct {
	key   K
	child treeNode[K, V]
}

type leafNode[K cmp.Ordered, V any] struct {
	// parent is a non-owning back-reference; nil only for the root.
	parent  *innerNode[K, V]
	entries []leafEntry[K, V]
}

func (l *leafNode[K, V]) isLeaf() bool { return true }

func (l *leafNode[K, V]) size() int { return len(l.entries) }

func (l *leafNode[K, V]) smallestKey() K {
	assert(len(l.entries) > 0, "smallestKey on empty leaf")
	return l.entries[0].key
}

func (l *leafNode[K, V]) largestKey() K {
	assert(len(l.entries) > 0, "largestKey on empty leaf")
	return l.entries[len(l.entries)-1].key
}

func (l *leafNode[K, V]) parentNode() *innerNode[K, V] { return l.parent }

func (l *leafNode[K, V]) setParent(p *innerNode[K, V]) { l.parent = p }

type innerNode[K cmp.Ordered, V any] struct {
	// parent is a non-owning back-reference; nil only for the root.
	parent  *innerNode[K, V]
	entries []innerEntry[K, V]
}

func (n *innerNode[K, V]) isLeaf() bool { return false }

func (n *innerNode[K, V]) size() int { return len(n.entries) }

func (n *innerNode[K, V]) smallestKey() K {
	assert(len(n.entries) > 0, "smallestKey on empty internal node")
	return n.entries[0].key
}

func (n *innerNode[K, V]) largestKey() K {
	assert(len(n.entries) > 0, "largestKey on empty internal node")
	return n.entries[len(n.entries)-1].key
}

func (n *innerNode[K, V]) parentNode() *innerNode[K, V] { return n.parent }

func (n *innerNode[K, V]) setParent(p *innerNode[K, V]) { n.parent = p }
