/*
Package trie provides a prefix trie over character sequences.

The trie stores words as paths of runes; a terminal flag marks word ends,
so stored words may be prefixes of one another. Unlike the B+ tree in the
root package there is no balancing: the structure is purely recursive.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package trie

import "sort"

// Trie is a prefix tree over strings. The zero value is an empty,
// ready-to-use trie.
type Trie struct {
	root   node
	length int
}

type node struct {
	children map[rune]*node
	terminal bool
}

func (n *node) child(r rune) *node {
	if n.children == nil {
		return nil
	}
	return n.children[r]
}

func (n *node) ensureChild(r rune) *node {
	if n.children == nil {
		n.children = make(map[rune]*node)
	}
	c := n.children[r]
	if c == nil {
		c = &node{}
		n.children[r] = c
	}
	return c
}

// Len returns the number of words stored.
func (t *Trie) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Insert stores word. Inserting a word twice is a no-op; the empty word
// is a valid entry (the root becomes terminal).
func (t *Trie) Insert(word string) {
	n := &t.root
	for _, r := range word {
		n = n.ensureChild(r)
	}
	if !n.terminal {
		n.terminal = true
		t.length++
	}
}

// Contains reports whether word has been inserted. Prefixes of stored
// words do not count unless inserted themselves.
func (t *Trie) Contains(word string) bool {
	n := t.locate(word)
	return n != nil && n.terminal
}

// Remove deletes word and reports whether it was present. The spine of
// nodes left childless and non-terminal is pruned.
func (t *Trie) Remove(word string) bool {
	type step struct {
		parent *node
		r      rune
	}
	spine := make([]step, 0, len(word))
	n := &t.root
	for _, r := range word {
		c := n.child(r)
		if c == nil {
			return false
		}
		spine = append(spine, step{parent: n, r: r})
		n = c
	}
	if !n.terminal {
		return false
	}
	n.terminal = false
	t.length--
	for i := len(spine) - 1; i >= 0; i-- {
		if n.terminal || len(n.children) > 0 {
			break
		}
		delete(spine[i].parent.children, spine[i].r)
		n = spine[i].parent
	}
	return true
}

// Autocomplete returns every stored word starting with prefix, in
// lexicographic order. The prefix itself is included when stored.
func (t *Trie) Autocomplete(prefix string) []string {
	n := t.locate(prefix)
	if n == nil {
		return nil
	}
	var words []string
	collect(n, []rune(prefix), &words)
	return words
}

func (t *Trie) locate(word string) *node {
	n := &t.root
	for _, r := range word {
		n = n.child(r)
		if n == nil {
			return nil
		}
	}
	return n
}

func collect(n *node, path []rune, words *[]string) {
	if n.terminal {
		*words = append(*words, string(path))
	}
	if len(n.children) == 0 {
		return
	}
	runes := make([]rune, 0, len(n.children))
	for r := range n.children {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	for _, r := range runes {
		collect(n.children[r], append(path, r), words)
	}
}
