/*
Package dsu implements disjoint-set union-find structures.

Two flavours are provided: Forest keys sets by comparable values in a
hash map, Element keeps set membership in heap nodes and identifies
sets by node identity. Both use path compression and union by rank.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dsu

// Forest is a disjoint-set structure over comparable values. The zero
// value is not usable; create forests with NewForest.
type Forest[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	sets   int
}

// NewForest creates an empty forest.
func NewForest[T comparable]() *Forest[T] {
	return &Forest[T]{
		parent: make(map[T]T),
		rank:   make(map[T]int),
	}
}

// MakeSet adds v as a singleton set. Adding a known value is a no-op.
func (f *Forest[T]) MakeSet(v T) {
	if _, ok := f.parent[v]; ok {
		return
	}
	f.parent[v] = v
	f.rank[v] = 0
	f.sets++
}

// Find returns the representative of the set containing v. The second
// return value is false if v has never been added. Paths are compressed
// as a side effect.
func (f *Forest[T]) Find(v T) (T, bool) {
	p, ok := f.parent[v]
	if !ok {
		var none T
		return none, false
	}
	if p == v {
		return v, true
	}
	root, _ := f.Find(p)
	f.parent[v] = root
	return root, true
}

// Union merges the sets containing a and b, adding unknown values as
// singletons first. It reports whether the two were in different sets.
func (f *Forest[T]) Union(a, b T) bool {
	f.MakeSet(a)
	f.MakeSet(b)
	ra, _ := f.Find(a)
	rb, _ := f.Find(b)
	if ra == rb {
		return false
	}
	if f.rank[ra] < f.rank[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	if f.rank[ra] == f.rank[rb] {
		f.rank[ra]++
	}
	f.sets--
	return true
}

// Connected reports whether a and b are in the same set. Unknown values
// are connected to nothing, not even themselves.
func (f *Forest[T]) Connected(a, b T) bool {
	ra, oka := f.Find(a)
	rb, okb := f.Find(b)
	return oka && okb && ra == rb
}

// Count returns the number of disjoint sets.
func (f *Forest[T]) Count() int {
	return f.sets
}
