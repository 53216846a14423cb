package dsu

// Element is a member of a disjoint set, identified by node identity
// rather than by value. Payloads need not be comparable and may repeat
// across elements.
type Element[T any] struct {
	Value  T
	parent *Element[T]
	rank   int
}

// NewElement creates a singleton set holding v.
func NewElement[T any](v T) *Element[T] {
	e := &Element[T]{Value: v}
	e.parent = e
	return e
}

// Find returns the representative of the set containing e, compressing
// the path along the way.
func (e *Element[T]) Find() *Element[T] {
	if e.parent != e {
		e.parent = e.parent.Find()
	}
	return e.parent
}

// Union merges the sets containing e and other and reports whether
// they were previously disjoint.
func (e *Element[T]) Union(other *Element[T]) bool {
	re := e.Find()
	ro := other.Find()
	if re == ro {
		return false
	}
	if re.rank < ro.rank {
		re, ro = ro, re
	}
	ro.parent = re
	if re.rank == ro.rank {
		re.rank++
	}
	return true
}

// Connected reports whether e and other are in the same set.
func (e *Element[T]) Connected(other *Element[T]) bool {
	return e.Find() == other.Find()
}
