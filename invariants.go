package bplus

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and should be used in tests while
// the implementation is evolving. A non-nil result always indicates a bug
// in this package.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolated)
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	if t.root == nil {
		if t.length != 0 {
			return fmt.Errorf("%w: empty tree has length %d", ErrInvariantViolated, t.length)
		}
		return nil
	}
	if t.root.parentNode() != nil {
		return fmt.Errorf("%w: root has a parent reference", ErrInvariantViolated)
	}
	entries, _, err := t.checkNode(t.root, true)
	if err != nil {
		return err
	}
	if entries != t.length {
		return fmt.Errorf("%w: length mismatch (counted %d, recorded %d)",
			ErrInvariantViolated, entries, t.length)
	}
	return nil
}

func (t *Tree[K, V]) checkNode(n treeNode[K, V], isRoot bool) (entries int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariantViolated)
	}
	if err := t.checkOccupancy(n, isRoot); err != nil {
		return 0, 0, err
	}
	switch n := n.(type) {
	case *leafNode[K, V]:
		for i := 1; i < len(n.entries); i++ {
			if n.entries[i-1].key >= n.entries[i].key {
				return 0, 0, fmt.Errorf("%w: leaf keys not strictly increasing at slot %d",
					ErrInvariantViolated, i)
			}
		}
		return len(n.entries), 1, nil
	case *innerNode[K, V]:
		var total int
		var childHeight int
		for i, e := range n.entries {
			if i > 0 && n.entries[i-1].key >= e.key {
				return 0, 0, fmt.Errorf("%w: separators not strictly increasing at slot %d",
					ErrInvariantViolated, i)
			}
			if e.child == nil {
				return 0, 0, fmt.Errorf("%w: nil child at slot %d", ErrInvariantViolated, i)
			}
			if e.child.parentNode() != n {
				return 0, 0, fmt.Errorf("%w: child at slot %d has a stale parent reference",
					ErrInvariantViolated, i)
			}
			if e.key != e.child.smallestKey() {
				return 0, 0, fmt.Errorf("%w: separator at slot %d differs from child's smallest key",
					ErrInvariantViolated, i)
			}
			cEntries, cHeight, cErr := t.checkNode(e.child, false)
			if cErr != nil {
				return 0, 0, cErr
			}
			total += cEntries
			if i == 0 {
				childHeight = cHeight
			} else if cHeight != childHeight {
				return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariantViolated)
			}
		}
		return total, childHeight + 1, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown node type", ErrInvariantViolated)
	}
}

func (t *Tree[K, V]) checkOccupancy(n treeNode[K, V], isRoot bool) error {
	size := n.size()
	if size > t.cfg.Order {
		return fmt.Errorf("%w: node size %d exceeds order %d", ErrInvariantViolated, size, t.cfg.Order)
	}
	lower := t.minFill()
	if isRoot {
		if n.isLeaf() {
			lower = 1
		} else {
			lower = 2
		}
	}
	if size < lower {
		return fmt.Errorf("%w: node size %d below lower bound %d", ErrInvariantViolated, size, lower)
	}
	return nil
}
