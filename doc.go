/*
Package bplus provides an in-memory ordered map backed by an order-bounded
B+ tree.

All entries live in leaf nodes; internal nodes carry routing information
only. The tree is kept balanced under insertion and deletion, so lookup,
insertion and deletion cost O(log n) node visits.

Separator convention:
  - An internal node holds exactly one separator key per child, and that
    separator always equals the smallest key reachable through the child.
    This differs from the textbook B+ tree layout of n−1 separators for
    n children, and all routing, split and rebalance logic honors it.

Structure and ownership:
  - Nodes are linked parent-to-child, with one non-owning back-reference
    per node to its parent. The resulting reference cycle is harmless
    under Go's garbage collector, so no arena or free-list indirection is
    used.
  - A split allocates exactly one sibling node; a merge leaves exactly one
    of the two participating nodes unreachable.

Failure model:
  - Absent keys are reported through empty results, never through errors
    or panics.
  - Invariant violations (unsorted entries, stale separators, broken
    parent links) indicate a programming defect and trap immediately via
    an assertion panic.

The tree is not internally synchronized. Callers that share a tree across
goroutines must serialize all mutating operations themselves.

Current status:
  - full map contract (insert, remove, find, contains, size),
  - split propagation on overflow via parent references,
  - borrow-then-merge rebalancing on underflow,
  - strict structural invariant checker (`Check`),
  - in-order traversal and a read-only node walker for visualization,
  - Graphviz DOT output for debugging.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bplus

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
