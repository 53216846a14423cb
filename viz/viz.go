package viz

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bplus"
)

// Options controls the nested-text rendering.
type Options struct {
	// ShowIDs appends a per-render node identity to every line.
	ShowIDs bool
	// ShowKeys appends each node's full key list.
	ShowKeys bool
	// ShowParents appends the identity of each node's parent.
	ShowParents bool
	// Indent is the per-level indentation; empty selects four spaces.
	Indent string
}

func (opts Options) indent() string {
	if opts.Indent == "" {
		return "    "
	}
	return opts.Indent
}

// snapshot holds one walk's views, addressable by ID.
type snapshot[K cmp.Ordered, V any] struct {
	views map[int]bplus.NodeView[K, V]
}

func takeSnapshot[K cmp.Ordered, V any](t *bplus.Tree[K, V]) snapshot[K, V] {
	snap := snapshot[K, V]{views: make(map[int]bplus.NodeView[K, V])}
	t.WalkNodes(func(view bplus.NodeView[K, V]) bool {
		snap.views[view.ID] = view
		return true
	})
	return snap
}

// Render produces the nested-text rendering as a sequence of lines.
//
// Traversal is depth-first and right-to-left: the subtree holding the
// largest keys comes first, so the output reads like a tree rotated onto
// its side. Leaf lines list their `key: value` pairs in ascending order;
// an internal node's line lists its separator keys, with every child
// indented underneath.
func Render[K cmp.Ordered, V any](t *bplus.Tree[K, V], opts Options) []string {
	if t == nil || t.IsEmpty() {
		return nil
	}
	snap := takeSnapshot(t)
	var lines []string
	renderNode(&lines, snap, 1, 0, opts)
	return lines
}

// Fprint writes the nested-text rendering to w.
func Fprint[K cmp.Ordered, V any](w io.Writer, t *bplus.Tree[K, V], opts Options) error {
	for _, line := range Render(t, opts) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func renderNode[K cmp.Ordered, V any](lines *[]string, snap snapshot[K, V], id, depth int, opts Options) {
	view, ok := snap.views[id]
	if !ok {
		return
	}
	prefix := strings.Repeat(opts.indent(), depth)
	*lines = append(*lines, prefix+nodeLine(view, opts))
	if view.Leaf {
		return
	}
	for i := len(view.Children) - 1; i >= 0; i-- {
		renderNode(lines, snap, view.Children[i], depth+1, opts)
	}
}

func nodeLine[K cmp.Ordered, V any](view bplus.NodeView[K, V], opts Options) string {
	var b strings.Builder
	if view.Leaf {
		for i, e := range view.Entries {
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%v: %v", e.Key, e.Val)
		}
	} else {
		b.WriteString("▸")
		for _, k := range view.Keys {
			fmt.Fprintf(&b, " %v", k)
		}
	}
	decorate(&b, view, opts)
	return b.String()
}

func decorate[K cmp.Ordered, V any](b *strings.Builder, view bplus.NodeView[K, V], opts Options) {
	if opts.ShowKeys {
		keys := make([]string, 0, len(view.Keys))
		for _, k := range view.Keys {
			keys = append(keys, fmt.Sprintf("%v", k))
		}
		fmt.Fprintf(b, "  [%s]", strings.Join(keys, " "))
	}
	if opts.ShowIDs {
		fmt.Fprintf(b, "  #%d", view.ID)
	}
	if opts.ShowParents {
		if view.ParentID == 0 {
			b.WriteString("  ^root")
		} else {
			fmt.Fprintf(b, "  ^#%d", view.ParentID)
		}
	}
}
