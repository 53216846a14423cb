package bplus

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[K cmp.Ordered, V any](t *Tree[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	t.WalkNodes(func(view NodeView[K, V]) bool {
		styles := nodeDotStyles(view.Leaf)
		if view.Leaf {
			pairs := make([]string, 0, len(view.Entries))
			for _, e := range view.Entries {
				pairs = append(pairs, fmt.Sprintf("%v: %v", e.Key, e.Val))
			}
			label := strings.Join(pairs, "\\n")
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", view.ID, label, styles)
		} else {
			seps := make([]string, 0, len(view.Keys))
			for _, k := range view.Keys {
				seps = append(seps, fmt.Sprintf("%v", k))
			}
			label := strings.Join(seps, " | ")
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", view.ID, label, styles)
			for _, child := range view.Children {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", view.ID, child)
			}
		}
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
