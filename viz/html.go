package viz

import (
	"cmp"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/npillmayer/bplus"
)

// WriteHTML renders the tree as an HTML document of nested lists.
//
// Every node becomes a `<li>`: internal nodes carry class "inner" with
// their separator keys in a `<span>` and their children in a nested
// `<ul>`; leaves carry class "leaf" with their `key: value` pairs. Unlike
// the console renderings, document order is ascending, which reads
// naturally top-to-bottom.
func WriteHTML[K cmp.Ordered, V any](w io.Writer, t *bplus.Tree[K, V]) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n<html>\n<body>\n<ul class=\"bplus\">\n"); err != nil {
		return err
	}
	if t != nil && !t.IsEmpty() {
		snap := takeSnapshot(t)
		if err := htmlNode(w, snap, 1, 1); err != nil {
			T().Errorf("tree HTML: %s", err.Error())
			return err
		}
	}
	_, err := io.WriteString(w, "</ul>\n</body>\n</html>\n")
	return err
}

func htmlNode[K cmp.Ordered, V any](w io.Writer, snap snapshot[K, V], id, depth int) error {
	view, ok := snap.views[id]
	if !ok {
		return nil
	}
	indent := strings.Repeat("  ", depth)
	if view.Leaf {
		pairs := make([]string, 0, len(view.Entries))
		for _, e := range view.Entries {
			pairs = append(pairs, fmt.Sprintf("%v: %v", e.Key, e.Val))
		}
		_, err := fmt.Fprintf(w, "%s<li class=\"leaf\">%s</li>\n",
			indent, html.EscapeString(strings.Join(pairs, ", ")))
		return err
	}
	seps := make([]string, 0, len(view.Keys))
	for _, k := range view.Keys {
		seps = append(seps, fmt.Sprintf("%v", k))
	}
	if _, err := fmt.Fprintf(w, "%s<li class=\"inner\"><span>%s</span>\n%s<ul>\n",
		indent, html.EscapeString(strings.Join(seps, " ")), indent); err != nil {
		return err
	}
	for _, child := range view.Children {
		if err := htmlNode(w, snap, child, depth+1); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s</ul></li>\n", indent)
	return err
}
