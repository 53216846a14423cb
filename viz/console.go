package viz

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/bplus"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConsoleOptions controls the colored console rendering.
type ConsoleOptions struct {
	Options
	// Width is the line budget in fixed-width character cells; zero
	// selects the terminal width (or 80 off-terminal).
	Width int
	// Color enables ANSI-colored output.
	Color bool
	// Context configures East-Asian width resolution for key and value
	// cells; nil selects heuristics from the user environment.
	Context *uax11.Context
}

// ConfigFromTerminal picks console defaults from the current terminal's
// properties. Off-terminal output gets a fixed 80-cell budget and no
// colors.
func ConfigFromTerminal() ConsoleOptions {
	opts := ConsoleOptions{Width: 80}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		opts.Color = true
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			opts.Width = w
		}
	}
	return opts
}

type palette struct {
	separator *color.Color
	key       *color.Color
	deco      *color.Color
}

func defaultPalette() palette {
	return palette{
		separator: color.New(color.FgCyan, color.Bold),
		key:       color.New(color.FgGreen),
		deco:      color.New(color.Faint),
	}
}

// FprintConsole writes a colored, width-aware rendering of the tree to w.
//
// Traversal order matches Render: depth-first, right-to-left. Leaf entries
// wrap onto continuation lines when they exceed the width budget; cell
// widths are measured grapheme-wise so double-width scripts stay aligned.
func FprintConsole[K cmp.Ordered, V any](w io.Writer, t *bplus.Tree[K, V], opts ConsoleOptions) error {
	if t == nil || t.IsEmpty() {
		return nil
	}
	if opts.Width <= 0 {
		opts.Width = ConfigFromTerminal().Width
	}
	if opts.Context == nil {
		opts.Context = uax11.ContextFromEnvironment()
	}
	snap := takeSnapshot(t)
	pal := defaultPalette()
	return consoleNode(w, snap, pal, 1, 0, opts)
}

func consoleNode[K cmp.Ordered, V any](
	w io.Writer, snap snapshot[K, V], pal palette, id, depth int, opts ConsoleOptions,
) error {
	view, ok := snap.views[id]
	if !ok {
		return nil
	}
	prefix := strings.Repeat(opts.indent(), depth)
	if view.Leaf {
		if err := consoleLeafLines(w, view, prefix, pal, opts); err != nil {
			return err
		}
		return nil
	}
	var b strings.Builder
	seps := make([]string, 0, len(view.Keys))
	for _, k := range view.Keys {
		seps = append(seps, fmt.Sprintf("%v", k))
	}
	b.WriteString(prefix)
	b.WriteString(paint(pal.separator, "▸ "+strings.Join(seps, " "), opts.Color))
	writeDecorations(&b, view, pal, opts)
	if _, err := io.WriteString(w, b.String()+"\n"); err != nil {
		return err
	}
	for i := len(view.Children) - 1; i >= 0; i-- {
		if err := consoleNode(w, snap, pal, view.Children[i], depth+1, opts); err != nil {
			return err
		}
	}
	return nil
}

// consoleLeafLines wraps the cells of one leaf into the width budget.
func consoleLeafLines[K cmp.Ordered, V any](
	w io.Writer, view bplus.NodeView[K, V], prefix string, pal palette, opts ConsoleOptions,
) error {
	cont := prefix + "  "
	line := prefix
	used := cellWidth(prefix, opts.Context)
	painted := make([]string, 0, 8)
	flush := func() error {
		if len(painted) == 0 {
			return nil
		}
		_, err := io.WriteString(w, line+strings.Join(painted, "  ")+"\n")
		painted = painted[:0]
		return err
	}
	for i, e := range view.Entries {
		keyCell := fmt.Sprintf("%v", e.Key)
		cell := keyCell + ": " + fmt.Sprintf("%v", e.Val)
		width := cellWidth(cell, opts.Context)
		if i > 0 && used+2+width > opts.Width {
			if err := flush(); err != nil {
				return err
			}
			line = cont
			used = cellWidth(cont, opts.Context)
		} else if i > 0 {
			used += 2
		}
		painted = append(painted, paint(pal.key, keyCell, opts.Color)+": "+fmt.Sprintf("%v", e.Val))
		used += width
	}
	if len(view.Entries) == 0 {
		return nil
	}
	var b strings.Builder
	writeDecorations(&b, view, pal, opts)
	if b.Len() > 0 {
		painted = append(painted, strings.TrimLeft(b.String(), " "))
	}
	return flush()
}

func writeDecorations[K cmp.Ordered, V any](b *strings.Builder, view bplus.NodeView[K, V], pal palette, opts ConsoleOptions) {
	var plain strings.Builder
	decorate(&plain, view, opts.Options)
	if plain.Len() > 0 {
		b.WriteString(paint(pal.deco, plain.String(), opts.Color))
	}
}

func paint(c *color.Color, s string, colored bool) string {
	if !colored {
		return s
	}
	return c.Sprint(s)
}

// cellWidth measures a string in fixed-width character cells. Pure ASCII
// is one cell per byte; uax11 resolves some ASCII code points (digits among
// them) to double width through their emoji presentation class, which does
// not apply to terminal key/value columns. Everything else goes through
// grapheme clustering and East-Asian width classes.
func cellWidth(s string, ctx *uax11.Context) int {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return len(s)
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}
