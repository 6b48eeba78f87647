package bintrie

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Print writes an indented outline of the trie's nodes and leaves to w (for
// debugging purposes). Output is coloured if w is a terminal.
func (t *trie) Print(w io.Writer) error {
	return t.print(w, newPalette(isTerminal(w)))
}

// palette holds the colours used by Print.
type palette struct {
	node, leaf, pos *color.Color
}

func newPalette(colored bool) palette {
	p := palette{
		node: color.New(color.FgBlue, color.Bold),
		leaf: color.New(color.FgGreen),
		pos:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.node, p.leaf, p.pos} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (t *trie) print(w io.Writer, p palette) error {
	type line struct {
		slot  slot
		pos   int
		depth int
	}
	st := &t.store
	if _, err := p.node.Fprintf(w, "node 0 (%d nodes, %d items)\n", st.nodeCount(), t.count); err != nil {
		return err
	}
	var stack []line
	push := func(n uint32, depth int) {
		slots := st.node(n)
		for pos := len(slots) - 1; pos >= 0; pos-- { // reversed, to pop in slot order
			if !slots[pos].isEmpty() {
				stack = append(stack, line{slot: slots[pos], pos: pos, depth: depth})
			}
		}
	}
	push(0, 1)
	for len(stack) > 0 {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		indent := strings.Repeat("  ", l.depth)
		if _, err := fmt.Fprintf(w, "%s%s ", indent, p.pos.Sprint(t.edgeLabel(l.pos))); err != nil {
			return err
		}
		var err error
		if l.slot.isLeaf() {
			_, err = p.leaf.Fprintf(w, "%d\n", l.slot.item())
		} else {
			_, err = p.node.Fprintf(w, "node %d\n", l.slot.node())
			push(l.slot.node(), l.depth+1)
		}
		if err != nil {
			tracer().Errorf("trie print: %s", err.Error())
			return err
		}
	}
	return nil
}
