package bintrie

import (
	"fmt"
	"io"
	"strings"
)

// Trie2Dot outputs the internal structure of a trie in Graphviz DOT format
// (for debugging purposes). Internal nodes are labelled with their store
// index, leaves with their item, edges with the slot position.
func (t *trie) Trie2Dot(w io.Writer) error {
	var nodelist, edgelist strings.Builder
	st := &t.store
	stack := []uint32{0}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fmt.Fprintf(&nodelist, "\"n%d\" [label=\"%d\" %s];\n", n, n, nodeDotStyles(false))
		for pos, s := range st.node(n) {
			switch {
			case s.isEmpty():
			case s.isLeaf():
				fmt.Fprintf(&nodelist, "\"l%d_%d\" [label=\"%d\" %s];\n", n, pos, s.item(), nodeDotStyles(true))
				fmt.Fprintf(&edgelist, "\"n%d\" -> \"l%d_%d\" [label=\"%s\"];\n", n, n, pos, t.edgeLabel(pos))
			default:
				fmt.Fprintf(&edgelist, "\"n%d\" -> \"n%d\" [label=\"%s\"];\n", n, s.node(), t.edgeLabel(pos))
				stack = append(stack, s.node())
			}
		}
	}
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		tracer().Errorf("trie DOT: %s", err.Error())
		return err
	}
	if _, err := io.WriteString(w, nodelist.String()+edgelist.String()+"}\n"); err != nil {
		tracer().Errorf("trie DOT: %s", err.Error())
		return err
	}
	return nil
}

// edgeLabel renders a slot position as a bit or a hex group.
func (t *trie) edgeLabel(pos int) string {
	if t.store.arity == binaryArity {
		return fmt.Sprintf("%d", pos)
	}
	return fmt.Sprintf("%x", pos)
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
