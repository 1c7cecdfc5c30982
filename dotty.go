package ostree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(n *node[K, V]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with their key, their height
// and their left count.
func Tree2Dot[K, V any](t *Tree[K, V], w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if !t.IsEmpty() {
		ids := newtable[K, V]()
		var nodelist, edgelist strings.Builder
		nilid := 0
		forEachNode(t.root, func(n *node[K, V]) bool {
			ID := ids.alloc(n)
			label := fmt.Sprintf("%v\\nh=%d l=%d", n.key, n.height, n.leftCount)
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, dotEscape(label), nodeDotStyles(n))
			for _, child := range []*node[K, V]{n.left, n.right} {
				if child == nil {
					nilid++
					fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nilid, emptyNode())
					fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", ID, nilid)
					continue
				}
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
			return true
		})
		b.WriteString(nodelist.String())
		b.WriteString(edgelist.String())
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

// nodeDotStyles colors nodes by their balance factor.
func nodeDotStyles[K, V any](n *node[K, V]) string {
	s := ",style=filled,color=black,shape=ellipse"
	bf := max(-1, min(1, n.balanceFactor()))
	return s + fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[bf+1])
}

// left-heavy, balanced, right-heavy
var hexcolors = [...]string{"#CCDDFF", "white", "#FFDDCC"}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
