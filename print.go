package ostree

import (
	"fmt"
	"io"
	"strings"
)

// NodeInfo describes the structural properties of a tree node, as reported
// by Walk.
type NodeInfo struct {
	Depth     int // 0 for the root
	Height    int // 1 for a leaf
	LeftCount int // number of nodes in the left subtree
	Balance   int // height(right) - height(left), within [-1, 1]
}

// Walk visits all entries of the tree together with their structural node
// information, in ascending or, if descending is set, in descending key order.
// Iteration stops early if callback returns false.
//
// Walk is meant for debugging and visualization.
func (t *Tree[K, V]) Walk(descending bool, fn func(key K, value V, info NodeInfo) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	walk(t.root, 0, descending, fn)
}

func walk[K, V any](n *node[K, V], depth int, desc bool, fn func(K, V, NodeInfo) bool) bool {
	if n == nil {
		return true
	}
	first, second := n.left, n.right
	if desc {
		first, second = second, first
	}
	if !walk(first, depth+1, desc, fn) {
		return false
	}
	info := NodeInfo{
		Depth:     depth,
		Height:    n.height,
		LeftCount: n.leftCount,
		Balance:   n.balanceFactor(),
	}
	if !fn(n.key, n.value, info) {
		return false
	}
	return walk(second, depth+1, desc, fn)
}

// Fprint outputs the tree sideways, with the root at the left margin and the
// largest key at the top. Every line shows a key/value pair and the node's
// left count.
func (t *Tree[K, V]) Fprint(w io.Writer, indent int) error {
	var err error
	t.Walk(true, func(key K, value V, info NodeInfo) bool {
		pad := strings.Repeat(" ", indent+2*info.Depth)
		_, err = fmt.Fprintf(w, "%s(%v,%v) leftCount=%d\n", pad, key, value, info.LeftCount)
		return err == nil
	})
	return err
}

// String returns the sideways representation of Fprint.
func (t *Tree[K, V]) String() string {
	var b strings.Builder
	_ = t.Fprint(&b, 0)
	return b.String()
}
