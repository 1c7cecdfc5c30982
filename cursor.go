package ostree

import "fmt"

// Cursor is a position within a tree, which may be moved forward and backward
// in key order.
//
// A cursor keeps the path from the root to its current node, as nodes do not
// link to their parents. Any mutation of the tree invalidates all cursors on it;
// using an invalidated cursor results in undefined positions.
type Cursor[K, V any] struct {
	tree *Tree[K, V]
	path []*node[K, V] // root … current node; empty if the cursor is exhausted
	rank int
}

// CursorAt creates a cursor positioned at the entry with rank k (1-based).
func (t *Tree[K, V]) CursorAt(k int) (*Cursor[K, V], error) {
	if k < 1 || k > t.Len() {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrRankOutOfRange, k, t.Len())
	}
	c := &Cursor[K, V]{
		tree: t,
		path: make([]*node[K, V], 0, t.Height()),
		rank: k,
	}
	n, target := t.root, k
	for n != nil {
		c.path = append(c.path, n)
		r := n.leftCount + 1
		if target == r {
			return c, nil
		} else if target < r {
			n = n.left
		} else {
			target -= r
			n = n.right
		}
	}
	assert(false, "CursorAt: rank routing ran off the tree")
	return nil, ErrRankOutOfRange
}

// First returns a cursor positioned at the smallest key. For an empty tree the
// cursor is not valid.
func (t *Tree[K, V]) First() *Cursor[K, V] {
	if c, err := t.CursorAt(1); err == nil {
		return c
	}
	return &Cursor[K, V]{tree: t}
}

// Last returns a cursor positioned at the largest key. For an empty tree the
// cursor is not valid.
func (t *Tree[K, V]) Last() *Cursor[K, V] {
	if c, err := t.CursorAt(t.Len()); err == nil {
		return c
	}
	return &Cursor[K, V]{tree: t}
}

// Valid reports whether the cursor is positioned at an entry.
func (c *Cursor[K, V]) Valid() bool {
	return c != nil && len(c.path) > 0
}

func (c *Cursor[K, V]) current() *node[K, V] {
	assert(c.Valid(), "cursor is not positioned at an entry")
	return c.path[len(c.path)-1]
}

// Key returns the key at the cursor position. Key panics if the cursor is not
// valid.
func (c *Cursor[K, V]) Key() K {
	return c.current().key
}

// Value returns the value at the cursor position. Value panics if the cursor is
// not valid.
func (c *Cursor[K, V]) Value() V {
	return c.current().value
}

// Rank returns the 1-based rank of the cursor position, or 0 for an invalid
// cursor.
func (c *Cursor[K, V]) Rank() int {
	if !c.Valid() {
		return 0
	}
	return c.rank
}

// Next moves the cursor to the next larger key. It returns false if there is
// none, in which case the cursor becomes invalid.
func (c *Cursor[K, V]) Next() bool {
	if !c.Valid() {
		return false
	}
	n := c.current()
	if n.right != nil {
		for n = n.right; n != nil; n = n.left {
			c.path = append(c.path, n)
		}
	} else {
		c.ascend(func(parent, child *node[K, V]) bool { return parent.left == child })
	}
	c.rank++
	return c.Valid()
}

// Prev moves the cursor to the next smaller key. It returns false if there is
// none, in which case the cursor becomes invalid.
func (c *Cursor[K, V]) Prev() bool {
	if !c.Valid() {
		return false
	}
	n := c.current()
	if n.left != nil {
		for n = n.left; n != nil; n = n.right {
			c.path = append(c.path, n)
		}
	} else {
		c.ascend(func(parent, child *node[K, V]) bool { return parent.right == child })
	}
	c.rank--
	return c.Valid()
}

// ascend pops nodes from the path until it arrives at a parent for which
// stop(parent, child) holds. If there is none, the path is left empty.
func (c *Cursor[K, V]) ascend(stop func(parent, child *node[K, V]) bool) {
	for len(c.path) > 1 {
		child := c.path[len(c.path)-1]
		c.path = c.path[:len(c.path)-1]
		if stop(c.path[len(c.path)-1], child) {
			return
		}
	}
	c.path = c.path[:0]
}
