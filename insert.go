package ostree

// Insert stores value for key. If key is already present, its value is
// overwritten and the structure of the tree does not change.
//
// Insert returns true if key has been added, false if an existing entry has
// been overwritten.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	var added bool
	t.root, added = t.insert(t.root, key, value)
	if added {
		t.count++
	}
	t.checkAfterMutation("Insert")
	return added
}

// insert descends recursively to the insertion point and rebalances on the
// way back up. It returns the new subtree root and a flag indicating that a
// new node has been created.
func (t *Tree[K, V]) insert(n *node[K, V], key K, value V) (*node[K, V], bool) {
	if n == nil {
		return newNode(key, value), true
	}
	var added bool
	switch c := t.cfg.Compare(key, n.key); {
	case c < 0:
		n.left, added = t.insert(n.left, key, value)
		if added {
			n.leftCount++
		}
	case c > 0:
		n.right, added = t.insert(n.right, key, value)
	default:
		n.value = value
		return n, false
	}
	if !added { // overwrite further down, nothing has moved
		return n, false
	}
	return rebalance(n), true
}
