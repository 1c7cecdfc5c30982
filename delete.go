package ostree

// Remove deletes key from the tree. It returns the value which has been
// stored for key and true, or the zero value and false if key is not present.
// Removing an absent key is a no-op.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	var zero V
	if t == nil {
		return zero, false
	}
	var removed *node[K, V]
	t.root, removed = t.remove(t.root, key)
	if removed == nil {
		return zero, false
	}
	t.count--
	value := removed.value
	release(removed)
	t.checkAfterMutation("Remove")
	return value, true
}

// remove descends to the node holding key and unlinks it. It returns the new
// subtree root and the unlinked node, which is nil if key has not been found.
// Every ancestor whose left subtree shrank decrements its left count; all
// ancestors are rebalanced on the way back up.
func (t *Tree[K, V]) remove(n *node[K, V], key K) (*node[K, V], *node[K, V]) {
	if n == nil {
		return nil, nil
	}
	var removed *node[K, V]
	switch c := t.cfg.Compare(key, n.key); {
	case c < 0:
		n.left, removed = t.remove(n.left, key)
		if removed == nil {
			return n, nil
		}
		n.leftCount--
	case c > 0:
		n.right, removed = t.remove(n.right, key)
		if removed == nil {
			return n, nil
		}
	default:
		return unlink(n), n
	}
	return rebalance(n), removed
}

// unlink removes n from its subtree and returns the subtree's new root.
// n is detached from its children afterwards.
func unlink[K, V any](n *node[K, V]) *node[K, V] {
	var repl *node[K, V]
	switch {
	case n.left == nil && n.right == nil:
		repl = nil
	case n.left == nil:
		repl = n.right
	case n.right == nil:
		repl = n.left
	default:
		// promote the successor, i.e. the minimum of the right subtree
		var succ *node[K, V]
		var rest *node[K, V]
		rest, succ = detachMin(n.right)
		succ.left = n.left
		succ.right = rest
		succ.leftCount = n.leftCount // left subtree is taken over unchanged
		repl = rebalance(succ)
	}
	n.left, n.right = nil, nil
	return repl
}

// detachMin removes the minimum node from the subtree rooted at n. It returns
// the new root of the remaining subtree and the detached node. The detached
// node's right subtree takes its place. Nodes along the left spine lose one
// node from their left subtree and are rebalanced.
func detachMin[K, V any](n *node[K, V]) (*node[K, V], *node[K, V]) {
	if n.left == nil {
		rest := n.right
		n.right = nil
		return rest, n
	}
	var least *node[K, V]
	n.left, least = detachMin(n.left)
	n.leftCount--
	return rebalance(n), least
}
