package ostree

// Rotations take the root of a subtree and return the new root. Callers are
// responsible to store the result into their own child slot.
//
// Only the two nodes changing places will have their left counts touched:
// for a right rotation the old root loses the pivot and the pivot's left
// subtree from its left side, for a left rotation the pivot gains the old
// root and the old root's left subtree.

//	      n               p
//	     / \             / \
//	    p   c    ==>    a   n
//	   / \                 / \
//	  a   b               b   c
func rotateRight[K, V any](n *node[K, V]) *node[K, V] {
	p := n.left
	assert(p != nil, "rotateRight called without left child")
	n.left = p.right
	p.right = n
	n.leftCount -= p.leftCount + 1
	n.updateHeight()
	p.updateHeight()
	return p
}

//	    n                   p
//	   / \                 / \
//	  a   p      ==>      n   c
//	     / \             / \
//	    b   c           a   b
func rotateLeft[K, V any](n *node[K, V]) *node[K, V] {
	p := n.right
	assert(p != nil, "rotateLeft called without right child")
	n.right = p.left
	p.left = n
	p.leftCount += n.leftCount + 1
	n.updateHeight()
	p.updateHeight()
	return p
}

func rotateLeftRight[K, V any](n *node[K, V]) *node[K, V] {
	n.left = rotateLeft(n.left)
	return rotateRight(n)
}

func rotateRightLeft[K, V any](n *node[K, V]) *node[K, V] {
	n.right = rotateRight(n.right)
	return rotateLeft(n)
}

// rebalance restores the AVL property at n, given that both subtrees of n are
// valid AVL trees with heights differing by at most 2. It returns the new
// subtree root and always leaves its height up to date.
func rebalance[K, V any](n *node[K, V]) *node[K, V] {
	switch bf := n.balanceFactor(); {
	case bf > 1: // right-heavy
		r := n.right
		if heightOf(r.left) > heightOf(r.right) {
			return rotateRightLeft(n)
		}
		return rotateLeft(n)
	case bf < -1: // left-heavy
		l := n.left
		if heightOf(l.right) > heightOf(l.left) {
			return rotateLeftRight(n)
		}
		return rotateRight(n)
	}
	n.updateHeight()
	return n
}
