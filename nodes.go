package ostree

// node is a node of the AVL tree. Every node exclusively owns its children.
type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
	// height of the subtree rooted at this node; 1 for a leaf.
	height int
	// leftCount is the number of nodes in the left subtree. The rank of the
	// node within its own subtree is leftCount+1.
	leftCount int
}

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{
		key:    key,
		value:  value,
		height: 1,
	}
}

// heightOf is nil-safe: an absent subtree has height 0.
func heightOf[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// sizeOf counts the nodes of a subtree in O(log n), following right spines
// and summing up left counts.
func sizeOf[K, V any](n *node[K, V]) int {
	size := 0
	for n != nil {
		size += n.leftCount + 1
		n = n.right
	}
	return size
}

func (n *node[K, V]) updateHeight() {
	n.height = 1 + max(heightOf(n.left), heightOf(n.right))
}

// balanceFactor is height(right) - height(left).
func (n *node[K, V]) balanceFactor() int {
	return heightOf(n.right) - heightOf(n.left)
}

// release clears a subtree post-order, children before their parent.
func release[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	cnt := release(n.left) + release(n.right)
	var zk K
	var zv V
	n.left, n.right = nil, nil
	n.key, n.value = zk, zv
	return cnt + 1
}

// copySubtree creates a deep structural copy of a subtree.
func copySubtree[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	return &node[K, V]{
		key:       n.key,
		value:     n.value,
		left:      copySubtree(n.left),
		right:     copySubtree(n.right),
		height:    n.height,
		leftCount: n.leftCount,
	}
}
