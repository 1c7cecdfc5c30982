package ostree

import "fmt"

// KthSmallest returns the key with rank k, where rank 1 denotes the smallest
// key and rank Len() the largest. If k is outside of [1, Len()], KthSmallest
// returns ErrRankOutOfRange.
func (t *Tree[K, V]) KthSmallest(k int) (K, error) {
	n, err := t.at(k)
	if err != nil {
		var zero K
		return zero, err
	}
	return n.key, nil
}

// At returns the key/value pair with rank k (1-based), see KthSmallest.
func (t *Tree[K, V]) At(k int) (K, V, error) {
	n, err := t.at(k)
	if err != nil {
		var zk K
		var zv V
		return zk, zv, err
	}
	return n.key, n.value, nil
}

func (t *Tree[K, V]) at(k int) (*node[K, V], error) {
	if k < 1 || k > t.Len() {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrRankOutOfRange, k, t.Len())
	}
	n := selectNode(t.root, k)
	assert(n != nil, "KthSmallest: rank routing ran off the tree")
	return n, nil
}

// selectNode finds the node with rank k within the subtree rooted at n.
func selectNode[K, V any](n *node[K, V], k int) *node[K, V] {
	if n == nil {
		return nil
	}
	rank := n.leftCount + 1
	switch {
	case k == rank:
		return n
	case k < rank:
		return selectNode(n.left, k)
	}
	return selectNode(n.right, k-rank)
}

// Rank returns the 1-based rank of key, i.e. its position if all keys were
// listed in ascending order. If key is not present, Rank returns 0 and false.
func (t *Tree[K, V]) Rank(key K) (int, bool) {
	if t == nil {
		return 0, false
	}
	n, before := t.root, 0
	for n != nil {
		switch c := t.cfg.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			before += n.leftCount + 1
			n = n.right
		default:
			return before + n.leftCount + 1, true
		}
	}
	return 0, false
}

// Min returns the entry with the smallest key. ok is false for an empty tree.
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	if t.IsEmpty() {
		return
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, n.value, true
}

// Max returns the entry with the largest key. ok is false for an empty tree.
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	if t.IsEmpty() {
		return
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}
