package ostree

import "fmt"

// subtreeInfo is the result of checking a subtree: its actual height and
// whether every node in it satisfies the property checked for.
type subtreeInfo struct {
	height int
	ok     bool
}

// IsBalanced reports whether the height difference of the children of every
// node is at most one. Heights are re-computed, not taken from the nodes.
//
// This is a diagnostic function with O(n) cost.
func (t *Tree[K, V]) IsBalanced() bool {
	if t == nil {
		return true
	}
	return checkSubtree(t.root, false).ok
}

// IsValidAVL reports whether the tree is balanced and additionally every node
// stores its correct height.
//
// This is a diagnostic function with O(n) cost.
func (t *Tree[K, V]) IsValidAVL() bool {
	if t == nil {
		return true
	}
	return checkSubtree(t.root, true).ok
}

func checkSubtree[K, V any](n *node[K, V], heights bool) subtreeInfo {
	if n == nil {
		return subtreeInfo{height: 0, ok: true}
	}
	l := checkSubtree(n.left, heights)
	r := checkSubtree(n.right, heights)
	info := subtreeInfo{
		height: 1 + max(l.height, r.height),
		ok:     l.ok && r.ok && abs(l.height-r.height) <= 1,
	}
	if heights && n.height != info.height {
		info.ok = false
	}
	return info
}

// Check validates all structural tree invariants: key ordering, heights,
// balance, left counts and the overall node count. It returns the first
// violation found, wrapping ErrCorruptTree.
//
// Check is intended to be used in tests.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorruptTree)
	}
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree must have count=0, has %d", ErrCorruptTree, t.count)
		}
		return nil
	}
	size, _, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if size != t.count {
		return fmt.Errorf("%w: count mismatch (%d != %d)", ErrCorruptTree, size, t.count)
	}
	return nil
}

// checkNode checks the subtree at n, whose keys must lie strictly between
// lower and upper (if given). It returns the subtree's size and height.
func (t *Tree[K, V]) checkNode(n *node[K, V], lower, upper *K) (size int, height int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if lower != nil && t.cfg.Compare(n.key, *lower) <= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not greater than ancestor key %v", ErrCorruptTree, n.key, *lower)
	}
	if upper != nil && t.cfg.Compare(n.key, *upper) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not less than ancestor key %v", ErrCorruptTree, n.key, *upper)
	}
	lsize, lheight, err := t.checkNode(n.left, lower, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rsize, rheight, err := t.checkNode(n.right, &n.key, upper)
	if err != nil {
		return 0, 0, err
	}
	height = 1 + max(lheight, rheight)
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: node %v stores height %d, is %d", ErrCorruptTree, n.key, n.height, height)
	}
	if abs(lheight-rheight) > 1 {
		return 0, 0, fmt.Errorf("%w: node %v unbalanced (%d/%d)", ErrCorruptTree, n.key, lheight, rheight)
	}
	if n.leftCount != lsize {
		return 0, 0, fmt.Errorf("%w: node %v stores left count %d, is %d", ErrCorruptTree, n.key, n.leftCount, lsize)
	}
	return lsize + rsize + 1, height, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
