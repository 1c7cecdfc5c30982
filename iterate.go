package ostree

import "iter"

// RangeQuery returns all keys k with low <= k <= high in ascending order.
// Bounds may be given in either order. If no key is within the bounds, the
// result is empty.
//
// Subtrees entirely outside of the bounds are never visited, resulting in
// O(log n + m) cost for m matching keys.
func (t *Tree[K, V]) RangeQuery(low, high K) []K {
	keys := make([]K, 0)
	if t.IsEmpty() {
		return keys
	}
	low, high = t.normalizeBounds(low, high)
	t.rangeNodes(t.root, low, high, func(n *node[K, V]) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// Range returns an iterator over all entries with low <= key <= high in
// ascending key order. Bounds may be given in either order.
//
// The tree must not be modified during iteration.
func (t *Tree[K, V]) Range(low, high K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.IsEmpty() {
			return
		}
		lo, hi := t.normalizeBounds(low, high)
		t.rangeNodes(t.root, lo, hi, func(n *node[K, V]) bool {
			return yield(n.key, n.value)
		})
	}
}

func (t *Tree[K, V]) normalizeBounds(low, high K) (K, K) {
	if t.cfg.Compare(low, high) > 0 {
		return high, low
	}
	return low, high
}

// rangeNodes is a pruned in-order traversal. It returns false as soon as fn
// asks to stop.
func (t *Tree[K, V]) rangeNodes(n *node[K, V], low, high K, fn func(*node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	cl := t.cfg.Compare(n.key, low)
	ch := t.cfg.Compare(n.key, high)
	if cl > 0 { // smaller keys in range may exist to the left
		if !t.rangeNodes(n.left, low, high, fn) {
			return false
		}
	}
	if cl >= 0 && ch <= 0 {
		if !fn(n) {
			return false
		}
	}
	if ch < 0 {
		return t.rangeNodes(n.right, low, high, fn)
	}
	return true
}

// All returns an iterator over all entries in ascending key order.
//
// The tree must not be modified during iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.IsEmpty() {
			return
		}
		forEachNode(t.root, func(n *node[K, V]) bool {
			return yield(n.key, n.value)
		})
	}
}

// Keys returns an iterator over all keys in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// ForEach visits all entries in ascending key order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	forEachNode(t.root, func(n *node[K, V]) bool {
		return fn(n.key, n.value)
	})
}

func forEachNode[K, V any](n *node[K, V], fn func(*node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	if !forEachNode(n.left, fn) {
		return false
	}
	if !fn(n) {
		return false
	}
	return forEachNode(n.right, fn)
}
