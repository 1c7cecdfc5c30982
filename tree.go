package ostree

import (
	"cmp"
)

// Tree is an ordered map from keys of type K to values of type V, organized
// as an AVL tree with order-statistics augmentation.
//
// Trees have to be created by one of New, NewFunc or NewWithConfig.
// A tree is not thread-safe.
type Tree[K, V any] struct {
	cfg   Config[K]
	root  *node[K, V]
	count int
}

// New creates an empty tree for keys with a natural Go ordering.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{cfg: OrderedConfig[K]()}
}

// NewFunc creates an empty tree ordering keys with a client-supplied compare
// function. compare must define a total order.
func NewFunc[K, V any](compare func(a, b K) int) (*Tree[K, V], error) {
	return NewWithConfig[K, V](Config[K]{Compare: compare})
}

// NewWithConfig creates an empty tree with validated configuration.
func NewWithConfig[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the tree height, where 0 means empty and 1 means a single node.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return heightOf(t.root)
}

// Contains reports whether key is present in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

// Get returns the value stored for key, or ErrKeyNotFound.
func (t *Tree[K, V]) Get(key K) (V, error) {
	if n := t.find(key); n != nil {
		return n.value, nil
	}
	var zero V
	return zero, ErrKeyNotFound
}

func (t *Tree[K, V]) find(key K) *node[K, V] {
	if t == nil {
		return nil
	}
	return t.search(t.root, key)
}

func (t *Tree[K, V]) search(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}
	switch c := t.cfg.Compare(key, n.key); {
	case c < 0:
		return t.search(n.left, key)
	case c > 0:
		return t.search(n.right, key)
	}
	return n
}

// Clear removes all keys from the tree.
func (t *Tree[K, V]) Clear() {
	if t == nil {
		return
	}
	released := release(t.root)
	assert(released == t.count, "Clear: node count out of sync")
	tracer().Debugf("ostree: released %d nodes", released)
	t.root = nil
	t.count = 0
}

// Clone returns a deep copy of the tree. The copy does not share any nodes
// with t, but keys and values are copied by assignment.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	if t == nil {
		return nil
	}
	return &Tree[K, V]{
		cfg:   t.cfg,
		root:  copySubtree(t.root),
		count: t.count,
	}
}

// checkAfterMutation runs the invariant checker if the tree is configured
// to do so.
func (t *Tree[K, V]) checkAfterMutation(op string) {
	if !t.cfg.CheckInvariants {
		return
	}
	if err := t.Check(); err != nil {
		tracer().Errorf("ostree: %s left tree inconsistent: %v", op, err)
		assert(false, op+": "+err.Error())
	}
}
