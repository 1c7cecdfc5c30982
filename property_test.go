package ostree

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

// model is a sorted slice of keys mirroring the tree's contents.
type model struct {
	keys   []int
	values map[int]int
}

func (m *model) insert(k, v int) {
	if _, ok := m.values[k]; !ok {
		i, _ := slices.BinarySearch(m.keys, k)
		m.keys = slices.Insert(m.keys, i, k)
	}
	m.values[k] = v
}

func (m *model) remove(k int) bool {
	if _, ok := m.values[k]; !ok {
		return false
	}
	delete(m.values, k)
	i, _ := slices.BinarySearch(m.keys, k)
	m.keys = slices.Delete(m.keys, i, i+1)
	return true
}

func (m *model) rangeOf(low, high int) []int {
	if low > high {
		low, high = high, low
	}
	r := []int{}
	for _, k := range m.keys {
		if k >= low && k <= high {
			r = append(r, k)
		}
	}
	return r
}

func compareWithModel(t *testing.T, tree *Tree[int, int], m *model, rnd *rand.Rand) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if tree.Len() != len(m.keys) {
		t.Fatalf("tree has %d keys, model has %d", tree.Len(), len(m.keys))
	}
	bound := 1.4405 * math.Log2(float64(tree.Len()+2))
	if float64(tree.Height()) > bound {
		t.Fatalf("height %d exceeds %.2f", tree.Height(), bound)
	}
	if got := inorder(tree); !slices.Equal(got, m.keys) {
		t.Fatalf("in-order traversal differs from model")
	}
	for i, k := range m.keys {
		kth, err := tree.KthSmallest(i + 1)
		if err != nil || kth != k {
			t.Fatalf("KthSmallest(%d) = %d, %v; expected %d", i+1, kth, err, k)
		}
		if r, _ := tree.Rank(k); r != i+1 {
			t.Fatalf("Rank(%d) = %d, expected %d", k, r, i+1)
		}
		if v, err := tree.Get(k); err != nil || v != m.values[k] {
			t.Fatalf("Get(%d) = %d, %v; expected %d", k, v, err, m.values[k])
		}
	}
	for range 10 {
		low, high := rnd.IntN(1200)-100, rnd.IntN(1200)-100
		if got, exp := tree.RangeQuery(low, high), m.rangeOf(low, high); !slices.Equal(got, exp) {
			t.Fatalf("RangeQuery(%d,%d) = %v, expected %v", low, high, got, exp)
		}
	}
}

func TestRandomOperationsAgainstModel(t *testing.T) {
	rnd := rand.New(rand.NewPCG(17, 4711))
	tree := New[int, int]()
	m := &model{values: make(map[int]int)}
	for step := range 3000 {
		k := rnd.IntN(1000)
		if rnd.IntN(3) == 0 {
			_, removed := tree.Remove(k)
			if removed != m.remove(k) {
				t.Fatalf("step %d: Remove(%d) = %v disagrees with model", step, k, removed)
			}
		} else {
			v := rnd.Int()
			tree.Insert(k, v)
			m.insert(k, v)
		}
		if step%50 == 0 {
			compareWithModel(t, tree, m, rnd)
		}
	}
	compareWithModel(t, tree, m, rnd)
}

func TestRemoveAllInAnyOrder(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for round := range 20 {
		n := 1 + rnd.IntN(300)
		keys := rnd.Perm(n)
		tree := New[int, int]()
		for _, k := range keys {
			tree.Insert(k, -k)
		}
		rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		for i, k := range keys {
			if _, ok := tree.Remove(k); !ok {
				t.Fatalf("round %d: Remove(%d) failed", round, k)
			}
			if tree.Contains(k) {
				t.Fatalf("round %d: %d still present after removal", round, k)
			}
			if i%17 == 0 {
				if err := tree.Check(); err != nil {
					t.Fatalf("round %d: %v", round, err)
				}
			}
		}
		if !tree.IsEmpty() || !tree.IsValidAVL() {
			t.Fatalf("round %d: tree not empty and valid after removing all keys", round)
		}
	}
}

// For every prefix of removals, the tree must stay consistent. This mirrors
// inserting a fixed list and deleting the first i keys for every i.
func TestRemovePrefixes(t *testing.T) {
	addList := []int{
		8133, 2136, 9651, 4079, 1042, 3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179, 5072, 9272, 4030, 4205, 3363,
		8582, 1720, 506, 8382, 6774, 3088, 2329, 9039, 6703, 1027,
		7297, 6063, 4156, 1005, 982, 3065, 2553, 795, 8426, 2377,
	}
	for i := 0; i <= len(addList); i++ {
		tree := buildTree(t, addList...)
		for _, k := range addList[:i] {
			if v, ok := tree.Remove(k); !ok || v != valueFor(k) {
				t.Fatalf("delete returned %q, %v; expected %q", v, ok, valueFor(k))
			}
		}
		remaining := slices.Sorted(slices.Values(addList[i:]))
		if got := inorder(tree); !slices.Equal(got, remaining) {
			t.Fatalf("after deleting %d keys: %v", i, got)
		}
	}
}
