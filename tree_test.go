package ostree

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTree(t *testing.T, keys ...int) *Tree[int, string] {
	t.Helper()
	tree, err := NewWithConfig[int, string](Config[int]{
		Compare:         OrderedConfig[int]().Compare,
		CheckInvariants: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, k := range keys {
		tree.Insert(k, valueFor(k))
	}
	return tree
}

func valueFor(k int) string {
	return "v" + strings.Repeat("*", k%3) + string(rune('a'+k%26))
}

func inorder[K, V any](tree *Tree[K, V]) []K {
	var keys []K
	for k := range tree.Keys() {
		keys = append(keys, k)
	}
	return keys
}

func TestNewFuncRejectsNilCompare(t *testing.T) {
	_, err := NewFunc[string, int](nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for nil compare, got %v", err)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := New[int, int]()
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
	if !tree.IsBalanced() || !tree.IsValidAVL() {
		t.Errorf("expected empty tree to be a valid AVL tree")
	}
	if tree.Contains(1) {
		t.Errorf("empty tree must not contain anything")
	}
	if _, err := tree.Get(1); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
	if _, err := tree.KthSmallest(1); !errors.Is(err, ErrRankOutOfRange) {
		t.Errorf("expected ErrRankOutOfRange, got %v", err)
	}
	if r := tree.RangeQuery(0, 100); r == nil || len(r) != 0 {
		t.Errorf("expected empty non-nil range, got %v", r)
	}
	if _, ok := tree.Remove(1); ok {
		t.Errorf("remove on empty tree reported success")
	}
}

func TestInsertContainsGet(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New[string, int]()
	words := []string{"lorem", "ipsum", "dolor", "sit", "amet", "consectetur"}
	for i, w := range words {
		if !tree.Insert(w, i) {
			t.Errorf("expected %q to be added", w)
		}
	}
	for i, w := range words {
		if !tree.Contains(w) {
			t.Errorf("expected tree to contain %q", w)
		}
		v, err := tree.Get(w)
		if err != nil || v != i {
			t.Errorf("Get(%q) = %d, %v; expected %d", w, v, err, i)
		}
	}
	if tree.Contains("adipiscing") {
		t.Errorf("tree contains key never inserted")
	}
	expected := slices.Sorted(slices.Values(words))
	if got := inorder(tree); !slices.Equal(got, expected) {
		t.Errorf("in-order = %v, expected %v", got, expected)
	}
}

func TestNewFuncReverseOrder(t *testing.T) {
	tree, err := NewFunc[int, int](func(a, b int) int { return b - a })
	if err != nil {
		t.Fatal(err.Error())
	}
	for i := 1; i <= 10; i++ {
		tree.Insert(i, i)
	}
	if k, _ := tree.KthSmallest(1); k != 10 {
		t.Errorf("expected first key in reversed order to be 10, is %d", k)
	}
	if r := tree.RangeQuery(8, 3); !slices.Equal(r, []int{8, 7, 6, 5, 4, 3}) {
		t.Errorf("unexpected reversed range %v", r)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

// Inserts in a mixed order keep the tree balanced at every step.
func TestInsertKeepsBalance(t *testing.T) {
	tree := New[int, string]()
	for _, k := range []int{7, 3, 9, 1, 5, 8, 10} {
		tree.Insert(k, valueFor(k))
		if err := tree.Check(); err != nil {
			t.Fatalf("after inserting %d: %v", k, err)
		}
		if !tree.IsBalanced() {
			t.Fatalf("tree not balanced after inserting %d", k)
		}
	}
	k, err := tree.KthSmallest(4)
	if err != nil || k != 7 {
		t.Errorf("KthSmallest(4) = %d, %v; expected 7", k, err)
	}
}

func TestAscendingInsertHeight(t *testing.T) {
	tree := New[int, int]()
	for k := 1; k <= 15; k++ {
		tree.Insert(k, k*k)
	}
	if tree.Height() > 5 {
		t.Errorf("height of tree with 15 ascending keys is %d, expected <= 5", tree.Height())
	}
	if r := tree.RangeQuery(4, 9); !slices.Equal(r, []int{4, 5, 6, 7, 8, 9}) {
		t.Errorf("RangeQuery(4,9) = %v", r)
	}
	if !tree.IsValidAVL() {
		t.Errorf("expected valid AVL tree")
	}
}

func TestRemoveLeaf(t *testing.T) {
	tree := buildTree(t, 10, 20, 30)
	v, ok := tree.Remove(20)
	if !ok || v != valueFor(20) {
		t.Fatalf("Remove(20) = %q, %v", v, ok)
	}
	if got := inorder(tree); !slices.Equal(got, []int{10, 30}) {
		t.Errorf("keys after remove = %v", got)
	}
	if !tree.IsValidAVL() {
		t.Errorf("expected valid AVL tree")
	}
}

func TestRemoveTwoChildrenPromotesSuccessor(t *testing.T) {
	tree := buildTree(t, 10, 5, 20, 1, 7, 15, 30)
	if tree.root.key != 10 {
		t.Fatalf("expected 10 at the root, is %d", tree.root.key)
	}
	tree.Remove(10)
	if tree.root.key != 15 {
		t.Errorf("expected successor 15 to be promoted to the root, root is %d", tree.root.key)
	}
	if !tree.IsValidAVL() {
		t.Errorf("expected valid AVL tree")
	}
	if r := tree.RangeQuery(1, 30); !slices.Equal(r, []int{1, 5, 7, 15, 20, 30}) {
		t.Errorf("RangeQuery(1,30) = %v", r)
	}
	if tree.root.leftCount != 3 {
		t.Errorf("promoted root has left count %d, expected 3", tree.root.leftCount)
	}
}

func TestRemoveSuccessorWithRightSubtree(t *testing.T) {
	// 20's right subtree has minimum 25, which has a right child 27
	tree := buildTree(t, 20, 10, 30, 5, 15, 25, 35, 3, 27, 40)
	tree.Remove(20)
	if tree.root.key != 25 {
		t.Errorf("expected 25 at the root, is %d", tree.root.key)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	expected := []int{3, 5, 10, 15, 25, 27, 30, 35, 40}
	if got := inorder(tree); !slices.Equal(got, expected) {
		t.Errorf("keys = %v", got)
	}
	for i, k := range expected {
		if kth, _ := tree.KthSmallest(i + 1); kth != k {
			t.Errorf("KthSmallest(%d) = %d, expected %d", i+1, kth, k)
		}
	}
}

func TestRemoveTwiceIsNoop(t *testing.T) {
	tree := buildTree(t, 4, 2, 6, 1, 3, 5, 7)
	if _, ok := tree.Remove(3); !ok {
		t.Fatalf("expected 3 to be removed")
	}
	if tree.Contains(3) {
		t.Errorf("tree still contains 3")
	}
	if _, ok := tree.Remove(3); ok {
		t.Errorf("second Remove(3) reported success")
	}
	if tree.Len() != 6 {
		t.Errorf("expected 6 keys, have %d", tree.Len())
	}
}

func TestOverwriteKeepsStructure(t *testing.T) {
	tree := buildTree(t, 5, 3, 8, 1)
	before := tree.String()
	if tree.Insert(5, "second") {
		t.Errorf("overwrite reported as addition")
	}
	if tree.Len() != 4 {
		t.Errorf("size changed by overwrite: %d", tree.Len())
	}
	if v, _ := tree.Get(5); v != "second" {
		t.Errorf("Get(5) = %q, expected second value", v)
	}
	after := tree.String()
	before = strings.Replace(before, "(5,"+valueFor(5)+")", "(5,second)", 1)
	if before != after {
		t.Errorf("structure changed by overwrite:\n%s\nvs\n%s", before, after)
	}
}

// Lots of duplicates must not increment the left counts.
func TestDuplicatesDoNotCount(t *testing.T) {
	keys := []int{1720, 506, 8382, 6774, 1247, 1250, 1264, 1258, 1255, 2247}
	tree := buildTree(t, keys...)
	for range 50 {
		for _, k := range keys {
			tree.Insert(k, "dup")
		}
		tree.Insert(1042, "dup")
	}
	if tree.Len() != len(keys)+1 {
		t.Fatalf("expected %d keys, have %d", len(keys)+1, tree.Len())
	}
	sorted := slices.Sorted(slices.Values(append(keys, 1042)))
	for i, k := range sorted {
		if kth, err := tree.KthSmallest(i + 1); err != nil || kth != k {
			t.Errorf("KthSmallest(%d) = %d, %v; expected %d", i+1, kth, err, k)
		}
	}
}

func TestKthSmallestBounds(t *testing.T) {
	tree := buildTree(t, 3, 1, 2)
	for _, k := range []int{-1, 0, 4} {
		if _, err := tree.KthSmallest(k); !errors.Is(err, ErrRankOutOfRange) {
			t.Errorf("KthSmallest(%d): expected ErrRankOutOfRange, got %v", k, err)
		}
	}
	if k, _ := tree.KthSmallest(1); k != 1 {
		t.Errorf("KthSmallest(1) = %d", k)
	}
	if k, _ := tree.KthSmallest(tree.Len()); k != 3 {
		t.Errorf("KthSmallest(size) = %d", k)
	}
	if k, v, err := tree.At(2); err != nil || k != 2 || v != valueFor(2) {
		t.Errorf("At(2) = %d, %q, %v", k, v, err)
	}
}

func TestRankMinMax(t *testing.T) {
	tree := buildTree(t, 50, 20, 80, 10, 30, 70, 90, 60)
	for i, k := range inorder(tree) {
		r, ok := tree.Rank(k)
		if !ok || r != i+1 {
			t.Errorf("Rank(%d) = %d, %v; expected %d", k, r, ok, i+1)
		}
	}
	if _, ok := tree.Rank(55); ok {
		t.Errorf("Rank of absent key reported as found")
	}
	if k, _, ok := tree.Min(); !ok || k != 10 {
		t.Errorf("Min = %d", k)
	}
	if k, _, ok := tree.Max(); !ok || k != 90 {
		t.Errorf("Max = %d", k)
	}
	empty := New[int, int]()
	if _, _, ok := empty.Min(); ok {
		t.Errorf("Min of empty tree reported ok")
	}
}

func TestRangeQueryBounds(t *testing.T) {
	tree := buildTree(t, 2, 4, 6, 8, 10, 12)
	cases := []struct {
		low, high int
		expected  []int
	}{
		{4, 10, []int{4, 6, 8, 10}},
		{10, 4, []int{4, 6, 8, 10}},
		{3, 7, []int{4, 6}},
		{5, 5, []int{}},
		{6, 6, []int{6}},
		{-10, 1, []int{}},
		{13, 100, []int{}},
		{-100, 100, []int{2, 4, 6, 8, 10, 12}},
	}
	for _, c := range cases {
		if r := tree.RangeQuery(c.low, c.high); !slices.Equal(r, c.expected) {
			t.Errorf("RangeQuery(%d,%d) = %v, expected %v", c.low, c.high, r, c.expected)
		}
	}
	var keys []int
	for k, v := range tree.Range(9, 3) {
		if v != valueFor(k) {
			t.Errorf("Range yields wrong value %q for %d", v, k)
		}
		keys = append(keys, k)
	}
	if !slices.Equal(keys, []int{4, 6, 8}) {
		t.Errorf("Range(9,3) = %v", keys)
	}
	for k := range tree.Range(0, 100) {
		if k > 4 {
			break // must not panic on early termination
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	tree := buildTree(t, 1, 2, 3, 4, 5)
	clone := tree.Clone()
	clone.Insert(6, "six")
	clone.Remove(1)
	tree.Insert(2, "changed")
	if tree.Contains(6) || !tree.Contains(1) {
		t.Errorf("mutating clone changed original")
	}
	if v, _ := clone.Get(2); v == "changed" {
		t.Errorf("mutating original changed clone")
	}
	if err := clone.Check(); err != nil {
		t.Error(err)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestClear(t *testing.T) {
	tree := buildTree(t, 1, 2, 3, 4, 5, 6, 7)
	tree.Clear()
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Errorf("expected empty tree after Clear")
	}
	tree.Insert(1, "again")
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestHeightBound(t *testing.T) {
	tree := New[int, struct{}]()
	for k := range 4096 {
		tree.Insert(k, struct{}{})
		bound := 1.4405 * math.Log2(float64(tree.Len()+2))
		if float64(tree.Height()) > bound {
			t.Fatalf("height %d exceeds AVL bound %.2f for %d keys", tree.Height(), bound, tree.Len())
		}
	}
}
