// Package treetest implements a conformance suite for implementations of tree.Tree.
//
// Implementations hand in a fresh empty tree and the suite checks content, never
// shape, so it works for randomized trees as well.
//
//	func TestTreapConformance(t *testing.T) {
//	    treetest.Run(t, treap.Immutable[string](), treap.Immutable[int]())
//	}
package treetest

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/ordered/persistent/tree"
)

var (
	names5 = []string{"Charlie", "Eve", "Bob", "Alice", "Dorothy"}
	names8 = []string{"Charlie", "Hao", "Eve", "Gerald", "Bob", "Alice", "Frank", "Dorothy"}
)

// Run executes all tests of the suite as sub-tests.
func Run(t *testing.T, strings tree.Tree[string], ints tree.Tree[int]) {
	t.Run("InsertSimple", func(t *testing.T) { InsertSimple(t, strings) })
	t.Run("RemoveSimple", func(t *testing.T) { RemoveSimple(t, strings) })
	t.Run("GreaterThanSimple", func(t *testing.T) { GreaterThanSimple(t, strings) })
	t.Run("LessThanSimple", func(t *testing.T) { LessThanSimple(t, strings) })
	t.Run("InsertAll", func(t *testing.T) { InsertAll(t, strings) })
	t.Run("Inorder", func(t *testing.T) { Inorder(t, strings) })
	t.Run("ToList", func(t *testing.T) { ToList(t, strings) })
	t.Run("Remove", func(t *testing.T) { Remove(t, strings) })
	t.Run("Range", func(t *testing.T) { Range(t, strings) })
	t.Run("Size", func(t *testing.T) { Size(t, strings) })
	t.Run("RemoveMin", func(t *testing.T) { RemoveMin(t, strings) })
	t.Run("MaxDepth", func(t *testing.T) { MaxDepth(t, strings) })
	t.Run("Persistence", func(t *testing.T) { Persistence(t, strings) })
	t.Run("RemoveEveryElement", func(t *testing.T) { RemoveEveryElement(t, ints) })
}

func fill(empty tree.Tree[string], values []string) tree.Tree[string] {
	return tree.InsertAll(empty, slices.Values(values))
}

func present(t *testing.T, tr tree.Tree[string], values ...string) {
	t.Helper()
	for _, v := range values {
		if tr.Find(v).IsNothing() {
			t.Errorf("expected %q to be present in tree, isn't: %v", v, tr.ToList())
		}
	}
}

func absent(t *testing.T, tr tree.Tree[string], values ...string) {
	t.Helper()
	for _, v := range values {
		if tr.Find(v).IsJust() {
			t.Errorf("expected %q to be absent from tree, isn't: %v", v, tr.ToList())
		}
	}
}

func sameList[T any](t *testing.T, expected, actual []T) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("unexpected in-order sequence (-want +got):\n%s", diff)
	}
}

func valid[T any](t *testing.T, tr tree.Tree[T]) {
	t.Helper()
	if !tr.Valid() {
		t.Errorf("expected tree to satisfy its invariants, doesn't: %s", tr)
	}
}

// --- Tests -----------------------------------------------------------------

// InsertSimple checks presence of inserted values.
func InsertSimple(t *testing.T, empty tree.Tree[string]) {
	tr := empty.Insert("Alice").Insert("Bob")
	present(t, tr, "Alice", "Bob")
	absent(t, tr, "Charlie")
}

// RemoveSimple checks absence of a removed value.
func RemoveSimple(t *testing.T, empty tree.Tree[string]) {
	tr := empty.Insert("Alice").Insert("Bob").Remove("Bob")
	present(t, tr, "Alice")
	absent(t, tr, "Bob", "Charlie")
}

// GreaterThanSimple checks membership after restricting to a lower bound.
func GreaterThanSimple(t *testing.T, empty tree.Tree[string]) {
	tr := fill(empty, []string{"Alice", "Bob", "Charlie", "Dorothy", "Eve"})
	geq := tr.GreaterThan("Charlie", true)
	gtr := tr.GreaterThan("Charlie", false)
	absent(t, geq, "Alice", "Bob")
	present(t, geq, "Charlie", "Dorothy", "Eve")
	absent(t, gtr, "Alice", "Bob", "Charlie")
	present(t, gtr, "Dorothy", "Eve")
}

// LessThanSimple checks membership after restricting to an upper bound.
func LessThanSimple(t *testing.T, empty tree.Tree[string]) {
	tr := fill(empty, []string{"Alice", "Bob", "Charlie", "Dorothy", "Eve"})
	leq := tr.LessThan("Charlie", true)
	less := tr.LessThan("Charlie", false)
	present(t, leq, "Alice", "Bob", "Charlie")
	absent(t, leq, "Dorothy", "Eve")
	present(t, less, "Alice", "Bob")
	absent(t, less, "Charlie", "Dorothy", "Eve")
}

// InsertAll checks bulk insertion and removal from sequences.
func InsertAll(t *testing.T, empty tree.Tree[string]) {
	t1 := empty.Insert("Alice").Insert("Bob").Insert("Charlie").Insert("Dorothy").Insert("Eve")
	t2 := fill(empty, []string{"Alice", "Bob", "Charlie", "Dorothy", "Eve"})
	sameList(t, t1.ToList(), t2.ToList())
	t3 := tree.RemoveAll(t1, slices.Values([]string{"Alice", "Charlie"}))
	sameList(t, []string{"Bob", "Dorothy", "Eve"}, t3.ToList())
}

// Inorder checks sorted traversal and early termination of All.
func Inorder(t *testing.T, empty tree.Tree[string]) {
	tr := fill(empty, names5)
	var result string
	for v := range tr.All() {
		result += v
	}
	if result != "AliceBobCharlieDorothyEve" {
		t.Errorf("expected in-order traversal to be sorted, is %q", result)
	}
	// lazy traversal stops early
	var first []string
	for v := range tr.All() {
		if len(first) == 2 {
			break
		}
		first = append(first, v)
	}
	sameList(t, []string{"Alice", "Bob"}, first)
}

// ToList checks eager traversal against lazy traversal and tree.Equal.
func ToList(t *testing.T, empty tree.Tree[string]) {
	t1 := fill(empty, names5)
	t2 := fill(empty, []string{"Alice", "Bob", "Charlie", "Dorothy", "Eve"})
	t3 := fill(empty, []string{"Eve", "Bob", "Alice", "Dorothy"})
	sameList(t, t1.ToList(), t2.ToList())
	if len(empty.ToList()) != 0 {
		t.Errorf("expected empty tree to produce empty list, is %v", empty.ToList())
	}
	if tree.Equal(t1, t3, cmpString) {
		t.Errorf("expected trees with different content to differ")
	}
	if !tree.Equal(t1, t2, cmpString) {
		t.Errorf("expected trees with same content to be equal")
	}
	lazy := slices.Collect(t1.All())
	sameList(t, t1.ToList(), lazy)
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Remove checks removal of present and absent values, including invariants.
func Remove(t *testing.T, empty tree.Tree[string]) {
	tr := fill(empty, names8)
	r1 := tr.Remove("Alice")
	r2 := tr.Remove("Bob")
	r3 := tr.Remove("Gerald")
	sameList(t, []string{"Bob", "Charlie", "Dorothy", "Eve", "Frank", "Gerald", "Hao"}, r1.ToList())
	sameList(t, []string{"Alice", "Charlie", "Dorothy", "Eve", "Frank", "Gerald", "Hao"}, r2.ToList())
	sameList(t, []string{"Alice", "Bob", "Charlie", "Dorothy", "Eve", "Frank", "Hao"}, r3.ToList())
	if !empty.Remove("Alice").IsEmpty() {
		t.Error("expected removal from empty tree to yield empty tree")
	}
	sameList(t, tr.ToList(), tr.Remove("Nobody").ToList())
	valid(t, empty)
	valid(t, tr)
	valid(t, r1)
	valid(t, r2)
	valid(t, r3)
}

// Range checks ranges with bounds inside and outside of the tree.
func Range(t *testing.T, empty tree.Tree[string]) {
	tr := fill(empty, names8)
	check := func(expected []string, r tree.Tree[string]) {
		t.Helper()
		sameList(t, expected, r.ToList())
		valid(t, r)
	}
	check([]string{"Alice", "Bob", "Charlie"}, tr.LessThan("Charlie", true))
	check([]string{"Alice", "Bob"}, tr.LessThan("Charlie", false))
	check([]string{"Charlie", "Dorothy", "Eve", "Frank", "Gerald", "Hao"}, tr.GreaterThan("Charlie", true))
	check([]string{"Dorothy", "Eve", "Frank", "Gerald", "Hao"}, tr.GreaterThan("Charlie", false))
	check([]string{"Dorothy", "Eve", "Frank"}, tr.GreaterThan("Charlie", false).LessThan("Frank", true))
	// boundaries which are not part of the tree
	check([]string{"Alice", "Bob", "Charlie"}, tr.LessThan("Cz", true))
	check([]string{"Dorothy", "Eve", "Frank", "Gerald", "Hao"}, tr.GreaterThan("Cz", false))
	check([]string{}, tr.GreaterThan("Zoe", true))
}

// Size checks counting, including re-insertion of a present value.
func Size(t *testing.T, empty tree.Tree[string]) {
	tr := fill(empty, names5)
	if empty.Size() != 0 {
		t.Errorf("expected empty tree to have size 0, has %d", empty.Size())
	}
	if tr.Size() != 5 {
		t.Errorf("expected tree to have size 5, has %d", tr.Size())
	}
	if tr.Insert("Alice").Size() != 5 {
		t.Errorf("expected re-insert not to change size, is %d", tr.Insert("Alice").Size())
	}
}

// RemoveMin drains a tree by repeatedly removing its minimum.
func RemoveMin(t *testing.T, empty tree.Tree[string]) {
	tr := fill(empty, names5)
	for i, expected := range []string{"Alice", "Bob", "Charlie", "Dorothy", "Eve"} {
		min, rest, ok := tr.RemoveMin()
		if !ok {
			t.Fatalf("%d: expected RemoveMin to find a minimum, didn't", i)
		}
		if min != expected {
			t.Errorf("%d: expected minimum to be %q, is %q", i, expected, min)
		}
		if rest.IsEmpty() != (i == 4) {
			t.Errorf("%d: unexpected emptiness of remaining tree: %v", i, rest.ToList())
		}
		valid(t, rest)
		tr = rest
	}
	if _, _, ok := tr.RemoveMin(); ok {
		t.Error("expected RemoveMin on empty tree to report absence")
	}
}

// MaxDepth checks depth of very small trees.
func MaxDepth(t *testing.T, empty tree.Tree[string]) {
	if empty.MaxDepth() != 0 {
		t.Errorf("expected empty tree to have depth 0, has %d", empty.MaxDepth())
	}
	one := empty.Insert("Hello")
	if one.MaxDepth() != 1 {
		t.Errorf("expected depth 1, is %d", one.MaxDepth())
	}
	two := one.Insert("Rice")
	if two.MaxDepth() != 2 {
		t.Errorf("expected depth 2, is %d", two.MaxDepth())
	}
	// depending on balancing, three elements have depth 2 or 3
	if d := two.Insert("Owls!").MaxDepth(); d != 2 && d != 3 {
		t.Errorf("expected depth of 2 or 3, is %d", d)
	}
}

// Persistence checks that older incarnations keep their content.
func Persistence(t *testing.T, empty tree.Tree[string]) {
	t1 := fill(empty, names5)
	t2 := t1.Insert("Frank")
	absent(t, t1, "Frank")
	present(t, t2, "Frank")
	t3 := t2.Remove("Alice")
	present(t, t2, "Alice")
	absent(t, t3, "Alice")
	_ = t1.GreaterThan("Charlie", true)
	sameList(t, []string{"Alice", "Bob", "Charlie", "Dorothy", "Eve"}, t1.ToList())
}

// RemoveEveryElement removes each element of a 200-element tree in turn and checks
// that all other elements remain.
func RemoveEveryElement(t *testing.T, empty tree.Tree[int]) {
	var tr tree.Tree[int] = empty
	for i := 0; i < 200; i++ {
		tr = tr.Insert((i * 7919) % 200) // permutation of 0…199
	}
	for x := 0; x < 200; x++ {
		r := tr.Remove(x)
		if r.Find(x).IsJust() {
			t.Fatalf("expected %d to be removed, isn't", x)
		}
		if r.Size() != 199 {
			t.Fatalf("expected size 199 after removing %d, is %d", x, r.Size())
		}
		for y := range tr.All() {
			if y != x && r.Find(y).IsNothing() {
				t.Fatalf("removing %d lost %d", x, y)
			}
		}
		valid(t, r)
	}
}

// SortedDepth inserts n sequential keys and checks that the resulting depth lies
// within [lo, hi].
func SortedDepth(t *testing.T, empty tree.Tree[int], n, lo, hi int) int {
	tr := empty
	for i := 1; i <= n; i++ {
		tr = tr.Insert(i)
	}
	d := tr.MaxDepth()
	if d < lo {
		t.Errorf("tree depth %d is too small; something is very wrong with the tree", d)
	}
	if d > hi {
		t.Errorf("tree depth %d is too large; re-balancing is not working", d)
	}
	return d
}
