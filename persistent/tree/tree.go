package tree

import (
	"iter"

	"github.com/npillmayer/ordered/maybe"
)

// Tree is the contract for persistent binary search trees. Implementations are
// immutable: every operation returning a Tree returns a new incarnation and
// leaves the receiver untouched, sharing all unmodified subtrees with it.
//
// Values are ordered by a comparator fixed at construction time. Values which
// compare equal are considered to have the same key; inserting such a value
// replaces the stored one.
type Tree[T any] interface {
	// Insert returns a tree containing v. A present key-equal value is replaced.
	Insert(v T) Tree[T]
	// Remove returns a tree without v (by key). If v is absent, an equivalent tree is returned.
	Remove(v T) Tree[T]
	// Find returns the stored value which compares equal to v.
	Find(v T) maybe.Maybe[T]
	// GreaterThan returns a tree with all values > floor (≥ floor if inclusive).
	GreaterThan(floor T, inclusive bool) Tree[T]
	// LessThan returns a tree with all values < ceiling (≤ ceiling if inclusive).
	LessThan(ceiling T, inclusive bool) Tree[T]
	// RemoveMin returns the minimum value together with the remaining tree.
	// For an empty tree ok is false.
	RemoveMin() (min T, rest Tree[T], ok bool)
	// All is a lazy in-order traversal.
	All() iter.Seq[T]
	// ToList is an eager in-order traversal.
	ToList() []T
	// Valid checks the structural invariants. It is meant for tests.
	Valid() bool
	Size() int
	MaxDepth() int
	IsEmpty() bool
	// Clear returns an empty tree of the same kind and ordering.
	Clear() Tree[T]
	String() string
}

// --- Bulk operations -------------------------------------------------------

// InsertAll folds all values of a sequence into t.
func InsertAll[T any](t Tree[T], values iter.Seq[T]) Tree[T] {
	for v := range values {
		t = t.Insert(v)
	}
	return t
}

// RemoveAll removes all values of a sequence from t.
func RemoveAll[T any](t Tree[T], values iter.Seq[T]) Tree[T] {
	for v := range values {
		t = t.Remove(v)
	}
	return t
}

// FromSlice inserts values into an empty tree, in order of appearance.
func FromSlice[T any](empty Tree[T], values ...T) Tree[T] {
	for _, v := range values {
		empty = empty.Insert(v)
	}
	return empty
}

// Equal compares the in-order content of two trees, using cmp for
// element comparison. Shapes of a and b are irrelevant.
func Equal[T any](a, b Tree[T], cmp func(T, T) int) bool {
	if a.Size() != b.Size() {
		return false
	}
	nextB, stop := iter.Pull(b.All())
	defer stop()
	for x := range a.All() {
		y, ok := nextB()
		if !ok || cmp(x, y) != 0 {
			return false
		}
	}
	return true
}

// --- Extremes --------------------------------------------------------------

// Bounded is implemented by trees which can find their extreme values without
// a full traversal.
type Bounded[T any] interface {
	Min() maybe.Maybe[T]
	Max() maybe.Maybe[T]
}

// Min returns the smallest value of t, if any.
func Min[T any](t Tree[T]) maybe.Maybe[T] {
	if b, ok := t.(Bounded[T]); ok {
		return b.Min()
	}
	for v := range t.All() {
		return maybe.Just(v)
	}
	return maybe.Nothing[T]()
}

// Max returns the largest value of t, if any. Trees which are not Bounded are
// traversed completely.
func Max[T any](t Tree[T]) maybe.Maybe[T] {
	if b, ok := t.(Bounded[T]); ok {
		return b.Max()
	}
	var last T
	for v := range t.All() {
		last = v
	}
	return maybe.Of(last, !t.IsEmpty())
}
