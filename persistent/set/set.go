package set

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/maybe"
	"github.com/npillmayer/ordered/persistent/tree"
	"github.com/npillmayer/ordered/persistent/treap"
)

// Set is a persistent ordered set. Sets are immutable values; every operation
// returning a Set leaves the receiver unchanged.
//
// The zero value of Set is not usable. Create sets with one of the constructors.
type Set[T any] struct {
	tree tree.Tree[T]
}

// Immutable creates an empty set for naturally ordered types, backed by a treap.
func Immutable[T cmp.Ordered](opts ...treap.Option) Set[T] {
	return Set[T]{tree: treap.Immutable[T](opts...)}
}

// ImmutableFunc creates an empty set ordered by c, backed by a treap.
func ImmutableFunc[T any](c ordered.Comparator[T], opts ...treap.Option) Set[T] {
	return Set[T]{tree: treap.ImmutableFunc(c, opts...)}
}

// Over creates a set backed by a tree of the caller's choice. The tree is
// cleared before use.
//
//	s := set.Over(tree.New[int]())  // unbalanced backing tree
func Over[T any](t tree.Tree[T]) Set[T] {
	return Set[T]{tree: t.Clear()}
}

// Of creates a set of naturally ordered values.
func Of[T cmp.Ordered](values ...T) Set[T] {
	return Immutable[T]().AddAll(slices.Values(values))
}

// FromSeq creates a set ordered by c from a sequence of values. Later
// duplicates replace earlier ones.
func FromSeq[T any](c ordered.Comparator[T], values iter.Seq[T]) Set[T] {
	return ImmutableFunc(c).AddAll(values)
}

// FromSeqMerge creates a set ordered by c from a sequence of values. Duplicates
// are combined using op(earlier, later).
func FromSeqMerge[T any](c ordered.Comparator[T], values iter.Seq[T], op func(T, T) T) Set[T] {
	return ImmutableFunc(c).AddAllMerge(values, op)
}

// backing returns the tree of s.
func (s Set[T]) backing() tree.Tree[T] {
	assertThat(s.tree != nil, "set is not initialized, create sets with a constructor")
	return s.tree
}

func (s Set[T]) with(t tree.Tree[T]) Set[T] {
	return Set[T]{tree: t}
}

// --- Elements --------------------------------------------------------------

// Add returns a set containing v. A key-equal element is replaced by v.
func (s Set[T]) Add(v T) Set[T] {
	return s.with(s.backing().Insert(v))
}

// Remove returns a set without the element key-equal to v.
func (s Set[T]) Remove(v T) Set[T] {
	return s.with(s.backing().Remove(v))
}

// Contains is true if an element key-equal to v is present.
func (s Set[T]) Contains(v T) bool {
	return s.backing().Find(v).IsJust()
}

// Find returns the stored element which is key-equal to v.
func (s Set[T]) Find(v T) maybe.Maybe[T] {
	return s.backing().Find(v)
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return s.backing().Size()
}

// IsEmpty is true for a set without elements.
func (s Set[T]) IsEmpty() bool {
	return s.backing().IsEmpty()
}

// Merge adds v to the set. If a key-equal element e is present, it is
// replaced by op(e, v). op must return a value key-equal to its arguments.
func (s Set[T]) Merge(v T, op func(T, T) T) Set[T] {
	if e, ok := s.backing().Find(v).Get(); ok {
		return s.with(s.backing().Insert(op(e, v)))
	}
	return s.with(s.backing().Insert(v))
}

// AddAll adds every value of a sequence.
func (s Set[T]) AddAll(values iter.Seq[T]) Set[T] {
	return s.with(tree.InsertAll(s.backing(), values))
}

// AddAllMerge merges every value of a sequence, see Merge.
func (s Set[T]) AddAllMerge(values iter.Seq[T], op func(T, T) T) Set[T] {
	for v := range values {
		s = s.Merge(v, op)
	}
	return s
}

// RemoveAll removes every value of a sequence.
func (s Set[T]) RemoveAll(values iter.Seq[T]) Set[T] {
	return s.with(tree.RemoveAll(s.backing(), values))
}

// --- Set algebra -----------------------------------------------------------

// Union returns a set with the elements of both s and other. Elements present
// in both are replaced by op(mine, theirs), where mine is the element of s.
//
// s and other must share the same ordering. The result is backed by the tree
// of the larger operand.
func (s Set[T]) Union(other Set[T], op func(mine, theirs T) T) Set[T] {
	if other.Len() <= s.Len() {
		tracer().Debugf("union: folding %d elements into receiver", other.Len())
		t := s.backing()
		for theirs := range other.All() {
			if mine, ok := t.Find(theirs).Get(); ok {
				t = t.Insert(op(mine, theirs))
			} else {
				t = t.Insert(theirs)
			}
		}
		return s.with(t)
	}
	tracer().Debugf("union: folding %d elements of receiver into argument", s.Len())
	t := other.backing()
	for mine := range s.All() {
		if theirs, ok := t.Find(mine).Get(); ok {
			t = t.Insert(op(mine, theirs))
		} else {
			t = t.Insert(mine)
		}
	}
	return s.with(t)
}

// UnionKeep is Union, keeping the elements of s on collisions.
func (s Set[T]) UnionKeep(other Set[T]) Set[T] {
	return s.Union(other, keepMine[T])
}

// Intersect returns a set of the elements whose key is present in both s and
// other, each replaced by op(mine, theirs).
func (s Set[T]) Intersect(other Set[T], op func(mine, theirs T) T) Set[T] {
	t := s.backing().Clear()
	if other.Len() < s.Len() {
		for theirs := range other.All() {
			if mine, ok := s.backing().Find(theirs).Get(); ok {
				t = t.Insert(op(mine, theirs))
			}
		}
		return s.with(t)
	}
	for mine := range s.All() {
		if theirs, ok := other.backing().Find(mine).Get(); ok {
			t = t.Insert(op(mine, theirs))
		}
	}
	return s.with(t)
}

// IntersectKeep is Intersect, keeping the elements of s.
func (s Set[T]) IntersectKeep(other Set[T]) Set[T] {
	return s.Intersect(other, keepMine[T])
}

// Except returns a set of the elements of s whose key is not present in other.
func (s Set[T]) Except(other Set[T]) Set[T] {
	if other.Len() < s.Len() {
		return s.RemoveAll(other.All())
	}
	t := s.backing()
	for mine := range s.All() {
		if other.Contains(mine) {
			t = t.Remove(mine)
		}
	}
	return s.with(t)
}

func keepMine[T any](mine, _ T) T {
	return mine
}

// --- Ranges ----------------------------------------------------------------

// GreaterThan returns the subset of elements greater than floor, or equal to
// floor if inclusive is set.
func (s Set[T]) GreaterThan(floor T, inclusive bool) Set[T] {
	return s.with(s.backing().GreaterThan(floor, inclusive))
}

// LessThan returns the subset of elements less than ceiling, or equal to
// ceiling if inclusive is set.
func (s Set[T]) LessThan(ceiling T, inclusive bool) Set[T] {
	return s.with(s.backing().LessThan(ceiling, inclusive))
}

// Min returns the smallest element, if any.
func (s Set[T]) Min() maybe.Maybe[T] {
	return tree.Min(s.backing())
}

// Max returns the largest element, if any.
func (s Set[T]) Max() maybe.Maybe[T] {
	return tree.Max(s.backing())
}

// --- Conversion ------------------------------------------------------------

// All iterates over the elements in order.
func (s Set[T]) All() iter.Seq[T] {
	return s.backing().All()
}

// ToSortedList returns the elements in order.
func (s Set[T]) ToSortedList() []T {
	return s.backing().ToList()
}

// Equal is true if s and other contain the same keys. Payload of elements
// beyond their key is not compared, and neither is the shape of the
// underlying trees.
func (s Set[T]) Equal(other Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for v := range s.All() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// String renders a set as "{a, b, c}".
func (s Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for v := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte('}')
	return sb.String()
}

// --- Mapping ---------------------------------------------------------------

// Map applies f to every element of s and collects the results in a new set
// ordered by c. Results comparing equal collapse into one element.
func Map[T, R any](s Set[T], c ordered.Comparator[R], f func(T) R) Set[R] {
	r := ImmutableFunc(c)
	for v := range s.All() {
		r = r.Add(f(v))
	}
	return r
}

// FlatMap applies f to every element of s and collects all values of the
// resulting sequences in a new set ordered by c.
func FlatMap[T, R any](s Set[T], c ordered.Comparator[R], f func(T) iter.Seq[R]) Set[R] {
	r := ImmutableFunc(c)
	for v := range s.All() {
		r = r.AddAll(f(v))
	}
	return r
}
