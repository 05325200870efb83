package set

import (
	"iter"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/btree"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/persistent/tree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSetBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.set")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	s := Of("Charlie", "Eve", "Bob", "Alice", "Dorothy")
	if diff := cmp.Diff([]string{"Alice", "Bob", "Charlie", "Dorothy", "Eve"}, s.ToSortedList()); diff != "" {
		t.Errorf("unexpected set content (-want +got):\n%s", diff)
	}
	s2 := s.Remove("Charlie").Add("Frank")
	if s.Contains("Frank") || !s.Contains("Charlie") {
		t.Errorf("expected original set to be unchanged")
	}
	if !s2.Contains("Frank") || s2.Contains("Charlie") || s2.Len() != 5 {
		t.Errorf("expected {Alice, Bob, Dorothy, Eve, Frank}, have %v", s2)
	}
	if s.Min().WithDefault("") != "Alice" || s.Max().WithDefault("") != "Eve" {
		t.Errorf("expected min Alice and max Eve, have %v and %v", s.Min(), s.Max())
	}
}

func TestSetString(t *testing.T) {
	if s := Immutable[int]().String(); s != "{}" {
		t.Errorf("expected empty set to print as {}, is %q", s)
	}
	if s := Of(3, 1, 2).String(); s != "{1, 2, 3}" {
		t.Errorf("expected {1, 2, 3}, is %q", s)
	}
}

func TestSetAlgebraLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.set")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	a := Of(1, 3, 5, 7, 9, 11)
	b := Of(2, 4, 6)
	if !a.IntersectKeep(a).Equal(a) {
		t.Errorf("expected A ∩ A = A")
	}
	if !a.Except(a).IsEmpty() {
		t.Errorf("expected A \\ A = ∅, is %v", a.Except(a))
	}
	if n := a.UnionKeep(b).Len(); n != a.Len()+b.Len() {
		t.Errorf("expected |A ∪ B| = %d for disjoint sets, is %d", a.Len()+b.Len(), n)
	}
	if n := b.UnionKeep(a).Len(); n != a.Len()+b.Len() {
		t.Errorf("expected |B ∪ A| = %d for disjoint sets, is %d", a.Len()+b.Len(), n)
	}
	if !a.IntersectKeep(b).IsEmpty() {
		t.Errorf("expected A ∩ B = ∅ for disjoint sets")
	}
	c := Of(3, 4, 5)
	if diff := cmp.Diff([]int{1, 7, 9, 11}, a.Except(c).ToSortedList()); diff != "" {
		t.Errorf("unexpected difference A \\ C (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{4}, c.Except(a).ToSortedList()); diff != "" {
		t.Errorf("unexpected difference C \\ A (-want +got):\n%s", diff)
	}
}

type tagged struct {
	key int
	tag string
}

func byKey(a, b tagged) int {
	return a.key - b.key
}

func tags[T any](s Set[T], f func(T) string) string {
	var parts []string
	for v := range s.All() {
		parts = append(parts, f(v))
	}
	return strings.Join(parts, " ")
}

func TestSetUnionMergeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.set")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	mine := FromSeq(byKey, slices.Values([]tagged{{1, "a"}, {2, "a"}, {3, "a"}, {4, "a"}}))
	theirs := FromSeq(byKey, slices.Values([]tagged{{2, "b"}, {5, "b"}}))
	concat := func(m, t tagged) tagged { return tagged{m.key, m.tag + t.tag} }
	show := func(x tagged) string { return x.tag }
	// both folding directions must call op(mine, theirs)
	if s := tags(mine.Union(theirs, concat), show); s != "a ab a a b" {
		t.Errorf("expected union tags 'a ab a a b', have %q", s)
	}
	if s := tags(theirs.Union(mine, concat), show); s != "a ba a a b" {
		t.Errorf("expected union tags 'a ba a a b', have %q", s)
	}
	if s := tags(mine.Intersect(theirs, concat), show); s != "ab" {
		t.Errorf("expected intersection tags 'ab', have %q", s)
	}
	if s := tags(theirs.Intersect(mine, concat), show); s != "ba" {
		t.Errorf("expected intersection tags 'ba', have %q", s)
	}
	if s := tags(mine.Except(theirs), show); s != "a a a" {
		t.Errorf("expected difference tags 'a a a', have %q", s)
	}
}

func TestSetMerge(t *testing.T) {
	count := func(a, b tagged) tagged { return tagged{a.key, a.tag + b.tag} }
	s := FromSeqMerge(byKey, slices.Values([]tagged{{1, "x"}, {2, "y"}, {1, "z"}}), count)
	if s.Len() != 2 {
		t.Fatalf("expected 2 elements, have %d", s.Len())
	}
	if e := s.Find(tagged{key: 1}).WithDefault(tagged{}); e.tag != "xz" {
		t.Errorf("expected merged element xz, have %q", e.tag)
	}
	s2 := s.Merge(tagged{3, "w"}, count).Merge(tagged{2, "v"}, count)
	if tags(s2, func(x tagged) string { return x.tag }) != "xz yv w" {
		t.Errorf("expected tags 'xz yv w', have %v", s2)
	}
}

func TestSetRanges(t *testing.T) {
	s := Of(10, 20, 30, 40, 50)
	if diff := cmp.Diff([]int{30, 40}, s.GreaterThan(20, false).LessThan(40, true).ToSortedList()); diff != "" {
		t.Errorf("unexpected range (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{}, s.GreaterThan(55, true).ToSortedList()); diff != "" {
		t.Errorf("expected empty range (-want +got):\n%s", diff)
	}
}

func TestSetOverUnbalancedTree(t *testing.T) {
	s := Over[int](tree.New[int]()).Add(3).Add(1).Add(2)
	if diff := cmp.Diff([]int{1, 2, 3}, s.ToSortedList()); diff != "" {
		t.Errorf("unexpected set content (-want +got):\n%s", diff)
	}
	if !s.Equal(Of(2, 3, 1)) {
		t.Errorf("expected sets with equal content over different trees to be equal")
	}
	if s.Max().WithDefault(0) != 3 {
		t.Errorf("expected max 3, have %v", s.Max())
	}
}

func TestSetMapping(t *testing.T) {
	s := Of(-2, -1, 0, 1, 2)
	squares := Map(s, ordered.Natural[int](), func(x int) int { return x * x })
	if diff := cmp.Diff([]int{0, 1, 4}, squares.ToSortedList()); diff != "" {
		t.Errorf("unexpected mapped set (-want +got):\n%s", diff)
	}
	around := FlatMap(Of(10, 20), ordered.Natural[int](), func(x int) iter.Seq[int] {
		return slices.Values([]int{x - 1, x, x + 1})
	})
	if diff := cmp.Diff([]int{9, 10, 11, 19, 20, 21}, around.ToSortedList()); diff != "" {
		t.Errorf("unexpected flat-mapped set (-want +got):\n%s", diff)
	}
	desc := Map(s, ordered.Reverse(ordered.Natural[int]()), func(x int) int { return x })
	if diff := cmp.Diff([]int{2, 1, 0, -1, -2}, desc.ToSortedList()); diff != "" {
		t.Errorf("unexpected reverse ordered set (-want +got):\n%s", diff)
	}
}

// Set algebra is cross-checked against B-trees for random operands.
func TestSetAlgebraAgainstBTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.set")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewPCG(3, 5))
	for round := 0; round < 20; round++ {
		a, b := Immutable[int](), Immutable[int]()
		ba, bb := btree.NewOrderedG[int](4), btree.NewOrderedG[int](4)
		na, nb := rnd.IntN(100), rnd.IntN(100)
		for i := 0; i < na; i++ {
			x := rnd.IntN(150)
			a = a.Add(x)
			ba.ReplaceOrInsert(x)
		}
		for i := 0; i < nb; i++ {
			x := rnd.IntN(150)
			b = b.Add(x)
			bb.ReplaceOrInsert(x)
		}
		union, inter, diff := ba.Clone(), btree.NewOrderedG[int](4), ba.Clone()
		bb.Ascend(func(x int) bool {
			union.ReplaceOrInsert(x)
			if ba.Has(x) {
				inter.ReplaceOrInsert(x)
			}
			diff.Delete(x)
			return true
		})
		if d := cmp.Diff(ascending(union), a.UnionKeep(b).ToSortedList()); d != "" {
			t.Fatalf("round %d: union differs (-want +got):\n%s", round, d)
		}
		if d := cmp.Diff(ascending(inter), a.IntersectKeep(b).ToSortedList()); d != "" {
			t.Fatalf("round %d: intersection differs (-want +got):\n%s", round, d)
		}
		if d := cmp.Diff(ascending(diff), a.Except(b).ToSortedList()); d != "" {
			t.Fatalf("round %d: difference differs (-want +got):\n%s", round, d)
		}
	}
}

func ascending(bt *btree.BTreeG[int]) []int {
	l := make([]int, 0, bt.Len())
	bt.Ascend(func(x int) bool {
		l = append(l, x)
		return true
	})
	return l
}

func TestSetZeroValue(t *testing.T) {
	defer func() {
		r := recover()
		if r != "ordered.set: set is not initialized, create sets with a constructor" {
			t.Errorf("expected zero set to fail with a clear message, failed with %v", r)
		}
	}()
	var s Set[int]
	s.Add(1)
}
