package omap

import (
	"cmp"
	"iter"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/maybe"
	"github.com/npillmayer/ordered/persistent/set"
	"github.com/npillmayer/ordered/persistent/tree"
	"github.com/npillmayer/ordered/persistent/treap"
)

// Map is a persistent map with ordered keys. Maps are immutable values; every
// operation returning a Map leaves the receiver unchanged.
//
// The zero value of Map is not usable. Create maps with one of the constructors.
type Map[K, V any] struct {
	pairs set.Set[ordered.KeyValue[K, V]]
}

// Immutable creates an empty map for naturally ordered keys.
func Immutable[K cmp.Ordered, V any](opts ...treap.Option) Map[K, V] {
	return ImmutableFunc[K, V](ordered.Natural[K](), opts...)
}

// ImmutableFunc creates an empty map with keys ordered by c.
func ImmutableFunc[K, V any](c ordered.Comparator[K], opts ...treap.Option) Map[K, V] {
	return Map[K, V]{pairs: set.ImmutableFunc(ordered.ByKey[K, V](c), opts...)}
}

// Over creates a map backed by a tree of pairs of the caller's choice. The
// tree has to order pairs by key, see ordered.ByKey.
func Over[K, V any](t tree.Tree[ordered.KeyValue[K, V]]) Map[K, V] {
	return Map[K, V]{pairs: set.Over(t)}
}

// Of creates a map from key/value pairs. Later pairs replace earlier pairs
// with the same key.
func Of[K cmp.Ordered, V any](pairs ...ordered.KeyValue[K, V]) Map[K, V] {
	m := Immutable[K, V]()
	for _, kv := range pairs {
		m = m.Put(kv.Key, kv.Value)
	}
	return m
}

// FromSeq2 creates a map with keys ordered by c from a sequence of key/value
// pairs, e.g. from maps.All.
func FromSeq2[K, V any](c ordered.Comparator[K], seq iter.Seq2[K, V]) Map[K, V] {
	return ImmutableFunc[K, V](c).PutAll(seq)
}

// FromSeq2Merge is FromSeq2, combining values of duplicate keys with
// op(earlier, later).
func FromSeq2Merge[K, V any](c ordered.Comparator[K], seq iter.Seq2[K, V], op func(V, V) V) Map[K, V] {
	return ImmutableFunc[K, V](c).PutAllMerge(seq, op)
}

// FromKeys creates a map associating every key of a sequence with f(key).
func FromKeys[K, V any](c ordered.Comparator[K], keys iter.Seq[K], f func(K) V) Map[K, V] {
	m := ImmutableFunc[K, V](c)
	for k := range keys {
		m = m.Put(k, f(k))
	}
	return m
}

// entries returns the pair set of m.
func (m Map[K, V]) entries() set.Set[ordered.KeyValue[K, V]] {
	// a zero Set holds a nil tree, while every constructed one holds a tree
	assertThat(m.pairs != set.Set[ordered.KeyValue[K, V]]{}, "map is not initialized, create maps with a constructor")
	return m.pairs
}

func (m Map[K, V]) with(pairs set.Set[ordered.KeyValue[K, V]]) Map[K, V] {
	return Map[K, V]{pairs: pairs}
}

// lift turns a merge function on values into a merge function on pairs.
func lift[K, V any](op func(V, V) V) func(a, b ordered.KeyValue[K, V]) ordered.KeyValue[K, V] {
	return func(a, b ordered.KeyValue[K, V]) ordered.KeyValue[K, V] {
		return ordered.KV(a.Key, op(a.Value, b.Value))
	}
}

// --- Entries ---------------------------------------------------------------

// Put associates v with k, replacing an existing association.
func (m Map[K, V]) Put(k K, v V) Map[K, V] {
	return m.with(m.entries().Add(ordered.KV(k, v)))
}

// Remove deletes the association of k, if any.
func (m Map[K, V]) Remove(k K) Map[K, V] {
	return m.with(m.entries().Remove(ordered.KeyOnly[K, V](k)))
}

// Get returns the value associated with k.
func (m Map[K, V]) Get(k K) (V, bool) {
	kv, ok := m.entries().Find(ordered.KeyOnly[K, V](k)).Get()
	return kv.Value, ok
}

// Find returns the value associated with k.
func (m Map[K, V]) Find(k K) maybe.Maybe[V] {
	v, ok := m.Get(k)
	return maybe.Of(v, ok)
}

// Contains is true if k is associated with a value.
func (m Map[K, V]) Contains(k K) bool {
	return m.entries().Contains(ordered.KeyOnly[K, V](k))
}

// Len returns the number of associations.
func (m Map[K, V]) Len() int {
	return m.entries().Len()
}

// IsEmpty is true for a map without associations.
func (m Map[K, V]) IsEmpty() bool {
	return m.entries().IsEmpty()
}

// Update applies fn to the current value for k (Nothing if k is absent). If
// fn returns Nothing, k is removed; otherwise k is associated with the result.
func (m Map[K, V]) Update(k K, fn func(maybe.Maybe[V]) maybe.Maybe[V]) Map[K, V] {
	if v, ok := fn(m.Find(k)).Get(); ok {
		return m.Put(k, v)
	}
	tracer().Debugf("update: removing key %v", k)
	return m.Remove(k)
}

// Merge associates v with k if k is absent. Otherwise k is associated with
// op(current, v).
func (m Map[K, V]) Merge(k K, v V, op func(V, V) V) Map[K, V] {
	return m.with(m.entries().Merge(ordered.KV(k, v), lift[K](op)))
}

// PutAll adds all pairs of a sequence.
func (m Map[K, V]) PutAll(seq iter.Seq2[K, V]) Map[K, V] {
	for k, v := range seq {
		m = m.Put(k, v)
	}
	return m
}

// PutAllMerge merges all pairs of a sequence, see Merge.
func (m Map[K, V]) PutAllMerge(seq iter.Seq2[K, V], op func(V, V) V) Map[K, V] {
	for k, v := range seq {
		m = m.Merge(k, v, op)
	}
	return m
}

// RemoveAll removes the associations of all keys of a sequence.
func (m Map[K, V]) RemoveAll(keys iter.Seq[K]) Map[K, V] {
	for k := range keys {
		m = m.Remove(k)
	}
	return m
}

// --- Map algebra -----------------------------------------------------------

// Union returns a map with the keys of both m and other. Values of keys present
// in both are combined with op(mine, theirs).
func (m Map[K, V]) Union(other Map[K, V], op func(mine, theirs V) V) Map[K, V] {
	return m.with(m.entries().Union(other.entries(), lift[K](op)))
}

// Intersect returns a map with the keys present in both m and other, associated
// with op(mine, theirs).
func (m Map[K, V]) Intersect(other Map[K, V], op func(mine, theirs V) V) Map[K, V] {
	return m.with(m.entries().Intersect(other.entries(), lift[K](op)))
}

// Except returns a map of the associations of m whose key is absent in other.
func (m Map[K, V]) Except(other Map[K, V]) Map[K, V] {
	return m.with(m.entries().Except(other.entries()))
}

// GreaterThan restricts m to keys greater than floor, or equal to floor if
// inclusive is set.
func (m Map[K, V]) GreaterThan(floor K, inclusive bool) Map[K, V] {
	return m.with(m.entries().GreaterThan(ordered.KeyOnly[K, V](floor), inclusive))
}

// LessThan restricts m to keys less than ceiling, or equal to ceiling if
// inclusive is set.
func (m Map[K, V]) LessThan(ceiling K, inclusive bool) Map[K, V] {
	return m.with(m.entries().LessThan(ordered.KeyOnly[K, V](ceiling), inclusive))
}

// --- Conversion ------------------------------------------------------------

// Set returns the set of key/value pairs backing m.
func (m Map[K, V]) Set() set.Set[ordered.KeyValue[K, V]] {
	return m.entries()
}

// Keys iterates over the keys in order.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for kv := range m.entries().All() {
			if !yield(kv.Key) {
				return
			}
		}
	}
}

// Values iterates over the values in order of their keys.
func (m Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for kv := range m.entries().All() {
			if !yield(kv.Value) {
				return
			}
		}
	}
}

// All iterates over the associations in order of keys.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for kv := range m.entries().All() {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// ToSortedList returns the associations in order of keys.
func (m Map[K, V]) ToSortedList() []ordered.KeyValue[K, V] {
	return m.entries().ToSortedList()
}

// Equal is true if m and other have the same keys, and eqV holds for the
// values of every key.
func (m Map[K, V]) Equal(other Map[K, V], eqV func(V, V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}
	for k, v := range m.All() {
		w, ok := other.Get(k)
		if !ok || !eqV(v, w) {
			return false
		}
	}
	return true
}

// String renders a map as "{k1: v1, k2: v2}".
func (m Map[K, V]) String() string {
	return m.entries().String()
}
