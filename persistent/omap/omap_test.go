package omap

import (
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/maybe"
	"github.com/npillmayer/ordered/persistent/tree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func add(a, b int) int { return a + b }

func TestMapPutGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.omap")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	m := Immutable[string, int]().Put("Charlie", 3).Put("Alice", 1).Put("Bob", 2)
	require.Equal(t, 3, m.Len())
	v, ok := m.Get("Bob")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = m.Get("Dorothy")
	assert.False(t, ok)
	assert.True(t, m.Find("Dorothy").IsNothing())
	//
	m2 := m.Put("Bob", 20).Remove("Alice")
	assert.Equal(t, 2, m.Find("Bob").WithDefault(0), "original map must not change")
	assert.Equal(t, 20, m2.Find("Bob").WithDefault(0))
	assert.False(t, m2.Contains("Alice"))
	assert.True(t, m.Contains("Alice"))
	assert.Equal(t, "{Alice: 1, Bob: 2, Charlie: 3}", m.String())
}

func TestMapKeysMatchPairSet(t *testing.T) {
	m := Of(ordered.KV("c", 3), ordered.KV("a", 1), ordered.KV("b", 2), ordered.KV("a", 4))
	keys := slices.Collect(m.Keys())
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	var projected []string
	for kv := range m.Set().All() {
		projected = append(projected, kv.Key)
	}
	assert.Equal(t, keys, projected)
	assert.Equal(t, []int{4, 2, 3}, slices.Collect(m.Values()))
	assert.Equal(t, []ordered.KeyValue[string, int]{{Key: "a", Value: 4}, {Key: "b", Value: 2}, {Key: "c", Value: 3}},
		m.ToSortedList())
}

func TestMapUpdate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.omap")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	inc := func(v maybe.Maybe[int]) maybe.Maybe[int] {
		return maybe.Just(v.WithDefault(0) + 1)
	}
	drop := func(maybe.Maybe[int]) maybe.Maybe[int] {
		return maybe.Nothing[int]()
	}
	m := Immutable[string, int]().Update("x", inc).Update("x", inc).Update("y", inc)
	assert.Equal(t, 2, m.Find("x").WithDefault(0))
	assert.Equal(t, 1, m.Find("y").WithDefault(0))
	m = m.Update("x", drop)
	assert.False(t, m.Contains("x"))
	assert.Equal(t, 1, m.Len())
	m = m.Update("z", drop)
	assert.Equal(t, 1, m.Len())
}

func TestMapMerge(t *testing.T) {
	words := strings.Fields("the quick fox jumps over the lazy dog the end")
	counts := Immutable[string, int]()
	for _, w := range words {
		counts = counts.Merge(w, 1, add)
	}
	assert.Equal(t, 3, counts.Find("the").WithDefault(0))
	assert.Equal(t, 1, counts.Find("fox").WithDefault(0))
	assert.Equal(t, 8, counts.Len())
}

func TestMapFromSeq(t *testing.T) {
	src := map[string]int{"one": 1, "two": 2, "three": 3}
	m := FromSeq2(ordered.Natural[string](), maps.All(src))
	assert.Equal(t, []string{"one", "three", "two"}, slices.Collect(m.Keys()))
	//
	lengths := FromKeys(ordered.Natural[string](), slices.Values([]string{"ab", "c", "def"}),
		func(k string) int { return len(k) })
	assert.Equal(t, "{ab: 2, c: 1, def: 3}", lengths.String())
	//
	pairs := func(yield func(string, int) bool) {
		for _, kv := range []ordered.KeyValue[string, int]{ordered.KV("a", 1), ordered.KV("b", 2), ordered.KV("a", 10)} {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
	merged := FromSeq2Merge(ordered.Natural[string](), pairs, add)
	assert.Equal(t, 11, merged.Find("a").WithDefault(0))
	//
	all := maps.Collect(merged.All())
	assert.Equal(t, map[string]int{"a": 11, "b": 2}, all)
}

func TestMapAlgebra(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.omap")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	a := Of(ordered.KV(1, "a1"), ordered.KV(2, "a2"), ordered.KV(3, "a3"))
	b := Of(ordered.KV(2, "b2"), ordered.KV(3, "b3"), ordered.KV(4, "b4"), ordered.KV(5, "b5"))
	concat := func(mine, theirs string) string { return mine + "+" + theirs }
	u := a.Union(b, concat)
	assert.Equal(t, "{1: a1, 2: a2+b2, 3: a3+b3, 4: b4, 5: b5}", u.String())
	i := a.Intersect(b, concat)
	assert.Equal(t, "{2: a2+b2, 3: a3+b3}", i.String())
	i = b.Intersect(a, concat)
	assert.Equal(t, "{2: b2+a2, 3: b3+a3}", i.String())
	assert.Equal(t, "{1: a1}", a.Except(b).String())
	assert.Equal(t, "{4: b4, 5: b5}", b.Except(a).String())
	assert.Equal(t, "{3: b3, 4: b4}", b.GreaterThan(2, false).LessThan(5, false).String())
}

func TestMapRemoveAllAndEqual(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	a := Of(ordered.KV("x", 1), ordered.KV("y", 2), ordered.KV("z", 3))
	b := a.RemoveAll(slices.Values([]string{"x", "z", "w"}))
	assert.Equal(t, 1, b.Len())
	assert.True(t, b.Equal(Of(ordered.KV("y", 2)), eq))
	assert.False(t, b.Equal(Of(ordered.KV("y", 3)), eq))
	assert.False(t, a.Equal(b, eq))
	assert.True(t, a.PutAll(b.All()).Equal(a, eq))
}

func TestMapOverUnbalancedTree(t *testing.T) {
	byKey := ordered.ByKey[int, string](ordered.Natural[int]())
	m := Over[int, string](tree.NewFunc(byKey)).Put(2, "two").Put(1, "one")
	assert.Equal(t, "{1: one, 2: two}", m.String())
	assert.False(t, m.IsEmpty())
}

func TestMapZeroValue(t *testing.T) {
	var m Map[string, int]
	assert.PanicsWithValue(t, "ordered.omap: map is not initialized, create maps with a constructor",
		func() { m.Put("Alice", 1) })
	assert.PanicsWithValue(t, "ordered.omap: map is not initialized, create maps with a constructor",
		func() { m.Get("Alice") })
	assert.NotPanics(t, func() { Immutable[string, int]().Put("Alice", 1).Len() })
}
