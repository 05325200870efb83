package heap

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/npillmayer/ordered"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapInternalOrder(t *testing.T) {
	h := Of(5, 2, 9, 7, 3, 10, 100, 4, -2)
	assert.Equal(t, "PriorityQueue(-2, 2, 9, 3, 5, 10, 100, 7, 4)", h.String())
	assert.True(t, h.Valid())
	assert.Equal(t, -2, h.GetMin())
	assert.Equal(t, "PriorityQueue(2, 3, 9, 4, 5, 10, 100, 7)", h.String())
}

func TestHeapValidAfterEveryOperation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.heap")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewPCG(17, 19))
	h := New(func(a, b int) bool { return a < b })
	for i := 0; i < 500; i++ {
		if h.Len() > 0 && rnd.IntN(3) == 0 {
			h.GetMin()
		} else {
			h.Insert(rnd.IntN(50))
		}
		require.True(t, h.Valid(), "heap invalid after operation %d", i)
	}
}

func TestHeapDrainSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.heap")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	h := Of(8, 3, 3, 1, 9, 1, 0, 7)
	drained := slices.Collect(h.Drain())
	assert.Equal(t, []int{0, 1, 1, 3, 3, 7, 8, 9}, drained)
	assert.True(t, h.IsEmpty())
	assert.Equal(t, "PriorityQueue()", h.String())
}

func TestHeapMaxHeap(t *testing.T) {
	h := New(ordered.Reverse(ordered.Natural[string]()).Less)
	for _, s := range []string{"Bob", "Eve", "Alice", "Dorothy", "Charlie"} {
		h.Insert(s)
	}
	v, ok := h.Peek()
	assert.True(t, ok)
	assert.Equal(t, "Eve", v)
	assert.Equal(t, []string{"Eve", "Dorothy", "Charlie", "Bob", "Alice"}, slices.Collect(h.Drain()))
}

func TestHeapDrainStopsEarly(t *testing.T) {
	h := Of(4, 2, 6, 1)
	for v := range h.Drain() {
		if v == 2 {
			break
		}
	}
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 4, h.GetMin())
}

func TestHeapReusesSlots(t *testing.T) {
	h := Of(1, 2, 3)
	h.GetMin()
	h.GetMin()
	assert.Equal(t, 3, len(h.items))
	assert.Equal(t, 0, h.items[2], "removed slot should be cleared")
	h.Insert(0)
	assert.Equal(t, 3, len(h.items))
	assert.Equal(t, "PriorityQueue(0, 3)", h.String())
}

func TestHeapEmptyGetMin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.heap")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	h := Of[int]()
	_, ok := h.Peek()
	assert.False(t, ok)
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected GetMin on empty heap to panic")
		assert.True(t, errors.Is(r.(error), ordered.ErrNoSuchElement))
	}()
	h.GetMin()
}

func TestSort(t *testing.T) {
	in := []string{"Charlie", "Eve", "Bob", "Alice", "Dorothy"}
	out := Sort(in, func(a, b string) bool { return a < b })
	assert.Equal(t, []string{"Alice", "Bob", "Charlie", "Dorothy", "Eve"}, out)
	assert.Equal(t, "Charlie", in[0], "input must not be changed")
}

// Drain order is cross-checked against another binary heap implementation.
func TestHeapAgainstGods(t *testing.T) {
	rnd := rand.New(rand.NewPCG(23, 29))
	h := New(func(a, b int) bool { return a < b })
	oracle := binaryheap.NewWithIntComparator()
	for i := 0; i < 1000; i++ {
		x := rnd.IntN(10000) - 5000
		h.Insert(x)
		oracle.Push(x)
	}
	require.Equal(t, oracle.Size(), h.Len())
	for v := range h.Drain() {
		want, ok := oracle.Pop()
		require.True(t, ok)
		require.Equal(t, want.(int), v)
	}
	assert.True(t, oracle.Empty())
}
