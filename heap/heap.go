package heap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/ordered"
	"github.com/pkg/errors"
)

// Binary is a binary heap. Slot i has children at slots 2i+1 and 2i+2.
// Slots beyond size hold zero values and are re-used by later insertions.
type Binary[T any] struct {
	items []T
	size  int
	less  func(a, b T) bool
}

// New creates an empty heap ordered by less.
func New[T any](less func(a, b T) bool) *Binary[T] {
	if less == nil {
		panic("ordered.heap: less-predicate must not be nil")
	}
	return &Binary[T]{less: less}
}

// Of creates a min-heap of naturally ordered values.
func Of[T cmp.Ordered](values ...T) *Binary[T] {
	h := New(cmp.Less[T])
	h.items = make([]T, 0, len(values))
	for _, v := range values {
		h.Insert(v)
	}
	return h
}

// Insert adds v to the heap.
func (h *Binary[T]) Insert(v T) {
	if h.size < len(h.items) {
		h.items[h.size] = v
	} else {
		h.items = append(h.items, v)
	}
	h.size++
	h.siftUp(h.size - 1)
}

// GetMin removes and returns the least value of the heap. Calling GetMin on an
// empty heap is a programming error and panics with ordered.ErrNoSuchElement.
func (h *Binary[T]) GetMin() T {
	if h.size == 0 {
		tracer().Errorf("GetMin on empty heap")
		panic(errors.Wrap(ordered.ErrNoSuchElement, "GetMin on empty heap"))
	}
	min := h.items[0]
	h.size--
	h.items[0] = h.items[h.size]
	var zero T
	h.items[h.size] = zero
	h.siftDown(0)
	return min
}

// Peek returns the least value without removing it.
func (h *Binary[T]) Peek() (T, bool) {
	if h.size == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Len returns the number of values in the heap.
func (h *Binary[T]) Len() int {
	return h.size
}

// IsEmpty is true for a heap without values.
func (h *Binary[T]) IsEmpty() bool {
	return h.size == 0
}

// Drain returns a sequence which removes values from the heap while it is
// iterated. The values are produced in sorted order. Stopping the iteration
// early leaves the remaining values in the heap.
func (h *Binary[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		tracer().Debugf("draining heap of %d values", h.size)
		for h.size > 0 {
			if !yield(h.GetMin()) {
				return
			}
		}
	}
}

// Valid checks the heap order for every slot. It is intended for tests.
func (h *Binary[T]) Valid() bool {
	for i := 1; i < h.size; i++ {
		if h.less(h.items[i], h.items[(i-1)/2]) {
			return false
		}
	}
	return true
}

// String lists the values in internal order, e.g. "PriorityQueue(1, 3, 2)".
func (h *Binary[T]) String() string {
	var sb strings.Builder
	sb.WriteString("PriorityQueue(")
	for i, v := range h.items[:h.size] {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString(")")
	return sb.String()
}

// Sort returns the values ordered by less, in a new slice. values is left
// unchanged.
func Sort[T any](values []T, less func(a, b T) bool) []T {
	h := New(less)
	h.items = make([]T, 0, len(values))
	for _, v := range values {
		h.Insert(v)
	}
	sorted := make([]T, 0, len(values))
	for v := range h.Drain() {
		sorted = append(sorted, v)
	}
	return sorted
}

// --- Internals -------------------------------------------------------------

func (h *Binary[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// siftDown swaps slot i with its lesser child until heap order is restored.
// Of two equal children, the first one is chosen.
func (h *Binary[T]) siftDown(i int) {
	for {
		child := 2*i + 1
		if child >= h.size {
			return
		}
		if child+1 < h.size && h.less(h.items[child+1], h.items[child]) {
			child++
		}
		if !h.less(h.items[child], h.items[i]) {
			return
		}
		h.items[i], h.items[child] = h.items[child], h.items[i]
		i = child
	}
}
