package ordered

import (
	"cmp"

	"github.com/pkg/errors"
)

// Comparator is a strict total order on T. It returns a negative number if a < b,
// zero if a and b are equivalent, and a positive number if a > b.
//
// All containers in this module trust their comparator. An inconsistent comparator
// (non-transitive, or not antisymmetric) silently corrupts a tree.
type Comparator[T any] func(a, b T) int

// Natural returns the natural ordering for ordered types.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse flips an ordering.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Less derives an is-less-than predicate from a comparator.
func (c Comparator[T]) Less(a, b T) bool {
	return c(a, b) < 0
}

// Equiv is true if a and b compare equal.
func (c Comparator[T]) Equiv(a, b T) bool {
	return c(a, b) == 0
}

// ErrNoSuchElement is the fault raised when a destructive read is attempted
// on an empty container, e.g. the head of an empty queue.
// It is never returned; it is the payload of a panic.
var ErrNoSuchElement = errors.New("no such element")
