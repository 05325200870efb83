/*
Package heap implements an array-backed binary heap.

Unlike the containers of package persistent, a heap is mutable: Insert and
GetMin change the heap in place. A heap is not safe for concurrent use.

Ordering is given by an is-less-than predicate, so a heap serves as a min- or
as a max-priority queue:

	h := heap.New(func(a, b int) bool { return a > b })  // max-heap
	h.Insert(3)
	h.Insert(7)
	h.GetMin()  // 7

Draining a heap yields its values in sorted order, which makes for a simple
eager sort, see Sort.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package heap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.heap'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.heap")
}
