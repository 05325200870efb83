/*
Package queue implements a persistent FIFO queue.

A Queue stores its values in a treap, keyed by a sequence number which grows
with every insertion. The oldest value is therefore always the leftmost node
of the treap.

	q := queue.Of(1, 2, 3)
	v, rest, _ := q.Dequeue()  // v = 1, rest = Queue(2, 3)

Finding the front of a queue takes logarithmic time. It is done at most once
for every queue value and then remembered.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.queue'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.queue")
}
