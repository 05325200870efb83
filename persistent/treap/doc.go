/*
Package treap implements a persistent randomized balanced binary search tree.

A treap is a binary search tree in which every node additionally carries a
priority, drawn at random when the node is created. Besides the search tree
order, a treap maintains heap order on priorities: a node's priority is never
larger than the priorities of its children. Insertion and removal restore heap
order by rotations.

The shape of a treap is statistically the same as the shape of a binary search
tree built from inserting the same values in random order. The expected depth
is therefore logarithmic, whatever order the client inserts values in. There is
no worst-case guarantee, and a priority source which is not sufficiently random
(see option PrioritySource) silently degrades the tree.

Treaps are immutable. Every operation returning a Treap leaves the receiver
untouched and shares all unmodified subtrees with it.

	t := treap.Immutable[string]()
	t2 := t.Insert("Charlie").Insert("Eve").Insert("Bob")
	for name := range t2.All() {
		fmt.Println(name) // Bob, Charlie, Eve
	}

References:

Seidel, Raimund; Aragon, Cecilia R.: Randomized Search Trees. Algorithmica 16 (4/5), 1996.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treap

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.treap'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.treap")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ordered.treap: "+msg, msgargs...)
		panic(msg)
	}
}
