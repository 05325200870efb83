/*
Package tree defines the contract for persistent binary search trees.

A persistent tree never changes. Insertion, removal and range restriction return
a new incarnation of the tree, which shares every untouched subtree with the
original. Old incarnations stay valid and keep observing their own content.

	t1 := tree.New[string]().Insert("Alice")
	t2 := t1.Insert("Bob")
	t1.Find("Bob")   // Nothing
	t2.Find("Bob")   // Just("Bob")

Besides the contract, the package offers Unbalanced, a tree without any
re-balancing. Package persistent/treap implements a randomized balanced variant.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.tree'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ordered.tree: "+msg, msgargs...)
		panic(msg)
	}
}
