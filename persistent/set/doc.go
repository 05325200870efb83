/*
Package set implements persistent ordered sets.

A Set wraps a persistent binary search tree, by default a treap. Elements are
ordered by a comparator, and elements comparing equal are the same element as
far as the set is concerned. Elements may therefore carry payload beyond their
key; package omap builds ordered maps this way.

Set algebra resolves collisions of key-equal elements by a merge function,
which is called as op(mine, theirs), with mine being an element of the
receiver:

	a := set.Of(1, 2, 3)
	b := set.Of(2, 3, 4)
	a.UnionKeep(b)      // {1, 2, 3, 4}
	a.IntersectKeep(b)  // {2, 3}
	a.Except(b)         // {1}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package set

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.set'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.set")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ordered.set: "+msg, msgargs...)
		panic(msg)
	}
}
