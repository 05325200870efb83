/*
Package omap implements persistent ordered maps.

A Map is an ordered set of key/value pairs, compared by key only. Every map
operation is a thin adapter over the corresponding operation of package set;
merge functions on values are lifted to merge functions on pairs, which keep
the key and merge the values.

	m := omap.Immutable[string, int]()
	m = m.Put("Alice", 1).Put("Bob", 2)
	m = m.Merge("Alice", 10, func(old, new int) int { return old + new })
	v, ok := m.Get("Alice")  // 11, true

Re-associating an existing key does not change the shape of the underlying
treap, making value updates cheap.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package omap

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.omap'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.omap")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ordered.omap: "+msg, msgargs...)
		panic(msg)
	}
}
