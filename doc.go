/*
Package ordered is the root of a small family of persistent ordered containers.

The containers are built from a randomized balanced binary search tree (a treap,
see package persistent/treap). On top of it live an ordered set, an ordered map
and a FIFO queue, all immutable: every “modification” returns a new container
and leaves the original untouched. Nodes are shared between versions.

	persistent/tree    contract for persistent binary search trees + unbalanced reference tree
	persistent/treap   treap implementation
	persistent/set     ordered sets with set algebra
	persistent/omap    ordered maps, implemented as sets of key/value pairs
	persistent/queue   FIFO queue
	heap               a mutable binary heap, for eager sorting and prioritizing

This package contains the types shared by all of them: comparators, key/value
pairs and the fault used for misuse of empty containers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordered
