/*
Package persistent groups the immutable containers of this module.

Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Every modification returns a new incarnation
of the container, which shares most of its memory with its predecessor. Old incarnations
stay valid, and as nothing is ever mutated, all of them are safe for concurrent reading.

All containers here are based on binary search trees:

	tree    the contract for persistent binary search trees, and an unbalanced reference tree
	treap   a randomized balanced tree, the default backing of everything else
	set     ordered sets
	omap    ordered maps
	queue   a FIFO queue

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
