package treap

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/maybe"
	"github.com/npillmayer/ordered/persistent/tree"
)

// Treap is a persistent randomized binary search tree. A Treap with a nil root
// is the empty tree; all empty treaps of an ordering are interchangeable.
//
// Treap implements tree.Tree.
type Treap[T any] struct {
	root *node[T]
	cmp  ordered.Comparator[T]
	prio func() uint32
}

// node is immutable once it is linked into a tree. size caches the number of
// values in the subtree rooted at the node.
type node[T any] struct {
	value       T
	prio        uint32
	size        int
	left, right *node[T]
}

var _ tree.Tree[int] = Treap[int]{}
var _ tree.Bounded[int] = Treap[int]{}

// Immutable creates an empty treap for naturally ordered types.
//
//	t := treap.Immutable[int]()
//	t = t.Insert(42)
func Immutable[T cmp.Ordered](opts ...Option) Treap[T] {
	return ImmutableFunc(ordered.Natural[T](), opts...)
}

// ImmutableFunc creates an empty treap ordered by c. c has to be a strict total
// order; an inconsistent comparator corrupts the tree without notice.
func ImmutableFunc[T any](c ordered.Comparator[T], opts ...Option) Treap[T] {
	assertThat(c != nil, "comparator must not be nil")
	conf := options{prio: rand.Uint32}
	for _, option := range opts {
		option(&conf)
	}
	return Treap[T]{cmp: c, prio: conf.prio}
}

type options struct {
	prio func() uint32
}

// Option is a type to help initializing treaps at creation time.
type Option func(*options)

// PrioritySource is an option to replace the random number generator which
// draws priorities for new nodes. The default draws from the process-wide
// generator of math/rand/v2.
//
// Use it for reproducible tree shapes:
//
//	rnd := rand.New(rand.NewPCG(1, 2))
//	t := treap.Immutable[int](treap.PrioritySource(rnd.Uint32))
//
// Note that a treap does not synchronize calls to src. A source which is not
// safe for concurrent use must not be shared between goroutines inserting
// into derived treaps.
func PrioritySource(src func() uint32) Option {
	return func(o *options) {
		if src != nil {
			o.prio = src
		}
	}
}

// mustBeInitialized guards operations which compare values.
func (t Treap[T]) mustBeInitialized() {
	assertThat(t.cmp != nil, "treap is not initialized, use treap.Immutable or treap.ImmutableFunc")
}

func (t Treap[T]) with(root *node[T]) Treap[T] {
	return Treap[T]{root: root, cmp: t.cmp, prio: t.prio}
}

// --- API -------------------------------------------------------------------

// Insert returns a treap containing v. If a value comparing equal to v is
// already present, it is replaced by v. The replacement keeps the priority of
// the old node, thus the shape of the tree does not change.
func (t Treap[T]) Insert(v T) tree.Tree[T] {
	t.mustBeInitialized()
	return t.with(t.insert(t.root, v))
}

func (t Treap[T]) insert(n *node[T], v T) *node[T] {
	if n == nil {
		return &node[T]{value: v, prio: t.prio(), size: 1}
	}
	switch c := t.cmp(v, n.value); {
	case c < 0:
		cow := link(n.value, n.prio, t.insert(n.left, v), n.right)
		if cow.left.prio < cow.prio {
			return cow.rotateRight()
		}
		return cow
	case c > 0:
		cow := link(n.value, n.prio, n.left, t.insert(n.right, v))
		if cow.right.prio < cow.prio {
			return cow.rotateLeft()
		}
		return cow
	}
	return &node[T]{value: v, prio: n.prio, size: n.size, left: n.left, right: n.right}
}

// Remove returns a treap without v. If v is not present, the receiver is
// returned.
func (t Treap[T]) Remove(v T) tree.Tree[T] {
	t.mustBeInitialized()
	return t.with(t.remove(t.root, v))
}

func (t Treap[T]) remove(n *node[T], v T) *node[T] {
	if n == nil {
		return nil
	}
	switch c := t.cmp(v, n.value); {
	case c < 0:
		l := t.remove(n.left, v)
		if l == n.left {
			return n
		}
		return link(n.value, n.prio, l, n.right)
	case c > 0:
		r := t.remove(n.right, v)
		if r == n.right {
			return n
		}
		return link(n.value, n.prio, n.left, r)
	}
	return n.cut()
}

// cut removes n from its subtree. While n has two children, n is rotated
// towards the child with the smaller priority, which keeps heap order.
func (n *node[T]) cut() *node[T] {
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	case n.left.prio < n.right.prio:
		tracer().Debugf("remove: rotating %v down to the right", n.value)
		l := n.left
		return link(l.value, l.prio, l.left, link(n.value, n.prio, l.right, n.right).cut())
	}
	tracer().Debugf("remove: rotating %v down to the left", n.value)
	r := n.right
	return link(r.value, r.prio, link(n.value, n.prio, n.left, r.left).cut(), r.right)
}

// Find returns the stored value which compares equal to v.
func (t Treap[T]) Find(v T) maybe.Maybe[T] {
	t.mustBeInitialized()
	n := t.root
	for n != nil {
		switch c := t.cmp(v, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return maybe.Just(n.value)
		}
	}
	return maybe.Nothing[T]()
}

// GreaterThan returns a treap of all values greater than floor, including
// floor if inclusive is set. floor does not have to be present in the treap.
func (t Treap[T]) GreaterThan(floor T, inclusive bool) tree.Tree[T] {
	t.mustBeInitialized()
	return t.with(t.greaterThan(t.root, floor, inclusive))
}

// Dropping nodes never violates heap order, as every descendant of a node has
// a priority at least as large as the node's.
func (t Treap[T]) greaterThan(n *node[T], floor T, inclusive bool) *node[T] {
	if n == nil {
		return nil
	}
	c := t.cmp(floor, n.value)
	switch {
	case c == 0 && !inclusive:
		return n.right
	case c == 0:
		return link(n.value, n.prio, nil, n.right)
	case c > 0:
		return t.greaterThan(n.right, floor, inclusive)
	}
	l := t.greaterThan(n.left, floor, inclusive)
	if l == n.left {
		return n
	}
	return link(n.value, n.prio, l, n.right)
}

// LessThan returns a treap of all values less than ceiling, including ceiling
// if inclusive is set. ceiling does not have to be present in the treap.
func (t Treap[T]) LessThan(ceiling T, inclusive bool) tree.Tree[T] {
	t.mustBeInitialized()
	return t.with(t.lessThan(t.root, ceiling, inclusive))
}

func (t Treap[T]) lessThan(n *node[T], ceiling T, inclusive bool) *node[T] {
	if n == nil {
		return nil
	}
	c := t.cmp(ceiling, n.value)
	switch {
	case c == 0 && !inclusive:
		return n.left
	case c == 0:
		return link(n.value, n.prio, n.left, nil)
	case c < 0:
		return t.lessThan(n.left, ceiling, inclusive)
	}
	r := t.lessThan(n.right, ceiling, inclusive)
	if r == n.right {
		return n
	}
	return link(n.value, n.prio, n.left, r)
}

// RemoveMin returns the smallest value and a treap of the remaining values.
// For an empty treap, ok is false.
func (t Treap[T]) RemoveMin() (min T, rest tree.Tree[T], ok bool) {
	if t.root == nil {
		return min, t, false
	}
	min, r := t.root.removeMin()
	return min, t.with(r), true
}

func (n *node[T]) removeMin() (T, *node[T]) {
	if n.left == nil {
		return n.value, n.right
	}
	min, l := n.left.removeMin()
	return min, link(n.value, n.prio, l, n.right)
}

// Min returns the smallest value of the treap, if any.
func (t Treap[T]) Min() maybe.Maybe[T] {
	if t.root == nil {
		return maybe.Nothing[T]()
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return maybe.Just(n.value)
}

// Max returns the largest value of the treap, if any.
func (t Treap[T]) Max() maybe.Maybe[T] {
	if t.root == nil {
		return maybe.Nothing[T]()
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return maybe.Just(n.value)
}

// All iterates over the values of the treap in order. Iteration may be
// stopped early.
func (t Treap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.root.walk(yield)
	}
}

func (n *node[T]) walk(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.left.walk(yield) && yield(n.value) && n.right.walk(yield)
}

// ToList returns the values of the treap in order.
func (t Treap[T]) ToList() []T {
	list := make([]T, 0, t.Size())
	for v := range t.All() {
		list = append(list, v)
	}
	return list
}

// Valid checks search tree order, heap order and the cached subtree sizes.
// It visits every node and is intended for tests.
func (t Treap[T]) Valid() bool {
	var prev *T
	for v := range t.All() {
		if prev != nil && t.cmp(*prev, v) >= 0 {
			tracer().Errorf("treap out of order at %v", v)
			return false
		}
		prev = &v
	}
	return t.root.validHeap()
}

func (n *node[T]) validHeap() bool {
	if n == nil {
		return true
	}
	if n.prio > n.left.priority() || n.prio > n.right.priority() {
		tracer().Errorf("heap order violated at %v", n.value)
		return false
	}
	if n.size != n.left.count()+n.right.count()+1 {
		tracer().Errorf("bad subtree size at %v", n.value)
		return false
	}
	return n.left.validHeap() && n.right.validHeap()
}

// Size returns the number of values in the treap. It takes constant time.
func (t Treap[T]) Size() int {
	return t.root.count()
}

// MaxDepth returns the length of the longest path from the root to a leaf.
func (t Treap[T]) MaxDepth() int {
	return t.root.depth()
}

func (n *node[T]) depth() int {
	if n == nil {
		return 0
	}
	return max(n.left.depth(), n.right.depth()) + 1
}

// IsEmpty is true for a treap without values.
func (t Treap[T]) IsEmpty() bool {
	return t.root == nil
}

// Clear returns an empty treap with the ordering and priority source of t.
func (t Treap[T]) Clear() tree.Tree[T] {
	return t.with(nil)
}

// String renders the shape of the treap. As the shape depends on random
// priorities, the output is suited for diagnostics only.
func (t Treap[T]) String() string {
	var sb strings.Builder
	t.root.format(&sb)
	return sb.String()
}

func (n *node[T]) format(sb *strings.Builder) {
	switch {
	case n == nil:
		sb.WriteString("Tree()")
	case n.left == nil && n.right == nil:
		fmt.Fprintf(sb, "Tree(%#v)", n.value)
	default:
		sb.WriteString("Tree(")
		n.left.format(sb)
		fmt.Fprintf(sb, ", %#v, ", n.value)
		n.right.format(sb)
		sb.WriteString(")")
	}
}

// --- Nodes -----------------------------------------------------------------

// link creates a node on top of two subtrees.
func link[T any](value T, prio uint32, left, right *node[T]) *node[T] {
	return &node[T]{
		value: value,
		prio:  prio,
		size:  left.count() + right.count() + 1,
		left:  left,
		right: right,
	}
}

// priority of an empty subtree is the worst possible.
func (n *node[T]) priority() uint32 {
	if n == nil {
		return math.MaxUint32
	}
	return n.prio
}

func (n *node[T]) count() int {
	if n == nil {
		return 0
	}
	return n.size
}

// rotateRight lifts the left child of n. n must have a left child.
//
//	    n            l
//	   / \          / \
//	  l   c   ⇒    a   n
//	 / \              / \
//	a   b            b   c
func (n *node[T]) rotateRight() *node[T] {
	l := n.left
	return link(l.value, l.prio, l.left, link(n.value, n.prio, l.right, n.right))
}

// rotateLeft lifts the right child of n. n must have a right child.
func (n *node[T]) rotateLeft() *node[T] {
	r := n.right
	return link(r.value, r.prio, link(n.value, n.prio, n.left, r.left), r.right)
}
