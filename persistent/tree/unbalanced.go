package tree

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/maybe"
)

// Unbalanced is a persistent binary search tree without any re-balancing.
// Its shape depends on the order of insertion; inserting sorted input degrades
// it to a linked list. It serves as a reference implementation of Tree and as a
// baseline for balanced variants.
//
// An Unbalanced with a nil root is the empty tree.
type Unbalanced[T any] struct {
	root *node[T]
	cmp  ordered.Comparator[T]
}

type node[T any] struct {
	value       T
	left, right *node[T]
}

var _ Tree[int] = Unbalanced[int]{}
var _ Bounded[int] = Unbalanced[int]{}

// New creates an empty unbalanced tree for naturally ordered types.
func New[T cmp.Ordered]() Unbalanced[T] {
	return Unbalanced[T]{cmp: ordered.Natural[T]()}
}

// NewFunc creates an empty unbalanced tree ordered by c.
func NewFunc[T any](c ordered.Comparator[T]) Unbalanced[T] {
	assertThat(c != nil, "comparator must not be nil")
	return Unbalanced[T]{cmp: c}
}

// mustBeInitialized guards operations which compare values.
func (t Unbalanced[T]) mustBeInitialized() {
	assertThat(t.cmp != nil, "tree is not initialized, use tree.New or tree.NewFunc")
}

func (t Unbalanced[T]) with(root *node[T]) Unbalanced[T] {
	return Unbalanced[T]{root: root, cmp: t.cmp}
}

// --- API -------------------------------------------------------------------

// Insert returns a tree containing v. A key-equal value is replaced.
func (t Unbalanced[T]) Insert(v T) Tree[T] {
	t.mustBeInitialized()
	return t.with(t.insert(t.root, v))
}

func (t Unbalanced[T]) insert(n *node[T], v T) *node[T] {
	if n == nil {
		return &node[T]{value: v}
	}
	switch c := t.cmp(v, n.value); {
	case c < 0:
		return &node[T]{value: n.value, left: t.insert(n.left, v), right: n.right}
	case c > 0:
		return &node[T]{value: n.value, left: n.left, right: t.insert(n.right, v)}
	}
	// key-equal: replace the value, keep the shape
	return &node[T]{value: v, left: n.left, right: n.right}
}

// Remove returns a tree without v.
func (t Unbalanced[T]) Remove(v T) Tree[T] {
	t.mustBeInitialized()
	return t.with(t.remove(t.root, v))
}

func (t Unbalanced[T]) remove(n *node[T], v T) *node[T] {
	if n == nil {
		return nil
	}
	switch c := t.cmp(v, n.value); {
	case c < 0:
		return &node[T]{value: n.value, left: t.remove(n.left, v), right: n.right}
	case c > 0:
		return &node[T]{value: n.value, left: n.left, right: t.remove(n.right, v)}
	}
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}
	tracer().Debugf("remove: rotating %v out of the way", n.value)
	return t.remove(n.rotateRight(), v)
}

// rotateRight lifts the left child. n must have a left child.
func (n *node[T]) rotateRight() *node[T] {
	l := n.left
	return &node[T]{value: l.value, left: l.left, right: &node[T]{value: n.value, left: l.right, right: n.right}}
}

// Find returns the stored value which compares equal to v.
func (t Unbalanced[T]) Find(v T) maybe.Maybe[T] {
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

// GreaterThan returns a tree of all values greater than floor, including
// floor if inclusive is set.
func (t Unbalanced[T]) GreaterThan(floor T, inclusive bool) Tree[T] {
	t.mustBeInitialized()
	return t.with(t.greaterThan(t.root, floor, inclusive))
}

func (t Unbalanced[T]) greaterThan(n *node[T], floor T, inclusive bool) *node[T] {
	if n == nil {
		return nil
	}
	c := t.cmp(floor, n.value)
	switch {
	case c == 0 && !inclusive:
		return n.right
	case c == 0:
		return &node[T]{value: n.value, right: n.right}
	case c > 0: // floor is entirely to the right
		return t.greaterThan(n.right, floor, inclusive)
	}
	return &node[T]{value: n.value, left: t.greaterThan(n.left, floor, inclusive), right: n.right}
}

// LessThan returns a tree of all values less than ceiling, including
// ceiling if inclusive is set.
func (t Unbalanced[T]) LessThan(ceiling T, inclusive bool) Tree[T] {
	t.mustBeInitialized()
	return t.with(t.lessThan(t.root, ceiling, inclusive))
}

func (t Unbalanced[T]) lessThan(n *node[T], ceiling T, inclusive bool) *node[T] {
	if n == nil {
		return nil
	}
	c := t.cmp(ceiling, n.value)
	switch {
	case c == 0 && !inclusive:
		return n.left
	case c == 0:
		return &node[T]{value: n.value, left: n.left}
	case c < 0: // ceiling is entirely to the left
		return t.lessThan(n.left, ceiling, inclusive)
	}
	return &node[T]{value: n.value, left: n.left, right: t.lessThan(n.right, ceiling, inclusive)}
}

// RemoveMin returns the smallest value and a tree of the remaining values.
func (t Unbalanced[T]) RemoveMin() (T, Tree[T], bool) {
	if t.root == nil {
		var none T
		return none, t, false
	}
	min, rest := t.root.removeMin()
	return min, t.with(rest), true
}

func (n *node[T]) removeMin() (T, *node[T]) {
	if n.left == nil {
		return n.value, n.right
	}
	min, rest := n.left.removeMin()
	return min, &node[T]{value: n.value, left: rest, right: n.right}
}

// Min returns the smallest value of the tree, if any.
func (t Unbalanced[T]) Min() maybe.Maybe[T] {
	if t.root == nil {
		return maybe.Nothing[T]()
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return maybe.Just(n.value)
}

// Max returns the largest value of the tree, if any.
func (t Unbalanced[T]) Max() maybe.Maybe[T] {
	if t.root == nil {
		return maybe.Nothing[T]()
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return maybe.Just(n.value)
}

// All iterates over the values in order.
func (t Unbalanced[T]) All() iter.Seq[T] {
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

// ToList returns the values in order.
func (t Unbalanced[T]) ToList() []T {
	list := make([]T, 0, t.Size())
	for v := range t.All() {
		list = append(list, v)
	}
	return list
}

// Valid checks the binary search tree ordering for every node, i.e. not only
// against its direct children.
func (t Unbalanced[T]) Valid() bool {
	var prev *T
	for v := range t.All() {
		if prev != nil && t.cmp(*prev, v) >= 0 {
			return false
		}
		prev = &v
	}
	return true
}

// Size counts the values of the tree. It visits every node.
func (t Unbalanced[T]) Size() int {
	return t.root.size()
}

func (n *node[T]) size() int {
	if n == nil {
		return 0
	}
	return n.left.size() + n.right.size() + 1
}

// MaxDepth returns the length of the longest path from the root to a leaf.
func (t Unbalanced[T]) MaxDepth() int {
	return t.root.depth()
}

func (n *node[T]) depth() int {
	if n == nil {
		return 0
	}
	return max(n.left.depth(), n.right.depth()) + 1
}

// IsEmpty is true for a tree without values.
func (t Unbalanced[T]) IsEmpty() bool {
	return t.root == nil
}

// Clear returns an empty tree with the ordering of t.
func (t Unbalanced[T]) Clear() Tree[T] {
	return t.with(nil)
}

// String renders the shape of the tree, e.g. "Tree(Tree(1), 2, Tree())".
func (t Unbalanced[T]) String() string {
	var sb strings.Builder
	t.root.format(&sb)
	return sb.String()
}

func (n *node[T]) format(sb *strings.Builder) {
	switch {
	case n == nil:
		sb.WriteString("Tree()")
	case n.left == nil && n.right == nil:
		sb.WriteString(fmt.Sprintf("Tree(%#v)", n.value))
	default:
		sb.WriteString("Tree(")
		n.left.format(sb)
		sb.WriteString(fmt.Sprintf(", %#v, ", n.value))
		n.right.format(sb)
		sb.WriteString(")")
	}
}
