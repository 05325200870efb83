package queue

import (
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/persistent/tree"
	"github.com/npillmayer/ordered/persistent/treap"
	"github.com/pkg/errors"
)

// Queue is a persistent first-in-first-out queue. Queues are immutable values
// and safe for concurrent reading.
//
// The zero value of Queue is not usable. Create queues with Immutable or Of.
type Queue[T any] struct {
	items tree.Tree[entry[T]]
	seq   uint64 // last sequence number handed out
	front *front[T]
}

type entry[T any] struct {
	seq   uint64
	value T
}

func bySeq[T any](a, b entry[T]) int {
	switch {
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}

// front is the memoized result of dequeueing a queue value.
type front[T any] struct {
	once  sync.Once
	value T
	rest  tree.Tree[entry[T]]
	ok    bool
}

// Immutable creates an empty queue.
func Immutable[T any](opts ...treap.Option) Queue[T] {
	return Queue[T]{
		items: treap.ImmutableFunc[entry[T]](bySeq[T], opts...),
		front: &front[T]{},
	}
}

// Of creates a queue of values, with the first value at the front.
func Of[T any](values ...T) Queue[T] {
	q := Immutable[T]()
	for _, v := range values {
		q = q.Insert(v)
	}
	return q
}

func (q Queue[T]) entries() tree.Tree[entry[T]] {
	assertThat(q.items != nil, "queue is not initialized, use queue.Immutable or queue.Of")
	return q.items
}

func (q Queue[T]) with(items tree.Tree[entry[T]], seq uint64) Queue[T] {
	return Queue[T]{items: items, seq: seq, front: &front[T]{}}
}

// --- API -------------------------------------------------------------------

// Insert returns a queue with v appended to the back.
func (q Queue[T]) Insert(v T) Queue[T] {
	assertThat(q.seq < ^uint64(0), "sequence numbers exhausted")
	seq := q.seq + 1
	return q.with(q.entries().Insert(entry[T]{seq: seq, value: v}), seq)
}

// Dequeue returns the value at the front together with a queue holding the
// remaining values. For an empty queue, ok is false.
func (q Queue[T]) Dequeue() (value T, rest Queue[T], ok bool) {
	f := q.peek()
	if !f.ok {
		return value, q, false
	}
	return f.value, q.with(f.rest, q.seq), true
}

func (q Queue[T]) peek() *front[T] {
	items := q.entries()
	q.front.once.Do(func() {
		var e entry[T]
		e, q.front.rest, q.front.ok = items.RemoveMin()
		q.front.value = e.value
		tracer().Debugf("queue front computed: %v", q.front.ok)
	})
	return q.front
}

// Head returns the value at the front of the queue. Calling Head on an empty
// queue is a programming error and panics with ordered.ErrNoSuchElement.
func (q Queue[T]) Head() T {
	f := q.peek()
	if !f.ok {
		tracer().Errorf("head of empty queue")
		panic(errors.Wrap(ordered.ErrNoSuchElement, "head of empty queue"))
	}
	return f.value
}

// Tail returns the queue without its front value. The tail of an empty queue
// is the empty queue.
func (q Queue[T]) Tail() Queue[T] {
	_, rest, _ := q.Dequeue()
	return rest
}

// Len returns the number of values in the queue.
func (q Queue[T]) Len() int {
	return q.entries().Size()
}

// IsEmpty is true for a queue without values.
func (q Queue[T]) IsEmpty() bool {
	return q.entries().IsEmpty()
}

// All iterates over the values from front to back.
func (q Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range q.entries().All() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// ToList returns the values from front to back.
func (q Queue[T]) ToList() []T {
	list := make([]T, 0, q.Len())
	for v := range q.All() {
		list = append(list, v)
	}
	return list
}

// String renders a queue as "Queue(a, b, c)", front first.
func (q Queue[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Queue(")
	first := true
	for v := range q.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString(")")
	return sb.String()
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ordered.queue: "+msg, msgargs...)
		panic(msg)
	}
}
