// SPDX-License-Identifier: MIT

// Package queue provides a small slice-backed FIFO used to hand scheduled
// cycle lengths from the scheduler to the decomposer.
//
// The zero value is an empty, ready-to-use queue. Queue is not safe for
// concurrent use.
package queue

import "fmt"

// Queue is a first-in, first-out sequence of T.
type Queue[T any] struct {
	items []T
}

// New returns a queue pre-filled with items, front first.
func New[T any](items ...T) *Queue[T] {
	return &Queue[T]{items: append([]T(nil), items...)}
}

// Enqueue appends item at the back.
func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the front item. ok is false on an empty queue.
func (q *Queue[T]) Dequeue() (item T, ok bool) {
	if len(q.items) == 0 {
		return item, false
	}
	item = q.items[0]
	var zero T
	q.items[0] = zero // release reference held by the backing array
	q.items = q.items[1:]

	return item, true
}

// Peek returns the front item without removing it.
func (q *Queue[T]) Peek() (item T, ok bool) {
	if len(q.items) == 0 {
		return item, false
	}

	return q.items[0], true
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return len(q.items) == 0 }

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) }

// Items returns a copy of the queued items, front first.
func (q *Queue[T]) Items() []T {
	return append([]T(nil), q.items...)
}

// String renders the queue as "queue: [a b c]".
func (q *Queue[T]) String() string {
	return fmt.Sprintf("queue: %v", q.items)
}
