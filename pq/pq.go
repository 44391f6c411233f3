// Package pq exposes generic max-heap priority queues; a basic array-backed heap, and an indexed variant
// which supports removing arbitrary items in logarithmic time.
package pq

import "golang.org/x/exp/constraints"

// Queue implements a zero-indexed, slice-backed max-heap priority queue which accepts a generic payload with
// an ordered priority.
type Queue[T any, P constraints.Ordered] struct {
	items       []Item[T, P]
	comparisons int

	// onSwap, when non-nil, runs after every exchange of two slots. It is the single choke-point through
	// which auxiliary bookkeeping observes structural changes to the heap.
	onSwap func(i, j int)
}

// NewQueue creates a priority queue holding the given items. With 'fast' set, the heap is built with a single
// linear-time pass rather than by repeated insertion; the resulting dequeue order is the same.
func NewQueue[T any, P constraints.Ordered](items []Item[T, P], fast bool) *Queue[T, P] {
	queue := &Queue[T, P]{items: make([]Item[T, P], 0, len(items))}
	queue.heapify(items, fast)

	return queue
}

// heapify populates an empty queue with the given items, incrementally or in one linear pass.
func (q *Queue[T, P]) heapify(items []Item[T, P], fast bool) {
	if !fast {
		for _, item := range items {
			q.Enqueue(item)
		}

		return
	}

	q.items = append(q.items, items...)

	// Sifting down in reverse index order means both subtrees below the current index already satisfy the
	// heap property when it's processed.
	for index := len(q.items) - 1; index >= 0; index-- {
		q.siftDown(index)
	}
}

// Enqueue adds the given item to the priority queue.
func (q *Queue[T, P]) Enqueue(item Item[T, P]) {
	q.items = append(q.items, item)
	q.siftUp(len(q.items) - 1)
}

// Dequeue removes and returns the item from the queue with the highest priority, where multiple items have
// the same priority, they're returned in an arbitrary order. Returns ErrQueueEmpty if the queue holds no
// items.
func (q *Queue[T, P]) Dequeue() (Item[T, P], error) {
	if len(q.items) == 0 {
		return Item[T, P]{}, ErrQueueEmpty
	}

	// Route the final slot into the root through the exchange choke-point so any hook sees the move.
	q.exchange(0, len(q.items)-1)

	item := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]

	q.siftDown(0)

	return item, nil
}

// Peek returns the item with the highest priority without removing it from the queue.
func (q *Queue[T, P]) Peek() (Item[T, P], error) {
	if len(q.items) == 0 {
		return Item[T, P]{}, ErrQueueEmpty
	}

	return q.items[0], nil
}

// Len returns the number of items in the priority queue.
func (q *Queue[T, P]) Len() int {
	return len(q.items)
}

// Comparisons returns the number of priority comparisons performed so far; the counter only ever grows.
func (q *Queue[T, P]) Comparisons() int {
	return q.comparisons
}

// Drain removes all items from the queue running the given function on each item in descending priority
// order. In the event of an error, dequeuing stops early, and returns the error.
func (q *Queue[T, P]) Drain(fn func(item Item[T, P]) error) error {
	for q.Len() > 0 {
		item, _ := q.Dequeue()

		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}

// exchange swaps the items at i and j then notifies the hook; every structural move of an item between slots
// happens here.
func (q *Queue[T, P]) exchange(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]

	if q.onSwap != nil {
		q.onSwap(i, j)
	}
}

// siftUp moves the item at the given index toward the root, swapping while its parent has a strictly smaller
// priority.
func (q *Queue[T, P]) siftUp(index int) {
	for index != 0 {
		parent := (index - 1) / 2

		q.comparisons++

		if q.items[parent].Priority >= q.items[index].Priority {
			return
		}

		q.exchange(index, parent)

		index = parent
	}
}

// siftDown moves the item at the given index toward the leaves, swapping with its highest priority child
// while that child strictly outranks it. Ties between children resolve to the lower index.
func (q *Queue[T, P]) siftDown(index int) {
	for {
		child := q.maxChildIndex(index)
		if child == -1 {
			return
		}

		q.comparisons++

		if q.items[child].Priority <= q.items[index].Priority {
			return
		}

		q.exchange(index, child)

		index = child
	}
}

// maxChildIndex returns the index of the highest priority child of the given index, or -1 if it has no
// children. The comparison is only counted when there are two children to compare.
func (q *Queue[T, P]) maxChildIndex(index int) int {
	first, second := 2*index+1, 2*index+2

	if first >= len(q.items) {
		return -1
	}

	if second >= len(q.items) {
		return first
	}

	q.comparisons++

	if q.items[second].Priority > q.items[first].Priority {
		return second
	}

	return first
}
