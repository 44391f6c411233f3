package pq

import "golang.org/x/exp/constraints"

// IndexedQueue is a priority queue which additionally tracks the slot each item occupies by key, allowing
// items anywhere in the queue to be fetched in constant time and removed in logarithmic time.
//
// Keys must be unique amongst the items held by the queue at any one time; insertions which would break that
// are rejected before any mutation takes place.
type IndexedQueue[T any, P constraints.Ordered] struct {
	queue    *Queue[T, P]
	position map[string]int
}

// NewIndexedQueue creates an indexed priority queue holding the given items, built incrementally or with a
// single linear-time pass as for NewQueue.
func NewIndexedQueue[T any, P constraints.Ordered](items []Item[T, P], fast bool) (*IndexedQueue[T, P], error) {
	indexed := &IndexedQueue[T, P]{
		queue:    &Queue[T, P]{items: make([]Item[T, P], 0, len(items))},
		position: make(map[string]int, len(items)),
	}

	indexed.queue.onSwap = indexed.swapped

	// Positions are seeded against the raw input order, heapification then reshuffles them via the swap
	// hook.
	for index, item := range items {
		if err := indexed.validate(item); err != nil {
			return nil, err
		}

		indexed.position[item.Key] = index
	}

	indexed.queue.heapify(items, fast)

	return indexed, nil
}

// swapped records the new slots of the items at i and j; the underlying heap runs it after every structural
// exchange.
func (x *IndexedQueue[T, P]) swapped(i, j int) {
	x.position[x.queue.items[i].Key] = i
	x.position[x.queue.items[j].Key] = j
}

// validate returns an error if inserting the given item would leave the position index inconsistent.
func (x *IndexedQueue[T, P]) validate(item Item[T, P]) error {
	if item.Key == "" {
		return ErrInvalidKey
	}

	if _, ok := x.position[item.Key]; ok {
		return ErrDuplicateKey
	}

	return nil
}

// Enqueue adds the given item to the priority queue, rejecting empty or duplicate keys before any mutation.
func (x *IndexedQueue[T, P]) Enqueue(item Item[T, P]) error {
	if err := x.validate(item); err != nil {
		return err
	}

	x.position[item.Key] = x.queue.Len()
	x.queue.Enqueue(item)

	return nil
}

// Dequeue removes and returns the item from the queue with the highest priority.
func (x *IndexedQueue[T, P]) Dequeue() (Item[T, P], error) {
	item, err := x.queue.Dequeue()
	if err != nil {
		return Item[T, P]{}, err
	}

	// The heap moved the departing root out through the swap hook, leaving a stale entry behind.
	delete(x.position, item.Key)

	return item, nil
}

// Peek returns the item with the highest priority without removing it from the queue.
func (x *IndexedQueue[T, P]) Peek() (Item[T, P], error) {
	return x.queue.Peek()
}

// Get returns the item with the given key, wherever it sits in the queue.
func (x *IndexedQueue[T, P]) Get(key string) (Item[T, P], bool) {
	index, ok := x.position[key]
	if !ok {
		return Item[T, P]{}, false
	}

	return x.queue.items[index], true
}

// Position returns the slot currently occupied by the item with the given key.
func (x *IndexedQueue[T, P]) Position(key string) (int, bool) {
	index, ok := x.position[key]
	return index, ok
}

// Remove removes the item with the given key from the queue, wherever it sits, in logarithmic time. Returns
// ErrKeyNotFound leaving the queue unchanged if no item holds the key.
func (x *IndexedQueue[T, P]) Remove(key string) error {
	index, ok := x.position[key]
	if !ok {
		return ErrKeyNotFound
	}

	last := x.queue.Len() - 1

	if index != last {
		x.queue.exchange(index, last)
	}

	x.queue.items = x.queue.items[:last]
	delete(x.position, key)

	// The replacement item came from a leaf so its priority is unconstrained relative to its new
	// neighbors; exactly one of the two sifts will be a no-op.
	if index != last {
		x.queue.siftUp(index)
		x.queue.siftDown(index)
	}

	return nil
}

// Len returns the number of items in the priority queue.
func (x *IndexedQueue[T, P]) Len() int {
	return x.queue.Len()
}

// Comparisons returns the number of priority comparisons performed so far; the counter only ever grows.
func (x *IndexedQueue[T, P]) Comparisons() int {
	return x.queue.Comparisons()
}

// Drain removes all items from the queue running the given function on each item in descending priority
// order. In the event of an error, dequeuing stops early, and returns the error.
func (x *IndexedQueue[T, P]) Drain(fn func(item Item[T, P]) error) error {
	for x.Len() > 0 {
		item, _ := x.Dequeue()

		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}
