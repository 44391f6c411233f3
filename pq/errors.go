package pq

import "errors"

var (
	// ErrQueueEmpty is returned when dequeuing or peeking at a queue which contains no items.
	ErrQueueEmpty = errors.New("queue is empty")

	// ErrKeyNotFound is returned when removing a key which is not currently held by the queue.
	ErrKeyNotFound = errors.New("key not found in queue")

	// ErrDuplicateKey is returned when inserting an item into an indexed queue with a key which is already
	// held by that queue.
	ErrDuplicateKey = errors.New("key already exists in queue")

	// ErrInvalidKey is returned when inserting an item without a key into an indexed queue.
	ErrInvalidKey = errors.New("item key must be non-empty")
)
