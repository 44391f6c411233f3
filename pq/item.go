package pq

import "golang.org/x/exp/constraints"

// Item encapsulates a payload, its queue-wide identity and its priority.
type Item[T any, P constraints.Ordered] struct {
	// Key uniquely identifies the item within a queue; the indexed variant uses it to locate items for
	// removal. The basic queue carries it but doesn't read it.
	Key string

	// Payload is the value carried by the item; the queue never reads or mutates it.
	Payload T

	// Priority orders the queue, higher values dequeue first.
	Priority P
}
