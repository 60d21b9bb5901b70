package keyedpq

import "golang.org/x/exp/constraints"

// entry is the record stored in the heap array and the key index. Both views
// share the same boxed entry, so a value or position written through one is
// observed by the other. Invariant: heap[entry.position] == entry while the
// entry is live; position is -1 once removed.
//
// changeIndex breaks priority ties: it is stamped on insertion and restamped
// on every value change, so equal-value entries pop oldest touch first. The
// generation counter increments when the entry leaves the heap, turning any
// outstanding items stale even if the entry is later recycled by the pool.
type entry[K comparable, V constraints.Float, D any] struct {
	key         K
	value       V
	changeIndex uint64
	position    int
	payload     D
	generation  uint64
}

// HeapEntry binds a key, a priority value, and a payload for bulk
// construction of a keyed heap.
type HeapEntry[K comparable, V constraints.Float, D any] struct {
	key     K
	value   V
	payload D
}

// CreateHeapEntry constructs a new HeapEntry from the given key, value, and
// payload.
func CreateHeapEntry[K comparable, V constraints.Float, D any](key K, value V, payload D) HeapEntry[K, V, D] {
	return HeapEntry[K, V, D]{key: key, value: value, payload: payload}
}

// Key returns the key stored in the entry.
func (e HeapEntry[K, V, D]) Key() K { return e.key }

// Value returns the priority value stored in the entry.
func (e HeapEntry[K, V, D]) Value() V { return e.value }

// Payload returns the payload stored in the entry.
func (e HeapEntry[K, V, D]) Payload() D { return e.payload }
