package keyedpq

import "golang.org/x/exp/constraints"

// Item is a caller-held handle to a heap entry. It stays valid across any
// reorganisation of the heap array and becomes stale once its entry is popped
// or deleted. The zero Item belongs to no heap and fails every handle
// operation with ErrStaleItem.
//
// Items are comparable with ==: two items are equal iff they reference the
// same entry in the same heap.
type Item[K comparable, V constraints.Float, D any] struct {
	entry      *entry[K, V, D]
	heapID     string
	generation uint64
}

// Key returns the key of the referenced entry, or the zero key for the zero
// Item.
func (i Item[K, V, D]) Key() K {
	if i.entry == nil {
		var zero K
		return zero
	}
	return i.entry.key
}

// Value returns the current priority value of the referenced entry, or the
// zero value for the zero Item. The view is live: a value change through the
// heap is visible through the item.
func (i Item[K, V, D]) Value() V {
	if i.entry == nil {
		var zero V
		return zero
	}
	return i.entry.value
}

// Payload returns the payload of the referenced entry, or the zero payload
// for the zero Item.
func (i Item[K, V, D]) Payload() D {
	if i.entry == nil {
		var zero D
		return zero
	}
	return i.entry.payload
}
