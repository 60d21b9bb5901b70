package keyedpq

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// SyncKeyedPQ represents a thread-safe wrapper around KeyedPQ.
// It provides the same interface as KeyedPQ but with mutex-protected
// operations.
type SyncKeyedPQ[K comparable, V constraints.Float, D any] struct {
	heap *KeyedPQ[K, V, D]
	lock sync.RWMutex
}

// Deregister removes the callback with the specified ID from the heap's move
// callbacks. Returns an error if no callback exists with the given ID.
func (h *SyncKeyedPQ[K, V, D]) Deregister(id string) error {
	return h.heap.Deregister(id)
}

// Register adds a callback function to be called whenever an entry in the
// heap lands in a new slot. Returns a callback that can be used to deregister
// the function later.
func (h *SyncKeyedPQ[K, V, D]) Register(fn func(from, to int)) Callback {
	return h.heap.Register(fn)
}

// Length returns the current number of entries in the heap.
func (h *SyncKeyedPQ[K, V, D]) Length() int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.heap.Length()
}

// IsEmpty returns true if the heap contains no entries.
func (h *SyncKeyedPQ[K, V, D]) IsEmpty() bool {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.heap.IsEmpty()
}

// Contains reports whether the key is present in the heap.
func (h *SyncKeyedPQ[K, V, D]) Contains(key K) bool {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.heap.Contains(key)
}

// ContainsItem reports whether the item references a live entry of this heap.
func (h *SyncKeyedPQ[K, V, D]) ContainsItem(item Item[K, V, D]) bool {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.heap.ContainsItem(item)
}

// Get returns an item referencing the entry with the given key.
// Returns an error if the key is not present.
func (h *SyncKeyedPQ[K, V, D]) Get(key K) (Item[K, V, D], error) {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.heap.Get(key)
}

// Add inserts a new entry with the given key, value, and payload.
// Returns an item referencing the new entry, or an error if the key is
// already present or the value is NaN.
func (h *SyncKeyedPQ[K, V, D]) Add(key K, value V, payload D) (Item[K, V, D], error) {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.heap.Add(key, value, payload)
}

// ChangeValue assigns a new priority value to the entry with the given key.
// Returns an item referencing the entry, or an error if the key is not
// present or the value is NaN.
func (h *SyncKeyedPQ[K, V, D]) ChangeValue(key K, value V) (Item[K, V, D], error) {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.heap.ChangeValue(key, value)
}

// ChangeValueItem assigns a new priority value to the entry referenced by the
// item. Returns an error if the item is stale or the value is NaN.
func (h *SyncKeyedPQ[K, V, D]) ChangeValueItem(item Item[K, V, D], value V) (Item[K, V, D], error) {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.heap.ChangeValueItem(item, value)
}

// AddOrChangeValue changes the value of the entry with the given key if the
// key is present, ignoring the payload argument; otherwise it behaves as Add.
func (h *SyncKeyedPQ[K, V, D]) AddOrChangeValue(key K, value V, payload D) (Item[K, V, D], error) {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.heap.AddOrChangeValue(key, value, payload)
}

// Delete removes the entry with the given key, dropping its payload.
// Returns an error if the key is not present.
func (h *SyncKeyedPQ[K, V, D]) Delete(key K) error {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.heap.Delete(key)
}

// DeleteItem removes the entry referenced by the item, dropping its payload.
// Returns an error if the item is stale.
func (h *SyncKeyedPQ[K, V, D]) DeleteItem(item Item[K, V, D]) error {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.heap.DeleteItem(item)
}

// Peek returns an item referencing the root entry without removing it.
// Returns an error if the heap is empty.
func (h *SyncKeyedPQ[K, V, D]) Peek() (Item[K, V, D], error) {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.heap.Peek()
}

// PeekKey returns just the key of the root entry without removing it.
// Returns an error if the heap is empty.
func (h *SyncKeyedPQ[K, V, D]) PeekKey() (K, error) {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.heap.PeekKey()
}

// PeekValue returns just the priority value of the root entry without
// removing it. Returns an error if the heap is empty.
func (h *SyncKeyedPQ[K, V, D]) PeekValue() (V, error) {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.heap.PeekValue()
}

// Pop removes the root entry and returns its key, value, and payload.
// Returns an error if the heap is empty.
func (h *SyncKeyedPQ[K, V, D]) Pop() (K, V, D, error) {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.heap.Pop()
}

// PopKey removes the root entry and returns just its key.
// Returns an error if the heap is empty.
func (h *SyncKeyedPQ[K, V, D]) PopKey() (K, error) {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.heap.PopKey()
}

// PopValue removes the root entry and returns just its priority value.
// Returns an error if the heap is empty.
func (h *SyncKeyedPQ[K, V, D]) PopValue() (V, error) {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.heap.PopValue()
}

// Clear removes all entries from the heap, invalidating every outstanding
// item.
func (h *SyncKeyedPQ[K, V, D]) Clear() {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.heap.Clear()
}

// Keys returns the keys of all entries in heap-array order.
func (h *SyncKeyedPQ[K, V, D]) Keys() []K {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.heap.Keys()
}

// Values returns the priority values of all entries in heap-array order.
func (h *SyncKeyedPQ[K, V, D]) Values() []V {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.heap.Values()
}

// Each calls fn for every entry in heap-array order. The lock is held for the
// duration of the traversal.
func (h *SyncKeyedPQ[K, V, D]) Each(fn func(key K, value V, payload D)) {
	h.lock.RLock()
	defer h.lock.RUnlock()
	h.heap.Each(fn)
}

// EachOrdered calls fn for every entry in priority order without mutating the
// heap. The traversal pops from a private clone taken under the lock.
func (h *SyncKeyedPQ[K, V, D]) EachOrdered(fn func(key K, value V, payload D)) {
	h.lock.RLock()
	clone := h.heap.Clone()
	h.lock.RUnlock()
	clone.Drain(fn)
}

// Drain repeatedly pops the root and calls fn until the heap is empty. The
// lock is held for the duration of the drain.
func (h *SyncKeyedPQ[K, V, D]) Drain(fn func(key K, value V, payload D)) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.heap.Drain(fn)
}

// Clone creates a copy of the heap with the same entry order, polarity, and
// counters. Payloads are shared between the original and the clone.
func (h *SyncKeyedPQ[K, V, D]) Clone() *SyncKeyedPQ[K, V, D] {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return &SyncKeyedPQ[K, V, D]{heap: h.heap.Clone()}
}

// DeepClone returns a copy of the heap where each payload is deep-copied via
// deepcopy.Copy.
func (h *SyncKeyedPQ[K, V, D]) DeepClone() *SyncKeyedPQ[K, V, D] {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return &SyncKeyedPQ[K, V, D]{heap: h.heap.DeepClone()}
}
