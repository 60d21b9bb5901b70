package keyedpq

import (
	"math"

	"github.com/mohae/deepcopy"
	"golang.org/x/exp/constraints"
)

// KeyedPQ is an addressable binary heap whose entries are reachable by a
// caller-supplied key and by Item handles. Every entry tracks its current
// slot in the heap array, so changing the value of an arbitrary entry or
// deleting it costs O(log n) instead of a linear search.
//   - heap: dense array of boxed entries satisfying the heap property
//   - lookup: key index with len(lookup) == len(heap) at all times
//   - changeIndex: monotonic counter breaking priority ties (FIFO among
//     equals)
//   - onMove: callbacks invoked whenever an entry lands in a new slot
//
// A KeyedPQ is not safe for concurrent use; see SyncKeyedPQ.
type KeyedPQ[K comparable, V constraints.Float, D any] struct {
	heap        []*entry[K, V, D]
	lookup      map[K]*entry[K, V, D]
	changeIndex uint64
	maxHeap     bool
	id          string
	idGen       IDGenerator
	onMove      Callbacks
	pool        pool[*entry[K, V, D]]
}

// Deregister removes the callback with the specified ID from the heap's move
// callbacks. Returns an error if no callback exists with the given ID.
func (h *KeyedPQ[K, V, D]) Deregister(id string) error { return h.onMove.deregister(id) }

// Register adds a callback function to be called whenever an entry in the
// heap lands in a new slot. Returns a callback that can be used to deregister
// the function later.
func (h *KeyedPQ[K, V, D]) Register(fn func(from, to int)) Callback { return h.onMove.register(fn) }

// less reports whether a precedes b in the heap order. A max-heap inverts
// only the value comparison; ties on value fall back to changeIndex in
// ascending order, so equal-value entries come out oldest touch first
// regardless of polarity.
func (h *KeyedPQ[K, V, D]) less(a, b *entry[K, V, D]) bool {
	if a.value != b.value {
		if h.maxHeap {
			return a.value > b.value
		}
		return a.value < b.value
	}
	return a.changeIndex < b.changeIndex
}

// sentinel returns the extremal value for the heap's polarity (-Inf for a
// min-heap, +Inf for a max-heap). A live entry may hold the same value; paired
// with changeIndex 0 the sentinel still precedes it.
func (h *KeyedPQ[K, V, D]) sentinel() V {
	if h.maxHeap {
		return V(math.Inf(1))
	}
	return V(math.Inf(-1))
}

// place writes e into slot pos, updates its backpointer, and reports the move
// to registered callbacks. A write into the slot the entry already occupies
// is not reported.
func (h *KeyedPQ[K, V, D]) place(e *entry[K, V, D], from, pos int) {
	h.heap[pos] = e
	e.position = pos
	if from != pos {
		h.onMove.run(from, pos)
	}
}

// siftUp moves the entry at index i toward the root until its parent precedes
// it. Displaced parents are dragged down into the hole one level at a time;
// the moving entry is written once, at its final slot.
func (h *KeyedPQ[K, V, D]) siftUp(i int) {
	moving := h.heap[i]
	start := i
	for i > 0 {
		parentPos := (i - 1) / 2
		parent := h.heap[parentPos]
		if !h.less(moving, parent) {
			break
		}
		h.place(parent, parentPos, i)
		i = parentPos
	}
	h.place(moving, start, i)
}

// siftDown moves the entry at index i toward the leaves: at each level the
// preceding child is promoted into the hole, until the hole reaches a leaf.
// The moving entry is placed there and a final siftUp repairs the case where
// it precedes its new ancestors.
func (h *KeyedPQ[K, V, D]) siftDown(i int) {
	n := len(h.heap)
	moving := h.heap[i]
	start := i
	child := 2*i + 1
	for child < n {
		if right := child + 1; right < n && h.less(h.heap[right], h.heap[child]) {
			child = right
		}
		h.place(h.heap[child], child, i)
		i = child
		child = 2*i + 1
	}
	h.place(moving, start, i)
	h.siftUp(i)
}

// restore repairs the heap property at index i after a value change. It
// decides whether to sift toward the root or toward the leaves based on the
// entry's value relative to its parent.
func (h *KeyedPQ[K, V, D]) restore(i int) {
	if i > 0 && h.less(h.heap[i], h.heap[(i-1)/2]) {
		h.siftUp(i)
	} else {
		h.siftDown(i)
	}
}

// nextChangeIndex returns the current counter value and advances it.
func (h *KeyedPQ[K, V, D]) nextChangeIndex() uint64 {
	next := h.changeIndex
	h.changeIndex++
	return next
}

// getNewEntry creates a new entry with the given key, value, and payload,
// stamped with the next changeIndex and positioned at the end of the heap
// array.
func (h *KeyedPQ[K, V, D]) getNewEntry(key K, value V, payload D) *entry[K, V, D] {
	e := h.pool.Get()
	e.key = key
	e.value = value
	e.payload = payload
	e.changeIndex = h.nextChangeIndex()
	e.position = len(h.heap)
	return e
}

// item wraps a live entry in a handle bound to this heap.
func (h *KeyedPQ[K, V, D]) item(e *entry[K, V, D]) Item[K, V, D] {
	return Item[K, V, D]{entry: e, heapID: h.id, generation: e.generation}
}

// entryFromItem resolves an item to its entry. It fails when the item is the
// zero Item, was created by another heap, or references an entry whose
// generation has moved on because it was removed.
func (h *KeyedPQ[K, V, D]) entryFromItem(item Item[K, V, D]) (*entry[K, V, D], error) {
	if item.entry == nil || item.heapID != h.id || item.generation != item.entry.generation {
		return nil, ErrStaleItem
	}
	return item.entry, nil
}

// release invalidates a removed entry and hands it back to the pool. Bumping
// the generation is what turns outstanding items stale, including across
// pooled slot reuse.
func (h *KeyedPQ[K, V, D]) release(e *entry[K, V, D]) {
	e.generation++
	e.position = -1
	var payload D
	e.payload = payload
	h.pool.Put(e)
}

// Length returns the current number of entries in the heap.
func (h *KeyedPQ[K, V, D]) Length() int { return len(h.heap) }

// IsEmpty returns true if the heap contains no entries.
func (h *KeyedPQ[K, V, D]) IsEmpty() bool { return len(h.heap) == 0 }

// Contains reports whether the key is present in the heap.
func (h *KeyedPQ[K, V, D]) Contains(key K) bool {
	_, exists := h.lookup[key]
	return exists
}

// ContainsItem reports whether the item references a live entry of this heap.
func (h *KeyedPQ[K, V, D]) ContainsItem(item Item[K, V, D]) bool {
	_, err := h.entryFromItem(item)
	return err == nil
}

// Get returns an item referencing the entry with the given key.
// Returns an error if the key is not present.
func (h *KeyedPQ[K, V, D]) Get(key K) (Item[K, V, D], error) {
	e, exists := h.lookup[key]
	if !exists {
		return Item[K, V, D]{}, ErrUnknownKey
	}
	return h.item(e), nil
}

// Add inserts a new entry with the given key, value, and payload. The entry
// is appended at the end of the heap array and sifted toward the root.
// Returns an item referencing the new entry, or an error if the key is
// already present or the value is NaN. Validation happens before any
// mutation.
func (h *KeyedPQ[K, V, D]) Add(key K, value V, payload D) (Item[K, V, D], error) {
	if math.IsNaN(float64(value)) {
		return Item[K, V, D]{}, ErrInvalidValue
	}
	if _, exists := h.lookup[key]; exists {
		return Item[K, V, D]{}, ErrDuplicateKey
	}
	e := h.getNewEntry(key, value, payload)
	h.heap = append(h.heap, e)
	h.lookup[key] = e
	h.siftUp(len(h.heap) - 1)
	return h.item(e), nil
}

// changeValue writes the new value and a fresh changeIndex, then repairs the
// heap from the entry's current slot in whichever direction is needed.
func (h *KeyedPQ[K, V, D]) changeValue(e *entry[K, V, D], value V) {
	e.value = value
	e.changeIndex = h.nextChangeIndex()
	h.restore(e.position)
}

// ChangeValue assigns a new priority value to the entry with the given key.
// The entry receives a fresh changeIndex, so among equal values it is ordered
// after entries touched earlier. Returns an item referencing the entry, or an
// error if the key is not present or the value is NaN.
func (h *KeyedPQ[K, V, D]) ChangeValue(key K, value V) (Item[K, V, D], error) {
	if math.IsNaN(float64(value)) {
		return Item[K, V, D]{}, ErrInvalidValue
	}
	e, exists := h.lookup[key]
	if !exists {
		return Item[K, V, D]{}, ErrUnknownKey
	}
	h.changeValue(e, value)
	return h.item(e), nil
}

// ChangeValueItem assigns a new priority value to the entry referenced by the
// item. Returns an error if the item is stale or the value is NaN.
func (h *KeyedPQ[K, V, D]) ChangeValueItem(item Item[K, V, D], value V) (Item[K, V, D], error) {
	if math.IsNaN(float64(value)) {
		return Item[K, V, D]{}, ErrInvalidValue
	}
	e, err := h.entryFromItem(item)
	if err != nil {
		return Item[K, V, D]{}, err
	}
	h.changeValue(e, value)
	return h.item(e), nil
}

// AddOrChangeValue changes the value of the entry with the given key if the
// key is present, ignoring the payload argument; otherwise it behaves as Add.
func (h *KeyedPQ[K, V, D]) AddOrChangeValue(key K, value V, payload D) (Item[K, V, D], error) {
	if math.IsNaN(float64(value)) {
		return Item[K, V, D]{}, ErrInvalidValue
	}
	if e, exists := h.lookup[key]; exists {
		h.changeValue(e, value)
		return h.item(e), nil
	}
	return h.Add(key, value, payload)
}

// deleteEntry drags the entry to the root by overwriting its value with the
// extremal sentinel and its changeIndex with 0, then discards the root. The
// sentinel precedes every live entry, so the drag reaches the root even when
// the deleted entry is the last element of the array.
func (h *KeyedPQ[K, V, D]) deleteEntry(e *entry[K, V, D]) {
	e.value = h.sentinel()
	e.changeIndex = 0
	h.siftUp(e.position)
	h.pop()
}

// Delete removes the entry with the given key, dropping its payload.
// Returns an error if the key is not present.
func (h *KeyedPQ[K, V, D]) Delete(key K) error {
	e, exists := h.lookup[key]
	if !exists {
		return ErrUnknownKey
	}
	h.deleteEntry(e)
	return nil
}

// DeleteItem removes the entry referenced by the item, dropping its payload.
// Returns an error if the item is stale.
func (h *KeyedPQ[K, V, D]) DeleteItem(item Item[K, V, D]) error {
	e, err := h.entryFromItem(item)
	if err != nil {
		return err
	}
	h.deleteEntry(e)
	return nil
}

// peek returns the root entry without removing it.
// Returns an error if the heap is empty.
func (h *KeyedPQ[K, V, D]) peek() (*entry[K, V, D], error) {
	if len(h.heap) == 0 {
		return nil, ErrHeapEmpty
	}
	return h.heap[0], nil
}

// Peek returns an item referencing the root entry without removing it.
// Returns an error if the heap is empty.
func (h *KeyedPQ[K, V, D]) Peek() (Item[K, V, D], error) {
	e, err := h.peek()
	if err != nil {
		return Item[K, V, D]{}, err
	}
	return h.item(e), nil
}

// PeekKey returns just the key of the root entry without removing it.
// Returns an error if the heap is empty.
func (h *KeyedPQ[K, V, D]) PeekKey() (K, error) { return keyFromEntry(h.peek()) }

// PeekValue returns just the priority value of the root entry without
// removing it. Returns an error if the heap is empty.
func (h *KeyedPQ[K, V, D]) PeekValue() (V, error) { return valueFromEntry(h.peek()) }

// pop removes and returns the root entry's key, value, and payload. The last
// entry of the array replaces the root and is sifted toward the leaves; when
// only one entry remains, it is simply dropped.
func (h *KeyedPQ[K, V, D]) pop() (K, V, D, error) {
	if len(h.heap) == 0 {
		k, v, d := zeroTriple[K, V, D]()
		return k, v, d, ErrHeapEmpty
	}
	n := len(h.heap)
	last := h.heap[n-1]
	h.heap[n-1] = nil
	h.heap = h.heap[:n-1]
	removed := last
	if n > 1 {
		removed = h.heap[0]
		h.place(last, n-1, 0)
		h.siftDown(0)
	}
	delete(h.lookup, removed.key)
	k, v, d := removed.key, removed.value, removed.payload
	h.release(removed)
	return k, v, d, nil
}

// Pop removes the root entry and returns its key, value, and payload,
// transferring payload ownership to the caller. Returns an error if the heap
// is empty.
func (h *KeyedPQ[K, V, D]) Pop() (K, V, D, error) { return h.pop() }

// PopKey removes the root entry and returns just its key.
// Returns an error if the heap is empty.
func (h *KeyedPQ[K, V, D]) PopKey() (K, error) { return keyFromPop(h.pop()) }

// PopValue removes the root entry and returns just its priority value.
// Returns an error if the heap is empty.
func (h *KeyedPQ[K, V, D]) PopValue() (V, error) { return valueFromPop(h.pop()) }

// Clear removes all entries from the heap, invalidating every outstanding
// item.
func (h *KeyedPQ[K, V, D]) Clear() {
	for i, e := range h.heap {
		h.heap[i] = nil
		h.release(e)
	}
	h.heap = h.heap[:0]
	h.lookup = make(map[K]*entry[K, V, D])
}

// Keys returns the keys of all entries in heap-array order.
func (h *KeyedPQ[K, V, D]) Keys() []K {
	keys := make([]K, len(h.heap))
	for i, e := range h.heap {
		keys[i] = e.key
	}
	return keys
}

// Values returns the priority values of all entries in heap-array order.
func (h *KeyedPQ[K, V, D]) Values() []V { return h.exportValues() }

// Each calls fn for every entry in heap-array order. The traversal is O(n)
// but the order is not the priority order.
func (h *KeyedPQ[K, V, D]) Each(fn func(key K, value V, payload D)) {
	for _, e := range h.heap {
		fn(e.key, e.value, e.payload)
	}
}

// EachOrdered calls fn for every entry in priority order without mutating the
// heap. The traversal pops from a private clone; payloads are shared with the
// original.
func (h *KeyedPQ[K, V, D]) EachOrdered(fn func(key K, value V, payload D)) {
	h.Clone().Drain(fn)
}

// Drain repeatedly pops the root and calls fn until the heap is empty.
func (h *KeyedPQ[K, V, D]) Drain(fn func(key K, value V, payload D)) {
	for len(h.heap) > 0 {
		key, value, payload, _ := h.pop()
		fn(key, value, payload)
	}
}

// clone copies the heap structure into a new heap with its own entries and
// identity. copyPayload maps each payload into the clone.
func (h *KeyedPQ[K, V, D]) clone(copyPayload func(D) D) *KeyedPQ[K, V, D] {
	newHeap := make([]*entry[K, V, D], len(h.heap))
	newLookup := make(map[K]*entry[K, V, D], len(h.lookup))
	for i, e := range h.heap {
		cloned := h.pool.Get()
		cloned.key = e.key
		cloned.value = e.value
		cloned.changeIndex = e.changeIndex
		cloned.position = i
		cloned.payload = copyPayload(e.payload)
		newHeap[i] = cloned
		newLookup[cloned.key] = cloned
	}
	return &KeyedPQ[K, V, D]{
		heap:        newHeap,
		lookup:      newLookup,
		changeIndex: h.changeIndex,
		maxHeap:     h.maxHeap,
		id:          h.idGen.Next(),
		idGen:       h.idGen,
		pool:        h.pool,
	}
}

// Clone creates a copy of the heap with the same entry order, polarity, and
// counters. Payloads are shared between the original and the clone. The
// clone has a fresh identity, so items from the original are stale on the
// clone; move callbacks are not carried over.
func (h *KeyedPQ[K, V, D]) Clone() *KeyedPQ[K, V, D] {
	return h.clone(func(payload D) D { return payload })
}

// DeepClone returns a copy of the heap where each payload is deep-copied via
// deepcopy.Copy.
func (h *KeyedPQ[K, V, D]) DeepClone() *KeyedPQ[K, V, D] {
	return h.clone(func(payload D) D {
		payloadCopy := deepcopy.Copy(payload)
		return payloadCopy.(D)
	})
}

// verifyInvariants checks the heap property at every node, the position
// backpointers, and agreement between the heap array and the key index. Test
// hook, not part of the public surface.
func (h *KeyedPQ[K, V, D]) verifyInvariants() bool {
	if len(h.heap) != len(h.lookup) {
		return false
	}
	for i, e := range h.heap {
		if e.position != i {
			return false
		}
		if i > 0 && h.less(e, h.heap[(i-1)/2]) {
			return false
		}
		if indexed, exists := h.lookup[e.key]; !exists || indexed != e {
			return false
		}
	}
	return true
}

// exportValues returns the priority values in heap-array order. Test hook for
// cross-checking against a reference heap.
func (h *KeyedPQ[K, V, D]) exportValues() []V {
	values := make([]V, len(h.heap))
	for i, e := range h.heap {
		values[i] = e.value
	}
	return values
}
