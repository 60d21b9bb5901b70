package keyedpq

import (
	"math"

	"golang.org/x/exp/constraints"
)

// NewKeyedPQ creates an empty keyed heap with the polarity, pooling, and
// identity settings from the config.
func NewKeyedPQ[K comparable, V constraints.Float, D any](config HeapConfig) *KeyedPQ[K, V, D] {
	entryPool := newPool(config.UsePool, func() *entry[K, V, D] {
		return &entry[K, V, D]{}
	})

	generator := config.GetGenerator()
	return &KeyedPQ[K, V, D]{
		heap:        make([]*entry[K, V, D], 0),
		lookup:      make(map[K]*entry[K, V, D]),
		changeIndex: 1,
		maxHeap:     config.MaxHeap,
		id:          generator.Next(),
		idGen:       generator,
		pool:        entryPool,
	}
}

// HeapifyKeyedPQ creates a keyed heap from the given entries using a
// bottom-up build: every entry is appended and indexed first, then sifted
// toward the leaves from the last parent to the root. Entries receive
// changeIndex values in slice order, so the final contents match adding each
// entry in order. Returns an error if a key occurs twice or a value is NaN; a
// failed build produces no heap.
func HeapifyKeyedPQ[K comparable, V constraints.Float, D any](entries []HeapEntry[K, V, D], config HeapConfig) (*KeyedPQ[K, V, D], error) {
	h := NewKeyedPQ[K, V, D](config)
	for _, he := range entries {
		if math.IsNaN(float64(he.value)) {
			return nil, ErrInvalidValue
		}
		if _, exists := h.lookup[he.key]; exists {
			return nil, ErrDuplicateKey
		}
		e := h.getNewEntry(he.key, he.value, he.payload)
		h.heap = append(h.heap, e)
		h.lookup[he.key] = e
	}

	// Start sifting down from the last parent node toward the root.
	for i := (len(h.heap) - 2) / 2; i >= 0; i-- {
		h.siftDown(i)
	}
	return h, nil
}

// NewSyncKeyedPQ creates an empty thread-safe keyed heap with the polarity,
// pooling, and identity settings from the config.
func NewSyncKeyedPQ[K comparable, V constraints.Float, D any](config HeapConfig) *SyncKeyedPQ[K, V, D] {
	return &SyncKeyedPQ[K, V, D]{heap: NewKeyedPQ[K, V, D](config)}
}

// HeapifySyncKeyedPQ creates a thread-safe keyed heap from the given entries.
// Returns an error if a key occurs twice or a value is NaN.
func HeapifySyncKeyedPQ[K comparable, V constraints.Float, D any](entries []HeapEntry[K, V, D], config HeapConfig) (*SyncKeyedPQ[K, V, D], error) {
	h, err := HeapifyKeyedPQ(entries, config)
	if err != nil {
		return nil, err
	}
	return &SyncKeyedPQ[K, V, D]{heap: h}, nil
}
