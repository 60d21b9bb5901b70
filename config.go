package keyedpq

// HeapConfig is a struct that contains the configuration for a keyed heap.
type HeapConfig struct {
	// MaxHeap selects max-heap polarity; the default false builds a min-heap.
	// Polarity is fixed for the life of the heap.
	MaxHeap bool
	// UsePool is a boolean that indicates whether to use a pool for entry
	// allocation.
	UsePool bool
	// IDGenerator is used to generate the heap identity that binds items to
	// their owning heap. If nil, the default IDGenerator is used.
	IDGenerator IDGenerator
}

// GetGenerator returns the IDGenerator from the HeapConfig.
// If the IDGenerator is nil, the default IDGenerator is returned.
func (h *HeapConfig) GetGenerator() IDGenerator {
	if h.IDGenerator == nil {
		return &UUIDGenerator{}
	}
	return h.IDGenerator
}
