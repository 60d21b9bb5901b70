package keyedpq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapConfigDefaultGenerator(t *testing.T) {
	config := &HeapConfig{
		UsePool:     false,
		IDGenerator: nil,
	}

	generator := config.GetGenerator()
	assert.IsType(t, &UUIDGenerator{}, generator)
}

func TestHeapConfigCustomGenerator(t *testing.T) {
	customGenerator := &IntegerIDGenerator{NextID: 0}
	config := &HeapConfig{
		UsePool:     true,
		IDGenerator: customGenerator,
	}

	generator := config.GetGenerator()
	assert.Equal(t, customGenerator, generator)
	assert.IsType(t, &IntegerIDGenerator{}, generator)
}

func TestHeapConfigPolarity(t *testing.T) {
	minHeap := NewKeyedPQ[string, float64, int](HeapConfig{})
	maxHeap := NewKeyedPQ[string, float64, int](HeapConfig{MaxHeap: true})

	for _, h := range []*KeyedPQ[string, float64, int]{minHeap, maxHeap} {
		h.Add("low", 1.0, 0)
		h.Add("high", 9.0, 0)
	}

	key, err := minHeap.PeekKey()
	assert.NoError(t, err)
	assert.Equal(t, "low", key)

	key, err = maxHeap.PeekKey()
	assert.NoError(t, err)
	assert.Equal(t, "high", key)
}
