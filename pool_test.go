package keyedpq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNode is a simple struct for testing the pool functionality
type TestNode struct{ Value int }

// TestDefaultPool tests the default pool functionality
func TestDefaultPool(t *testing.T) {
	constructor := func() TestNode {
		return TestNode{Value: 42}
	}

	pool := newDefaultPool(constructor)

	node1 := pool.Get()
	assert.Equal(t, 42, node1.Value)

	pool.Put(node1)
	node2 := pool.Get()
	assert.Equal(t, 42, node2.Value)

	assert.NotSame(t, &node1, &node2)
}

// TestSyncPool tests the sync pool functionality
func TestSyncPool(t *testing.T) {
	constructor := func() TestNode {
		return TestNode{Value: 100}
	}

	pool := newSyncPool(constructor)
	node1 := pool.Get()
	assert.Equal(t, 100, node1.Value)
	pool.Put(node1)
	node2 := pool.Get()
	assert.Equal(t, 100, node2.Value)
}

// TestNewPool tests the newPool function with both flags
func TestNewPool(t *testing.T) {
	constructor := func() TestNode {
		return TestNode{Value: 200}
	}

	pool1 := newPool(true, constructor)
	node := pool1.Get()
	assert.Equal(t, 200, node.Value)
	pool1.Put(node)

	pool2 := newPool(false, constructor)
	node1 := pool2.Get()
	assert.Equal(t, 200, node1.Value)
	pool2.Put(node1)
	node2 := pool2.Get()
	assert.Equal(t, 200, node2.Value)
	assert.NotSame(t, &node1, &node2)
}

// TestPooledHeapRecyclesEntries tests that a pooled heap keeps working as
// entries cycle through the pool.
func TestPooledHeapRecyclesEntries(t *testing.T) {
	h := NewKeyedPQ[string, float64, int](HeapConfig{UsePool: true})

	for round := 0; round < 5; round++ {
		h.Add("a", 3.0, round)
		h.Add("b", 1.0, round)
		h.Add("c", 2.0, round)
		assert.True(t, h.verifyInvariants())

		assert.Equal(t, []string{"b", "c", "a"}, drainKeys(h))
		assert.True(t, h.IsEmpty())
	}
}
