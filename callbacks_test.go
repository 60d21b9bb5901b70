package keyedpq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallbacksRegisterAndRun(t *testing.T) {
	c := Callbacks{}

	events := [][2]int{}
	cb := c.register(func(from, to int) {
		events = append(events, [2]int{from, to})
	})
	assert.NotEmpty(t, cb.ID)

	c.run(3, 1)
	c.run(1, 0)
	assert.Equal(t, [][2]int{{3, 1}, {1, 0}}, events)
}

func TestCallbacksMultipleRegistered(t *testing.T) {
	c := Callbacks{}

	first := 0
	second := 0
	cb1 := c.register(func(from, to int) { first++ })
	cb2 := c.register(func(from, to int) { second++ })
	assert.NotEqual(t, cb1.ID, cb2.ID)

	c.run(1, 0)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	assert.NoError(t, c.deregister(cb1.ID))
	c.run(2, 0)
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestCallbacksDeregisterMissing(t *testing.T) {
	c := Callbacks{}
	assert.ErrorIs(t, c.deregister("not-registered"), ErrCallbackNotFound)

	cb := c.register(func(from, to int) {})
	assert.NoError(t, c.deregister(cb.ID))
	assert.ErrorIs(t, c.deregister(cb.ID), ErrCallbackNotFound)
}

func TestCallbacksRunEmptyRegistry(t *testing.T) {
	c := Callbacks{}
	// No callbacks registered; run must be a no-op.
	c.run(0, 1)
}

func TestCallbacksFireOnHeapMoves(t *testing.T) {
	h := newTestPQ()

	moves := [][2]int{}
	h.Register(func(from, to int) {
		moves = append(moves, [2]int{from, to})
	})

	h.Add("a", 3.0, 0)
	assert.Empty(t, moves)

	// "b" displaces "a" from the root: one move for the displaced parent,
	// one for the new entry landing at the root.
	h.Add("b", 1.0, 0)
	assert.Equal(t, [][2]int{{0, 1}, {1, 0}}, moves)
}
