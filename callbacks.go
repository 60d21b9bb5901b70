package keyedpq

import (
	"sync"

	"github.com/google/uuid"
)

// Callbacks maintains a registry of move-callback functions (ID → function).
// A move callback fires whenever an entry is written to a new slot of the
// heap array, with the slot it came from and the slot it landed in.
type Callbacks struct {
	callbacks map[string]Callback
	lock      sync.RWMutex
}

// Callback stores a unique ID and the function to invoke when entries move.
type Callback struct {
	ID       string
	Function func(from, to int)
}

// run invokes each registered callback function with the slot indices of a
// move.
func (c *Callbacks) run(from, to int) {
	c.lock.RLock()
	for _, callback := range c.callbacks {
		callback.Function(from, to)
	}
	c.lock.RUnlock()
}

// deregister removes the callback with the specified ID, returning an error
// if it does not exist.
func (c *Callbacks) deregister(id string) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, exists := c.callbacks[id]; !exists {
		return ErrCallbackNotFound
	}
	delete(c.callbacks, id)
	return nil
}

// register adds a callback function to be called on each move and returns a
// Callback struct containing the function and its unique ID.
func (c *Callbacks) register(fn func(from, to int)) Callback {
	c.lock.Lock()
	defer c.lock.Unlock()
	callback := Callback{ID: uuid.New().String(), Function: fn}
	if c.callbacks == nil {
		c.callbacks = make(map[string]Callback)
	}
	c.callbacks[callback.ID] = callback
	return callback
}
