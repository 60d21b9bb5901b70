package keyedpq

import "errors"

var (
	// ErrCallbackNotFound is returned when attempting to deregister a callback that
	// doesn't exist.
	ErrCallbackNotFound = errors.New("callback not found")

	// ErrHeapEmpty is returned when attempting to access elements from an empty heap.
	ErrHeapEmpty = errors.New("the heap is empty and contains no elements")

	// ErrDuplicateKey is returned when attempting to add a key that is already
	// present in the heap.
	ErrDuplicateKey = errors.New("key is already present in the heap")

	// ErrUnknownKey is returned when attempting to access a key that is not
	// present in the heap.
	ErrUnknownKey = errors.New("key is not present in the heap")

	// ErrStaleItem is returned when an item is the zero Item, belongs to a
	// different heap, or references an entry that has been removed.
	ErrStaleItem = errors.New("item does not reference a live entry of this heap")

	// ErrInvalidValue is returned when attempting to insert or assign a NaN
	// priority value.
	ErrInvalidValue = errors.New("priority value must not be NaN")
)
