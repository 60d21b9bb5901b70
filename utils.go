package keyedpq

import "golang.org/x/exp/constraints"

// zeroTriple returns zero values for a (key, value, payload) result.
func zeroTriple[K comparable, V constraints.Float, D any]() (K, V, D) {
	var key K
	var value V
	var payload D
	return key, value, payload
}

// keyFromEntry extracts the key from an entry lookup and handles any error
// that occurred. If an error is present, it returns the zero key and the
// error. Otherwise, it returns the entry's key and nil error.
func keyFromEntry[K comparable, V constraints.Float, D any](e *entry[K, V, D], err error) (K, error) {
	if err != nil {
		var zero K
		return zero, err
	}
	return e.key, nil
}

// valueFromEntry extracts the priority value from an entry lookup and handles
// any error that occurred. If an error is present, it returns the zero value
// and the error. Otherwise, it returns the entry's value and nil error.
func valueFromEntry[K comparable, V constraints.Float, D any](e *entry[K, V, D], err error) (V, error) {
	if err != nil {
		var zero V
		return zero, err
	}
	return e.value, nil
}

// keyFromPop discards all but the key of a pop result.
func keyFromPop[K comparable, V constraints.Float, D any](key K, _ V, _ D, err error) (K, error) {
	return key, err
}

// valueFromPop discards all but the priority value of a pop result.
func valueFromPop[K comparable, V constraints.Float, D any](_ K, value V, _ D, err error) (V, error) {
	return value, err
}
