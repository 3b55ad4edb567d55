package model

import "fmt"

// KeyNotFoundError reports a lookup for a name the mapping never bound.
// During rendering it signals a defect in the event source and must be
// surfaced, not swallowed.
type KeyNotFoundError struct {
	Key string
}

// Error implements the error interface for KeyNotFoundError.
func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", e.Key)
}

// Dict is an insertion-ordered mapping from unique string keys to values.
// Argument bindings and shape bindings both use it so that iteration
// follows declaration order rather than map randomization.
type Dict[T any] struct {
	keys   []string
	values map[string]T
}

// NewDict returns an empty Dict.
func NewDict[T any]() *Dict[T] {
	return &Dict[T]{values: make(map[string]T)}
}

// Set binds key to value. A key keeps its original position when set again.
func (d *Dict[T]) Set(key string, value T) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value bound to key, or a KeyNotFoundError if absent.
func (d *Dict[T]) Get(key string) (T, error) {
	value, ok := d.values[key]
	if !ok {
		var zero T
		return zero, &KeyNotFoundError{Key: key}
	}
	return value, nil
}

// Lookup returns the value bound to key and whether it was present.
func (d *Dict[T]) Lookup(key string) (T, bool) {
	value, ok := d.values[key]
	return value, ok
}

// Has reports whether key is bound.
func (d *Dict[T]) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Len returns the number of bound keys.
func (d *Dict[T]) Len() int { return len(d.keys) }

// Keys returns the bound keys in insertion order. The slice is a copy.
func (d *Dict[T]) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}
