package internal

import (
	"encoding/json"
)

// Null holds a value that may be absent.
//
// The zero value is absent. Absence is an expected state for most metadata
// fields, so it is modelled explicitly instead of with sentinel values.
type Null[T any] struct {
	value T
	valid bool
}

// Some returns a present Null holding v.
func Some[T any](v T) Null[T] {
	return Null[T]{value: v, valid: true}
}

// None returns an absent Null.
func None[T any]() Null[T] {
	return Null[T]{}
}

// Get returns the held value and whether it is present.
func (n Null[T]) Get() (T, bool) { return n.value, n.valid }

// Valid reports whether a value is present.
func (n Null[T]) Valid() bool { return n.valid }

// Or returns the held value, or def if absent.
func (n Null[T]) Or(def T) T {
	if n.valid {
		return n.value
	}
	return def
}

// MapNull applies f to the held value. An absent input stays absent.
func MapNull[T, U any](n Null[T], f func(T) U) Null[U] {
	if !n.valid {
		return None[U]()
	}
	return Some(f(n.value))
}

// MarshalJSON encodes an absent value as null.
func (n Null[T]) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// MarshalYAML implements yaml.Marshaler. An absent value encodes as null.
func (n Null[T]) MarshalYAML() (any, error) {
	if !n.valid {
		return nil, nil
	}
	return n.value, nil
}
