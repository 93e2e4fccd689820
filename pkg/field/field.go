// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

/*
Package field models JSON values that distinguish between three states:
absent (the key is not present), explicitly null, and set to a value.

The metadata overlay uses this distinction everywhere: a null field means
"cleared, override any lower-priority source with absence", while a missing
key means "no opinion, fall through". A plain Go pointer cannot express both,
so [Field] carries the state explicitly and round-trips it through JSON.

Usage:

	type Patch struct {
	    Name field.Field[string] `json:"name,omitzero"`
	}

The `omitzero` tag keeps unset fields out of the serialized document, which is
what preserves the absent-vs-null distinction on write.
*/
package field

import (
	"bytes"
	"encoding/json"
)

// Field is a tristate JSON value: unset, cleared (null), or set.
//
// The zero Field is unset.
type Field[T any] struct {
	present bool
	null    bool
	value   T
}

// Set returns a Field holding the given value.
func Set[T any](v T) Field[T] {
	return Field[T]{present: true, value: v}
}

// Clear returns a Field that serializes as an explicit JSON null.
func Clear[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// IsSet reports whether the field holds a value.
func (f Field[T]) IsSet() bool { return f.present && !f.null }

// IsClear reports whether the field is an explicit null.
func (f Field[T]) IsClear() bool { return f.present && f.null }

// IsZero reports whether the field is unset. It is what makes the
// `omitzero` struct tag drop the key entirely during marshaling.
func (f Field[T]) IsZero() bool { return !f.present }

// Get returns the held value and whether one is present.
func (f Field[T]) Get() (T, bool) {
	if !f.IsSet() {
		var zero T
		return zero, false
	}
	return f.value, true
}

// Or merges the field onto a base value: unset keeps the base, cleared
// drops it to the zero value, set replaces it.
func (f Field[T]) Or(base T) T {
	switch {
	case !f.present:
		return base
	case f.null:
		var zero T
		return zero
	default:
		return f.value
	}
}

// Ptr merges the field onto an optional base value: unset keeps the base
// pointer, cleared yields nil, set yields a pointer to the new value.
func (f Field[T]) Ptr(base *T) *T {
	switch {
	case !f.present:
		return base
	case f.null:
		return nil
	default:
		v := f.value
		return &v
	}
}

// UnmarshalJSON records whether the key carried a value or an explicit null.
// It is only invoked when the key is present in the document.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(data, []byte("null")) {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON writes null for cleared fields and the value otherwise.
// Unset fields are expected to be dropped by `omitzero` before this runs.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.null || !f.present {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
