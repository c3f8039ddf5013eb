package centavo

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state field: absent, explicit null, or a value. The
// gateway distinguishes "do not change" (absent) from "clear this field"
// (null), so two-state pointers are not enough. Absent values are dropped
// from request bodies via the omitzero struct tag.
type Optional[T any] struct {
	set   bool
	null  bool
	value T
}

// Value returns an Optional carrying v.
func Value[T any](v T) Optional[T] {
	return Optional[T]{set: true, value: v}
}

// Null returns an Optional that serializes as an explicit JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// Get returns the carried value and whether one is present. Absent and
// explicit-null both report false.
func (o Optional[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// IsNull reports whether the field was explicitly cleared.
func (o Optional[T]) IsNull() bool {
	return o.set && o.null
}

// IsZero reports absence; encoding/json consults it for omitzero.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*o = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Value(v)
	return nil
}
