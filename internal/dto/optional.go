package dto

import (
	"bytes"
	"encoding/json"
)

// Optional tells an omitted JSON field apart from an explicit null.
//
//	omitted -> Set == false
//	null    -> Set == true, Null == true
//	value   -> Set == true, Value holds it
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr is nil for null, otherwise a pointer to a copy of the value.
func (o Optional[T]) Ptr() *T {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// ApplyTo writes the field into dst unless it was omitted.
func (o Optional[T]) ApplyTo(dst **T) {
	if !o.Set {
		return
	}
	*dst = o.Ptr()
}
