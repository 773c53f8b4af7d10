package models

import (
	"bytes"
	"encoding/json"
)

// Optional records whether a JSON key was present in a request body, apart
// from its value. A present `null` yields Set == true and Value == nil, which
// a plain pointer field cannot tell apart from an absent key.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a present, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a present Optional whose value is JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked for keys present in the document, including
// those set to null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// SQLValue returns the value to bind for a column: nil for null, otherwise
// the dereferenced value.
func (o Optional[T]) SQLValue() any {
	if o.Value == nil {
		return nil
	}
	return *o.Value
}
