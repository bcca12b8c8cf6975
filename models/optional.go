package models

import "encoding/json"

// Optional marks a field of a partial update. Set reports whether the key
// was present in the request body; Null reports that it was present as JSON
// null, which clears nullable columns.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null returns an Optional that clears the column.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Arg returns the value to bind for an UPDATE, nil for a null.
func (o Optional[T]) Arg() any {
	if o.Null {
		return nil
	}
	return o.Value
}
