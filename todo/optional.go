package todo

// Optional is a field of an update payload that may be absent, explicitly
// null, or set to a value. The zero value is absent.
type Optional[T any] struct {
	set   bool
	value *T
}

// Set returns an Optional holding value.
func Set[T any](value T) Optional[T] {
	return Optional[T]{set: true, value: &value}
}

// Null returns an Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true}
}

// IsSet reports whether the field is present in the payload.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Value returns the new value, or nil for an explicit null.
func (o Optional[T]) Value() *T {
	if o.value == nil {
		return nil
	}
	v := *o.value
	return &v
}
