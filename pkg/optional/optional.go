package optional

import "fmt"

// Optional holds zero or one value of type T. The zero value is empty.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromOK builds an Optional from the usual Go "value, ok" pair.
func FromOK[T any](v T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}

	return Some(v)
}

// FromPtr returns an empty Optional for a nil pointer and the pointed value otherwise.
func FromPtr[T any](v *T) Optional[T] {
	if v == nil {
		return None[T]()
	}

	return Some(*v)
}

// IsPresent reports whether o holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsEmpty reports whether o holds no value.
func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the value and true, or the zero value and false when o is empty.
func (o Optional[T]) Get() (T, bool) {
	if !o.present {
		var zero T
		return zero, false
	}

	return o.value, true
}

// MustGet returns the value or panics when o is empty.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("optional: MustGet called on an empty value")
	}

	return o.value
}

// OrElse returns the value of o, or def when o is empty.
func (o Optional[T]) OrElse(def T) T {
	if !o.present {
		return def
	}

	return o.value
}

// OrElseGet calls def only when o is empty.
func (o Optional[T]) OrElseGet(def func() T) T {
	if !o.present {
		return def()
	}

	return o.value
}

// String formats o as Some(v) or None.
func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
