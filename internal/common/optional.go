package common

// Optional holds a value that may be absent.
// The zero value is an absent Optional.
type Optional[T comparable] struct {
	value T
	ok    bool
}

// Some returns an Optional holding v.
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the held value, or fallback if absent.
func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}

	return fallback
}
