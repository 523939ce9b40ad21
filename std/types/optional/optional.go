package optional

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Optional holds either a value of T or nothing.
// The zero value holds nothing.
type Optional[T any] struct {
	value T
	isSet bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, isSet: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsSet() bool {
	return o.isSet
}

func (o *Optional[T]) Set(v T) {
	o.value = v
	o.isSet = true
}

// Unset drops the value, releasing anything it references.
func (o *Optional[T]) Unset() {
	var zero T
	o.value = zero
	o.isSet = false
}

// Get returns the value and whether it is set, like a map lookup.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.isSet
}

func (o Optional[T]) GetOr(def T) T {
	if o.isSet {
		return o.value
	}
	return def
}

// Unwrap returns the value and panics if there is none.
func (o Optional[T]) Unwrap() T {
	if !o.isSet {
		panic("optional value is not set")
	}
	return o.value
}

func (o Optional[T]) String() string {
	if !o.isSet {
		return "None"
	}
	return fmt.Sprint(o.value)
}

// CastInt converts the value to another integer type.
func CastInt[A, B constraints.Integer](a Optional[A]) (out Optional[B]) {
	if v, ok := a.Get(); ok {
		out.Set(B(v))
	}
	return out
}
