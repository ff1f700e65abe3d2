package gorange

import "golang.org/x/exp/constraints"

// Addable constrains the element types Accumulate can sum: anything with a
// meaningful zero value and a + operator.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Each calls each for every remaining element of s, in order, consuming s.
// It panics with a *CapabilityError if s cannot pull.
func Each[T any](s Sequence[T], each func(T)) {
	requirePull[T](s)

	for !s.Empty() {
		each(Pull[T](s))
	}
}

// EachRef calls each with a pointer to every remaining element of s, in
// order, consuming s. Writes through the pointer mutate the underlying
// storage in place.
// It panics with a *CapabilityError if s cannot produce references or
// advance.
func EachRef[T any](s Sequence[T], each func(*T)) {
	requireReadRef[T](s)
	requireAdvance[T](s)

	for !s.Empty() {
		each(ReadRef[T](s))
		Advance[T](s)
	}
}

// Accumulate drains s, summing its elements into an accumulator seeded with
// the element type's zero value.
// It panics with a *CapabilityError if s cannot pull.
func Accumulate[T Addable](s Sequence[T]) T {
	requirePull[T](s)

	var total T

	for !s.Empty() {
		total += Pull[T](s)
	}

	return total
}

// Count drains s and returns the number of elements it produced.
// It panics with a *CapabilityError if s can neither pull nor advance.
func Count[T any](s Sequence[T]) int {
	count := 0

	switch {
	case CanPull[T](s):
		for !s.Empty() {
			Pull[T](s)
			count++
		}

	case CanAdvance[T](s):
		for !s.Empty() {
			Advance[T](s)
			count++
		}

	default:
		panic(&CapabilityError{Op: "advance"})
	}

	return count
}
