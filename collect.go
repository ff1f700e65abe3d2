package gorange

// Collect drains s, returning its remaining elements as a slice, in
// encounter order. The collected elements are independent copies.
// It panics with a *CapabilityError if s cannot pull.
func Collect[T any](s Sequence[T]) []T {
	requirePull[T](s)

	result := []T{}

	for !s.Empty() {
		result = append(result, Pull[T](s))
	}

	return result
}

// MapCollect drains s, applying mapp to each element and returning the
// results as a slice, in encounter order.
// It panics with a *CapabilityError if s cannot pull.
func MapCollect[T any, U any](s Sequence[T], mapp func(T) U) []U {
	requirePull[T](s)

	result := []U{}

	for !s.Empty() {
		result = append(result, mapp(Pull[T](s)))
	}

	return result
}

// DiscardCollect drains s, discarding every element. Only the side effects
// of pulling remain.
// It panics with a *CapabilityError if s cannot pull.
func DiscardCollect[T any](s Sequence[T]) {
	requirePull[T](s)

	for !s.Empty() {
		Pull[T](s)
	}
}

// TakeCollect returns at most max elements of s as a slice, in encounter
// order, stopping early if s is exhausted first. It reads and advances
// rather than pulls, and never touches s beyond the bound, so elements may
// remain in s afterwards.
// It panics with a *CapabilityError if s cannot produce values or advance.
func TakeCollect[T any](s Sequence[T], max int) []T {
	requireReadValue[T](s)
	requireAdvance[T](s)

	result := []T{}

	for max > 0 && !s.Empty() {
		result = append(result, ReadValue[T](s))
		Advance[T](s)
		max--
	}

	return result
}
