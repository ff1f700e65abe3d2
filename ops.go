package gorange

// The package-level operations present a uniform surface over whatever
// subset of primitives a sequence declares. Missing operations are
// synthesized from the declared ones where a derivation exists:
//
//	ReadValue: native ReadValue, else a copy of the element behind ReadRef.
//	ReadRef:   native only. A computed value has no stable storage to alias,
//	           so a reference is never synthesized from a value.
//	Pull:      native Pull, else ReadValue+Advance, else ReadRef+Advance.
//	Empty, Advance: native only.
//
// The priority order is strict: a native operation always wins over a
// synthesized one.

// CanAdvance reports whether Advance may be called on s.
func CanAdvance[T any](s Sequence[T]) bool {
	return s.Caps().Advance
}

// CanReadValue reports whether ReadValue may be called on s, natively or by
// synthesis.
func CanReadValue[T any](s Sequence[T]) bool {
	c := s.Caps()
	return c.ReadValue || c.ReadRef
}

// CanReadRef reports whether ReadRef may be called on s.
func CanReadRef[T any](s Sequence[T]) bool {
	return s.Caps().ReadRef
}

// CanPull reports whether Pull may be called on s, natively or by synthesis.
func CanPull[T any](s Sequence[T]) bool {
	c := s.Caps()
	return c.Pull || ((c.ReadValue || c.ReadRef) && c.Advance)
}

// Empty reports whether s is exhausted.
func Empty[T any](s Sequence[T]) bool {
	return s.Empty()
}

// Advance skips the current element of s.
// It panics with ErrPastEnd if s is already empty, and with a
// *CapabilityError if s does not declare the advance capability.
func Advance[T any](s Sequence[T]) {
	if !s.Caps().Advance {
		panic(&CapabilityError{Op: "advance"})
	}
	if s.Empty() {
		panic(ErrPastEnd)
	}
	s.(Advancer).Advance()
}

// ReadValue returns the current element of s by value, without advancing.
// If s does not read by value natively, the element is copied from its
// reference. It panics with ErrPastEnd if s is empty, and with a
// *CapabilityError if s declares neither read capability.
func ReadValue[T any](s Sequence[T]) T {
	c := s.Caps()
	switch {
	case c.ReadValue:
		if s.Empty() {
			panic(ErrPastEnd)
		}
		return s.(ValueReader[T]).ReadValue()

	case c.ReadRef:
		if s.Empty() {
			panic(ErrPastEnd)
		}
		return *s.(RefReader[T]).ReadRef()
	}

	panic(&CapabilityError{Op: "read value"})
}

// ReadRef returns a pointer to the current element of s, without advancing.
// It panics with ErrPastEnd if s is empty, and with a *CapabilityError if s
// does not declare the read-by-reference capability.
func ReadRef[T any](s Sequence[T]) *T {
	if !s.Caps().ReadRef {
		panic(&CapabilityError{Op: "read ref"})
	}
	if s.Empty() {
		panic(ErrPastEnd)
	}
	return s.(RefReader[T]).ReadRef()
}

// Front returns the current element of s by value, reading through its
// reference when the sequence has one and falling back to a value read
// otherwise. It does not advance.
func Front[T any](s Sequence[T]) T {
	if s.Caps().ReadRef {
		return *ReadRef[T](s)
	}
	return ReadValue[T](s)
}

// Pull returns the current element of s and advances past it.
// A native pull is preferred; otherwise pull is synthesized as a value read
// followed by an advance, reading through the element's reference only if no
// native value read exists. It panics with ErrPastEnd if s is empty, and
// with a *CapabilityError if no derivation exists.
func Pull[T any](s Sequence[T]) T {
	c := s.Caps()
	switch {
	case c.Pull:
		if s.Empty() {
			panic(ErrPastEnd)
		}
		return s.(Puller[T]).Pull()

	case c.ReadValue && c.Advance:
		if s.Empty() {
			panic(ErrPastEnd)
		}
		elem := s.(ValueReader[T]).ReadValue()
		s.(Advancer).Advance()
		return elem

	case c.ReadRef && c.Advance:
		if s.Empty() {
			panic(ErrPastEnd)
		}
		elem := *s.(RefReader[T]).ReadRef()
		s.(Advancer).Advance()
		return elem
	}

	panic(&CapabilityError{Op: "pull"})
}

// requireAdvance panics with a *CapabilityError if s cannot advance.
// The require helpers are used by combinators and terminal operations to
// reject an unusable pipeline at composition time.
func requireAdvance[T any](s Sequence[T]) {
	if !CanAdvance[T](s) {
		panic(&CapabilityError{Op: "advance"})
	}
}

// requireReadValue panics with a *CapabilityError if s cannot produce
// element values.
func requireReadValue[T any](s Sequence[T]) {
	if !CanReadValue[T](s) {
		panic(&CapabilityError{Op: "read value"})
	}
}

// requireReadRef panics with a *CapabilityError if s cannot produce element
// references.
func requireReadRef[T any](s Sequence[T]) {
	if !CanReadRef[T](s) {
		panic(&CapabilityError{Op: "read ref"})
	}
}

// requirePull panics with a *CapabilityError if s cannot pull.
func requirePull[T any](s Sequence[T]) {
	if !CanPull[T](s) {
		panic(&CapabilityError{Op: "pull"})
	}
}
