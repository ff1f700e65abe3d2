package gorange

// mappingSequence applies a function to each element of an inner sequence.
type mappingSequence[T any, U any] struct {
	inner Sequence[T]
	mapp  func(T) U
}

// Map returns a sequence that applies mapp to each element of s, mapping it
// to type U. Mapping is lazy: mapp runs once per element, at the moment the
// mapped value is read, and never at construction or advance time.
// It panics with a *CapabilityError if s cannot produce values or advance.
func Map[T any, U any](s Sequence[T], mapp func(T) U) Sequence[U] {
	requireReadValue[T](s)
	requireAdvance[T](s)

	return &mappingSequence[T, U]{inner: s, mapp: mapp}
}

// Caps implements Sequence. Sizing, cloning, and ownership follow the inner
// sequence.
func (s *mappingSequence[T, U]) Caps() Caps {
	inner := s.inner.Caps()

	return Caps{
		Advance:   true,
		ReadValue: true,
		Sized:     inner.Sized,
		Clone:     inner.Clone,
		Owning:    inner.Owning,
	}
}

// Empty implements Sequence.
func (s *mappingSequence[T, U]) Empty() bool {
	return s.inner.Empty()
}

// Advance implements Advancer.
func (s *mappingSequence[T, U]) Advance() {
	Advance[T](s.inner)
}

// ReadValue implements ValueReader.
func (s *mappingSequence[T, U]) ReadValue() U {
	return s.mapp(ReadValue[T](s.inner))
}

// Len implements Sized.
func (s *mappingSequence[T, U]) Len() int {
	return s.inner.(Sized).Len()
}

// Clone implements Cloner.
func (s *mappingSequence[T, U]) Clone() Sequence[U] {
	return &mappingSequence[T, U]{
		inner: s.inner.(Cloner[T]).Clone(),
		mapp:  s.mapp,
	}
}

// filterSequence produces the elements of an inner sequence that match a
// predicate. Invariant: whenever the sequence is not empty, its current
// element matches.
type filterSequence[T any] struct {
	inner Sequence[T]
	pred  func(T) bool
}

// Filter returns a sequence producing only the elements of s for which pred
// returns true, in order. Non-matching elements are skipped eagerly: at
// construction and after every advance, the cursor moves to the next match,
// so construction costs as many inner reads as there are leading
// non-matching elements.
// It panics with a *CapabilityError if s cannot produce values or advance.
func Filter[T any](s Sequence[T], pred func(T) bool) Sequence[T] {
	requireReadValue[T](s)
	requireAdvance[T](s)

	filtered := &filterSequence[T]{inner: s, pred: pred}
	filtered.skip()

	return filtered
}

// skip restores the invariant by advancing the inner sequence past
// non-matching elements.
func (s *filterSequence[T]) skip() {
	for !s.inner.Empty() && !s.pred(ReadValue[T](s.inner)) {
		Advance[T](s.inner)
	}
}

// Caps implements Sequence. The remaining length is unknown even over a
// sized inner sequence, so a filter is never sized.
func (s *filterSequence[T]) Caps() Caps {
	inner := s.inner.Caps()

	return Caps{
		Advance:   true,
		ReadValue: true,
		Clone:     inner.Clone,
		Owning:    inner.Owning,
	}
}

// Empty implements Sequence.
func (s *filterSequence[T]) Empty() bool {
	return s.inner.Empty()
}

// Advance implements Advancer.
func (s *filterSequence[T]) Advance() {
	Advance[T](s.inner)
	s.skip()
}

// ReadValue implements ValueReader.
func (s *filterSequence[T]) ReadValue() T {
	return ReadValue[T](s.inner)
}

// Clone implements Cloner. The clone is already positioned on a matching
// element, so no skip runs.
func (s *filterSequence[T]) Clone() Sequence[T] {
	return &filterSequence[T]{
		inner: s.inner.(Cloner[T]).Clone(),
		pred:  s.pred,
	}
}

// takeSequence bounds an inner sequence to a maximum number of elements.
type takeSequence[T any] struct {
	inner Sequence[T]
	left  int
}

// Take returns a sequence producing at most max elements of s, in order.
// The inner sequence is not consumed beyond the bound, so elements may
// remain in s after the taken sequence is drained.
// It panics with a *CapabilityError if s cannot produce values or advance.
func Take[T any](s Sequence[T], max int) Sequence[T] {
	requireReadValue[T](s)
	requireAdvance[T](s)

	return &takeSequence[T]{inner: s, left: max}
}

// SkipFirst advances s past its first num elements, or to exhaustion,
// whichever comes first, and returns s.
// It panics with a *CapabilityError if s cannot advance.
func SkipFirst[T any](s Sequence[T], num int) Sequence[T] {
	requireAdvance[T](s)

	for num > 0 && !s.Empty() {
		Advance[T](s)
		num--
	}

	return s
}

// Caps implements Sequence. Reference reads pass through to the inner
// sequence when it has them.
func (s *takeSequence[T]) Caps() Caps {
	inner := s.inner.Caps()

	return Caps{
		Advance:   true,
		ReadValue: true,
		ReadRef:   inner.ReadRef,
		Sized:     inner.Sized,
		Clone:     inner.Clone,
		Owning:    inner.Owning,
	}
}

// Empty implements Sequence.
func (s *takeSequence[T]) Empty() bool {
	return s.left <= 0 || s.inner.Empty()
}

// Advance implements Advancer.
func (s *takeSequence[T]) Advance() {
	Advance[T](s.inner)
	s.left--
}

// ReadValue implements ValueReader.
func (s *takeSequence[T]) ReadValue() T {
	return ReadValue[T](s.inner)
}

// ReadRef implements RefReader.
func (s *takeSequence[T]) ReadRef() *T {
	return ReadRef[T](s.inner)
}

// Len implements Sized.
func (s *takeSequence[T]) Len() int {
	n := s.inner.(Sized).Len()
	if n > s.left {
		n = s.left
	}

	return n
}

// Clone implements Cloner.
func (s *takeSequence[T]) Clone() Sequence[T] {
	return &takeSequence[T]{
		inner: s.inner.(Cloner[T]).Clone(),
		left:  s.left,
	}
}
