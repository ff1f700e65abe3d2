package gorange

import "iter"

// Values returns an iterator over the remaining elements of s, so that any
// sequence can drive a range-over-func loop:
//
//	for elem := range gorange.Values(seq) {
//		...
//	}
//
// The loop consumes s. Breaking out of the loop leaves the remaining
// elements in place.
func Values[T any](s Sequence[T]) iter.Seq[T] {
	requirePull[T](s)

	return func(yield func(T) bool) {
		for !s.Empty() {
			if !yield(Pull[T](s)) {
				return
			}
		}
	}
}

// seqSequence adapts a stdlib iterator to the pull model using a one-element
// lookahead, the same way channel sources are adapted.
type seqSequence[T any] struct {
	next    func() (T, bool)
	stop    func()
	buf     T
	loaded  bool
	stopped bool
}

// FromSeq returns a sequence over the elements yielded by seq, in order.
// References returned by ReadRef alias the sequence's lookahead buffer.
func FromSeq[T any](seq iter.Seq[T]) Sequence[T] {
	next, stop := iter.Pull(seq)
	return &seqSequence[T]{next: next, stop: stop}
}

func (s *seqSequence[T]) load() {
	if s.loaded || s.stopped {
		return
	}

	elem, ok := s.next()
	if !ok {
		s.stopped = true
		s.stop()
		return
	}

	s.buf = elem
	s.loaded = true
}

// Caps implements Sequence.
func (s *seqSequence[T]) Caps() Caps {
	return Caps{
		Advance:   true,
		ReadValue: true,
		ReadRef:   true,
	}
}

// Empty implements Sequence.
func (s *seqSequence[T]) Empty() bool {
	s.load()
	return !s.loaded
}

// Advance implements Advancer.
func (s *seqSequence[T]) Advance() {
	s.load()
	s.loaded = false
}

// ReadValue implements ValueReader.
func (s *seqSequence[T]) ReadValue() T {
	s.load()
	return s.buf
}

// ReadRef implements RefReader.
func (s *seqSequence[T]) ReadRef() *T {
	s.load()
	return &s.buf
}
