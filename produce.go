package gorange

import (
	"fmt"
	"iter"
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// sliceSequence is a non-owning cursor over caller-owned storage.
type sliceSequence[T any] struct {
	rest []T
}

// FromSlice returns a non-owning sequence over the elements of elems, in
// order. The sequence aliases the slice's storage: writes through ReadRef
// are visible in elems, and the sequence must not outlive it.
func FromSlice[T any](elems []T) Sequence[T] {
	return &sliceSequence[T]{rest: elems}
}

// Caps implements Sequence.
func (s *sliceSequence[T]) Caps() Caps {
	return Caps{
		Advance:   true,
		ReadValue: true,
		ReadRef:   true,
		Sized:     true,
		Clone:     true,
	}
}

// Empty implements Sequence.
func (s *sliceSequence[T]) Empty() bool {
	return len(s.rest) == 0
}

// Advance implements Advancer.
func (s *sliceSequence[T]) Advance() {
	s.rest = s.rest[1:]
}

// ReadValue implements ValueReader.
func (s *sliceSequence[T]) ReadValue() T {
	return s.rest[0]
}

// ReadRef implements RefReader.
func (s *sliceSequence[T]) ReadRef() *T {
	return &s.rest[0]
}

// Len implements Sized.
func (s *sliceSequence[T]) Len() int {
	return len(s.rest)
}

// Clone implements Cloner.
func (s *sliceSequence[T]) Clone() Sequence[T] {
	clone := *s
	return &clone
}

// ownedSlice is an owning sequence: it holds the element storage itself and
// iterates an internal offset. It is only handed out behind the Sequence
// interface and does not implement Cloner, so the constructor's return value
// is the single cursor over the owned storage.
type ownedSlice[T any] struct {
	elems []T
	off   int
}

// Of returns an owning sequence over copies of the given elements.
func Of[T any](elems ...T) Sequence[T] {
	return &ownedSlice[T]{elems: slices.Clone(elems)}
}

// OwnSlice returns an owning sequence that takes ownership of elems.
// The caller must not read or write elems afterwards.
func OwnSlice[T any](elems []T) Sequence[T] {
	return &ownedSlice[T]{elems: elems}
}

// Caps implements Sequence.
func (s *ownedSlice[T]) Caps() Caps {
	return Caps{
		Advance:   true,
		ReadValue: true,
		ReadRef:   true,
		Sized:     true,
		Owning:    true,
	}
}

// Empty implements Sequence.
func (s *ownedSlice[T]) Empty() bool {
	return s.off >= len(s.elems)
}

// Advance implements Advancer.
func (s *ownedSlice[T]) Advance() {
	s.off++
}

// ReadValue implements ValueReader.
func (s *ownedSlice[T]) ReadValue() T {
	return s.elems[s.off]
}

// ReadRef implements RefReader.
func (s *ownedSlice[T]) ReadRef() *T {
	return &s.elems[s.off]
}

// Len implements Sized.
func (s *ownedSlice[T]) Len() int {
	return len(s.elems) - s.off
}

// spanSequence produces the integers of a half-open interval.
type spanSequence[T constraints.Integer] struct {
	cur     T
	max     T
	bounded bool
}

// Span returns a sequence over the half-open integer interval [lo, hi).
func Span[T constraints.Integer](lo T, hi T) Sequence[T] {
	return &spanSequence[T]{cur: lo, max: hi, bounded: true}
}

// Ints returns a sequence of ints: with no bounds, counting up from 0 to the
// maximum int; with one bound, the interval [0, bounds[0]); with two bounds,
// the interval [bounds[0], bounds[1]). It panics if given more than two
// bounds.
func Ints(bounds ...int) Sequence[int] {
	switch len(bounds) {
	case 0:
		return &spanSequence[int]{cur: 0, max: math.MaxInt}
	case 1:
		return Span(0, bounds[0])
	case 2:
		return Span(bounds[0], bounds[1])
	}

	panic("gorange: Ints takes at most two bounds")
}

// Caps implements Sequence.
func (s *spanSequence[T]) Caps() Caps {
	return Caps{
		Advance:   true,
		ReadValue: true,
		Sized:     s.bounded,
		Clone:     true,
	}
}

// Empty implements Sequence.
func (s *spanSequence[T]) Empty() bool {
	return s.cur >= s.max
}

// Advance implements Advancer.
func (s *spanSequence[T]) Advance() {
	s.cur++
}

// ReadValue implements ValueReader.
func (s *spanSequence[T]) ReadValue() T {
	return s.cur
}

// Len implements Sized.
func (s *spanSequence[T]) Len() int {
	return int(s.max - s.cur)
}

// Clone implements Cloner.
func (s *spanSequence[T]) Clone() Sequence[T] {
	clone := *s
	return &clone
}

// channelSequence adapts a stream of elements to the pull model using a
// one-element lookahead buffer.
type channelSequence[T any] struct {
	ch     <-chan T
	buf    T
	loaded bool
	closed bool
}

// FromChannel returns a sequence over the elements received through ch, in
// order, until ch is closed. Testing for emptiness may block until the next
// element arrives or the channel closes. References returned by ReadRef
// alias the sequence's lookahead buffer, not the sender's storage.
//
// The sequence is not cloneable: a second cursor would compete for the same
// channel.
func FromChannel[T any](ch <-chan T) Sequence[T] {
	return &channelSequence[T]{ch: ch}
}

func (s *channelSequence[T]) load() {
	if s.loaded || s.closed {
		return
	}

	elem, ok := <-s.ch
	if !ok {
		s.closed = true
		return
	}

	s.buf = elem
	s.loaded = true
}

// Caps implements Sequence.
func (s *channelSequence[T]) Caps() Caps {
	return Caps{
		Advance:   true,
		ReadValue: true,
		ReadRef:   true,
	}
}

// Empty implements Sequence.
func (s *channelSequence[T]) Empty() bool {
	s.load()
	return !s.loaded
}

// Advance implements Advancer.
func (s *channelSequence[T]) Advance() {
	s.load()
	s.loaded = false
}

// ReadValue implements ValueReader.
func (s *channelSequence[T]) ReadValue() T {
	s.load()
	return s.buf
}

// ReadRef implements RefReader.
func (s *channelSequence[T]) ReadRef() *T {
	s.load()
	return &s.buf
}

// As adapts v to a sequence with element type T.
// A value that already satisfies the capability model is returned unchanged;
// adapting twice never re-wraps. Slices adapt to non-owning sequences,
// channels and iter.Seq iterators to stream-backed ones. Any other value
// yields an error wrapping ErrNotAdaptable.
func As[T any](v any) (Sequence[T], error) {
	if src, ok := v.(Sequence[T]); ok && conforms[T](src) {
		return src, nil
	}

	switch src := v.(type) {
	case []T:
		return FromSlice(src), nil

	case chan T:
		return FromChannel(src), nil

	case <-chan T:
		return FromChannel(src), nil

	case iter.Seq[T]:
		return FromSeq(src), nil
	}

	return nil, fmt.Errorf("%w: %T", ErrNotAdaptable, v)
}
