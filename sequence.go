package gorange

import (
	"errors"
	"fmt"
)

// Caps is the capability descriptor of a concrete sequence type: a fixed,
// stateless record of which primitive operations the type implements
// natively. Each true flag must be backed by the corresponding optional
// interface (Advancer, ValueReader, RefReader, Puller, Sized, Cloner).
//
// Emptiness testing is not listed here because every Sequence must support
// it; it cannot be substituted by any other capability.
type Caps struct {
	// Advance indicates the sequence implements Advancer.
	Advance bool

	// ReadValue indicates the sequence implements ValueReader.
	ReadValue bool

	// ReadRef indicates the sequence implements RefReader.
	ReadRef bool

	// Pull indicates the sequence implements Puller natively.
	// Pull can also be synthesized from other capabilities, see the
	// package-level Pull.
	Pull bool

	// Sized indicates the sequence implements Sized, that is, the number of
	// remaining elements is finite and known. Unbounded sequences leave this
	// false.
	Sized bool

	// Clone indicates the sequence implements Cloner. Only non-owning
	// sequences may be cloned.
	Clone bool

	// Owning indicates the sequence owns its source storage. Owning
	// sequences have exactly one cursor: they are never cloned, and the
	// storage is released when the sequence is garbage.
	Owning bool
}

// Sequence is the capability set common to every sequence: an emptiness test
// and a descriptor of the other primitives the concrete type supports.
//
// ReadValue, ReadRef, and Pull must never be called on an empty sequence;
// the package-level operations panic with ErrPastEnd if they are.
type Sequence[T any] interface {
	// Caps returns the capability descriptor for this sequence.
	// It must be constant over the lifetime of the sequence.
	Caps() Caps

	// Empty reports whether the sequence is exhausted.
	Empty() bool
}

// Advancer is implemented by sequences that can skip the current element and
// move to the next one.
type Advancer interface {
	Advance()
}

// ValueReader is implemented by sequences that can read the current element
// by value. Repeated calls without an intervening advance return the same
// value.
type ValueReader[T any] interface {
	ReadValue() T
}

// RefReader is implemented by sequences whose current element has stable
// storage. Repeated calls without an intervening advance return a pointer to
// the identical element, so writes through the pointer are visible to later
// reads.
type RefReader[T any] interface {
	ReadRef() *T
}

// Puller is implemented by sequences that read the current element and
// advance in a single step.
type Puller[T any] interface {
	Pull() T
}

// Sized is implemented by sequences with a finite, known number of remaining
// elements.
type Sized interface {
	Len() int
}

// Cloner is implemented by non-owning sequences. Clone returns an
// independent cursor over the same source; advancing one does not affect the
// other.
type Cloner[T any] interface {
	Clone() Sequence[T]
}

// ErrPastEnd is the panic value used when an element is read from, or a
// cursor advanced past, an already-empty sequence.
var ErrPastEnd = errors.New("read past end of sequence")

// ErrLengthMismatch is the panic value used by strict zips when one
// sub-sequence is exhausted before another.
var ErrLengthMismatch = errors.New("zipped sequences have different lengths")

// ErrNotAdaptable is returned by As for values that neither implement
// Sequence nor match any adaptable source type.
var ErrNotAdaptable = errors.New("value cannot be adapted to a sequence")

// A CapabilityError is the panic value used when an operation is composed
// with a sequence that does not declare, and cannot synthesize, a capability
// the operation requires. It is raised at composition time, before any
// element is processed.
type CapabilityError struct {
	// Op is the missing operation, e.g. "read ref".
	Op string
}

// Error implements error.
func (e *CapabilityError) Error() string {
	return fmt.Sprintf("sequence does not support %s", e.Op)
}

// IsSequence reports whether v satisfies the sequence capability model for
// element type T: it implements Sequence, and every capability its
// descriptor declares is backed by the optional interface for T. The
// element type appears only in the optional interfaces, so the descriptor
// check is what ties a sequence to its element type.
func IsSequence[T any](v any) bool {
	s, ok := v.(Sequence[T])
	return ok && conforms[T](s)
}

// conforms reports whether every capability declared by the descriptor of s
// is backed by the matching optional interface for element type T.
func conforms[T any](s Sequence[T]) bool {
	c := s.Caps()

	if _, ok := s.(Advancer); c.Advance && !ok {
		return false
	}
	if _, ok := s.(ValueReader[T]); c.ReadValue && !ok {
		return false
	}
	if _, ok := s.(RefReader[T]); c.ReadRef && !ok {
		return false
	}
	if _, ok := s.(Puller[T]); c.Pull && !ok {
		return false
	}
	if _, ok := s.(Sized); c.Sized && !ok {
		return false
	}
	if _, ok := s.(Cloner[T]); c.Clone && !ok {
		return false
	}

	return true
}
