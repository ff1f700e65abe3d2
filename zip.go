package gorange

// A Pair is one element of a two-way zip.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// A Triple is one element of a three-way zip.
type Triple[A any, B any, C any] struct {
	First  A
	Second B
	Third  C
}

// A Cell is one slot of a mixture-policy zip element. It is pointer-backed
// when its sub-sequence reads by reference, and value-backed otherwise, so
// aliasing behavior is per sub-sequence.
type Cell[T any] struct {
	ptr *T
	val T
}

// Get returns the slot's element.
func (c Cell[T]) Get() T {
	if c.ptr != nil {
		return *c.ptr
	}

	return c.val
}

// Ptr returns the pointer into the sub-sequence's storage, or nil if the
// slot is value-backed.
func (c Cell[T]) Ptr() *T {
	return c.ptr
}

// Set writes v through the slot's pointer.
// It panics with a *CapabilityError if the slot is value-backed.
func (c Cell[T]) Set(v T) {
	if c.ptr == nil {
		panic(&CapabilityError{Op: "write through value-backed cell"})
	}

	*c.ptr = v
}

// cellOf reads one mixture-policy slot: by reference when the sub-sequence
// has references, by value otherwise.
func cellOf[T any](s Sequence[T]) Cell[T] {
	if CanReadRef[T](s) {
		return Cell[T]{ptr: ReadRef[T](s)}
	}

	return Cell[T]{val: ReadValue[T](s)}
}

// zipSequence2 pairs up two sub-sequences. It is empty as soon as either
// sub-sequence is empty, so the shortest sub-sequence bounds the zip;
// a strict zip panics on uneven exhaustion instead.
type zipSequence2[A any, B any, O any] struct {
	a      Sequence[A]
	b      Sequence[B]
	read   func(Sequence[A], Sequence[B]) O
	strict bool
}

// ZipVal2 returns a sequence pairing up the elements of a and b by value,
// ending at the shorter of the two. Each slot is read through the
// sub-sequence's reference only if it has no value read.
// It panics with a *CapabilityError if a sub-sequence cannot produce values
// or advance.
func ZipVal2[A any, B any](a Sequence[A], b Sequence[B]) Sequence[Pair[A, B]] {
	requireReadValue[A](a)
	requireAdvance[A](a)
	requireReadValue[B](b)
	requireAdvance[B](b)

	return &zipSequence2[A, B, Pair[A, B]]{
		a: a,
		b: b,
		read: func(a Sequence[A], b Sequence[B]) Pair[A, B] {
			return Pair[A, B]{First: Front[A](a), Second: Front[B](b)}
		},
	}
}

// ZipExact2 is ZipVal2 with a strict length contract: if one sub-sequence is
// exhausted while the other is not, testing the zip for emptiness panics
// with ErrLengthMismatch.
func ZipExact2[A any, B any](a Sequence[A], b Sequence[B]) Sequence[Pair[A, B]] {
	zip := ZipVal2[A, B](a, b).(*zipSequence2[A, B, Pair[A, B]])
	zip.strict = true

	return zip
}

// ZipRef2 returns a sequence pairing up pointers to the elements of a and b,
// ending at the shorter of the two. Writes through the pointers mutate the
// sub-sequences' storage in place.
// It panics with a *CapabilityError if a sub-sequence cannot produce
// references or advance.
func ZipRef2[A any, B any](a Sequence[A], b Sequence[B]) Sequence[Pair[*A, *B]] {
	requireReadRef[A](a)
	requireAdvance[A](a)
	requireReadRef[B](b)
	requireAdvance[B](b)

	return &zipSequence2[A, B, Pair[*A, *B]]{
		a: a,
		b: b,
		read: func(a Sequence[A], b Sequence[B]) Pair[*A, *B] {
			return Pair[*A, *B]{First: ReadRef[A](a), Second: ReadRef[B](b)}
		},
	}
}

// Zip2 returns a sequence pairing up the elements of a and b as Cells,
// ending at the shorter of the two. Each slot aliases its sub-sequence's
// storage when that sub-sequence reads by reference, and carries a copy
// otherwise.
// It panics with a *CapabilityError if a sub-sequence cannot produce values
// or advance.
func Zip2[A any, B any](a Sequence[A], b Sequence[B]) Sequence[Pair[Cell[A], Cell[B]]] {
	requireReadValue[A](a)
	requireAdvance[A](a)
	requireReadValue[B](b)
	requireAdvance[B](b)

	return &zipSequence2[A, B, Pair[Cell[A], Cell[B]]]{
		a: a,
		b: b,
		read: func(a Sequence[A], b Sequence[B]) Pair[Cell[A], Cell[B]] {
			return Pair[Cell[A], Cell[B]]{First: cellOf[A](a), Second: cellOf[B](b)}
		},
	}
}

// Caps implements Sequence. The zip is sized if at least one sub-sequence
// is, cloneable only if all are, and owning if any is.
func (s *zipSequence2[A, B, O]) Caps() Caps {
	ca, cb := s.a.Caps(), s.b.Caps()

	return Caps{
		Advance:   true,
		ReadValue: true,
		Sized:     ca.Sized || cb.Sized,
		Clone:     ca.Clone && cb.Clone,
		Owning:    ca.Owning || cb.Owning,
	}
}

// Empty implements Sequence.
func (s *zipSequence2[A, B, O]) Empty() bool {
	emptyA, emptyB := s.a.Empty(), s.b.Empty()

	if s.strict && emptyA != emptyB {
		panic(ErrLengthMismatch)
	}

	return emptyA || emptyB
}

// Advance implements Advancer. Every sub-sequence advances.
func (s *zipSequence2[A, B, O]) Advance() {
	Advance[A](s.a)
	Advance[B](s.b)
}

// ReadValue implements ValueReader.
func (s *zipSequence2[A, B, O]) ReadValue() O {
	return s.read(s.a, s.b)
}

// Len implements Sized: the minimum length among the sub-sequences that
// know theirs.
func (s *zipSequence2[A, B, O]) Len() int {
	return minLen(sizedLen[A](s.a), sizedLen[B](s.b))
}

// Clone implements Cloner.
func (s *zipSequence2[A, B, O]) Clone() Sequence[O] {
	return &zipSequence2[A, B, O]{
		a:      s.a.(Cloner[A]).Clone(),
		b:      s.b.(Cloner[B]).Clone(),
		read:   s.read,
		strict: s.strict,
	}
}

// zipSequence3 is the three-way counterpart of zipSequence2.
type zipSequence3[A any, B any, C any, O any] struct {
	a    Sequence[A]
	b    Sequence[B]
	c    Sequence[C]
	read func(Sequence[A], Sequence[B], Sequence[C]) O
}

// ZipVal3 returns a sequence combining the elements of a, b, and c by value,
// ending at the shortest of the three.
// It panics with a *CapabilityError if a sub-sequence cannot produce values
// or advance.
func ZipVal3[A any, B any, C any](a Sequence[A], b Sequence[B], c Sequence[C]) Sequence[Triple[A, B, C]] {
	requireReadValue[A](a)
	requireAdvance[A](a)
	requireReadValue[B](b)
	requireAdvance[B](b)
	requireReadValue[C](c)
	requireAdvance[C](c)

	return &zipSequence3[A, B, C, Triple[A, B, C]]{
		a: a,
		b: b,
		c: c,
		read: func(a Sequence[A], b Sequence[B], c Sequence[C]) Triple[A, B, C] {
			return Triple[A, B, C]{First: Front[A](a), Second: Front[B](b), Third: Front[C](c)}
		},
	}
}

// ZipRef3 returns a sequence combining pointers to the elements of a, b, and
// c, ending at the shortest of the three.
// It panics with a *CapabilityError if a sub-sequence cannot produce
// references or advance.
func ZipRef3[A any, B any, C any](a Sequence[A], b Sequence[B], c Sequence[C]) Sequence[Triple[*A, *B, *C]] {
	requireReadRef[A](a)
	requireAdvance[A](a)
	requireReadRef[B](b)
	requireAdvance[B](b)
	requireReadRef[C](c)
	requireAdvance[C](c)

	return &zipSequence3[A, B, C, Triple[*A, *B, *C]]{
		a: a,
		b: b,
		c: c,
		read: func(a Sequence[A], b Sequence[B], c Sequence[C]) Triple[*A, *B, *C] {
			return Triple[*A, *B, *C]{First: ReadRef[A](a), Second: ReadRef[B](b), Third: ReadRef[C](c)}
		},
	}
}

// Zip3 returns a sequence combining the elements of a, b, and c as Cells,
// ending at the shortest of the three. Slot aliasing is per sub-sequence,
// as in Zip2.
// It panics with a *CapabilityError if a sub-sequence cannot produce values
// or advance.
func Zip3[A any, B any, C any](a Sequence[A], b Sequence[B], c Sequence[C]) Sequence[Triple[Cell[A], Cell[B], Cell[C]]] {
	requireReadValue[A](a)
	requireAdvance[A](a)
	requireReadValue[B](b)
	requireAdvance[B](b)
	requireReadValue[C](c)
	requireAdvance[C](c)

	return &zipSequence3[A, B, C, Triple[Cell[A], Cell[B], Cell[C]]]{
		a: a,
		b: b,
		c: c,
		read: func(a Sequence[A], b Sequence[B], c Sequence[C]) Triple[Cell[A], Cell[B], Cell[C]] {
			return Triple[Cell[A], Cell[B], Cell[C]]{First: cellOf[A](a), Second: cellOf[B](b), Third: cellOf[C](c)}
		},
	}
}

// Caps implements Sequence.
func (s *zipSequence3[A, B, C, O]) Caps() Caps {
	ca, cb, cc := s.a.Caps(), s.b.Caps(), s.c.Caps()

	return Caps{
		Advance:   true,
		ReadValue: true,
		Sized:     ca.Sized || cb.Sized || cc.Sized,
		Clone:     ca.Clone && cb.Clone && cc.Clone,
		Owning:    ca.Owning || cb.Owning || cc.Owning,
	}
}

// Empty implements Sequence.
func (s *zipSequence3[A, B, C, O]) Empty() bool {
	return s.a.Empty() || s.b.Empty() || s.c.Empty()
}

// Advance implements Advancer.
func (s *zipSequence3[A, B, C, O]) Advance() {
	Advance[A](s.a)
	Advance[B](s.b)
	Advance[C](s.c)
}

// ReadValue implements ValueReader.
func (s *zipSequence3[A, B, C, O]) ReadValue() O {
	return s.read(s.a, s.b, s.c)
}

// Len implements Sized.
func (s *zipSequence3[A, B, C, O]) Len() int {
	return minLen(sizedLen[A](s.a), sizedLen[B](s.b), sizedLen[C](s.c))
}

// Clone implements Cloner.
func (s *zipSequence3[A, B, C, O]) Clone() Sequence[O] {
	return &zipSequence3[A, B, C, O]{
		a:    s.a.(Cloner[A]).Clone(),
		b:    s.b.(Cloner[B]).Clone(),
		c:    s.c.(Cloner[C]).Clone(),
		read: s.read,
	}
}

// sizedLen returns the remaining length of s, or -1 if s does not know it.
func sizedLen[T any](s Sequence[T]) int {
	if !s.Caps().Sized {
		return -1
	}

	return s.(Sized).Len()
}

// minLen returns the minimum of the given lengths, ignoring unknown (-1)
// entries.
func minLen(lens ...int) int {
	min := -1

	for _, n := range lens {
		if n < 0 {
			continue
		}

		if min < 0 || n < min {
			min = n
		}
	}

	return min
}
