// Package gorange provides a uniform sequence abstraction over containers,
// numeric intervals, channels, and arbitrary element sources, together with
// lazy pipeline operations built on top of it.
//
// A sequence is any value implementing Sequence, which requires only an
// emptiness test plus a capability descriptor (Caps). Everything else is
// optional: advancing, reading the current element by value or by reference,
// and pulling (read and advance in one step). A concrete sequence declares
// the minimal set of primitives it supports natively, and the package-level
// operations (ReadValue, Pull, Front, ...) synthesize the rest where possible.
// For example, a counter that declares only Empty and Pull still works with
// Collect, and an index cursor that declares only Empty, Advance, and ReadRef
// still supports Pull.
//
// Sequences are combined with Map, Filter, Take, and the Zip family, each of
// which wraps its input in a new Sequence, so pipelines compose to arbitrary
// depth. Terminal operations (Each, Collect, Accumulate, ...) drain a
// sequence to completion.
//
// Evaluation is lazy and pull-based: no element is computed until a terminal
// operation or an explicit Advance/Pull requests it. The only exception is
// Filter, which skips ahead to the next matching element at construction time
// and after every advance, so that a non-empty filtered sequence always has a
// matching element at its front.
//
// Sequences over external storage (FromSlice) are non-owning: they alias the
// caller's data, are cheap to Clone, and must not outlive the storage they
// alias. Sequences built with Of or OwnSlice own their storage; they cannot
// be cloned, and the value returned by the constructor is the only cursor
// over that storage.
//
// Misusing a sequence is a programming error, not a recoverable condition:
// composing an operation with a sequence that lacks a required capability
// panics with a *CapabilityError before any element is processed, and
// reading or advancing an exhausted sequence panics with ErrPastEnd.
package gorange
