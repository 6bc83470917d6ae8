// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Indexed is the minimal read surface of a linearly ordered container.
type Indexed[E any] interface {
	// Len returns the element count.
	Len() int
	// Get returns the element at index i; ok is false iff i is out of
	// range. Out-of-range access through Get is expected absence, not
	// an error.
	Get(i int) (E, bool)
}

// Sequence is the read-only linear-sequence protocol. IF is the
// container's declared iterator form with its scope slot open; IT is the
// concrete borrowing iterator it denotes once an iteration window is
// plugged. [Iter] ties the two together.
type Sequence[E any, IF ScopeForm[IT], IT any] interface {
	Indexed[E]
	// IterForm returns the iterator constructor awaiting the caller's
	// iteration scope.
	IterForm() IF
}

// Iter plugs the caller's scope into seq's declared iterator form. The
// iterator is valid while s stays open.
func Iter[E any, IF ScopeForm[IT], IT any](seq Sequence[E, IF, IT], s *Scope) IT {
	return seq.IterForm().Plug(s)
}

// IsEmpty reports whether s has no elements.
func IsEmpty[E any](s Indexed[E]) bool {
	return s.Len() == 0
}

// First returns the first element, or false on an empty sequence.
func First[E any](s Indexed[E]) (E, bool) {
	return s.Get(0)
}

// Last returns the last element, or false on an empty sequence. The
// index computation is guarded, so an empty sequence cannot underflow.
func Last[E any](s Indexed[E]) (E, bool) {
	n := s.Len()
	if n == 0 {
		var zero E
		return zero, false
	}
	return s.Get(n - 1)
}

// Contains reports whether x occurs in s, by linear scan.
func Contains[E comparable](s Indexed[E], x E) bool {
	return ContainsFunc(s, func(y E) bool { return y == x })
}

// ContainsFunc reports whether any element of s satisfies eq. The scan
// stops at the first match.
func ContainsFunc[E any](s Indexed[E], eq func(E) bool) bool {
	for i, n := 0, s.Len(); i < n; i++ {
		if v, ok := s.Get(i); ok && eq(v) {
			return true
		}
	}
	return false
}

// SequenceMut is the mutable linear-sequence protocol.
//
// Insert and Remove treat an out-of-range index as a contract violation:
// the call panics rather than clamping the index or failing quietly.
// Accessors with an expected-absence reading (Get, Pop) use the comma-ok
// convention instead.
type SequenceMut[E any] interface {
	// Cap returns the capacity of the backing storage.
	Cap() int
	// Grow reserves room for at least n more elements.
	Grow(n int)
	// GrowExact reserves room for exactly n more elements.
	GrowExact(n int)
	// Clip drops unused capacity.
	Clip()
	// Clear removes all elements, keeping capacity.
	Clear()
	// Push appends x.
	Push(x E)
	// Pop removes and returns the last element; ok is false iff the
	// sequence is empty.
	Pop() (E, bool)
	// Insert places x at index i, shifting later elements right.
	// i must satisfy 0 <= i <= Len().
	Insert(i int, x E)
	// Remove deletes and returns the element at index i, shifting later
	// elements left. i must satisfy 0 <= i < Len().
	Remove(i int) E
}

// WithCapacity is the protocol for containers constructible with a
// preallocated capacity. The receiver is conventionally the zero value.
type WithCapacity[S WithCapacity[S]] interface {
	// WithCapacity returns an empty container with room for at least n
	// elements.
	WithCapacity(n int) S
}
