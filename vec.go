// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

import "slices"

// Vec is a growable array backed by a Go slice, adapting ordinary slice
// mechanics to [Sequence] and [SequenceMut]. Its declared iterator form
// is [SliceIterForm]. The zero Vec is an empty vector ready for use.
type Vec[E any] struct {
	xs []E
}

// VecOf returns a vector holding a copy of xs.
func VecOf[E any](xs ...E) *Vec[E] {
	return &Vec[E]{xs: slices.Clone(xs)}
}

// WithCapacity implements the preallocating-constructor protocol.
func (*Vec[E]) WithCapacity(n int) *Vec[E] {
	return &Vec[E]{xs: make([]E, 0, n)}
}

// Len returns the element count.
func (v *Vec[E]) Len() int {
	return len(v.xs)
}

// Get returns the element at index i; ok is false iff i is out of range.
func (v *Vec[E]) Get(i int) (E, bool) {
	if i < 0 || i >= len(v.xs) {
		var zero E
		return zero, false
	}
	return v.xs[i], true
}

// IterForm returns the iterator constructor over v's storage, awaiting
// the caller's iteration scope.
func (v *Vec[E]) IterForm() SliceIterForm[E] {
	return SliceIterOver(v.xs)
}

// Iter is shorthand for plugging s into v's iterator form.
func (v *Vec[E]) Iter(s *Scope) *SliceIter[E] {
	return v.IterForm().Plug(s)
}

// Cap returns the capacity of the backing storage.
func (v *Vec[E]) Cap() int {
	return cap(v.xs)
}

// Grow reserves room for at least n more elements.
func (v *Vec[E]) Grow(n int) {
	v.xs = slices.Grow(v.xs, n)
}

// GrowExact reserves room for exactly n more elements. Unlike Grow it
// does not round the new capacity up to the allocator's growth curve.
func (v *Vec[E]) GrowExact(n int) {
	if n <= cap(v.xs)-len(v.xs) {
		return
	}
	xs := make([]E, len(v.xs), len(v.xs)+n)
	copy(xs, v.xs)
	v.xs = xs
}

// Clip drops unused capacity.
func (v *Vec[E]) Clip() {
	v.xs = slices.Clip(v.xs)
}

// Clear removes all elements, keeping capacity. Cleared slots are zeroed
// so the collector can reclaim what they referenced.
func (v *Vec[E]) Clear() {
	clear(v.xs)
	v.xs = v.xs[:0]
}

// Push appends x, growing the backing storage as needed.
func (v *Vec[E]) Push(x E) {
	v.xs = append(v.xs, x)
}

// Pop removes and returns the last element; ok is false iff v is empty.
func (v *Vec[E]) Pop() (E, bool) {
	n := len(v.xs)
	if n == 0 {
		var zero E
		return zero, false
	}
	x := v.xs[n-1]
	clear(v.xs[n-1:])
	v.xs = v.xs[:n-1]
	return x, true
}

// Insert places x at index i, shifting later elements right.
// i outside [0, Len()] is a caller bug and panics.
func (v *Vec[E]) Insert(i int, x E) {
	if i < 0 || i > len(v.xs) {
		panic("hkt: insert index out of range")
	}
	v.xs = slices.Insert(v.xs, i, x)
}

// Remove deletes and returns the element at index i, shifting later
// elements left. i outside [0, Len()) is a caller bug and panics.
func (v *Vec[E]) Remove(i int) E {
	if i < 0 || i >= len(v.xs) {
		panic("hkt: remove index out of range")
	}
	x := v.xs[i]
	v.xs = slices.Delete(v.xs, i, i+1)
	return x
}

var (
	_ Sequence[int, SliceIterForm[int], *SliceIter[int]] = (*Vec[int])(nil)
	_ SequenceMut[int]                                   = (*Vec[int])(nil)
	_ WithCapacity[*Vec[int]]                            = (*Vec[int])(nil)
)
