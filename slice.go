// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// SliceIterForm is the slice-iterator constructor with its scope slot
// open: the viewed storage is captured, the iteration window is plugged
// later. This is the reusable form containers declare from [Sequence]
// without re-deriving the slot machinery; see [Vec.IterForm].
type SliceIterForm[E any] struct {
	xs []E
}

// SliceIterOver captures xs as a form awaiting an iteration scope.
func SliceIterOver[E any](xs []E) SliceIterForm[E] {
	return SliceIterForm[E]{xs: xs}
}

// Plug fills the scope slot, yielding an iterator valid while s stays
// open.
func (f SliceIterForm[E]) Plug(s *Scope) *SliceIter[E] {
	return &SliceIter[E]{scope: s, mark: s.mark.Load(), xs: f.xs}
}

var _ ScopeForm[*SliceIter[int]] = SliceIterForm[int]{}

// SliceIter is a borrowing iterator over a slice. Each item is a [Ref]
// view into the slice's storage, bound to the scope of the advance that
// produced it. The iterator itself is bound to the iteration window it
// was plugged with.
type SliceIter[E any] struct {
	scope *Scope
	mark  uint64
	xs    []E
	i     int
	done  bool
}

// Next yields a view of the next element, plugged with the caller's
// scope. After the first empty result every call returns the empty
// result. Advancing a non-exhausted iterator whose iteration window has
// closed is a caller bug and panics.
func (it *SliceIter[E]) Next(s *Scope) (Ref[E], bool) {
	if it.done {
		return Ref[E]{}, false
	}
	if !it.scope.at(it.mark) {
		panic("hkt: iterator used outside its scope")
	}
	if it.i >= len(it.xs) {
		it.done = true
		return Ref[E]{}, false
	}
	r := Borrow(&it.xs[it.i]).Plug(s)
	it.i++
	return r, true
}

var _ StreamingIterator[RefForm[int], Ref[int]] = (*SliceIter[int])(nil)
