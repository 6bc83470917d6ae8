// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Ref is a borrowed, read-only view of a T, bound to the borrow window
// it was plugged with. The zero Ref is bound to no window and panics on
// use.
type Ref[T any] struct {
	scope *Scope
	mark  uint64
	ptr   *T
}

// Get returns the referent. Using a borrow outside its window is a
// caller bug, not a recoverable state, and panics.
func (r Ref[T]) Get() T {
	if !r.scope.at(r.mark) {
		panic("hkt: borrow used outside its scope")
	}
	return *r.ptr
}

// Alive reports whether the view's window is still open.
func (r Ref[T]) Alive() bool {
	return r.scope.at(r.mark)
}

// RefForm is the borrowed-view constructor with its scope slot open:
// the referent is captured, the window is plugged later.
type RefForm[T any] struct {
	ptr *T
}

// Borrow captures p as a form awaiting a scope.
func Borrow[T any](p *T) RefForm[T] {
	return RefForm[T]{ptr: p}
}

// Plug fills the scope slot, yielding a view valid while s stays open.
// Plugging a closed scope is well-defined and yields a view that is
// already dead.
func (f RefForm[T]) Plug(s *Scope) Ref[T] {
	return Ref[T]{scope: s, mark: s.mark.Load(), ptr: f.ptr}
}

var _ ScopeForm[Ref[int]] = RefForm[int]{}
