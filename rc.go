// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// rcInner is the storage shared by one Rc family.
type rcInner[T any] struct {
	strong int
	value  T
}

// Rc is the single-goroutine counting strategy for the [Rcb] protocol:
// counts are plain ints with no synchronization. All handles of one
// family must stay on the goroutine that created them; this precondition
// is documented, not checked. For handles that cross goroutines use
// [Arc].
type Rc[T any] struct {
	inner *rcInner[T]
	dead  bool
}

// NewRc boxes v with a count of one.
func NewRc[T any](v T) *Rc[T] {
	return &Rc[T]{inner: &rcInner[T]{strong: 1, value: v}}
}

// RcForm is the [Rc] constructor with its type slot open. Instantiating
// the parameter fills the slot; New builds the box the saturated form
// denotes.
type RcForm[T any] struct{}

// New implements the type-form constructor witness.
func (RcForm[T]) New(v T) *Rc[T] {
	return NewRc(v)
}

func (r *Rc[T]) live() {
	if r.dead || r.inner == nil || r.inner.strong == 0 {
		panic("hkt: use of released box")
	}
}

// Clone returns a new handle jointly owning the same storage.
func (r *Rc[T]) Clone() *Rc[T] {
	r.live()
	r.inner.strong++
	return &Rc[T]{inner: r.inner}
}

// Deref returns the boxed value.
func (r *Rc[T]) Deref() *T {
	r.live()
	return &r.inner.value
}

// TryUnwrap moves the value out iff r is the sole strong handle,
// consuming r. On failure nothing changes.
func (r *Rc[T]) TryUnwrap() (T, bool) {
	r.live()
	if r.inner.strong != 1 {
		var zero T
		return zero, false
	}
	r.dead = true
	r.inner.strong = 0
	v := r.inner.value
	var zero T
	r.inner.value = zero
	return v, true
}

// Downgrade returns a non-owning observer of r's storage.
func (r *Rc[T]) Downgrade() *RcWeak[T] {
	r.live()
	return &RcWeak[T]{inner: r.inner}
}

// Release drops this handle. When the count reaches zero the value is
// released and observers go dead.
func (r *Rc[T]) Release() {
	r.live()
	r.dead = true
	r.inner.strong--
	if r.inner.strong == 0 {
		var zero T
		r.inner.value = zero
	}
}

// StrongCount returns the number of outstanding strong handles.
func (r *Rc[T]) StrongCount() int {
	r.live()
	return r.inner.strong
}

// RcWeak is the non-owning observer for [Rc]. It does not keep the value
// alive; the zero RcWeak observes nothing.
type RcWeak[T any] struct {
	inner *rcInner[T]
}

// Upgrade returns a new strong handle; ok is false iff no strong handle
// is outstanding.
func (w *RcWeak[T]) Upgrade() (*Rc[T], bool) {
	if w.inner == nil || w.inner.strong == 0 {
		return nil, false
	}
	w.inner.strong++
	return &Rc[T]{inner: w.inner}, true
}

var (
	_ Rcb[*Rc[int], *RcWeak[int], int] = (*Rc[int])(nil)
	_ WeakRcb[*Rc[int], int]           = (*RcWeak[int])(nil)
	_ TypeForm[int, *Rc[int]]          = RcForm[int]{}
)
