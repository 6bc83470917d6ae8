// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

import "sync/atomic"

// arcInner is the storage shared by one Arc family.
type arcInner[T any] struct {
	strong atomic.Int64
	value  T
}

// Arc is the cross-goroutine counting strategy for the [Rcb] protocol.
// Increment, decrement, and the upgrade check-and-increment are
// linearizable: concurrent clone and release sequences never under- or
// over-count, and an upgrade never returns a handle to storage a
// concurrent release has already freed.
//
// Clone, Deref, Downgrade, and StrongCount may be called on one handle
// from many goroutines at once. Release and TryUnwrap consume the
// handle and must be performed by its sole owner.
type Arc[T any] struct {
	inner *arcInner[T]
	dead  bool
}

// NewArc boxes v with a count of one.
func NewArc[T any](v T) *Arc[T] {
	inner := &arcInner[T]{value: v}
	inner.strong.Store(1)
	return &Arc[T]{inner: inner}
}

// ArcForm is the [Arc] constructor with its type slot open. Instantiating
// the parameter fills the slot; New builds the box the saturated form
// denotes.
type ArcForm[T any] struct{}

// New implements the type-form constructor witness.
func (ArcForm[T]) New(v T) *Arc[T] {
	return NewArc(v)
}

func (a *Arc[T]) live() {
	if a.dead || a.inner == nil {
		panic("hkt: use of released box")
	}
}

// Clone returns a new handle jointly owning the same storage.
func (a *Arc[T]) Clone() *Arc[T] {
	a.live()
	a.inner.strong.Add(1)
	return &Arc[T]{inner: a.inner}
}

// Deref returns the boxed value.
func (a *Arc[T]) Deref() *T {
	a.live()
	return &a.inner.value
}

// TryUnwrap moves the value out iff a is the sole strong handle,
// consuming a. The sole-owner check and the count drop are a single
// compare-and-swap, so a concurrent clone through another handle can
// never race the unwrap. On failure nothing changes.
func (a *Arc[T]) TryUnwrap() (T, bool) {
	a.live()
	if !a.inner.strong.CompareAndSwap(1, 0) {
		var zero T
		return zero, false
	}
	a.dead = true
	v := a.inner.value
	var zero T
	a.inner.value = zero
	return v, true
}

// Downgrade returns a non-owning observer of a's storage.
func (a *Arc[T]) Downgrade() *ArcWeak[T] {
	a.live()
	return &ArcWeak[T]{inner: a.inner}
}

// Release drops this handle. The handle that takes the count to zero
// releases the value; observers then fail to upgrade.
func (a *Arc[T]) Release() {
	a.live()
	a.dead = true
	if a.inner.strong.Add(-1) == 0 {
		var zero T
		a.inner.value = zero
	}
}

// StrongCount returns the number of outstanding strong handles at the
// moment of the call.
func (a *Arc[T]) StrongCount() int64 {
	a.live()
	return a.inner.strong.Load()
}

// ArcWeak is the non-owning observer for [Arc]. It does not keep the
// value alive; the zero ArcWeak observes nothing.
type ArcWeak[T any] struct {
	inner *arcInner[T]
}

// Upgrade returns a new strong handle; ok is false iff no strong handle
// is outstanding at the moment of the call. The loop retries until the
// increment lands on the exact count it observed, so a count that has
// reached zero is never resurrected.
func (w *ArcWeak[T]) Upgrade() (*Arc[T], bool) {
	if w.inner == nil {
		return nil, false
	}
	for {
		n := w.inner.strong.Load()
		if n == 0 {
			return nil, false
		}
		if w.inner.strong.CompareAndSwap(n, n+1) {
			return &Arc[T]{inner: w.inner}, true
		}
	}
}

var (
	_ Rcb[*Arc[int], *ArcWeak[int], int] = (*Arc[int])(nil)
	_ WeakRcb[*Arc[int], int]            = (*ArcWeak[int])(nil)
	_ TypeForm[int, *Arc[int]]           = ArcForm[int]{}
)
