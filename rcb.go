// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Rcb is the strong-handle protocol for reference-counted boxes: a box
// that tracks how many handles own it and can be downgraded to a
// non-owning observer. B is the concrete strong handle type and W its
// weak observer; generic clients tie the knot at the use site:
//
//	func keep[B Rcb[B, W, T], W WeakRcb[B, T], T any](b B) { ... }
//
// Two counting strategies satisfy the protocol: [Rc] (non-atomic,
// single-goroutine) and [Arc] (atomic, cross-goroutine). Their external
// contracts are identical; generic clients cannot tell which strategy
// they were given except by performance.
//
// Release and TryUnwrap consume the handle: they must be performed by
// its sole owner, and using a handle after either is a caller bug and
// panics. Whether the non-consuming operations tolerate concurrent use
// of a single handle is the strategy's affair; [Arc] permits it, [Rc]
// permits no cross-goroutine use at all.
type Rcb[B, W, T any] interface {
	// Clone returns a new handle jointly owning the same storage,
	// incrementing the count. The storage is owned by every outstanding
	// handle together and released exactly when the last one drops.
	Clone() B
	// Deref returns the boxed value.
	Deref() *T
	// TryUnwrap moves the value out iff this is the sole outstanding
	// strong handle, consuming the handle. On failure ok is false and
	// nothing changes: the handle keeps its ownership and no data is
	// lost or duplicated.
	TryUnwrap() (T, bool)
	// Downgrade returns a non-owning observer that does not keep the
	// value alive.
	Downgrade() W
	// Release drops this handle, decrementing the count. When the count
	// reaches zero the value is released and outstanding observers go
	// dead.
	Release()
}

// WeakRcb is the weak-observer protocol: a non-owning counterpart of a
// strong handle that can check, at upgrade time, whether the box is
// still alive.
type WeakRcb[B, T any] interface {
	// Upgrade returns a new strong handle; ok is false iff no strong
	// handle is outstanding at the moment of the call. The count
	// check-and-increment is atomic with respect to concurrent
	// releases, so an upgrade never revives released storage.
	Upgrade() (B, bool)
}
