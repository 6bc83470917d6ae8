// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// H0 is the identity form: an already-concrete value or type standing
// where a form is expected. It has zero open slots, so both substitution
// axes are the identity and applying either any number of times always
// yields exactly T.
//
// H0 lets ordinary, scope-independent constructs flow through the same
// generic machinery as real forms; see [FromSeq] for the canonical use.
type H0[T any] struct {
	// Value is returned unchanged by every Plug.
	Value T
}

// H0Of wraps v in its identity form.
func H0Of[T any](v T) H0[T] {
	return H0[T]{Value: v}
}

// Plug fills the scope slot. The scope is ignored: the wrapped value is
// already concrete.
func (h H0[T]) Plug(*Scope) T {
	return h.Value
}

// New fills the type slot. Likewise the identity: the argument comes
// back unchanged.
func (H0[T]) New(v T) T {
	return v
}

var (
	_ ScopeForm[int]     = H0[int]{}
	_ TypeForm[int, int] = H0[int]{}
)
