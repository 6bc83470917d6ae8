// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// ScopeForm is the constraint for forms with one open borrow-scope slot.
// A form is a defunctionalized partial application: every argument of
// the underlying constructor except the scope is captured in the form
// value, and Plug fills the last slot.
//
// F-bounded usage ties a form type to its result type at a use site:
//
//	func Iter[E any, IF ScopeForm[IT], IT any](seq Sequence[E, IF, IT], s *Scope) IT
type ScopeForm[T any] interface {
	// Plug fills the scope slot, yielding the value the saturated form
	// denotes. Plug is total over every scope, closed ones included,
	// and referentially transparent: plugging the same form with the
	// same scope twice yields indistinguishable values.
	Plug(*Scope) T
}

// TypeForm is the constraint for forms whose single open slot is a type
// slot. Instantiating the form's type parameter fills the slot; New
// witnesses the saturated constructor by building the concrete type C
// the form denotes. Type slots resolve at compile time, before any
// scope slot can be plugged.
type TypeForm[T, C any] interface {
	// New constructs the concrete type from an initial value.
	New(T) C
}

// PlugScope fills f's scope slot with s. It is the generic scope
// substitution operation, valid for any form declaring a scope slot.
func PlugScope[T any, F ScopeForm[T]](f F, s *Scope) T {
	return f.Plug(s)
}

// PlugType drives f's saturated constructor with v. The type slot itself
// was filled when F was instantiated; PlugType is the generic type
// substitution made observable at the value level.
func PlugType[T, C any, F TypeForm[T, C]](f F, v T) C {
	return f.New(v)
}
