// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hkt emulates type constructors with open slots — higher-kinded
// types — on top of Go's fully saturated generics, and builds three
// capability-protocol families on that engine: borrowing iteration,
// linear sequences, and reference-counted boxes.
//
// Go generics are saturated: a type parameter must be a complete type,
// never "Vec awaiting an element type" or "a reference awaiting a borrow
// scope". hkt recovers the missing expressiveness by defunctionalization
// (Reynolds 1972): each constructor-with-a-slot is represented by a
// *form*, a small struct that captures the constructor's already-filled
// arguments and exposes the remaining slot as an operation.
//
// # Design Philosophy
//
// hkt provides:
//   - Minimal but complete protocols for slot plugging, borrowing
//     iteration, linear sequences, and counted boxes
//   - F-bounded polymorphism for compile-time dispatch where a protocol
//     operation returns the implementing type itself
//   - Defunctionalized forms with pooled, allocation-conscious scope
//     handling on the iteration hot path
//
// # Forms and Slots
//
// A form is a partially applied type constructor. Two slot kinds exist,
// with one constraint each:
//
//   - [ScopeForm]: one open borrow-scope slot; Plug fills it at call time
//   - [TypeForm]: one open type slot; generic instantiation fills it at
//     compile time, and New witnesses the saturated constructor
//
// The two kinds are separate on purpose: a type slot resolves at
// instantiation and a scope slot at evaluation, so type slots always fill
// before scope slots and no ill-ordered form can be expressed. Both
// substitutions are total and referentially transparent; a form lacking
// the needed capability fails as an unsatisfied constraint at the first
// point of use, never at run time.
//
// By convention a form is named after the concrete shape it denotes with
// a Form suffix ([RefForm], [SliceIterForm], [RcForm], [ArcForm]); the
// slot kind is fixed by which constraint the form satisfies. [H0] is the
// degenerate zero-slot case.
//
// # Scopes
//
// Go has no borrow-scope polymorphism, so a scope is an explicit runtime
// window: [NewScope] opens one, [Scope.Close] ends it, and any value
// plugged with the scope is valid exactly while it stays open. Scopes are
// pooled; a value plugged with a scope records the scope's open-mark, so
// stale borrows stay detectable even after the scope is reused. Using a
// borrow outside its window is a caller bug and panics. [Static] is the
// always-open scope for values with no real window.
//
//   - [NewScope], [Scope.Close], [Scope.Alive]
//   - [Scoped], [ScopedValue]: window bounded by a function call
//   - [PlugScope], [PlugType]: the two substitution operations
//
// # Identity Form
//
// [H0] wraps an already-concrete value or type so it can stand anywhere a
// form is expected. Plugging a scope returns the wrapped value unchanged;
// plugging a type returns the argument unchanged. Both are idempotent
// under arbitrary repetition. This is how ordinary iterators, whose item
// type does not depend on a scope, satisfy the borrowing protocol with no
// extra code.
//
// # Borrowing Iteration
//
// [StreamingIterator] is an iterator whose item may borrow from the
// iterator's own storage. The caller supplies a fresh scope to every
// [StreamingIterator.Next] call; the item is computed by plugging that
// scope into the iterator's declared item form, so its validity window is
// exactly the window of the call. Once Next reports exhaustion, every
// later call reports exhaustion too.
//
//   - [SliceIter]: borrowing iterator over a slice, items are [Ref] views
//   - [FromSeq]: adapts a stdlib iter.Seq through the identity form
//   - [ForEach], [Fold]: drivers that open a pooled scope per advance
//
// # Linear Sequences
//
// [Indexed] is the minimal read surface (Len, comma-ok Get); [Sequence]
// adds the iterator form, tying the engine and the iteration protocol
// together: [Iter] plugs the caller's scope into the sequence's declared
// form. Derived read operations are package-level generics over the
// protocol: [IsEmpty], [First], [Last], [Contains], [ContainsFunc].
//
// [SequenceMut] is the mutable protocol (Cap, Grow, GrowExact, Clip,
// Clear, Push, Pop, Insert, Remove) and [WithCapacity] the preallocating
// constructor protocol. [Vec] adapts a growable array to all of them.
//
// # Reference-Counted Boxes
//
// [Rcb] and [WeakRcb] abstract "a box that counts references and can be
// downgraded to a non-owning observer" without committing to a counting
// strategy:
//
//   - [Rc]: non-atomic counts, handles confined to one goroutine
//   - [Arc]: atomic counts, linearizable clone/release/upgrade
//
// Both satisfy identical contracts; generic clients cannot tell which
// strategy they were given except by performance. [ArcWeak.Upgrade]
// succeeds iff its count check-and-increment is atomic with respect to
// concurrent releases — released storage is never resurrected.
//
// # Error Regimes
//
// Expected absence is a comma-ok result, always locally recoverable:
// Get out of range, Pop on empty, Upgrade on a dead observer, TryUnwrap
// with co-owners. Contract violations are caller bugs and panic with an
// "hkt:" prefixed message: out-of-range Insert or Remove, a borrow used
// outside its scope, a released box used again. Violations are never
// silently truncated into valid arguments.
//
// # Example
//
//	v := hkt.VecOf(1, 2, 3)
//	sum := 0
//	hkt.Scoped(func(s *hkt.Scope) {
//		it := v.Iter(s)
//		hkt.ForEach[hkt.Ref[int], hkt.RefForm[int]](it, func(r hkt.Ref[int]) {
//			sum += r.Get() // r is valid exactly for this visit
//		})
//	})
//	// sum == 6
package hkt
