// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

import (
	"sync"
	"sync/atomic"
)

var scopePool = sync.Pool{
	New: func() any { return new(Scope) },
}

// Scope is an explicit borrow window. A value plugged with a scope is
// valid exactly while the scope stays open; [Scope.Close] ends the
// window and invalidates every such value at once.
//
// Scopes are pooled. The mark counter is odd while the window is open
// and even while closed, and advances on every transition, so a mark
// recorded at plug time identifies one particular window even after the
// scope has been recycled and reopened.
type Scope struct {
	mark atomic.Uint64
}

// Static is the always-open scope, for values whose validity has no real
// window. Closing it panics.
var Static = func() *Scope {
	s := new(Scope)
	s.mark.Store(1)
	return s
}()

// NewScope opens a fresh borrow window, drawing the scope from a pool.
// The caller must Close it; [Scoped] bounds the window by a function
// call instead.
func NewScope() *Scope {
	s := scopePool.Get().(*Scope)
	s.mark.Add(1)
	return s
}

// Close ends the window. Every value plugged with this scope is invalid
// afterwards. Close is idempotent; the scope returns to the pool on the
// first call.
func (s *Scope) Close() {
	if s == Static {
		panic("hkt: close of the static scope")
	}
	for {
		m := s.mark.Load()
		if m&1 == 0 {
			return
		}
		if s.mark.CompareAndSwap(m, m+1) {
			scopePool.Put(s)
			return
		}
	}
}

// Alive reports whether the window is still open.
func (s *Scope) Alive() bool {
	return s.mark.Load()&1 == 1
}

// at reports whether mark identifies s's current open window.
// A zero mark (from a zero-valued borrow) never matches.
func (s *Scope) at(mark uint64) bool {
	return s != nil && mark&1 == 1 && s.mark.Load() == mark
}

// Scoped opens a pooled scope whose window is exactly the dynamic extent
// of f. The scope closes when f returns, even on panic.
func Scoped(f func(*Scope)) {
	s := NewScope()
	defer s.Close()
	f(s)
}

// ScopedValue is [Scoped] for functions with a result. The result must
// not retain anything plugged with the scope.
func ScopedValue[R any](f func(*Scope) R) R {
	s := NewScope()
	defer s.Close()
	return f(s)
}
