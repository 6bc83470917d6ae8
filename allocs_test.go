// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt_test

import (
	"testing"

	"code.hybscloud.com/hkt"
)

var sinkInt int

func TestIdentityPlugAllocations(t *testing.T) {
	h := hkt.H0Of(42)
	allocs := testing.AllocsPerRun(100, func() {
		sinkInt = h.Plug(hkt.Static)
	})
	if allocs > 0 {
		t.Errorf("H0.Plug allocs = %v; want 0", allocs)
	}
}

func TestBorrowPlugAllocations(t *testing.T) {
	x := 7
	form := hkt.Borrow(&x)
	s := hkt.NewScope()
	defer s.Close()

	allocs := testing.AllocsPerRun(100, func() {
		sinkInt = form.Plug(s).Get()
	})
	if allocs > 0 {
		t.Errorf("RefForm.Plug+Get allocs = %v; want 0", allocs)
	}
}

func TestIteratorAdvanceAllocations(t *testing.T) {
	// Steady-state advance over a long-lived iterator: the per-call
	// scope comes from the pool and the item is a value, so the hot
	// path should not allocate.
	xs := make([]int, 1<<16)
	s := hkt.NewScope()
	defer s.Close()
	it := hkt.SliceIterOver(xs).Plug(s)

	allocs := testing.AllocsPerRun(1000, func() {
		cs := hkt.NewScope()
		r, ok := it.Next(cs)
		if ok {
			sinkInt = r.Get()
		}
		cs.Close()
	})
	if allocs > 0 {
		t.Errorf("SliceIter.Next allocs = %v; want 0", allocs)
	}
}

func TestArcCloneReleaseAllocations(t *testing.T) {
	base := hkt.NewArc(1)
	defer base.Release()

	// One allocation per clone: the handle itself.
	allocs := testing.AllocsPerRun(100, func() {
		base.Clone().Release()
	})
	if allocs > 1 {
		t.Errorf("Arc clone+release allocs = %v; want <= 1", allocs)
	}
}
