// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt_test

import (
	"testing"

	"code.hybscloud.com/hkt"
)

// BenchmarkVecPush measures amortized append through the protocol.
func BenchmarkVecPush(b *testing.B) {
	v := hkt.VecOf[int]()
	for b.Loop() {
		v.Push(1)
		if v.Len() == 1<<20 {
			v.Clear()
		}
	}
}

// BenchmarkSliceIterAdvance measures one borrowing advance with a pooled
// per-call scope.
func BenchmarkSliceIterAdvance(b *testing.B) {
	xs := make([]int, 1<<16)
	s := hkt.NewScope()
	defer s.Close()
	it := hkt.SliceIterOver(xs).Plug(s)

	for b.Loop() {
		cs := hkt.NewScope()
		_, ok := it.Next(cs)
		cs.Close()
		if !ok {
			it = hkt.SliceIterOver(xs).Plug(s)
		}
	}
}

// BenchmarkForEach measures a full borrowing sweep.
func BenchmarkForEach(b *testing.B) {
	v := hkt.VecOf(make([]int, 1024)...)
	for b.Loop() {
		hkt.Scoped(func(s *hkt.Scope) {
			hkt.ForEach[hkt.Ref[int], hkt.RefForm[int]](v.Iter(s), func(r hkt.Ref[int]) {
				sinkInt = r.Get()
			})
		})
	}
}

// BenchmarkRcCloneRelease measures the non-atomic counting strategy.
func BenchmarkRcCloneRelease(b *testing.B) {
	base := hkt.NewRc(1)
	defer base.Release()
	for b.Loop() {
		base.Clone().Release()
	}
}

// BenchmarkArcCloneRelease measures the atomic counting strategy.
func BenchmarkArcCloneRelease(b *testing.B) {
	base := hkt.NewArc(1)
	defer base.Release()
	for b.Loop() {
		base.Clone().Release()
	}
}

// BenchmarkArcUpgrade measures the check-and-increment upgrade path.
func BenchmarkArcUpgrade(b *testing.B) {
	base := hkt.NewArc(1)
	defer base.Release()
	w := base.Downgrade()
	for b.Loop() {
		up, _ := w.Upgrade()
		up.Release()
	}
}
