// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt_test

import (
	"math/rand/v2"
	"slices"
	"sync"
	"testing"

	"code.hybscloud.com/hkt"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// TestPropertyVecAgainstSliceModel: a random mix of Push, Pop, Insert,
// Remove, and Clear agrees with a plain slice at every step.
func TestPropertyVecAgainstSliceModel(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	v := hkt.VecOf[int]()
	var model []int

	for range propertyN {
		switch rng.IntN(5) {
		case 0:
			x := randInt(rng)
			v.Push(x)
			model = append(model, x)
		case 1:
			got, ok := v.Pop()
			if len(model) == 0 {
				if ok {
					t.Fatal("Pop on empty returned a value")
				}
			} else {
				want := model[len(model)-1]
				model = model[:len(model)-1]
				if !ok || got != want {
					t.Fatalf("Pop = %d, %v; want %d, true", got, ok, want)
				}
			}
		case 2:
			i := rng.IntN(len(model) + 1)
			x := randInt(rng)
			v.Insert(i, x)
			model = slices.Insert(model, i, x)
		case 3:
			if len(model) == 0 {
				continue
			}
			i := rng.IntN(len(model))
			got := v.Remove(i)
			want := model[i]
			model = slices.Delete(model, i, i+1)
			if got != want {
				t.Fatalf("Remove(%d) = %d, want %d", i, got, want)
			}
		case 4:
			if rng.IntN(50) != 0 {
				continue
			}
			v.Clear()
			model = model[:0]
		}

		if v.Len() != len(model) {
			t.Fatalf("Len = %d, model %d", v.Len(), len(model))
		}
		if first, ok := hkt.First[int](v); ok != (len(model) > 0) || (ok && first != model[0]) {
			t.Fatalf("First = %d, %v; model %v", first, ok, model)
		}
		if last, ok := hkt.Last[int](v); ok != (len(model) > 0) || (ok && last != model[len(model)-1]) {
			t.Fatalf("Last = %d, %v; model %v", last, ok, model)
		}
	}

	for i, want := range model {
		got, ok := v.Get(i)
		if !ok || got != want {
			t.Fatalf("Get(%d) = %d, %v; want %d, true", i, got, ok, want)
		}
	}
}

// TestPropertyInsertRemoveRoundTrip: Remove(i) after Insert(i, x)
// returns x and restores the original sequence.
func TestPropertyInsertRemoveRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(16)
		base := make([]int, n)
		for i := range base {
			base[i] = randInt(rng)
		}
		v := hkt.VecOf(base...)

		i := rng.IntN(n + 1)
		x := randInt(rng)
		v.Insert(i, x)
		if got := v.Remove(i); got != x {
			t.Fatalf("Remove(%d) = %d, want %d", i, got, x)
		}

		for j, want := range base {
			got, ok := v.Get(j)
			if !ok || got != want {
				t.Fatalf("Get(%d) = %d, %v; want %d, true", j, got, ok, want)
			}
		}
	}
}

// TestPropertyIterationMatchesStorage: the borrowing iterator visits
// exactly the stored elements in order, for random contents.
func TestPropertyIterationMatchesStorage(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 100 {
		n := rng.IntN(32)
		xs := make([]int, n)
		for i := range xs {
			xs[i] = randInt(rng)
		}
		v := hkt.VecOf(xs...)

		var got []int
		hkt.Scoped(func(s *hkt.Scope) {
			hkt.ForEach[hkt.Ref[int], hkt.RefForm[int]](v.Iter(s), func(r hkt.Ref[int]) {
				got = append(got, r.Get())
			})
		})
		if !slices.Equal(got, xs) {
			t.Fatalf("iteration = %v, want %v", got, xs)
		}
	}
}

// TestPropertyArcConcurrentCloneRelease: randomized clone/release bursts
// from many goroutines never lose or duplicate a count; the base handle
// ends as sole owner.
func TestPropertyArcConcurrentCloneRelease(t *testing.T) {
	const workers = 8

	base := hkt.NewArc(7)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(seed, 1))
			for range 200 {
				burst := make([]*hkt.Arc[int], 1+rng.IntN(4))
				for i := range burst {
					burst[i] = base.Clone()
				}
				rng.Shuffle(len(burst), func(i, j int) {
					burst[i], burst[j] = burst[j], burst[i]
				})
				for _, h := range burst {
					if *h.Deref() != 7 {
						panic("boxed value changed under clone/release")
					}
					h.Release()
				}
			}
		}(uint64(w))
	}
	wg.Wait()

	if got := base.StrongCount(); got != 1 {
		t.Fatalf("StrongCount = %d, want 1 after all bursts", got)
	}
	got, ok := base.TryUnwrap()
	if !ok || got != 7 {
		t.Fatalf("TryUnwrap = %d, %v; want 7, true", got, ok)
	}
}

// TestPropertyArcUpgradeRace: concurrent upgrades against a concurrent
// final release either fail cleanly or yield a handle whose storage is
// provably alive; released storage is never resurrected.
func TestPropertyArcUpgradeRace(t *testing.T) {
	const workers = 8

	base := hkt.NewArc(42)
	weak := base.Downgrade()

	var wg sync.WaitGroup
	start := make(chan struct{})
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for range 500 {
				up, ok := weak.Upgrade()
				if !ok {
					return
				}
				// While this handle is held the count is nonzero, so
				// the value cannot have been released.
				if *up.Deref() != 42 {
					panic("upgrade resurrected released storage")
				}
				up.Release()
			}
		}()
	}

	close(start)
	base.Release()
	wg.Wait()

	if _, ok := weak.Upgrade(); ok {
		t.Fatal("Upgrade succeeded after every strong handle dropped")
	}
}

// TestPropertyIdentityFormTransparent: routing random values through H0
// under random scopes is observationally the identity.
func TestPropertyIdentityFormTransparent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		x := randInt(rng)
		h := hkt.H0Of(x)
		got := hkt.ScopedValue(func(s *hkt.Scope) int {
			return h.Plug(s)
		})
		if got != x || h.Plug(hkt.Static) != x || h.New(got) != got {
			t.Fatalf("identity form disturbed %d", x)
		}
	}
}
