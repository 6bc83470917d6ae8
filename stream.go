// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

import "iter"

// StreamingIterator is the borrowing-iteration protocol: an iterator
// whose item may be borrowed from the iterator's own storage.
//
// IF is the declared item form with its scope slot open. The caller
// passes a fresh scope to every Next call and the item is produced by
// plugging that scope into IF, so the item's validity window is exactly
// the window of the scope — chosen per call, not fixed when the iterator
// type was declared.
//
// The protocol has two states, ready and exhausted. Once Next returns
// false the iterator is exhausted and every later call must return
// false; there is no resurrection.
//
// Ordinary iterators, whose item type does not depend on a scope,
// satisfy the protocol through the identity form [H0] with no extra
// code; see [FromSeq].
type StreamingIterator[IF ScopeForm[I], I any] interface {
	// Next advances the iterator. The returned item must not be used
	// after s closes.
	Next(s *Scope) (I, bool)
}

// SeqIter adapts an ordinary Go iterator to the borrowing protocol.
// Its items are owned, so the declared item form is [H0] and the
// per-call scope is irrelevant.
type SeqIter[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// FromSeq adapts seq. The adapter latches exhausted and releases the
// underlying pull iterator at the first empty result.
func FromSeq[T any](seq iter.Seq[T]) *SeqIter[T] {
	next, stop := iter.Pull(seq)
	return &SeqIter[T]{next: next, stop: stop}
}

// Next implements [StreamingIterator] with item form [H0].
func (it *SeqIter[T]) Next(s *Scope) (T, bool) {
	if it.done {
		var zero T
		return zero, false
	}
	v, ok := it.next()
	if !ok {
		it.done = true
		it.stop()
		var zero T
		return zero, false
	}
	return H0Of(v).Plug(s), true
}

// Stop releases the underlying pull iterator early and latches the
// adapter exhausted.
func (it *SeqIter[T]) Stop() {
	if !it.done {
		it.done = true
		it.stop()
	}
}

var _ StreamingIterator[H0[int], int] = (*SeqIter[int])(nil)

// ForEach drives it to exhaustion. Every advance opens a pooled scope
// that closes when f returns, so the item handed to f is valid exactly
// for the duration of the visit.
func ForEach[I any, IF ScopeForm[I], It StreamingIterator[IF, I]](it It, f func(I)) {
	for {
		s := NewScope()
		v, ok := it.Next(s)
		if !ok {
			s.Close()
			return
		}
		f(v)
		s.Close()
	}
}

// Fold drives it to exhaustion, threading an accumulator through f.
// Scope handling follows [ForEach]: the item passed to f dies when f
// returns, and must not be retained in the accumulator.
func Fold[R, I any, IF ScopeForm[I], It StreamingIterator[IF, I]](it It, init R, f func(R, I) R) R {
	acc := init
	for {
		s := NewScope()
		v, ok := it.Next(s)
		if !ok {
			s.Close()
			return acc
		}
		acc = f(acc, v)
		s.Close()
	}
}
