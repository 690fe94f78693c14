// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Log-transformer: layers log accumulation over an arbitrary inner monad.
//
// WriterT[W, A] wraps an inner-monad value of shape M<Pair[Erased, W]>,
// parameterized by a monoid over W. Logs combine strictly left-to-right:
// in a Bind chain the original log always precedes the continuation's.

// WriterT is a log-accumulating computation over an inner monad.
type WriterT[W, A any] struct {
	inner Monad
	mon   Monoid[W]
	m     Erased
}

// WriterTOf lifts a pure value into WriterT with an empty log.
func WriterTOf[W, A any](inner Monad, mon Monoid[W], a A) WriterT[W, A] {
	return WriterT[W, A]{inner: inner, mon: mon, m: inner.Of(Pair[Erased, W]{Fst: a, Snd: mon.Empty})}
}

// WriterTFrom wraps an already-built inner value of shape
// M<Pair[Erased, W]> directly.
func WriterTFrom[W, A any](inner Monad, mon Monoid[W], m Erased) WriterT[W, A] {
	return WriterT[W, A]{inner: inner, mon: mon, m: m}
}

// WriterTLift converts an inner value M<A> into M<Pair[A, empty]>.
func WriterTLift[W, A any](inner Monad, mon Monoid[W], m Erased) WriterT[W, A] {
	lifted := inner.mapv(m, func(a Erased) Erased {
		return Pair[Erased, W]{Fst: a, Snd: mon.Empty}
	})
	return WriterT[W, A]{inner: inner, mon: mon, m: lifted}
}

// WriterTTell records w and yields Unit.
func WriterTTell[W any](inner Monad, mon Monoid[W], w W) WriterT[W, Unit] {
	return WriterT[W, Unit]{inner: inner, mon: mon, m: inner.Of(Pair[Erased, W]{Fst: Unit{}, Snd: w})}
}

// WriterTMap applies a function to the value, leaving the log untouched.
func WriterTMap[W, A, B any](t WriterT[W, A], f func(A) B) WriterT[W, B] {
	out := t.inner.mapv(t.m, func(v Erased) Erased {
		p := v.(Pair[Erased, W])
		return Pair[Erased, W]{Fst: f(p.Fst.(A)), Snd: p.Snd}
	})
	return WriterT[W, B]{inner: t.inner, mon: t.mon, m: out}
}

// WriterTBind sequences two log-accumulating computations. The final log
// is Concat(w, w2): the original log, then the continuation's.
func WriterTBind[W, A, B any](t WriterT[W, A], f func(A) WriterT[W, B]) WriterT[W, B] {
	out := t.inner.Bind(t.m, func(v Erased) Erased {
		p := v.(Pair[Erased, W])
		next := f(p.Fst.(A))
		return t.inner.mapv(next.m, func(v2 Erased) Erased {
			q := v2.(Pair[Erased, W])
			return Pair[Erased, W]{Fst: q.Fst, Snd: t.mon.Concat(p.Snd, q.Snd)}
		})
	})
	return WriterT[W, B]{inner: t.inner, mon: t.mon, m: out}
}

// WriterTListen exposes the log accumulated so far alongside the value.
// The log itself is unchanged.
func WriterTListen[W, A any](t WriterT[W, A]) WriterT[W, Pair[A, W]] {
	out := t.inner.mapv(t.m, func(v Erased) Erased {
		p := v.(Pair[Erased, W])
		return Pair[Erased, W]{Fst: Pair[A, W]{Fst: p.Fst.(A), Snd: p.Snd}, Snd: p.Snd}
	})
	return WriterT[W, Pair[A, W]]{inner: t.inner, mon: t.mon, m: out}
}

// WriterTCensor applies a function to the log accumulated so far. The
// value is unchanged.
func WriterTCensor[W, A any](t WriterT[W, A], f func(W) W) WriterT[W, A] {
	out := t.inner.mapv(t.m, func(v Erased) Erased {
		p := v.(Pair[Erased, W])
		return Pair[Erased, W]{Fst: p.Fst, Snd: f(p.Snd)}
	})
	return WriterT[W, A]{inner: t.inner, mon: t.mon, m: out}
}

// Run unwraps to the inner-monad value of shape M<Pair[Erased, W]>.
func (t WriterT[W, A]) Run() Erased {
	return t.m
}

// Inner returns the inner-monad descriptor this computation was built
// over.
func (t WriterT[W, A]) Inner() Monad {
	return t.inner
}

// LogMonoid returns the monoid this computation accumulates with.
func (t WriterT[W, A]) LogMonoid() Monoid[W] {
	return t.mon
}

// RunWriter runs a WriterT built over the identity monad, returning the
// value and the accumulated log.
func RunWriter[W, A any](t WriterT[W, A]) (A, W) {
	p := t.m.(Pair[Erased, W])
	return p.Fst.(A), p.Snd
}

// WriterTMonad returns the descriptor of the combined monad
// M<(_, W)>, so a WriterT stack can itself serve as the inner monad of a
// further transformer.
func WriterTMonad[W any](mon Monoid[W], inner Monad) Monad {
	return Monad{
		Of: func(v Erased) Erased {
			return inner.Of(Pair[Erased, W]{Fst: v, Snd: mon.Empty})
		},
		Bind: func(m Erased, f func(Erased) Erased) Erased {
			return inner.Bind(m, func(v Erased) Erased {
				p := v.(Pair[Erased, W])
				return inner.mapv(f(p.Fst), func(v2 Erased) Erased {
					q := v2.(Pair[Erased, W])
					return Pair[Erased, W]{Fst: q.Fst, Snd: mon.Concat(p.Snd, q.Snd)}
				})
			})
		},
		Map: func(m Erased, f func(Erased) Erased) Erased {
			return inner.mapv(m, func(v Erased) Erased {
				p := v.(Pair[Erased, W])
				return Pair[Erased, W]{Fst: f(p.Fst), Snd: p.Snd}
			})
		},
	}
}
