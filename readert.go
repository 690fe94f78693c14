// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Environment-transformer: layers environment dependency over an
// arbitrary inner monad.
//
// ReaderT[E, A] represents Env -> M<A>: a function, not a wrapped value.
// Evaluation is deferred until Run is given an environment. The
// environment is erased internally so a ReaderT stack has the same
// representation as values built through [ReaderTMonad].

// ReaderT is an environment-dependent computation over an inner monad.
type ReaderT[E, A any] struct {
	inner Monad
	run   func(Erased) Erased
}

// ReaderTOf lifts a pure value into ReaderT. The environment is ignored
// entirely: every Run yields the same inner value.
func ReaderTOf[E, A any](inner Monad, a A) ReaderT[E, A] {
	return ReaderT[E, A]{inner: inner, run: func(_ Erased) Erased {
		return inner.Of(a)
	}}
}

// ReaderTFrom wraps a caller-supplied Env -> M<A> directly.
func ReaderTFrom[E, A any](inner Monad, f func(E) Erased) ReaderT[E, A] {
	return ReaderT[E, A]{inner: inner, run: func(env Erased) Erased {
		return f(env.(E))
	}}
}

// ReaderTLift converts an inner value M<A> into a constant function of
// the environment.
func ReaderTLift[E, A any](inner Monad, m Erased) ReaderT[E, A] {
	return ReaderT[E, A]{inner: inner, run: func(_ Erased) Erased {
		return m
	}}
}

// ReaderTAsk yields the environment itself.
func ReaderTAsk[E any](inner Monad) ReaderT[E, E] {
	return ReaderT[E, E]{inner: inner, run: func(env Erased) Erased {
		return inner.Of(env)
	}}
}

// ReaderTMap applies a function to the result. Environment application
// is deferred; the inner value is mapped once Run supplies one.
func ReaderTMap[E, A, B any](r ReaderT[E, A], f func(A) B) ReaderT[E, B] {
	return ReaderT[E, B]{inner: r.inner, run: func(env Erased) Erased {
		return r.inner.mapv(r.run(env), func(a Erased) Erased {
			return f(a.(A))
		})
	}}
}

// ReaderTBind sequences two environment-dependent computations. The same
// environment value is threaded to both the original computation and
// every continuation; only [ReaderTLocal] may vary it.
func ReaderTBind[E, A, B any](r ReaderT[E, A], f func(A) ReaderT[E, B]) ReaderT[E, B] {
	return ReaderT[E, B]{inner: r.inner, run: func(env Erased) Erased {
		return r.inner.Bind(r.run(env), func(a Erased) Erased {
			return f(a.(A)).run(env)
		})
	}}
}

// ReaderTLocal runs r under an environment transformed by f, for that
// sub-computation only. The outer environment is untouched.
func ReaderTLocal[E, A any](f func(E) E, r ReaderT[E, A]) ReaderT[E, A] {
	return ReaderT[E, A]{inner: r.inner, run: func(env Erased) Erased {
		return r.run(f(env.(E)))
	}}
}

// Run applies the environment and unwraps to the inner-monad value M<A>.
func (r ReaderT[E, A]) Run(env E) Erased {
	return r.run(env)
}

// Inner returns the inner-monad descriptor this computation was built
// over.
func (r ReaderT[E, A]) Inner() Monad {
	return r.inner
}

// RunReader runs a ReaderT built over the identity monad.
func RunReader[E, A any](r ReaderT[E, A], env E) A {
	return r.run(env).(A)
}

// ReaderTMonad returns the descriptor of the combined monad
// Env -> M<_>, so a ReaderT stack can itself serve as the inner monad of
// a further transformer. Erased values carry func(Erased) Erased.
func ReaderTMonad(inner Monad) Monad {
	return Monad{
		Of: func(v Erased) Erased {
			return func(_ Erased) Erased { return inner.Of(v) }
		},
		Bind: func(m Erased, f func(Erased) Erased) Erased {
			r := m.(func(Erased) Erased)
			return func(env Erased) Erased {
				return inner.Bind(r(env), func(a Erased) Erased {
					next := f(a).(func(Erased) Erased)
					return next(env)
				})
			}
		},
		Map: func(m Erased, f func(Erased) Erased) Erased {
			r := m.(func(Erased) Erased)
			return func(env Erased) Erased {
				return inner.mapv(r(env), f)
			}
		},
	}
}
