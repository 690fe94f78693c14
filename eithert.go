// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Error-transformer: layers failure over an arbitrary inner monad.
//
// EitherT[E, A] wraps an inner-monad value of shape M<Either[E, Erased]>,
// with a fixed error type E and the success leaf held in the erased slot.

// EitherT is a failable computation over an inner monad.
type EitherT[E, A any] struct {
	inner Monad
	m     Erased
}

// EitherTOf lifts a pure value into EitherT as Right.
func EitherTOf[E, A any](inner Monad, a A) EitherT[E, A] {
	return EitherT[E, A]{inner: inner, m: inner.Of(Right[E, Erased](a))}
}

// EitherTFrom wraps an already-built inner value of shape
// M<Either[E, Erased]> directly.
func EitherTFrom[E, A any](inner Monad, m Erased) EitherT[E, A] {
	return EitherT[E, A]{inner: inner, m: m}
}

// EitherTLift converts an inner value M<A> into M<Either[E, A]> by
// wrapping every contained value in Right.
func EitherTLift[E, A any](inner Monad, m Erased) EitherT[E, A] {
	lifted := inner.mapv(m, func(a Erased) Erased { return Right[E](a) })
	return EitherT[E, A]{inner: inner, m: lifted}
}

// EitherTMap applies a function to the Right value. A Left passes through
// carrying its original error value.
func EitherTMap[E, A, B any](t EitherT[E, A], f func(A) B) EitherT[E, B] {
	out := t.inner.mapv(t.m, func(v Erased) Erased {
		e := v.(Either[E, Erased])
		if a, ok := e.GetRight(); ok {
			return Right[E, Erased](f(a.(A)))
		}
		return v
	})
	return EitherT[E, B]{inner: t.inner, m: out}
}

// EitherTBind sequences two failable computations. The first Left
// encountered short-circuits the chain: f is never invoked and the
// original error value is the one observed at the end.
func EitherTBind[E, A, B any](t EitherT[E, A], f func(A) EitherT[E, B]) EitherT[E, B] {
	out := t.inner.Bind(t.m, func(v Erased) Erased {
		e := v.(Either[E, Erased])
		if a, ok := e.GetRight(); ok {
			return f(a.(A)).m
		}
		return t.inner.Of(v)
	})
	return EitherT[E, B]{inner: t.inner, m: out}
}

// EitherTMapLeft transforms the error type. This is the only operation
// that changes an error value; Map and Bind never touch it.
func EitherTMapLeft[E, F, A any](t EitherT[E, A], f func(E) F) EitherT[F, A] {
	out := t.inner.mapv(t.m, func(v Erased) Erased {
		return MapLeftEither(v.(Either[E, Erased]), f)
	})
	return EitherT[F, A]{inner: t.inner, m: out}
}

// EitherTCatch recovers from a Left with a handler producing a new
// computation. A Right passes through untouched.
func EitherTCatch[E, A any](t EitherT[E, A], h func(E) EitherT[E, A]) EitherT[E, A] {
	out := t.inner.Bind(t.m, func(v Erased) Erased {
		e := v.(Either[E, Erased])
		if l, ok := e.GetLeft(); ok {
			return h(l).m
		}
		return t.inner.Of(v)
	})
	return EitherT[E, A]{inner: t.inner, m: out}
}

// Run unwraps to the inner-monad value of shape M<Either[E, Erased]>.
func (t EitherT[E, A]) Run() Erased {
	return t.m
}

// Inner returns the inner-monad descriptor this computation was built
// over.
func (t EitherT[E, A]) Inner() Monad {
	return t.inner
}

// RunEither runs an EitherT built over the identity monad.
func RunEither[E, A any](t EitherT[E, A]) Either[E, A] {
	return UnwrapEither[E, A](t.m)
}

// UnwrapEither recovers a typed Either from an erased EitherT payload.
func UnwrapEither[E, A any](v Erased) Either[E, A] {
	e := v.(Either[E, Erased])
	if a, ok := e.GetRight(); ok {
		return Right[E](a.(A))
	}
	l, _ := e.GetLeft()
	return Left[E, A](l)
}

// EitherTMonad returns the descriptor of the combined monad
// M<Either[E, _]>, so an EitherT stack can itself serve as the inner
// monad of a further transformer.
func EitherTMonad[E any](inner Monad) Monad {
	return Monad{
		Of: func(v Erased) Erased {
			return inner.Of(Right[E, Erased](v))
		},
		Bind: func(m Erased, f func(Erased) Erased) Erased {
			return inner.Bind(m, func(v Erased) Erased {
				e := v.(Either[E, Erased])
				if a, ok := e.GetRight(); ok {
					return f(a)
				}
				return inner.Of(v)
			})
		},
		Map: func(m Erased, f func(Erased) Erased) Erased {
			return inner.mapv(m, func(v Erased) Erased {
				e := v.(Either[E, Erased])
				if a, ok := e.GetRight(); ok {
					return Right[E](f(a))
				}
				return v
			})
		},
	}
}
