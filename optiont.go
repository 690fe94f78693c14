// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Optional-transformer: layers optionality over an arbitrary inner monad.
//
// OptionT[A] wraps an inner-monad value of shape M<Option[Erased]>, where
// the erased slot holds an A. The leaf type A is phantom on the public
// surface; only this layer asserts it.

// OptionT is an optional computation over an inner monad.
type OptionT[A any] struct {
	inner Monad
	m     Erased
}

// OptionTOf lifts a pure value into OptionT as present.
func OptionTOf[A any](inner Monad, a A) OptionT[A] {
	return OptionT[A]{inner: inner, m: inner.Of(Some[Erased](a))}
}

// OptionTFrom wraps an already-built inner value of shape
// M<Option[Erased]> directly.
func OptionTFrom[A any](inner Monad, m Erased) OptionT[A] {
	return OptionT[A]{inner: inner, m: m}
}

// OptionTLift converts an inner value M<A> into M<Option[A]> by wrapping
// every contained value in Some.
func OptionTLift[A any](inner Monad, m Erased) OptionT[A] {
	lifted := inner.mapv(m, func(a Erased) Erased { return Some(a) })
	return OptionT[A]{inner: inner, m: lifted}
}

// OptionTMap applies a function to the contained value when present.
// Absent values pass through untouched.
func OptionTMap[A, B any](t OptionT[A], f func(A) B) OptionT[B] {
	out := t.inner.mapv(t.m, func(v Erased) Erased {
		o := v.(Option[Erased])
		if a, ok := o.Get(); ok {
			return Some[Erased](f(a.(A)))
		}
		return None[Erased]()
	})
	return OptionT[B]{inner: t.inner, m: out}
}

// OptionTBind sequences two optional computations. Once the optional
// layer is absent, f is never invoked and the chain yields absent wrapped
// in whatever effects the inner monad accumulated so far.
func OptionTBind[A, B any](t OptionT[A], f func(A) OptionT[B]) OptionT[B] {
	out := t.inner.Bind(t.m, func(v Erased) Erased {
		o := v.(Option[Erased])
		if a, ok := o.Get(); ok {
			return f(a.(A)).m
		}
		return t.inner.Of(None[Erased]())
	})
	return OptionT[B]{inner: t.inner, m: out}
}

// OptionTGetOrElse replaces an absent value with def, collapsing the
// optional layer into the inner monad.
func OptionTGetOrElse[A any](t OptionT[A], def A) Erased {
	return t.inner.mapv(t.m, func(v Erased) Erased {
		o := v.(Option[Erased])
		if a, ok := o.Get(); ok {
			return a
		}
		return def
	})
}

// Run unwraps to the inner-monad value of shape M<Option[Erased]>.
func (t OptionT[A]) Run() Erased {
	return t.m
}

// Inner returns the inner-monad descriptor this computation was built
// over.
func (t OptionT[A]) Inner() Monad {
	return t.inner
}

// RunOption runs an OptionT built over the identity monad.
func RunOption[A any](t OptionT[A]) Option[A] {
	o := t.m.(Option[Erased])
	if a, ok := o.Get(); ok {
		return Some(a.(A))
	}
	return None[A]()
}

// OptionTMonad returns the descriptor of the combined monad
// M<Option[_]>, so an OptionT stack can itself serve as the inner monad
// of a further transformer.
func OptionTMonad(inner Monad) Monad {
	return Monad{
		Of: func(v Erased) Erased {
			return inner.Of(Some[Erased](v))
		},
		Bind: func(m Erased, f func(Erased) Erased) Erased {
			return inner.Bind(m, func(v Erased) Erased {
				o := v.(Option[Erased])
				if a, ok := o.Get(); ok {
					return f(a)
				}
				return inner.Of(None[Erased]())
			})
		},
		Map: func(m Erased, f func(Erased) Erased) Erased {
			return inner.mapv(m, func(v Erased) Erased {
				o := v.(Option[Erased])
				if a, ok := o.Get(); ok {
					return Some(f(a))
				}
				return None[Erased]()
			})
		},
	}
}
