// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Prebuilt two-layer stacks and combined runners. These avoid assembling
// descriptor chains and unwrapping erased layers by hand for the common
// pairings.

// OptionOverEither returns the descriptor of OptionT stacked over
// EitherT over the identity monad. Values have shape
// Either[E, Option[_]]: an absent outer layer and a Left inner layer are
// distinct outcomes.
func OptionOverEither[E any]() Monad {
	return OptionTMonad(EitherTMonad[E](IdentityMonad()))
}

// EitherOverWriter returns the descriptor of EitherT stacked over
// WriterT over the identity monad. Values have shape
// (Either[E, _], W): logs accumulate even across a failure.
func EitherOverWriter[E, W any](mon Monoid[W]) Monad {
	return EitherTMonad[E](WriterTMonad(mon, IdentityMonad()))
}

// WriterOverReader returns the descriptor of WriterT stacked over
// ReaderT over the identity monad. Values have shape Env -> (_, W).
func WriterOverReader[W any](mon Monoid[W]) Monad {
	return WriterTMonad(mon, ReaderTMonad(IdentityMonad()))
}

// RunOptionEither runs an OptionT built over EitherT over the identity
// monad to its two-layer result.
func RunOptionEither[E, A any](t OptionT[A]) Either[E, Option[A]] {
	e := t.m.(Either[E, Erased])
	if v, ok := e.GetRight(); ok {
		o := v.(Option[Erased])
		if a, ok2 := o.Get(); ok2 {
			return Right[E](Some(a.(A)))
		}
		return Right[E](None[A]())
	}
	l, _ := e.GetLeft()
	return Left[E, Option[A]](l)
}

// RunEitherWriter runs an EitherT built over WriterT over the identity
// monad, returning the two-layer result and the accumulated log.
func RunEitherWriter[E, W, A any](t EitherT[E, A]) (Either[E, A], W) {
	p := t.m.(Pair[Erased, W])
	return UnwrapEither[E, A](p.Fst), p.Snd
}

// RunWriterReader runs a WriterT built over ReaderT over the identity
// monad with the given environment, returning the value and the log.
func RunWriterReader[W, E, A any](t WriterT[W, A], env E) (A, W) {
	r := t.m.(func(Erased) Erased)
	p := r(env).(Pair[Erased, W])
	return p.Fst.(A), p.Snd
}

// UnwrapOption recovers a typed Option from an erased OptionT payload.
func UnwrapOption[A any](v Erased) Option[A] {
	o := v.(Option[Erased])
	if a, ok := o.Get(); ok {
		return Some(a.(A))
	}
	return None[A]()
}

// UnwrapPair recovers a typed value-log pair from an erased WriterT
// payload.
func UnwrapPair[A, W any](v Erased) (A, W) {
	p := v.(Pair[Erased, W])
	return p.Fst.(A), p.Snd
}

// ApplyReader applies an environment to an erased ReaderT payload.
func ApplyReader[E any](v Erased, env E) Erased {
	return v.(func(Erased) Erased)(env)
}
