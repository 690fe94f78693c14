// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Either represents a value that is either Left (error) or Right (success).
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations, short-circuiting on Left.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// EitherToOption converts an Either into an Option, dropping the Left value.
func EitherToOption[E, A any](e Either[E, A]) Option[A] {
	if e.isRight {
		return Some(e.right)
	}
	return None[A]()
}

// EitherMonad returns the inner-monad descriptor of Either with error
// type E. Erased values carry Either[E, Erased].
func EitherMonad[E any]() Monad {
	return Monad{
		Of: func(v Erased) Erased { return Right[E, Erased](v) },
		Bind: func(m Erased, f func(Erased) Erased) Erased {
			e := m.(Either[E, Erased])
			if v, ok := e.GetRight(); ok {
				return f(v)
			}
			l, _ := e.GetLeft()
			return Left[E, Erased](l)
		},
		Map: func(m Erased, f func(Erased) Erased) Erased {
			e := m.(Either[E, Erased])
			if v, ok := e.GetRight(); ok {
				return Right[E](f(v))
			}
			l, _ := e.GetLeft()
			return Left[E, Erased](l)
		},
	}
}
