// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Option represents an optional value: Some (present) or None (absent).
type Option[A any] struct {
	value   A
	present bool
}

// Some creates a present Option.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, present: true}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the Option holds a value.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is absent.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOrElse returns the value when present, def otherwise.
func (o Option[A]) GetOrElse(def A) A {
	if o.present {
		return o.value
	}
	return def
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[A, T any](o Option[A], onSome func(A) T, onNone func() T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the value when present.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}

// BindOption sequences two optional computations, short-circuiting on None.
func BindOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.present {
		return f(o.value)
	}
	return None[B]()
}

// OptionToEither converts an Option into an Either, using e for the
// absent case.
func OptionToEither[E, A any](o Option[A], e E) Either[E, A] {
	if o.present {
		return Right[E](o.value)
	}
	return Left[E, A](e)
}

// OptionMonad returns the inner-monad descriptor of Option.
// Erased values carry Option[Erased].
func OptionMonad() Monad {
	return Monad{
		Of: func(v Erased) Erased { return Some[Erased](v) },
		Bind: func(m Erased, f func(Erased) Erased) Erased {
			o := m.(Option[Erased])
			if v, ok := o.Get(); ok {
				return f(v)
			}
			return None[Erased]()
		},
		Map: func(m Erased, f func(Erased) Erased) Erased {
			o := m.(Option[Erased])
			if v, ok := o.Get(); ok {
				return Some(f(v))
			}
			return None[Erased]()
		},
	}
}
