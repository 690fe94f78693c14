// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Reader represents a computation reading a shared environment.
// Reader[E, A] computes a value of type A from an environment of type E.
type Reader[E, A any] func(env E) A

// ReaderOf lifts a pure value into a Reader that ignores its environment.
func ReaderOf[E, A any](a A) Reader[E, A] {
	return func(_ E) A { return a }
}

// Ask returns the Reader that yields the environment itself.
func Ask[E any]() Reader[E, E] {
	return func(env E) E { return env }
}

// Run applies the Reader to an environment.
func (r Reader[E, A]) Run(env E) A {
	return r(env)
}

// MapReader applies a function to the result of a Reader.
func MapReader[E, A, B any](r Reader[E, A], f func(A) B) Reader[E, B] {
	return func(env E) B { return f(r(env)) }
}

// BindReader sequences two Reader computations. The same environment is
// threaded to both.
func BindReader[E, A, B any](r Reader[E, A], f func(A) Reader[E, B]) Reader[E, B] {
	return func(env E) B { return f(r(env))(env) }
}

// LocalReader runs r under an environment transformed by f. The outer
// environment is untouched.
func LocalReader[E, A any](f func(E) E, r Reader[E, A]) Reader[E, A] {
	return func(env E) A { return r(f(env)) }
}

// ReaderMonad returns the inner-monad descriptor of Reader. Erased values
// carry func(Erased) Erased, with the environment erased alongside the
// result.
func ReaderMonad() Monad {
	return Monad{
		Of: func(v Erased) Erased {
			return func(_ Erased) Erased { return v }
		},
		Bind: func(m Erased, f func(Erased) Erased) Erased {
			r := m.(func(Erased) Erased)
			return func(env Erased) Erased {
				next := f(r(env)).(func(Erased) Erased)
				return next(env)
			}
		},
		Map: func(m Erased, f func(Erased) Erased) Erased {
			r := m.(func(Erased) Erased)
			return func(env Erased) Erased { return f(r(env)) }
		},
	}
}
