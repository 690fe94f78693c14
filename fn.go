// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

import "cmp"

// Unit is the informationless type, used where a computation yields no
// meaningful value.
type Unit = struct{}

// Compose is left-to-right function composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe threads a value through a sequence of same-type transformations.
func Pipe[A any](a A, fns ...func(A) A) A {
	for _, f := range fns {
		a = f(a)
	}
	return a
}

// Identity returns its argument unchanged.
func Identity[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and always yields a.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Flip swaps the arguments of a binary function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// Curry converts a binary function into a chain of unary functions.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Uncurry converts a chain of unary functions back into a binary function.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Not negates a predicate.
func Not[A any](p func(A) bool) func(A) bool {
	return func(a A) bool {
		return !p(a)
	}
}

// And conjoins two predicates.
func And[A any](p, q func(A) bool) func(A) bool {
	return func(a A) bool {
		return p(a) && q(a)
	}
}

// Or disjoins two predicates.
func Or[A any](p, q func(A) bool) func(A) bool {
	return func(a A) bool {
		return p(a) || q(a)
	}
}

// Clamp bounds v to the closed interval [lo, hi].
func Clamp[N cmp.Ordered](v, lo, hi N) N {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
