// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Monoid describes a log type W: an identity element and an associative
// combine operation.
//
// Concat must be associative and Empty must be its two-sided identity.
// The log-transformer's accumulation law holds for any grouping of a
// chain only under these conditions; they are an unchecked precondition.
type Monoid[W any] struct {
	Empty  W
	Concat func(W, W) W
}

// StringMonoid is the string-concatenation monoid.
func StringMonoid() Monoid[string] {
	return Monoid[string]{
		Empty:  "",
		Concat: func(a, b string) string { return a + b },
	}
}

// SliceMonoid is the slice-append monoid over element type T.
// Concat copies; neither argument is aliased by the result.
func SliceMonoid[T any]() Monoid[[]T] {
	return Monoid[[]T]{
		Concat: func(a, b []T) []T {
			out := make([]T, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// SumMonoid is the numeric addition monoid.
func SumMonoid[N ~int | ~int32 | ~int64 | ~float32 | ~float64]() Monoid[N] {
	return Monoid[N]{
		Concat: func(a, b N) N { return a + b },
	}
}

// Writer pairs a computed value with an accumulated log.
type Writer[W, A any] struct {
	Value A
	Log   W
}

// WriterOf lifts a pure value into a Writer with an empty log.
func WriterOf[W, A any](mon Monoid[W], a A) Writer[W, A] {
	return Writer[W, A]{Value: a, Log: mon.Empty}
}

// Tell creates a Writer that records w and yields Unit.
func Tell[W any](w W) Writer[W, Unit] {
	return Writer[W, Unit]{Log: w}
}

// MapWriter applies a function to the value, leaving the log untouched.
func MapWriter[W, A, B any](wr Writer[W, A], f func(A) B) Writer[W, B] {
	return Writer[W, B]{Value: f(wr.Value), Log: wr.Log}
}

// BindWriter sequences two Writer computations, concatenating logs
// left-to-right: the original log precedes the continuation's.
func BindWriter[W, A, B any](mon Monoid[W], wr Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	next := f(wr.Value)
	return Writer[W, B]{Value: next.Value, Log: mon.Concat(wr.Log, next.Log)}
}

// WriterMonad returns the inner-monad descriptor of Writer over the given
// monoid. Erased values carry Pair[Erased, W].
func WriterMonad[W any](mon Monoid[W]) Monad {
	return Monad{
		Of: func(v Erased) Erased {
			return Pair[Erased, W]{Fst: v, Snd: mon.Empty}
		},
		Bind: func(m Erased, f func(Erased) Erased) Erased {
			p := m.(Pair[Erased, W])
			q := f(p.Fst).(Pair[Erased, W])
			return Pair[Erased, W]{Fst: q.Fst, Snd: mon.Concat(p.Snd, q.Snd)}
		},
		Map: func(m Erased, f func(Erased) Erased) Erased {
			p := m.(Pair[Erased, W])
			return Pair[Erased, W]{Fst: f(p.Fst), Snd: p.Snd}
		},
	}
}
