// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Lens is a total accessor into a product structure: Get reads the focus
// and Set returns a copy of the whole with the focus replaced. The
// subject is never mutated.
type Lens[S, A any] struct {
	Get func(S) A
	Set func(S, A) S
}

// Modify returns a copy of s with the focus transformed by f.
func (l Lens[S, A]) Modify(s S, f func(A) A) S {
	return l.Set(s, f(l.Get(s)))
}

// ComposeLens focuses through two lenses: outer into S, inner into the
// outer focus.
func ComposeLens[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		Get: func(s S) B {
			return inner.Get(outer.Get(s))
		},
		Set: func(s S, b B) S {
			return outer.Set(s, inner.Set(outer.Get(s), b))
		},
	}
}
