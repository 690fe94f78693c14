// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Prism is a partial accessor into a sum structure: Get reads the focus
// when the subject is in the matching case, Build constructs the whole
// from a focus value.
type Prism[S, A any] struct {
	Get   func(S) Option[A]
	Build func(A) S
}

// Set replaces the focus when the subject matches; otherwise s is
// returned unchanged.
func (p Prism[S, A]) Set(s S, a A) S {
	if p.Get(s).IsSome() {
		return p.Build(a)
	}
	return s
}

// Modify transforms the focus when the subject matches; otherwise s is
// returned unchanged.
func (p Prism[S, A]) Modify(s S, f func(A) A) S {
	if a, ok := p.Get(s).Get(); ok {
		return p.Build(f(a))
	}
	return s
}

// ComposePrism focuses through two prisms. The composite matches only
// when both match.
func ComposePrism[S, A, B any](outer Prism[S, A], inner Prism[A, B]) Prism[S, B] {
	return Prism[S, B]{
		Get: func(s S) Option[B] {
			return BindOption(outer.Get(s), inner.Get)
		},
		Build: func(b B) S {
			return outer.Build(inner.Build(b))
		},
	}
}

// Optional is a partial accessor reached through a whole: Get reads the
// focus when present, Set writes it back into the subject. Unlike Prism
// there is no Build, because the subject cannot be reconstructed from
// the focus alone.
type Optional[S, A any] struct {
	Get func(S) Option[A]
	Set func(S, A) S
}

// Modify transforms the focus when the subject matches; otherwise s is
// returned unchanged.
func (o Optional[S, A]) Modify(s S, f func(A) A) S {
	if a, ok := o.Get(s).Get(); ok {
		return o.Set(s, f(a))
	}
	return s
}

// ComposeLensPrism focuses through a lens into a sum case. The write
// path goes through the lens, so non-matching subjects pass unchanged.
func ComposeLensPrism[S, A, B any](outer Lens[S, A], inner Prism[A, B]) Optional[S, B] {
	return Optional[S, B]{
		Get: func(s S) Option[B] {
			return inner.Get(outer.Get(s))
		},
		Set: func(s S, b B) S {
			return outer.Set(s, inner.Set(outer.Get(s), b))
		},
	}
}
