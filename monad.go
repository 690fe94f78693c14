// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Inner-monad descriptor.
//
// Go has no higher-kinded types, so a transformer cannot be generic over
// the inner monad's type constructor. Instead the inner monad is passed
// as an explicit descriptor operating on type-erased values, and each
// transformer keeps the concrete leaf type as a phantom parameter on its
// public surface.

// Erased marks a type-erased value crossing the inner-monad boundary.
// Concrete types are recovered via type assertions by the layer that
// stored them.
type Erased = any

// Monad describes the operations of an inner monad over erased values.
//
// Of lifts a plain value, Bind sequences a value-producing continuation.
// Map is optional: when nil it is derived from Bind and Of (see
// [MapViaBind]). A supplied Map must agree with the derived one.
//
// Of and Bind must jointly satisfy the monad laws. A descriptor that
// violates them is an unchecked precondition violation: behavior of the
// transformers built on it is unspecified.
type Monad struct {
	Of   func(Erased) Erased
	Bind func(Erased, func(Erased) Erased) Erased
	Map  func(Erased, func(Erased) Erased) Erased
}

// mapv applies f inside m, preferring the descriptor's Map.
func (d Monad) mapv(m Erased, f func(Erased) Erased) Erased {
	if d.Map != nil {
		return d.Map(m, f)
	}
	return MapViaBind(d, m, f)
}

// MapViaBind derives a functor map from Bind and Of.
// For any lawful descriptor this is observably equivalent to a native Map.
func MapViaBind(d Monad, m Erased, f func(Erased) Erased) Erased {
	return d.Bind(m, func(a Erased) Erased { return d.Of(f(a)) })
}

// IdentityMonad returns the descriptor of the identity monad: values are
// carried as themselves, with no effect layer. It is the usual innermost
// monad of a transformer stack.
func IdentityMonad() Monad {
	return Monad{
		Of:   func(v Erased) Erased { return v },
		Bind: func(m Erased, f func(Erased) Erased) Erased { return f(m) },
		Map:  func(m Erased, f func(Erased) Erased) Erased { return f(m) },
	}
}
