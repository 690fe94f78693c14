// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mtl provides monadic containers, monad transformers, and optics
// in Go.
//
// The core of the package is the transformer subsystem: four transformers
// that each layer one effect — optionality, failure, environment
// dependency, log accumulation — over an arbitrary inner monad, supplied
// as an explicit descriptor. Stacks of any depth are built by passing one
// transformer's combined descriptor as another's inner monad.
//
// # Design Philosophy
//
// mtl provides:
//   - First-class effect values: no exceptions, no mutable state, every
//     operation returns a freshly constructed immutable value
//   - A uniform Of/Bind/Map surface across containers and transformers
//   - Explicit descriptor passing in place of higher-kinded polymorphism,
//     with phantom leaf types on the typed surface
//
// # Inner-Monad Descriptor
//
// Any inner monad is represented by a [Monad] descriptor over type-erased
// values ([Erased]):
//
//   - [Monad]: operation triple {Of, Bind, Map}; Map may be nil
//   - [MapViaBind]: the derived map used when a descriptor omits Map
//   - [IdentityMonad]: the usual innermost monad of a stack
//
// Of and Bind must satisfy the monad laws; this is an unchecked caller
// responsibility, not a runtime-verified contract.
//
// # Base Containers
//
// Each base container supports Of-style construction, Map, Bind-style
// sequencing with its own short-circuit rule, and a descriptor
// constructor making it usable as an inner monad:
//
//   - [Option]: Some/None optional values — [MapOption], [BindOption],
//     [MatchOption], [OptionMonad]
//   - [Either]: Left/Right error results — [MapEither], [FlatMapEither],
//     [MapLeftEither], [MatchEither], [EitherMonad]
//   - [Reader]: environment-dependent computations — [Ask], [MapReader],
//     [BindReader], [LocalReader], [ReaderMonad]
//   - [Writer]: log-accumulating computations over a [Monoid] — [Tell],
//     [MapWriter], [BindWriter], [WriterMonad]
//
// Monoids: [StringMonoid], [SliceMonoid], [SumMonoid].
//
// # Transformers
//
// Each transformer exposes Of/From/Lift constructors, Map/Bind, Run, and
// a combined-monad descriptor for stacking:
//
// Optional-transformer, wrapping M<Option[_]>:
//
//   - [OptionTOf], [OptionTFrom], [OptionTLift]
//   - [OptionTMap], [OptionTBind], [OptionTGetOrElse]
//   - [OptionT.Run], [RunOption], [OptionTMonad]
//
// Error-transformer, wrapping M<Either[E, _]> with a fixed error type:
//
//   - [EitherTOf], [EitherTFrom], [EitherTLift]
//   - [EitherTMap], [EitherTBind], [EitherTMapLeft], [EitherTCatch]
//   - [EitherT.Run], [RunEither], [EitherTMonad]
//
// Environment-transformer, representing Env -> M<_>:
//
//   - [ReaderTOf], [ReaderTFrom], [ReaderTLift], [ReaderTAsk]
//   - [ReaderTMap], [ReaderTBind], [ReaderTLocal]
//   - [ReaderT.Run], [RunReader], [ReaderTMonad]
//
// Log-transformer, wrapping M<(_, W)> over a [Monoid]:
//
//   - [WriterTOf], [WriterTFrom], [WriterTLift], [WriterTTell]
//   - [WriterTMap], [WriterTBind], [WriterTListen], [WriterTCensor]
//   - [WriterT.Run], [RunWriter], [WriterTMonad]
//
// # Effect Ordering
//
// Once the optional layer is absent or the error layer is Left, no
// subsequently chained function is invoked; the first error encountered
// is the one observed at the end. ReaderT threads the same environment
// value through an entire Bind chain — [ReaderTLocal] is the only
// sanctioned way to vary it for a sub-computation. WriterT combines logs
// strictly left-to-right: Concat(w, w2), the original log first.
//
// # Stacking
//
// Combined descriptors compose freely: OptionTMonad(EitherTMonad[string](
// IdentityMonad())) is the inner monad of an optional-over-failable
// stack. Prebuilt pairings and runners:
//
//   - [OptionOverEither], [RunOptionEither]
//   - [EitherOverWriter], [RunEitherWriter]
//   - [WriterOverReader], [RunWriterReader]
//   - [UnwrapOption], [UnwrapEither], [UnwrapPair], [ApplyReader]
//
// # Optics
//
// Composable accessors into nested immutable structure:
//
//   - [Lens]: total accessor — Get, Set, [Lens.Modify], [ComposeLens]
//   - [Prism]: partial accessor — Get (returns [Option]), Build,
//     [Prism.Set], [Prism.Modify], [ComposePrism]
//   - [Optional]: lens-into-prism composite built by [ComposeLensPrism]
//
// # Utilities
//
//   - [Compose], [Pipe], [Identity], [Const], [Flip]
//   - [Curry], [Uncurry]
//   - [Not], [And], [Or], [Clamp]
//
// # Example
//
//	double := func(x int) int { return x * 2 }
//	t := mtl.OptionTMap(mtl.OptionTOf(mtl.IdentityMonad(), 5), double)
//	v := mtl.RunOption(t) // Some(10)
package mtl
