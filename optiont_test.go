// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/mtl"
)

func TestOptionTOfMapRun(t *testing.T) {
	id := mtl.IdentityMonad()

	out := mtl.OptionTMap(mtl.OptionTOf(id, 5), func(x int) int { return x * 2 })

	v, ok := mtl.RunOption(out).Get()
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestOptionTBindAbsentShortCircuits(t *testing.T) {
	id := mtl.IdentityMonad()
	invoked := false

	absent := mtl.OptionTFrom[int](id, mtl.None[mtl.Erased]())
	out := mtl.OptionTBind(absent, func(x int) mtl.OptionT[int] {
		invoked = true
		return mtl.OptionTOf(id, x+1)
	})

	assert.False(t, invoked, "continuation must not run once absent")
	assert.True(t, mtl.RunOption(out).IsNone())
}

func TestOptionTMapAbsentUntouched(t *testing.T) {
	id := mtl.IdentityMonad()
	invoked := false

	absent := mtl.OptionTFrom[int](id, mtl.None[mtl.Erased]())
	out := mtl.OptionTMap(absent, func(x int) int {
		invoked = true
		return x * 2
	})

	assert.False(t, invoked)
	assert.True(t, mtl.RunOption(out).IsNone())
}

func TestOptionTLift(t *testing.T) {
	id := mtl.IdentityMonad()

	out := mtl.OptionTLift[int](id, 7)

	v, ok := mtl.RunOption(out).Get()
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestOptionTFromWrapsDirectly(t *testing.T) {
	id := mtl.IdentityMonad()

	out := mtl.OptionTFrom[int](id, mtl.Some[mtl.Erased](3))

	v, ok := mtl.RunOption(out).Get()
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestOptionTGetOrElse(t *testing.T) {
	id := mtl.IdentityMonad()

	present := mtl.OptionTGetOrElse(mtl.OptionTOf(id, 5), 0)
	assert.Equal(t, 5, present)

	absent := mtl.OptionTGetOrElse(mtl.OptionTFrom[int](id, mtl.None[mtl.Erased]()), 9)
	assert.Equal(t, 9, absent)
}

// Inner-monad effects accumulated before the absent step must survive the
// short-circuit.
func TestOptionTOverWriterKeepsEarlierLogs(t *testing.T) {
	mon := mtl.StringMonoid()
	inner := mtl.WriterMonad(mon)

	first := mtl.OptionTFrom[int](inner, mtl.Pair[mtl.Erased, string]{Fst: mtl.Some[mtl.Erased](1), Snd: "one;"})
	out := mtl.OptionTBind(first, func(x int) mtl.OptionT[int] {
		return mtl.OptionTFrom[int](inner, mtl.Pair[mtl.Erased, string]{Fst: mtl.None[mtl.Erased](), Snd: "gone;"})
	})
	out = mtl.OptionTBind(out, func(x int) mtl.OptionT[int] {
		return mtl.OptionTFrom[int](inner, mtl.Pair[mtl.Erased, string]{Fst: mtl.Some[mtl.Erased](x), Snd: "never;"})
	})

	o, log := mtl.UnwrapPair[mtl.Option[mtl.Erased], string](out.Run())
	assert.True(t, o.IsNone())
	assert.Equal(t, "one;gone;", log)
}

func TestOptionTBindChain(t *testing.T) {
	id := mtl.IdentityMonad()

	out := mtl.OptionTBind(mtl.OptionTOf(id, 2), func(x int) mtl.OptionT[int] {
		return mtl.OptionTBind(mtl.OptionTOf(id, x*3), func(y int) mtl.OptionT[int] {
			return mtl.OptionTOf(id, y+1)
		})
	})

	v, ok := mtl.RunOption(out).Get()
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestOptionTInner(t *testing.T) {
	id := mtl.IdentityMonad()
	out := mtl.OptionTOf(id, 1)

	d := out.Inner()
	assert.Equal(t, 5, d.Of(5))
}
