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

func TestOptionSome(t *testing.T) {
	o := mtl.Some(42)

	assert.True(t, o.IsSome())
	assert.False(t, o.IsNone())
	v, ok := o.Get()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, o.GetOrElse(0))
}

func TestOptionNone(t *testing.T) {
	o := mtl.None[int]()

	assert.True(t, o.IsNone())
	_, ok := o.Get()
	assert.False(t, ok)
	assert.Equal(t, 7, o.GetOrElse(7))
}

func TestOptionMap(t *testing.T) {
	double := func(x int) int { return x * 2 }

	mapped := mtl.MapOption(mtl.Some(21), double)
	v, ok := mapped.Get()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	assert.True(t, mtl.MapOption(mtl.None[int](), double).IsNone())
}

func TestOptionBind(t *testing.T) {
	nonNegSqrtish := func(x int) mtl.Option[int] {
		if x < 0 {
			return mtl.None[int]()
		}
		return mtl.Some(x + 1)
	}

	v, ok := mtl.BindOption(mtl.Some(4), nonNegSqrtish).Get()
	require.True(t, ok)
	assert.Equal(t, 5, v)

	assert.True(t, mtl.BindOption(mtl.Some(-1), nonNegSqrtish).IsNone())
	assert.True(t, mtl.BindOption(mtl.None[int](), nonNegSqrtish).IsNone())
}

func TestOptionBindShortCircuit(t *testing.T) {
	invoked := false
	mtl.BindOption(mtl.None[int](), func(x int) mtl.Option[int] {
		invoked = true
		return mtl.Some(x)
	})
	assert.False(t, invoked, "continuation must not run on None")
}

func TestOptionMatch(t *testing.T) {
	describe := func(o mtl.Option[int]) string {
		return mtl.MatchOption(o,
			func(int) string { return "some" },
			func() string { return "none" },
		)
	}

	assert.Equal(t, "some", describe(mtl.Some(1)))
	assert.Equal(t, "none", describe(mtl.None[int]()))
}

func TestOptionToEither(t *testing.T) {
	r := mtl.OptionToEither(mtl.Some(5), "absent")
	v, ok := r.GetRight()
	require.True(t, ok)
	assert.Equal(t, 5, v)

	l := mtl.OptionToEither(mtl.None[int](), "absent")
	e, ok := l.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "absent", e)
}
