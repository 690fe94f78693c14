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

func TestWriterTFromBindStringMonoid(t *testing.T) {
	id := mtl.IdentityMonad()
	mon := mtl.StringMonoid()

	first := mtl.WriterTFrom[string, int](id, mon, mtl.Pair[mtl.Erased, string]{Fst: 5, Snd: "a;"})
	out := mtl.WriterTBind(first, func(x int) mtl.WriterT[string, int] {
		return mtl.WriterTFrom[string, int](id, mon, mtl.Pair[mtl.Erased, string]{Fst: x * 2, Snd: " b;"})
	})

	v, log := mtl.RunWriter(out)
	assert.Equal(t, 10, v)
	assert.Equal(t, "a; b;", log)
}

func TestWriterTOfEmptyLog(t *testing.T) {
	id := mtl.IdentityMonad()
	mon := mtl.StringMonoid()

	v, log := mtl.RunWriter(mtl.WriterTOf(id, mon, 42))
	assert.Equal(t, 42, v)
	assert.Equal(t, "", log)
}

func TestWriterTMapLeavesLog(t *testing.T) {
	id := mtl.IdentityMonad()
	mon := mtl.StringMonoid()

	first := mtl.WriterTFrom[string, int](id, mon, mtl.Pair[mtl.Erased, string]{Fst: 21, Snd: "kept"})
	out := mtl.WriterTMap(first, func(x int) int { return x * 2 })

	v, log := mtl.RunWriter(out)
	assert.Equal(t, 42, v)
	assert.Equal(t, "kept", log)
}

func TestWriterTLiftEmptyLog(t *testing.T) {
	id := mtl.IdentityMonad()
	mon := mtl.StringMonoid()

	v, log := mtl.RunWriter(mtl.WriterTLift[string, int](id, mon, 9))
	assert.Equal(t, 9, v)
	assert.Equal(t, "", log)
}

func TestWriterTTell(t *testing.T) {
	id := mtl.IdentityMonad()
	mon := mtl.StringMonoid()

	out := mtl.WriterTBind(mtl.WriterTTell(id, mon, "hello "), func(mtl.Unit) mtl.WriterT[string, int] {
		return mtl.WriterTBind(mtl.WriterTTell(id, mon, "world"), func(mtl.Unit) mtl.WriterT[string, int] {
			return mtl.WriterTOf(id, mon, 42)
		})
	})

	v, log := mtl.RunWriter(out)
	assert.Equal(t, 42, v)
	assert.Equal(t, "hello world", log)
}

// Three-step chains must fold logs left-to-right regardless of how the
// chain is associated.
func TestWriterTLogOrderingThreeSteps(t *testing.T) {
	id := mtl.IdentityMonad()
	mon := mtl.SliceMonoid[string]()

	step := func(label string, v int) mtl.WriterT[[]string, int] {
		return mtl.WriterTFrom[[]string, int](id, mon, mtl.Pair[mtl.Erased, []string]{Fst: v, Snd: []string{label}})
	}

	leftAssoc := mtl.WriterTBind(
		mtl.WriterTBind(step("a", 1), func(x int) mtl.WriterT[[]string, int] { return step("b", x+1) }),
		func(x int) mtl.WriterT[[]string, int] { return step("c", x+1) },
	)
	rightAssoc := mtl.WriterTBind(step("a", 1), func(x int) mtl.WriterT[[]string, int] {
		return mtl.WriterTBind(step("b", x+1), func(y int) mtl.WriterT[[]string, int] {
			return step("c", y+1)
		})
	})

	lv, llog := mtl.RunWriter(leftAssoc)
	rv, rlog := mtl.RunWriter(rightAssoc)

	assert.Equal(t, 3, lv)
	assert.Equal(t, lv, rv)
	assert.Equal(t, []string{"a", "b", "c"}, llog)
	assert.Equal(t, llog, rlog)
}

func TestWriterTListen(t *testing.T) {
	id := mtl.IdentityMonad()
	mon := mtl.StringMonoid()

	first := mtl.WriterTFrom[string, int](id, mon, mtl.Pair[mtl.Erased, string]{Fst: 7, Snd: "so far"})
	out := mtl.WriterTListen(first)

	p, log := mtl.RunWriter(out)
	assert.Equal(t, 7, p.Fst)
	assert.Equal(t, "so far", p.Snd)
	assert.Equal(t, "so far", log, "Listen must leave the log unchanged")
}

func TestWriterTCensor(t *testing.T) {
	id := mtl.IdentityMonad()
	mon := mtl.StringMonoid()

	first := mtl.WriterTFrom[string, int](id, mon, mtl.Pair[mtl.Erased, string]{Fst: 7, Snd: "secret"})
	out := mtl.WriterTCensor(first, func(string) string { return "[redacted]" })

	v, log := mtl.RunWriter(out)
	assert.Equal(t, 7, v)
	assert.Equal(t, "[redacted]", log)
}

// WriterT over an Option inner monad: an absent inner layer swallows the
// pair entirely.
func TestWriterTOverOption(t *testing.T) {
	inner := mtl.OptionMonad()
	mon := mtl.StringMonoid()

	present := mtl.WriterTFrom[string, int](inner, mon,
		mtl.Some[mtl.Erased](mtl.Pair[mtl.Erased, string]{Fst: 1, Snd: "x;"}))
	out := mtl.WriterTBind(present, func(x int) mtl.WriterT[string, int] {
		return mtl.WriterTFrom[string, int](inner, mon,
			mtl.Some[mtl.Erased](mtl.Pair[mtl.Erased, string]{Fst: x + 1, Snd: "y;"}))
	})

	o := mtl.UnwrapOption[mtl.Pair[mtl.Erased, string]](out.Run())
	p, ok := o.Get()
	require.True(t, ok)
	v, log := mtl.UnwrapPair[int, string](p)
	assert.Equal(t, 2, v)
	assert.Equal(t, "x;y;", log)

	gone := mtl.WriterTBind(present, func(x int) mtl.WriterT[string, int] {
		return mtl.WriterTFrom[string, int](inner, mon, mtl.None[mtl.Erased]())
	})
	assert.True(t, mtl.UnwrapOption[mtl.Pair[mtl.Erased, string]](gone.Run()).IsNone())
}
