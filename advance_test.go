package rng

import (
	"math"
	"testing"

	"github.com/zeebo/assert"

	"github.com/zeebo/rng/internal/reference"
)

func TestAdvance(t *testing.T) {
	t.Run("Rewind", func(t *testing.T) {
		g := New(99, 1)
		x := g.Uint32()
		g.Uint32()
		g.Uint32()
		g.Advance(-3)
		assert.Equal(t, g.Uint32(), x)
	})

	t.Run("AgainstIterate", func(t *testing.T) {
		g := New(11, 7)
		c := g.Split()
		g.Advance(1000)
		assert.Equal(t, g.State(), reference.Advance(c.State(), c.Inc(), 1000))
	})

	t.Run("MatchesCalls", func(t *testing.T) {
		g := New(3, 5)
		c := g.Split()
		for i := 0; i < 500; i++ {
			c.Uint32()
		}
		g.Advance(500)
		assert.Equal(t, g.State(), c.State())
		assert.Equal(t, g.Uint32(), c.Uint32())
	})

	t.Run("Zero", func(t *testing.T) {
		g := New(13, 8)
		st := g.State()
		g.Advance(0)
		assert.Equal(t, g.State(), st)
	})

	t.Run("Composes", func(t *testing.T) {
		for _, tc := range []struct{ a, b int64 }{
			{3, 4},
			{1 << 40, -(1 << 39)},
			{-5, -6},
			{math.MaxInt64, math.MaxInt64},
			{math.MinInt64, 1},
		} {
			g := New(21, 2)
			h := g.Split()
			g.Advance(tc.a)
			g.Advance(tc.b)
			h.Advance(tc.a + tc.b)
			assert.Equal(t, g.State(), h.State())
		}
	})
}

func TestRetreat(t *testing.T) {
	t.Run("Undoes", func(t *testing.T) {
		g := New(31, 9)
		c := g.Split()
		g.Advance(123456)
		g.Retreat(123456)
		assert.Equal(t, g.State(), c.State())
	})

	t.Run("Negative", func(t *testing.T) {
		g := New(31, 9)
		c := g.Split()
		g.Retreat(-77)
		c.Advance(77)
		assert.Equal(t, g.State(), c.State())
	})
}
