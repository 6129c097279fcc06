package xrand

import (
	"testing"

	"github.com/zeebo/assert"

	"github.com/zeebo/rng"
)

func TestSource(t *testing.T) {
	t.Run("Uint64", func(t *testing.T) {
		g := rng.New(1, 2)
		c := g.Split()

		s := New(&g)
		for i := 0; i < 100; i++ {
			assert.Equal(t, s.Uint64(), c.Uint64())
		}
	})

	t.Run("SeedPanics", func(t *testing.T) {
		g := rng.New(1, 2)
		s := New(&g)

		defer func() {
			if recover() == nil {
				t.Fatal("expected a panic")
			}
		}()
		s.Seed(3)
	})
}

func TestWrap(t *testing.T) {
	g := rng.New(7, 11)
	r := Wrap(&g)

	for i := 0; i < 1000; i++ {
		v := r.Intn(10)
		assert.That(t, 0 <= v && v < 10)
	}

	p := r.Perm(10)
	seen := make([]bool, 10)
	for _, v := range p {
		seen[v] = true
	}
	for _, ok := range seen {
		assert.That(t, ok)
	}
}
