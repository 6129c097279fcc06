// Package xrand adapts an rng.T to the source interface of
// golang.org/x/exp/rand, making the sampling layer there (Perm, Shuffle,
// the distributions) available on top of this engine.
package xrand

import (
	"golang.org/x/exp/rand"

	"github.com/zeebo/rng"
)

// Source wraps a generator as a rand.Source. The generator is borrowed:
// draws made through the source reposition it like any other call.
type Source struct {
	g *rng.T
}

var _ rand.Source = (*Source)(nil)

// New wraps g as a rand.Source.
func New(g *rng.T) *Source { return &Source{g: g} }

// Uint64 returns the next 64 bit output of the wrapped generator.
func (s *Source) Uint64() uint64 { return s.g.Uint64() }

// Seed panics. A generator is seeded at construction and repositioned
// with Advance, SetState or rng.From.
func (s *Source) Seed(uint64) { panic("unimplemented") }

// Wrap returns a rand.Rand drawing from g.
func Wrap(g *rng.T) *rand.Rand { return rand.New(New(g)) }
