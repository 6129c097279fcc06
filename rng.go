// Package rng implements a permuted congruential generator with 64 bits of
// state and 32 bit outputs, using the xsh-rs output permutation: an xorshift
// followed by a random shift. See http://www.pcg-random.org for the family.
//
// Generators are cheap values, deterministic for a given seed and stream,
// and support exact jump-ahead and rewind in O(log n) (see Advance). On top
// of the raw outputs the package provides bounded integers, floats over
// selectable unit intervals, fair and weighted booleans, and normal
// deviates. Nothing here is safe for concurrent use and nothing here is
// suitable for cryptography.
package rng

import (
	"math/rand/v2"

	"github.com/zeebo/errs"

	"github.com/zeebo/rng/internal/entropy"
)

// mul is the multiplier of the LCG step. Same constant as MMIX by Donald
// Knuth and Newlib, Musl.
const mul = 6364136223846793005

// T is a pcg xsh-rs generator. The zero value is invalid: construct one
// with New, NewRandom or From.
//
// Every output producing method mutates the generator, so two generators
// built the same way produce the same values for the same sequence of
// calls. A T must not be shared between goroutines without outside
// locking.
type T struct {
	state uint64
	inc   uint64

	gauss    float64
	hasGauss bool
}

// T is usable anywhere a math/rand/v2 source is wanted.
var _ rand.Source = (*T)(nil)

// New constructs a generator from a seed and a stream number. The stream
// number selects the odd increment of the LCG step, so generators with
// different streams produce unrelated looking sequences even when seeded
// identically.
func New(seed, stream uint64) T {
	// equiv to initializing a zero state with the derived odd inc, running
	// one transition, and adding the seed into the state.
	inc := stream<<1 | 1
	return T{state: inc + seed, inc: inc}
}

// NewRandom constructs a generator seeded from the process wide entropy
// sequence. The seeds are very unlikely to repeat across calls or across
// concurrently started processes.
func NewRandom() T {
	return New(entropy.Seed(), entropy.Seed())
}

// From constructs a generator resuming at the exact position described by a
// (state, inc) pair, such as one captured with State and Inc. The values
// are used as given: the increment must be odd and nonzero or From returns
// an error.
func From(state, inc uint64) (T, error) {
	var t T
	if err := t.SetInc(inc); err != nil {
		return T{}, err
	}
	t.SetState(state)
	return t, nil
}

// next runs one LCG transition and permutes the new state down to 32 bits:
// the high bits are xorshifted into the low bits, then the word is shifted
// right by an amount taken from the top three state bits. All shifts are
// logical.
func (r *T) next() uint32 {
	r.state = r.state*mul + r.inc
	s := r.state
	return uint32(((s >> 22) ^ s) >> ((s >> 61) + 22))
}

// State returns the current position of the generator inside its stream.
func (r *T) State() uint64 { return r.state }

// Inc returns the stream selecting increment. It is always odd.
func (r *T) Inc() uint64 { return r.inc }

// Mult returns the multiplier of the LCG step. It is shared by every
// generator.
func (r *T) Mult() uint64 { return mul }

// SetState repositions the generator inside its current stream. Every
// 64 bit value is a valid position.
func (r *T) SetState(state uint64) { r.state = state }

// SetInc moves the generator onto another stream. The increment must be
// odd and nonzero; anything else returns an error and leaves the generator
// unchanged.
func (r *T) SetInc(inc uint64) error {
	if inc == 0 || inc&1 == 0 {
		return errs.New("increment must be odd and nonzero: %d", inc)
	}
	r.inc = inc
	return nil
}
