package reference

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestStep(t *testing.T) {
	// native uint64 arithmetic wraps mod 2^64 by definition, so it is a
	// fair check of the big integer path.
	for _, tc := range []struct{ state, inc uint64 }{
		{0, 1},
		{1, 1},
		{1 << 63, 12345},
		{0x853c49e6748fea9b, 0xda3e39cb94b95bdb},
		{0xffffffffffffffff, 0xffffffffffffffff},
	} {
		assert.Equal(t, Step(tc.state, tc.inc), tc.state*Mult+tc.inc)
	}
}

func TestPermute(t *testing.T) {
	for _, state := range []uint64{
		0,
		1,
		1 << 22,
		1 << 61,
		7 << 61,
		0x0123456789abcdef,
		0xffffffffffffffff,
	} {
		want := uint32(((state >> 22) ^ state) >> ((state >> 61) + 22))
		assert.Equal(t, Permute(state), want)
	}
}

func TestAdvance(t *testing.T) {
	s, inc := uint64(42), uint64(97)
	assert.Equal(t, Advance(s, inc, 0), s)
	assert.Equal(t, Advance(s, inc, 1), Step(s, inc))
	assert.Equal(t, Advance(s, inc, 3), Step(Step(Step(s, inc), inc), inc))
}
