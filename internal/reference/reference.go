// Package reference models the generator arithmetic with big integers so
// that tests can cross check the fast word sized implementations against
// something obviously correct.
package reference

import "math/big"

// Mult is the multiplier of the LCG step.
const Mult = 6364136223846793005

var (
	mod64 = new(big.Int).Lsh(big.NewInt(1), 64)
	mult  = new(big.Int).SetUint64(Mult)
)

// Step returns state*Mult + inc reduced mod 2^64.
func Step(state, inc uint64) uint64 {
	s := new(big.Int).SetUint64(state)
	s.Mul(s, mult)
	s.Add(s, new(big.Int).SetUint64(inc))
	s.Mod(s, mod64)
	return s.Uint64()
}

// Permute returns the 32 bit xsh-rs output for a state word: state is
// xorshifted right by 22 and the result shifted right by the top three
// state bits plus 22, truncated to 32 bits.
func Permute(state uint64) uint32 {
	s := new(big.Int).SetUint64(state)
	x := new(big.Int).Rsh(s, 22)
	x.Xor(x, s)
	x.Rsh(x, uint(state>>61)+22)
	return uint32(x.Uint64())
}

// Advance returns the state after n single transitions, applied one at a
// time.
func Advance(state, inc uint64, n int) uint64 {
	for i := 0; i < n; i++ {
		state = Step(state, inc)
	}
	return state
}
