package rng

// Advance moves the generator steps transitions forward in O(log steps)
// time by composing the LCG affine map with itself. Negative values move
// backward by going the long way around the 2^64 cycle, which rewinds
// exactly:
//
//	x := r.Uint32()
//	r.Uint32()
//	r.Uint32()
//	r.Advance(-3)
//	y := r.Uint32() // y == x
//
// The step count lines up with calls that consume exactly one transition,
// like Uint32 or Uint8. Bounded, interval and normal sampling consume a
// data dependent number of transitions per call.
func (r *T) Advance(steps int64) {
	accMult, accPlus := uint64(1), uint64(0)
	curMult, curPlus := uint64(mul), r.inc

	for delta := uint64(steps); delta != 0; delta >>= 1 {
		if delta&1 != 0 {
			accMult *= curMult
			accPlus = accPlus*curMult + curPlus
		}
		curPlus = (curMult + 1) * curPlus
		curMult *= curMult
	}
	r.state = accMult*r.state + accPlus
}

// Retreat moves the generator steps transitions backward. Retreat(n)
// undoes Advance(n).
func (r *T) Retreat(steps int64) { r.Advance(-steps) }
