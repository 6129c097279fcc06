package rng

// float53 builds a uniform float64 in [0, 1) with a full 53 bit mantissa
// from two outputs, consuming two transitions.
func (r *T) float53() float64 {
	l := uint64(r.next())
	j := uint64(r.next())
	return float64((l>>6)<<27+j>>5) / (1 << 53)
}

// Float64 returns a uniform float64 in [0, 1) with 53 bit resolution,
// consuming two transitions.
func (r *T) Float64() float64 { return r.float53() }

// Float64In returns a uniform float64 over the variant of the unit
// interval selected by the flags: [0, 1), (0, 1), [0, 1] or (0, 1].
//
// When includeOne is set, each candidate spends one extra transition whose
// top bit offers a promotion by 1.0; promoted candidates above 1 and, when
// zero is excluded, exact zeros are redrawn. The closed upper end is
// reachable only by promoting an exact zero.
func (r *T) Float64In(includeZero, includeOne bool) float64 {
	for {
		d := r.float53()
		if includeOne && r.next()>>31 != 0 {
			d += 1
		}
		if d > 1 || (!includeZero && d == 0) {
			continue
		}
		return d
	}
}

// Float32 returns a uniform float32 in [0, 1) with 24 bit resolution,
// consuming one transition.
func (r *T) Float32() float32 {
	return float32(r.next()>>8) / (1 << 24)
}

// Float32In is Float64In at float32 resolution, consuming one transition
// per candidate plus the includeOne extra.
func (r *T) Float32In(includeZero, includeOne bool) float32 {
	for {
		d := float32(r.next()>>8) / (1 << 24)
		if includeOne && r.next()>>31 != 0 {
			d += 1
		}
		if d > 1 || (!includeZero && d == 0) {
			continue
		}
		return d
	}
}
