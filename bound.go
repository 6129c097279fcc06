package rng

import "math"

// Intn returns a uniform integer in [0, n), consuming at least one
// transition. It panics unless 0 < n <= math.MaxInt32; bounds wider than
// 32 bits belong to Int63n.
//
// Power of two bounds take a single multiply and shift. Other bounds
// reduce a 31 bit draw modulo n and redraw whenever the draw falls in the
// short final span that would overweight the low residues.
func (r *T) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid Intn bound")
	}
	if n > math.MaxInt32 {
		panic("rng: Intn bound wider than 32 bits")
	}

	bound := int32(n)
	m := bound - 1
	u := int32(r.next() >> 1)

	if bound&m == 0 {
		return int(int32(int64(bound) * int64(u) >> 31))
	}
	for {
		// the sum wraps exactly when u sits past the last full cycle of n.
		v := u % bound
		if u-v+m >= 0 {
			return int(v)
		}
		u = int32(r.next() >> 1)
	}
}

// Int63n returns a uniform integer in [0, n), consuming at least two
// transitions. It panics if n <= 0. Each attempt takes a fresh 63 bit
// draw; rejected attempts discard both of its words.
func (r *T) Int63n(n int64) int64 {
	if n <= 0 {
		panic("rng: invalid Int63n bound")
	}
	for {
		bits := r.Int63()
		v := bits % n
		if bits-v+(n-1) >= 0 {
			return v
		}
	}
}
