package rng

// Bool returns the top bit of the next output as a fair coin, consuming
// one transition.
func (r *T) Bool() bool { return r.next()>>31 != 0 }

// Prob returns true with probability p by comparing a 53 bit uniform draw
// against it, consuming two transitions. Exact 0 and 1 return immediately
// without consuming anything. Values outside [0, 1] are not validated and
// behave like the nearest endpoint.
func (r *T) Prob(p float64) bool {
	if p == 0 {
		return false
	}
	if p == 1 {
		return true
	}
	return r.float53() < p
}
