package rng

import "math"

// NormFloat64 returns a normally distributed float64 with mean 0 and
// standard deviation 1, using the Marsaglia polar method.
//
// Accepted pairs of uniform coordinates yield two deviates: one is
// returned and the other is held inside the generator for the next call,
// which then consumes no transitions. Rejected pairs redraw both
// coordinates, so the number of transitions per producing call varies.
// To get a deviate with a different distribution:
//
//	sample = mean + stddev*r.NormFloat64()
func (r *T) NormFloat64() float64 {
	if r.hasGauss {
		r.hasGauss = false
		return r.gauss
	}

	var v1, v2, s float64
	for {
		v1 = 2*r.Float64() - 1
		v2 = 2*r.Float64() - 1
		s = v1*v1 + v2*v2
		if s < 1 && s != 0 {
			break
		}
	}
	m := math.Sqrt(-2 * math.Log(s) / s)

	r.gauss = v2 * m
	r.hasGauss = true
	return v1 * m
}
