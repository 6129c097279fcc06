package rng

import (
	"math"

	"github.com/spacemonkeygo/monotime"
)

// nanotime returns a high resolution timestamp for SplitDistinct to stir
// into its draws. It is a variable so tests can pin it.
var nanotime = func() int64 { return int64(monotime.Monotonic()) }

// Split returns a generator at the exact position of r: same state, same
// stream. The two then produce identical sequences until their call
// histories diverge. A deviate held by NormFloat64 is not carried into the
// copy.
func (r *T) Split() T {
	return T{state: r.state, inc: r.inc}
}

// SplitDistinct returns a generator guaranteed to differ from r in both
// state and increment. The new values come from bounded draws taken from r
// mixed with timestamp bits, so r is repositioned as a side effect. The
// derived increment is forced odd, which keeps the result valid by
// construction, and candidates colliding with r's values are redrawn.
func (r *T) SplitDistinct() T {
	var inc uint64
	for {
		inc = uint64(r.Int63n(splitBound(r.inc))^^nanotime())*2 + 1
		if inc != r.inc {
			break
		}
	}

	var state uint64
	for {
		state = uint64(r.Int63n(splitBound(r.state)) ^ ^nanotime())
		if state != r.state {
			break
		}
	}

	return T{state: state, inc: inc}
}

// splitBound maps a word of the parent generator to a valid Int63n bound:
// its absolute value under a signed reading, with 0 and the unnegatable
// minimum pushed to the widest bound.
func splitBound(v uint64) int64 {
	n := int64(v)
	if n < 0 {
		n = -n
	}
	if n <= 0 {
		return math.MaxInt64
	}
	return n
}
