// Package entropy provides the process wide seed sequence used when a
// generator is constructed without explicit seeds.
//
// The sequence is an xorshift64* walk shared by the whole process, stepped
// under a compare and swap so that concurrent callers always observe
// distinct values.
package entropy

import (
	"encoding/binary"
	"os"
	"sync/atomic"
	"time"

	"github.com/spacemonkeygo/monotime"
	"github.com/zeebo/xxh3"
)

// state is never zero: zero is a fixed point of the step function.
var state uint64 = initial()

func initial() uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(time.Now().UnixNano()))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(monotime.Monotonic()))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(os.Getpid()))

	h := xxh3.Hash(buf[:])
	if h == 0 {
		h = 0x9e3779b97f4a7c15
	}
	return h
}

// Seed returns the next value of the sequence. It never returns zero.
func Seed() uint64 {
	for {
		cur := atomic.LoadUint64(&state)
		next := cur
		next ^= next >> 12
		next ^= next << 25
		next ^= next >> 27
		next *= 0x2545f4914f6cdd1d
		if atomic.CompareAndSwapUint64(&state, cur, next) {
			return next
		}
	}
}
