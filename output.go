package rng

import "io"

var _ io.Reader = (*T)(nil)

// Uint32 returns the next 32 bit output, consuming one transition.
func (r *T) Uint32() uint32 { return r.next() }

// Uint64 returns the next 64 bit output, consuming two transitions. The
// first output forms the high word and the second is folded in sign
// extended rather than masked: whenever the low word has its top bit set,
// the high word reads one less than the first raw output. Saved sequences
// depend on this fold, so it is part of the format.
func (r *T) Uint64() uint64 {
	l := r.next()
	j := r.next()
	return uint64(l)<<32 + uint64(int64(int32(j)))
}

// Int63 returns a nonnegative 63 bit integer: the 64 bit output shifted
// right logically by one.
func (r *T) Int63() int64 { return int64(r.Uint64() >> 1) }

// Uint8 returns bits 24 through 31 of the next output, consuming one
// transition.
func (r *T) Uint8() uint8 { return uint8(r.next() >> 24) }

// Uint16 returns bits 16 through 31 of the next output, consuming one
// transition.
func (r *T) Uint16() uint16 { return uint16(r.next() >> 16) }

// Int16 is Uint16 reinterpreted as a signed 16 bit value.
func (r *T) Int16() int16 { return int16(r.next() >> 16) }

// Read fills p with random bytes and never fails, so a T is usable as an
// io.Reader. Each byte is bits 24 through 31 of its own output, consuming
// one transition per byte regardless of how the reads are chunked.
func (r *T) Read(p []byte) (n int, err error) {
	for i := range p {
		p[i] = byte(r.next() >> 24)
	}
	return len(p), nil
}
