package keywrap

import (
	"encoding/binary"
)

const (
	semiblockSize = 8
	blockSize     = 2 * semiblockSize
	rounds        = 6
)

// semiblock is one 64-bit half of an AES block.
type semiblock [semiblockSize]byte

// icv is the RFC 3394 default initial value.
var icv = semiblock{0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6}

// xorCounter XORs the big-endian encoding of t over all eight bytes of s.
func (s *semiblock) xorCounter(t uint64) {
	var tb semiblock
	binary.BigEndian.PutUint64(tb[:], t)
	for k := range s {
		s[k] ^= tb[k]
	}
}

// step returns the 1-based counter t for round j and register i.
func step(n, j, i int) uint64 {
	return uint64(n)*uint64(j) + uint64(i) + 1
}

// split copies b into len(b)/8 semiblocks. len(b) must be a multiple of 8.
func split(b []byte) []semiblock {
	r := make([]semiblock, len(b)/semiblockSize)
	for i := range r {
		copy(r[i][:], b[i*semiblockSize:])
	}

	return r
}

// join concatenates the given semiblocks into a fresh byte slice.
func join(blocks ...semiblock) []byte {
	out := make([]byte, 0, len(blocks)*semiblockSize)
	for _, b := range blocks {
		out = append(out, b[:]...)
	}

	return out
}

// load fills buf with a‖r.
func load(buf *[blockSize]byte, a, r *semiblock) {
	copy(buf[:semiblockSize], a[:])
	copy(buf[semiblockSize:], r[:])
}

// store splits buf into its most and least significant halves.
func store(buf *[blockSize]byte, a, r *semiblock) {
	copy(a[:], buf[:semiblockSize])
	copy(r[:], buf[semiblockSize:])
}

// wipe zeroes the working registers of a wrap or unwrap call.
func wipe(a *semiblock, r []semiblock, buf *[blockSize]byte) {
	clear(a[:])
	for i := range r {
		clear(r[i][:])
	}
	clear(buf[:])
}
