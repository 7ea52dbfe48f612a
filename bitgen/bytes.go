package bitgen

import (
	"encoding/binary"
	"math/bits"
)

// Read fills p from successive 64-bit draws, little-endian, and returns
// len(p). A partial trailing word is taken from the low bytes of one
// final draw.
func Read(g Generator, p []byte) int {
	n := len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, g.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var last [8]byte
		binary.LittleEndian.PutUint64(last[:], g.Uint64())
		copy(p, last[:])
	}
	return n
}

// Bytes returns n bytes drawn from g.
func Bytes(g Generator, n int) []byte {
	b := make([]byte, n)
	Read(g, b)
	return b
}

// Uint64n returns an unbiased draw in [0, n). It panics if n is 0.
// Multiply-shift with rejection, as in math/rand/v2.
func Uint64n(g Generator, n uint64) uint64 {
	if n == 0 {
		panic("bitgen: Uint64n with n == 0")
	}
	if n&(n-1) == 0 {
		return g.Uint64() & (n - 1)
	}
	hi, lo := bits.Mul64(g.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(g.Uint64(), n)
		}
	}
	return hi
}
