// Package bitgen defines the contract between random bit producers and the
// code that consumes them. A Generator pairs one opaque algorithm state with
// four draw operations at the standard output widths. Consumers written
// against this interface work unmodified with any conforming algorithm.
package bitgen

// Generator is a single stream of random bits, drawable at four widths.
//
// All four methods advance the same underlying state exactly once per call.
// There is one cursor, not four: interleaving calls in any order walks one
// logical sequence. Implementations hold their state behind a pointer
// receiver, so copying a Generator value aliases the stream instead of
// forking it.
//
// A Generator is not safe for concurrent use. Either wrap it with Lock or
// give each goroutine its own independently seeded instance.
type Generator interface {
	// Uint64 returns the next 64-bit draw.
	Uint64() uint64

	// Uint32 returns the next 32-bit draw. How the narrower width is
	// derived from the stream is up to the algorithm.
	Uint32() uint32

	// Float64 returns the next draw mapped onto [0, 1). It never
	// returns 1.
	Float64() float64

	// Raw returns the generator's native output word without any
	// canonicalizing conversion, zero-extended to 64 bits if narrower.
	Raw() uint64
}

// Stater is implemented by generators whose state can be captured and
// restored, for reproducibility across runs. The encoding is private to
// the algorithm.
type Stater interface {
	State() ([]byte, error)
	SetState(data []byte) error
}

// UnitFloat64 maps a 64-bit draw onto [0, 1) using the top 53 bits.
func UnitFloat64(draw uint64) float64 {
	return float64(draw>>11) / (1 << 53)
}
