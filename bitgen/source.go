package bitgen

// Source bridges a Generator to math/rand.Source64, so the stdlib
// distributions (Zipf, NormFloat64, Shuffle) can run on any conforming
// algorithm.
type Source struct {
	g Generator
}

// NewSource wraps g for use with math/rand.
func NewSource(g Generator) *Source {
	return &Source{g: g}
}

func (s *Source) Uint64() uint64 {
	return s.g.Uint64()
}

func (s *Source) Int63() int64 {
	return int64(s.g.Uint64() >> 1)
}

// Seed is a no-op. Seeding happens when the wrapped generator is
// constructed; reseed by constructing a new one.
func (s *Source) Seed(seed int64) {}
