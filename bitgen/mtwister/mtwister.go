// Package mtwister exposes gonum's MT19937-64 Mersenne Twister through the
// bitgen contract. The twister has a huge period (2^19937-1) but a big
// state and weaker low-bit quality than the small chaotic generators; it is
// here for compatibility with systems standardized on it.
//
// State snapshots are not supported: gonum does not expose the twister's
// internal state.
package mtwister

import (
	"gonum.org/v1/gonum/mathext/prng"

	"github.com/safing/randbase/bitgen"
	"github.com/safing/randbase/seeds"
)

var _ bitgen.Generator = (*Generator)(nil)

// Generator is an MT19937-64 stream.
type Generator struct {
	rng *prng.MT19937_64
}

// New seeds a generator from seq, drawing one 64-bit word. A nil seq seeds
// from fresh OS entropy.
func New(seq *seeds.Seq) (*Generator, error) {
	if seq == nil {
		var err error
		seq, err = seeds.New()
		if err != nil {
			return nil, err
		}
	}
	rng := prng.NewMT19937_64()
	rng.Seed(seq.GenerateUint64(1)[0])
	return &Generator{rng: rng}, nil
}

// Uint64 returns the next 64-bit draw.
func (g *Generator) Uint64() uint64 {
	return g.rng.Uint64()
}

// Uint32 returns the low 32 bits of the next draw.
func (g *Generator) Uint32() uint32 {
	return uint32(g.rng.Uint64())
}

// Float64 returns the next draw mapped onto [0, 1).
func (g *Generator) Float64() float64 {
	return bitgen.UnitFloat64(g.rng.Uint64())
}

// Raw returns the next native output word. MT19937-64 is natively 64-bit,
// so this equals Uint64.
func (g *Generator) Raw() uint64 {
	return g.rng.Uint64()
}
