// Package xoshiro exposes gonum's xoshiro256** generator through the
// bitgen contract: 256 bits of state, period 2^256-1, and a starstar
// scrambler that fixes the low-bit weaknesses of the plain xorshift
// family.
//
// State snapshots are not supported: gonum does not expose the internal
// state.
package xoshiro

import (
	"gonum.org/v1/gonum/mathext/prng"

	"github.com/safing/randbase/bitgen"
	"github.com/safing/randbase/seeds"
)

var _ bitgen.Generator = (*Generator)(nil)

// Generator is a xoshiro256** stream.
type Generator struct {
	rng *prng.Xoshiro256starstar
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
	return &Generator{
		rng: prng.NewXoshiro256starstar(seq.GenerateUint64(1)[0]),
	}, nil
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

// Raw returns the next native output word. xoshiro256** is natively
// 64-bit, so this equals Uint64.
func (g *Generator) Raw() uint64 {
	return g.rng.Uint64()
}
