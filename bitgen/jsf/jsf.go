// Package jsf implements Bob Jenkins' small fast 64-bit generator (JSF64),
// a tiny chaotic PRNG with 256 bits of state. It is very fast and passes
// PractRand, but offers no cryptographic guarantees and no jump function.
package jsf

import (
	"fmt"
	"math/bits"

	"github.com/fxamacker/cbor/v2"

	"github.com/safing/randbase/bitgen"
	"github.com/safing/randbase/seeds"
)

var _ bitgen.Generator = (*Generator)(nil)
var _ bitgen.Stater = (*Generator)(nil)

// Generator is a JSF64 stream. Use via pointer; copying the value forks
// nothing, both copies alias one stream.
type Generator struct {
	a, b, c, d uint64
}

// New seeds a generator from seq, drawing three 64-bit words for b, c and d.
// A nil seq seeds from fresh OS entropy.
func New(seq *seeds.Seq) (*Generator, error) {
	if seq == nil {
		var err error
		seq, err = seeds.New()
		if err != nil {
			return nil, err
		}
	}
	w := seq.GenerateUint64(3)
	g := &Generator{
		a: 0xf1ea5eed,
		b: w[0],
		c: w[1],
		d: w[2],
	}
	// Warm up, per Jenkins' reference seeding.
	for i := 0; i < 20; i++ {
		g.next()
	}
	return g, nil
}

func (g *Generator) next() uint64 {
	e := g.a - bits.RotateLeft64(g.b, 7)
	g.a = g.b ^ bits.RotateLeft64(g.c, 13)
	g.b = g.c + bits.RotateLeft64(g.d, 37)
	g.c = g.d + e
	g.d = e + g.a
	return g.d
}

// Uint64 returns the next 64-bit draw.
func (g *Generator) Uint64() uint64 {
	return g.next()
}

// Uint32 returns the low 32 bits of the next draw.
func (g *Generator) Uint32() uint32 {
	return uint32(g.next())
}

// Float64 returns the next draw mapped onto [0, 1).
func (g *Generator) Float64() float64 {
	return bitgen.UnitFloat64(g.next())
}

// Raw returns the next native output word. JSF64 is natively 64-bit, so
// this equals Uint64.
func (g *Generator) Raw() uint64 {
	return g.next()
}

type snapshot struct {
	A uint64 `cbor:"a"`
	B uint64 `cbor:"b"`
	C uint64 `cbor:"c"`
	D uint64 `cbor:"d"`
}

// State captures the full generator state. Restoring it with SetState
// resumes the stream at exactly this point.
func (g *Generator) State() ([]byte, error) {
	return cbor.Marshal(&snapshot{A: g.a, B: g.b, C: g.c, D: g.d})
}

// SetState restores a state captured by State.
func (g *Generator) SetState(data []byte) error {
	var s snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("jsf: decoding state: %w", err)
	}
	g.a, g.b, g.c, g.d = s.A, s.B, s.C, s.D
	return nil
}
