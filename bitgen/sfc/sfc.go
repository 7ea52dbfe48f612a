// Package sfc implements Chris Doty-Humphrey's SFC64 generator: 192 bits of
// chaotic state plus a 64-bit counter that guarantees a minimum period of
// 2^64.
package sfc

import (
	"fmt"
	"math/bits"

	"github.com/fxamacker/cbor/v2"

	"github.com/safing/randbase/bitgen"
	"github.com/safing/randbase/seeds"
)

var _ bitgen.Generator = (*Generator)(nil)
var _ bitgen.Stater = (*Generator)(nil)

// Generator is an SFC64 stream.
type Generator struct {
	a, b, c, w uint64
}

// New seeds a generator from seq, drawing three 64-bit words. A nil seq
// seeds from fresh OS entropy.
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
		a: w[0],
		b: w[1],
		c: w[2],
		w: 1,
	}
	// 12 warm-up rounds, per the reference implementation.
	for i := 0; i < 12; i++ {
		g.next()
	}
	return g, nil
}

func (g *Generator) next() uint64 {
	out := g.a + g.b + g.w
	g.w++
	g.a = g.b ^ (g.b >> 11)
	g.b = g.c + (g.c << 3)
	g.c = bits.RotateLeft64(g.c, 24) + out
	return out
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

// Raw returns the next native output word. SFC64 is natively 64-bit, so
// this equals Uint64.
func (g *Generator) Raw() uint64 {
	return g.next()
}

type snapshot struct {
	A uint64 `cbor:"a"`
	B uint64 `cbor:"b"`
	C uint64 `cbor:"c"`
	W uint64 `cbor:"w"`
}

// State captures the full generator state. Restoring it with SetState
// resumes the stream at exactly this point.
func (g *Generator) State() ([]byte, error) {
	return cbor.Marshal(&snapshot{A: g.a, B: g.b, C: g.c, W: g.w})
}

// SetState restores a state captured by State.
func (g *Generator) SetState(data []byte) error {
	var s snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("sfc: decoding state: %w", err)
	}
	g.a, g.b, g.c, g.w = s.A, s.B, s.C, s.W
	return nil
}
