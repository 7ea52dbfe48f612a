// Package pcg implements PCG64 (XSL RR 128/64), Melissa O'Neill's permuted
// congruential generator: a 128-bit LCG whose state is compressed to 64
// output bits by an xor-fold and a data-dependent rotate. Each odd stream
// increment selects an independent sequence.
//
// Paper and details at http://www.pcg-random.org
package pcg

import (
	"fmt"
	"math/bits"

	"github.com/fxamacker/cbor/v2"

	"github.com/safing/randbase/bitgen"
	"github.com/safing/randbase/seeds"
)

const (
	mulHi = 0x2360ed051fc65da4
	mulLo = 0x4385df649fccf645
)

var _ bitgen.Generator = (*Generator)(nil)
var _ bitgen.Stater = (*Generator)(nil)

// Generator is a PCG64 stream.
type Generator struct {
	stateHi, stateLo uint64
	incHi, incLo     uint64
}

// New seeds a generator from seq, drawing four 64-bit words: two for the
// initial state and two for the stream selector. A nil seq seeds from
// fresh OS entropy.
func New(seq *seeds.Seq) (*Generator, error) {
	if seq == nil {
		var err error
		seq, err = seeds.New()
		if err != nil {
			return nil, err
		}
	}
	w := seq.GenerateUint64(4)
	g := &Generator{}
	// inc = initseq<<1 | 1, kept odd so every stream has full period.
	g.incHi = w[2]<<1 | w[3]>>63
	g.incLo = w[3]<<1 | 1
	// Reference seeding: step, add initstate, step.
	g.step()
	var carry uint64
	g.stateLo, carry = bits.Add64(g.stateLo, w[1], 0)
	g.stateHi, _ = bits.Add64(g.stateHi, w[0], carry)
	g.step()
	return g, nil
}

// step advances the 128-bit LCG: state = state*mul + inc.
func (g *Generator) step() {
	hi, lo := bits.Mul64(g.stateLo, mulLo)
	hi += g.stateHi*mulLo + g.stateLo*mulHi
	var carry uint64
	lo, carry = bits.Add64(lo, g.incLo, 0)
	hi, _ = bits.Add64(hi, g.incHi, carry)
	g.stateLo, g.stateHi = lo, hi
}

func (g *Generator) next() uint64 {
	g.step()
	// XSL RR output function.
	return bits.RotateLeft64(g.stateHi^g.stateLo, -int(g.stateHi>>58))
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

// Raw returns the next native output word. PCG64 is natively 64-bit, so
// this equals Uint64.
func (g *Generator) Raw() uint64 {
	return g.next()
}

type snapshot struct {
	StateHi uint64 `cbor:"sh"`
	StateLo uint64 `cbor:"sl"`
	IncHi   uint64 `cbor:"ih"`
	IncLo   uint64 `cbor:"il"`
}

// State captures the full generator state, stream selector included.
// Restoring it with SetState resumes the stream at exactly this point.
func (g *Generator) State() ([]byte, error) {
	return cbor.Marshal(&snapshot{
		StateHi: g.stateHi,
		StateLo: g.stateLo,
		IncHi:   g.incHi,
		IncLo:   g.incLo,
	})
}

// SetState restores a state captured by State.
func (g *Generator) SetState(data []byte) error {
	var s snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("pcg: decoding state: %w", err)
	}
	if s.IncLo&1 == 0 {
		return fmt.Errorf("pcg: invalid state: stream increment must be odd")
	}
	g.stateHi, g.stateLo = s.StateHi, s.StateLo
	g.incHi, g.incLo = s.IncHi, s.IncLo
	return nil
}
