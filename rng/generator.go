package rng

import (
	"encoding/binary"
	"errors"

	"github.com/safing/randbase/bitgen"
)

var _ bitgen.Generator = (*Generator)(nil)

// Generator exposes the secure stream through the bitgen contract. Every
// draw pulls eight bytes from the Fortuna stream, so all four widths walk
// the same cursor.
//
// The draw methods have no error channel. They are total between Start and
// Stop; drawing after Stop panics, as that is a lifecycle bug in the
// caller, not a runtime condition.
type Generator struct{}

// NewGenerator returns a bitgen view of the secure stream. It fails when
// the module is not started.
func NewGenerator() (*Generator, error) {
	if !rngReady.IsSet() {
		return nil, errors.New("rng: not started")
	}
	return &Generator{}, nil
}

func (g *Generator) draw() uint64 {
	b, err := getBytes(8)
	if err != nil {
		panic("rng: draw after Stop: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b)
}

// Uint64 returns the next 64-bit draw.
func (g *Generator) Uint64() uint64 {
	return g.draw()
}

// Uint32 returns the low 32 bits of the next draw.
func (g *Generator) Uint32() uint32 {
	return uint32(g.draw())
}

// Float64 returns the next draw mapped onto [0, 1).
func (g *Generator) Float64() float64 {
	return bitgen.UnitFloat64(g.draw())
}

// Raw returns the next native output word. The Fortuna stream is byte
// oriented; its natural word here is the 64-bit read.
func (g *Generator) Raw() uint64 {
	return g.draw()
}
