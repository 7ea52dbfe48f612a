package sfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safing/randbase/seeds"
)

func mustNew(t *testing.T, entropy ...any) *Generator {
	t.Helper()
	seq, err := seeds.New(entropy...)
	require.NoError(t, err)
	g, err := New(seq)
	require.NoError(t, err)
	return g
}

// Reference values computed with the seed sequence mixed from entropy 42
// and the reference SFC64 update function.
var knownDraws = []uint64{
	9775594601838723485,
	6977463094773878866,
	17439770048677797496,
	7768405669198076140,
	11828679036797625575,
	5968245995936705621,
}

func TestKnownAnswers(t *testing.T) {
	g := mustNew(t, 42)
	for i, expected := range knownDraws {
		assert.Equal(t, expected, g.Uint64(), "draw %d", i)
	}
}

func TestSharedCursor(t *testing.T) {
	g := mustNew(t, 42)
	assert.Equal(t, knownDraws[0], g.Uint64())
	assert.Equal(t, uint32(knownDraws[1]), g.Uint32())
	assert.Equal(t, knownDraws[2], g.Raw())
}

func TestDeterminism(t *testing.T) {
	g1 := mustNew(t, "0xfeedface")
	g2 := mustNew(t, "0xfeedface")
	for i := 0; i < 100; i++ {
		assert.Equal(t, g1.Uint64(), g2.Uint64())
		assert.Equal(t, g1.Float64(), g2.Float64())
	}
}

func TestFloat64Range(t *testing.T) {
	g := mustNew(t, 1)
	for i := 0; i < 10000; i++ {
		v := g.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestStateRoundTrip(t *testing.T) {
	g := mustNew(t, 7)
	for i := 0; i < 10; i++ {
		g.Uint64()
	}
	state, err := g.State()
	require.NoError(t, err)

	expected := []uint64{3742469896864304339, 4226090172302359518, 2521269603216779738}
	for _, want := range expected {
		assert.Equal(t, want, g.Uint64())
	}

	other := mustNew(t, 1000)
	require.NoError(t, other.SetState(state))
	for _, want := range expected {
		assert.Equal(t, want, other.Uint64())
	}
}
