package jsf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safing/randbase/seeds"
)

func mustSeq(t *testing.T, entropy ...any) *seeds.Seq {
	t.Helper()
	seq, err := seeds.New(entropy...)
	require.NoError(t, err)
	return seq
}

func mustNew(t *testing.T, entropy ...any) *Generator {
	t.Helper()
	g, err := New(mustSeq(t, entropy...))
	require.NoError(t, err)
	return g
}

// Reference values computed with the seed sequence mixed from entropy 42
// and Jenkins' reference update function.
var knownDraws = []uint64{
	11456131772408565757,
	14246426751926716543,
	15165061702394408865,
	5777851072950190415,
	11766596053961357340,
	18200221260767136330,
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
	// The 32-bit draw consumes a full state advance.
	assert.Equal(t, uint32(knownDraws[1]), g.Uint32())
	assert.Equal(t, knownDraws[2], g.Uint64())
	assert.Equal(t, knownDraws[3], g.Raw())
}

func TestDeterminism(t *testing.T) {
	g1 := mustNew(t, 7, 12)
	g2 := mustNew(t, 7, 12)
	for i := 0; i < 100; i++ {
		assert.Equal(t, g1.Uint64(), g2.Uint64())
		assert.Equal(t, g1.Uint32(), g2.Uint32())
		assert.Equal(t, g1.Float64(), g2.Float64())
		assert.Equal(t, g1.Raw(), g2.Raw())
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

func TestNonDegenerate(t *testing.T) {
	g := mustNew(t, 3)
	first := g.Uint64()
	varies := false
	for i := 0; i < 10000; i++ {
		if g.Uint64() != first {
			varies = true
			break
		}
	}
	assert.True(t, varies, "generator returned the same value 10000 times")
}

func TestStateRoundTrip(t *testing.T) {
	g := mustNew(t, 7)
	for i := 0; i < 10; i++ {
		g.Uint64()
	}
	state, err := g.State()
	require.NoError(t, err)

	expected := []uint64{10858089433427352841, 14436845407929520679, 4150687452377872188}
	for _, want := range expected {
		assert.Equal(t, want, g.Uint64())
	}

	// A differently seeded generator resumes the captured stream.
	other := mustNew(t, 1000)
	require.NoError(t, other.SetState(state))
	for _, want := range expected {
		assert.Equal(t, want, other.Uint64())
	}
}

func TestSetStateRejectsGarbage(t *testing.T) {
	g := mustNew(t, 1)
	assert.Error(t, g.SetState([]byte("not cbor")))
}

func TestNilSeq(t *testing.T) {
	g1, err := New(nil)
	require.NoError(t, err)
	g2, err := New(nil)
	require.NoError(t, err)
	assert.NotEqual(t, g1.Uint64(), g2.Uint64())
}
