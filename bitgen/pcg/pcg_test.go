package pcg

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
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
// and the reference PCG64 XSL RR implementation.
var knownDraws = []uint64{
	14276969152011380360,
	8095878257575067585,
	15838336090824644132,
	12864169557245331597,
	1737265434024182251,
	17997055833233904524,
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
	g1 := mustNew(t, 7, 12)
	g2 := mustNew(t, 7, 12)
	for i := 0; i < 100; i++ {
		assert.Equal(t, g1.Uint64(), g2.Uint64())
		assert.Equal(t, g1.Float64(), g2.Float64())
	}
}

func TestStreamsAreIndependent(t *testing.T) {
	// Same entropy, different spawn keys select different streams.
	root, err := seeds.New(42)
	require.NoError(t, err)
	children := root.Spawn(2)

	g1, err := New(children[0])
	require.NoError(t, err)
	g2, err := New(children[1])
	require.NoError(t, err)

	equal := 0
	for i := 0; i < 100; i++ {
		if g1.Uint64() == g2.Uint64() {
			equal++
		}
	}
	assert.Zero(t, equal, "spawned streams produced matching draws")
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

	expected := []uint64{5589961623570996296, 5136046009988895365, 4701514055627521776}
	for _, want := range expected {
		assert.Equal(t, want, g.Uint64())
	}

	other := mustNew(t, 1000)
	require.NoError(t, other.SetState(state))
	for _, want := range expected {
		assert.Equal(t, want, other.Uint64())
	}
}

func TestSetStateRejectsEvenIncrement(t *testing.T) {
	g := mustNew(t, 1)
	state, err := g.State()
	require.NoError(t, err)
	require.NoError(t, g.SetState(state))

	// An even increment cannot come from a valid generator.
	bad, err := cbor.Marshal(&snapshot{IncLo: 2})
	require.NoError(t, err)
	assert.Error(t, g.SetState(bad))
}
