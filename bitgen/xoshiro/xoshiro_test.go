package xoshiro

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

func TestDeterminism(t *testing.T) {
	g1 := mustNew(t, 42)
	g2 := mustNew(t, 42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, g1.Uint64(), g2.Uint64())
	}
}

func TestSharedCursor(t *testing.T) {
	g := mustNew(t, 42)
	twin := mustNew(t, 42)

	assert.Equal(t, uint32(twin.Uint64()), g.Uint32())
	assert.Equal(t, twin.Uint64(), g.Uint64())
	assert.Equal(t, twin.Uint64(), g.Raw())
}

func TestSpawnedStreamsDiffer(t *testing.T) {
	root, err := seeds.New(42)
	require.NoError(t, err)
	children := root.Spawn(2)

	g1, err := New(children[0])
	require.NoError(t, err)
	g2, err := New(children[1])
	require.NoError(t, err)
	assert.NotEqual(t, g1.Uint64(), g2.Uint64())
}

func TestFloat64Range(t *testing.T) {
	g := mustNew(t, 1)
	for i := 0; i < 10000; i++ {
		v := g.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
