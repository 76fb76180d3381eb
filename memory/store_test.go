package memory_test

import (
	"testing"

	"github.com/katalvlaran/algodata/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetKeys(t *testing.T) {
	s := memory.New()
	s.Set("w", []float64{1, 2})
	s.Set("b", []float64{0})
	s.Set("w", []float64{3})

	assert.Equal(t, []string{"w", "b"}, s.Keys())
	v, ok := s.Get("w")
	require.True(t, ok)
	assert.Equal(t, []float64{3}, v)

	v[0] = 99 // copies only
	v, _ = s.Get("w")
	assert.Equal(t, []float64{3}, v)

	_, ok = s.Get("missing")
	assert.False(t, ok)

	s.Delete("w")
	s.Delete("missing")
	assert.Equal(t, []string{"b"}, s.Keys())
	assert.Equal(t, 1, s.Len())
}

func TestSnapshotRevert(t *testing.T) {
	s := memory.New()
	in := []float64{1, 2}
	s.Set("w", in)
	in[0] = 50

	s.Snapshot()
	s.Set("w", []float64{9, 9})
	s.Set("extra", []float64{1})
	require.NoError(t, s.Revert())

	v, _ := s.Get("w")
	assert.Equal(t, []float64{1, 2}, v)
	assert.Equal(t, []string{"w"}, s.Keys())
	assert.Equal(t, 0, s.Depth())

	require.ErrorIs(t, s.Revert(), memory.ErrNoSnapshot)
	require.ErrorIs(t, s.Commit(), memory.ErrNoSnapshot)
}

func TestNestedSnapshots(t *testing.T) {
	s := memory.New()
	s.Set("w", []float64{0})

	s.Snapshot()
	s.Set("w", []float64{1})
	s.Snapshot()
	s.Set("w", []float64{2})
	require.Equal(t, 2, s.Depth())

	require.NoError(t, s.Revert())
	v, _ := s.Get("w")
	assert.Equal(t, []float64{1}, v)

	require.NoError(t, s.Commit())
	v, _ = s.Get("w")
	assert.Equal(t, []float64{1}, v)
	assert.Equal(t, 0, s.Depth())
}

func TestRevertedStateIsIndependent(t *testing.T) {
	s := memory.New()
	s.Set("w", []float64{1})
	s.Snapshot()
	require.NoError(t, s.Revert())

	// a second speculative round must not see writes leak into old snapshots
	s.Snapshot()
	s.Set("w", []float64{7})
	require.NoError(t, s.Revert())
	v, _ := s.Get("w")
	assert.Equal(t, []float64{1}, v)
}
