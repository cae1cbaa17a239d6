package dataset_test

import (
	"testing"

	"github.com/jnickg/karmarkar-karp/dataset"
	"github.com/jnickg/karmarkar-karp/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRepeat verifies cycling, exact length and invalid-input handling.
func TestRepeat(t *testing.T) {
	seq := dataset.Repeat(8, 1, 2, 4)
	assert.Equal(t, []partition.Number{1, 2, 4, 1, 2, 4, 1, 2}, seq)

	assert.Nil(t, dataset.Repeat(0, 1), "n < 1 must yield nil")
	assert.Nil(t, dataset.Repeat(5), "no values must yield nil")
}

// TestSkewLarge verifies the heavy-dominated corner sequence.
func TestSkewLarge(t *testing.T) {
	seq := dataset.SkewLarge(6)
	require.Len(t, seq, 6)
	assert.Equal(t, []partition.Number{4, 4, 4, 4, 1, 2}, seq)

	assert.Nil(t, dataset.SkewLarge(2), "n < 3 must yield nil")
}

// TestSkewSmall verifies the light-dominated corner sequence.
func TestSkewSmall(t *testing.T) {
	seq := dataset.SkewSmall(6)
	require.Len(t, seq, 6)
	assert.Equal(t, []partition.Number{1, 1, 1, 1, 2, 4}, seq)

	assert.Nil(t, dataset.SkewSmall(0), "n < 3 must yield nil")
}

// TestUniform verifies length, range and seed determinism.
func TestUniform(t *testing.T) {
	const max = partition.Number(100)
	a := dataset.Uniform(64, max, 7)
	require.Len(t, a, 64)
	for i, v := range a {
		assert.LessOrEqual(t, v, max, "element %d out of range", i)
	}

	b := dataset.Uniform(64, max, 7)
	assert.Equal(t, a, b, "same seed must reproduce the sequence")

	c := dataset.Uniform(64, max, 8)
	assert.NotEqual(t, a, c, "different seed should diverge")

	assert.Nil(t, dataset.Uniform(0, max, 7), "n < 1 must yield nil")
}

// TestUniform_FullRange exercises the max == MaxUint64 special case.
func TestUniform_FullRange(t *testing.T) {
	seq := dataset.Uniform(8, ^partition.Number(0), 11)
	require.Len(t, seq, 8)
}
