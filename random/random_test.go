package random_test

import (
	"strings"
	"testing"

	"github.com/abondrn/readingframes/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDNASequence(t *testing.T) {
	sequence, err := random.DNASequence(300, 42)
	require.NoError(t, err)
	assert.Len(t, sequence, 300)
	assert.Empty(t, strings.Trim(sequence, "ACGT"))

	again, err := random.DNASequence(300, 42)
	require.NoError(t, err)
	assert.Equal(t, sequence, again, "same seed should give the same sequence")
}

func TestDNASequenceEmpty(t *testing.T) {
	sequence, err := random.DNASequence(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "", sequence)
}

func TestDNASequenceNegativeLength(t *testing.T) {
	_, err := random.DNASequence(-1, 1)
	assert.Error(t, err)
}

func TestWeightedDNASequence(t *testing.T) {
	sequence, err := random.WeightedDNASequence(120, 7, map[rune]uint{'G': 3, 'C': 1})
	require.NoError(t, err)
	assert.Len(t, sequence, 120)
	assert.Empty(t, strings.Trim(sequence, "GC"))
	assert.Greater(t, strings.Count(sequence, "G"), strings.Count(sequence, "C"))
}

func TestWeightedDNASequenceNoWeights(t *testing.T) {
	_, err := random.WeightedDNASequence(10, 1, map[rune]uint{'A': 0})
	assert.Error(t, err)
}
