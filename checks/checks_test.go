package checks_test

import (
	"testing"

	"github.com/abondrn/readingframes/checks"
	"github.com/stretchr/testify/assert"
)

func TestIsReadingFrame(t *testing.T) {
	for _, offset := range []int{0, 1, 2} {
		assert.True(t, checks.IsReadingFrame(offset), "offset %d", offset)
	}
	for _, offset := range []int{-1, 3, 7} {
		assert.False(t, checks.IsReadingFrame(offset), "offset %d", offset)
	}
}

func TestIsOccurrenceRange(t *testing.T) {
	assert.True(t, checks.IsOccurrenceRange(0, 0))
	assert.True(t, checks.IsOccurrenceRange(1, 5))
	assert.False(t, checks.IsOccurrenceRange(3, 2))
	assert.False(t, checks.IsOccurrenceRange(-1, 2))
}

func TestCompleteCodons(t *testing.T) {
	tests := []struct {
		length, offset, want int
	}{
		{9, 0, 3},
		{4, 0, 1},
		{6, 1, 1},
		{2, 0, 0},
		{3, 5, 0},
		{7, -2, 2},
		{9, -1, 2},
		{9, -3, 3},
		{9, -4, 2},
		{2, -1, 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, checks.CompleteCodons(test.length, test.offset), "length %d offset %d", test.length, test.offset)
	}
}

func TestFirstCodonStart(t *testing.T) {
	tests := []struct {
		offset, want int
	}{
		{0, 0},
		{2, 2},
		{5, 5},
		{-1, 2},
		{-3, 0},
		{-4, 2},
		{-8, 1},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, checks.FirstCodonStart(test.offset), "offset %d", test.offset)
	}
}
