/*
Package random provides functions to generate random DNA sequences.

Sequences are generated from a seed so the same seed always gives the same
sequence, which keeps tests reproducible.
*/
package random

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/mroth/weightedrand"
)

var errNegativeLength = errors.New("sequence length must not be negative")

// DNASequence returns a random DNA sequence of the specified length where
// every base is equally likely.
func DNASequence(length int, seed int64) (string, error) {
	return WeightedDNASequence(length, seed, map[rune]uint{'A': 1, 'C': 1, 'G': 1, 'T': 1})
}

// WeightedDNASequence returns a random DNA sequence of the specified length
// whose base composition follows weights. Bases missing from weights or
// weighted zero never appear.
func WeightedDNASequence(length int, seed int64, weights map[rune]uint) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: %d", errNegativeLength, length)
	}

	var choices []weightedrand.Choice
	for _, base := range "ACGT" {
		if weight := weights[base]; weight > 0 {
			choices = append(choices, weightedrand.NewChoice(base, weight))
		}
	}
	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return "", fmt.Errorf("building base chooser: %w", err)
	}

	source := rand.New(rand.NewSource(seed))
	var sequence strings.Builder
	sequence.Grow(length)
	for i := 0; i < length; i++ {
		sequence.WriteRune(chooser.PickSource(source).(rune))
	}
	return sequence.String(), nil
}
