/*
Package frames tallies codons in a single reading frame of a DNA sequence.

A reading frame is fixed by the offset of its first codon: 0, 1 or 2. Count
walks the sequence from that offset in steps of three and counts every
complete codon it passes. Partial codons at the end of the sequence are
ignored. Filter then keeps the codons whose counts fall inside an inclusive
occurrence range.

	tally := frames.Count("ATGATGCCC", 0) // {ATG: 2, CCC: 1}
	frames.Filter(tally, 2, 2)            // [{ATG 2}]

Count and Filter hold no state between calls, so they are safe to use from
many goroutines at once.
*/
package frames

import (
	"strings"

	"github.com/abondrn/readingframes/checks"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Tally maps codon text, as it appears in the sequence, to the number of
// times it was seen in one reading frame.
type Tally map[string]int

// Total returns the number of codons counted into the tally.
func (t Tally) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// CodonCount is a codon paired with its occurrence count.
type CodonCount struct {
	Codon string `json:"codon" yaml:"codon"`
	Count int    `json:"count" yaml:"count"`
}

// Count builds a fresh tally of the codons in sequence that begin at
// offset, offset+3, offset+6 and so on. Offsets past the end of the sequence
// give an empty tally. Positions of a negative offset that fall before the
// sequence are skipped.
func Count(sequence string, offset int) Tally {
	tally := make(Tally, checks.CompleteCodons(len(sequence), offset))

	// last index a whole codon can start at
	stop := len(sequence) - checks.CodonLength
	for position := checks.FirstCodonStart(offset); position <= stop; position += checks.CodonLength {
		tally[sequence[position:position+checks.CodonLength]]++
	}
	return tally
}

// Filter returns the codons in tally whose counts lie in [min, max], upper
// cased and sorted by codon. An inverted range returns an empty slice.
func Filter(tally Tally, min, max int) []CodonCount {
	matches := []CodonCount{}
	if min > max {
		return matches
	}

	codons := maps.Keys(tally)
	slices.SortFunc(codons, func(a, b string) bool {
		if upperA, upperB := strings.ToUpper(a), strings.ToUpper(b); upperA != upperB {
			return upperA < upperB
		}
		return a < b
	})
	for _, codon := range codons {
		count := tally[codon]
		if count < min || count > max {
			continue
		}
		matches = append(matches, CodonCount{Codon: strings.ToUpper(codon), Count: count})
	}
	return matches
}

// SortByCount orders codon counts from most to least frequent, breaking ties
// by codon. The slice is sorted in place and returned.
func SortByCount(counts []CodonCount) []CodonCount {
	slices.SortStableFunc(counts, func(a, b CodonCount) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Codon < b.Codon
	})
	return counts
}
