package frames

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/abondrn/readingframes/checks"
	"lukechampine.com/blake3"
)

var (
	// ErrInvalidFrame is returned by Validate for offsets other than 0, 1 or 2.
	ErrInvalidFrame = errors.New("invalid reading frame")
	// ErrInvalidRange is returned by Validate for negative or inverted ranges.
	ErrInvalidRange = errors.New("invalid occurrence range")
)

// Frame bundles a sequence with the reading frame and occurrence range it
// should be reported for.
type Frame struct {
	DNA          string
	ReadingFrame int
	Min          int
	Max          int
}

// Validate checks the reading frame and occurrence range. Count and Filter
// never call it, they tolerate any values.
func (f Frame) Validate() error {
	if !checks.IsReadingFrame(f.ReadingFrame) {
		return fmt.Errorf("%w: %d is not one of 0, 1 or 2", ErrInvalidFrame, f.ReadingFrame)
	}
	if !checks.IsOccurrenceRange(f.Min, f.Max) {
		return fmt.Errorf("%w: %d-%d", ErrInvalidRange, f.Min, f.Max)
	}
	return nil
}

// Tally counts the codons of the frame.
func (f Frame) Tally() Tally {
	return Count(f.DNA, f.ReadingFrame)
}

// Report tallies the frame and keeps the codons inside its occurrence range.
func (f Frame) Report() Report {
	return Report{
		ReadingFrame:   f.ReadingFrame,
		Min:            f.Min,
		Max:            f.Max,
		SequenceLength: len(f.DNA),
		SequenceHash:   SequenceHash(f.DNA),
		Codons:         Filter(f.Tally(), f.Min, f.Max),
	}
}

// SequenceHash returns the hex encoded BLAKE3 digest of sequence. Reports
// carry it so output from different runs can be matched to its input.
func SequenceHash(sequence string) string {
	sum := blake3.Sum256([]byte(sequence))
	return hex.EncodeToString(sum[:])
}
