/*
Package checks provides utilities to check properties of reading frames and
occurrence ranges before a sequence is tallied.
*/
package checks

// CodonLength is the number of nucleotides in a codon.
const CodonLength = 3

// IsReadingFrame accepts an offset and returns if it names one of the three
// forward reading frames. More here - https://en.wikipedia.org/wiki/Reading_frame
func IsReadingFrame(offset int) bool {
	return offset >= 0 && offset < CodonLength
}

// IsOccurrenceRange checks that min and max describe a non-empty inclusive
// range of non-negative occurrence counts.
func IsOccurrenceRange(min, max int) bool {
	return min >= 0 && min <= max
}

// CompleteCodons returns how many whole codons fit in a sequence of the
// given length when reading starts at offset.
func CompleteCodons(length, offset int) int {
	offset = FirstCodonStart(offset)
	if length <= offset {
		return 0
	}
	return (length - offset) / CodonLength
}

// FirstCodonStart returns the first index at or after offset, in the same
// frame, that lies inside a sequence. Non-negative offsets are returned as is.
func FirstCodonStart(offset int) int {
	if offset < 0 {
		offset = (offset%CodonLength + CodonLength) % CodonLength
	}
	return offset
}
