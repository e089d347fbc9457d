package frames

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Report.Write for unsupported formats.
var ErrUnknownFormat = errors.New("unknown report format")

// Format names an output encoding for a Report.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts a format name in any case.
func ParseFormat(name string) (Format, error) {
	switch format := Format(strings.ToLower(name)); format {
	case FormatText, FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

const ruler = "----------------------------------------------------"

// Report holds the codons of one reading frame that fell inside the
// requested occurrence range.
type Report struct {
	ReadingFrame   int          `json:"reading_frame" yaml:"reading_frame"`
	Min            int          `json:"min" yaml:"min"`
	Max            int          `json:"max" yaml:"max"`
	SequenceLength int          `json:"sequence_length" yaml:"sequence_length"`
	SequenceHash   string       `json:"sequence_hash" yaml:"sequence_hash"`
	Codons         []CodonCount `json:"codons" yaml:"codons"`
}

// Header is the first line of the text report.
func (r Report) Header() string {
	return fmt.Sprintf("Codons in reading frame %d (%d-%d occurrences):", r.ReadingFrame, r.Min, r.Max)
}

// String renders the report as text.
func (r Report) String() string {
	var b strings.Builder
	_ = r.WriteText(&b)
	return b.String()
}

// WriteText writes a header, a ruler and one "CODON: count" line per codon.
func (r Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", r.Header(), ruler); err != nil {
		return err
	}
	for _, codon := range r.Codons {
		if _, err := fmt.Fprintf(w, "%s: %d\n", codon.Codon, codon.Count); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the report as one indented JSON object.
func (r Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// WriteYAML writes the report as a YAML document.
func (r Report) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return err
	}
	return encoder.Close()
}

// Write renders the report in the given format.
func (r Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatText:
		return r.WriteText(w)
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
