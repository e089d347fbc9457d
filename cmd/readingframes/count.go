package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abondrn/readingframes/checks"
	"github.com/abondrn/readingframes/frames"
	"github.com/abondrn/readingframes/profile"
	"github.com/spf13/cobra"
)

var errNoSequence = errors.New("no sequence given")

type countOptions struct {
	frame       int
	min         int
	max         int
	allFrames   bool
	file        string
	profileName string
	profiles    string
	format      string
	sortBy      string
	strict      bool
}

func countCmd(a *app) *cobra.Command {
	var opts countOptions

	cmd := &cobra.Command{
		Use:   "count [SEQUENCE]",
		Short: "Report codons within an occurrence range",
		Long: "Report the codons of one reading frame, or all three, whose occurrence counts lie between --min and --max inclusive. " +
			"Without --max every codon seen at least --min times is reported.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, a, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.frame, "frame", 0, "reading frame offset: 0, 1 or 2")
	flags.IntVar(&opts.min, "min", 1, "minimum occurrences")
	flags.IntVar(&opts.max, "max", 0, "maximum occurrences (default: number of codons in the frame)")
	flags.BoolVar(&opts.allFrames, "all-frames", false, "report reading frames 0, 1 and 2")
	flags.StringVar(&opts.file, "file", "", "read the sequence from a raw text file")
	flags.StringVar(&opts.profileName, "profile", "", "take frame, min and max from a named profile")
	flags.StringVar(&opts.profiles, "profiles", "", "profile file (default: $READINGFRAMES_PROFILES)")
	flags.StringVar(&opts.format, "format", "", "output format: text, json or yaml (default: $READINGFRAMES_FORMAT)")
	flags.StringVar(&opts.sortBy, "sort", "codon", "order codons by codon or count")
	flags.BoolVar(&opts.strict, "strict", true, "reject frames outside 0-2 and invalid ranges (default: $READINGFRAMES_STRICT)")

	return cmd
}

func runCount(cmd *cobra.Command, a *app, opts countOptions, args []string) error {
	flags := cmd.Flags()

	if !flags.Changed("format") {
		opts.format = a.settings.Format
	}
	if !flags.Changed("strict") {
		opts.strict = a.settings.Strict
	}
	if !flags.Changed("profiles") {
		opts.profiles = a.settings.Profiles
	}
	format, err := frames.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.sortBy != "codon" && opts.sortBy != "count" {
		return fmt.Errorf("unknown sort order %q, want codon or count", opts.sortBy)
	}

	maxSet := flags.Changed("max")
	if opts.profileName != "" {
		saved, err := loadProfile(opts.profiles, opts.profileName)
		if err != nil {
			return err
		}
		a.logger.Debugf("using profile %s: frame %d, %d-%d occurrences", opts.profileName, saved.Frame, saved.Min, saved.Max)
		if !flags.Changed("frame") {
			opts.frame = saved.Frame
		}
		if !flags.Changed("min") {
			opts.min = saved.Min
		}
		if !maxSet {
			opts.max = saved.Max
			maxSet = true
		}
	}

	sequence, err := readSequence(cmd.InOrStdin(), opts.file, args)
	if err != nil {
		return err
	}
	a.logger.Debugf("read sequence of %d bases", len(sequence))

	offsets := []int{opts.frame}
	if opts.allFrames {
		offsets = []int{0, 1, 2}
	}

	out := cmd.OutOrStdout()
	for i, offset := range offsets {
		frame := frames.Frame{DNA: sequence, ReadingFrame: offset, Min: opts.min, Max: opts.max}
		if !maxSet {
			frame.Max = checks.CompleteCodons(len(sequence), offset)
			if frame.Max < frame.Min {
				frame.Max = frame.Min
			}
		}
		if opts.strict {
			if err := frame.Validate(); err != nil {
				return err
			}
		}
		if checks.CompleteCodons(len(sequence), offset) == 0 {
			a.logger.Warnf("sequence of %d bases holds no complete codon in frame %d", len(sequence), offset)
		}

		report := frame.Report()
		if opts.sortBy == "count" {
			frames.SortByCount(report.Codons)
		}
		a.logger.Debugf("frame %d: %d codons in %d-%d occurrences", offset, len(report.Codons), frame.Min, frame.Max)

		if i > 0 && format == frames.FormatText {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := report.Write(out, format); err != nil {
			return err
		}
	}
	return nil
}

func loadProfile(path, name string) (profile.Profile, error) {
	if path == "" {
		return profile.Profile{}, fmt.Errorf("profile %s requested but no profile file given", name)
	}
	profiles, err := profile.Load(path)
	if err != nil {
		return profile.Profile{}, err
	}
	return profiles.Get(name)
}

// readSequence takes the sequence from the first argument, the file or in,
// in that order, and removes all whitespace.
func readSequence(in io.Reader, file string, args []string) (string, error) {
	var raw string
	switch {
	case len(args) > 0:
		raw = args[0]
	case file != "":
		content, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading sequence: %w", err)
		}
		raw = string(content)
	default:
		content, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("reading sequence from stdin: %w", err)
		}
		raw = string(content)
	}

	sequence := strings.Join(strings.Fields(raw), "")
	if sequence == "" {
		return "", errNoSequence
	}
	return sequence, nil
}
