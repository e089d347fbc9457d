// Package main is the entry point for the readingframes CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abondrn/readingframes/profile"
	"github.com/lunny/log"
	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const helpWidth = 80

const longDescription = `readingframes counts the codons of a DNA sequence in one of its three forward reading frames and lists the codons whose number of occurrences falls inside a minimum and maximum. Sequences are read as raw text from an argument, a file or standard input; whitespace is removed and nothing else is checked. Defaults for every command can be set with READINGFRAMES_LOG_LEVEL, READINGFRAMES_FORMAT, READINGFRAMES_STRICT and READINGFRAMES_PROFILES.`

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags have been parsed.
type app struct {
	settings profile.Settings
	logger   *log.Logger
}

func rootCmd() *cobra.Command {
	a := &app{}
	var logLevel string

	cmd := &cobra.Command{
		Use:           "readingframes",
		Short:         "Count codons in a DNA reading frame",
		Long:          wordwrap.WrapString(longDescription, helpWidth),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := profile.LoadSettings()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				settings.LogLevel = logLevel
			}
			a.settings = settings
			a.logger = newLogger(cmd.ErrOrStderr(), settings.LogLevel)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	cmd.AddCommand(countCmd(a))
	cmd.AddCommand(randomCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd
}

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.New(w, "[readingframes] ", log.Ldate|log.Ltime)
	logger.SetOutputLevel(parseLevel(level))
	return logger
}

func parseLevel(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return log.Ldebug
	case "warn", "warning":
		return log.Lwarn
	case "error":
		return log.Lerror
	default:
		return log.Linfo
	}
}
