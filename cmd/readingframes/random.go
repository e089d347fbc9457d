package main

import (
	"fmt"
	"time"

	"github.com/abondrn/readingframes/random"
	"github.com/spf13/cobra"
)

func randomCmd(a *app) *cobra.Command {
	var (
		length int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random DNA sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			a.logger.Debugf("generating %d bases with seed %d", length, seed)

			sequence, err := random.DNASequence(length, seed)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sequence)
			return err
		},
	}
	cmd.Flags().IntVar(&length, "length", 99, "number of bases")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")

	return cmd
}
