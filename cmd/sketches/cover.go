package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sketches/dyadic"
)

// newCoverCommand prints the canonical dyadic decomposition of a range.
func newCoverCommand() *cobra.Command {
	var (
		lo     uint64
		hi     uint64
		domain uint64
	)

	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Decompose [lo, hi] over a power-of-two domain into dyadic intervals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cover, err := dyadic.Cover(lo, hi, domain)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cover of [%d, %d] over [0, %d]:\n", lo, hi, domain-1)
			renderCover(out, cover)

			return nil
		},
	}

	cmd.Flags().Uint64Var(&lo, "lo", 0, "range lower bound (inclusive)")
	cmd.Flags().Uint64Var(&hi, "hi", 0, "range upper bound (inclusive)")
	cmd.Flags().Uint64Var(&domain, "domain", 16, "domain size, a power of two")

	return cmd
}
