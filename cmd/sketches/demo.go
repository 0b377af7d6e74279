package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sketches/agms"
)

// teachingStream is the classic classroom example: three items with
// weights 3, 2 and 1, identified by their rune code points.
var teachingStream = []Update{
	{Item: "a", Weight: 3},
	{Item: "b", Weight: 2},
	{Item: "c", Weight: 1},
}

// newDemoCommand replays the teaching stream into one sketch and prints
// the grid and the recovered estimates.
func newDemoCommand() *cobra.Command {
	var (
		depth int
		width int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay the teaching stream and print the sketch state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sk, err := agms.New(depth, width, seed)
			if err != nil {
				return err
			}
			for _, u := range teachingStream {
				if err = sk.Update(itemID(u.Item), u.Weight); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sketch %dx%d, seed %d\n", depth, width, seed)
			renderGrid(out, "grid", sk)

			estimates := make([]estimate, 0, len(teachingStream))
			for _, u := range teachingStream {
				est, errQ := sk.Query(itemID(u.Item))
				if errQ != nil {
					return errQ
				}
				estimates = append(estimates, estimate{stream: "demo", item: u.Item, value: est})
			}
			renderEstimates(out, estimates)

			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 8, "number of sketch rows")
	cmd.Flags().IntVar(&width, "width", 16, "counters per row")
	cmd.Flags().Uint64Var(&seed, "seed", 42, "hash-family seed")

	return cmd
}
