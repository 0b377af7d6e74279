package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sketches/agms"
)

// newRunCommand replays a YAML scenario: one sketch per named stream,
// all sharing (depth, width, seed) so estimates and join sizes are
// mutually comparable and reproducible.
func newRunCommand() *cobra.Command {
	var (
		scenarioPath string
		showGrids    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a YAML scenario of updates, queries and join sizes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := loadScenario(scenarioPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scenario: %d streams, sketch %dx%d, seed %d\n",
				len(sc.Streams), sc.Depth, sc.Width, sc.Seed)

			sketches := make(map[string]*agms.Sketch, len(sc.Streams))
			for _, name := range sc.streamNames() {
				sk, errNew := agms.New(sc.Depth, sc.Width, sc.Seed)
				if errNew != nil {
					return errNew
				}
				for _, u := range sc.Streams[name] {
					w := u.Weight
					if w == 0 {
						w = 1
					}
					if errUp := sk.Update(itemID(u.Item), w); errUp != nil {
						return errUp
					}
				}
				sketches[name] = sk
				if showGrids {
					renderGrid(out, name, sk)
				}
			}

			if len(sc.Queries) > 0 {
				estimates := make([]estimate, 0, len(sc.Queries)*len(sketches))
				for _, name := range sc.streamNames() {
					for _, item := range sc.Queries {
						est, errQ := sketches[name].Query(itemID(item))
						if errQ != nil {
							return errQ
						}
						estimates = append(estimates, estimate{stream: name, item: item, value: est})
					}
				}
				renderEstimates(out, estimates)
			}

			for _, dp := range sc.DotProducts {
				join, errDot := sketches[dp.Left].DotProduct(sketches[dp.Right])
				if errDot != nil {
					return errDot
				}
				fmt.Fprintf(out, "join size %s x %s: %d\n", dp.Left, dp.Right, join)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to a YAML scenario file")
	cmd.Flags().BoolVar(&showGrids, "grids", false, "print each stream's counter grid")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}
