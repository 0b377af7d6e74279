// Package main provides the entry point for the sketches demo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sketches",
		Short: "Streaming-sketch playground - reproducible AGMS estimators",
		Long: `sketches drives the library's estimators from the command line.

Commands:
  demo      Replay the teaching stream (a x3, b x2, c x1) and print estimates
  run       Replay a YAML scenario of weighted updates, queries and join sizes
  cover     Decompose an integer range into canonical dyadic intervals`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newCoverCommand())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
