// Package main provides the command-line interface for the merge manager.
package main

import (
	"log"

	"github.com/lerenn/merge-manager/cmd/mm/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "mm",
		Short: "Merge Manager - merge the current branch into a persisted target branch",
		Long: `A CLI tool that merges the current Git branch into a configured target ` +
			`branch: checkout, pull, merge, push, and checkout back in one confirmed step.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(createTargetCmd(), createMergeCmd(), createBranchesCmd(), createInitCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
