package main

import (
	"fmt"

	"github.com/lerenn/merge-manager/cmd/mm/internal/cli"
	"github.com/spf13/cobra"
)

func createMergeCmd() *cobra.Command {
	mergeCmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge the current branch into the target branch",
		Long: `Merge the current branch into the persisted target branch: checkout the
target, pull it when it exists on origin, merge, push, and checkout back.

Examples:
  mm merge`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			mergeManager, err := cli.NewMergeManager()
			if err != nil {
				return err
			}

			if err := mergeManager.MergeIntoTarget(); err != nil {
				return fmt.Errorf("merge failed: %w", err)
			}
			return nil
		},
	}

	return mergeCmd
}
