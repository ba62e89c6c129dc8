package main

import (
	"fmt"

	"github.com/lerenn/merge-manager/cmd/mm/internal/cli"
	"github.com/spf13/cobra"
)

func createTargetCmd() *cobra.Command {
	targetCmd := &cobra.Command{
		Use:   "target [branch]",
		Short: "Select the target branch merges are directed into",
		Long: `Select and persist the target branch. Without an argument an interactive
selector lists all local and remote branches.

Examples:
  mm target
  mm target develop`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mergeManager, err := cli.NewMergeManager()
			if err != nil {
				return err
			}

			branch := ""
			if len(args) > 0 {
				branch = args[0]
			}

			if err := mergeManager.SelectTargetBranch(branch); err != nil {
				return fmt.Errorf("failed to select target branch: %w", err)
			}
			return nil
		},
	}

	return targetCmd
}
