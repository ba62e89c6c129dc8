package main

import (
	"fmt"

	"github.com/lerenn/merge-manager/cmd/mm/internal/cli"
	"github.com/spf13/cobra"
)

func createBranchesCmd() *cobra.Command {
	branchesCmd := &cobra.Command{
		Use:   "branches",
		Short: "List all branches",
		Long: `List all local and remote branches, marking the current and target ones.

Examples:
  mm branches`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			mergeManager, err := cli.NewMergeManager()
			if err != nil {
				return err
			}

			listing, err := mergeManager.ListBranches()
			if err != nil {
				return fmt.Errorf("failed to list branches: %w", err)
			}

			if len(listing.Branches) == 0 {
				fmt.Println("No branches found.")
				return nil
			}

			for _, branch := range listing.Branches {
				fmt.Println(formatBranchLine(branch, listing.Current, listing.Target))
			}
			return nil
		},
	}

	return branchesCmd
}

// formatBranchLine renders one branch with current/target markers.
func formatBranchLine(branch, current, target string) string {
	marker := " "
	if branch == current {
		marker = "*"
	}

	line := fmt.Sprintf("%s %s", marker, branch)
	if branch == target {
		line += " (target)"
	}
	return line
}
