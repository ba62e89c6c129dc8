package main

import (
	"fmt"

	"github.com/lerenn/merge-manager/cmd/mm/internal/cli"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [branch]",
		Short: "Initialize the merge manager configuration",
		Long: `Create the configuration file with an initial target branch. Without an
argument the default target branch is used.

Examples:
  mm init
  mm init develop`,
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

			if err := mergeManager.Init(branch); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			fmt.Printf("Configuration written to %s\n", cli.GetConfigPath())
			return nil
		},
	}

	return initCmd
}
