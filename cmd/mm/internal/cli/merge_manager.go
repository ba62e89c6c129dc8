package cli

import (
	"github.com/lerenn/merge-manager/pkg/dependencies"
	"github.com/lerenn/merge-manager/pkg/logger"
	mergemanager "github.com/lerenn/merge-manager/pkg/merge-manager"
)

// NewMergeManager creates a new MergeManager instance wired for the CLI flags.
func NewMergeManager() (mergemanager.MergeManager, error) {
	log := logger.NewDefaultLogger()
	if Quiet && !Verbose {
		log = logger.NewNoopLogger()
	}

	return mergemanager.NewMergeManager(mergemanager.NewMergeManagerParams{
		Dependencies: dependencies.New().
			WithConfig(NewConfigManager()).
			WithLogger(log),
		Verbose: Verbose,
	})
}
