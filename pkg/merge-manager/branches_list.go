package mergemanager

import (
	"errors"
	"fmt"

	"github.com/lerenn/merge-manager/pkg/git"
	"github.com/lerenn/merge-manager/pkg/merge-manager/consts"
)

// BranchListing holds the branch inventory for display.
type BranchListing struct {
	Current  string
	Target   string
	Branches []string
}

// ListBranches returns the sorted deduplicated branch inventory together with
// the current and target branches.
func (m *realMergeManager) ListBranches() (BranchListing, error) {
	return m.executeWithHooksAndReturnListing(consts.ListBranches, map[string]interface{}{},
		func() (BranchListing, error) {
			return m.listBranches()
		})
}

func (m *realMergeManager) listBranches() (BranchListing, error) {
	if err := m.ensureGitAvailable(); err != nil {
		return BranchListing{}, err
	}

	isRepo, err := m.deps.Git.IsGitRepository(m.repoPath)
	if err != nil {
		return BranchListing{}, fmt.Errorf("failed to check git repository: %w", err)
	}
	if !isRepo {
		return BranchListing{}, ErrNotAGitRepository
	}

	currentBranch, err := m.deps.Git.GetCurrentBranch(m.repoPath)
	if err != nil {
		// A detached HEAD still has a listable inventory.
		if !errors.Is(err, git.ErrNoCurrentBranch) {
			return BranchListing{}, err
		}
		currentBranch = ""
	}

	cfg, err := m.deps.Config.GetConfigWithFallback()
	if err != nil {
		return BranchListing{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	branches, err := m.deps.Git.ListAvailableBranches(m.repoPath)
	if err != nil {
		return BranchListing{}, fmt.Errorf("failed to list branches: %w", err)
	}

	return BranchListing{
		Current:  currentBranch,
		Target:   cfg.TargetBranch,
		Branches: branches,
	}, nil
}
