package mergemanager

import (
	"errors"
	"fmt"

	"github.com/lerenn/merge-manager/pkg/merge-manager/consts"
	"github.com/lerenn/merge-manager/pkg/prompt"
)

// SelectTargetBranch selects and persists the target branch. An empty branch
// argument triggers interactive selection from the branch inventory.
func (m *realMergeManager) SelectTargetBranch(branch string) error {
	return m.executeWithHooks(consts.SelectTargetBranch, map[string]interface{}{
		"branch": branch,
	}, func() error {
		return m.selectTargetBranch(branch)
	})
}

func (m *realMergeManager) selectTargetBranch(branch string) error {
	if err := m.ensureGitAvailable(); err != nil {
		return err
	}

	isRepo, err := m.deps.Git.IsGitRepository(m.repoPath)
	if err != nil {
		return fmt.Errorf("failed to check git repository: %w", err)
	}
	if !isRepo {
		return ErrNotAGitRepository
	}

	if branch == "" {
		branches, err := m.deps.Git.ListAvailableBranches(m.repoPath)
		if err != nil {
			return fmt.Errorf("failed to list branches: %w", err)
		}
		if len(branches) == 0 {
			return ErrNoBranchesFound
		}

		// Clear the status line before bubbletea takes over the terminal.
		m.deps.StatusBar.Reset()

		branch, err = m.deps.Prompt.PromptSelectBranch(branches)
		if err != nil {
			// Dismissing the selector is not an error.
			if errors.Is(err, prompt.ErrSelectionAborted) {
				m.VerbosePrint("Target branch selection cancelled")
				return nil
			}
			return err
		}
	}

	if err := m.deps.Config.SetTargetBranch(branch); err != nil {
		return fmt.Errorf("failed to persist target branch: %w", err)
	}

	m.deps.StatusBar.SetIdle(fmt.Sprintf("target: %s", branch))
	m.VerbosePrint("Target branch set to %s", branch)

	return nil
}
