package mergemanager

import (
	"errors"
	"fmt"

	"github.com/lerenn/merge-manager/pkg/executor"
	"github.com/lerenn/merge-manager/pkg/forge"
	"github.com/lerenn/merge-manager/pkg/merge-manager/consts"
)

// defaultRemote is the remote pulls and pushes are directed at.
const defaultRemote = "origin"

// MergeIntoTarget merges the current branch into the persisted target branch:
// checkout target, pull, merge, push, checkout back.
func (m *realMergeManager) MergeIntoTarget() error {
	return m.executeWithHooks(consts.MergeIntoTarget, map[string]interface{}{}, func() error {
		return m.mergeIntoTarget()
	})
}

func (m *realMergeManager) mergeIntoTarget() error {
	if err := m.ensureGitAvailable(); err != nil {
		return err
	}

	// Resolving the current branch doubles as the repository check: the
	// command fails with a non-zero exit outside a repository.
	currentBranch, err := m.deps.Git.GetCurrentBranch(m.repoPath)
	if err != nil {
		if errors.Is(err, executor.ErrNonZeroExit) {
			return ErrNotAGitRepository
		}
		return err
	}

	cfg, err := m.deps.Config.GetConfigWithFallback()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	targetBranch := cfg.TargetBranch
	if targetBranch == "" {
		return ErrNoTargetBranch
	}
	if currentBranch == targetBranch {
		return fmt.Errorf("%w: %s", ErrCannotMergeIntoCurrent, targetBranch)
	}

	defer m.deps.StatusBar.SetIdle(fmt.Sprintf("target: %s", targetBranch))

	remoteExists := m.deps.Git.BranchExistsOnRemote(m.repoPath, targetBranch)
	m.VerbosePrint("Target branch %s on origin: %t", targetBranch, remoteExists)

	confirmed, err := m.deps.Prompt.PromptForConfirmation(
		m.confirmationMessage(currentBranch, targetBranch, remoteExists), true)
	if err != nil {
		return err
	}
	if !confirmed {
		m.VerbosePrint("Merge cancelled")
		return nil
	}

	clean, err := m.deps.Git.IsClean(m.repoPath)
	if err != nil {
		return fmt.Errorf("failed to check working tree: %w", err)
	}
	if !clean {
		return ErrUncommittedChanges
	}

	return m.runMergeSequence(currentBranch, targetBranch, remoteExists)
}

// runMergeSequence performs the checkout/pull/merge/push/checkout-back chain.
func (m *realMergeManager) runMergeSequence(currentBranch, targetBranch string, remoteExists bool) error {
	status := fmt.Sprintf("Merging %s into %s", currentBranch, targetBranch)

	m.deps.StatusBar.SetText(status, "(checkout)")
	if err := m.deps.Git.CheckoutBranch(m.repoPath, targetBranch); err != nil {
		return err
	}

	if remoteExists {
		m.deps.StatusBar.SetText(status, "(pull)")
		if err := m.deps.Git.Pull(m.repoPath, defaultRemote, targetBranch); err != nil {
			// Leave the user where they started before surfacing the failure.
			if restoreErr := m.deps.Git.CheckoutBranch(m.repoPath, currentBranch); restoreErr != nil {
				m.VerbosePrint("Failed to restore branch %s: %v", currentBranch, restoreErr)
			}
			return err
		}
	}

	m.deps.StatusBar.SetText(status, "(merge)")
	if err := m.deps.Git.MergeBranch(m.repoPath, currentBranch); err != nil {
		// No rollback: the user resolves the conflict on the target branch.
		return err
	}

	if remoteExists {
		m.deps.StatusBar.SetText(status, "(push)")
		if err := m.deps.Git.Push(m.repoPath, defaultRemote, targetBranch); err != nil {
			m.deps.Logger.Logf("Warning: merged %s into %s but push failed: %v",
				currentBranch, targetBranch, err)
		}
	}

	m.deps.StatusBar.SetText(status, "(restore)")
	if err := m.deps.Git.CheckoutBranch(m.repoPath, currentBranch); err != nil {
		return fmt.Errorf("merged %s into %s but failed to return to %s: %w",
			currentBranch, targetBranch, currentBranch, err)
	}

	m.deps.Logger.Logf("Merged %s into %s", currentBranch, targetBranch)
	return nil
}

// confirmationMessage builds the merge confirmation, enriched with an open
// pull request when the forge knows about one.
func (m *realMergeManager) confirmationMessage(currentBranch, targetBranch string, remoteExists bool) string {
	var msg string
	if remoteExists {
		msg = fmt.Sprintf("Merge %s into %s and push to %s", currentBranch, targetBranch, defaultRemote)
	} else {
		msg = fmt.Sprintf("Merge %s into %s (no push: branch not on %s)", currentBranch, targetBranch, defaultRemote)
	}

	if pr := m.findPullRequest(currentBranch, targetBranch); pr != nil {
		msg += fmt.Sprintf("\nOpen pull request #%d: %s (%s)", pr.Number, pr.Title, pr.URL)
	}

	return msg
}

// findPullRequest looks up an open pull request for the merge. Lookup
// failures never block the workflow.
func (m *realMergeManager) findPullRequest(currentBranch, targetBranch string) *forge.PullRequestInfo {
	if m.deps.ForgeManager == nil {
		return nil
	}

	f, err := m.deps.ForgeManager.GetForgeForRepository(m.repoPath)
	if err != nil {
		return nil
	}

	pr, err := f.FindPullRequest(m.repoPath, currentBranch, targetBranch)
	if err != nil {
		m.VerbosePrint("Pull request lookup failed: %v", err)
		return nil
	}
	return pr
}
