package git

import (
	"github.com/lerenn/merge-manager/pkg/executor"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// IsGitRepository checks whether the directory is inside a Git repository.
	IsGitRepository(repoPath string) (bool, error)

	// GetCurrentBranch gets the current branch name.
	GetCurrentBranch(repoPath string) (string, error)

	// ListLocalBranches lists local branch names.
	ListLocalBranches(repoPath string) ([]string, error)

	// ListRemoteBranches lists branch names on the origin remote, prefix stripped.
	ListRemoteBranches(repoPath string) ([]string, error)

	// ListAvailableBranches returns the sorted union of local and remote branch names.
	ListAvailableBranches(repoPath string) ([]string, error)

	// BranchExistsOnRemote checks if a branch exists on the origin remote.
	// It never fails: any execution error is treated as "does not exist".
	BranchExistsOnRemote(repoPath, branch string) bool

	// IsClean checks if the working tree has no uncommitted changes.
	IsClean(repoPath string) (bool, error)

	// CheckoutBranch checks out a branch in the repository.
	CheckoutBranch(repoPath, branch string) error

	// Pull pulls a branch from a remote.
	Pull(repoPath, remoteName, branch string) error

	// MergeBranch merges a branch into the currently checked-out branch.
	MergeBranch(repoPath, branch string) error

	// Push pushes a branch to a remote.
	Push(repoPath, remoteName, branch string) error

	// GetRemoteURL gets the URL of a remote.
	GetRemoteURL(repoPath, remoteName string) (string, error)
}

type realGit struct {
	executor executor.Executor
}

// NewGit creates a new Git instance backed by a real command executor.
func NewGit() Git {
	return &realGit{executor: executor.NewExecutor()}
}

// NewGitWithExecutor creates a new Git instance with a custom executor.
func NewGitWithExecutor(exec executor.Executor) Git {
	return &realGit{executor: exec}
}
