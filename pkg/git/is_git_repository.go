package git

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerenn/merge-manager/pkg/executor"
)

// IsGitRepository checks whether the directory is inside a Git repository.
func (g *realGit) IsGitRepository(repoPath string) (bool, error) {
	_, err := g.executor.Execute(context.Background(), repoPath, "git", "rev-parse", "--git-dir")
	if err != nil {
		// A non-zero exit means "not a repository"; anything else is a real failure.
		if errors.Is(err, executor.ErrNonZeroExit) {
			return false, nil
		}
		return false, fmt.Errorf("git rev-parse --git-dir failed: %w", err)
	}
	return true, nil
}
