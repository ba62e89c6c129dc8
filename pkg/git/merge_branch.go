package git

import (
	"context"
	"fmt"
)

// MergeBranch merges a branch into the currently checked-out branch.
func (g *realGit) MergeBranch(repoPath, branch string) error {
	_, err := g.executor.Execute(context.Background(), repoPath, "git", "merge", branch)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMergeFailed, branch, err)
	}
	return nil
}
