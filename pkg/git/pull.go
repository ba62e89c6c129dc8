package git

import (
	"context"
	"fmt"
)

// Pull pulls a branch from a remote.
func (g *realGit) Pull(repoPath, remoteName, branch string) error {
	_, err := g.executor.Execute(context.Background(), repoPath, "git", "pull", remoteName, branch)
	if err != nil {
		return fmt.Errorf("%w: %s/%s: %w", ErrPullFailed, remoteName, branch, err)
	}
	return nil
}
