package git

import (
	"context"
	"fmt"
)

// Push pushes a branch to a remote.
func (g *realGit) Push(repoPath, remoteName, branch string) error {
	_, err := g.executor.Execute(context.Background(), repoPath, "git", "push", remoteName, branch)
	if err != nil {
		return fmt.Errorf("%w: %s/%s: %w", ErrPushFailed, remoteName, branch, err)
	}
	return nil
}
