package git

import (
	"context"
	"fmt"
	"strings"
)

// IsClean checks if the working tree has no uncommitted changes.
// Any output from `git status --porcelain` means the tree is dirty.
func (g *realGit) IsClean(repoPath string) (bool, error) {
	result, err := g.executor.Execute(context.Background(), repoPath, "git", "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("git status --porcelain failed: %w", err)
	}
	return strings.TrimSpace(result.Stdout) == "", nil
}
