package git

import (
	"context"
	"fmt"
	"strings"
)

// GetCurrentBranch gets the current branch name.
func (g *realGit) GetCurrentBranch(repoPath string) (string, error) {
	result, err := g.executor.Execute(context.Background(), repoPath, "git", "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("git branch --show-current failed: %w", err)
	}

	branch := strings.TrimSpace(result.Stdout)
	if branch == "" {
		// Detached HEAD produces empty output.
		return "", ErrNoCurrentBranch
	}
	return branch, nil
}
