package git

import (
	"context"
	"fmt"
	"strings"
)

// GetRemoteURL gets the URL of a remote.
func (g *realGit) GetRemoteURL(repoPath, remoteName string) (string, error) {
	result, err := g.executor.Execute(context.Background(), repoPath, "git", "remote", "get-url", remoteName)
	if err != nil {
		return "", fmt.Errorf("git remote get-url %s failed: %w", remoteName, err)
	}
	return strings.TrimSpace(result.Stdout), nil
}
