package git

import (
	"context"
	"fmt"
	"strings"
)

// ListRemoteBranches lists branch names on the origin remote, prefix stripped.
func (g *realGit) ListRemoteBranches(repoPath string) ([]string, error) {
	result, err := g.executor.Execute(context.Background(), repoPath, "git", "branch", "-r")
	if err != nil {
		return nil, fmt.Errorf("git branch -r failed: %w", err)
	}

	var branches []string
	for _, line := range strings.Split(result.Stdout, "\n") {
		branch := strings.TrimSpace(line)
		if branch == "" {
			continue
		}
		// Skip the symbolic HEAD line, e.g. "origin/HEAD -> origin/master".
		if strings.Contains(branch, "->") {
			continue
		}
		branch = strings.TrimPrefix(branch, defaultRemote+"/")
		branches = append(branches, branch)
	}

	return branches, nil
}
