package git

import (
	"context"
	"fmt"
	"strings"
)

// ListLocalBranches lists local branch names.
func (g *realGit) ListLocalBranches(repoPath string) ([]string, error) {
	result, err := g.executor.Execute(context.Background(), repoPath, "git", "branch")
	if err != nil {
		return nil, fmt.Errorf("git branch failed: %w", err)
	}

	var branches []string
	for _, line := range strings.Split(result.Stdout, "\n") {
		// Strip the "* " current-branch marker before trimming.
		branch := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
		if branch == "" {
			continue
		}
		branches = append(branches, branch)
	}

	return branches, nil
}
