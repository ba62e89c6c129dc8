package git

import (
	"context"
	"strings"
)

// BranchExistsOnRemote checks if a branch exists on the origin remote.
// It never fails: any execution error is treated as "does not exist".
func (g *realGit) BranchExistsOnRemote(repoPath, branch string) bool {
	result, err := g.executor.Execute(context.Background(), repoPath, "git", "branch", "-r")
	if err != nil {
		return false
	}
	return strings.Contains(result.Stdout, defaultRemote+"/"+branch)
}
