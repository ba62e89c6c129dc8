package git

import (
	"context"
	"fmt"
)

// CheckoutBranch checks out a branch in the repository.
func (g *realGit) CheckoutBranch(repoPath, branch string) error {
	_, err := g.executor.Execute(context.Background(), repoPath, "git", "checkout", branch)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCheckoutFailed, branch, err)
	}
	return nil
}
