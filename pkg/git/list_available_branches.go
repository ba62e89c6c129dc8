package git

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// ListAvailableBranches returns the sorted union of local and remote branch names.
// The two listings have no ordering dependency and run concurrently.
func (g *realGit) ListAvailableBranches(repoPath string) ([]string, error) {
	var local, remote []string

	eg := new(errgroup.Group)
	eg.Go(func() error {
		var err error
		local, err = g.ListLocalBranches(repoPath)
		return err
	})
	eg.Go(func() error {
		var err error
		remote, err = g.ListRemoteBranches(repoPath)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(local)+len(remote))
	branches := make([]string, 0, len(local)+len(remote))
	for _, branch := range append(local, remote...) {
		if _, ok := seen[branch]; ok {
			continue
		}
		seen[branch] = struct{}{}
		branches = append(branches, branch)
	}

	sort.Strings(branches)
	return branches, nil
}
