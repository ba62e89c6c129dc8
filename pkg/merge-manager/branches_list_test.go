//go:build unit

package mergemanager

import (
	"testing"

	"github.com/lerenn/merge-manager/pkg/config"
	"github.com/lerenn/merge-manager/pkg/git"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestListBranches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mm, m := newTestMergeManager(t, ctrl)
	m.expectGitOnPath()

	m.git.EXPECT().IsGitRepository(".").Return(true, nil)
	m.git.EXPECT().GetCurrentBranch(".").Return("feature/login", nil)
	m.config.EXPECT().GetConfigWithFallback().Return(config.Config{TargetBranch: "develop"}, nil)
	m.git.EXPECT().ListAvailableBranches(".").Return([]string{"develop", "feature/login", "main"}, nil)

	listing, err := mm.ListBranches()
	assert.NoError(t, err)
	assert.Equal(t, "feature/login", listing.Current)
	assert.Equal(t, "develop", listing.Target)
	assert.Equal(t, []string{"develop", "feature/login", "main"}, listing.Branches)
}

func TestListBranches_DetachedHead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mm, m := newTestMergeManager(t, ctrl)
	m.expectGitOnPath()

	m.git.EXPECT().IsGitRepository(".").Return(true, nil)
	m.git.EXPECT().GetCurrentBranch(".").Return("", git.ErrNoCurrentBranch)
	m.config.EXPECT().GetConfigWithFallback().Return(config.Config{TargetBranch: "develop"}, nil)
	m.git.EXPECT().ListAvailableBranches(".").Return([]string{"develop", "main"}, nil)

	listing, err := mm.ListBranches()
	assert.NoError(t, err)
	assert.Empty(t, listing.Current)
	assert.Equal(t, []string{"develop", "main"}, listing.Branches)
}

func TestListBranches_NotAGitRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mm, m := newTestMergeManager(t, ctrl)
	m.expectGitOnPath()

	m.git.EXPECT().IsGitRepository(".").Return(false, nil)

	_, err := mm.ListBranches()
	assert.ErrorIs(t, err, ErrNotAGitRepository)
}
