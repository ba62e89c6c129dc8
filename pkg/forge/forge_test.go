//go:build unit

package forge

import (
	"errors"
	"testing"

	gitmocks "github.com/lerenn/merge-manager/pkg/git/mocks"
	"github.com/lerenn/merge-manager/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestParseGitHubRemote(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{
			name:      "https url",
			url:       "https://github.com/lerenn/merge-manager.git",
			wantOwner: "lerenn",
			wantRepo:  "merge-manager",
		},
		{
			name:      "https url without .git suffix",
			url:       "https://github.com/lerenn/merge-manager",
			wantOwner: "lerenn",
			wantRepo:  "merge-manager",
		},
		{
			name:      "ssh url",
			url:       "git@github.com:lerenn/merge-manager.git",
			wantOwner: "lerenn",
			wantRepo:  "merge-manager",
		},
		{
			name:    "non-github url",
			url:     "https://gitlab.com/lerenn/merge-manager.git",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := parseGitHubRemote(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotAForgeRepository)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}

func TestGitHub_ValidateForgeRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := gitmocks.NewMockGit(ctrl)
	forge := NewGitHubWithGit(mockGit)

	mockGit.EXPECT().
		GetRemoteURL("/repo", "origin").
		Return("git@github.com:lerenn/merge-manager.git", nil)

	assert.NoError(t, forge.ValidateForgeRepository("/repo"))
}

func TestGitHub_ValidateForgeRepository_WrongForge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := gitmocks.NewMockGit(ctrl)
	forge := NewGitHubWithGit(mockGit)

	mockGit.EXPECT().
		GetRemoteURL("/repo", "origin").
		Return("https://gitlab.com/lerenn/merge-manager.git", nil)

	assert.ErrorIs(t, forge.ValidateForgeRepository("/repo"), ErrNotAForgeRepository)
}

func TestGitHub_ValidateForgeRepository_NoRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := gitmocks.NewMockGit(ctrl)
	forge := NewGitHubWithGit(mockGit)

	mockGit.EXPECT().
		GetRemoteURL("/repo", "origin").
		Return("", errors.New("exit status 2"))

	assert.Error(t, forge.ValidateForgeRepository("/repo"))
}

func TestManager_GetForge(t *testing.T) {
	manager := NewManager(logger.NewNoopLogger())

	forge, err := manager.GetForge(GitHubName)
	assert.NoError(t, err)
	assert.Equal(t, GitHubName, forge.Name())

	_, err = manager.GetForge("sourcehut")
	assert.ErrorIs(t, err, ErrUnsupportedForge)
}
