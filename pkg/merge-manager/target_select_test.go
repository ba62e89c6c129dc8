//go:build unit

package mergemanager

import (
	"errors"
	"testing"

	configmocks "github.com/lerenn/merge-manager/pkg/config/mocks"
	"github.com/lerenn/merge-manager/pkg/dependencies"
	fsmocks "github.com/lerenn/merge-manager/pkg/fs/mocks"
	gitmocks "github.com/lerenn/merge-manager/pkg/git/mocks"
	"github.com/lerenn/merge-manager/pkg/prompt"
	promptmocks "github.com/lerenn/merge-manager/pkg/prompt/mocks"
	statusbarmocks "github.com/lerenn/merge-manager/pkg/statusbar/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSelectTargetBranch_ExplicitBranch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mm, m := newTestMergeManager(t, ctrl)
	m.expectGitOnPath()

	m.git.EXPECT().IsGitRepository(".").Return(true, nil)
	m.config.EXPECT().SetTargetBranch("develop").Return(nil)

	assert.NoError(t, mm.SelectTargetBranch("develop"))
}

func TestSelectTargetBranch_Interactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mm, m := newTestMergeManager(t, ctrl)
	m.expectGitOnPath()

	branches := []string{"develop", "feature/login", "main"}
	gomock.InOrder(
		m.git.EXPECT().IsGitRepository(".").Return(true, nil),
		m.git.EXPECT().ListAvailableBranches(".").Return(branches, nil),
		m.prompt.EXPECT().PromptSelectBranch(branches).Return("main", nil),
		m.config.EXPECT().SetTargetBranch("main").Return(nil),
	)

	assert.NoError(t, mm.SelectTargetBranch(""))
}

func TestSelectTargetBranch_DismissedSelectorIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mm, m := newTestMergeManager(t, ctrl)
	m.expectGitOnPath()

	m.git.EXPECT().IsGitRepository(".").Return(true, nil)
	m.git.EXPECT().ListAvailableBranches(".").Return([]string{"develop", "main"}, nil)
	m.prompt.EXPECT().PromptSelectBranch(gomock.Any()).Return("", prompt.ErrSelectionAborted)

	// Nothing is persisted and no error surfaces.
	assert.NoError(t, mm.SelectTargetBranch(""))
}

func TestSelectTargetBranch_ClearsStatusLineBeforeSelector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockGit := gitmocks.NewMockGit(ctrl)
	mockConfig := configmocks.NewMockManager(ctrl)
	mockPrompt := promptmocks.NewMockPrompter(ctrl)
	mockStatusBar := statusbarmocks.NewMockStatusBar(ctrl)

	mm, err := NewMergeManager(NewMergeManagerParams{
		Dependencies: dependencies.New().
			WithFS(mockFS).
			WithGit(mockGit).
			WithConfig(mockConfig).
			WithPrompt(mockPrompt).
			WithStatusBar(mockStatusBar),
	})
	require.NoError(t, err)

	mockFS.EXPECT().Which("git").Return("/usr/bin/git", nil)

	// The status line is cleared before bubbletea takes over the terminal.
	branches := []string{"develop", "main"}
	gomock.InOrder(
		mockGit.EXPECT().IsGitRepository(".").Return(true, nil),
		mockGit.EXPECT().ListAvailableBranches(".").Return(branches, nil),
		mockStatusBar.EXPECT().Reset(),
		mockPrompt.EXPECT().PromptSelectBranch(branches).Return("main", nil),
		mockConfig.EXPECT().SetTargetBranch("main").Return(nil),
		mockStatusBar.EXPECT().SetIdle("target: main"),
	)

	assert.NoError(t, mm.SelectTargetBranch(""))
}

func TestSelectTargetBranch_NotAGitRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mm, m := newTestMergeManager(t, ctrl)
	m.expectGitOnPath()

	m.git.EXPECT().IsGitRepository(".").Return(false, nil)

	assert.ErrorIs(t, mm.SelectTargetBranch("develop"), ErrNotAGitRepository)
}

func TestSelectTargetBranch_EmptyInventory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mm, m := newTestMergeManager(t, ctrl)
	m.expectGitOnPath()

	m.git.EXPECT().IsGitRepository(".").Return(true, nil)
	m.git.EXPECT().ListAvailableBranches(".").Return(nil, nil)

	assert.ErrorIs(t, mm.SelectTargetBranch(""), ErrNoBranchesFound)
}

func TestSelectTargetBranch_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mm, m := newTestMergeManager(t, ctrl)
	m.expectGitOnPath()

	saveErr := errors.New("failed to write configuration file")
	m.git.EXPECT().IsGitRepository(".").Return(true, nil)
	m.config.EXPECT().SetTargetBranch("develop").Return(saveErr)

	assert.ErrorIs(t, mm.SelectTargetBranch("develop"), saveErr)
}
