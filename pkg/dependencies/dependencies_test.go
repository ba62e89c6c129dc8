//go:build unit

package dependencies

import (
	"path/filepath"
	"testing"

	"github.com/lerenn/merge-manager/pkg/config"
	"github.com/lerenn/merge-manager/pkg/executor"
	executormocks "github.com/lerenn/merge-manager/pkg/executor/mocks"
	"github.com/lerenn/merge-manager/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNew_SetsDefaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.Executor)
	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Git)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Prompt)
	assert.NotNil(t, deps.StatusBar)
	assert.NotNil(t, deps.ForgeManager)
	assert.NotNil(t, deps.HookManager)
	assert.Nil(t, deps.Config)
}

func TestValidate_MissingConfig(t *testing.T) {
	deps := New()

	assert.ErrorIs(t, deps.Validate(), ErrConfigMissing)
}

func TestValidate_Complete(t *testing.T) {
	deps := New().
		WithConfig(config.NewManager(filepath.Join(t.TempDir(), "config.yaml")))

	assert.NoError(t, deps.Validate())
}

func TestWithChaining(t *testing.T) {
	log := logger.NewDefaultLogger()

	deps := New().
		WithLogger(log).
		WithConfig(config.NewManager(filepath.Join(t.TempDir(), "config.yaml")))

	assert.Equal(t, log, deps.Logger)
	assert.NoError(t, deps.Validate())
}

func TestWithExecutor_RebuildsGit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := executormocks.NewMockExecutor(ctrl)
	mockExecutor.EXPECT().
		Execute(gomock.Any(), "/repo", "git", "branch", "--show-current").
		Return(executor.Result{Stdout: "main\n"}, nil)

	deps := New().WithExecutor(mockExecutor)

	// Git commands must flow through the replaced executor.
	branch, err := deps.Git.GetCurrentBranch("/repo")
	assert.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestValidate_MissingGit(t *testing.T) {
	deps := New().
		WithConfig(config.NewManager(filepath.Join(t.TempDir(), "config.yaml")))
	deps.Git = nil

	assert.ErrorIs(t, deps.Validate(), ErrGitMissing)
}
