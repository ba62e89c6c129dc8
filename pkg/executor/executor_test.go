//go:build integration

package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_Execute_Success(t *testing.T) {
	exec := NewExecutor()

	result, err := exec.Execute(context.Background(), "", "git", "--version")
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "git version")
	assert.Empty(t, result.Stderr)
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	exec := NewExecutor()

	// Asking git for an unknown subcommand exits non-zero.
	_, err := exec.Execute(context.Background(), "", "git", "definitely-not-a-subcommand")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonZeroExit)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "git", cmdErr.Name)
}

func TestExecutor_Execute_SpawnFailed(t *testing.T) {
	exec := NewExecutor()

	_, err := exec.Execute(context.Background(), "", "mm-no-such-binary-on-path")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpawnFailed)
}

func TestExecutor_Execute_Timeout(t *testing.T) {
	exec := NewExecutor()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := exec.Execute(ctx, "", "sleep", "5")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestExecutor_Execute_WorkDir(t *testing.T) {
	exec := NewExecutor()
	dir := t.TempDir()

	result, err := exec.Execute(context.Background(), dir, "pwd")
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, dir)
}
