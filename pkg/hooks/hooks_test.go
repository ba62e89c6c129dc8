//go:build unit

package hooks

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lerenn/merge-manager/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHook struct {
	name     string
	priority int
	calls    *[]string
	err      error
}

func (h *recordingHook) Name() string                 { return h.name }
func (h *recordingHook) Priority() int                { return h.priority }
func (h *recordingHook) Execute(_ *HookContext) error { return nil }

func (h *recordingHook) PreExecute(_ *HookContext) error {
	*h.calls = append(*h.calls, h.name)
	return h.err
}

func (h *recordingHook) PostExecute(_ *HookContext) error {
	*h.calls = append(*h.calls, h.name)
	return h.err
}

func (h *recordingHook) OnError(_ *HookContext) error {
	*h.calls = append(*h.calls, h.name)
	return h.err
}

func TestHookManager_PreHooksRunInPriorityOrder(t *testing.T) {
	hm := NewHookManager()
	var calls []string

	require.NoError(t, hm.RegisterPreHook("merge", &recordingHook{name: "second", priority: 20, calls: &calls}))
	require.NoError(t, hm.RegisterPreHook("merge", &recordingHook{name: "first", priority: 10, calls: &calls}))

	err := hm.ExecutePreHooks("merge", &HookContext{OperationName: "merge"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestHookManager_PreHookFailureStopsExecution(t *testing.T) {
	hm := NewHookManager()
	var calls []string

	hookErr := errors.New("boom")
	require.NoError(t, hm.RegisterPreHook("merge", &recordingHook{name: "failing", priority: 10, calls: &calls, err: hookErr}))
	require.NoError(t, hm.RegisterPreHook("merge", &recordingHook{name: "never", priority: 20, calls: &calls}))

	err := hm.ExecutePreHooks("merge", &HookContext{OperationName: "merge"})
	assert.ErrorIs(t, err, hookErr)
	assert.Equal(t, []string{"failing"}, calls)
}

func TestHookManager_RejectsNilHook(t *testing.T) {
	hm := NewHookManager()

	assert.Error(t, hm.RegisterPreHook("merge", nil))
	assert.Error(t, hm.RegisterPostHook("merge", nil))
	assert.Error(t, hm.RegisterErrorHook("merge", nil))
}

func TestHookManager_HooksScopedToOperation(t *testing.T) {
	hm := NewHookManager()
	var calls []string

	require.NoError(t, hm.RegisterPostHook("merge", &recordingHook{name: "merge-only", priority: 10, calls: &calls}))

	err := hm.ExecutePostHooks("list-branches", &HookContext{OperationName: "list-branches"})
	assert.NoError(t, err)
	assert.Empty(t, calls)
}

func TestLoggingHook(t *testing.T) {
	var buf bytes.Buffer
	hook := NewLoggingHook(logger.NewLoggerWithWriter(&buf))

	ctx := &HookContext{OperationName: "merge"}
	require.NoError(t, hook.PreExecute(ctx))
	require.NoError(t, hook.PostExecute(ctx))

	ctx.Error = errors.New("merge conflict")
	require.NoError(t, hook.OnError(ctx))

	out := buf.String()
	assert.Contains(t, out, "Starting operation: merge")
	assert.Contains(t, out, "Operation completed: merge")
	assert.Contains(t, out, "merge conflict")
}
